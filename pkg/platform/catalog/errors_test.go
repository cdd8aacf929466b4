package catalog

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/storefront-connect/pkg/core"
)

// TestMapPlatformError verifies gRPC failure codes translate into the
// toolkit sentinels while everything else passes through.
func TestMapPlatformError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"row not found", spanner.ErrRowNotFound, core.ErrNotFound},
		{"not found", status.Error(codes.NotFound, "no such row"), core.ErrNotFound},
		{"invalid argument", status.Error(codes.InvalidArgument, "bad param"), core.ErrInvalidInput},
		{"failed precondition", status.Error(codes.FailedPrecondition, "schema mismatch"), core.ErrInvalidInput},
		{"out of range", status.Error(codes.OutOfRange, "offset too large"), core.ErrInvalidInput},
		{"unauthenticated", status.Error(codes.Unauthenticated, "no token"), core.ErrUnauthorized},
		{"permission denied", status.Error(codes.PermissionDenied, "no access"), core.ErrUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "backend down"), core.ErrUnavailable},
		{"deadline exceeded", status.Error(codes.DeadlineExceeded, "too slow"), core.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapPlatformError(tc.in)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestMapPlatformError_ContextErrorsPassThrough(t *testing.T) {
	assert.ErrorIs(t, mapPlatformError(context.Canceled), context.Canceled)
	assert.ErrorIs(t, mapPlatformError(context.DeadlineExceeded), context.DeadlineExceeded)
}

func TestMapPlatformError_UnknownPassesThrough(t *testing.T) {
	plain := errors.New("something else")
	assert.Equal(t, plain, mapPlatformError(plain))
}
