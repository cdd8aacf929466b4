package catalog

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/storefront-connect/pkg/core"
)

// mapPlatformError translates Spanner/gRPC failures into the toolkit's
// sentinel errors so callers can branch with errors.Is, keeping the
// platform detail in the message. Context errors and unrecognized failures
// pass through unchanged.
func mapPlatformError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, spanner.ErrRowNotFound) {
		return fmt.Errorf("%w: %v", core.ErrNotFound, err)
	}

	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.NotFound:
			return fmt.Errorf("%w: %s", core.ErrNotFound, s.Message())
		case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
			return fmt.Errorf("%w: %s", core.ErrInvalidInput, s.Message())
		case codes.Unauthenticated, codes.PermissionDenied:
			return fmt.Errorf("%w: %s", core.ErrUnauthorized, s.Message())
		case codes.Unavailable, codes.DeadlineExceeded:
			return fmt.Errorf("%w: %s", core.ErrUnavailable, s.Message())
		}
	}

	return err
}
