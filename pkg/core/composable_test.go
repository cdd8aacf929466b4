package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Success verifies the state triple around a successful operation.
func TestRun_Success(t *testing.T) {
	s := NewState[string]()

	var loadingDuring bool
	err := Run(context.Background(), s, func(ctx context.Context) (string, error) {
		loadingDuring = s.Loading()
		return "result", nil
	})

	require.NoError(t, err)
	assert.True(t, loadingDuring, "loading must be true while the operation runs")
	assert.False(t, s.Loading())
	assert.NoError(t, s.Error())
	assert.Equal(t, "result", s.Result())
}

// TestRun_Failure verifies a failed operation records its error and keeps
// the previous result.
func TestRun_Failure(t *testing.T) {
	s := NewState[string]()
	s.SetResult("previous")

	opErr := errors.New("platform down")
	err := Run(context.Background(), s, func(ctx context.Context) (string, error) {
		return "", opErr
	})

	assert.ErrorIs(t, err, opErr)
	assert.False(t, s.Loading())
	assert.ErrorIs(t, s.Error(), opErr)
	assert.Equal(t, "previous", s.Result())
}

// TestRun_ErrorClearedOnNextAttempt verifies a new attempt resets the error
// before the operation settles.
func TestRun_ErrorClearedOnNextAttempt(t *testing.T) {
	s := NewState[int]()

	_ = Run(context.Background(), s, func(ctx context.Context) (int, error) {
		return 0, errors.New("first attempt failed")
	})
	require.Error(t, s.Error())

	var errDuring error
	err := Run(context.Background(), s, func(ctx context.Context) (int, error) {
		errDuring = s.Error()
		return 42, nil
	})

	require.NoError(t, err)
	assert.NoError(t, errDuring, "previous error must be cleared when a new attempt begins")
	assert.Equal(t, 42, s.Result())
}

// TestRun_ConcurrentLastWriteWins verifies concurrent operations are memory
// safe and one of them ends up as the result.
func TestRun_ConcurrentLastWriteWins(t *testing.T) {
	s := NewState[int]()

	var wg sync.WaitGroup
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = Run(context.Background(), s, func(ctx context.Context) (int, error) {
				return n, nil
			})
		}(i)
	}
	wg.Wait()

	assert.False(t, s.Loading())
	assert.NoError(t, s.Error())
	got := s.Result()
	assert.GreaterOrEqual(t, got, 1)
	assert.LessOrEqual(t, got, 16)
}

func TestState_SetResultBypassesOperation(t *testing.T) {
	s := NewState[[]string]()
	s.SetResult([]string{"hydrated"})

	assert.Equal(t, []string{"hydrated"}, s.Result())
	assert.False(t, s.Loading())
	assert.NoError(t, s.Error())
}
