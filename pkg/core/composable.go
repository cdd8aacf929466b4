package core

import (
	"context"
	"sync"
)

// State is the reactive record backing one feature composable: the feature's
// result payload, a loading flag and the last error. It is created on first
// use of the composable and mutated by Run around every operation call.
//
// Invariant: loading is true exactly while an in-flight operation has not
// settled, and the error is non-nil only after a failed operation until the
// next attempt begins.
//
// The mutex makes concurrent access memory-safe, but no coordination is
// added on top: concurrent invocations are not deduplicated and the last
// operation to settle wins.
type State[T any] struct {
	mu      sync.RWMutex
	result  T
	loading bool
	err     error
}

// NewState creates an idle state with a zero result.
func NewState[T any]() *State[T] {
	return &State[T]{}
}

// Result returns the feature's current result payload.
func (s *State[T]) Result() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Loading reports whether an operation is in flight.
func (s *State[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the error of the last settled operation, or nil.
func (s *State[T]) Error() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// SetResult overwrites the result payload directly, bypassing an operation.
// Used by platforms that hydrate state out of band (e.g. from a cache).
func (s *State[T]) SetResult(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = v
}

func (s *State[T]) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
}

func (s *State[T]) succeed(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = v
	s.loading = false
}

func (s *State[T]) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	s.loading = false
}

// Run is the operation wrapper every composable method goes through. It sets
// loading true and clears the previous error, invokes op, then writes the
// result on success or the error on failure and resets loading either way.
// The operation's error is also returned unchanged so callers can branch
// without re-reading the state.
func Run[T any](ctx context.Context, s *State[T], op func(ctx context.Context) (T, error)) error {
	s.begin()
	v, err := op(ctx)
	if err != nil {
		s.fail(err)
		return err
	}
	s.succeed(v)
	return nil
}
