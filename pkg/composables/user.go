package composables

import (
	"context"
	"errors"

	"github.com/murkotick/storefront-connect/pkg/core"
)

// RegisterInput carries the fields a new account is created from.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProfileInput carries the mutable profile fields. Empty fields are left
// unchanged by the platform.
type ProfileInput struct {
	Email     string
	FirstName string
	LastName  string
}

// UserOperations is the set of platform implementations a user composable is
// built from. Load and LogIn are required.
type UserOperations[U any] struct {
	Load           func(ctx context.Context, c *core.Context) (U, error)
	LogIn          func(ctx context.Context, c *core.Context, email, password string) (U, error)
	LogOut         func(ctx context.Context, c *core.Context, user U) error
	Register       func(ctx context.Context, c *core.Context, input RegisterInput) (U, error)
	UpdateProfile  func(ctx context.Context, c *core.Context, user U, input ProfileInput) (U, error)
	ChangePassword func(ctx context.Context, c *core.Context, user U, current, replacement string) (U, error)
}

// UserFactory produces User composables bound to a context.
type UserFactory[U any] struct {
	ops UserOperations[U]
}

// NewUserFactory validates the required operations and returns the factory.
func NewUserFactory[U any](ops UserOperations[U]) (*UserFactory[U], error) {
	if ops.Load == nil {
		return nil, errors.New("composables: user operations require Load")
	}
	if ops.LogIn == nil {
		return nil, errors.New("composables: user operations require LogIn")
	}
	return &UserFactory[U]{ops: ops}, nil
}

// UseUser creates a user composable with fresh state for the given context.
func (f *UserFactory[U]) UseUser(c *core.Context) *User[U] {
	return &User[U]{ctx: c, ops: f.ops, state: core.NewState[U]()}
}

// User is the user/session feature composable.
type User[U any] struct {
	ctx   *core.Context
	ops   UserOperations[U]
	state *core.State[U]
}

// User returns the current user payload. Zero value when nobody is logged in.
func (uc *User[U]) User() U {
	return uc.state.Result()
}

// Loading reports whether a user operation is in flight.
func (uc *User[U]) Loading() bool {
	return uc.state.Loading()
}

// Error returns the error of the last settled user operation, or nil.
func (uc *User[U]) Error() error {
	return uc.state.Error()
}

// Load fetches the current user from the platform.
func (uc *User[U]) Load(ctx context.Context) error {
	return core.Run(ctx, uc.state, func(ctx context.Context) (U, error) {
		return uc.ops.Load(ctx, uc.ctx)
	})
}

// LogIn authenticates and stores the resulting user.
func (uc *User[U]) LogIn(ctx context.Context, email, password string) error {
	return core.Run(ctx, uc.state, func(ctx context.Context) (U, error) {
		return uc.ops.LogIn(ctx, uc.ctx, email, password)
	})
}

// LogOut ends the session and resets the user payload to its zero value.
func (uc *User[U]) LogOut(ctx context.Context) error {
	if uc.ops.LogOut == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, uc.state, func(ctx context.Context) (U, error) {
		var zero U
		if err := uc.ops.LogOut(ctx, uc.ctx, uc.state.Result()); err != nil {
			return zero, err
		}
		return zero, nil
	})
}

// Register creates a new account and stores the resulting user.
func (uc *User[U]) Register(ctx context.Context, input RegisterInput) error {
	if uc.ops.Register == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, uc.state, func(ctx context.Context) (U, error) {
		return uc.ops.Register(ctx, uc.ctx, input)
	})
}

// UpdateProfile updates the current user's profile fields.
func (uc *User[U]) UpdateProfile(ctx context.Context, input ProfileInput) error {
	if uc.ops.UpdateProfile == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, uc.state, func(ctx context.Context) (U, error) {
		return uc.ops.UpdateProfile(ctx, uc.ctx, uc.state.Result(), input)
	})
}

// ChangePassword swaps the current password for a new one.
func (uc *User[U]) ChangePassword(ctx context.Context, current, replacement string) error {
	if uc.ops.ChangePassword == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, uc.state, func(ctx context.Context) (U, error) {
		return uc.ops.ChangePassword(ctx, uc.ctx, uc.state.Result(), current, replacement)
	})
}
