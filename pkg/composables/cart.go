// Package composables provides the feature composable factories: given a
// platform's operation implementations, each factory produces a constructor
// that binds those operations to a fresh reactive state container.
//
// Every operation receives the integration's shared *core.Context as its
// second argument; the composable injects it so UI-facing methods only take
// call-specific parameters. All methods drive the result/loading/error
// triple through core.Run.
package composables

import (
	"context"
	"errors"

	"github.com/murkotick/storefront-connect/pkg/core"
)

// ErrNotSupported is returned by composable methods whose operation the
// platform did not supply.
var ErrNotSupported = errors.New("operation not supported by platform")

// CartOperations is the set of platform implementations a cart composable
// is built from. Load and AddItem are required; the rest are optional and
// their methods return ErrNotSupported when absent.
type CartOperations[C, I, P any] struct {
	Load               func(ctx context.Context, c *core.Context) (C, error)
	AddItem            func(ctx context.Context, c *core.Context, cart C, product P, quantity int) (C, error)
	RemoveItem         func(ctx context.Context, c *core.Context, cart C, item I) (C, error)
	UpdateItemQuantity func(ctx context.Context, c *core.Context, cart C, item I, quantity int) (C, error)
	Clear              func(ctx context.Context, c *core.Context, cart C) (C, error)
	ApplyCoupon        func(ctx context.Context, c *core.Context, cart C, couponCode string) (C, error)
	RemoveCoupon       func(ctx context.Context, c *core.Context, cart C, couponCode string) (C, error)

	// IsInCart is a pure predicate, not a request; it never touches state.
	IsInCart func(cart C, product P) bool
}

// CartFactory produces Cart composables bound to a context.
type CartFactory[C, I, P any] struct {
	ops CartOperations[C, I, P]
}

// NewCartFactory validates the required operations and returns the factory.
func NewCartFactory[C, I, P any](ops CartOperations[C, I, P]) (*CartFactory[C, I, P], error) {
	if ops.Load == nil {
		return nil, errors.New("composables: cart operations require Load")
	}
	if ops.AddItem == nil {
		return nil, errors.New("composables: cart operations require AddItem")
	}
	return &CartFactory[C, I, P]{ops: ops}, nil
}

// UseCart creates a cart composable with fresh state for the given context.
// State lives as long as the returned value; the toolkit never destroys it.
func (f *CartFactory[C, I, P]) UseCart(c *core.Context) *Cart[C, I, P] {
	return &Cart[C, I, P]{ctx: c, ops: f.ops, state: core.NewState[C]()}
}

// Cart is the cart feature composable: a state triple plus the platform
// operations bound to it.
type Cart[C, I, P any] struct {
	ctx   *core.Context
	ops   CartOperations[C, I, P]
	state *core.State[C]
}

// Cart returns the current cart payload.
func (cc *Cart[C, I, P]) Cart() C {
	return cc.state.Result()
}

// Loading reports whether a cart operation is in flight.
func (cc *Cart[C, I, P]) Loading() bool {
	return cc.state.Loading()
}

// Error returns the error of the last settled cart operation, or nil.
func (cc *Cart[C, I, P]) Error() error {
	return cc.state.Error()
}

// Load fetches the cart from the platform.
func (cc *Cart[C, I, P]) Load(ctx context.Context) error {
	return core.Run(ctx, cc.state, func(ctx context.Context) (C, error) {
		return cc.ops.Load(ctx, cc.ctx)
	})
}

// AddItem adds quantity units of product to the cart.
func (cc *Cart[C, I, P]) AddItem(ctx context.Context, product P, quantity int) error {
	return core.Run(ctx, cc.state, func(ctx context.Context) (C, error) {
		return cc.ops.AddItem(ctx, cc.ctx, cc.state.Result(), product, quantity)
	})
}

// RemoveItem removes a line item from the cart.
func (cc *Cart[C, I, P]) RemoveItem(ctx context.Context, item I) error {
	if cc.ops.RemoveItem == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, cc.state, func(ctx context.Context) (C, error) {
		return cc.ops.RemoveItem(ctx, cc.ctx, cc.state.Result(), item)
	})
}

// UpdateItemQuantity changes the quantity of a line item.
func (cc *Cart[C, I, P]) UpdateItemQuantity(ctx context.Context, item I, quantity int) error {
	if cc.ops.UpdateItemQuantity == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, cc.state, func(ctx context.Context) (C, error) {
		return cc.ops.UpdateItemQuantity(ctx, cc.ctx, cc.state.Result(), item, quantity)
	})
}

// Clear empties the cart.
func (cc *Cart[C, I, P]) Clear(ctx context.Context) error {
	if cc.ops.Clear == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, cc.state, func(ctx context.Context) (C, error) {
		return cc.ops.Clear(ctx, cc.ctx, cc.state.Result())
	})
}

// ApplyCoupon applies a coupon code to the cart.
func (cc *Cart[C, I, P]) ApplyCoupon(ctx context.Context, couponCode string) error {
	if cc.ops.ApplyCoupon == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, cc.state, func(ctx context.Context) (C, error) {
		return cc.ops.ApplyCoupon(ctx, cc.ctx, cc.state.Result(), couponCode)
	})
}

// RemoveCoupon removes a previously applied coupon code.
func (cc *Cart[C, I, P]) RemoveCoupon(ctx context.Context, couponCode string) error {
	if cc.ops.RemoveCoupon == nil {
		return ErrNotSupported
	}
	return core.Run(ctx, cc.state, func(ctx context.Context) (C, error) {
		return cc.ops.RemoveCoupon(ctx, cc.ctx, cc.state.Result(), couponCode)
	})
}

// IsInCart reports whether product is already in the current cart. Returns
// false when the platform supplied no predicate.
func (cc *Cart[C, I, P]) IsInCart(product P) bool {
	if cc.ops.IsInCart == nil {
		return false
	}
	return cc.ops.IsInCart(cc.state.Result(), product)
}
