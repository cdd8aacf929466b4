package composables

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-connect/pkg/core"
)

// Fake platform shapes for composable tests.
type fakeCart struct {
	ID    string
	Items []fakeItem
}

type fakeItem struct {
	ID        string
	ProductID string
	Quantity  int
}

type fakeProduct struct {
	ID string
}

func fakeCartOps() CartOperations[fakeCart, fakeItem, fakeProduct] {
	return CartOperations[fakeCart, fakeItem, fakeProduct]{
		Load: func(ctx context.Context, c *core.Context) (fakeCart, error) {
			return fakeCart{ID: "cart-1"}, nil
		},
		AddItem: func(ctx context.Context, c *core.Context, cart fakeCart, p fakeProduct, qty int) (fakeCart, error) {
			cart.Items = append(cart.Items, fakeItem{ID: "item-" + p.ID, ProductID: p.ID, Quantity: qty})
			return cart, nil
		},
		RemoveItem: func(ctx context.Context, c *core.Context, cart fakeCart, item fakeItem) (fakeCart, error) {
			kept := cart.Items[:0]
			for _, i := range cart.Items {
				if i.ID != item.ID {
					kept = append(kept, i)
				}
			}
			cart.Items = kept
			return cart, nil
		},
		IsInCart: func(cart fakeCart, p fakeProduct) bool {
			for _, i := range cart.Items {
				if i.ProductID == p.ID {
					return true
				}
			}
			return false
		},
	}
}

func TestNewCartFactory_RequiresLoadAndAddItem(t *testing.T) {
	ops := fakeCartOps()
	ops.Load = nil
	_, err := NewCartFactory(ops)
	assert.Error(t, err)

	ops = fakeCartOps()
	ops.AddItem = nil
	_, err = NewCartFactory(ops)
	assert.Error(t, err)
}

// TestCart_LoadAddRemove drives the full happy path through the state
// container.
func TestCart_LoadAddRemove(t *testing.T) {
	factory, err := NewCartFactory(fakeCartOps())
	require.NoError(t, err)

	cart := factory.UseCart(&core.Context{})
	ctx := context.Background()

	require.NoError(t, cart.Load(ctx))
	assert.Equal(t, "cart-1", cart.Cart().ID)
	assert.False(t, cart.Loading())
	assert.NoError(t, cart.Error())

	prod := fakeProduct{ID: "p-1"}
	assert.False(t, cart.IsInCart(prod))

	require.NoError(t, cart.AddItem(ctx, prod, 2))
	require.Len(t, cart.Cart().Items, 1)
	assert.Equal(t, 2, cart.Cart().Items[0].Quantity)
	assert.True(t, cart.IsInCart(prod))

	require.NoError(t, cart.RemoveItem(ctx, cart.Cart().Items[0]))
	assert.Empty(t, cart.Cart().Items)
}

// TestCart_OptionalOperationsNotSupported verifies absent operations return
// ErrNotSupported without touching the state triple.
func TestCart_OptionalOperationsNotSupported(t *testing.T) {
	ops := CartOperations[fakeCart, fakeItem, fakeProduct]{
		Load:    fakeCartOps().Load,
		AddItem: fakeCartOps().AddItem,
	}
	factory, err := NewCartFactory(ops)
	require.NoError(t, err)

	cart := factory.UseCart(&core.Context{})
	ctx := context.Background()
	require.NoError(t, cart.Load(ctx))
	before := cart.Cart()

	assert.ErrorIs(t, cart.RemoveItem(ctx, fakeItem{}), ErrNotSupported)
	assert.ErrorIs(t, cart.UpdateItemQuantity(ctx, fakeItem{}, 3), ErrNotSupported)
	assert.ErrorIs(t, cart.Clear(ctx), ErrNotSupported)
	assert.ErrorIs(t, cart.ApplyCoupon(ctx, "SAVE10"), ErrNotSupported)
	assert.ErrorIs(t, cart.RemoveCoupon(ctx, "SAVE10"), ErrNotSupported)

	assert.Equal(t, before, cart.Cart())
	assert.NoError(t, cart.Error(), "unsupported operations must not record an error")
	assert.False(t, cart.IsInCart(fakeProduct{ID: "p-1"}), "absent predicate reports false")
}

// TestCart_OperationFailureRecorded verifies a failing operation surfaces in
// both the return value and the state.
func TestCart_OperationFailureRecorded(t *testing.T) {
	opErr := errors.New("cart service unavailable")
	ops := fakeCartOps()
	ops.Load = func(ctx context.Context, c *core.Context) (fakeCart, error) {
		return fakeCart{}, opErr
	}

	factory, err := NewCartFactory(ops)
	require.NoError(t, err)

	cart := factory.UseCart(&core.Context{})
	assert.ErrorIs(t, cart.Load(context.Background()), opErr)
	assert.ErrorIs(t, cart.Error(), opErr)
	assert.False(t, cart.Loading())
}

// TestCart_IndependentStatePerUse verifies each UseCart call gets its own
// state container.
func TestCart_IndependentStatePerUse(t *testing.T) {
	factory, err := NewCartFactory(fakeCartOps())
	require.NoError(t, err)

	c := &core.Context{}
	first := factory.UseCart(c)
	second := factory.UseCart(c)

	require.NoError(t, first.Load(context.Background()))
	assert.Equal(t, "cart-1", first.Cart().ID)
	assert.Empty(t, second.Cart().ID, "sibling composables must not share state")
}
