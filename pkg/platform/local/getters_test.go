package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-connect/pkg/agnostic"
)

// TestProductGetters_NoDiscount verifies a product without a discount maps
// to a regular price with a zero special.
func TestProductGetters_NoDiscount(t *testing.T) {
	g := ProductGetters{}
	p := Product{
		ID:               "p-1",
		Name:             "Kettle",
		PriceNumerator:   1000,
		PriceDenominator: 1,
		EffectivePrice:   "1000",
	}

	price := g.Price(p)
	assert.True(t, price.Regular.Equals(agnostic.NewMoney(1000, 1)))
	assert.True(t, price.Special.IsZero())
	assert.False(t, price.HasDiscount())
	assert.True(t, price.Current().Equals(agnostic.NewMoney(1000, 1)))
}

func TestProductGetters_ActiveDiscount(t *testing.T) {
	g := ProductGetters{}
	p := Product{
		ID:               "p-2",
		PriceNumerator:   2000,
		PriceDenominator: 100,
		DiscountPercent:  "0.25",
		EffectivePrice:   "15",
	}

	price := g.Price(p)
	assert.True(t, price.HasDiscount())
	assert.True(t, price.Special.Equals(agnostic.NewMoney(1500, 100)))
	assert.True(t, price.Current().Equals(agnostic.NewMoney(1500, 100)))
}

// TestCartGetters_Totals verifies subtotal aggregation and the coupon
// discount applied at totals time.
func TestCartGetters_Totals(t *testing.T) {
	cart := Cart{
		ID: "c-1",
		Items: []CartItem{
			{ID: "i-1", Name: "Kettle", PriceNumerator: 1999, PriceDenominator: 100, Quantity: 2},
			{ID: "i-2", Name: "Mug", PriceNumerator: 500, PriceDenominator: 100, Quantity: 1},
		},
	}

	g := NewCartGetters(10)
	totals := g.Totals(cart)

	subtotal := agnostic.NewMoney(4498, 100) // 2 * 19.99 + 5.00
	assert.True(t, totals.Subtotal.Equals(subtotal))
	assert.True(t, totals.Total.Equals(subtotal), "no coupon means total equals subtotal")
	assert.True(t, totals.Special.IsZero())
	assert.Equal(t, 3, g.TotalItems(cart))

	cart.CouponCode = "SAVE10"
	totals = g.Totals(cart)
	discounted := subtotal.MultiplyByFraction(90, 100)
	assert.True(t, totals.Total.Equals(discounted))
	assert.True(t, totals.Special.Equals(discounted))
	assert.True(t, totals.Subtotal.Equals(subtotal))
}

func TestCartGetters_ItemPrice(t *testing.T) {
	g := NewCartGetters(10)
	item := CartItem{PriceNumerator: 1999, PriceDenominator: 100, Quantity: 2}

	price := g.ItemPrice(item)
	assert.True(t, price.Regular.Equals(agnostic.NewMoney(1999, 100)))
	assert.False(t, price.HasDiscount())
}

func TestUserGetters_FullName(t *testing.T) {
	g := UserGetters{}

	cases := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"Ada", "", "Ada"},
		{"", "Lovelace", "Lovelace"},
		{"", "", ""},
	}
	for _, tc := range cases {
		got := g.FullName(User{FirstName: tc.first, LastName: tc.last})
		require.Equal(t, tc.want, got)
	}
}
