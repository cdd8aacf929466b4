package local

import (
	"github.com/murkotick/storefront-connect/pkg/agnostic"
	"github.com/murkotick/storefront-connect/pkg/getters"
)

// Compile-time checks: the local getters satisfy the agnostic contracts.
var (
	_ getters.Product[Product]     = ProductGetters{}
	_ getters.Cart[Cart, CartItem] = CartGetters{}
	_ getters.User[User]           = UserGetters{}
)

// ProductGetters maps local products to agnostic display values.
type ProductGetters struct{}

func (ProductGetters) ID(p Product) string { return p.ID }

func (ProductGetters) Name(p Product) string { return p.Name }

func (ProductGetters) Description(p Product) string { return p.Description }

func (ProductGetters) Category(p Product) string { return p.Category }

// Price returns the regular/special pair. Special is zero unless a discount
// is currently in effect.
func (ProductGetters) Price(p Product) agnostic.Price {
	regular := agnostic.NewMoney(p.PriceNumerator, p.PriceDenominator)

	special := agnostic.Zero()
	if p.EffectivePrice != "" {
		if effective, err := agnostic.NewMoneyFromDecimal(p.EffectivePrice); err == nil {
			if effective.LessThan(regular) {
				special = effective
			}
		}
	}
	return agnostic.NewPrice(regular, special)
}

// CartGetters maps local carts to agnostic display values. couponPercent is
// the platform's flat coupon percentage, fixed at construction so the
// getters stay pure.
type CartGetters struct {
	couponPercent int64
}

// NewCartGetters builds cart getters for a platform configured with the
// given coupon percentage (0-100).
func NewCartGetters(couponPercent int64) CartGetters {
	return CartGetters{couponPercent: couponPercent}
}

func (CartGetters) ID(c Cart) string { return c.ID }

func (CartGetters) Items(c Cart) []CartItem { return c.Items }

func (CartGetters) ItemID(i CartItem) string { return i.ID }

func (CartGetters) ItemName(i CartItem) string { return i.Name }

func (CartGetters) ItemQuantity(i CartItem) int { return i.Quantity }

// ItemPrice returns the line item's captured unit price. Line items carry
// the price that was in effect at add time, so no special price applies.
func (CartGetters) ItemPrice(i CartItem) agnostic.Price {
	return agnostic.NewPrice(agnostic.NewMoney(i.PriceNumerator, i.PriceDenominator), nil)
}

// Totals sums line totals into the subtotal and applies the coupon
// percentage when a code is set.
func (g CartGetters) Totals(c Cart) agnostic.Totals {
	subtotal := agnostic.Zero()
	for _, item := range c.Items {
		line := agnostic.NewMoney(item.PriceNumerator, item.PriceDenominator).
			MultiplyByQuantity(int64(item.Quantity))
		subtotal = subtotal.Add(line)
	}

	total := subtotal
	special := agnostic.Zero()
	if c.CouponCode != "" && g.couponPercent > 0 {
		discount := subtotal.MultiplyByFraction(g.couponPercent, 100)
		total = subtotal.Subtract(discount)
		special = total
	}

	return agnostic.Totals{Total: total, Subtotal: subtotal, Special: special}
}

// TotalItems counts units across all lines.
func (CartGetters) TotalItems(c Cart) int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// UserGetters maps local users to agnostic display values.
type UserGetters struct{}

func (UserGetters) FirstName(u User) string { return u.FirstName }

func (UserGetters) LastName(u User) string { return u.LastName }

func (UserGetters) Email(u User) string { return u.Email }

func (UserGetters) FullName(u User) string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
