package agnostic

import (
	"math/big"
	"time"
)

// Price is the agnostic price pair shown next to a product or line item.
// Regular is the undiscounted price. Special is the currently discounted
// price, or zero when no discount applies.
type Price struct {
	Regular *Money
	Special *Money
}

// NewPrice builds a Price. A nil special becomes zero.
func NewPrice(regular, special *Money) Price {
	if regular == nil {
		regular = Zero()
	}
	if special == nil {
		special = Zero()
	}
	return Price{Regular: regular, Special: special}
}

// Current returns the price a buyer pays right now: the special price when
// one is set, otherwise the regular price.
func (p Price) Current() *Money {
	if !p.Special.IsZero() {
		return p.Special
	}
	return p.Regular
}

// HasDiscount reports whether a special price is in effect.
func (p Price) HasDiscount() bool {
	return !p.Special.IsZero() && p.Special.LessThan(p.Regular)
}

// EffectivePrice computes the price in effect at now for a base price with
// an optional percentage discount window. The window is inclusive on both
// ends. discountPct is a fraction in [0,1]; values above 1 are treated as a
// percent and divided by 100, matching how catalog backends store NUMERIC
// discount columns.
func EffectivePrice(base *Money, discountPct *big.Rat, start, end *time.Time, now time.Time) *Money {
	if base == nil {
		return Zero()
	}
	if discountPct == nil || discountPct.Sign() == 0 {
		return base
	}
	if start != nil && now.Before(*start) {
		return base
	}
	if end != nil && now.After(*end) {
		return base
	}

	pct := new(big.Rat).Set(discountPct)
	if pct.Cmp(big.NewRat(1, 1)) == 1 {
		pct = new(big.Rat).Quo(pct, big.NewRat(100, 1))
	}

	discountAmount := base.MultiplyByRat(pct)
	return base.Subtract(discountAmount)
}

// Totals is the agnostic cart totals record.
type Totals struct {
	Total    *Money
	Subtotal *Money
	Special  *Money
}

// Pagination is the agnostic paging record for list results.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}
