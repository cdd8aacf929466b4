package catalog

import (
	"github.com/murkotick/storefront-connect/pkg/agnostic"
	"github.com/murkotick/storefront-connect/pkg/getters"
)

// Compile-time checks: the catalog getters satisfy the agnostic contracts.
var (
	_ getters.Product[Product]        = ProductGetters{}
	_ getters.Product[ProductSummary] = SummaryGetters{}
)

// ProductGetters maps full catalog products to agnostic display values.
type ProductGetters struct{}

func (ProductGetters) ID(p Product) string { return p.ProductID }

func (ProductGetters) Name(p Product) string { return p.Name }

func (ProductGetters) Description(p Product) string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

func (ProductGetters) Category(p Product) string { return p.Category }

// Price returns the regular/special pair. Special is zero unless the
// read-time effective price is below the base price.
func (ProductGetters) Price(p Product) agnostic.Price {
	return priceFrom(p.BasePriceNum, p.BasePriceDen, p.EffectivePrice)
}

// SummaryGetters maps catalog list rows to agnostic display values. List
// rows carry no description.
type SummaryGetters struct{}

func (SummaryGetters) ID(p ProductSummary) string { return p.ProductID }

func (SummaryGetters) Name(p ProductSummary) string { return p.Name }

func (SummaryGetters) Description(ProductSummary) string { return "" }

func (SummaryGetters) Category(p ProductSummary) string { return p.Category }

func (SummaryGetters) Price(p ProductSummary) agnostic.Price {
	return priceFrom(p.BasePriceNum, p.BasePriceDen, p.EffectivePrice)
}

func priceFrom(num, den int64, effective string) agnostic.Price {
	regular := agnostic.NewMoney(num, den)

	special := agnostic.Zero()
	if effective != "" {
		if eff, err := agnostic.NewMoneyFromDecimal(effective); err == nil {
			if eff.LessThan(regular) {
				special = eff
			}
		}
	}
	return agnostic.NewPrice(regular, special)
}
