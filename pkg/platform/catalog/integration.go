package catalog

import (
	"context"

	"github.com/murkotick/storefront-connect/internal/clock"
	"github.com/murkotick/storefront-connect/pkg/agnostic"
	"github.com/murkotick/storefront-connect/pkg/composables"
	"github.com/murkotick/storefront-connect/pkg/core"
)

// Tag is the registry tag the catalog integration registers under.
const Tag = "catalog"

// Integration bundles the configured core integration with the
// product-search composable factory. The catalog carries no cart or user
// features.
type Integration struct {
	Core     *core.Integration[API]
	Products *composables.ProductFactory[ProductSummary]
}

// Setup creates the catalog integration against the Spanner database named
// in settings.
func Setup(ctx context.Context, settings core.Settings, clk clock.Clock) (*Integration, error) {
	coreIntegration, err := core.Setup(Tag, NewClientFactory(ctx, clk), settings)
	if err != nil {
		return nil, err
	}

	products, err := composables.NewProductFactory(productOperations())
	if err != nil {
		return nil, err
	}

	return &Integration{Core: coreIntegration, Products: products}, nil
}

// Context returns the shared context.
func (i *Integration) Context() *core.Context {
	return i.Core.Context()
}

// UseProduct creates a product-search composable bound to this integration.
func (i *Integration) UseProduct() *composables.ProductSearch[ProductSummary] {
	return i.Products.UseProduct(i.Core.Context())
}

// Close releases the Spanner client.
func (i *Integration) Close() {
	i.Core.API().Close()
}

// productOperations adapts the catalog reads to the product composable
// contract. The catalog has no free-text search; Term is ignored and
// filtering happens on category only.
func productOperations() composables.ProductOperations[ProductSummary] {
	return composables.ProductOperations[ProductSummary]{
		Search: func(ctx context.Context, c *core.Context, params composables.SearchParams) (composables.SearchResult[ProductSummary], error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return composables.SearchResult[ProductSummary]{}, err
			}

			if params.ID != "" {
				prod, err := api.GetProduct(ctx, params.ID)
				if err != nil {
					return composables.SearchResult[ProductSummary]{}, err
				}
				summary := ProductSummary{
					ProductID:      prod.ProductID,
					Name:           prod.Name,
					Category:       prod.Category,
					EffectivePrice: prod.EffectivePrice,
					BasePriceNum:   prod.BasePriceNum,
					BasePriceDen:   prod.BasePriceDen,
					Status:         prod.Status,
				}
				return composables.SearchResult[ProductSummary]{
					Products:   []ProductSummary{summary},
					Pagination: agnostic.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 1},
				}, nil
			}

			perPage := params.PerPage
			if perPage <= 0 {
				perPage = 20
			}
			if perPage > 200 {
				perPage = 200
			}
			page := params.Page
			if page <= 0 {
				page = 1
			}
			offset := (page - 1) * perPage

			items, err := api.ListProducts(ctx, params.Category, perPage, offset)
			if err != nil {
				return composables.SearchResult[ProductSummary]{}, err
			}

			// The read model exposes no total count; the page shape is
			// derived from what came back.
			totalPages := page
			if len(items) == perPage {
				totalPages = page + 1
			}

			return composables.SearchResult[ProductSummary]{
				Products: items,
				Pagination: agnostic.Pagination{
					CurrentPage:  page,
					TotalPages:   totalPages,
					TotalItems:   (page-1)*perPage + len(items),
					ItemsPerPage: perPage,
				},
			}, nil
		},
	}
}
