package composables

import (
	"context"
	"errors"

	"github.com/murkotick/storefront-connect/pkg/agnostic"
	"github.com/murkotick/storefront-connect/pkg/core"
)

// SearchParams is the call-specific input to a product search. Zero-valued
// fields mean "no filter"; paging defaults are applied by the platform.
type SearchParams struct {
	ID       string
	Term     string
	Category string
	Page     int
	PerPage  int
}

// SearchResult bundles the platform products with agnostic paging info.
type SearchResult[P any] struct {
	Products   []P
	Pagination agnostic.Pagination
}

// ProductOperations is the platform implementation a product-search
// composable is built from.
type ProductOperations[P any] struct {
	Search func(ctx context.Context, c *core.Context, params SearchParams) (SearchResult[P], error)
}

// ProductFactory produces ProductSearch composables bound to a context.
type ProductFactory[P any] struct {
	ops ProductOperations[P]
}

// NewProductFactory validates the operations and returns the factory.
func NewProductFactory[P any](ops ProductOperations[P]) (*ProductFactory[P], error) {
	if ops.Search == nil {
		return nil, errors.New("composables: product operations require Search")
	}
	return &ProductFactory[P]{ops: ops}, nil
}

// UseProduct creates a product-search composable with fresh state.
func (f *ProductFactory[P]) UseProduct(c *core.Context) *ProductSearch[P] {
	return &ProductSearch[P]{ctx: c, ops: f.ops, state: core.NewState[SearchResult[P]]()}
}

// ProductSearch is the product catalog feature composable.
type ProductSearch[P any] struct {
	ctx   *core.Context
	ops   ProductOperations[P]
	state *core.State[SearchResult[P]]
}

// Products returns the products of the last successful search.
func (pc *ProductSearch[P]) Products() []P {
	return pc.state.Result().Products
}

// Pagination returns the paging info of the last successful search.
func (pc *ProductSearch[P]) Pagination() agnostic.Pagination {
	return pc.state.Result().Pagination
}

// Loading reports whether a search is in flight.
func (pc *ProductSearch[P]) Loading() bool {
	return pc.state.Loading()
}

// Error returns the error of the last settled search, or nil.
func (pc *ProductSearch[P]) Error() error {
	return pc.state.Error()
}

// Search runs a product search with the given params.
func (pc *ProductSearch[P]) Search(ctx context.Context, params SearchParams) error {
	return core.Run(ctx, pc.state, func(ctx context.Context) (SearchResult[P], error) {
		return pc.ops.Search(ctx, pc.ctx, params)
	})
}
