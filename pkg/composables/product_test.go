package composables

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-connect/pkg/agnostic"
	"github.com/murkotick/storefront-connect/pkg/core"
)

type fakeCatalogProduct struct {
	ID   string
	Name string
}

func TestNewProductFactory_RequiresSearch(t *testing.T) {
	_, err := NewProductFactory(ProductOperations[fakeCatalogProduct]{})
	assert.Error(t, err)
}

// TestProductSearch_Success verifies a search stores products and paging
// info on the state.
func TestProductSearch_Success(t *testing.T) {
	var gotParams SearchParams
	ops := ProductOperations[fakeCatalogProduct]{
		Search: func(ctx context.Context, c *core.Context, params SearchParams) (SearchResult[fakeCatalogProduct], error) {
			gotParams = params
			return SearchResult[fakeCatalogProduct]{
				Products: []fakeCatalogProduct{{ID: "p-1", Name: "Mug"}},
				Pagination: agnostic.Pagination{
					CurrentPage: 2, TotalPages: 5, TotalItems: 42, ItemsPerPage: 10,
				},
			}, nil
		},
	}

	factory, err := NewProductFactory(ops)
	require.NoError(t, err)

	search := factory.UseProduct(&core.Context{})
	err = search.Search(context.Background(), SearchParams{Term: "mug", Page: 2, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, "mug", gotParams.Term)
	require.Len(t, search.Products(), 1)
	assert.Equal(t, "Mug", search.Products()[0].Name)
	assert.Equal(t, 42, search.Pagination().TotalItems)
	assert.False(t, search.Loading())
	assert.NoError(t, search.Error())
}

func TestProductSearch_FailureKeepsPreviousResult(t *testing.T) {
	searchErr := errors.New("catalog unavailable")
	failNext := false
	ops := ProductOperations[fakeCatalogProduct]{
		Search: func(ctx context.Context, c *core.Context, params SearchParams) (SearchResult[fakeCatalogProduct], error) {
			if failNext {
				return SearchResult[fakeCatalogProduct]{}, searchErr
			}
			return SearchResult[fakeCatalogProduct]{
				Products: []fakeCatalogProduct{{ID: "p-1"}},
			}, nil
		},
	}

	factory, err := NewProductFactory(ops)
	require.NoError(t, err)

	search := factory.UseProduct(&core.Context{})
	ctx := context.Background()
	require.NoError(t, search.Search(ctx, SearchParams{}))

	failNext = true
	assert.ErrorIs(t, search.Search(ctx, SearchParams{}), searchErr)
	assert.ErrorIs(t, search.Error(), searchErr)
	assert.Len(t, search.Products(), 1, "failed search must keep the previous result")
}
