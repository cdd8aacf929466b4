package catalog

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-connect/internal/clock"
	"github.com/murkotick/storefront-connect/pkg/core"
)

// Settings keys the catalog connector reads.
const (
	// SettingDatabase is the full Spanner database path,
	// projects/<p>/instances/<i>/databases/<d>.
	SettingDatabase = "catalog.database"
)

// API is the catalog's named request-function set. The catalog is
// read-only, so only product reads are exposed.
type API struct {
	GetProduct   func(ctx context.Context, productID string) (Product, error)
	ListProducts func(ctx context.Context, category string, limit, offset int) ([]ProductSummary, error)

	client *spanner.Client
}

// Close releases the underlying Spanner client.
func (a *API) Close() {
	a.client.Close()
}

func bindAPI(client *spanner.Client, clk clock.Clock) *API {
	reader := NewReader(client, clk)
	return &API{
		GetProduct: reader.GetProduct,
		ListProducts: func(ctx context.Context, category string, limit, offset int) ([]ProductSummary, error) {
			var categoryPtr *string
			if category != "" {
				categoryPtr = &category
			}
			return reader.ListActiveProducts(ctx, categoryPtr, limit, offset)
		},
		client: client,
	}
}

// DefaultSettings are the factory defaults caller settings merge over.
func DefaultSettings() core.Settings {
	return core.Settings{
		SettingDatabase: "projects/test-project/instances/emulator-instance/databases/test-db",
	}
}

// NewClientFactory returns the client factory for the catalog connector.
// ctx bounds the Spanner client construction; clk may be nil for real time.
func NewClientFactory(ctx context.Context, clk clock.Clock) *core.ClientFactory[API] {
	return core.NewClientFactory(DefaultSettings(), func(settings core.Settings) (*API, error) {
		database := settings.String(SettingDatabase, "")
		if database == "" {
			return nil, fmt.Errorf("%s is required", SettingDatabase)
		}

		client, err := spanner.NewClient(ctx, database)
		if err != nil {
			return nil, fmt.Errorf("spanner client: %w", err)
		}
		return bindAPI(client, clk), nil
	})
}
