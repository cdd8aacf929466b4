package local

import (
	"context"

	"github.com/murkotick/storefront-connect/internal/clock"
	"github.com/murkotick/storefront-connect/pkg/core"
)

// Settings keys the local platform reads.
const (
	SettingDataDir       = "local.data_dir"
	SettingCouponPercent = "local.coupon_percent"
)

// API is the local platform's named request-function set. Setup binds every
// field to one Platform instance; Extend may swap or add individual
// functions without disturbing the rest.
type API struct {
	GetProduct     func(ctx context.Context, id string) (Product, error)
	SearchProducts func(ctx context.Context, term, category string, limit, offset int) ([]Product, int, error)

	LoadCart               func(ctx context.Context) (Cart, error)
	AddCartItem            func(ctx context.Context, cartID, productID string, quantity int) (Cart, error)
	RemoveCartItem         func(ctx context.Context, cartID, itemID string) (Cart, error)
	UpdateCartItemQuantity func(ctx context.Context, cartID, itemID string, quantity int) (Cart, error)
	ClearCart              func(ctx context.Context, cartID string) (Cart, error)
	SetCoupon              func(ctx context.Context, cartID, code string) (Cart, error)
	ClearCoupon            func(ctx context.Context, cartID string) (Cart, error)

	LoadUser       func(ctx context.Context) (User, error)
	LogIn          func(ctx context.Context, email, password string) (User, error)
	LogOut         func(ctx context.Context) error
	Register       func(ctx context.Context, email, password, firstName, lastName string) (User, error)
	UpdateProfile  func(ctx context.Context, userID, email, firstName, lastName string) (User, error)
	ChangePassword func(ctx context.Context, userID, current, replacement string) (User, error)

	// platform backs the bound functions; kept so Extend helpers and tests
	// can reach the seeding hooks.
	platform *Platform
}

// Platform returns the backing platform, for seeding and shutdown.
func (a *API) Platform() *Platform {
	return a.platform
}

func bindAPI(p *Platform) *API {
	return &API{
		GetProduct:     p.GetProduct,
		SearchProducts: p.SearchProducts,

		LoadCart:               p.LoadCart,
		AddCartItem:            p.AddCartItem,
		RemoveCartItem:         p.RemoveCartItem,
		UpdateCartItemQuantity: p.UpdateCartItemQuantity,
		ClearCart:              p.ClearCart,
		SetCoupon:              p.SetCoupon,
		ClearCoupon:            p.ClearCoupon,

		LoadUser:       p.LoadUser,
		LogIn:          p.Authenticate,
		LogOut:         p.EndSession,
		Register:       p.Register,
		UpdateProfile:  p.UpdateProfile,
		ChangePassword: p.ChangePassword,

		platform: p,
	}
}

// DefaultSettings are the factory defaults caller settings merge over.
func DefaultSettings() core.Settings {
	return core.Settings{
		SettingDataDir:       ".storefront",
		SettingCouponPercent: 10,
	}
}

// NewClientFactory returns the client factory for the local platform. The
// setup function opens the SQLite database described by the merged settings
// and binds the full request-function set to it.
func NewClientFactory(clk clock.Clock) *core.ClientFactory[API] {
	return core.NewClientFactory(DefaultSettings(), func(settings core.Settings) (*API, error) {
		platform, err := Open(
			settings.String(SettingDataDir, ".storefront"),
			clk,
			settings.Int(SettingCouponPercent, 10),
		)
		if err != nil {
			return nil, err
		}
		return bindAPI(platform), nil
	})
}
