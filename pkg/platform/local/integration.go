package local

import (
	"context"
	"math"

	"github.com/murkotick/storefront-connect/internal/clock"
	"github.com/murkotick/storefront-connect/pkg/agnostic"
	"github.com/murkotick/storefront-connect/pkg/composables"
	"github.com/murkotick/storefront-connect/pkg/core"
)

// Tag is the registry tag the local integration registers under.
const Tag = "local"

// Integration bundles the configured core integration with the composable
// factories for the local platform's shapes. It is what an application (or
// the CLI) constructs once at startup.
type Integration struct {
	Core     *core.Integration[API]
	Carts    *composables.CartFactory[Cart, CartItem, Product]
	Users    *composables.UserFactory[User]
	Products *composables.ProductFactory[Product]
}

// Setup creates the local integration: client setup, shared context, and
// the three composable factories wired to the platform's operations.
func Setup(settings core.Settings, clk clock.Clock) (*Integration, error) {
	coreIntegration, err := core.Setup(Tag, NewClientFactory(clk), settings)
	if err != nil {
		return nil, err
	}

	carts, err := composables.NewCartFactory(cartOperations())
	if err != nil {
		return nil, err
	}
	users, err := composables.NewUserFactory(userOperations())
	if err != nil {
		return nil, err
	}
	products, err := composables.NewProductFactory(productOperations())
	if err != nil {
		return nil, err
	}

	return &Integration{
		Core:     coreIntegration,
		Carts:    carts,
		Users:    users,
		Products: products,
	}, nil
}

// Context returns the shared context.
func (i *Integration) Context() *core.Context {
	return i.Core.Context()
}

// UseCart creates a cart composable bound to this integration.
func (i *Integration) UseCart() *composables.Cart[Cart, CartItem, Product] {
	return i.Carts.UseCart(i.Core.Context())
}

// UseUser creates a user composable bound to this integration.
func (i *Integration) UseUser() *composables.User[User] {
	return i.Users.UseUser(i.Core.Context())
}

// UseProduct creates a product-search composable bound to this integration.
func (i *Integration) UseProduct() *composables.ProductSearch[Product] {
	return i.Products.UseProduct(i.Core.Context())
}

// Close shuts the backing platform down.
func (i *Integration) Close() error {
	return i.Core.API().Platform().Close()
}

// cartOperations adapts the platform request functions to the cart
// composable contract. Every operation pulls the typed API back out of the
// injected context, so extensions that swap API functions take effect
// without rewiring the factories.
func cartOperations() composables.CartOperations[Cart, CartItem, Product] {
	return composables.CartOperations[Cart, CartItem, Product]{
		Load: func(ctx context.Context, c *core.Context) (Cart, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return Cart{}, err
			}
			return api.LoadCart(ctx)
		},
		AddItem: func(ctx context.Context, c *core.Context, cart Cart, product Product, quantity int) (Cart, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return Cart{}, err
			}
			if cart.ID == "" {
				loaded, err := api.LoadCart(ctx)
				if err != nil {
					return Cart{}, err
				}
				cart = loaded
			}
			return api.AddCartItem(ctx, cart.ID, product.ID, quantity)
		},
		RemoveItem: func(ctx context.Context, c *core.Context, cart Cart, item CartItem) (Cart, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return Cart{}, err
			}
			return api.RemoveCartItem(ctx, cart.ID, item.ID)
		},
		UpdateItemQuantity: func(ctx context.Context, c *core.Context, cart Cart, item CartItem, quantity int) (Cart, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return Cart{}, err
			}
			return api.UpdateCartItemQuantity(ctx, cart.ID, item.ID, quantity)
		},
		Clear: func(ctx context.Context, c *core.Context, cart Cart) (Cart, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return Cart{}, err
			}
			return api.ClearCart(ctx, cart.ID)
		},
		ApplyCoupon: func(ctx context.Context, c *core.Context, cart Cart, couponCode string) (Cart, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return Cart{}, err
			}
			return api.SetCoupon(ctx, cart.ID, couponCode)
		},
		RemoveCoupon: func(ctx context.Context, c *core.Context, cart Cart, couponCode string) (Cart, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return Cart{}, err
			}
			return api.ClearCoupon(ctx, cart.ID)
		},
		IsInCart: func(cart Cart, product Product) bool {
			for _, item := range cart.Items {
				if item.ProductID == product.ID {
					return true
				}
			}
			return false
		},
	}
}

func userOperations() composables.UserOperations[User] {
	return composables.UserOperations[User]{
		Load: func(ctx context.Context, c *core.Context) (User, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return User{}, err
			}
			return api.LoadUser(ctx)
		},
		LogIn: func(ctx context.Context, c *core.Context, email, password string) (User, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return User{}, err
			}
			return api.LogIn(ctx, email, password)
		},
		LogOut: func(ctx context.Context, c *core.Context, user User) error {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return err
			}
			return api.LogOut(ctx)
		},
		Register: func(ctx context.Context, c *core.Context, input composables.RegisterInput) (User, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return User{}, err
			}
			return api.Register(ctx, input.Email, input.Password, input.FirstName, input.LastName)
		},
		UpdateProfile: func(ctx context.Context, c *core.Context, user User, input composables.ProfileInput) (User, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return User{}, err
			}
			return api.UpdateProfile(ctx, user.ID, input.Email, input.FirstName, input.LastName)
		},
		ChangePassword: func(ctx context.Context, c *core.Context, user User, current, replacement string) (User, error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return User{}, err
			}
			return api.ChangePassword(ctx, user.ID, current, replacement)
		},
	}
}

func productOperations() composables.ProductOperations[Product] {
	return composables.ProductOperations[Product]{
		Search: func(ctx context.Context, c *core.Context, params composables.SearchParams) (composables.SearchResult[Product], error) {
			api, err := core.APIFrom[API](c)
			if err != nil {
				return composables.SearchResult[Product]{}, err
			}

			if params.ID != "" {
				prod, err := api.GetProduct(ctx, params.ID)
				if err != nil {
					return composables.SearchResult[Product]{}, err
				}
				return composables.SearchResult[Product]{
					Products:   []Product{prod},
					Pagination: agnostic.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 1},
				}, nil
			}

			perPage := params.PerPage
			if perPage <= 0 {
				perPage = 20
			}
			page := params.Page
			if page <= 0 {
				page = 1
			}
			offset := (page - 1) * perPage

			products, total, err := api.SearchProducts(ctx, params.Term, params.Category, perPage, offset)
			if err != nil {
				return composables.SearchResult[Product]{}, err
			}

			return composables.SearchResult[Product]{
				Products: products,
				Pagination: agnostic.Pagination{
					CurrentPage:  page,
					TotalPages:   int(math.Ceil(float64(total) / float64(perPage))),
					TotalItems:   total,
					ItemsPerPage: perPage,
				},
			}, nil
		},
	}
}
