// Package getters declares the pure mapping contracts between
// platform-specific response shapes and the agnostic values in pkg/agnostic.
//
// Getter implementations are stateless and side-effect free: they only read
// from the platform object they are handed. They do no error handling of
// their own; callers ensure non-nil input or accept the resulting panic,
// exactly like template code would.
package getters

import "github.com/murkotick/storefront-connect/pkg/agnostic"

// Product maps a platform product shape P to agnostic display values.
type Product[P any] interface {
	ID(product P) string
	Name(product P) string
	Description(product P) string
	Category(product P) string
	Price(product P) agnostic.Price
}

// Cart maps a platform cart shape C and its line-item shape I to agnostic
// display values.
type Cart[C, I any] interface {
	ID(cart C) string
	Items(cart C) []I
	ItemID(item I) string
	ItemName(item I) string
	ItemQuantity(item I) int
	ItemPrice(item I) agnostic.Price
	Totals(cart C) agnostic.Totals
	TotalItems(cart C) int
}

// User maps a platform user shape U to agnostic display values.
type User[U any] interface {
	FirstName(user U) string
	LastName(user U) string
	FullName(user U) string
	Email(user U) string
}
