// Package catalog is a read-only connector for a product catalog service's
// Spanner read model. It exposes GetProduct and ListProducts as the
// platform request functions, normalizes row data into connector DTOs, and
// translates Spanner/gRPC failures into the toolkit's sentinel errors.
package catalog

// Product contains the full product fields returned by catalog reads.
// Timestamps and optional fields use *string (RFC3339) to mirror how they
// come back from the Spanner columns.
type Product struct {
	ProductID     string
	Name          string
	Description   *string
	Category      string
	BasePriceNum  int64
	BasePriceDen  int64
	DiscountPct   *string
	DiscountStart *string
	DiscountEnd   *string
	Status        string
	CreatedAt     *string
	UpdatedAt     *string
	ArchivedAt    *string

	// EffectivePrice is computed at read time against the discount window
	// (decimal string).
	EffectivePrice string
}

// ProductSummary is the compact shape returned by list queries.
type ProductSummary struct {
	ProductID      string
	Name           string
	Category       string
	EffectivePrice string
	BasePriceNum   int64
	BasePriceDen   int64
	Status         string
}
