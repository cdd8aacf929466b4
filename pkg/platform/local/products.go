package local

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/murkotick/storefront-connect/pkg/core"
)

const productColumns = `product_id, name, description, category,
	price_numerator, price_denominator,
	discount_percent, discount_start, discount_end,
	status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func (p *Platform) scanProduct(row rowScanner) (Product, error) {
	var (
		out                        Product
		description                sql.NullString
		discountPct                sql.NullString
		discountStart, discountEnd sql.NullString
	)
	err := row.Scan(&out.ID, &out.Name, &description, &out.Category,
		&out.PriceNumerator, &out.PriceDenominator,
		&discountPct, &discountStart, &discountEnd,
		&out.Status, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return Product{}, err
	}

	out.Description = description.String
	out.DiscountPercent = discountPct.String
	if discountStart.Valid {
		s := discountStart.String
		out.DiscountStart = &s
	}
	if discountEnd.Valid {
		e := discountEnd.String
		out.DiscountEnd = &e
	}

	out.EffectivePrice = p.effectivePrice(out.PriceNumerator, out.PriceDenominator,
		out.DiscountPercent, out.DiscountStart, out.DiscountEnd)
	return out, nil
}

func (p *Platform) getProduct(ctx context.Context, id string) (Product, error) {
	row := p.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM products WHERE product_id = ?", productColumns), id)
	out, err := p.scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, fmt.Errorf("product %s: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return out, nil
}

// GetProduct returns a single active-or-not product by id.
func (p *Platform) GetProduct(ctx context.Context, id string) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product id: %w", core.ErrInvalidInput)
	}
	return p.getProduct(ctx, id)
}

// SearchProducts lists active products matching the optional term and
// category filters. Returns the page of products plus the total match count.
func (p *Platform) SearchProducts(ctx context.Context, term, category string, limit, offset int) ([]Product, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	where := "WHERE status = 'active'"
	args := []any{}
	if term != "" {
		where += " AND name LIKE ?"
		args = append(args, "%"+term+"%")
	}
	if category != "" {
		where += " AND category = ?"
		args = append(args, category)
	}

	var total int
	if err := p.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM products %s ORDER BY name ASC LIMIT ? OFFSET ?",
		productColumns, where)
	rows, err := p.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		prod, err := p.scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, prod)
	}
	return out, total, rows.Err()
}
