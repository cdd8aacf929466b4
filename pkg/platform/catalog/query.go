package catalog

import (
	"context"
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-connect/internal/clock"
	"github.com/murkotick/storefront-connect/pkg/agnostic"
)

// Reader executes the read queries against the catalog's Spanner database.
type Reader struct {
	client *spanner.Client
	clk    clock.Clock
}

// NewReader wraps a Spanner client. clk may be nil for real time.
func NewReader(client *spanner.Client, clk clock.Clock) *Reader {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Reader{client: client, clk: clk}
}

// GetProduct fetches a single product row and computes its effective price.
func (r *Reader) GetProduct(ctx context.Context, productID string) (Product, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, description, category,
		             base_price_numerator, base_price_denominator,
		             discount_percent, discount_start_date, discount_end_date,
		             status, created_at, updated_at, archived_at
		      FROM products
		      WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return Product{}, mapPlatformError(spanner.ErrRowNotFound)
	}
	if err != nil {
		return Product{}, mapPlatformError(err)
	}

	var (
		id                         string
		name                       string
		description                spanner.NullString
		category                   string
		baseNum                    int64
		baseDen                    int64
		discountPercent            spanner.NullString
		discountStart, discountEnd spanner.NullTime
		status                     string
		createdAt, updatedAt       time.Time
		archivedAt                 spanner.NullTime
	)
	if err := row.Columns(&id, &name, &description, &category, &baseNum, &baseDen,
		&discountPercent, &discountStart, &discountEnd, &status, &createdAt, &updatedAt, &archivedAt); err != nil {
		return Product{}, mapPlatformError(err)
	}

	out := Product{
		ProductID:    id,
		Name:         name,
		Category:     category,
		BasePriceNum: baseNum,
		BasePriceDen: baseDen,
		Status:       status,
	}

	if description.Valid {
		desc := description.StringVal
		out.Description = &desc
	}
	if discountPercent.Valid {
		dp := discountPercent.StringVal
		out.DiscountPct = &dp
	}
	if discountStart.Valid {
		ds := discountStart.Time.UTC().Format(time.RFC3339)
		out.DiscountStart = &ds
	}
	if discountEnd.Valid {
		de := discountEnd.Time.UTC().Format(time.RFC3339)
		out.DiscountEnd = &de
	}

	c := createdAt.UTC().Format(time.RFC3339)
	out.CreatedAt = &c
	u := updatedAt.UTC().Format(time.RFC3339)
	out.UpdatedAt = &u
	if archivedAt.Valid {
		aa := archivedAt.Time.UTC().Format(time.RFC3339)
		out.ArchivedAt = &aa
	}

	out.EffectivePrice = effectivePriceString(baseNum, baseDen, discountPercent, discountStart, discountEnd, r.clk.Now())
	return out, nil
}

// ListActiveProducts lists active products with an optional category filter.
func (r *Reader) ListActiveProducts(ctx context.Context, category *string, limit, offset int) ([]ProductSummary, error) {
	baseSQL := `SELECT product_id, name, category,
	                   base_price_numerator, base_price_denominator,
	                   discount_percent, discount_start_date, discount_end_date
	            FROM products
	            WHERE status = 'active'`
	params := map[string]interface{}{}
	if category != nil {
		baseSQL += " AND category = @category"
		params["category"] = *category
	}
	baseSQL += " ORDER BY name ASC LIMIT @limit OFFSET @offset"
	params["limit"] = limit
	params["offset"] = offset

	stmt := spanner.Statement{SQL: baseSQL, Params: params}
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []ProductSummary
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, mapPlatformError(err)
		}

		var (
			id                         string
			name                       string
			categoryStr                string
			baseNum                    int64
			baseDen                    int64
			discountPct                spanner.NullString
			discountStart, discountEnd spanner.NullTime
		)
		if err := row.Columns(&id, &name, &categoryStr, &baseNum, &baseDen,
			&discountPct, &discountStart, &discountEnd); err != nil {
			return nil, mapPlatformError(err)
		}

		out = append(out, ProductSummary{
			ProductID:      id,
			Name:           name,
			Category:       categoryStr,
			EffectivePrice: effectivePriceString(baseNum, baseDen, discountPct, discountStart, discountEnd, r.clk.Now()),
			BasePriceNum:   baseNum,
			BasePriceDen:   baseDen,
			Status:         "active",
		})
	}
}

// effectivePriceString applies the discount window to the base price and
// renders the result as a decimal string.
func effectivePriceString(baseNum, baseDen int64, discountPct spanner.NullString, start, end spanner.NullTime, now time.Time) string {
	base := agnostic.NewMoney(baseNum, baseDen)

	var pct *big.Rat
	if discountPct.Valid && discountPct.StringVal != "" {
		r := new(big.Rat)
		if _, ok := r.SetString(discountPct.StringVal); ok {
			pct = r
		}
	}

	var startPtr, endPtr *time.Time
	if start.Valid {
		s := start.Time
		startPtr = &s
	}
	if end.Valid {
		e := end.Time
		endPtr = &e
	}

	return agnostic.EffectivePrice(base, pct, startPtr, endPtr, now).FloatString(10)
}
