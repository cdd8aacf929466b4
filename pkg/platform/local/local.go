// Package local is an in-process commerce platform backed by SQLite. It
// exists so applications built on the toolkit can develop and test against
// a complete platform without network access; its shapes mirror what a real
// catalog/cart backend returns.
package local

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/murkotick/storefront-connect/internal/clock"
	"github.com/murkotick/storefront-connect/internal/timeutil"
	"github.com/murkotick/storefront-connect/pkg/agnostic"
)

// Platform owns the SQLite database and the in-memory session state of the
// dev platform. One Platform backs one integration instance.
type Platform struct {
	db  *sql.DB
	clk clock.Clock

	// couponPercent is the flat percentage (0-100) a coupon code takes off
	// the subtotal. The dev platform accepts any non-empty code.
	couponPercent int64

	mu            sync.Mutex
	currentCartID string
	currentUserID string
}

// Open creates (or reuses) the platform database under dataDir and applies
// the schema.
func Open(dataDir string, clk clock.Clock, couponPercent int) (*Platform, error) {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "storefront.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return &Platform{db: db, clk: clk, couponPercent: int64(couponPercent)}, nil
}

// Close releases the database handle.
func (p *Platform) Close() error {
	return p.db.Close()
}

// ProductInput is the admin-side input for seeding or updating a product.
type ProductInput struct {
	ID               string // generated when empty
	Name             string
	Description      string
	Category         string
	PriceNumerator   int64
	PriceDenominator int64
	// DiscountPercent is a decimal fraction string in [0,1], empty for none.
	DiscountPercent string
	DiscountStart   *time.Time
	DiscountEnd     *time.Time
	Status          string // defaults to "active"
}

// UpsertProduct writes a product row. It is the seeding hook for tests and
// the CLI; storefront code never calls it.
func (p *Platform) UpsertProduct(ctx context.Context, in ProductInput) (Product, error) {
	if in.Name == "" {
		return Product{}, fmt.Errorf("product name is required")
	}
	if in.PriceDenominator == 0 {
		return Product{}, fmt.Errorf("price denominator must be non-zero")
	}

	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	now := p.clk.Now().Format(time.RFC3339)

	var discountPct any
	if in.DiscountPercent != "" {
		discountPct = in.DiscountPercent
	}
	var discountStart, discountEnd any
	if s := timeutil.FormatPtr(in.DiscountStart); s != nil {
		discountStart = *s
	}
	if s := timeutil.FormatPtr(in.DiscountEnd); s != nil {
		discountEnd = *s
	}

	_, err := p.db.ExecContext(ctx, `INSERT INTO products
		(product_id, name, description, category, price_numerator, price_denominator,
		 discount_percent, discount_start, discount_end, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(product_id) DO UPDATE SET
		 name=excluded.name, description=excluded.description, category=excluded.category,
		 price_numerator=excluded.price_numerator, price_denominator=excluded.price_denominator,
		 discount_percent=excluded.discount_percent, discount_start=excluded.discount_start,
		 discount_end=excluded.discount_end, status=excluded.status, updated_at=excluded.updated_at`,
		id, in.Name, in.Description, in.Category, in.PriceNumerator, in.PriceDenominator,
		discountPct, discountStart, discountEnd, status, now, now)
	if err != nil {
		return Product{}, fmt.Errorf("upsert product: %w", err)
	}

	return p.getProduct(ctx, id)
}

// effectivePrice computes the current decimal price for a product row.
func (p *Platform) effectivePrice(priceNum, priceDen int64, discountPct string, start, end *string) string {
	base := agnostic.NewMoney(priceNum, priceDen)

	var pct *big.Rat
	if discountPct != "" {
		r := new(big.Rat)
		if _, ok := r.SetString(discountPct); ok {
			pct = r
		}
	}

	effective := agnostic.EffectivePrice(base, pct, timeutil.ParsePtr(start), timeutil.ParsePtr(end), p.clk.Now())
	return effective.FloatString(10)
}
