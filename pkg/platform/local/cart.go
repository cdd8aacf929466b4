package local

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/murkotick/storefront-connect/pkg/agnostic"
	"github.com/murkotick/storefront-connect/pkg/core"
)

func (p *Platform) getCart(ctx context.Context, id string) (Cart, error) {
	var (
		out        Cart
		userID     sql.NullString
		couponCode sql.NullString
	)
	err := p.db.QueryRowContext(ctx,
		"SELECT cart_id, user_id, coupon_code, created_at, updated_at FROM carts WHERE cart_id = ?",
		id).Scan(&out.ID, &userID, &couponCode, &out.CreatedAt, &out.UpdatedAt)
	if err == sql.ErrNoRows {
		return Cart{}, fmt.Errorf("cart %s: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return Cart{}, fmt.Errorf("get cart %s: %w", id, err)
	}
	out.UserID = userID.String
	out.CouponCode = couponCode.String

	rows, err := p.db.QueryContext(ctx,
		`SELECT item_id, product_id, name, price_numerator, price_denominator, quantity
		 FROM cart_items WHERE cart_id = ? ORDER BY rowid ASC`, id)
	if err != nil {
		return Cart{}, fmt.Errorf("get cart items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Name,
			&item.PriceNumerator, &item.PriceDenominator, &item.Quantity); err != nil {
			return Cart{}, fmt.Errorf("scan cart item: %w", err)
		}
		out.Items = append(out.Items, item)
	}
	return out, rows.Err()
}

// GetCart fetches a cart by ID with its line items.
func (p *Platform) GetCart(ctx context.Context, id string) (Cart, error) {
	return p.getCart(ctx, id)
}

func (p *Platform) touchCart(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, "UPDATE carts SET updated_at = ? WHERE cart_id = ?",
		p.clk.Now().Format(time.RFC3339), id)
	return err
}

// LoadCart returns the session cart, creating one on first use.
func (p *Platform) LoadCart(ctx context.Context) (Cart, error) {
	p.mu.Lock()
	cartID := p.currentCartID
	userID := p.currentUserID
	p.mu.Unlock()

	if cartID != "" {
		return p.getCart(ctx, cartID)
	}

	id := uuid.New().String()
	now := p.clk.Now().Format(time.RFC3339)
	var owner any
	if userID != "" {
		owner = userID
	}
	_, err := p.db.ExecContext(ctx,
		"INSERT INTO carts (cart_id, user_id, coupon_code, created_at, updated_at) VALUES (?, ?, NULL, ?, ?)",
		id, owner, now, now)
	if err != nil {
		return Cart{}, fmt.Errorf("create cart: %w", err)
	}

	p.mu.Lock()
	p.currentCartID = id
	p.mu.Unlock()

	return p.getCart(ctx, id)
}

// AddCartItem adds quantity units of a product to the cart, merging into an
// existing line when the product is already present. The line captures the
// product's effective price at add time.
func (p *Platform) AddCartItem(ctx context.Context, cartID, productID string, quantity int) (Cart, error) {
	if quantity <= 0 {
		return Cart{}, fmt.Errorf("quantity must be positive: %w", core.ErrInvalidInput)
	}

	prod, err := p.getProduct(ctx, productID)
	if err != nil {
		return Cart{}, err
	}
	if prod.Status != "active" {
		return Cart{}, fmt.Errorf("product %s is not active: %w", productID, core.ErrInvalidInput)
	}

	if _, err := p.getCart(ctx, cartID); err != nil {
		return Cart{}, err
	}

	price, err := agnostic.NewMoneyFromDecimal(prod.EffectivePrice)
	if err != nil {
		return Cart{}, fmt.Errorf("effective price: %w", err)
	}

	var existingID string
	var existingQty int
	err = p.db.QueryRowContext(ctx,
		"SELECT item_id, quantity FROM cart_items WHERE cart_id = ? AND product_id = ?",
		cartID, productID).Scan(&existingID, &existingQty)
	switch {
	case err == sql.ErrNoRows:
		_, err = p.db.ExecContext(ctx,
			`INSERT INTO cart_items (item_id, cart_id, product_id, name, price_numerator, price_denominator, quantity)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), cartID, productID, prod.Name,
			price.Numerator(), price.Denominator(), quantity)
	case err == nil:
		_, err = p.db.ExecContext(ctx,
			"UPDATE cart_items SET quantity = ? WHERE item_id = ?",
			existingQty+quantity, existingID)
	}
	if err != nil {
		return Cart{}, fmt.Errorf("add cart item: %w", err)
	}

	if err := p.touchCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	return p.getCart(ctx, cartID)
}

// RemoveCartItem deletes one line from the cart.
func (p *Platform) RemoveCartItem(ctx context.Context, cartID, itemID string) (Cart, error) {
	res, err := p.db.ExecContext(ctx,
		"DELETE FROM cart_items WHERE cart_id = ? AND item_id = ?", cartID, itemID)
	if err != nil {
		return Cart{}, fmt.Errorf("remove cart item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Cart{}, fmt.Errorf("cart item %s: %w", itemID, core.ErrNotFound)
	}
	if err := p.touchCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	return p.getCart(ctx, cartID)
}

// UpdateCartItemQuantity sets the quantity of one line. Zero or negative
// quantities remove the line.
func (p *Platform) UpdateCartItemQuantity(ctx context.Context, cartID, itemID string, quantity int) (Cart, error) {
	if quantity <= 0 {
		return p.RemoveCartItem(ctx, cartID, itemID)
	}
	res, err := p.db.ExecContext(ctx,
		"UPDATE cart_items SET quantity = ? WHERE cart_id = ? AND item_id = ?",
		quantity, cartID, itemID)
	if err != nil {
		return Cart{}, fmt.Errorf("update cart item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Cart{}, fmt.Errorf("cart item %s: %w", itemID, core.ErrNotFound)
	}
	if err := p.touchCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	return p.getCart(ctx, cartID)
}

// ClearCart removes every line and the coupon from the cart.
func (p *Platform) ClearCart(ctx context.Context, cartID string) (Cart, error) {
	if _, err := p.getCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	if _, err := p.db.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id = ?", cartID); err != nil {
		return Cart{}, fmt.Errorf("clear cart: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, "UPDATE carts SET coupon_code = NULL WHERE cart_id = ?", cartID); err != nil {
		return Cart{}, fmt.Errorf("clear coupon: %w", err)
	}
	if err := p.touchCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	return p.getCart(ctx, cartID)
}

// SetCoupon stores a coupon code on the cart. The dev platform accepts any
// non-empty code and applies its flat configured percentage at totals time.
func (p *Platform) SetCoupon(ctx context.Context, cartID, code string) (Cart, error) {
	if code == "" {
		return Cart{}, fmt.Errorf("coupon code: %w", core.ErrInvalidInput)
	}
	if _, err := p.getCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	if _, err := p.db.ExecContext(ctx,
		"UPDATE carts SET coupon_code = ? WHERE cart_id = ?", code, cartID); err != nil {
		return Cart{}, fmt.Errorf("set coupon: %w", err)
	}
	if err := p.touchCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	return p.getCart(ctx, cartID)
}

// ClearCoupon removes the coupon code from the cart.
func (p *Platform) ClearCoupon(ctx context.Context, cartID string) (Cart, error) {
	if _, err := p.getCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	if _, err := p.db.ExecContext(ctx,
		"UPDATE carts SET coupon_code = NULL WHERE cart_id = ?", cartID); err != nil {
		return Cart{}, fmt.Errorf("clear coupon: %w", err)
	}
	if err := p.touchCart(ctx, cartID); err != nil {
		return Cart{}, err
	}
	return p.getCart(ctx, cartID)
}
