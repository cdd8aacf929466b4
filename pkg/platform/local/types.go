package local

// Platform-specific response shapes. These are what the local platform's
// request functions return and what its getters read from; nothing outside
// this package should assume their layout.

// Product is a catalog entry as the local platform returns it.
type Product struct {
	ID               string
	Name             string
	Description      string
	Category         string
	PriceNumerator   int64
	PriceDenominator int64
	// DiscountPercent is a decimal fraction string in [0,1], empty when no
	// discount is configured.
	DiscountPercent string
	DiscountStart   *string
	DiscountEnd     *string
	Status          string
	// EffectivePrice is the current price as a decimal string, computed at
	// read time against the discount window.
	EffectivePrice string
	CreatedAt      string
	UpdatedAt      string
}

// CartItem is one line of a cart. Price fields are captured at add time.
type CartItem struct {
	ID               string
	ProductID        string
	Name             string
	PriceNumerator   int64
	PriceDenominator int64
	Quantity         int
}

// Cart is the platform cart shape.
type Cart struct {
	ID         string
	UserID     string
	CouponCode string
	Items      []CartItem
	CreatedAt  string
	UpdatedAt  string
}

// User is the platform user shape. The zero value means "not logged in".
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	CreatedAt string
	UpdatedAt string
}
