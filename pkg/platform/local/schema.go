package local

// Schema DDL for the dev platform database. Timestamps are stored as
// RFC3339 TEXT; prices as exact numerator/denominator pairs; discounts as a
// decimal fraction string with an inclusive validity window, matching the
// persistence model of the production catalog service this platform mirrors.
const (
	createProducts = `CREATE TABLE IF NOT EXISTS products (
    product_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    category TEXT NOT NULL,
    price_numerator INTEGER NOT NULL,
    price_denominator INTEGER NOT NULL,
    discount_percent TEXT,
    discount_start TEXT,
    discount_end TEXT,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    first_name TEXT,
    last_name TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createCarts = `CREATE TABLE IF NOT EXISTS carts (
    cart_id TEXT PRIMARY KEY,
    user_id TEXT,
    coupon_code TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createCartItems = `CREATE TABLE IF NOT EXISTS cart_items (
    item_id TEXT PRIMARY KEY,
    cart_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price_numerator INTEGER NOT NULL,
    price_denominator INTEGER NOT NULL,
    quantity INTEGER NOT NULL,
    FOREIGN KEY (cart_id) REFERENCES carts(cart_id) ON DELETE CASCADE
);`
)

var schemaStatements = []string{
	createProducts,
	createUsers,
	createCarts,
	createCartItems,
}
