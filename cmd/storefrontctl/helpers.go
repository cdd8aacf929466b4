package main

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/storefront-connect/pkg/platform/local"
)

// printJSON renders any value as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// couponPercent reads the platform's configured coupon percentage out of the
// integration settings.
func couponPercent() int64 {
	return int64(integration.Context().Settings().Int(local.SettingCouponPercent, 10))
}

func renderProduct(p local.Product) {
	g := local.ProductGetters{}
	price := g.Price(p)

	fmt.Printf("%s  %s\n", g.ID(p), g.Name(p))
	if desc := g.Description(p); desc != "" {
		fmt.Printf("  %s\n", desc)
	}
	if cat := g.Category(p); cat != "" {
		fmt.Printf("  category: %s\n", cat)
	}
	fmt.Printf("  price: %s", price.Regular.FloatString(2))
	if price.HasDiscount() {
		fmt.Printf(" (now %s)", price.Special.FloatString(2))
	}
	fmt.Println()
}

func renderCart(c local.Cart) {
	g := local.NewCartGetters(couponPercent())

	fmt.Printf("cart %s\n", g.ID(c))
	for _, item := range g.Items(c) {
		fmt.Printf("  %s  %s  x%d  @ %s\n",
			g.ItemID(item), g.ItemName(item), g.ItemQuantity(item),
			g.ItemPrice(item).Current().FloatString(2))
	}
	if c.CouponCode != "" {
		fmt.Printf("  coupon: %s\n", c.CouponCode)
	}

	totals := g.Totals(c)
	fmt.Printf("  items: %d  subtotal: %s  total: %s\n",
		g.TotalItems(c), totals.Subtotal.FloatString(2), totals.Total.FloatString(2))
}

func renderUser(u local.User) {
	g := local.UserGetters{}
	fmt.Printf("%s  %s  <%s>\n", u.ID, g.FullName(u), g.Email(u))
}
