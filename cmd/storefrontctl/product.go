package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/spf13/cobra"

	"github.com/murkotick/storefront-connect/pkg/composables"
	"github.com/murkotick/storefront-connect/pkg/platform/local"
)

var (
	productID            string
	productName          string
	productDescription   string
	productCategory      string
	productPrice         string
	productDiscountPct   string
	productDiscountStart string
	productDiscountEnd   string

	searchTerm     string
	searchCategory string
	searchPage     int
	searchPerPage  int
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Seed and inspect products",
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create or update a product",
	Long: `Add writes a product row into the platform database, creating it or
replacing an existing row with the same --id.

Example:
  storefrontctl product add --name "Espresso cup" --price 12.50 --category kitchen
  storefrontctl product add --id cup-01 --name "Espresso cup" --price 12.50 \
    --discount-percent 0.25 --discount-end 2026-12-31T23:59:59Z`,
	Args: cobra.NoArgs,
	RunE: runProductAdd,
}

var productGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a product by ID",
	Args:  cobra.NoArgs,
	RunE:  runProductGet,
}

var productSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search products by term and category",
	Args:  cobra.NoArgs,
	RunE:  runProductSearch,
}

func init() {
	productAddCmd.Flags().StringVar(&productID, "id", "", "product ID (generated when empty)")
	productAddCmd.Flags().StringVar(&productName, "name", "", "product name (required)")
	productAddCmd.Flags().StringVar(&productDescription, "description", "", "product description")
	productAddCmd.Flags().StringVar(&productCategory, "category", "", "product category")
	productAddCmd.Flags().StringVar(&productPrice, "price", "", "base price as a decimal, e.g. 12.50 (required)")
	productAddCmd.Flags().StringVar(&productDiscountPct, "discount-percent", "", "discount fraction in [0,1], e.g. 0.25")
	productAddCmd.Flags().StringVar(&productDiscountStart, "discount-start", "", "discount window start (RFC3339)")
	productAddCmd.Flags().StringVar(&productDiscountEnd, "discount-end", "", "discount window end (RFC3339)")
	_ = productAddCmd.MarkFlagRequired("name")
	_ = productAddCmd.MarkFlagRequired("price")

	productGetCmd.Flags().StringVar(&productID, "id", "", "product ID (required)")
	_ = productGetCmd.MarkFlagRequired("id")

	productSearchCmd.Flags().StringVar(&searchTerm, "term", "", "name search term")
	productSearchCmd.Flags().StringVar(&searchCategory, "category", "", "category filter")
	productSearchCmd.Flags().IntVar(&searchPage, "page", 1, "page number")
	productSearchCmd.Flags().IntVar(&searchPerPage, "per-page", 20, "results per page")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productGetCmd)
	productCmd.AddCommand(productSearchCmd)
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	price, ok := new(big.Rat).SetString(productPrice)
	if !ok {
		return fmt.Errorf("invalid price %q", productPrice)
	}
	if !price.Num().IsInt64() || !price.Denom().IsInt64() {
		return fmt.Errorf("price %q out of range", productPrice)
	}

	input := local.ProductInput{
		ID:               productID,
		Name:             productName,
		Description:      productDescription,
		Category:         productCategory,
		PriceNumerator:   price.Num().Int64(),
		PriceDenominator: price.Denom().Int64(),
		DiscountPercent:  productDiscountPct,
	}

	var err error
	if input.DiscountStart, err = parseTimeFlag(productDiscountStart); err != nil {
		return fmt.Errorf("invalid --discount-start: %w", err)
	}
	if input.DiscountEnd, err = parseTimeFlag(productDiscountEnd); err != nil {
		return fmt.Errorf("invalid --discount-end: %w", err)
	}

	product, err := integration.Core.API().Platform().UpsertProduct(cmd.Context(), input)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(product)
	}
	renderProduct(product)
	return nil
}

func runProductGet(cmd *cobra.Command, args []string) error {
	search := integration.UseProduct()
	if err := search.Search(cmd.Context(), composables.SearchParams{ID: productID}); err != nil {
		return err
	}

	products := search.Products()
	if flagJSON {
		return printJSON(products)
	}
	for _, p := range products {
		renderProduct(p)
	}
	return nil
}

func runProductSearch(cmd *cobra.Command, args []string) error {
	search := integration.UseProduct()
	err := search.Search(cmd.Context(), composables.SearchParams{
		Term:     searchTerm,
		Category: searchCategory,
		Page:     searchPage,
		PerPage:  searchPerPage,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(struct {
			Products   []local.Product
			Pagination any
		}{search.Products(), search.Pagination()})
	}

	for _, p := range search.Products() {
		renderProduct(p)
	}
	pg := search.Pagination()
	fmt.Printf("page %d of %d (%d items)\n", pg.CurrentPage, pg.TotalPages, pg.TotalItems)
	return nil
}

func parseTimeFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
