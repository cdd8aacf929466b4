package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/murkotick/storefront-connect/pkg/platform/local"
)

var (
	cartID        string
	cartProductID string
	cartItemID    string
	cartQuantity  int
	couponCode    string
	couponClear   bool
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Drive carts on the local platform",
}

var cartCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a cart and print its ID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := integration.Core.API().LoadCart(cmd.Context())
		if err != nil {
			return err
		}
		return outputCart(cart)
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a cart with items and totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := integration.Core.API().Platform().GetCart(cmd.Context(), cartID)
		if err != nil {
			return err
		}
		return outputCart(cart)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to a cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := integration.Core.API().AddCartItem(cmd.Context(), cartID, cartProductID, cartQuantity)
		if err != nil {
			return err
		}
		return outputCart(cart)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a line item from a cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := integration.Core.API().RemoveCartItem(cmd.Context(), cartID, cartItemID)
		if err != nil {
			return err
		}
		return outputCart(cart)
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change a line item's quantity",
	Long:  `Update sets a line item's quantity. A quantity of zero removes the line.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := integration.Core.API().UpdateCartItemQuantity(cmd.Context(), cartID, cartItemID, cartQuantity)
		if err != nil {
			return err
		}
		return outputCart(cart)
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all items and the coupon from a cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := integration.Core.API().ClearCart(cmd.Context(), cartID)
		if err != nil {
			return err
		}
		return outputCart(cart)
	},
}

var cartCouponCmd = &cobra.Command{
	Use:   "coupon",
	Short: "Apply or clear a cart's coupon code",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api := integration.Core.API()

		var (
			cart local.Cart
			err  error
		)
		switch {
		case couponClear:
			cart, err = api.ClearCoupon(cmd.Context(), cartID)
		case couponCode != "":
			cart, err = api.SetCoupon(cmd.Context(), cartID, couponCode)
		default:
			return fmt.Errorf("either --code or --clear is required")
		}
		if err != nil {
			return err
		}
		return outputCart(cart)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{cartShowCmd, cartAddCmd, cartRemoveCmd, cartUpdateCmd, cartClearCmd, cartCouponCmd} {
		cmd.Flags().StringVar(&cartID, "cart", "", "cart ID (required)")
		_ = cmd.MarkFlagRequired("cart")
	}

	cartAddCmd.Flags().StringVar(&cartProductID, "product", "", "product ID (required)")
	cartAddCmd.Flags().IntVar(&cartQuantity, "qty", 1, "quantity to add")
	_ = cartAddCmd.MarkFlagRequired("product")

	cartRemoveCmd.Flags().StringVar(&cartItemID, "item", "", "line item ID (required)")
	_ = cartRemoveCmd.MarkFlagRequired("item")

	cartUpdateCmd.Flags().StringVar(&cartItemID, "item", "", "line item ID (required)")
	cartUpdateCmd.Flags().IntVar(&cartQuantity, "qty", 0, "new quantity (required)")
	_ = cartUpdateCmd.MarkFlagRequired("item")
	_ = cartUpdateCmd.MarkFlagRequired("qty")

	cartCouponCmd.Flags().StringVar(&couponCode, "code", "", "coupon code to apply")
	cartCouponCmd.Flags().BoolVar(&couponClear, "clear", false, "clear the coupon")

	cartCmd.AddCommand(cartCreateCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartClearCmd)
	cartCmd.AddCommand(cartCouponCmd)
}

func outputCart(cart local.Cart) error {
	if flagJSON {
		return printJSON(cart)
	}
	renderCart(cart)
	return nil
}
