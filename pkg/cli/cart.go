package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cartID            string
	cartVariantID     string
	cartQuantity      int
	cartLineID        string
	cartAttributes    []string
	cartSellingPlanID string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Create and manage shopping carts",
}

var cartNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a cart for the selected market",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newCartService()
		if err != nil {
			return err
		}

		cartID, err := service.GetNewCart(cmd.Context(), countryCode)
		if err != nil {
			return err
		}
		cart, err := service.GetCart(cmd.Context(), cartID, countryCode)
		if err != nil {
			return err
		}
		return printCart(cart)
	},
}

var cartGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a cart priced for the selected market",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newCartService()
		if err != nil {
			return err
		}

		cart, err := service.GetCart(cmd.Context(), cartID, countryCode)
		if err != nil {
			return err
		}
		return printCart(cart)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a line item to a cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cartVariantID == "" {
			return errors.New("--variant is required")
		}

		attributes, err := parseAttributes(cartAttributes)
		if err != nil {
			return err
		}

		service, err := newCartService()
		if err != nil {
			return err
		}

		if _, err := service.AddLine(cmd.Context(), cartID, cartVariantID, cartQuantity, attributes, cartSellingPlanID); err != nil {
			return err
		}
		cart, err := service.GetCart(cmd.Context(), cartID, countryCode)
		if err != nil {
			return err
		}
		return printCart(cart)
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Adjust a line item's quantity or attributes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cartLineID == "" {
			return errors.New("--line is required")
		}

		attributes, err := parseAttributes(cartAttributes)
		if err != nil {
			return err
		}

		service, err := newCartService()
		if err != nil {
			return err
		}

		if _, err := service.UpdateLine(cmd.Context(), cartID, cartLineID, cartQuantity, attributes); err != nil {
			return err
		}
		cart, err := service.GetCart(cmd.Context(), cartID, countryCode)
		if err != nil {
			return err
		}
		return printCart(cart)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <line-id>...",
	Short: "Remove line items from a cart",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newCartService()
		if err != nil {
			return err
		}

		if _, err := service.RemoveLines(cmd.Context(), cartID, args); err != nil {
			return err
		}
		cart, err := service.GetCart(cmd.Context(), cartID, countryCode)
		if err != nil {
			return err
		}
		return printCart(cart)
	},
}

var cartEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Remove every line item from a cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newCartService()
		if err != nil {
			return err
		}

		emptied, err := service.EmptyCart(cmd.Context(), cartID, countryCode)
		if err != nil {
			return err
		}
		if !emptied {
			fmt.Println("Cart was already empty.")
			return nil
		}
		fmt.Println("Cart emptied.")
		return nil
	},
}

var cartNoteCmd = &cobra.Command{
	Use:   "note <text>",
	Short: "Replace the cart note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newCartService()
		if err != nil {
			return err
		}

		if _, err := service.UpdateNote(cmd.Context(), cartID, args[0]); err != nil {
			return err
		}
		fmt.Println("Note updated.")
		return nil
	},
}

var cartAttributesCmd = &cobra.Command{
	Use:   "attributes <key=value>",
	Short: "Set a cart attribute",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		attributes, err := parseAttributes(args)
		if err != nil {
			return err
		}

		service, err := newCartService()
		if err != nil {
			return err
		}

		if _, err := service.UpdateAttributes(cmd.Context(), cartID, attributes[0].Key, attributes[0].Value); err != nil {
			return err
		}
		fmt.Println("Attribute set.")
		return nil
	},
}

var cartDiscountCmd = &cobra.Command{
	Use:   "discount <code>...",
	Short: "Submit discount codes (only the first is applied)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newCartService()
		if err != nil {
			return err
		}

		if _, err := service.UpdateDiscountCodes(cmd.Context(), cartID, args); err != nil {
			return err
		}
		cart, err := service.GetCart(cmd.Context(), cartID, countryCode)
		if err != nil {
			return err
		}
		return printCart(cart)
	},
}

var cartCheckoutCmd = &cobra.Command{
	Use:   "checkout-url",
	Short: "Print the cart's web checkout URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newCartService()
		if err != nil {
			return err
		}

		url, err := service.CheckoutURL(cmd.Context(), cartID, countryCode)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartNewCmd, cartGetCmd, cartAddCmd, cartUpdateCmd,
		cartRemoveCmd, cartEmptyCmd, cartNoteCmd, cartAttributesCmd,
		cartDiscountCmd, cartCheckoutCmd, cartWizardCmd)

	for _, cmd := range []*cobra.Command{cartGetCmd, cartAddCmd, cartUpdateCmd,
		cartRemoveCmd, cartEmptyCmd, cartNoteCmd, cartAttributesCmd,
		cartDiscountCmd, cartCheckoutCmd} {
		cmd.Flags().StringVar(&cartID, "cart", "", "Cart id (raw gid:// or opaque form)")
		_ = cmd.MarkFlagRequired("cart")
	}

	cartAddCmd.Flags().StringVar(&cartVariantID, "variant", "", "Product variant id (bare numeric ids are accepted)")
	cartAddCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "Quantity to add")
	cartAddCmd.Flags().StringArrayVar(&cartAttributes, "attr", nil, "Line attribute as key=value (repeatable)")
	cartAddCmd.Flags().StringVar(&cartSellingPlanID, "selling-plan", "", "Selling plan id to attach to the line")

	cartUpdateCmd.Flags().StringVar(&cartLineID, "line", "", "Line item id")
	cartUpdateCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "Quantity to add to the line")
	cartUpdateCmd.Flags().StringArrayVar(&cartAttributes, "attr", nil, "Line attribute as key=value (repeatable)")
}
