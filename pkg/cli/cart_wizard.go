package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/storefrontkit/checkout/pkg/storefront"
	"github.com/storefrontkit/checkout/pkg/types"
)

var cartWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a cart interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		var formCountry string
		marketForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which market is the buyer in?").
					Options(
						huh.NewOption("Ireland (EUR)", "IE"),
						huh.NewOption("Germany (EUR)", "DE"),
						huh.NewOption("France (EUR)", "FR"),
						huh.NewOption("United Kingdom (GBP)", "GB"),
						huh.NewOption("Switzerland (CHF)", "CH"),
						huh.NewOption("Japan (JPY)", "JP"),
						huh.NewOption("Australia (AUD)", "AU"),
					).
					Value(&formCountry),
			),
		)
		if err := marketForm.Run(); err != nil {
			return err
		}

		service, err := newCartService()
		if err != nil {
			return err
		}
		session := storefront.NewCart(service).SetCountryCode(formCountry)

		ctx := cmd.Context()
		if _, err := session.GetNewCart(ctx); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created cart %s\n", session.CartID())

		for {
			var action string
			actionForm := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("What next?").
						Options(
							huh.NewOption("Add a line item", "add"),
							huh.NewOption("Apply a discount code", "discount"),
							huh.NewOption("Set the cart note", "note"),
							huh.NewOption("Show the cart", "show"),
							huh.NewOption("Empty the cart", "empty"),
							huh.NewOption("Print the checkout URL", "checkout"),
							huh.NewOption("Done", "done"),
						).
						Value(&action),
				),
			)
			if err := actionForm.Run(); err != nil {
				return err
			}

			switch action {
			case "add":
				err = wizardAddLine(cmd, session)
			case "discount":
				err = wizardPrompt("Discount code", "FOC", func(value string) error {
					return session.UpdateDiscountCodes(ctx, []string{value})
				})
			case "note":
				err = wizardPrompt("Cart note", "", func(value string) error {
					return session.UpdateNote(ctx, value)
				})
			case "show":
				var cart *types.Cart
				if cart, err = session.GetCart(ctx); err == nil {
					err = printCart(cart)
				}
			case "empty":
				_, err = session.EmptyCart(ctx)
			case "checkout":
				var url string
				if url, err = session.CheckoutURL(ctx); err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Checkout URL: %s\n", url)
				}
			case "done":
				cart, err := session.GetCart(ctx)
				if err != nil {
					return err
				}
				return printCart(cart)
			}
			if err != nil {
				// Business rejections should not end the session.
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		}
	},
}

func wizardAddLine(cmd *cobra.Command, session *storefront.Cart) error {
	var formVariant string
	formQuantityStr := "1"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which product variant goes in the cart?").
				Placeholder("40000000000001").
				Value(&formVariant).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("variant id is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("How many?").
				Value(&formQuantityStr).
				Validate(func(s string) error {
					quantity, err := strconv.Atoi(s)
					if err != nil || quantity < 1 {
						return errors.New("quantity must be a positive number")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	quantity, err := strconv.Atoi(formQuantityStr)
	if err != nil {
		return err
	}
	return session.AddLine(cmd.Context(), formVariant, quantity, nil, "")
}

func wizardPrompt(title, placeholder string, apply func(string) error) error {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	return apply(value)
}
