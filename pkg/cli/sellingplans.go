package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/storefrontkit/checkout/pkg/storefront"
)

var (
	planName           string
	planDescription    string
	planMerchantCode   string
	planDeposit        float64
	planBalanceTime    string
	planBalanceTrigger string
	planFulfillment    string
	planReserve        string
	planProducts       []string
	planVariants       []string
	planInteractive    bool
)

var sellingPlansCmd = &cobra.Command{
	Use:   "selling-plans",
	Short: "Manage pre-order selling plan groups (admin API)",
}

var sellingPlansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a pre-order selling plan group",
	RunE: func(cmd *cobra.Command, args []string) error {
		if planInteractive {
			depositStr := fmt.Sprintf("%g", planDeposit)
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Group name").
						Placeholder("Cask Strength Pre-Order").
						Value(&planName).
						Validate(func(s string) error {
							if s == "" {
								return errors.New("name is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Merchant code").
						Placeholder("pre-order").
						Value(&planMerchantCode).
						Validate(func(s string) error {
							if s == "" {
								return errors.New("merchant code is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Deposit percentage charged at checkout").
						Value(&depositStr),
					huh.NewInput().
						Title("Remaining balance charge time (ISO 8601)").
						Placeholder("2026-12-01T00:00:00Z").
						Value(&planBalanceTime),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
			if _, err := fmt.Sscanf(depositStr, "%g", &planDeposit); err != nil {
				return fmt.Errorf("invalid deposit percentage %q", depositStr)
			}
		}

		service, err := newSellingPlanGroupService()
		if err != nil {
			return err
		}

		groupID, err := service.Create(cmd.Context(), storefront.SellingPlanGroupOptions{
			Name:                          planName,
			Description:                   planDescription,
			MerchantCode:                  planMerchantCode,
			Deposit:                       planDeposit,
			RemainingBalanceChargeTime:    planBalanceTime,
			RemainingBalanceChargeTrigger: planBalanceTrigger,
			FulfillmentTrigger:            planFulfillment,
			InventoryReserve:              planReserve,
			ProductIDs:                    planProducts,
			ProductVariantIDs:             planVariants,
		})
		if err != nil {
			for _, message := range service.Errors() {
				fmt.Fprintln(cmd.ErrOrStderr(), message)
			}
			return err
		}

		fmt.Println(groupID)
		return nil
	},
}

var sellingPlansGetCmd = &cobra.Command{
	Use:   "get <group-id>",
	Short: "Fetch a selling plan group with its plans and products",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newSellingPlanGroupService()
		if err != nil {
			return err
		}

		group, err := service.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(group)
		}

		fmt.Printf("Group:         %s\n", group.ID)
		fmt.Printf("Name:          %s\n", group.Name)
		fmt.Printf("Merchant code: %s\n", group.MerchantCode)
		fmt.Printf("Products:      %d\n", group.ProductCount)
		fmt.Printf("Variants:      %d\n", group.ProductVariantCount)
		fmt.Printf("Plans:         %d\n", len(group.SellingPlans))
		return nil
	},
}

var sellingPlansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List selling plan groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newSellingPlanGroupService()
		if err != nil {
			return err
		}

		groups, err := service.List(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(groups)
		}

		if len(groups) == 0 {
			fmt.Println("No selling plan groups.")
			return nil
		}
		for _, group := range groups {
			fmt.Printf("%s  %s (%s)\n", group.ID, group.Name, group.MerchantCode)
		}
		return nil
	},
}

var sellingPlansDeleteCmd = &cobra.Command{
	Use:   "delete <group-id>",
	Short: "Delete a selling plan group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newSellingPlanGroupService()
		if err != nil {
			return err
		}

		deletedID, err := service.Remove(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", deletedID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sellingPlansCmd)
	sellingPlansCmd.AddCommand(sellingPlansCreateCmd, sellingPlansGetCmd,
		sellingPlansListCmd, sellingPlansDeleteCmd)

	sellingPlansCreateCmd.Flags().StringVar(&planName, "name", "", "Group name")
	sellingPlansCreateCmd.Flags().StringVar(&planDescription, "description", "", "Group description")
	sellingPlansCreateCmd.Flags().StringVar(&planMerchantCode, "merchant-code", "", "Merchant code")
	sellingPlansCreateCmd.Flags().Float64Var(&planDeposit, "deposit", 50, "Deposit percentage charged at checkout")
	sellingPlansCreateCmd.Flags().StringVar(&planBalanceTime, "balance-time", "", "Remaining balance charge time (ISO 8601)")
	sellingPlansCreateCmd.Flags().StringVar(&planBalanceTrigger, "balance-trigger", "EXACT_TIME", "Remaining balance charge trigger")
	sellingPlansCreateCmd.Flags().StringVar(&planFulfillment, "fulfillment-trigger", "UNKNOWN", "Fulfillment trigger")
	sellingPlansCreateCmd.Flags().StringVar(&planReserve, "inventory-reserve", "ON_SALE", "Inventory reserve policy")
	sellingPlansCreateCmd.Flags().StringArrayVar(&planProducts, "product", nil, "Product id to attach (repeatable)")
	sellingPlansCreateCmd.Flags().StringArrayVar(&planVariants, "product-variant", nil, "Product variant id to attach (repeatable)")
	sellingPlansCreateCmd.Flags().BoolVar(&planInteractive, "interactive", false, "Prompt for the group fields")
}
