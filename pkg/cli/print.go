package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/storefrontkit/checkout/pkg/storefront"
	"github.com/storefrontkit/checkout/pkg/types"
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// printCart renders a cart either as JSON or as a readable summary.
func printCart(cart *types.Cart) error {
	b := storefront.NewBeautifier(cart)
	if jsonOutput {
		fmt.Println(b.JSON())
		return nil
	}

	fmt.Printf("Cart:     %s\n", b.CartID())
	fmt.Printf("Market:   %s\n", b.CountryCode())
	fmt.Printf("Created:  %s\n", b.CreatedAt())
	fmt.Printf("Updated:  %s\n", b.UpdatedAt())
	fmt.Printf("Checkout: %s\n", b.CheckoutURL())
	if note := b.Note(); note != "" {
		fmt.Printf("Note:     %s\n", note)
	}

	if attributes := b.Attributes(); len(attributes) > 0 {
		fmt.Println("\nAttributes:")
		for _, attribute := range attributes {
			fmt.Printf("  %s: %s\n", attribute.Key, attribute.Value)
		}
	}

	if codes := b.DiscountCodes(); len(codes) > 0 {
		fmt.Println("\nDiscount codes:")
		for _, code := range codes {
			verdict := "not applicable"
			if code.Applicable {
				verdict = "applicable"
			}
			fmt.Printf("  %s (%s)\n", code.Code, verdict)
		}
	}

	items := b.LineItems(true)
	if len(items) > 0 {
		fmt.Println("\nLine items:")
		for _, item := range items {
			fmt.Printf("  %dx %-40s %s\n", item.Quantity, item.Title, item.Price)
			fmt.Printf("     line %s\n", item.ID)
		}
	}

	costs := b.Costs()
	fmt.Println("\nEstimated costs:")
	fmt.Printf("  Net:   %s\n", costs.Net)
	fmt.Printf("  Tax:   %s\n", costs.Tax)
	fmt.Printf("  Total: %s\n", costs.Total)
	return nil
}

// parseAttributes converts key=value arguments into attributes.
func parseAttributes(pairs []string) ([]types.Attribute, error) {
	attributes := make([]types.Attribute, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected key=value", pair)
		}
		attributes = append(attributes, types.Attribute{Key: key, Value: value})
	}
	return attributes, nil
}
