package storefront

import "github.com/storefrontkit/checkout/pkg/types"

var currencySymbols = map[string]string{
	"AUD": "$",
	"CHF": "CHF",
	"CNY": "¥",
	"EUR": "€",
	"JPY": "¥",
	"GBP": "£",
	"NZD": "$",
	"SGD": "$",
	"ZAR": "R",
	"USD": "$",
}

// CostFormatter renders cart totals with currency symbols.
type CostFormatter struct {
	cart *types.Cart
}

// NewCostFormatter wraps cart for rendering.
func NewCostFormatter(cart *types.Cart) *CostFormatter {
	return &CostFormatter{cart: cart}
}

// Symbol returns the symbol for a currency code, falling back to the code
// itself.
func Symbol(currencyCode string) string {
	if symbol, ok := currencySymbols[currencyCode]; ok {
		return symbol
	}
	return currencyCode
}

// EstimatedCost returns the total as "<symbol><amount>", or "" when the
// cart has no total.
func (f *CostFormatter) EstimatedCost() string {
	if f.cart == nil || f.cart.EstimatedCost.TotalAmount == nil {
		return ""
	}
	total := f.cart.EstimatedCost.TotalAmount
	return Symbol(total.CurrencyCode) + total.Amount
}
