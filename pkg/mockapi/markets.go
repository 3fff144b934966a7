package mockapi

import (
	"github.com/shopspring/decimal"

	"github.com/storefrontkit/checkout/pkg/types"
)

// Market holds the pricing parameters of one country.
type Market struct {
	Currency string
	// VAT is the tax rate applied on the net amount.
	VAT decimal.Decimal
	// PriceAdjustment is the multiplier applied to the base (default
	// market) price. The numbers for non-default markets are dummies.
	PriceAdjustment decimal.Decimal
}

// Markets is the static per-country catalog of currency, VAT rate and
// price adjustment. Unknown country codes fall back to the default market
// in every getter; Has is the only strict membership check.
type Markets struct {
	markets map[string]Market
}

// NewMarkets creates the catalog with its built-in country table.
func NewMarkets() *Markets {
	market := func(currency string, vat, adjustment float64) Market {
		return Market{
			Currency:        currency,
			VAT:             decimal.NewFromFloat(vat),
			PriceAdjustment: decimal.NewFromFloat(adjustment),
		}
	}
	return &Markets{markets: map[string]Market{
		"AU": market("AUD", 0.10, 1.10),
		"CH": market("CHF", 0.077, 1.077),
		"CN": market("CNY", 0.13, 1.13),
		"DE": market("EUR", 0.19, 1.19),
		"FR": market("EUR", 0.20, 1.20),
		"IE": market("EUR", 0.22, 1.0),
		"GB": market("GBP", 0.23, 1.23),
		"JP": market("JPY", 0.10, 1.10),
		"NZ": market("NZD", 0.15, 1.15),
		"SG": market("SGD", 0.07, 1.07),
		"ZA": market("ZAR", 0.15, 1.15),
	}}
}

func (m *Markets) market(countryCode string) Market {
	if market, ok := m.markets[countryCode]; ok {
		return market
	}
	return m.markets[types.DefaultMarket]
}

// Has reports whether countryCode is a known market. Unlike the getters,
// it does not fall back to the default market.
func (m *Markets) Has(countryCode string) bool {
	_, ok := m.markets[countryCode]
	return ok
}

// Currency returns the market's currency code.
func (m *Markets) Currency(countryCode string) string {
	return m.market(countryCode).Currency
}

// Price returns the base price adjusted for the market.
func (m *Markets) Price(base decimal.Decimal, countryCode string) decimal.Decimal {
	return base.Mul(m.market(countryCode).PriceAdjustment)
}

// VAT returns the market's tax rate.
func (m *Markets) VAT(countryCode string) decimal.Decimal {
	return m.market(countryCode).VAT
}
