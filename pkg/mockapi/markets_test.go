package mockapi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMarkets(t *testing.T) {
	markets := NewMarkets()

	t.Run("known markets", func(t *testing.T) {
		tests := []struct {
			countryCode string
			currency    string
			vat         string
			adjustment  string
		}{
			{"AU", "AUD", "0.10", "1.10"},
			{"CH", "CHF", "0.077", "1.077"},
			{"CN", "CNY", "0.13", "1.13"},
			{"DE", "EUR", "0.19", "1.19"},
			{"FR", "EUR", "0.20", "1.20"},
			{"IE", "EUR", "0.22", "1.0"},
			{"GB", "GBP", "0.23", "1.23"},
			{"JP", "JPY", "0.10", "1.10"},
			{"NZ", "NZD", "0.15", "1.15"},
			{"SG", "SGD", "0.07", "1.07"},
			{"ZA", "ZAR", "0.15", "1.15"},
		}

		base := decimal.NewFromInt(100)
		for _, tt := range tests {
			t.Run(tt.countryCode, func(t *testing.T) {
				assert.True(t, markets.Has(tt.countryCode))
				assert.Equal(t, tt.currency, markets.Currency(tt.countryCode))
				assert.True(t, markets.VAT(tt.countryCode).Equal(decimal.RequireFromString(tt.vat)))

				want := base.Mul(decimal.RequireFromString(tt.adjustment))
				assert.True(t, markets.Price(base, tt.countryCode).Equal(want))
			})
		}
	})

	t.Run("home market has no price adjustment", func(t *testing.T) {
		base := decimal.RequireFromString("19.99")
		assert.True(t, markets.Price(base, "IE").Equal(base))
	})

	t.Run("unknown market falls back to the default", func(t *testing.T) {
		assert.False(t, markets.Has("XX"))
		assert.Equal(t, "EUR", markets.Currency("XX"))
		assert.True(t, markets.VAT("XX").Equal(decimal.RequireFromString("0.22")))

		base := decimal.NewFromInt(50)
		assert.True(t, markets.Price(base, "XX").Equal(base))
	})
}
