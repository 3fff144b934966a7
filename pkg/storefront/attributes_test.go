package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storefrontkit/checkout/pkg/types"
)

func TestFormatAttributes(t *testing.T) {
	t.Run("sorts keys", func(t *testing.T) {
		got := FormatAttributes(map[string]string{
			"gift":    "true",
			"courier": "dhl",
			"note":    "fragile",
		})

		assert.Equal(t, []types.Attribute{
			{Key: "courier", Value: "dhl"},
			{Key: "gift", Value: "true"},
			{Key: "note", Value: "fragile"},
		}, got)
	})

	t.Run("empty map", func(t *testing.T) {
		assert.Empty(t, FormatAttributes(nil))
		assert.Empty(t, FormatAttributes(map[string]string{}))
	})
}
