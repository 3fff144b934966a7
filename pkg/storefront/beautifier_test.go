package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/types"
)

func beautifierCart() *types.Cart {
	altText := "Bottle shot"
	return &types.Cart{
		ID:          gid.Encode("gid://shopify/Cart/abc123"),
		CreatedAt:   "2023-05-01T12:30:00Z",
		UpdatedAt:   "2023-05-02T09:15:00Z",
		CheckoutURL: "https://mock.myshopify.com/cart/c/abc123",
		BuyerIdentity: types.BuyerIdentity{
			CountryCode: "DE",
		},
		Attributes:    []types.Attribute{{Key: "gift", Value: "true"}},
		DiscountCodes: []types.DiscountCode{{Code: "FOC", Applicable: true}},
		Note:          "Leave at the door",
		Lines: types.CartLines{Edges: []types.CartLineEdge{{Node: &types.CartLine{
			ID:       gid.Encode("gid://shopify/CartLine/1"),
			Quantity: 2,
			Merchandise: types.Merchandise{
				ID:      gid.Encode("gid://shopify/ProductVariant/41"),
				Title:   "Default Title",
				PriceV2: types.Money{Amount: "119.0", CurrencyCode: "EUR"},
				Product: types.ProductSnapshot{
					ID:    gid.Encode("gid://shopify/Product/7"),
					Title: "Islay Single Malt",
					Variants: types.VariantRefs{Edges: []types.VariantRefEdge{
						{Node: types.VariantRef{ID: gid.Encode("gid://shopify/ProductVariant/41")}},
					}},
					Images: types.Images{Edges: []types.ImageEdge{
						{Node: types.Image{ID: "img-1", Src: "https://cdn.shopify.com/s/files/whiskey.jpg", AltText: &altText}},
					}},
				},
			},
		}}}},
		EstimatedCost: types.CartCost{
			TotalAmount:    &types.Money{Amount: "283.22", CurrencyCode: "EUR"},
			SubtotalAmount: &types.Money{Amount: "238.0", CurrencyCode: "EUR"},
			TotalTaxAmount: &types.Money{Amount: "45.22", CurrencyCode: "EUR"},
		},
	}
}

func TestBeautifierIdentity(t *testing.T) {
	b := NewBeautifier(beautifierCart())

	assert.Equal(t, "gid://shopify/Cart/abc123", b.CartID())
	assert.Equal(t, "abc123", b.CartToken())
	assert.Equal(t, "DE", b.CountryCode())
	assert.Equal(t, "https://mock.myshopify.com/cart/c/abc123", b.CheckoutURL())
	assert.Equal(t, "Leave at the door", b.Note())
}

func TestBeautifierTimestamps(t *testing.T) {
	b := NewBeautifier(beautifierCart())

	assert.Equal(t, "May 1, 2023 at 12:30pm", b.CreatedAt())
	assert.Equal(t, "May 2, 2023 at 9:15am", b.UpdatedAt())
}

func TestBeautifierCosts(t *testing.T) {
	b := NewBeautifier(beautifierCart())

	assert.Equal(t, EstimatedCosts{
		Net:   "EUR 238.00",
		Tax:   "EUR 45.22",
		Total: "EUR 283.22",
	}, b.Costs())
}

func TestBeautifierLineItems(t *testing.T) {
	b := NewBeautifier(beautifierCart())

	t.Run("flattened", func(t *testing.T) {
		items := b.LineItems(false)
		require.Len(t, items, 1)
		assert.Equal(t, LineItem{
			ID:       "gid://shopify/CartLine/1",
			Title:    "Islay Single Malt",
			Quantity: 2,
			Price:    "EUR 119.00",
		}, items[0])
	})

	t.Run("more details", func(t *testing.T) {
		items := b.LineItems(true)
		require.Len(t, items, 1)
		assert.Equal(t, "gid://shopify/Product/7", items[0].ProductID)
		assert.Equal(t, "gid://shopify/ProductVariant/41", items[0].VariantID)
		assert.Equal(t, "https://cdn.shopify.com/s/files/whiskey.jpg", items[0].Image)
	})

	t.Run("lookup by id", func(t *testing.T) {
		item := b.LineItem("gid://shopify/CartLine/1", false)
		require.NotNil(t, item)
		assert.Equal(t, "Islay Single Malt", item.Title)

		assert.Nil(t, b.LineItem("gid://shopify/CartLine/unknown", false))
	})
}

func TestBeautifierAttributesAndDiscounts(t *testing.T) {
	b := NewBeautifier(beautifierCart())

	assert.Equal(t, []types.Attribute{{Key: "gift", Value: "true"}}, b.Attributes())
	assert.Equal(t, []types.DiscountCode{{Code: "FOC", Applicable: true}}, b.DiscountCodes())
}

func TestBeautifierJSON(t *testing.T) {
	b := NewBeautifier(beautifierCart())

	out := b.JSON()
	assert.Contains(t, out, `"checkoutUrl"`)
	assert.Contains(t, out, "Islay Single Malt")
}

func TestBeautifierNilCart(t *testing.T) {
	b := NewBeautifier(nil)

	assert.Empty(t, b.CartID())
	assert.Empty(t, b.CartToken())
	assert.Empty(t, b.CountryCode())
	assert.Empty(t, b.CreatedAt())
	assert.Empty(t, b.CheckoutURL())
	assert.Empty(t, b.Note())
	assert.Equal(t, EstimatedCosts{Net: "N/A", Tax: "N/A", Total: "N/A"}, b.Costs())
	assert.Nil(t, b.LineItems(false))
	assert.Nil(t, b.LineItem("gid://shopify/CartLine/1", false))
	assert.Nil(t, b.Attributes())
	assert.Nil(t, b.DiscountCodes())
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		price *types.Money
		want  string
	}{
		{name: "nil price", price: nil, want: "N/A"},
		{name: "empty amount", price: &types.Money{CurrencyCode: "EUR"}, want: "N/A"},
		{name: "unparseable amount", price: &types.Money{Amount: "abc", CurrencyCode: "EUR"}, want: "N/A"},
		{name: "two decimals", price: &types.Money{Amount: "12.5", CurrencyCode: "GBP"}, want: "GBP 12.50"},
		{name: "rounds", price: &types.Money{Amount: "0.005", CurrencyCode: "EUR"}, want: "EUR 0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMoney(tt.price))
		})
	}
}
