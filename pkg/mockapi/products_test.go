package mockapi

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontkit/checkout/internal/id"
	"github.com/storefrontkit/checkout/internal/storage"
	"github.com/storefrontkit/checkout/pkg/gid"
)

func newTestProducts() *Products {
	return NewProducts(storage.NewMemoryStore(), id.NewGenerator())
}

func TestProductsByVariant(t *testing.T) {
	products := newTestProducts()
	variantID := gid.ProductVariantPrefix + "123456"

	t.Run("absent without create", func(t *testing.T) {
		variant, err := products.ByVariant(variantID, false)
		require.NoError(t, err)
		assert.Nil(t, variant)
	})

	t.Run("fabricates and pins on first reference", func(t *testing.T) {
		variant, err := products.ByVariant(variantID, true)
		require.NoError(t, err)
		require.NotNil(t, variant)

		assert.Equal(t, variantID, variant.ID)
		assert.NotEmpty(t, variant.Title)
		assert.True(t, strings.HasPrefix(variant.ProductID, gid.ProductPrefix))
		assert.Equal(t, "EUR", variant.Currency)
		assert.True(t, variant.Price.GreaterThanOrEqual(decimal.NewFromInt(10)))
		assert.True(t, variant.Price.LessThanOrEqual(decimal.NewFromInt(200)))
		require.Len(t, variant.Images, 1)
		assert.Contains(t, variant.Images[0].Src, "https://cdn.shopify.com/")

		again, err := products.ByVariant(variantID, true)
		require.NoError(t, err)
		require.NotNil(t, again)
		assert.Equal(t, variant.Title, again.Title)
		assert.True(t, variant.Price.Equal(again.Price))
	})
}

func TestProductsProduct(t *testing.T) {
	products := newTestProducts()
	entityID := gid.ProductPrefix + "7890"

	product, err := products.Product(entityID, true)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.NotEmpty(t, product.Title)
	require.Len(t, product.Variants, 1)

	again, err := products.Product(entityID, true)
	require.NoError(t, err)
	assert.Equal(t, product.ID, again.ID)
	assert.Equal(t, product.Title, again.Title)
}

func TestProductsVariantDoesNotPersist(t *testing.T) {
	products := newTestProducts()
	variantID := gid.ProductVariantPrefix + "555"

	first, err := products.Variant(variantID, true)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Unlike ByVariant, plain Variant lookups fabricate transient data.
	second, err := products.Variant(variantID, false)
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestRandomProductName(t *testing.T) {
	for range 50 {
		name := randomProductName()
		require.NotEmpty(t, name)
		assert.Equal(t, strings.ToUpper(name[:1]), name[:1])
		words := strings.Split(name, " ")
		assert.GreaterOrEqual(t, len(words), 2)
		assert.LessOrEqual(t, len(words), 3)
	}
}
