package storefront

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/mockapi"
	"github.com/storefrontkit/checkout/pkg/types"
)

const (
	serviceTestVariantID      = "gid://shopify/ProductVariant/40000000000001"
	serviceTestOtherVariantID = "gid://shopify/ProductVariant/40000000000002"
)

func newMockCartService(t *testing.T) *CartService {
	t.Helper()
	router := mockapi.NewRouter(mockapi.NewBackend())
	shopCtx := NewContext(mockapi.DefaultShopBaseURL, "2023-01").WithStorefrontToken("test-token")
	return NewCartService(shopCtx, []ClientOption{WithMockRouter(router)})
}

func TestCartServiceGetNewCart(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "FR")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cartID, gid.CartPrefix))
	assert.Nil(t, service.LastError())

	assert.True(t, service.CartExists(ctx, cartID, "FR"))
}

func TestCartServiceGetCart(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "DE")
	require.NoError(t, err)

	cart, err := service.GetCart(ctx, cartID, "DE")
	require.NoError(t, err)
	assert.Equal(t, "DE", cart.BuyerIdentity.CountryCode)
	assert.Contains(t, cart.CheckoutURL, mockapi.DefaultShopBaseURL)
	require.NotNil(t, cart.EstimatedCost.TotalAmount)
	assert.Equal(t, "EUR", cart.EstimatedCost.TotalAmount.CurrencyCode)
	assert.Equal(t, "0.0", cart.EstimatedCost.TotalAmount.Amount)
}

func TestCartServiceGetCartUnknown(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	t.Run("buyer identity update rejects", func(t *testing.T) {
		_, err := service.GetCart(ctx, "gid://shopify/Cart/unknown", "DE")
		require.ErrorIs(t, err, ErrGraphqlErrors)
		assert.NotNil(t, service.LastError())
	})

	t.Run("direct fetch", func(t *testing.T) {
		_, err := service.GetCart(ctx, "gid://shopify/Cart/unknown", "DE", WithoutBuyerIdentityUpdate())
		require.ErrorIs(t, err, ErrCartNotFound)
	})

	t.Run("cart exists", func(t *testing.T) {
		assert.False(t, service.CartExists(ctx, "gid://shopify/Cart/unknown", "DE"))
	})
}

func TestCartServiceAddLines(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "IE")
	require.NoError(t, err)

	t.Run("duplicate variants merge", func(t *testing.T) {
		_, err := service.AddLine(ctx, cartID, serviceTestVariantID, 1, nil, "")
		require.NoError(t, err)
		_, err = service.AddLine(ctx, cartID, serviceTestVariantID, 2, nil, "")
		require.NoError(t, err)

		cart, err := service.GetCart(ctx, cartID, "IE")
		require.NoError(t, err)
		require.Len(t, cart.Lines.Edges, 1)
		assert.Equal(t, 3, cart.Lines.Edges[0].Node.Quantity)
	})

	t.Run("batch", func(t *testing.T) {
		_, err := service.AddLines(ctx, cartID, []LineItemSpec{
			{VariantID: serviceTestOtherVariantID, Quantity: 1, Attributes: []types.Attribute{{Key: "engraving", Value: "slainte"}}},
		}, "")
		require.NoError(t, err)

		cart, err := service.GetCart(ctx, cartID, "IE")
		require.NoError(t, err)
		assert.Len(t, cart.Lines.Edges, 2)
	})

	t.Run("unknown cart", func(t *testing.T) {
		_, err := service.AddLine(ctx, "gid://shopify/Cart/unknown", serviceTestVariantID, 1, nil, "")
		require.ErrorIs(t, err, ErrEmptyResponse)
	})
}

func TestCartServiceUpdateLine(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "IE")
	require.NoError(t, err)
	_, err = service.AddLine(ctx, cartID, serviceTestVariantID, 1, nil, "")
	require.NoError(t, err)

	cart, err := service.GetCart(ctx, cartID, "IE")
	require.NoError(t, err)
	require.Len(t, cart.Lines.Edges, 1)
	lineItemID := gid.Decode(cart.Lines.Edges[0].Node.ID)

	// Quantities are additive on the mock, matching quantity adjustments
	// rather than replacement.
	_, err = service.UpdateLine(ctx, cartID, lineItemID, 2, nil)
	require.NoError(t, err)

	cart, err = service.GetCart(ctx, cartID, "IE")
	require.NoError(t, err)
	require.Len(t, cart.Lines.Edges, 1)
	assert.Equal(t, 3, cart.Lines.Edges[0].Node.Quantity)
}

func TestCartServiceRemoveLines(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "IE")
	require.NoError(t, err)
	_, err = service.AddLine(ctx, cartID, serviceTestVariantID, 1, nil, "")
	require.NoError(t, err)

	cart, err := service.GetCart(ctx, cartID, "IE")
	require.NoError(t, err)
	require.Len(t, cart.Lines.Edges, 1)

	_, err = service.RemoveLines(ctx, cartID, []string{gid.Decode(cart.Lines.Edges[0].Node.ID)})
	require.NoError(t, err)

	cart, err = service.GetCart(ctx, cartID, "IE")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines.Edges)
}

func TestCartServiceEmptyCart(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "IE")
	require.NoError(t, err)

	emptied, err := service.EmptyCart(ctx, cartID, "IE")
	require.NoError(t, err)
	assert.False(t, emptied)

	_, err = service.AddLine(ctx, cartID, serviceTestVariantID, 2, nil, "")
	require.NoError(t, err)

	emptied, err = service.EmptyCart(ctx, cartID, "IE")
	require.NoError(t, err)
	assert.True(t, emptied)

	cart, err := service.GetCart(ctx, cartID, "IE")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines.Edges)
}

func TestCartServiceUpdateNote(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "IE")
	require.NoError(t, err)

	_, err = service.UpdateNote(ctx, cartID, "Leave at the door")
	require.NoError(t, err)

	cart, err := service.GetCart(ctx, cartID, "IE")
	require.NoError(t, err)
	assert.Equal(t, "Leave at the door", cart.Note)
}

func TestCartServiceUpdateAttributes(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "IE")
	require.NoError(t, err)

	_, err = service.UpdateAttributes(ctx, cartID, "gift", "true")
	require.NoError(t, err)

	cart, err := service.GetCart(ctx, cartID, "IE")
	require.NoError(t, err)
	assert.Equal(t, []types.Attribute{{Key: "gift", Value: "true"}}, cart.Attributes)

	// Keys are matched case-insensitively; the new casing wins.
	_, err = service.UpdateAttributes(ctx, cartID, "Gift", "false")
	require.NoError(t, err)

	cart, err = service.GetCart(ctx, cartID, "IE")
	require.NoError(t, err)
	assert.Equal(t, []types.Attribute{{Key: "Gift", Value: "false"}}, cart.Attributes)
}

func TestCartServiceUpdateDiscountCodes(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "IE")
	require.NoError(t, err)

	t.Run("known code applies", func(t *testing.T) {
		_, err := service.UpdateDiscountCodes(ctx, cartID, []string{"FOC"})
		require.NoError(t, err)

		cart, err := service.GetCart(ctx, cartID, "IE")
		require.NoError(t, err)
		require.NotEmpty(t, cart.DiscountCodes)
		assert.Equal(t, "FOC", cart.DiscountCodes[0].Code)
		assert.True(t, cart.DiscountCodes[0].Applicable)
	})

	t.Run("unknown code is stored but not applicable", func(t *testing.T) {
		_, err := service.UpdateDiscountCodes(ctx, cartID, []string{"NOPE"})
		require.NoError(t, err)

		cart, err := service.GetCart(ctx, cartID, "IE")
		require.NoError(t, err)
		require.NotEmpty(t, cart.DiscountCodes)
		assert.Equal(t, "NOPE", cart.DiscountCodes[0].Code)
		assert.False(t, cart.DiscountCodes[0].Applicable)
	})

	t.Run("empty batch rejects", func(t *testing.T) {
		_, err := service.UpdateDiscountCodes(ctx, cartID, nil)
		require.Error(t, err)
	})
}

func TestCartServiceCheckoutURL(t *testing.T) {
	service := newMockCartService(t)
	ctx := context.Background()

	cartID, err := service.GetNewCart(ctx, "IE")
	require.NoError(t, err)

	url, err := service.CheckoutURL(ctx, cartID, "IE")
	require.NoError(t, err)
	assert.Contains(t, url, mockapi.DefaultShopBaseURL)
}
