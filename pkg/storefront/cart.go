package storefront

import (
	"context"

	"github.com/storefrontkit/checkout/pkg/types"
)

// Cart is a stateful session over the cart service: it remembers the cart
// id and market so callers work with one cart without threading ids
// through every call.
type Cart struct {
	service *CartService

	cartID                string
	countryCode           string
	sellingPlanAllocation bool
}

// NewCart creates a session bound to the default market.
func NewCart(service *CartService) *Cart {
	return &Cart{
		service:     service,
		countryCode: types.DefaultMarket,
	}
}

// SetCountryCode switches the session's market.
func (c *Cart) SetCountryCode(countryCode string) *Cart {
	c.countryCode = countryCode
	return c
}

// SetIncludeSellingPlanAllocation toggles the selling plan allocation
// selection on cart fetches. Requires the unauthenticated_read_selling_plans
// access scope.
func (c *Cart) SetIncludeSellingPlanAllocation(include bool) *Cart {
	c.sellingPlanAllocation = include
	return c
}

// Service returns the underlying cart service.
func (c *Cart) Service() *CartService { return c.service }

// CartID returns the session's raw cart id, or "" before GetNewCart.
func (c *Cart) CartID() string { return c.cartID }

// CountryCode returns the session's market.
func (c *Cart) CountryCode() string { return c.countryCode }

func (c *Cart) queryOptions() []CartQueryOption {
	if c.sellingPlanAllocation {
		return []CartQueryOption{WithSellingPlanAllocation()}
	}
	return nil
}

// GetNewCart creates a fresh cart for the session's market and returns it.
func (c *Cart) GetNewCart(ctx context.Context) (*types.Cart, error) {
	cartID, err := c.service.GetNewCart(ctx, c.countryCode)
	if err != nil {
		return nil, err
	}
	c.cartID = cartID
	return c.GetCart(ctx)
}

// SetCartID binds the session to an existing cart and returns it.
func (c *Cart) SetCartID(ctx context.Context, cartID string) (*types.Cart, error) {
	c.cartID = cartID
	return c.GetCart(ctx)
}

// GetCart fetches the session's cart priced for its market.
func (c *Cart) GetCart(ctx context.Context) (*types.Cart, error) {
	return c.service.GetCart(ctx, c.cartID, c.countryCode, c.queryOptions()...)
}

// AddLine adds a single line item.
func (c *Cart) AddLine(ctx context.Context, variantID string, quantity int, attributes []types.Attribute, sellingPlanID string) error {
	_, err := c.service.AddLine(ctx, c.cartID, variantID, quantity, attributes, sellingPlanID)
	return err
}

// AddLines adds line items.
func (c *Cart) AddLines(ctx context.Context, specs []LineItemSpec, sellingPlanID string) error {
	_, err := c.service.AddLines(ctx, c.cartID, specs, sellingPlanID)
	return err
}

// UpdateLine adjusts a single line item.
func (c *Cart) UpdateLine(ctx context.Context, lineItemID string, quantity int, attributes []types.Attribute) error {
	_, err := c.service.UpdateLine(ctx, c.cartID, lineItemID, quantity, attributes)
	return err
}

// UpdateLines adjusts line items.
func (c *Cart) UpdateLines(ctx context.Context, specs []LineUpdateSpec) error {
	_, err := c.service.UpdateLines(ctx, c.cartID, specs)
	return err
}

// RemoveLines removes line items by id.
func (c *Cart) RemoveLines(ctx context.Context, lineItemIDs []string) error {
	_, err := c.service.RemoveLines(ctx, c.cartID, lineItemIDs)
	return err
}

// EmptyCart removes every line item, reporting whether any were removed.
func (c *Cart) EmptyCart(ctx context.Context) (bool, error) {
	return c.service.EmptyCart(ctx, c.cartID, c.countryCode)
}

// UpdateNote replaces the cart note.
func (c *Cart) UpdateNote(ctx context.Context, note string) error {
	_, err := c.service.UpdateNote(ctx, c.cartID, note)
	return err
}

// UpdateAttributes sets one cart attribute.
func (c *Cart) UpdateAttributes(ctx context.Context, key, value string) error {
	_, err := c.service.UpdateAttributes(ctx, c.cartID, key, value)
	return err
}

// UpdateDiscountCodes submits discount codes; only the first is applied.
func (c *Cart) UpdateDiscountCodes(ctx context.Context, discountCodes []string) error {
	_, err := c.service.UpdateDiscountCodes(ctx, c.cartID, discountCodes)
	return err
}

// CheckoutURL returns the session cart's web checkout URL.
func (c *Cart) CheckoutURL(ctx context.Context) (string, error) {
	return c.service.CheckoutURL(ctx, c.cartID, c.countryCode)
}

// LastError returns the service's most recent error payload.
func (c *Cart) LastError() any { return c.service.LastError() }

// Beautifier fetches the cart and wraps it in a renderer.
func (c *Cart) Beautifier(ctx context.Context) (*Beautifier, error) {
	cart, err := c.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	return NewBeautifier(cart), nil
}
