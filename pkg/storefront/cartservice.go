package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/logging"
	"github.com/storefrontkit/checkout/pkg/types"
)

// ErrCartNotFound is returned when a cart query yields no cart.
var ErrCartNotFound = errors.New("the specified cart does not exist")

// CartService is the Storefront cart API: create and fetch carts, manage
// line items, note, attributes and discount codes. Methods return the cart
// id in its raw gid:// form.
type CartService struct {
	client *Client
	logger *slog.Logger

	lastError any
}

// CartServiceOption customizes a CartService.
type CartServiceOption func(*CartService)

// WithCartServiceLogger sets the service logger.
func WithCartServiceLogger(logger *slog.Logger) CartServiceOption {
	return func(s *CartService) { s.logger = logger }
}

// NewCartService creates a cart service for shopCtx. Client options select
// the mock router or a custom HTTP client.
func NewCartService(shopCtx *Context, opts []ClientOption, svcOpts ...CartServiceOption) *CartService {
	s := &CartService{
		client: NewClient(shopCtx, true, opts...),
		logger: logging.Nop(),
	}
	for _, opt := range svcOpts {
		opt(s)
	}
	return s
}

// Client returns the underlying GraphQL client.
func (s *CartService) Client() *Client { return s.client }

// LastError returns the most recent error payload: the transport's GraphQL
// errors when present, the endpoint's userErrors otherwise.
func (s *CartService) LastError() any { return s.lastError }

// LastResponse returns the raw response of the most recent query.
func (s *CartService) LastResponse() map[string]any { return s.client.LastResponse() }

// Beautifier creates a renderer for cart.
func (s *CartService) Beautifier(cart *types.Cart) *Beautifier {
	return NewBeautifier(cart)
}

func (s *CartService) setLastError(endpoint string, fallback any) {
	s.lastError = s.client.LastError()
	if s.lastError == nil {
		s.lastError = fallback
	}
	if s.lastError != nil {
		s.logger.Warn("cart endpoint error", "endpoint", endpoint, "error", s.lastError)
	}
}

// cartMutationPayload is the envelope shared by every cart mutation.
type cartMutationPayload struct {
	Cart       *types.Cart       `json:"cart"`
	UserErrors []types.UserError `json:"userErrors"`
}

// mutate runs a cart mutation document and returns the raw cart id from its
// payload.
func (s *CartService) mutate(ctx context.Context, endpoint, query string, variables map[string]any) (string, error) {
	data, err := s.client.Query(ctx, query, variables)
	if err != nil {
		s.setLastError(endpoint, err.Error())
		return "", err
	}

	var payload cartMutationPayload
	if err := decodePayload(data[endpoint], &payload); err != nil {
		s.setLastError(endpoint, err.Error())
		return "", err
	}

	if len(payload.UserErrors) > 0 {
		s.setLastError(endpoint, payload.UserErrors)
		return "", fmt.Errorf("%w: %s", ErrGraphqlErrors, encodeErrors(payload.UserErrors))
	}
	s.setLastError(endpoint, nil)

	if payload.Cart == nil {
		return "", ErrCartNotFound
	}
	return gid.Decode(payload.Cart.ID), nil
}

// GetNewCart creates a cart for countryCode and returns its raw id.
func (s *CartService) GetNewCart(ctx context.Context, countryCode string) (string, error) {
	query := cartCreateDocument

	variables := map[string]any{
		"buyerIdentity": map[string]any{"countryCode": countryCode},
	}

	return s.mutate(ctx, "cartCreate", query, variables)
}

// SetBuyerIdentity binds the cart to a market so that prices come back in
// the market's currency. GetCart does this automatically.
func (s *CartService) SetBuyerIdentity(ctx context.Context, cartID, countryCode string) (string, error) {
	query := cartBuyerIdentityUpdateDocument

	variables := map[string]any{
		"cartId":        cartID,
		"buyerIdentity": map[string]any{"countryCode": countryCode},
	}

	return s.mutate(ctx, "cartBuyerIdentityUpdate", query, variables)
}

// CartQueryOption adjusts how GetCart fetches a cart.
type CartQueryOption func(*cartQueryConfig)

type cartQueryConfig struct {
	skipBuyerIdentity     bool
	sellingPlanAllocation bool
}

// WithoutBuyerIdentityUpdate skips the buyer identity mutation that GetCart
// issues before fetching.
func WithoutBuyerIdentityUpdate() CartQueryOption {
	return func(c *cartQueryConfig) { c.skipBuyerIdentity = true }
}

// WithSellingPlanAllocation selects the selling plan allocation on each line
// item. Requires the unauthenticated_read_selling_plans access scope.
func WithSellingPlanAllocation() CartQueryOption {
	return func(c *cartQueryConfig) { c.sellingPlanAllocation = true }
}

// GetCart fetches the cart priced for countryCode. The buyer identity is
// updated first so market prices are correct; WithoutBuyerIdentityUpdate
// opts out.
func (s *CartService) GetCart(ctx context.Context, cartID, countryCode string, opts ...CartQueryOption) (*types.Cart, error) {
	var cfg cartQueryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.skipBuyerIdentity {
		if _, err := s.SetBuyerIdentity(ctx, cartID, countryCode); err != nil {
			return nil, err
		}
	}

	query := cartQueryDocument(cfg.sellingPlanAllocation)

	variables := map[string]any{
		"cartId":      cartID,
		"countryCode": countryCode,
	}

	data, err := s.client.Query(ctx, query, variables)
	if err != nil {
		s.setLastError("query cart", err.Error())
		return nil, err
	}

	var cart types.Cart
	if err := decodePayload(data["cart"], &cart); err != nil {
		s.setLastError("query cart", err.Error())
		return nil, err
	}
	if cart.ID == "" {
		s.setLastError("query cart", "The specified cart does not exist.")
		return nil, ErrCartNotFound
	}
	s.setLastError("query cart", nil)

	return &cart, nil
}

// AddLine adds a single line item.
func (s *CartService) AddLine(ctx context.Context, cartID, variantID string, quantity int, attributes []types.Attribute, sellingPlanID string) (string, error) {
	return s.AddLines(ctx, cartID, []LineItemSpec{
		{VariantID: variantID, Quantity: quantity, Attributes: attributes},
	}, sellingPlanID)
}

// AddLines adds line items to the cart. sellingPlanID, when non-empty, is
// attached to every line.
func (s *CartService) AddLines(ctx context.Context, cartID string, specs []LineItemSpec, sellingPlanID string) (string, error) {
	query := cartLinesAddDocument

	variables := map[string]any{
		"cartId": cartID,
		"lines":  lineInputs(specs, sellingPlanID),
	}

	return s.mutate(ctx, "cartLinesAdd", query, variables)
}

// UpdateLine adjusts a single line item.
func (s *CartService) UpdateLine(ctx context.Context, cartID, lineItemID string, quantity int, attributes []types.Attribute) (string, error) {
	return s.UpdateLines(ctx, cartID, []LineUpdateSpec{
		{LineItemID: lineItemID, Quantity: quantity, Attributes: attributes},
	})
}

// UpdateLines adjusts line items by id.
func (s *CartService) UpdateLines(ctx context.Context, cartID string, specs []LineUpdateSpec) (string, error) {
	query := cartLinesUpdateDocument

	variables := map[string]any{
		"cartId": cartID,
		"lines":  lineUpdateInputs(specs),
	}

	return s.mutate(ctx, "cartLinesUpdate", query, variables)
}

// RemoveLines removes line items by id.
func (s *CartService) RemoveLines(ctx context.Context, cartID string, lineItemIDs []string) (string, error) {
	query := cartLinesRemoveDocument

	variables := map[string]any{
		"cartId":  cartID,
		"lineIds": lineItemIDs,
	}

	return s.mutate(ctx, "cartLinesRemove", query, variables)
}

// EmptyCart removes every line item. It reports false when the cart had no
// lines to remove.
func (s *CartService) EmptyCart(ctx context.Context, cartID, countryCode string) (bool, error) {
	cart, err := s.GetCart(ctx, gid.Decode(cartID), countryCode)
	if err != nil {
		return false, err
	}

	lineItemIDs := make([]string, 0, len(cart.Lines.Edges))
	for _, edge := range cart.Lines.Edges {
		if edge.Node != nil && edge.Node.ID != "" {
			lineItemIDs = append(lineItemIDs, gid.Decode(edge.Node.ID))
		}
	}
	if len(lineItemIDs) == 0 {
		return false, nil
	}

	if _, err := s.RemoveLines(ctx, cartID, lineItemIDs); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateNote replaces the cart note. An empty note is valid on the real
// API.
func (s *CartService) UpdateNote(ctx context.Context, cartID, note string) (string, error) {
	query := cartNoteUpdateDocument

	variables := map[string]any{
		"cartId": cartID,
		"note":   note,
	}

	return s.mutate(ctx, "cartNoteUpdate", query, variables)
}

// UpdateAttributes sets one cart attribute. Attribute keys are not
// case-sensitive on Shopify: setting "Test" replaces an existing "test".
func (s *CartService) UpdateAttributes(ctx context.Context, cartID, key, value string) (string, error) {
	query := cartAttributesUpdateDocument

	variables := map[string]any{
		"cartId":     cartID,
		"attributes": types.Attribute{Key: key, Value: value},
	}

	return s.mutate(ctx, "cartAttributesUpdate", query, variables)
}

// UpdateDiscountCodes submits discount codes. Shopify applies only the
// first one, even when several are passed.
func (s *CartService) UpdateDiscountCodes(ctx context.Context, cartID string, discountCodes []string) (string, error) {
	query := cartDiscountCodesUpdateDocument

	variables := map[string]any{
		"cartId":        cartID,
		"discountCodes": discountCodes,
	}

	return s.mutate(ctx, "cartDiscountCodesUpdate", query, variables)
}

// CartExists reports whether cartID resolves to a cart.
func (s *CartService) CartExists(ctx context.Context, cartID, countryCode string) bool {
	_, err := s.GetCart(ctx, cartID, countryCode)
	return err == nil
}

// CheckoutURL returns the cart's web checkout URL.
func (s *CartService) CheckoutURL(ctx context.Context, cartID, countryCode string) (string, error) {
	cart, err := s.GetCart(ctx, cartID, countryCode)
	if err != nil {
		return "", err
	}
	return cart.CheckoutURL, nil
}
