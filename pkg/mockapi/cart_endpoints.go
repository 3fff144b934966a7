package mockapi

import (
	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/types"
)

// cartEndpoints binds the cart engine to the router's operations.
type cartEndpoints struct {
	backend *Backend
	// createMissing enables the cart factory: a buyer identity update on
	// an unknown cart creates it on the fly under the given id.
	createMissing bool
}

func registerCartEndpoints(r *Router, backend *Backend, createMissing bool) {
	e := &cartEndpoints{backend: backend, createMissing: createMissing}

	r.Register(OpCartGet, e.cartGet)
	r.Register(OpCartCreate, e.cartCreate)
	r.Register(OpCartBuyerIdentityUpdate, e.cartBuyerIdentityUpdate)
	r.Register(OpCartLinesAdd, e.cartLinesAdd)
	r.Register(OpCartLinesUpdate, e.cartLinesUpdate)
	r.Register(OpCartLinesRemove, e.cartLinesRemove)
	r.Register(OpCartNoteUpdate, e.cartNoteUpdate)
	r.Register(OpCartAttributesUpdate, e.cartAttributesUpdate)
	r.Register(OpCartDiscountCodesUpdate, e.cartDiscountCodesUpdate)
}

// mutationEnvelope wraps a cart mutation payload. userErrors is always
// present, possibly empty, as on the real API.
func mutationEnvelope(rootField string, cart *types.Cart, userErrors []types.UserError) map[string]any {
	if userErrors == nil {
		userErrors = []types.UserError{}
	}
	return map[string]any{
		rootField: map[string]any{
			"cart":       cart,
			"userErrors": userErrors,
		},
	}
}

func (e *cartEndpoints) country(vars map[string]any) string {
	if cc := nestedStringVar(vars, "buyerIdentity", "countryCode"); cc != "" {
		return cc
	}
	return types.DefaultMarket
}

// contextCountry reads the @inContext country of the document, falling
// back to the default market.
func contextCountry(parsed *ParsedQuery) string {
	if cc := parsed.ContextString("country"); cc != "" {
		return cc
	}
	return types.DefaultMarket
}

func (e *cartEndpoints) cartGet(query string, vars map[string]any) (map[string]any, error) {
	parsed, err := ParseQuery(query, vars)
	if err != nil {
		return nil, err
	}

	cart, err := e.backend.Carts().Get(stringVar(vars, "cartId"), contextCountry(parsed))
	if err != nil {
		return nil, err
	}

	return map[string]any{"cart": cart}, nil
}

func (e *cartEndpoints) cartCreate(query string, vars map[string]any) (map[string]any, error) {
	if _, err := ParseQuery(query, vars); err != nil {
		return nil, err
	}

	cart, err := e.backend.Carts().Create(e.country(vars))
	if err != nil {
		return nil, err
	}

	return mutationEnvelope("cartCreate", cart, nil), nil
}

func (e *cartEndpoints) cartBuyerIdentityUpdate(query string, vars map[string]any) (map[string]any, error) {
	if _, err := ParseQuery(query, vars); err != nil {
		return nil, err
	}

	cartID := stringVar(vars, "cartId")
	countryCode := e.country(vars)

	carts := e.backend.Carts()
	if !carts.Exists(cartID) && e.createMissing {
		if _, err := carts.CreateWithID(cartID, countryCode); err != nil {
			return nil, err
		}
	}

	cart, err := carts.Get(cartID, countryCode)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return mutationEnvelope("cartBuyerIdentityUpdate", nil, []types.UserError{
			{Field: []string{"cartId"}, Message: "The specified cart does not exist."},
		}), nil
	}

	return mutationEnvelope("cartBuyerIdentityUpdate", cart, nil), nil
}

func (e *cartEndpoints) cartLinesAdd(query string, vars map[string]any) (map[string]any, error) {
	parsed, err := ParseQuery(query, vars)
	if err != nil {
		return nil, err
	}

	cartID := gid.Decode(stringVar(vars, "cartId"))
	if cartID == "" {
		return nil, nil
	}

	var lines []types.CartLineInput
	if err := unmarshalVar(vars, "lines", &lines); err != nil {
		return nil, err
	}

	cart, err := e.backend.Carts().AddLines(cartID, contextCountry(parsed), lines)
	if err != nil || cart == nil {
		return nil, err
	}

	return mutationEnvelope("cartLinesAdd", cart, nil), nil
}

func (e *cartEndpoints) cartLinesUpdate(query string, vars map[string]any) (map[string]any, error) {
	parsed, err := ParseQuery(query, vars)
	if err != nil {
		return nil, err
	}

	cartID := gid.Decode(stringVar(vars, "cartId"))
	if cartID == "" {
		return nil, nil
	}

	var lines []types.CartLineUpdateInput
	if err := unmarshalVar(vars, "lines", &lines); err != nil {
		return nil, err
	}

	cart, err := e.backend.Carts().UpdateLines(cartID, contextCountry(parsed), lines)
	if err != nil || cart == nil {
		return nil, err
	}

	return mutationEnvelope("cartLinesUpdate", cart, nil), nil
}

func (e *cartEndpoints) cartLinesRemove(query string, vars map[string]any) (map[string]any, error) {
	parsed, err := ParseQuery(query, vars)
	if err != nil {
		return nil, err
	}

	cartID := gid.Decode(stringVar(vars, "cartId"))
	if cartID == "" {
		return nil, nil
	}

	cart, err := e.backend.Carts().RemoveLines(cartID, contextCountry(parsed), stringsVar(vars, "lineIds"))
	if err != nil || cart == nil {
		return nil, err
	}

	return mutationEnvelope("cartLinesRemove", cart, nil), nil
}

func (e *cartEndpoints) cartNoteUpdate(query string, vars map[string]any) (map[string]any, error) {
	parsed, err := ParseQuery(query, vars)
	if err != nil {
		return nil, err
	}

	cartID := gid.Decode(stringVar(vars, "cartId"))
	if cartID == "" {
		return nil, nil
	}

	cart, err := e.backend.Carts().UpdateNote(cartID, contextCountry(parsed), stringVar(vars, "note"))
	if err != nil || cart == nil {
		return nil, err
	}

	return mutationEnvelope("cartNoteUpdate", cart, nil), nil
}

func (e *cartEndpoints) cartAttributesUpdate(query string, vars map[string]any) (map[string]any, error) {
	parsed, err := ParseQuery(query, vars)
	if err != nil {
		return nil, err
	}

	cartID := gid.Decode(stringVar(vars, "cartId"))
	if cartID == "" {
		return nil, nil
	}

	var attribute types.Attribute
	if err := unmarshalVar(vars, "attributes", &attribute); err != nil {
		return nil, err
	}
	if attribute.Key == "" && attribute.Value == "" {
		return nil, nil
	}

	cart, err := e.backend.Carts().UpdateAttributes(cartID, contextCountry(parsed), attribute)
	if err != nil || cart == nil {
		return nil, err
	}

	return mutationEnvelope("cartAttributesUpdate", cart, nil), nil
}

func (e *cartEndpoints) cartDiscountCodesUpdate(query string, vars map[string]any) (map[string]any, error) {
	parsed, err := ParseQuery(query, vars)
	if err != nil {
		return nil, err
	}

	cartID := gid.Decode(stringVar(vars, "cartId"))
	if cartID == "" {
		return nil, nil
	}

	cart, err := e.backend.Carts().UpdateDiscountCodes(cartID, contextCountry(parsed), stringsVar(vars, "discountCodes"))
	if err != nil || cart == nil {
		return nil, err
	}

	return mutationEnvelope("cartDiscountCodesUpdate", cart, nil), nil
}
