package mockapi

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefrontkit/checkout/internal/id"
	"github.com/storefrontkit/checkout/internal/storage"
	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/types"
)

const timestampLayout = "2006-01-02T15:04:05Z"

// formatAmount renders a monetary amount the way Shopify does: exactly two
// decimals, except that a true-zero amount renders as "0.0". The asymmetry
// is load-bearing for existing consumers.
func formatAmount(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "0.0"
	}
	return amount.StringFixed(2)
}

func formatPrice(amount decimal.Decimal, currency string) types.Money {
	return types.Money{Amount: formatAmount(amount), CurrencyCode: currency}
}

// Carts is the cart domain engine: create, fetch and mutate a cart's line
// items, attributes, note and discount codes. Every mutation and every
// fetch re-derives the market-adjusted prices and totals, so cost fields
// are never stale.
//
// Business-level rejections (unknown cart, invalid batch entry) surface as
// a nil cart with a nil error; errors are reserved for hard failures such
// as id generation running out.
type Carts struct {
	store       storage.Store
	ids         *id.Generator
	markets     *Markets
	products    *Products
	discounts   *DiscountCodes
	shopBaseURL string
	now         func() time.Time
}

// NewCarts creates a cart engine over the given collaborators.
func NewCarts(store storage.Store, ids *id.Generator, markets *Markets, products *Products, discounts *DiscountCodes, shopBaseURL string, now func() time.Time) *Carts {
	if now == nil {
		now = time.Now
	}
	return &Carts{
		store:       store,
		ids:         ids,
		markets:     markets,
		products:    products,
		discounts:   discounts,
		shopBaseURL: shopBaseURL,
		now:         now,
	}
}

func (c *Carts) timestamp() string {
	return c.now().UTC().Format(timestampLayout)
}

// cart accepts either the raw or the opaque form of a cart id; storage is
// keyed by the raw form.
func (c *Carts) cart(cartID string) *types.Cart {
	cart, _ := c.store.Get(gid.CartPrefix, gid.Decode(cartID)).(*types.Cart)
	return cart
}

// Exists reports whether a cart is stored under cartID.
func (c *Carts) Exists(cartID string) bool {
	return c.store.Has(gid.CartPrefix, gid.Decode(cartID))
}

// Create allocates a new cart for the given market. Unknown country codes
// are rejected with a nil cart.
func (c *Carts) Create(countryCode string) (*types.Cart, error) {
	return c.CreateWithID("", countryCode)
}

// CreateWithID creates a cart under a caller-chosen id, or a random one
// when cartID is empty. Used by the on-the-fly cart factory.
func (c *Carts) CreateWithID(cartID, countryCode string) (*types.Cart, error) {
	cartID = gid.Decode(cartID)
	if !c.markets.Has(countryCode) {
		return nil, nil
	}

	if cartID == "" {
		var err error
		if cartID, err = c.ids.Random(gid.CartPrefix); err != nil {
			return nil, err
		}
	}

	currency := c.markets.Currency(countryCode)
	ts := c.timestamp()
	subtotal := types.Money{Amount: "0.0", CurrencyCode: currency}
	total := subtotal

	cart := &types.Cart{
		ID:          gid.Encode(cartID),
		CreatedAt:   ts,
		UpdatedAt:   ts,
		CheckoutURL: "https://" + c.shopBaseURL + "/cart/c/" + gid.Strip(cartID, gid.CartPrefix),
		BuyerIdentity: types.BuyerIdentity{
			CountryCode: countryCode,
		},
		Attributes:    []types.Attribute{},
		DiscountCodes: []types.DiscountCode{},
		Lines:         types.CartLines{Edges: []types.CartLineEdge{}},
		EstimatedCost: types.CartCost{
			TotalAmount:    &total,
			SubtotalAmount: &subtotal,
		},
	}

	c.store.Set(gid.CartPrefix, cartID, cart)

	return cart, nil
}

// Get returns the cart under cartID re-priced for countryCode, or nil when
// absent. The recompute on read is intentional: price depends on the
// market at time of view.
func (c *Carts) Get(cartID, countryCode string) (*types.Cart, error) {
	cartID = gid.Decode(cartID)
	if !c.Exists(cartID) {
		return nil, nil
	}
	return c.recompute(cartID, countryCode)
}

// recompute re-derives the buyer identity, line prices and totals of the
// stored cart for countryCode, persists and returns it.
func (c *Carts) recompute(cartID, countryCode string) (*types.Cart, error) {
	cart := c.cart(cartID)
	if cart == nil {
		return nil, nil
	}

	currency := c.markets.Currency(countryCode)
	net := decimal.Zero

	cart.BuyerIdentity.CountryCode = countryCode

	for _, edge := range cart.Lines.Edges {
		node := edge.Node
		if node == nil {
			continue
		}

		variant, err := c.products.ByVariant(gid.Decode(node.Merchandise.ID), true)
		if err != nil {
			return nil, err
		}

		price := c.markets.Price(variant.Price, countryCode)
		lineTotal := price.Mul(decimal.NewFromInt(int64(node.Quantity)))
		net = net.Add(lineTotal)

		node.EstimatedCost.SubtotalAmount = types.Money{Amount: formatAmount(lineTotal)}
		node.EstimatedCost.TotalAmount = types.Money{Amount: formatAmount(lineTotal)}
		node.Merchandise.PriceV2 = formatPrice(price, currency)
	}

	tax := net.Mul(c.markets.VAT(countryCode))
	total := formatPrice(net.Add(tax), currency)
	subtotal := formatPrice(net, currency)
	totalTax := formatPrice(tax, currency)
	cart.EstimatedCost.TotalAmount = &total
	cart.EstimatedCost.SubtotalAmount = &subtotal
	cart.EstimatedCost.TotalTaxAmount = &totalTax

	c.store.Set(gid.CartPrefix, cartID, cart)

	return cart, nil
}

// AddLines appends line items to the cart. A variant already present in
// the cart gets its quantity incremented and attributes merged instead of
// a duplicate line. The batch is all-or-nothing: any entry with a missing
// variant id or quantity below 1 rejects the whole call before anything
// is applied.
func (c *Carts) AddLines(cartID, countryCode string, lines []types.CartLineInput) (*types.Cart, error) {
	cartID = gid.Decode(cartID)
	cart := c.cart(cartID)
	if cart == nil || len(lines) == 0 {
		return nil, nil
	}

	for _, line := range lines {
		if line.MerchandiseID == "" || line.Quantity < 1 {
			return nil, nil
		}
	}

	currency := c.markets.Currency(countryCode)

	for _, line := range lines {
		if err := c.addOrUpdateLine(cart, currency, line); err != nil {
			return nil, err
		}
	}

	c.store.Set(gid.CartPrefix, cartID, cart)

	return c.recompute(cartID, countryCode)
}

func (c *Carts) addOrUpdateLine(cart *types.Cart, currency string, line types.CartLineInput) error {
	for _, edge := range cart.Lines.Edges {
		node := edge.Node
		if node == nil {
			continue
		}
		if gid.Decode(node.Merchandise.ID) == line.MerchandiseID {
			node.Quantity += line.Quantity
			node.Attributes = append(node.Attributes, line.Attributes...)
			return nil
		}
	}

	variant, err := c.products.ByVariant(line.MerchandiseID, true)
	if err != nil {
		return err
	}
	lineID, err := c.ids.Random(gid.CartLinePrefix)
	if err != nil {
		return err
	}

	attributes := line.Attributes
	if attributes == nil {
		attributes = []types.Attribute{}
	}

	// Prices are zeroed here; the recompute that follows every mutation
	// fills them in.
	cart.Lines.Edges = append(cart.Lines.Edges, types.CartLineEdge{Node: &types.CartLine{
		ID:                  gid.Encode(lineID),
		Attributes:          attributes,
		Quantity:            line.Quantity,
		DiscountAllocations: []any{},
		EstimatedCost: types.LineCost{
			SubtotalAmount: types.Money{Amount: "0.0"},
			TotalAmount:    types.Money{Amount: "0.0"},
		},
		Merchandise: types.Merchandise{
			ID:      gid.Encode(line.MerchandiseID),
			Title:   "Default Title",
			PriceV2: types.Money{Amount: "0.0", CurrencyCode: currency},
			Product: types.ProductSnapshot{
				ID:               gid.Encode(variant.ProductID),
				AvailableForSale: true,
				Variants: types.VariantRefs{Edges: []types.VariantRefEdge{
					{Node: types.VariantRef{ID: gid.Encode(line.MerchandiseID)}},
				}},
				Title:  variant.Title,
				Images: types.Images{Edges: []types.ImageEdge{{Node: variant.Images[0]}}},
			},
		},
	}})

	return nil
}

// UpdateLines adjusts existing line items by line id, incrementing the
// quantity and merging attributes. A line id not present in the cart is
// silently skipped; an entry with a missing id or quantity below 1 rejects
// the whole batch before anything is applied.
func (c *Carts) UpdateLines(cartID, countryCode string, lines []types.CartLineUpdateInput) (*types.Cart, error) {
	cartID = gid.Decode(cartID)
	cart := c.cart(cartID)
	if cart == nil || len(lines) == 0 {
		return nil, nil
	}

	for _, line := range lines {
		if line.ID == "" || line.Quantity < 1 {
			return nil, nil
		}
	}

	for _, line := range lines {
		lineID := gid.Decode(line.ID)
		for _, edge := range cart.Lines.Edges {
			node := edge.Node
			if node == nil {
				continue
			}
			if gid.Decode(node.ID) == lineID {
				node.Quantity += line.Quantity
				node.Attributes = append(node.Attributes, line.Attributes...)
				break
			}
		}
	}

	c.store.Set(gid.CartPrefix, cartID, cart)

	return c.recompute(cartID, countryCode)
}

// RemoveLines deletes line items by id, keeping the remaining lines
// contiguous. An empty id in the list rejects the whole batch; an id not
// present in the cart is a no-op for that entry.
func (c *Carts) RemoveLines(cartID, countryCode string, lineIDs []string) (*types.Cart, error) {
	cartID = gid.Decode(cartID)
	cart := c.cart(cartID)
	if cart == nil || len(lineIDs) == 0 {
		return nil, nil
	}

	for _, lineID := range lineIDs {
		if lineID == "" {
			return nil, nil
		}
	}

	for _, lineID := range lineIDs {
		decoded := gid.Decode(lineID)
		for i, edge := range cart.Lines.Edges {
			node := edge.Node
			if node == nil {
				continue
			}
			if gid.Decode(node.ID) == decoded {
				cart.Lines.Edges = append(cart.Lines.Edges[:i], cart.Lines.Edges[i+1:]...)
				break
			}
		}
	}

	c.store.Set(gid.CartPrefix, cartID, cart)

	return c.recompute(cartID, countryCode)
}

// Empty removes every line item from the cart. It reports false when the
// cart is absent or already had no lines to remove.
func (c *Carts) Empty(cartID, countryCode string) (bool, error) {
	cartID = gid.Decode(cartID)
	cart := c.cart(cartID)
	if cart == nil || len(cart.Lines.Edges) == 0 {
		return false, nil
	}

	lineIDs := make([]string, 0, len(cart.Lines.Edges))
	for _, edge := range cart.Lines.Edges {
		if edge.Node != nil {
			lineIDs = append(lineIDs, edge.Node.ID)
		}
	}

	updated, err := c.RemoveLines(cartID, countryCode, lineIDs)
	if err != nil {
		return false, err
	}
	return updated != nil, nil
}

// UpdateNote replaces the cart note. An empty note is valid.
func (c *Carts) UpdateNote(cartID, countryCode, note string) (*types.Cart, error) {
	cartID = gid.Decode(cartID)
	cart := c.cart(cartID)
	if cart == nil {
		return nil, nil
	}

	cart.Note = note
	c.store.Set(gid.CartPrefix, cartID, cart)

	return c.recompute(cartID, countryCode)
}

// UpdateAttributes sets one cart attribute. Keys match case-insensitively:
// setting "Test" replaces an existing "test" entry in place, otherwise the
// attribute is appended. Missing key or value rejects the call.
func (c *Carts) UpdateAttributes(cartID, countryCode string, attribute types.Attribute) (*types.Cart, error) {
	cartID = gid.Decode(cartID)
	cart := c.cart(cartID)
	if cart == nil || attribute.Key == "" || attribute.Value == "" {
		return nil, nil
	}

	replaced := false
	for i, existing := range cart.Attributes {
		if strings.EqualFold(existing.Key, attribute.Key) {
			cart.Attributes[i] = attribute
			replaced = true
			break
		}
	}
	if !replaced {
		cart.Attributes = append(cart.Attributes, attribute)
	}

	c.store.Set(gid.CartPrefix, cartID, cart)

	return c.recompute(cartID, countryCode)
}

// UpdateDiscountCodes stores the first submitted code, marking it
// applicable via the whitelist. Shopify retains a single code at a time;
// the rest of the batch is dropped.
func (c *Carts) UpdateDiscountCodes(cartID, countryCode string, codes []string) (*types.Cart, error) {
	cartID = gid.Decode(cartID)
	cart := c.cart(cartID)
	if cart == nil || len(codes) == 0 {
		return nil, nil
	}

	cart.DiscountCodes = []types.DiscountCode{
		{Code: codes[0], Applicable: c.discounts.Has(codes[0])},
	}

	c.store.Set(gid.CartPrefix, cartID, cart)

	return c.recompute(cartID, countryCode)
}
