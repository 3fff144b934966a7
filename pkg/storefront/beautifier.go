package storefront

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/types"
)

const beautifierTimeLayout = "Jan 2, 2006 at 3:04pm"

// Beautifier renders a cart human-friendly: ids decoded, timestamps and
// prices formatted, line items flattened. A nil cart renders as empty
// values throughout.
type Beautifier struct {
	cart *types.Cart
}

// LineItem is the flattened rendering of one cart line.
type LineItem struct {
	ID        string
	Title     string
	ProductID string
	VariantID string
	Quantity  int
	Price     string
	Image     string
}

// EstimatedCosts is the formatted cost summary of a cart.
type EstimatedCosts struct {
	Net   string
	Tax   string
	Total string
}

// NewBeautifier wraps cart for rendering.
func NewBeautifier(cart *types.Cart) *Beautifier {
	return &Beautifier{cart: cart}
}

// CartID returns the raw cart id.
func (b *Beautifier) CartID() string {
	if b.cart == nil {
		return ""
	}
	return gid.Decode(b.cart.ID)
}

// CartToken returns the cart id without its gid prefix.
func (b *Beautifier) CartToken() string {
	return gid.Strip(b.CartID(), gid.CartPrefix)
}

// CountryCode returns the cart's market.
func (b *Beautifier) CountryCode() string {
	if b.cart == nil {
		return ""
	}
	return b.cart.BuyerIdentity.CountryCode
}

func formatTimestamp(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return ""
	}
	return t.Format(beautifierTimeLayout)
}

// CreatedAt returns the formatted creation time, e.g. "May 1, 2023 at 12:30pm".
func (b *Beautifier) CreatedAt() string {
	if b.cart == nil {
		return ""
	}
	return formatTimestamp(b.cart.CreatedAt)
}

// UpdatedAt returns the formatted last update time.
func (b *Beautifier) UpdatedAt() string {
	if b.cart == nil {
		return ""
	}
	return formatTimestamp(b.cart.UpdatedAt)
}

// CheckoutURL returns the cart's web checkout URL.
func (b *Beautifier) CheckoutURL() string {
	if b.cart == nil {
		return ""
	}
	return b.cart.CheckoutURL
}

// Note returns the cart note.
func (b *Beautifier) Note() string {
	if b.cart == nil {
		return ""
	}
	return b.cart.Note
}

// formatMoney renders "<currency> <amount>" with two decimals, or "N/A"
// when the price is absent.
func formatMoney(price *types.Money) string {
	if price == nil || price.Amount == "" {
		return "N/A"
	}
	amount, err := decimal.NewFromString(price.Amount)
	if err != nil {
		return "N/A"
	}
	return price.CurrencyCode + " " + amount.StringFixed(2)
}

// Costs returns the formatted cost summary.
func (b *Beautifier) Costs() EstimatedCosts {
	if b.cart == nil {
		return EstimatedCosts{Net: "N/A", Tax: "N/A", Total: "N/A"}
	}
	return EstimatedCosts{
		Net:   formatMoney(b.cart.EstimatedCost.SubtotalAmount),
		Tax:   formatMoney(b.cart.EstimatedCost.TotalTaxAmount),
		Total: formatMoney(b.cart.EstimatedCost.TotalAmount),
	}
}

func (b *Beautifier) formatLineItem(node *types.CartLine, moreDetails bool) LineItem {
	price := node.Merchandise.PriceV2
	item := LineItem{
		ID:       gid.Decode(node.ID),
		Title:    node.Merchandise.Product.Title,
		Quantity: node.Quantity,
		Price:    formatMoney(&price),
	}

	if moreDetails {
		item.ProductID = gid.Decode(node.Merchandise.Product.ID)
		if variants := node.Merchandise.Product.Variants.Edges; len(variants) > 0 {
			item.VariantID = gid.Decode(variants[0].Node.ID)
		}
		if images := node.Merchandise.Product.Images.Edges; len(images) > 0 {
			item.Image = images[0].Node.Src
		}
	}

	return item
}

// LineItems returns the flattened line items. moreDetails adds product,
// variant and image information.
func (b *Beautifier) LineItems(moreDetails bool) []LineItem {
	if b.cart == nil {
		return nil
	}
	items := make([]LineItem, 0, len(b.cart.Lines.Edges))
	for _, edge := range b.cart.Lines.Edges {
		if edge.Node != nil {
			items = append(items, b.formatLineItem(edge.Node, moreDetails))
		}
	}
	return items
}

// LineItem returns the flattened line item with the given raw id, or nil.
func (b *Beautifier) LineItem(lineItemID string, moreDetails bool) *LineItem {
	if b.cart == nil {
		return nil
	}
	for _, edge := range b.cart.Lines.Edges {
		if edge.Node != nil && gid.Decode(edge.Node.ID) == lineItemID {
			item := b.formatLineItem(edge.Node, moreDetails)
			return &item
		}
	}
	return nil
}

// Attributes returns the cart attributes.
func (b *Beautifier) Attributes() []types.Attribute {
	if b.cart == nil {
		return nil
	}
	return b.cart.Attributes
}

// DiscountCodes returns the cart's discount codes.
func (b *Beautifier) DiscountCodes() []types.DiscountCode {
	if b.cart == nil {
		return nil
	}
	return b.cart.DiscountCodes
}

// JSON returns the cart as indented JSON.
func (b *Beautifier) JSON() string {
	data, err := json.MarshalIndent(b.cart, "", "    ")
	if err != nil {
		return ""
	}
	return string(data)
}
