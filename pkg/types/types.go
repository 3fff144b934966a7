// Package types defines the wire-shaped domain types shared by the
// storefront client and the mock backend. Field names and nesting mirror
// the Storefront GraphQL API responses.
package types

import "github.com/shopspring/decimal"

// DefaultMarket is the country code used when a caller does not specify one.
const DefaultMarket = "IE"

// SellingPlanCategoryPreOrder is the only selling plan category this
// library creates.
const SellingPlanCategoryPreOrder = "PRE_ORDER"

// Money is a formatted amount in a given currency.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

// Attribute is a custom key/value pair on a cart or a line item.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DiscountCode is a discount code submitted to a cart, with the backend's
// verdict on whether it applies.
type DiscountCode struct {
	Code       string `json:"code"`
	Applicable bool   `json:"applicable"`
}

// BuyerIdentity identifies the buyer's market.
type BuyerIdentity struct {
	CountryCode string `json:"countryCode"`
	Email       string `json:"email,omitempty"`
}

// CartCost is the derived cost block of a cart. Tax and duty are nullable:
// a freshly created cart has no tax amount until its first recompute.
type CartCost struct {
	TotalAmount     *Money `json:"totalAmount"`
	SubtotalAmount  *Money `json:"subtotalAmount"`
	TotalTaxAmount  *Money `json:"totalTaxAmount"`
	TotalDutyAmount *Money `json:"totalDutyAmount"`
}

// LineCost is the derived cost block of a single line item.
type LineCost struct {
	SubtotalAmount Money `json:"subtotalAmount"`
	TotalAmount    Money `json:"totalAmount"`
}

// Image is a product image.
type Image struct {
	ID      string  `json:"id"`
	Src     string  `json:"src"`
	AltText *string `json:"altText"`
}

// VariantRef is a bare variant id node inside a variants connection.
type VariantRef struct {
	ID string `json:"id"`
}

// VariantRefEdge wraps a VariantRef in connection edge shape.
type VariantRefEdge struct {
	Node VariantRef `json:"node"`
}

// VariantRefs is the variants connection of a product snapshot.
type VariantRefs struct {
	Edges []VariantRefEdge `json:"edges"`
}

// ImageEdge wraps an Image in connection edge shape.
type ImageEdge struct {
	Node Image `json:"node"`
}

// Images is the images connection of a product snapshot.
type Images struct {
	Edges []ImageEdge `json:"edges"`
}

// ProductSnapshot is the product block embedded in a cart line's
// merchandise.
type ProductSnapshot struct {
	ID               string      `json:"id"`
	AvailableForSale bool        `json:"availableForSale"`
	Variants         VariantRefs `json:"variants"`
	Title            string      `json:"title"`
	Images           Images      `json:"images"`
}

// Merchandise is the variant snapshot carried by a cart line.
type Merchandise struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	PriceV2 Money           `json:"priceV2"`
	Product ProductSnapshot `json:"product"`
}

// CartLine is one cart entry referencing a product variant.
type CartLine struct {
	ID                  string      `json:"id"`
	Attributes          []Attribute `json:"attributes"`
	Quantity            int         `json:"quantity"`
	DiscountAllocations []any       `json:"discountAllocations"`
	EstimatedCost       LineCost    `json:"estimatedCost"`
	Merchandise         Merchandise `json:"merchandise"`
}

// CartLineEdge wraps a CartLine in connection edge shape.
type CartLineEdge struct {
	Node *CartLine `json:"node"`
}

// CartLines is the lines connection of a cart.
type CartLines struct {
	Edges []CartLineEdge `json:"edges"`
}

// Cart is a shopping cart. Its cost block and every line's cost block are
// a function of the current buyer country code and are recomputed after
// every structural mutation and on every fetch.
type Cart struct {
	ID            string         `json:"id"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
	CheckoutURL   string         `json:"checkoutUrl"`
	BuyerIdentity BuyerIdentity  `json:"buyerIdentity"`
	Attributes    []Attribute    `json:"attributes"`
	DiscountCodes []DiscountCode `json:"discountCodes"`
	Note          string         `json:"note"`
	Lines         CartLines      `json:"lines"`
	EstimatedCost CartCost       `json:"estimatedCost"`
}

// Variant is a fabricated product variant in the fake catalog. Price is the
// base (default market) price before any market adjustment.
type Variant struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Images    []Image         `json:"images"`
}

// Product is a fabricated product in the fake catalog.
type Product struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Variants []*Variant `json:"variants"`
}

// CheckoutChargeValue is the percentage value of a checkout charge.
type CheckoutChargeValue struct {
	Percentage float64 `json:"percentage"`
}

// CheckoutCharge describes how much is charged at checkout.
type CheckoutCharge struct {
	Type  string              `json:"type"`
	Value CheckoutChargeValue `json:"value"`
}

// FixedBillingPolicy is a fixed billing policy with a deposit charge and a
// remaining balance trigger.
type FixedBillingPolicy struct {
	CheckoutCharge                  CheckoutCharge `json:"checkoutCharge"`
	RemainingBalanceChargeExactTime string         `json:"remainingBalanceChargeExactTime,omitempty"`
	RemainingBalanceChargeTrigger   string         `json:"remainingBalanceChargeTrigger,omitempty"`
}

// BillingPolicy is a selling plan billing policy.
type BillingPolicy struct {
	Fixed *FixedBillingPolicy `json:"fixed,omitempty"`
}

// FixedDeliveryPolicy is a fixed delivery policy.
type FixedDeliveryPolicy struct {
	FulfillmentTrigger string `json:"fulfillmentTrigger,omitempty"`
}

// DeliveryPolicy is a selling plan delivery policy.
type DeliveryPolicy struct {
	Fixed *FixedDeliveryPolicy `json:"fixed,omitempty"`
}

// InventoryPolicy is a selling plan inventory policy.
type InventoryPolicy struct {
	Reserve string `json:"reserve,omitempty"`
}

// SellingPlan is one billing/delivery/inventory policy bundle inside a
// selling plan group.
type SellingPlan struct {
	ID              string           `json:"id"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
	BillingPolicy   *BillingPolicy   `json:"billingPolicy,omitempty"`
	Category        string           `json:"category,omitempty"`
	DeliveryPolicy  *DeliveryPolicy  `json:"deliveryPolicy,omitempty"`
	Description     string           `json:"description,omitempty"`
	InventoryPolicy *InventoryPolicy `json:"inventoryPolicy,omitempty"`
	Name            string           `json:"name,omitempty"`
	Options         []string         `json:"options,omitempty"`
	Position        *int             `json:"position,omitempty"`
	PricingPolicies []any            `json:"pricingPolicies,omitempty"`
}

// SellingPlanGroup is a named collection of selling plans attachable to
// products or variants. Products, ProductVariants, SellingPlans and the two
// counts are derived from the connection store at read time; they are never
// stored denormalized.
type SellingPlanGroup struct {
	ID                       string         `json:"id"`
	CreatedAt                string         `json:"createdAt"`
	UpdatedAt                string         `json:"updatedAt"`
	AppID                    *string        `json:"appId"`
	AppliesToProduct         bool           `json:"appliesToProduct"`
	AppliesToProductVariant  bool           `json:"appliesToProductVariant"`
	AppliesToProductVariants bool           `json:"appliesToProductVariants"`
	Description              *string        `json:"description"`
	MerchantCode             string         `json:"merchantCode"`
	Name                     string         `json:"name"`
	Options                  []string       `json:"options"`
	Position                 *int           `json:"position"`
	ProductCount             int            `json:"productCount"`
	ProductVariantCount      int            `json:"productVariantCount"`
	Summary                  *string        `json:"summary"`
	Products                 []*Product     `json:"products,omitempty"`
	ProductVariants          []*Variant     `json:"productVariants,omitempty"`
	SellingPlans             []*SellingPlan `json:"sellingPlans,omitempty"`
}

// UserError is a business-level error entry in a mutation payload. Field
// follows the API's path form ([]string).
type UserError struct {
	Code    int      `json:"code,omitempty"`
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}
