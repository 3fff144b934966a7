package types

// CartLineInput is one entry of a cart line add batch.
type CartLineInput struct {
	MerchandiseID string      `json:"merchandiseId"`
	Quantity      int         `json:"quantity"`
	Attributes    []Attribute `json:"attributes,omitempty"`
	SellingPlanID string      `json:"sellingPlanId,omitempty"`
}

// CartLineUpdateInput is one entry of a cart line update batch, addressed
// by line id.
type CartLineUpdateInput struct {
	ID         string      `json:"id"`
	Quantity   int         `json:"quantity"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// SellingPlanRef references an existing selling plan by id.
type SellingPlanRef struct {
	ID string `json:"id"`
}

// SellingPlanInput carries the fields of a selling plan to create or
// update inside a group mutation.
type SellingPlanInput struct {
	ID              string           `json:"id,omitempty"`
	Name            string           `json:"name,omitempty"`
	Category        string           `json:"category,omitempty"`
	Options         []string         `json:"options,omitempty"`
	BillingPolicy   *BillingPolicy   `json:"billingPolicy,omitempty"`
	DeliveryPolicy  *DeliveryPolicy  `json:"deliveryPolicy,omitempty"`
	InventoryPolicy *InventoryPolicy `json:"inventoryPolicy,omitempty"`
	PricingPolicies []any            `json:"pricingPolicies,omitempty"`
	Description     string           `json:"description,omitempty"`
	Position        *int             `json:"position,omitempty"`
}

// SellingPlanGroupInput carries the fields of a selling plan group create
// mutation. Name and MerchantCode are mandatory.
type SellingPlanGroupInput struct {
	AppID                *string           `json:"appId,omitempty"`
	Name                 string            `json:"name" validate:"required"`
	MerchantCode         string            `json:"merchantCode" validate:"required"`
	Description          *string           `json:"description,omitempty"`
	Options              []string          `json:"options,omitempty"`
	Position             *int              `json:"position,omitempty"`
	Summary              *string           `json:"summary,omitempty"`
	SellingPlansToCreate *SellingPlanInput `json:"sellingPlansToCreate,omitempty"`
	SellingPlansToDelete *SellingPlanRef   `json:"sellingPlansToDelete,omitempty"`
	SellingPlansToUpdate *SellingPlanInput `json:"sellingPlansToUpdate,omitempty"`
}
