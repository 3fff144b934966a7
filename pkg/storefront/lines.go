package storefront

import (
	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/types"
)

// LineItemSpec describes one line item to add to a cart. VariantID may be a
// bare numeric id, a gid:// id or its opaque form.
type LineItemSpec struct {
	VariantID  string
	Quantity   int
	Attributes []types.Attribute
}

// LineUpdateSpec describes one line item adjustment. The quantity is added
// to the line's current quantity and the attributes are appended.
type LineUpdateSpec struct {
	LineItemID string
	Quantity   int
	Attributes []types.Attribute
}

func lineInputs(specs []LineItemSpec, sellingPlanID string) []types.CartLineInput {
	lines := make([]types.CartLineInput, 0, len(specs))
	for _, spec := range specs {
		attributes := spec.Attributes
		if attributes == nil {
			attributes = []types.Attribute{}
		}
		lines = append(lines, types.CartLineInput{
			MerchandiseID: gid.NormalizeVariant(spec.VariantID),
			Quantity:      spec.Quantity,
			Attributes:    attributes,
			SellingPlanID: sellingPlanID,
		})
	}
	return lines
}

func lineUpdateInputs(specs []LineUpdateSpec) []types.CartLineUpdateInput {
	lines := make([]types.CartLineUpdateInput, 0, len(specs))
	for _, spec := range specs {
		attributes := spec.Attributes
		if attributes == nil {
			attributes = []types.Attribute{}
		}
		lines = append(lines, types.CartLineUpdateInput{
			ID:         spec.LineItemID,
			Quantity:   spec.Quantity,
			Attributes: attributes,
		})
	}
	return lines
}
