package mockapi

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/storefrontkit/checkout/internal/id"
	"github.com/storefrontkit/checkout/internal/storage"
	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/types"
)

// Relation names under which group connections are stored.
const (
	relationSellingPlans = "sellingPlans"
	relationProducts     = "products"
	relationVariants     = "variants"
)

// SellingPlanGroups is the selling plan group domain engine. Groups are
// stored bare; products, variants, plans and the two counts are joined
// from the connection store on every read.
type SellingPlanGroups struct {
	store       storage.Store
	ids         *id.Generator
	connections *Connections
	plans       *SellingPlans
	products    *Products
	validate    *validator.Validate
	now         func() time.Time
}

// NewSellingPlanGroups creates a group engine over the given collaborators.
func NewSellingPlanGroups(store storage.Store, ids *id.Generator, connections *Connections, plans *SellingPlans, products *Products, now func() time.Time) *SellingPlanGroups {
	if now == nil {
		now = time.Now
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &SellingPlanGroups{
		store:       store,
		ids:         ids,
		connections: connections,
		plans:       plans,
		products:    products,
		validate:    validate,
		now:         now,
	}
}

func (s *SellingPlanGroups) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

// resolve decodes groupID and verifies the group exists, failing with the
// not-found ValidationError otherwise.
func (s *SellingPlanGroups) resolve(groupID string) (string, error) {
	decoded := gid.Decode(groupID)
	if decoded == "" || !s.store.Has(gid.SellingPlanGroupPrefix, decoded) {
		return "", newNotFoundError()
	}
	return decoded, nil
}

// joined returns a copy of the stored group with its live connection data:
// selling plans, products, product variants and the derived counts.
func (s *SellingPlanGroups) joined(groupID string) (*types.SellingPlanGroup, error) {
	stored, _ := s.store.Get(gid.SellingPlanGroupPrefix, groupID).(*types.SellingPlanGroup)
	if stored == nil {
		return nil, newNotFoundError()
	}
	group := *stored

	group.SellingPlans = []*types.SellingPlan{}
	for _, planID := range s.connections.List(groupID, relationSellingPlans) {
		group.SellingPlans = append(group.SellingPlans, s.plans.Get(planID))
	}

	group.Products = []*types.Product{}
	for _, productID := range s.connections.List(groupID, relationProducts) {
		product, err := s.products.Product(productID, true)
		if err != nil {
			return nil, err
		}
		group.Products = append(group.Products, product)
	}
	group.ProductCount = len(group.Products)

	group.ProductVariants = []*types.Variant{}
	for _, variantID := range s.connections.List(groupID, relationVariants) {
		variant, err := s.products.Variant(variantID, true)
		if err != nil {
			return nil, err
		}
		group.ProductVariants = append(group.ProductVariants, variant)
	}
	group.ProductVariantCount = len(group.ProductVariants)

	return &group, nil
}

// Create validates and persists a group, then applies the nested selling
// plan create/delete/update instructions and their connections. Nothing is
// persisted when validation fails.
func (s *SellingPlanGroups) Create(input types.SellingPlanGroupInput) (*types.SellingPlanGroup, error) {
	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, verr := range verrs {
				fields = append(fields, verr.Field())
			}
			return nil, newMandatoryError(fields...)
		}
		return nil, err
	}

	groupID, err := s.ids.Random(gid.SellingPlanGroupPrefix)
	if err != nil {
		return nil, err
	}

	options := input.Options
	if options == nil {
		options = []string{}
	}

	ts := s.timestamp()
	group := &types.SellingPlanGroup{
		ID:           gid.Encode(groupID),
		CreatedAt:    ts,
		UpdatedAt:    ts,
		AppID:        input.AppID,
		Description:  input.Description,
		MerchantCode: input.MerchantCode,
		Name:         input.Name,
		Options:      options,
		Position:     input.Position,
		Summary:      input.Summary,
	}

	s.store.Set(gid.SellingPlanGroupPrefix, groupID, group)

	if input.SellingPlansToCreate != nil {
		plan, err := s.plans.Create(*input.SellingPlansToCreate, "")
		if err != nil {
			return nil, err
		}
		s.connections.Connect(groupID, gid.Decode(plan.ID), relationSellingPlans)
	}

	if input.SellingPlansToDelete != nil {
		planID := gid.Decode(input.SellingPlansToDelete.ID)
		s.plans.Delete(planID)
		s.connections.Disconnect(groupID, planID, relationSellingPlans)
	}

	if input.SellingPlansToUpdate != nil {
		planID := gid.Decode(input.SellingPlansToUpdate.ID)
		s.plans.Update(planID, *input.SellingPlansToUpdate)
		s.connections.Connect(groupID, planID, relationSellingPlans)
	}

	return s.joined(groupID)
}

// Get returns the group under groupID joined with its connections, failing
// with the not-found ValidationError when absent.
func (s *SellingPlanGroups) Get(groupID string) (*types.SellingPlanGroup, error) {
	resolved, err := s.resolve(groupID)
	if err != nil {
		return nil, err
	}
	return s.joined(resolved)
}

// Delete removes the group. Its connections are left behind; consumers
// observe dangling associations, matching the platform being simulated.
func (s *SellingPlanGroups) Delete(groupID string) (bool, error) {
	resolved, err := s.resolve(groupID)
	if err != nil {
		return false, err
	}
	return s.store.Delete(gid.SellingPlanGroupPrefix, resolved), nil
}

// AddProducts connects productIDs to the group and returns it joined.
func (s *SellingPlanGroups) AddProducts(groupID string, productIDs []string) (*types.SellingPlanGroup, error) {
	resolved, err := s.resolve(groupID)
	if err != nil {
		return nil, err
	}
	for _, productID := range productIDs {
		s.connections.Connect(resolved, productID, relationProducts)
	}
	return s.joined(resolved)
}

// AddProductVariants connects productVariantIDs to the group and returns
// it joined.
func (s *SellingPlanGroups) AddProductVariants(groupID string, productVariantIDs []string) (*types.SellingPlanGroup, error) {
	resolved, err := s.resolve(groupID)
	if err != nil {
		return nil, err
	}
	for _, variantID := range productVariantIDs {
		s.connections.Connect(resolved, variantID, relationVariants)
	}
	return s.joined(resolved)
}

// List returns all groups in insertion order, each joined with its live
// connection data. A positive limit slices the result window.
func (s *SellingPlanGroups) List(offset, limit int) ([]*types.SellingPlanGroup, error) {
	stored := s.store.List(gid.SellingPlanGroupPrefix, offset, limit)
	groups := make([]*types.SellingPlanGroup, 0, len(stored))
	for _, entry := range stored {
		group, ok := entry.(*types.SellingPlanGroup)
		if !ok {
			continue
		}
		joined, err := s.joined(gid.Decode(group.ID))
		if err != nil {
			return nil, err
		}
		groups = append(groups, joined)
	}
	return groups, nil
}
