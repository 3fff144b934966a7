package mockapi

import (
	"time"

	"github.com/storefrontkit/checkout/internal/id"
	"github.com/storefrontkit/checkout/internal/storage"
	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/types"
)

// SellingPlans stores the selling plans linked to groups via the
// connection store. Plans carry no validation of their own; the group
// engine owns the lifecycle.
type SellingPlans struct {
	store storage.Store
	ids   *id.Generator
	now   func() time.Time
}

// NewSellingPlans creates a selling plan store.
func NewSellingPlans(store storage.Store, ids *id.Generator, now func() time.Time) *SellingPlans {
	if now == nil {
		now = time.Now
	}
	return &SellingPlans{store: store, ids: ids, now: now}
}

func (s *SellingPlans) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

// Create persists a plan built from input, under forceID when given.
func (s *SellingPlans) Create(input types.SellingPlanInput, forceID string) (*types.SellingPlan, error) {
	planID := forceID
	if planID == "" {
		var err error
		if planID, err = s.ids.Random(gid.SellingPlanPrefix); err != nil {
			return nil, err
		}
	}

	ts := s.timestamp()
	plan := &types.SellingPlan{
		ID:              gid.Encode(planID),
		CreatedAt:       ts,
		UpdatedAt:       ts,
		BillingPolicy:   input.BillingPolicy,
		Category:        input.Category,
		DeliveryPolicy:  input.DeliveryPolicy,
		Description:     input.Description,
		InventoryPolicy: input.InventoryPolicy,
		Name:            input.Name,
		Options:         input.Options,
		Position:        input.Position,
		PricingPolicies: input.PricingPolicies,
	}

	s.store.Set(gid.SellingPlanPrefix, planID, plan)

	return plan, nil
}

// Update overwrites the stored plan's fields with the non-empty fields of
// input. Returns nil when the plan does not exist.
func (s *SellingPlans) Update(planID string, input types.SellingPlanInput) *types.SellingPlan {
	plan := s.Get(planID)
	if plan == nil {
		return nil
	}

	if input.BillingPolicy != nil {
		plan.BillingPolicy = input.BillingPolicy
	}
	if input.Category != "" {
		plan.Category = input.Category
	}
	if input.DeliveryPolicy != nil {
		plan.DeliveryPolicy = input.DeliveryPolicy
	}
	if input.Description != "" {
		plan.Description = input.Description
	}
	if input.InventoryPolicy != nil {
		plan.InventoryPolicy = input.InventoryPolicy
	}
	if input.Name != "" {
		plan.Name = input.Name
	}
	if len(input.Options) > 0 {
		plan.Options = input.Options
	}
	if input.Position != nil {
		plan.Position = input.Position
	}
	if len(input.PricingPolicies) > 0 {
		plan.PricingPolicies = input.PricingPolicies
	}
	plan.UpdatedAt = s.timestamp()

	s.store.Set(gid.SellingPlanPrefix, planID, plan)

	return plan
}

// Delete removes the plan, reporting whether it existed.
func (s *SellingPlans) Delete(planID string) bool {
	return s.store.Delete(gid.SellingPlanPrefix, planID)
}

// Get returns the plan under planID, or nil.
func (s *SellingPlans) Get(planID string) *types.SellingPlan {
	plan, _ := s.store.Get(gid.SellingPlanPrefix, planID).(*types.SellingPlan)
	return plan
}
