package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/storefrontkit/checkout/pkg/gid"
	"github.com/storefrontkit/checkout/pkg/logging"
	"github.com/storefrontkit/checkout/pkg/types"
)

// SellingPlanGroupOptions carries the inputs of a pre-order selling plan
// group create: the group coordinates plus the nested PRE_ORDER selling
// plan's billing, delivery and inventory policies.
type SellingPlanGroupOptions struct {
	Name         string
	Description  string
	MerchantCode string
	// Deposit is the checkout charge percentage, e.g. 50 for a half
	// deposit.
	Deposit float64
	// RemainingBalanceChargeTime is the exact time the remaining balance is
	// charged, ISO 8601.
	RemainingBalanceChargeTime string
	// RemainingBalanceChargeTrigger e.g. "EXACT_TIME".
	RemainingBalanceChargeTrigger string
	// FulfillmentTrigger e.g. "UNKNOWN" or "EXACT_TIME".
	FulfillmentTrigger string
	// InventoryReserve e.g. "ON_SALE".
	InventoryReserve string
	Position         *int
	// ProductIDs and ProductVariantIDs are attached to the group right
	// after creation. Bare numeric ids are accepted.
	ProductIDs        []string
	ProductVariantIDs []string
}

// SellingPlanGroupService is the admin selling plan group API: create
// pre-order groups, attach products and variants, fetch, list and remove
// groups.
type SellingPlanGroupService struct {
	client *Client
	logger *slog.Logger

	errorMessages []string
}

// SellingPlanGroupServiceOption customizes the service.
type SellingPlanGroupServiceOption func(*SellingPlanGroupService)

// WithSellingPlanGroupServiceLogger sets the service logger.
func WithSellingPlanGroupServiceLogger(logger *slog.Logger) SellingPlanGroupServiceOption {
	return func(s *SellingPlanGroupService) { s.logger = logger }
}

// NewSellingPlanGroupService creates a selling plan group service for
// shopCtx. The admin API path and token are used.
func NewSellingPlanGroupService(shopCtx *Context, opts []ClientOption, svcOpts ...SellingPlanGroupServiceOption) *SellingPlanGroupService {
	s := &SellingPlanGroupService{
		client: NewClient(shopCtx, false, opts...),
		logger: logging.Nop(),
	}
	for _, opt := range svcOpts {
		opt(s)
	}
	return s
}

// Client returns the underlying GraphQL client.
func (s *SellingPlanGroupService) Client() *Client { return s.client }

// Errors returns the error messages of the most recent call.
func (s *SellingPlanGroupService) Errors() []string { return s.errorMessages }

func (s *SellingPlanGroupService) fail(field string, messages ...string) {
	s.errorMessages = messages
	s.logger.Error("selling plan group query failed", "field", field, "errors", s.errorMessages)
}

// query runs a document and returns the payload under field, translating
// its userErrors into recorded error messages.
func (s *SellingPlanGroupService) query(ctx context.Context, query string, variables map[string]any, field string) (map[string]any, error) {
	s.errorMessages = nil

	data, err := s.client.Query(ctx, query, variables)
	if err != nil {
		s.fail(field, err.Error())
		return nil, err
	}

	var payload struct {
		UserErrors []types.UserError `json:"userErrors"`
	}
	if err := decodePayload(data[field], &payload); err != nil {
		s.fail(field, err.Error())
		return nil, err
	}
	if len(payload.UserErrors) > 0 {
		messages := make([]string, 0, len(payload.UserErrors))
		for _, userError := range payload.UserErrors {
			messages = append(messages, userError.Message)
		}
		s.fail(field, messages...)
		return nil, fmt.Errorf("%w: %s", ErrGraphqlErrors, encodeErrors(payload.UserErrors))
	}

	raw, ok := data[field]
	if !ok || raw == nil {
		s.fail(field, ErrEmptyResponse.Error())
		return nil, ErrEmptyResponse
	}

	var out map[string]any
	if err := decodePayload(raw, &out); err != nil {
		s.fail(field, err.Error())
		return nil, err
	}
	return out, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Create creates a pre-order selling plan group with one nested PRE_ORDER
// selling plan, then attaches the given products and variants. Returns the
// new group id.
func (s *SellingPlanGroupService) Create(ctx context.Context, options SellingPlanGroupOptions) (string, error) {
	query := sellingPlanGroupCreateDocument

	input := types.SellingPlanGroupInput{
		Name:         options.Name,
		MerchantCode: options.MerchantCode,
		Options:      []string{capitalize(options.MerchantCode)},
		Position:     options.Position,
		SellingPlansToCreate: &types.SellingPlanInput{
			Name:     options.Name,
			Category: types.SellingPlanCategoryPreOrder,
			Options:  []string{"Purchase Options with deposit"},
			BillingPolicy: &types.BillingPolicy{
				Fixed: &types.FixedBillingPolicy{
					CheckoutCharge: types.CheckoutCharge{
						Type:  "PERCENTAGE",
						Value: types.CheckoutChargeValue{Percentage: options.Deposit},
					},
					RemainingBalanceChargeExactTime: options.RemainingBalanceChargeTime,
					RemainingBalanceChargeTrigger:   options.RemainingBalanceChargeTrigger,
				},
			},
			DeliveryPolicy: &types.DeliveryPolicy{
				Fixed: &types.FixedDeliveryPolicy{
					FulfillmentTrigger: options.FulfillmentTrigger,
				},
			},
			InventoryPolicy: &types.InventoryPolicy{
				Reserve: options.InventoryReserve,
			},
		},
	}
	if options.Description != "" {
		input.Description = &options.Description
	}

	payload, err := s.query(ctx, query, map[string]any{"input": input}, "sellingPlanGroupCreate")
	if err != nil {
		return "", err
	}

	var result struct {
		SellingPlanGroup *types.SellingPlanGroup `json:"sellingPlanGroup"`
	}
	if err := decodePayload(payload, &result); err != nil {
		return "", err
	}
	if result.SellingPlanGroup == nil || result.SellingPlanGroup.ID == "" {
		return "", ErrEmptyResponse
	}
	groupID := result.SellingPlanGroup.ID

	if len(options.ProductIDs) > 0 {
		if err := s.AddProducts(ctx, groupID, options.ProductIDs); err != nil {
			return "", err
		}
	}
	if len(options.ProductVariantIDs) > 0 {
		if err := s.AddProductVariants(ctx, groupID, options.ProductVariantIDs); err != nil {
			return "", err
		}
	}

	return groupID, nil
}

// AddProducts attaches products to the group. Bare numeric ids get the
// product gid prefix.
func (s *SellingPlanGroupService) AddProducts(ctx context.Context, groupID string, productIDs []string) error {
	query := sellingPlanGroupAddProductsDocument

	variables := map[string]any{
		"id":         groupID,
		"productIds": normalizeIDs(productIDs, gid.ProductPrefix),
	}

	_, err := s.query(ctx, query, variables, "sellingPlanGroupAddProducts")
	return err
}

// AddProductVariants attaches product variants to the group. Bare numeric
// ids get the variant gid prefix.
func (s *SellingPlanGroupService) AddProductVariants(ctx context.Context, groupID string, productVariantIDs []string) error {
	query := sellingPlanGroupAddProductVariantsDocument

	variables := map[string]any{
		"id":                groupID,
		"productVariantIds": normalizeIDs(productVariantIDs, gid.ProductVariantPrefix),
	}

	_, err := s.query(ctx, query, variables, "sellingPlanGroupAddProductVariants")
	return err
}

// Remove deletes the group and returns the deleted group id.
func (s *SellingPlanGroupService) Remove(ctx context.Context, groupID string) (string, error) {
	query := sellingPlanGroupDeleteDocument

	payload, err := s.query(ctx, query, map[string]any{"id": groupID}, "sellingPlanGroupDelete")
	if err != nil {
		return "", err
	}

	deletedID, _ := payload["deletedSellingPlanGroupId"].(string)
	if deletedID == "" {
		return "", ErrEmptyResponse
	}
	return deletedID, nil
}

// Get fetches one group with its plans, products and variants.
func (s *SellingPlanGroupService) Get(ctx context.Context, groupID string) (*types.SellingPlanGroup, error) {
	query := sellingPlanGroupGetDocument

	payload, err := s.query(ctx, query, map[string]any{"sellingPlanGroupId": groupID}, "sellingPlanGroup")
	if err != nil {
		return nil, err
	}

	var group types.SellingPlanGroup
	if err := decodePayload(payload, &group); err != nil {
		return nil, err
	}
	if group.ID == "" {
		return nil, ErrEmptyResponse
	}
	return &group, nil
}

// List returns the available groups.
func (s *SellingPlanGroupService) List(ctx context.Context) ([]*types.SellingPlanGroup, error) {
	query := sellingPlanGroupListDocument

	payload, err := s.query(ctx, query, map[string]any{}, "sellingPlanGroups")
	if err != nil {
		return nil, err
	}

	var connection struct {
		Edges []struct {
			Node *types.SellingPlanGroup `json:"node"`
		} `json:"edges"`
	}
	if err := decodePayload(payload, &connection); err != nil {
		return nil, err
	}

	groups := make([]*types.SellingPlanGroup, 0, len(connection.Edges))
	for _, edge := range connection.Edges {
		if edge.Node != nil {
			groups = append(groups, edge.Node)
		}
	}
	return groups, nil
}

func normalizeIDs(entityIDs []string, prefix string) []string {
	out := make([]string, 0, len(entityIDs))
	for _, entityID := range entityIDs {
		out = append(out, gid.Normalize(entityID, prefix))
	}
	return out
}
