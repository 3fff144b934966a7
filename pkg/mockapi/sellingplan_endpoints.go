package mockapi

import (
	"math/rand"

	"github.com/storefrontkit/checkout/pkg/types"
)

// sellingPlanGroupEndpoints binds the selling plan group engine to the
// router's operations. Business-level engine failures are translated into
// the payload's userErrors list; hard failures propagate.
type sellingPlanGroupEndpoints struct {
	backend *Backend
}

func registerSellingPlanGroupEndpoints(r *Router, backend *Backend) {
	e := &sellingPlanGroupEndpoints{backend: backend}

	r.Register(OpSellingPlanGroupGet, e.get)
	r.Register(OpSellingPlanGroupList, e.list)
	r.Register(OpSellingPlanGroupCreate, e.create)
	r.Register(OpSellingPlanGroupAddProducts, e.addProducts)
	r.Register(OpSellingPlanGroupAddProductVariants, e.addProductVariants)
	r.Register(OpSellingPlanGroupDelete, e.delete)
}

func (e *sellingPlanGroupEndpoints) get(query string, vars map[string]any) (map[string]any, error) {
	if _, err := ParseQuery(query, vars); err != nil {
		return nil, err
	}

	group, err := e.backend.SellingPlanGroups().Get(stringVar(vars, "sellingPlanGroupId"))
	if err != nil {
		if errs, ok := userErrors(err); ok {
			return map[string]any{
				"sellingPlanGroup": map[string]any{"userErrors": errs},
			}, nil
		}
		return nil, err
	}

	return map[string]any{"sellingPlanGroup": group}, nil
}

func (e *sellingPlanGroupEndpoints) list(query string, vars map[string]any) (map[string]any, error) {
	parsed, err := ParseQuery(query, vars)
	if err != nil {
		return nil, err
	}

	groups, err := e.backend.SellingPlanGroups().List(0, 0)
	if err != nil {
		return nil, err
	}

	// A selection asking for edges gets connection shape, with the opaque
	// cursor the real API would attach.
	if parsed.HasFieldGroup("edges") {
		cursor := 1111111 + rand.Intn(20111112)
		edges := make([]map[string]any, 0, len(groups))
		for _, group := range groups {
			edges = append(edges, map[string]any{
				"cursor": cursor,
				"node":   group,
			})
		}
		return map[string]any{
			"sellingPlanGroups": map[string]any{"edges": edges},
		}, nil
	}

	return map[string]any{"sellingPlanGroups": groups}, nil
}

func (e *sellingPlanGroupEndpoints) create(query string, vars map[string]any) (map[string]any, error) {
	if _, err := ParseQuery(query, vars); err != nil {
		return nil, err
	}

	var input types.SellingPlanGroupInput
	if err := unmarshalVar(vars, "input", &input); err != nil {
		return nil, err
	}

	group, err := e.backend.SellingPlanGroups().Create(input)
	if err != nil {
		if errs, ok := userErrors(err); ok {
			return map[string]any{
				"sellingPlanGroupCreate": map[string]any{"userErrors": errs},
			}, nil
		}
		return nil, err
	}

	return map[string]any{
		"sellingPlanGroupCreate": map[string]any{
			"sellingPlanGroup": group,
			"userErrors":       []types.UserError{},
		},
	}, nil
}

func (e *sellingPlanGroupEndpoints) addProducts(query string, vars map[string]any) (map[string]any, error) {
	if _, err := ParseQuery(query, vars); err != nil {
		return nil, err
	}

	group, err := e.backend.SellingPlanGroups().AddProducts(stringVar(vars, "id"), stringsVar(vars, "productIds"))
	if err != nil {
		if errs, ok := userErrors(err); ok {
			return map[string]any{
				"sellingPlanGroupAddProducts": map[string]any{"userErrors": errs},
			}, nil
		}
		return nil, err
	}

	return map[string]any{
		"sellingPlanGroupAddProducts": map[string]any{
			"sellingPlanGroup": group,
			"userErrors":       []types.UserError{},
		},
	}, nil
}

func (e *sellingPlanGroupEndpoints) addProductVariants(query string, vars map[string]any) (map[string]any, error) {
	if _, err := ParseQuery(query, vars); err != nil {
		return nil, err
	}

	group, err := e.backend.SellingPlanGroups().AddProductVariants(stringVar(vars, "id"), stringsVar(vars, "productVariantIds"))
	if err != nil {
		if errs, ok := userErrors(err); ok {
			return map[string]any{
				"sellingPlanGroupAddProductVariants": map[string]any{"userErrors": errs},
			}, nil
		}
		return nil, err
	}

	return map[string]any{
		"sellingPlanGroupAddProductVariants": map[string]any{
			"sellingPlanGroup": group,
			"userErrors":       []types.UserError{},
		},
	}, nil
}

func (e *sellingPlanGroupEndpoints) delete(query string, vars map[string]any) (map[string]any, error) {
	if _, err := ParseQuery(query, vars); err != nil {
		return nil, err
	}

	deleted, err := e.backend.SellingPlanGroups().Delete(stringVar(vars, "id"))
	if err != nil || !deleted {
		if errs, ok := userErrors(err); ok {
			return map[string]any{
				"sellingPlanGroupDelete": map[string]any{"userErrors": errs},
			}, nil
		}
		return nil, err
	}

	return map[string]any{
		"sellingPlanGroupDelete": map[string]any{
			"deletedSellingPlanGroupId": stringVar(vars, "id"),
			"userErrors":                []types.UserError{},
		},
	}, nil
}
