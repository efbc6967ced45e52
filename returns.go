package mintsoft

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
)

const returnReasonsPath = "/api/Return/Reasons"

// requiredItemFields are checked in this order before an item is added.
var requiredItemFields = []string{"product_id", "quantity", "reason_id"}

// itemFieldRenames maps caller field names to the casing the server
// expects. Optional fields are omitted from the payload entirely when
// absent, never sent as null.
var itemFieldRenames = map[string]string{
	"product_id": "ProductId",
	"quantity":   "Quantity",
	"reason_id":  "ReasonId",
	"unit_value": "UnitValue",
	"notes":      "Notes",
}

// ReturnsResource groups the return endpoints.
type ReturnsResource struct {
	base *resourceBase
}

// Reasons lists the available return reasons. A non-array success body
// yields an empty slice; non-2xx responses (404 included) surface as
// taxonomy errors.
func (r *ReturnsResource) Reasons(ctx context.Context) ([]*ReturnReason, error) {
	resp, err := r.base.get(ctx, returnReasonsPath, nil)
	if err != nil {
		return nil, err
	}

	body, err := r.base.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	items, ok := body.([]any)
	if !ok {
		return []*ReturnReason{}, nil
	}

	reasons := make([]*ReturnReason, len(items))
	for i, item := range items {
		reasons[i] = newReturnReason(item)
	}

	return reasons, nil
}

// Create opens a return for an order. orderID accepts any numeric
// representation (int, float64, numeric string) and must coerce to a
// positive integer, else a [ValidationError] is raised before any network
// call.
//
// The create endpoint does not echo the order ID, so the response is merged
// with an injected order_id field before wrapping. This is the only place
// in the library where a field is added to a server response.
func (r *ReturnsResource) Create(ctx context.Context, orderID any) (*Return, error) {
	id := cast.ToInt(orderID)
	if id <= 0 {
		return nil, newValidationError("Order ID required")
	}

	resp, err := r.base.post(ctx, fmt.Sprintf("/api/Return/CreateReturn/%d", id), nil)
	if err != nil {
		return nil, err
	}

	body, err := r.base.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	m, ok := body.(map[string]any)
	if !ok {
		m = map[string]any{}
	}

	merged := make(map[string]any, len(m)+1)
	for k, v := range m {
		merged[k] = v
	}
	merged["order_id"] = id

	return newReturn(merged), nil
}

// AddItem adds an item to an existing return. returnID must coerce to a
// positive integer ("Return ID required" otherwise); item must contain
// product_id, quantity, and reason_id, checked in that order; quantity must
// coerce to a positive integer. unit_value and notes are optional.
//
// The result wraps only what the server sent; caller-supplied attributes
// are not merged in.
func (r *ReturnsResource) AddItem(ctx context.Context, returnID any, item map[string]any) (*Return, error) {
	id := cast.ToInt(returnID)
	if id <= 0 {
		return nil, newValidationError("Return ID required")
	}

	for _, field := range requiredItemFields {
		if _, ok := item[field]; !ok {
			return nil, newValidationError(field + " required")
		}
	}

	if cast.ToInt(item["quantity"]) <= 0 {
		return nil, newValidationError("Quantity must be positive")
	}

	payload := make(map[string]any, len(itemFieldRenames))
	for from, to := range itemFieldRenames {
		if v, ok := item[from]; ok {
			payload[to] = v
		}
	}

	resp, err := r.base.post(ctx, fmt.Sprintf("/api/Return/%d/AddItem", id), payload)
	if err != nil {
		return nil, err
	}

	body, err := r.base.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	return newReturn(body), nil
}
