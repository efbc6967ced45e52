package mintsoft

import (
	"context"
	"net/http"
	"net/url"
)

const orderSearchPath = "/api/Order/Search"

// OrdersResource groups the order endpoints.
type OrdersResource struct {
	base *resourceBase
}

// Search finds orders by order number. Not-found is modeled as "no
// results": a 404 (and a non-array success body) yields an empty slice,
// never nil and never an error. An empty orderNumber fails with a
// [ValidationError] before any network call.
func (o *OrdersResource) Search(ctx context.Context, orderNumber string) ([]*Order, error) {
	if orderNumber == "" {
		return nil, newValidationError("Order number required")
	}

	resp, err := o.base.get(ctx, orderSearchPath, map[string]string{"OrderNumber": orderNumber})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusNotFound {
		return []*Order{}, nil
	}

	body, err := o.base.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	items, ok := body.([]any)
	if !ok {
		return []*Order{}, nil
	}

	orders := make([]*Order, len(items))
	for i, item := range items {
		orders[i] = newOrder(item)
	}

	return orders, nil
}

// Retrieve fetches a single order by ID. A 404 (and a non-object success
// body) yields nil without an error; single-item lookups use absence where
// Search uses emptiness. An empty id fails with a [ValidationError] before
// any network call.
func (o *OrdersResource) Retrieve(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, newValidationError("Order ID required")
	}

	resp, err := o.base.get(ctx, "/api/Order/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}

	body, err := o.base.handleResponse(resp)
	if err != nil {
		return nil, err
	}

	m, ok := body.(map[string]any)
	if !ok {
		return nil, nil
	}

	return newOrder(m), nil
}
