package api

import (
	"context"
	"net/http"

	"github.com/kovawear/kova/internal/domain"
)

// CreateOrder submits a cart snapshot as a new order.
func (c *Client) CreateOrder(ctx context.Context, order domain.OrderRequest) error {
	return c.do(ctx, http.MethodPost, "/orders", nil, order, nil)
}

// MyOrders fetches the authenticated user's order history.
func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/my", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
