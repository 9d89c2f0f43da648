package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kovawear/kova/internal/domain"
)

// ListProducts fetches the catalog, optionally narrowed by filter.
func (c *Client) ListProducts(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Collection != "" {
		query.Set("collection", filter.Collection)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a catalog entry. Admin only.
func (c *Client) CreateProduct(ctx context.Context, create domain.ProductCreate) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, create, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry. Admin only.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}
