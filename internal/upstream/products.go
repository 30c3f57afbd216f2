// internal/upstream/products.go
package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// ListProducts retrieves the published product catalog
func (c *Client) ListProducts(ctx context.Context, token string) ([]Product, *Pagination, error) {
	var products []Product
	pagination, err := c.do(ctx, http.MethodGet, "/products", token, nil, &products)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, pagination, nil
}

// AdminListProducts retrieves every product, published or not
func (c *Client) AdminListProducts(ctx context.Context, token string) ([]Product, *Pagination, error) {
	var products []Product
	pagination, err := c.do(ctx, http.MethodGet, "/products/admin/all", token, nil, &products)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list admin products: %w", err)
	}
	return products, pagination, nil
}

// SupplierProducts retrieves the products belonging to one supplier
func (c *Client) SupplierProducts(ctx context.Context, token string, supplierID uint) ([]Product, *Pagination, error) {
	var products []Product
	path := fmt.Sprintf("/suppliers/%d/products", supplierID)
	pagination, err := c.do(ctx, http.MethodGet, path, token, nil, &products)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list supplier products: %w", err)
	}
	return products, pagination, nil
}

// GetProduct retrieves a single product by id
func (c *Client) GetProduct(ctx context.Context, token string, id uint) (*Product, error) {
	var product Product
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), token, nil, &product); err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// CreateProduct creates a product through the admin write path
func (c *Client) CreateProduct(ctx context.Context, token string, input *ProductInput) (*Product, error) {
	var product Product
	if _, err := c.do(ctx, http.MethodPost, "/products", token, input, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct updates a product through the admin write path
func (c *Client) UpdateProduct(ctx context.Context, token string, id uint, input *ProductInput) (*Product, error) {
	var product Product
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), token, input, &product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return &product, nil
}

// DeleteProduct deletes a product through the admin write path
func (c *Client) DeleteProduct(ctx context.Context, token string, id uint) error {
	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), token, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
