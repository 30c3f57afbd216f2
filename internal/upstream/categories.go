// internal/upstream/categories.go
package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// ListCategories retrieves the flat category list
func (c *Client) ListCategories(ctx context.Context, token string) ([]Category, error) {
	var categories []Category
	if _, err := c.do(ctx, http.MethodGet, "/categories", token, nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CategoryTree retrieves the nested category tree
func (c *Client) CategoryTree(ctx context.Context, token string) ([]Category, error) {
	var tree []Category
	if _, err := c.do(ctx, http.MethodGet, "/categories/tree", token, nil, &tree); err != nil {
		return nil, fmt.Errorf("failed to get category tree: %w", err)
	}
	return tree, nil
}

// CreateCategory creates a category through the admin write path
func (c *Client) CreateCategory(ctx context.Context, token string, input *CategoryInput) (*Category, error) {
	var category Category
	if _, err := c.do(ctx, http.MethodPost, "/categories", token, input, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory updates a category through the admin write path
func (c *Client) UpdateCategory(ctx context.Context, token string, id uint, input *CategoryInput) (*Category, error) {
	var category Category
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), token, input, &category); err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", id, err)
	}
	return &category, nil
}

// DeleteCategory deletes a category through the admin write path
func (c *Client) DeleteCategory(ctx context.Context, token string, id uint) error {
	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), token, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
