// internal/upstream/reviews.go
package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// ListReviews retrieves the reviews for a product
func (c *Client) ListReviews(ctx context.Context, token string, productID uint) ([]Review, *Pagination, error) {
	var reviews []Review
	path := fmt.Sprintf("/products/%d/reviews", productID)
	pagination, err := c.do(ctx, http.MethodGet, path, token, nil, &reviews)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list reviews for product %d: %w", productID, err)
	}
	return reviews, pagination, nil
}

// ReviewStatsFor retrieves the aggregate rating stats for a product
func (c *Client) ReviewStatsFor(ctx context.Context, token string, productID uint) (*ReviewStats, error) {
	var stats ReviewStats
	path := fmt.Sprintf("/products/%d/reviews/stats", productID)
	if _, err := c.do(ctx, http.MethodGet, path, token, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get review stats for product %d: %w", productID, err)
	}
	return &stats, nil
}

// CreateReview submits a review for a product
func (c *Client) CreateReview(ctx context.Context, token string, productID uint, input *ReviewInput) (*Review, error) {
	var review Review
	path := fmt.Sprintf("/products/%d/reviews", productID)
	if _, err := c.do(ctx, http.MethodPost, path, token, input, &review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// VoteReview registers a helpfulness vote on a review
func (c *Client) VoteReview(ctx context.Context, token string, reviewID uint, helpful bool) error {
	body := map[string]bool{"helpful": helpful}
	path := fmt.Sprintf("/reviews/%d/vote", reviewID)
	if _, err := c.do(ctx, http.MethodPost, path, token, body, nil); err != nil {
		return fmt.Errorf("failed to vote on review %d: %w", reviewID, err)
	}
	return nil
}
