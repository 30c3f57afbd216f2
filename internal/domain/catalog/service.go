// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// Service handles storefront catalog business logic
type Service struct {
	api    *upstream.Client
	config *config.Config
}

// NewService creates a new catalog service
func NewService(api *upstream.Client, cfg *config.Config) *Service {
	return &Service{
		api:    api,
		config: cfg,
	}
}

// BrowseRequest holds the list view inputs: filters, sort key and page
type BrowseRequest struct {
	Filter Filter
	Sort   string
	Page   int
}

// BrowseResponse is one page of the filtered, sorted catalog
type BrowseResponse struct {
	Products   []ProductCard `json:"products"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalItems int           `json:"totalItems"`
	TotalPages int           `json:"totalPages"`
	PageWindow []int         `json:"pageWindow"`
}

// Browse runs the full list pipeline over the published catalog: filter,
// sort, then fixed-size pagination. The pipeline is recomputed from
// scratch per request; nothing is incremental.
func (s *Service) Browse(ctx context.Context, token string, req *BrowseRequest) (*BrowseResponse, error) {
	products, _, err := s.api.ListProducts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// The storefront only ever shows published products
	published := make([]upstream.Product, 0, len(products))
	for _, p := range products {
		if p.IsPublished {
			published = append(published, p)
		}
	}

	filtered := ApplyFilters(published, req.Filter)
	sorted := SortProducts(filtered, req.Sort)

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := s.config.Catalog.PageSize
	pageItems, totalPages := Paginate(sorted, page, pageSize)

	cards := make([]ProductCard, len(pageItems))
	for i, p := range pageItems {
		cards[i] = NewProductCard(p)
	}

	return &BrowseResponse{
		Products:   cards,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(sorted),
		TotalPages: totalPages,
		PageWindow: PageWindow(page, totalPages),
	}, nil
}

// GetProduct retrieves a single product as the detail view
func (s *Service) GetProduct(ctx context.Context, token string, id uint) (*ProductDetail, error) {
	product, err := s.api.GetProduct(ctx, token, id)
	if err != nil {
		return nil, err
	}
	detail := NewProductDetail(*product)
	return &detail, nil
}

// Categories retrieves the flat category list
func (s *Service) Categories(ctx context.Context, token string) ([]upstream.Category, error) {
	return s.api.ListCategories(ctx, token)
}

// CategoryTree retrieves the nested category tree. Depth and sibling order
// are presentation hints only; nothing is enforced here.
func (s *Service) CategoryTree(ctx context.Context, token string) ([]upstream.Category, error) {
	return s.api.CategoryTree(ctx, token)
}

// Reviews retrieves one page of reviews for a product
func (s *Service) Reviews(ctx context.Context, token string, productID uint) ([]upstream.Review, *upstream.Pagination, error) {
	return s.api.ListReviews(ctx, token, productID)
}

// ReviewStats retrieves the aggregate rating stats for a product
func (s *Service) ReviewStats(ctx context.Context, token string, productID uint) (*upstream.ReviewStats, error) {
	return s.api.ReviewStatsFor(ctx, token, productID)
}

// SubmitReview submits a customer review for a product
func (s *Service) SubmitReview(ctx context.Context, token string, productID uint, input *upstream.ReviewInput) (*upstream.Review, error) {
	return s.api.CreateReview(ctx, token, productID, input)
}

// VoteReview registers a helpfulness vote on a review
func (s *Service) VoteReview(ctx context.Context, token string, reviewID uint, helpful bool) error {
	return s.api.VoteReview(ctx, token, reviewID, helpful)
}
