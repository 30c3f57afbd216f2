package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// ReviewHandler handles product review HTTP requests
type ReviewHandler struct {
	api *upstream.Client
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(api *upstream.Client) *ReviewHandler {
	return &ReviewHandler{api: api}
}

// VoteRequest marks a review as helpful or not helpful
type VoteRequest struct {
	Helpful *bool `json:"helpful" binding:"required"`
}

// ListReviews returns the reviews for a product together with its
// aggregate rating stats
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	token := middleware.GetAccessTokenFromContext(c)
	reviews, pagination, err := h.api.ListReviews(c.Request.Context(), token, productID)
	if err != nil {
		respondUpstreamError(c, err, "Product not found")
		return
	}

	// Stats are best effort; a product with no reviews has none
	stats, err := h.api.ReviewStatsFor(c.Request.Context(), token, productID)
	if err != nil && !upstream.IsNotFound(err) {
		respondUpstreamError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data": gin.H{
			"reviews":    reviews,
			"stats":      stats,
			"pagination": pagination,
		},
	})
}

// CreateReview submits a review for a product
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input upstream.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	review, err := h.api.CreateReview(c.Request.Context(), middleware.GetAccessTokenFromContext(c), productID, &input)
	if err != nil {
		respondUpstreamError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted successfully",
		"data":    review,
	})
}

// VoteReview records a helpfulness vote on a review
// @Router /reviews/{id}/vote [post]
func (h *ReviewHandler) VoteReview(c *gin.Context) {
	reviewID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.api.VoteReview(c.Request.Context(), middleware.GetAccessTokenFromContext(c), reviewID, *req.Helpful); err != nil {
		respondUpstreamError(c, err, "Review not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vote recorded successfully",
	})
}
