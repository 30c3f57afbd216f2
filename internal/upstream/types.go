// internal/upstream/types.go
package upstream

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Amount is a monetary value. The upstream API transmits these either as
// JSON numbers or as decimal strings, depending on which write path
// produced the record, so both encodings must decode.
type Amount float64

// UnmarshalJSON accepts a JSON number, a quoted decimal string, or null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*a = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		if str == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid decimal string %q: %w", str, err)
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

// Float64 returns the amount as a plain float64
func (a Amount) Float64() float64 {
	return float64(a)
}

// Metadata is the opaque attribute bag attached to products. A buggy write
// path sometimes stored it as a JSON-encoded string instead of an object;
// malformed values degrade to an empty bag rather than failing the decode.
type Metadata map[string]interface{}

// UnmarshalJSON accepts an object, a JSON-encoded object string, or null.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*m = nil
			return nil
		}
		var inner map[string]interface{}
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			*m = nil
			return nil
		}
		*m = inner
		return nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(b, &obj); err != nil {
		*m = nil
		return nil
	}
	*m = obj
	return nil
}

// Pagination represents the pagination block of the response envelope
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// CategoryRef is the category reference embedded in a product
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Dimensions holds physical product dimensions
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Product is the product record as the commerce API transmits it
type Product struct {
	ID                uint          `json:"id"`
	Name              string        `json:"name"`
	Slug              string        `json:"slug"`
	Description       string        `json:"description"`
	ShortDescription  string        `json:"shortDescription"`
	Price             Amount        `json:"price"`
	CompareAtPrice    *Amount       `json:"compareAtPrice"`
	CostPrice         *Amount       `json:"costPrice"`
	Quantity          int           `json:"quantity"`
	LowStockThreshold *int          `json:"lowStockThreshold"`
	IsPublished       bool          `json:"isPublished"`
	IsFeatured        bool          `json:"isFeatured"`
	IsDigital         bool          `json:"isDigital"`
	ImageUrls         []string      `json:"imageUrls"`
	Categories        []CategoryRef `json:"categories"`
	Tags              []string      `json:"tags"`
	Weight            *float64      `json:"weight"`
	Dimensions        *Dimensions   `json:"dimensions"`
	Metadata          Metadata      `json:"metadata"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// Category is a node of the category tree
type Category struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	ParentID    *uint      `json:"parentId"`
	IsActive    bool       `json:"isActive"`
	Order       int        `json:"order"`
	Children    []Category `json:"children,omitempty"`
}

// Review is a product review record
type Review struct {
	ID           uint      `json:"id"`
	ProductID    uint      `json:"productId"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	HelpfulCount int       `json:"helpfulCount"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReviewStats is the aggregate rating block for a product
type ReviewStats struct {
	AverageRating float64     `json:"averageRating"`
	TotalReviews  int         `json:"totalReviews"`
	Distribution  map[int]int `json:"distribution,omitempty"`
}

// Wishlist is a customer wishlist resource
type Wishlist struct {
	ID          string         `json:"id"`
	CustomerID  string         `json:"customerId"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	IsPublic    bool           `json:"isPublic"`
	Items       []WishlistItem `json:"items,omitempty"`
}

// WishlistItem is the wishlist entry as the API returns it. Note that the
// item carries its own identity separate from the product it points at;
// the deletion endpoint is keyed by this id, not the product id.
type WishlistItem struct {
	ID         string    `json:"id"`
	WishlistID string    `json:"wishlistId"`
	ProductID  uint      `json:"productId"`
	Notes      string    `json:"notes,omitempty"`
	Product    *Product  `json:"product,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProductInput is the payload for product create and update
type ProductInput struct {
	Name              string                 `json:"name" binding:"required"`
	Description       string                 `json:"description"`
	ShortDescription  string                 `json:"shortDescription"`
	Price             Amount                 `json:"price" binding:"required"`
	CompareAtPrice    *Amount                `json:"compareAtPrice"`
	CostPrice         *Amount                `json:"costPrice"`
	Quantity          int                    `json:"quantity" binding:"min=0"`
	LowStockThreshold *int                   `json:"lowStockThreshold"`
	IsPublished       bool                   `json:"isPublished"`
	IsFeatured        bool                   `json:"isFeatured"`
	IsDigital         bool                   `json:"isDigital"`
	ImageUrls         []string               `json:"imageUrls"`
	CategoryIDs       []uint                 `json:"categoryIds"`
	Tags              []string               `json:"tags"`
	Weight            *float64               `json:"weight"`
	Dimensions        *Dimensions            `json:"dimensions"`
	Metadata          map[string]interface{} `json:"metadata"`
}

// CategoryInput is the payload for category create and update
type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ParentID    *uint  `json:"parentId"`
	IsActive    bool   `json:"isActive"`
	Order       int    `json:"order"`
}

// ReviewInput is the payload for submitting a review
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// WishlistInput is the payload for wishlist create and update
type WishlistInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// WishlistItemInput is the payload for adding an item to a wishlist
type WishlistItemInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Notes     string `json:"notes"`
}
