// internal/domain/wishlist/entity.go
package wishlist

import (
	"errors"
	"strconv"

	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

const (
	// SentinelWishlistID is the degraded fallback when no real wishlist
	// can be resolved. Best effort, not a true wishlist.
	SentinelWishlistID = "default"

	// DefaultWishlistName is the name given to the lazily created wishlist
	DefaultWishlistName = "My Wishlist"
)

var (
	// ErrToggleInFlight is returned when a toggle for the same product is
	// already running for this customer
	ErrToggleInFlight = errors.New("wishlist toggle already in flight for this product")

	// ErrItemNotFound is returned when the target product has no matching
	// item in the customer's wishlist
	ErrItemNotFound = errors.New("item not found in wishlist")
)

// Item is the denormalized snapshot held in the customer's local mirror.
// It copies product fields at the moment of the add action rather than
// referencing the live product record. Its id is the source product's id
// stringified, and items are unique by that id within the mirror.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	InStock  bool    `json:"inStock"`
	Category string  `json:"category,omitempty"`
	Discount int     `json:"discount,omitempty"`
}

// NewItem snapshots a product into its mirror form
func NewItem(p upstream.Product) Item {
	item := Item{
		ID:       strconv.FormatUint(uint64(p.ID), 10),
		Name:     p.Name,
		Slug:     p.Slug,
		Price:    p.Price.Float64(),
		Image:    catalog.CardThumbnail(p.ImageUrls),
		InStock:  catalog.ClassifyStock(p.Quantity, p.LowStockThreshold) != catalog.StockStatusOut,
		Discount: catalog.DiscountPercent(p.Price, p.CompareAtPrice),
	}
	if len(p.Categories) > 0 {
		item.Category = p.Categories[0].Name
	}
	return item
}
