// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"time"

	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

var (
	// ErrItemNotFound is returned when a mutation targets a product that
	// is not in the cart
	ErrItemNotFound = errors.New("item not found in cart")

	// ErrOutOfStock is returned when adding a product with no stock
	ErrOutOfStock = errors.New("product is out of stock")
)

// Item is a denormalized snapshot of a product at the moment it was added
// to the cart, not a live reference. Stock is the quantity available at
// snapshot time; Quantity never exceeds it.
type Item struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Quantity      int      `json:"quantity"`
	Stock         int      `json:"stock"`
}

// Cart is the persisted cart blob for one owner
type Cart struct {
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int     `json:"itemCount"`
	TotalQuantity int     `json:"totalQuantity"`
	Subtotal      float64 `json:"subtotal"`
	Savings       float64 `json:"savings"`
	Total         float64 `json:"total"`
}

// NewItem snapshots a product into its cart form, clamping the requested
// quantity to the available stock
func NewItem(p upstream.Product, quantity int) Item {
	if quantity > p.Quantity {
		quantity = p.Quantity
	}
	if quantity < 1 {
		quantity = 1
	}
	item := Item{
		ID:       p.ID,
		Name:     p.Name,
		Image:    catalog.CardThumbnail(p.ImageUrls),
		Price:    p.Price.Float64(),
		Quantity: quantity,
		Stock:    p.Quantity,
	}
	if p.CompareAtPrice != nil && *p.CompareAtPrice > p.Price {
		v := p.CompareAtPrice.Float64()
		item.OriginalPrice = &v
	}
	return item
}
