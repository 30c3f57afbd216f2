// internal/domain/catalog/entity.go
package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

// ProductCard is the denormalized product view for grid and card rendering
type ProductCard struct {
	ID              uint        `json:"id"`
	Name            string      `json:"name"`
	Slug            string      `json:"slug"`
	Image           string      `json:"image"`
	Price           float64     `json:"price"`
	CompareAtPrice  *float64    `json:"compareAtPrice,omitempty"`
	DiscountPercent int         `json:"discountPercent"`
	Savings         float64     `json:"savings"`
	StockStatus     StockStatus `json:"stockStatus"`
	InStock         bool        `json:"inStock"`
	IsFeatured      bool        `json:"isFeatured"`
	Category        string      `json:"category,omitempty"`
}

// ProductDetail is the full product view for the detail page
type ProductDetail struct {
	ProductCard
	Description      string                `json:"description"`
	ShortDescription string                `json:"shortDescription"`
	Images           []string              `json:"images"`
	Quantity         int                   `json:"quantity"`
	IsDigital        bool                  `json:"isDigital"`
	Tags             []string              `json:"tags,omitempty"`
	Categories       []upstream.CategoryRef `json:"categories,omitempty"`
	Specs            []SpecEntry           `json:"specs,omitempty"`
	Weight           *float64              `json:"weight,omitempty"`
	Dimensions       *upstream.Dimensions  `json:"dimensions,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// SpecEntry is one attribute extracted from the product metadata bag
type SpecEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewProductCard builds the card view of a product: first image only,
// normalized with card semantics, plus the derived commerce state.
func NewProductCard(p upstream.Product) ProductCard {
	card := ProductCard{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Image:           CardThumbnail(p.ImageUrls),
		Price:           p.Price.Float64(),
		DiscountPercent: DiscountPercent(p.Price, p.CompareAtPrice),
		Savings:         Savings(p.Price, p.CompareAtPrice),
		StockStatus:     ClassifyStock(p.Quantity, p.LowStockThreshold),
		IsFeatured:      p.IsFeatured,
	}
	card.InStock = card.StockStatus != StockStatusOut
	if p.CompareAtPrice != nil {
		v := p.CompareAtPrice.Float64()
		card.CompareAtPrice = &v
	}
	if len(p.Categories) > 0 {
		card.Category = p.Categories[0].Name
	}
	return card
}

// NewProductDetail builds the detail view of a product. Every image is
// normalized with detail semantics for the thumbnail strip.
func NewProductDetail(p upstream.Product) ProductDetail {
	return ProductDetail{
		ProductCard:      NewProductCard(p),
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Images:           DetailImages(p.ImageUrls),
		Quantity:         p.Quantity,
		IsDigital:        p.IsDigital,
		Tags:             p.Tags,
		Categories:       p.Categories,
		Specs:            ExtractSpecs(p.Metadata),
		Weight:           p.Weight,
		Dimensions:       p.Dimensions,
		CreatedAt:        p.CreatedAt,
	}
}

// ExtractSpecs flattens the metadata bag into displayable attribute rows,
// sorted by name for a stable order. Nested values are skipped.
func ExtractSpecs(metadata upstream.Metadata) []SpecEntry {
	if len(metadata) == 0 {
		return nil
	}
	specs := make([]SpecEntry, 0, len(metadata))
	for name, value := range metadata {
		switch v := value.(type) {
		case string:
			specs = append(specs, SpecEntry{Name: name, Value: v})
		case float64:
			specs = append(specs, SpecEntry{Name: name, Value: formatNumber(v)})
		case bool:
			specs = append(specs, SpecEntry{Name: name, Value: fmt.Sprintf("%t", v)})
		}
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
