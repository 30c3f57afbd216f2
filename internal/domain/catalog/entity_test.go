package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

func TestNewProductCard(t *testing.T) {
	p := upstream.Product{
		ID:                7,
		Name:              "Runner",
		Slug:              "runner",
		Price:             10000,
		CompareAtPrice:    amountPtr(12000),
		Quantity:          3,
		LowStockThreshold: intPtr(5),
		IsFeatured:        true,
		ImageUrls:         []string{`{"url":"https://cdn.example.com/runner.jpg"}`},
		Categories:        []upstream.CategoryRef{{Name: "Shoes", Slug: "shoes"}},
	}

	card := NewProductCard(p)

	assert.Equal(t, "https://cdn.example.com/runner.jpg", card.Image)
	assert.Equal(t, 10000.0, card.Price)
	assert.Equal(t, 17, card.DiscountPercent)
	assert.Equal(t, 2000.0, card.Savings)
	assert.Equal(t, StockStatusLow, card.StockStatus)
	assert.True(t, card.InStock)
	assert.Equal(t, "Shoes", card.Category)
}

func TestNewProductDetail(t *testing.T) {
	p := upstream.Product{
		ID:        7,
		Name:      "Runner",
		Price:     5000,
		Quantity:  0,
		ImageUrls: []string{"https://cdn.example.com/a.jpg", "broken"},
		Metadata: upstream.Metadata{
			"material": "mesh",
			"weightKg": 0.5,
		},
	}

	detail := NewProductDetail(p)

	assert.Equal(t, StockStatusOut, detail.StockStatus)
	assert.False(t, detail.InStock)

	// Detail keeps unusable raw values instead of masking them
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "broken"}, detail.Images)

	require.Len(t, detail.Specs, 2)
	assert.Equal(t, SpecEntry{Name: "material", Value: "mesh"}, detail.Specs[0])
	assert.Equal(t, SpecEntry{Name: "weightKg", Value: "0.5"}, detail.Specs[1])
}

func TestExtractSpecs(t *testing.T) {
	assert.Nil(t, ExtractSpecs(nil))

	specs := ExtractSpecs(upstream.Metadata{
		"b":      "second",
		"a":      "first",
		"count":  3.0,
		"active": true,
		"nested": map[string]interface{}{"skipped": true},
	})

	// Sorted by name, nested values skipped
	assert.Equal(t, []SpecEntry{
		{Name: "a", Value: "first"},
		{Name: "active", Value: "true"},
		{Name: "b", Value: "second"},
		{Name: "count", Value: "3"},
	}, specs)
}
