package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func testCatalog() []upstream.Product {
	return []upstream.Product{
		{ID: 1, Price: 1000, Quantity: 5, IsFeatured: true,
			Categories: []upstream.CategoryRef{{Slug: "shoes"}}},
		{ID: 2, Price: 3000, Quantity: 0,
			Categories: []upstream.CategoryRef{{Slug: "shoes"}}},
		{ID: 3, Price: 2000, Quantity: 8,
			Categories: []upstream.CategoryRef{{Slug: "bags"}}},
		{ID: 4, Price: 500, Quantity: 2, IsFeatured: true,
			Categories: []upstream.CategoryRef{{Slug: "bags"}}},
	}
}

func productIDs(products []upstream.Product) []uint {
	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestApplyFilters(t *testing.T) {
	products := testCatalog()

	t.Run("no active filters keeps everything", func(t *testing.T) {
		assert.Len(t, ApplyFilters(products, Filter{}), 4)
	})

	t.Run("category", func(t *testing.T) {
		got := ApplyFilters(products, Filter{CategorySlug: "shoes"})
		assert.Equal(t, []uint{1, 2}, productIDs(got))
	})

	t.Run("price range", func(t *testing.T) {
		got := ApplyFilters(products, Filter{
			MinPrice: float64Ptr(1000),
			MaxPrice: float64Ptr(2000),
		})
		assert.Equal(t, []uint{1, 3}, productIDs(got))
	})

	t.Run("in stock only", func(t *testing.T) {
		got := ApplyFilters(products, Filter{InStockOnly: true})
		assert.Equal(t, []uint{1, 3, 4}, productIDs(got))
	})

	t.Run("featured only", func(t *testing.T) {
		got := ApplyFilters(products, Filter{FeaturedOnly: true})
		assert.Equal(t, []uint{1, 4}, productIDs(got))
	})

	t.Run("filters combine", func(t *testing.T) {
		got := ApplyFilters(products, Filter{
			CategorySlug: "bags",
			InStockOnly:  true,
			FeaturedOnly: true,
		})
		assert.Equal(t, []uint{4}, productIDs(got))
	})
}

func TestSortProducts(t *testing.T) {
	products := testCatalog()

	t.Run("price ascending", func(t *testing.T) {
		got := SortProducts(products, SortPriceAsc)
		assert.Equal(t, []uint{4, 1, 3, 2}, productIDs(got))
	})

	t.Run("price descending", func(t *testing.T) {
		got := SortProducts(products, SortPriceDesc)
		assert.Equal(t, []uint{2, 3, 1, 4}, productIDs(got))
	})

	t.Run("featured first then newest id", func(t *testing.T) {
		got := SortProducts(products, SortFeatured)
		assert.Equal(t, []uint{4, 1, 3, 2}, productIDs(got))
	})

	t.Run("bestselling is an alias of featured", func(t *testing.T) {
		assert.Equal(t,
			productIDs(SortProducts(products, SortFeatured)),
			productIDs(SortProducts(products, SortBestselling)))
	})

	t.Run("newest by created timestamp", func(t *testing.T) {
		now := time.Now()
		dated := []upstream.Product{
			{ID: 1, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: 2, CreatedAt: now},
			{ID: 3, CreatedAt: now.Add(-1 * time.Hour)},
		}
		got := SortProducts(dated, SortNewest)
		assert.Equal(t, []uint{2, 3, 1}, productIDs(got))
	})

	t.Run("newest falls back to id when timestamps are missing", func(t *testing.T) {
		undated := []upstream.Product{{ID: 1}, {ID: 3}, {ID: 2}}
		got := SortProducts(undated, SortNewest)
		assert.Equal(t, []uint{3, 2, 1}, productIDs(got))
	})

	t.Run("unknown key falls back to id descending", func(t *testing.T) {
		got := SortProducts(products, "alphabetical")
		assert.Equal(t, []uint{4, 3, 2, 1}, productIDs(got))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := productIDs(products)
		SortProducts(products, SortPriceAsc)
		assert.Equal(t, before, productIDs(products))
	})
}

func TestPaginate(t *testing.T) {
	products := make([]upstream.Product, 25)
	for i := range products {
		products[i] = upstream.Product{ID: uint(i + 1)}
	}

	t.Run("full page", func(t *testing.T) {
		page, totalPages := Paginate(products, 1, 12)
		assert.Len(t, page, 12)
		assert.Equal(t, 3, totalPages)
		assert.Equal(t, uint(1), page[0].ID)
	})

	t.Run("short last page", func(t *testing.T) {
		page, totalPages := Paginate(products, 3, 12)
		assert.Len(t, page, 1)
		assert.Equal(t, 3, totalPages)
		assert.Equal(t, uint(25), page[0].ID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, totalPages := Paginate(products, 9, 12)
		assert.Empty(t, page)
		assert.Equal(t, 3, totalPages)
	})

	t.Run("page below one clamps to first", func(t *testing.T) {
		page, _ := Paginate(products, 0, 12)
		assert.Equal(t, uint(1), page[0].ID)
	})

	t.Run("empty catalog", func(t *testing.T) {
		page, totalPages := Paginate(nil, 1, 12)
		assert.Empty(t, page)
		assert.Equal(t, 0, totalPages)
	})
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{"single page", 1, 1, []int{1}},
		{"few pages show everything", 2, 4, []int{1, 2, 3, 4}},
		{"middle collapses both sides", 5, 10, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{"start collapses the tail", 1, 10, []int{1, 2, Ellipsis, 10}},
		{"end collapses the head", 10, 10, []int{1, Ellipsis, 9, 10}},
		{"no pages", 1, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.totalPages))
		})
	}
}
