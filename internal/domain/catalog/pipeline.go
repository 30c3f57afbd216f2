// internal/domain/catalog/pipeline.go
package catalog

import (
	"sort"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

// Ellipsis marks a collapsed gap in a pager window
const Ellipsis = -1

// Filter holds the storefront's list filter inputs. Zero values mean the
// corresponding predicate is inactive.
type Filter struct {
	CategorySlug string
	MinPrice     *float64
	MaxPrice     *float64
	InStockOnly  bool
	FeaturedOnly bool
}

// Sort keys recognized by SortProducts. An unrecognized key falls back to
// id descending.
const (
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortNewest      = "newest"
	SortFeatured    = "featured"
	SortBestselling = "bestselling"
)

// ApplyFilters narrows the product list by the active predicates, applied
// in a fixed order: category, price range, in-stock, featured. The
// predicates commute, so the order only affects intermediate allocations.
func ApplyFilters(products []upstream.Product, f Filter) []upstream.Product {
	result := products

	if f.CategorySlug != "" {
		result = filterProducts(result, func(p upstream.Product) bool {
			for _, c := range p.Categories {
				if c.Slug == f.CategorySlug {
					return true
				}
			}
			return false
		})
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		result = filterProducts(result, func(p upstream.Product) bool {
			price := p.Price.Float64()
			if f.MinPrice != nil && price < *f.MinPrice {
				return false
			}
			if f.MaxPrice != nil && price > *f.MaxPrice {
				return false
			}
			return true
		})
	}

	if f.InStockOnly {
		result = filterProducts(result, func(p upstream.Product) bool {
			return p.Quantity > 0
		})
	}

	if f.FeaturedOnly {
		result = filterProducts(result, func(p upstream.Product) bool {
			return p.IsFeatured
		})
	}

	return result
}

func filterProducts(products []upstream.Product, keep func(upstream.Product) bool) []upstream.Product {
	filtered := make([]upstream.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortProducts returns a sorted copy of the product list. The bestselling
// key currently sorts identically to featured: there is no sales-volume
// signal from the backend yet, so it stays a placeholder alias.
func SortProducts(products []upstream.Product, sortKey string) []upstream.Product {
	sorted := make([]upstream.Product, len(products))
	copy(sorted, products)

	switch sortKey {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i], sorted[j]
			if !a.CreatedAt.IsZero() && !b.CreatedAt.IsZero() {
				return a.CreatedAt.After(b.CreatedAt)
			}
			// Id order stands in for insertion order when timestamps are missing
			return a.ID > b.ID
		})
	case SortFeatured, SortBestselling:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i], sorted[j]
			if a.IsFeatured != b.IsFeatured {
				return a.IsFeatured
			}
			return a.ID > b.ID
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ID > sorted[j].ID
		})
	}

	return sorted
}

// Paginate slices one fixed-size page out of the product list. Pages are
// 1-based; a page beyond the end yields an empty slice, never an
// out-of-range access. Returns the page contents and the total page count.
func Paginate(products []upstream.Product, page, pageSize int) ([]upstream.Product, int) {
	if pageSize <= 0 {
		return nil, 0
	}
	totalPages := (len(products) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(products) {
		return []upstream.Product{}, totalPages
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], totalPages
}

// PageWindow builds the pager control's page list: always page 1 and the
// last page, plus pages within one step of the current page, with each gap
// collapsed into a single Ellipsis marker.
func PageWindow(current, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}

	window := make([]int, 0, totalPages)
	lastShown := 0
	for page := 1; page <= totalPages; page++ {
		show := page == 1 || page == totalPages ||
			(page >= current-1 && page <= current+1)
		if !show {
			continue
		}
		if lastShown != 0 && page-lastShown > 1 {
			window = append(window, Ellipsis)
		}
		window = append(window, page)
		lastShown = page
	}
	return window
}
