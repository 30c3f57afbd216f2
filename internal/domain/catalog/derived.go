// internal/domain/catalog/derived.go
package catalog

import (
	"math"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

// StockStatus classifies a product's availability for display
type StockStatus string

const (
	StockStatusIn  StockStatus = "In Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusOut StockStatus = "Out of Stock"
)

// DiscountPercent returns the rounded discount percentage for a product.
// A missing compare-at price, or one at or below the selling price, yields
// zero; the result is never negative.
func DiscountPercent(price upstream.Amount, compareAt *upstream.Amount) int {
	if compareAt == nil || *compareAt <= price {
		return 0
	}
	diff := compareAt.Float64() - price.Float64()
	return int(math.Round(100 * diff / compareAt.Float64()))
}

// Savings returns the absolute amount saved against the compare-at price,
// or zero when there is no positive difference.
func Savings(price upstream.Amount, compareAt *upstream.Amount) float64 {
	if compareAt == nil || *compareAt <= price {
		return 0
	}
	return compareAt.Float64() - price.Float64()
}

// ClassifyStock maps an inventory quantity and optional low-stock threshold
// to a stock status. Precedence: out of stock, then low stock, then in
// stock. A nil or zero threshold means no threshold is configured and
// disables the low-stock branch entirely.
func ClassifyStock(quantity int, lowStockThreshold *int) StockStatus {
	if quantity <= 0 {
		return StockStatusOut
	}
	if lowStockThreshold != nil && *lowStockThreshold != 0 && quantity <= *lowStockThreshold {
		return StockStatusLow
	}
	return StockStatusIn
}
