package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

func amountPtr(v float64) *upstream.Amount {
	a := upstream.Amount(v)
	return &a
}

func intPtr(v int) *int {
	return &v
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		compareAt *upstream.Amount
		want      int
	}{
		{"no compare-at price", 5000, nil, 0},
		{"compare-at equals price", 5000, amountPtr(5000), 0},
		{"compare-at below price", 5000, amountPtr(4000), 0},
		{"rounded down", 10000, amountPtr(12000), 17},
		{"rounded up", 7500, amountPtr(10000), 25},
		{"half off", 5000, amountPtr(10000), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountPercent(upstream.Amount(tt.price), tt.compareAt)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSavings(t *testing.T) {
	assert.Equal(t, 2000.0, Savings(upstream.Amount(10000), amountPtr(12000)))
	assert.Equal(t, 0.0, Savings(upstream.Amount(5000), nil))
	assert.Equal(t, 0.0, Savings(upstream.Amount(5000), amountPtr(4000)))
}

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold *int
		want      StockStatus
	}{
		{"zero quantity is out", 0, intPtr(5), StockStatusOut},
		{"negative quantity is out", -1, intPtr(5), StockStatusOut},
		{"at threshold is low", 5, intPtr(5), StockStatusLow},
		{"below threshold is low", 3, intPtr(5), StockStatusLow},
		{"above threshold is in", 6, intPtr(5), StockStatusIn},
		{"nil threshold disables low stock", 1, nil, StockStatusIn},
		{"zero threshold disables low stock", 1, intPtr(0), StockStatusIn},
		{"out of stock wins over threshold", 0, intPtr(0), StockStatusOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.quantity, tt.threshold))
		})
	}
}

// The backend serializes prices as decimal strings and thresholds as
// numbers; the derived values must come out the same either way.
func TestDerivedStateFromWirePayload(t *testing.T) {
	var discounted upstream.Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 1,
		"price": "10000",
		"compareAtPrice": "12000",
		"quantity": 3,
		"lowStockThreshold": 5
	}`), &discounted))

	assert.Equal(t, 17, DiscountPercent(discounted.Price, discounted.CompareAtPrice))
	assert.Equal(t, 2000.0, Savings(discounted.Price, discounted.CompareAtPrice))
	assert.Equal(t, StockStatusLow, ClassifyStock(discounted.Quantity, discounted.LowStockThreshold))

	var plain upstream.Product
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 2,
		"price": 5000,
		"compareAtPrice": null,
		"quantity": 0
	}`), &plain))

	assert.Equal(t, 0, DiscountPercent(plain.Price, plain.CompareAtPrice))
	assert.Equal(t, 0.0, Savings(plain.Price, plain.CompareAtPrice))
	assert.Equal(t, StockStatusOut, ClassifyStock(plain.Quantity, plain.LowStockThreshold))
}
