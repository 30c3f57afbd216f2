package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

func newBrowseService(t *testing.T, productsJSON string) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": ` + productsJSON + `}`))
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			BaseURL:        srv.URL,
			RequestTimeout: 5 * time.Second,
		},
		Catalog: config.CatalogConfig{PageSize: 12},
	}
	return NewService(upstream.NewClient(cfg), cfg)
}

func TestBrowseHidesUnpublishedProducts(t *testing.T) {
	service := newBrowseService(t, `[
		{"id": 1, "name": "Visible", "price": 1000, "quantity": 5, "isPublished": true},
		{"id": 2, "name": "Draft", "price": 2000, "quantity": 5, "isPublished": false}
	]`)

	resp, err := service.Browse(context.Background(), "", &BrowseRequest{Page: 1})
	require.NoError(t, err)

	require.Len(t, resp.Products, 1)
	assert.Equal(t, uint(1), resp.Products[0].ID)
	assert.Equal(t, 1, resp.TotalItems)
}

func TestBrowsePaginatesWithFixedPageSize(t *testing.T) {
	entries := make([]string, 30)
	for i := range entries {
		entries[i] = fmt.Sprintf(
			`{"id": %d, "name": "P%d", "price": 100, "quantity": 1, "isPublished": true}`,
			i+1, i+1)
	}
	service := newBrowseService(t, "["+strings.Join(entries, ",")+"]")

	resp, err := service.Browse(context.Background(), "", &BrowseRequest{Page: 2})
	require.NoError(t, err)

	assert.Len(t, resp.Products, 12)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 12, resp.PageSize)
	assert.Equal(t, 30, resp.TotalItems)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, resp.PageWindow)

	// Default sort is id descending; page 2 starts after the top 12
	assert.Equal(t, uint(18), resp.Products[0].ID)
}

func TestBrowseAppliesFiltersBeforePagination(t *testing.T) {
	service := newBrowseService(t, `[
		{"id": 1, "name": "In", "price": 1000, "quantity": 5, "isPublished": true},
		{"id": 2, "name": "Out", "price": 1000, "quantity": 0, "isPublished": true}
	]`)

	resp, err := service.Browse(context.Background(), "", &BrowseRequest{
		Filter: Filter{InStockOnly: true},
		Page:   1,
	})
	require.NoError(t, err)

	require.Len(t, resp.Products, 1)
	assert.Equal(t, 1, resp.TotalItems)
	assert.Equal(t, 1, resp.TotalPages)
}
