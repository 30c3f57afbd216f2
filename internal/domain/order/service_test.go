package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

func TestCanBeCancelled(t *testing.T) {
	tests := []struct {
		status upstream.OrderStatus
		want   bool
	}{
		{upstream.OrderStatusDraft, true},
		{upstream.OrderStatusPending, true},
		{upstream.OrderStatusProcessing, true},
		{upstream.OrderStatusShipped, false},
		{upstream.OrderStatusDelivered, false},
		{upstream.OrderStatusCompleted, false},
		{upstream.OrderStatusCancelled, false},
		{upstream.OrderStatusRefunded, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := CanBeCancelled(upstream.Order{Status: tt.status})
			assert.Equal(t, tt.want, got)
		})
	}
}
