package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `4999.5`, 4999.5},
		{"decimal string", `"10000"`, 10000},
		{"decimal string with fraction", `"99.99"`, 99.99},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))
			assert.Equal(t, tt.want, a.Float64())
		})
	}

	t.Run("non numeric string fails", func(t *testing.T) {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(`"free"`), &a))
	})
}

func TestMetadataUnmarshal(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		var m Metadata
		require.NoError(t, json.Unmarshal([]byte(`{"color":"red","weightKg":2}`), &m))
		assert.Equal(t, "red", m["color"])
	})

	t.Run("json encoded string", func(t *testing.T) {
		var m Metadata
		require.NoError(t, json.Unmarshal([]byte(`"{\"color\":\"red\"}"`), &m))
		assert.Equal(t, "red", m["color"])
	})

	t.Run("null degrades to nil", func(t *testing.T) {
		var m Metadata
		require.NoError(t, json.Unmarshal([]byte(`null`), &m))
		assert.Nil(t, m)
	})

	t.Run("malformed string degrades to nil", func(t *testing.T) {
		var m Metadata
		require.NoError(t, json.Unmarshal([]byte(`"not json"`), &m))
		assert.Nil(t, m)
	})

	t.Run("wrong type degrades to nil", func(t *testing.T) {
		var m Metadata
		require.NoError(t, json.Unmarshal([]byte(`[1,2,3]`), &m))
		assert.Nil(t, m)
	})
}
