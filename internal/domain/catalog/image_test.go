package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCard(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare url passes through",
			raw:  "https://cdn.example.com/shoe.jpg",
			want: "https://cdn.example.com/shoe.jpg",
		},
		{
			name: "http url passes through",
			raw:  "http://cdn.example.com/shoe.jpg",
			want: "http://cdn.example.com/shoe.jpg",
		},
		{
			name: "json object is unwrapped",
			raw:  `{"url":"https://cdn.example.com/shoe.jpg"}`,
			want: "https://cdn.example.com/shoe.jpg",
		},
		{
			name: "doubly encoded object is unwrapped twice",
			raw:  `{"url":"{\"url\":\"https://cdn.example.com/shoe.jpg\"}"}`,
			want: "https://cdn.example.com/shoe.jpg",
		},
		{
			name: "empty falls back to placeholder",
			raw:  "",
			want: PlaceholderImage,
		},
		{
			name: "garbage falls back to placeholder",
			raw:  "not-a-url-and-not-json",
			want: PlaceholderImage,
		},
		{
			name: "json without url falls back to placeholder",
			raw:  `{"src":"https://cdn.example.com/shoe.jpg"}`,
			want: PlaceholderImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCard(tt.raw))
		})
	}
}

func TestNormalizeDetail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare url passes through",
			raw:  "https://cdn.example.com/shoe.jpg",
			want: "https://cdn.example.com/shoe.jpg",
		},
		{
			name: "json object is unwrapped",
			raw:  `{"url":"https://cdn.example.com/shoe.jpg"}`,
			want: "https://cdn.example.com/shoe.jpg",
		},
		{
			name: "empty falls back to placeholder",
			raw:  "",
			want: PlaceholderImage,
		},
		{
			// The detail surface keeps the raw value instead of hiding
			// it behind the placeholder like the card surface does.
			name: "garbage falls back to the raw value",
			raw:  "not-a-url-and-not-json",
			want: "not-a-url-and-not-json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDetail(tt.raw))
		})
	}
}

func TestCardThumbnail(t *testing.T) {
	assert.Equal(t, PlaceholderImage, CardThumbnail(nil))
	assert.Equal(t, PlaceholderImage, CardThumbnail([]string{}))

	// Only the first element counts, even when a later one is usable
	urls := []string{"broken", "https://cdn.example.com/real.jpg"}
	assert.Equal(t, PlaceholderImage, CardThumbnail(urls))

	urls = []string{"https://cdn.example.com/first.jpg", "https://cdn.example.com/second.jpg"}
	assert.Equal(t, "https://cdn.example.com/first.jpg", CardThumbnail(urls))
}

func TestDetailImages(t *testing.T) {
	assert.Equal(t, []string{PlaceholderImage}, DetailImages(nil))

	got := DetailImages([]string{
		"https://cdn.example.com/a.jpg",
		`{"url":"https://cdn.example.com/b.jpg"}`,
		"broken",
	})
	assert.Equal(t, []string{
		"https://cdn.example.com/a.jpg",
		"https://cdn.example.com/b.jpg",
		"broken",
	}, got)
}
