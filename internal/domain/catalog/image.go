// internal/domain/catalog/image.go
package catalog

import (
	"encoding/json"
	"strings"
)

// PlaceholderImage is shown whenever a product has no usable image
const PlaceholderImage = "/images/placeholder-product.png"

type encodedImage struct {
	URL string `json:"url"`
}

// unwrapImageURL decodes the inconsistently shaped image field. A value is
// either a bare URL, a JSON object with a url field, or a doubly encoded
// JSON string produced by a buggy write path. Returns "" when no usable
// url can be extracted.
func unwrapImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}

	var outer encodedImage
	if err := json.Unmarshal([]byte(raw), &outer); err != nil || outer.URL == "" {
		return ""
	}

	// The url field may itself be a JSON-encoded {url: ...} object
	var inner encodedImage
	if err := json.Unmarshal([]byte(outer.URL), &inner); err == nil && inner.URL != "" {
		return inner.URL
	}

	return outer.URL
}

// NormalizeDetail resolves an image value for the product detail view.
// Unusable non-empty input falls back to the raw string itself. This
// diverges from NormalizeCard on purpose; the two surfaces have always
// behaved differently and unifying them needs product confirmation.
func NormalizeDetail(raw string) string {
	if raw == "" {
		return PlaceholderImage
	}
	if url := unwrapImageURL(raw); url != "" {
		return url
	}
	return raw
}

// NormalizeCard resolves an image value for grid and card rendering.
// Unusable input falls back to the placeholder.
func NormalizeCard(raw string) string {
	if raw == "" {
		return PlaceholderImage
	}
	if url := unwrapImageURL(raw); url != "" {
		return url
	}
	return PlaceholderImage
}

// CardThumbnail resolves the thumbnail for a card: only the first element
// of the image list is considered.
func CardThumbnail(imageUrls []string) string {
	if len(imageUrls) == 0 {
		return PlaceholderImage
	}
	return NormalizeCard(imageUrls[0])
}

// DetailImages resolves every image for the detail view's thumbnail strip
func DetailImages(imageUrls []string) []string {
	if len(imageUrls) == 0 {
		return []string{PlaceholderImage}
	}
	images := make([]string, len(imageUrls))
	for i, raw := range imageUrls {
		images[i] = NormalizeDetail(raw)
	}
	return images
}
