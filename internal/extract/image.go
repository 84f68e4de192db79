package extract

import (
	"net/url"
	"strings"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
)

// Placeholder assets vendors leave behind when a listing has no real photo.
var placeholderImagePatterns = []string{
	"placeholder",
	"no-image",
	"noimage",
	"no_image",
	"missing",
	"default.jpg",
	"default.png",
	"example.com",
}

// ValidImageURL checks a primary image URL against the brand's hosting
// conventions. A URL that fails here makes the whole row unsalvageable.
func ValidImageURL(brand catalog.Brand, rawURL string) bool {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return false
	}

	lowered := strings.ToLower(trimmed)
	for _, pattern := range placeholderImagePatterns {
		if strings.Contains(lowered, pattern) {
			return false
		}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	path := strings.ToLower(parsed.EscapedPath())

	switch brand {
	case catalog.BrandIkea:
		return strings.Contains(host, "ikea.") && strings.Contains(path, "/images/")
	case catalog.BrandJysk:
		return strings.Contains(host, "jysk.") && strings.Contains(path, "/getimage/")
	default:
		return false
	}
}
