package extract

import (
	"testing"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
)

func TestValidImageURL(t *testing.T) {
	t.Parallel()

	if !ValidImageURL(catalog.BrandIkea, "https://www.ikea.com/cz/images/products/billy-bookcase.jpg") {
		t.Fatal("valid ikea image URL rejected")
	}
	if !ValidImageURL(catalog.BrandJysk, "https://jysk.cz/getimage/12345") {
		t.Fatal("valid jysk image URL rejected")
	}
}

func TestValidImageURLRejectsPlaceholders(t *testing.T) {
	t.Parallel()

	rejected := []string{
		"https://example.com/placeholder.jpg",
		"https://www.ikea.com/images/no-image.png",
		"https://jysk.cz/getimage/default.jpg",
		"",
	}
	for _, raw := range rejected {
		if ValidImageURL(catalog.BrandIkea, raw) {
			t.Fatalf("placeholder URL accepted: %q", raw)
		}
	}
}

func TestValidImageURLBrandFormat(t *testing.T) {
	t.Parallel()

	// Right host, wrong path segment.
	if ValidImageURL(catalog.BrandIkea, "https://www.ikea.com/cz/products/billy.jpg") {
		t.Fatal("ikea URL without the images path accepted")
	}
	// Wrong brand host.
	if ValidImageURL(catalog.BrandJysk, "https://www.ikea.com/cz/images/billy.jpg") {
		t.Fatal("ikea URL accepted for jysk brand")
	}
	if ValidImageURL(catalog.BrandIkea, "ftp://www.ikea.com/cz/images/billy.jpg") {
		t.Fatal("non-http scheme accepted")
	}
}
