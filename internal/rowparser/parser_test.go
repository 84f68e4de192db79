package rowparser

import (
	"strings"
	"testing"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
)

const affiliateBase = "https://vybav.it/go"

func TestParseIkeaRow(t *testing.T) {
	t.Parallel()

	p := New(VendorIkea, affiliateBase)
	row := NewRawRow(
		[]string{"Name", "Price", "Image", "Series", "Stock"},
		[]string{"BILLY Police 80x28x202", "1 490 Kč", "https://www.ikea.com/cz/images/products/billy.jpg", "BILLY", "Skladem"},
	)

	product := p.Parse(row)
	if product == nil {
		t.Fatal("expected a candidate")
	}
	if product.Brand != catalog.BrandIkea {
		t.Fatalf("unexpected brand: %q", product.Brand)
	}
	if product.Category != catalog.CategoryShelf {
		t.Fatalf("unexpected category: %q", product.Category)
	}
	if product.Price != 1490 {
		t.Fatalf("unexpected price: %d", product.Price)
	}
	if product.Dimensions == nil || product.Dimensions.Width == nil || *product.Dimensions.Width != 80 {
		t.Fatalf("unexpected dimensions: %+v", product.Dimensions)
	}
	if *product.Dimensions.Height != 28 || *product.Dimensions.Depth != 202 {
		t.Fatalf("unexpected height/depth: %+v", product.Dimensions)
	}
	if !strings.HasPrefix(product.ID, "ikea-") || len(product.ID) != len("ikea-")+12 {
		t.Fatalf("unexpected id shape: %q", product.ID)
	}
	if product.Availability != catalog.AvailabilityInStock {
		t.Fatalf("unexpected availability: %q", product.Availability)
	}
	if product.CollectionName != "BILLY" {
		t.Fatalf("unexpected collection: %q", product.CollectionName)
	}
	if product.AffiliateURL != affiliateBase+"/ikea/"+product.ID {
		t.Fatalf("unexpected affiliate URL: %q", product.AffiliateURL)
	}
}

func TestParseRejectsPlaceholderImage(t *testing.T) {
	t.Parallel()

	p := New(VendorIkea, affiliateBase)
	row := NewRawRow(
		[]string{"name", "price", "image"},
		[]string{"BILLY Police bílá", "1 490 Kč", "https://example.com/placeholder.jpg"},
	)
	if product := p.Parse(row); product != nil {
		t.Fatalf("placeholder image must make the row unsalvageable, got %+v", product)
	}
}

func TestParseRejectsJunkNames(t *testing.T) {
	t.Parallel()

	p := New(VendorIkea, affiliateBase)
	junk := []string{
		"",
		"ab",
		"+2 další varianty",
		"Doprava zdarma nad 999 Kč",
		"Akční nabídka týdne",
	}
	for _, name := range junk {
		row := NewRawRow(
			[]string{"name", "price", "image"},
			[]string{name, "1 490 Kč", "https://www.ikea.com/cz/images/products/x.jpg"},
		)
		if product := p.Parse(row); product != nil {
			t.Fatalf("junk name %q must be rejected, got %+v", name, product)
		}
	}
}

func TestParseRejectsMissingPrice(t *testing.T) {
	t.Parallel()

	p := New(VendorIkea, affiliateBase)
	row := NewRawRow(
		[]string{"name", "price", "image"},
		[]string{"BILLY Police bílá", "cena na dotaz", "https://www.ikea.com/cz/images/products/x.jpg"},
	)
	if product := p.Parse(row); product != nil {
		t.Fatal("row without a parseable price must be rejected")
	}
}

func TestPickNamePrefersDimensionBearing(t *testing.T) {
	t.Parallel()

	p := New(VendorIkea, affiliateBase)
	row := NewRawRow(
		[]string{"name", "title", "price", "image"},
		[]string{"BILLY Police", "BILLY Police 80x28x202 bílá", "1 490 Kč", "https://www.ikea.com/cz/images/products/x.jpg"},
	)
	product := p.Parse(row)
	if product == nil {
		t.Fatal("expected a candidate")
	}
	if product.Name != "BILLY Police 80x28x202 bílá" {
		t.Fatalf("dimension-bearing candidate must win: %q", product.Name)
	}
}

func TestParseJyskRow(t *testing.T) {
	t.Parallel()

	p := New(VendorJysk, affiliateBase)
	row := NewRawRow(
		[]string{"product_name", "price", "image_url", "collection", "availability", "product_url"},
		[]string{"Deka TERJE fleece šedá", "249 Kč", "https://jysk.cz/getimage/98765", "TERJE", "Není skladem", "https://jysk.cz/deka-terje"},
	)

	product := p.Parse(row)
	if product == nil {
		t.Fatal("expected a candidate")
	}
	if product.Brand != catalog.BrandJysk {
		t.Fatalf("unexpected brand: %q", product.Brand)
	}
	if product.Category != catalog.CategoryTextile {
		t.Fatalf("unexpected category: %q", product.Category)
	}
	if product.Color != "gray" {
		t.Fatalf("unexpected color: %q", product.Color)
	}
	if product.Availability != catalog.AvailabilityOutOfStock {
		t.Fatalf("unexpected availability: %q", product.Availability)
	}
	if !strings.Contains(product.AffiliateURL, "u=https%3A%2F%2Fjysk.cz%2Fdeka-terje") {
		t.Fatalf("affiliate URL must wrap the product URL: %q", product.AffiliateURL)
	}
}

func TestParseCleanPassthrough(t *testing.T) {
	t.Parallel()

	id := catalog.ProductID(catalog.BrandIkea, "BILLY", "BILLY Police bílá")
	p := New(VendorClean, affiliateBase)
	row := NewRawRow(
		[]string{"id", "name", "brand", "category", "collection_name", "price", "image_url", "affiliate_url", "width", "height", "color", "material", "availability_status"},
		[]string{id, "BILLY Police bílá", "ikea", "shelf", "BILLY", "1490", "https://www.ikea.com/cz/images/products/billy.jpg", affiliateBase + "/ikea/" + id, "80", "202", "white", "particleboard", "in_stock"},
	)

	product := p.Parse(row)
	if product == nil {
		t.Fatal("expected passthrough candidate")
	}
	if product.ID != id {
		t.Fatalf("clean rows must keep their id: %q", product.ID)
	}
	if product.Category != catalog.CategoryShelf {
		t.Fatalf("unexpected category: %q", product.Category)
	}
	if product.Price != 1490 {
		t.Fatalf("unexpected price: %d", product.Price)
	}
	if product.Dimensions == nil || product.Dimensions.Width == nil || *product.Dimensions.Width != 80 {
		t.Fatalf("canonical dimensions must pass through: %+v", product.Dimensions)
	}
	if product.Color != "white" || product.Material != "particleboard" {
		t.Fatalf("enrichment must pass through: %q %q", product.Color, product.Material)
	}
	if product.Availability != catalog.AvailabilityInStock {
		t.Fatalf("unexpected availability: %q", product.Availability)
	}
}

func TestParseCleanDoesNotRederiveMetadata(t *testing.T) {
	t.Parallel()

	id := catalog.ProductID(catalog.BrandIkea, "BILLY", "BILLY Police bílá 80x28x202")
	p := New(VendorClean, affiliateBase)
	row := NewRawRow(
		[]string{"id", "name", "brand", "price", "image_url", "affiliate_url"},
		[]string{id, "BILLY Police bílá 80x28x202", "ikea", "1490", "https://www.ikea.com/cz/images/products/billy.jpg", affiliateBase + "/ikea/" + id},
	)

	product := p.Parse(row)
	if product == nil {
		t.Fatal("expected passthrough candidate")
	}
	if product.Category != "" {
		t.Fatalf("missing category must stay empty, got %q", product.Category)
	}
	if len(product.StyleTags) != 0 || len(product.SearchKeywords) != 0 {
		t.Fatalf("missing tags must stay empty, got %v %v", product.StyleTags, product.SearchKeywords)
	}
	if product.Availability != catalog.AvailabilityUnknown {
		t.Fatalf("missing availability must default to unknown, got %q", product.Availability)
	}
	if product.Dimensions == nil || product.Dimensions.Width == nil || *product.Dimensions.Width != 80 {
		t.Fatalf("missing dimensions must be re-derived from the name: %+v", product.Dimensions)
	}
}

func TestCleanRowDetectedUnderAnyVendor(t *testing.T) {
	t.Parallel()

	id := catalog.ProductID(catalog.BrandJysk, "", "Deka TERJE")
	p := New(VendorIkea, affiliateBase)
	row := NewRawRow(
		[]string{"id", "name", "brand", "price", "image_url", "affiliate_url"},
		[]string{id, "Deka TERJE", "jysk", "249", "https://jysk.cz/getimage/1", affiliateBase + "/jysk/" + id},
	)

	product := p.Parse(row)
	if product == nil {
		t.Fatal("expected passthrough candidate")
	}
	if product.Brand != catalog.BrandJysk {
		t.Fatalf("clean row brand column must win over the configured vendor: %q", product.Brand)
	}
}

func TestRawRowAccess(t *testing.T) {
	t.Parallel()

	row := NewRawRow([]string{" Name ", "PRICE"}, []string{"BILLY", "1490"})
	if got := row.Get("name"); got != "BILLY" {
		t.Fatalf("column lookup must be case-insensitive and trimmed: %q", got)
	}
	if got := row.First("missing", "price"); got != "1490" {
		t.Fatalf("First must return the first populated candidate: %q", got)
	}
	if got := row.First("missing", "absent"); got != "" {
		t.Fatalf("First must return empty when nothing matches: %q", got)
	}
}
