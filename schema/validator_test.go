package payloadschema

import (
	"encoding/json"
	"testing"

	"github.com/Michwuanquana/vybav.it-sub000/internal/rowparser"
)

func validPayload() map[string]any {
	return map[string]any{
		"payload_version": "v1",
		"id":              "ikea-0123456789ab",
		"name":            "BILLY Police bílá",
		"brand":           "ikea",
		"category":        "shelf",
		"price":           1490,
		"image_url":       "https://www.ikea.com/cz/images/products/billy.jpg",
		"affiliate_url":   "https://vybav.it/go/ikea/ikea-0123456789ab",
	}
}

func marshal(t *testing.T, payload map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return raw
}

func TestValidateProductPayload(t *testing.T) {
	t.Parallel()

	item, err := ValidateProductPayload(marshal(t, validPayload()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "ikea-0123456789ab" {
		t.Fatalf("unexpected id: %q", item.ID)
	}
	if item.Price != 1490 {
		t.Fatalf("unexpected price: %d", item.Price)
	}
}

func TestValidateProductPayloadFromParsedCandidate(t *testing.T) {
	t.Parallel()

	p := rowparser.New(rowparser.VendorIkea, "https://vybav.it/go")
	row := rowparser.NewRawRow(
		[]string{"Name", "Price", "Image", "Series", "Stock"},
		[]string{"BILLY Police bílá 80x28x202", "1 490 Kč", "https://www.ikea.com/cz/images/products/billy.jpg", "BILLY", "Skladem"},
	)
	product := p.Parse(row)
	if product == nil {
		t.Fatal("expected a candidate")
	}

	payload := map[string]any{
		"payload_version": "v1",
		"id":              product.ID,
		"name":            product.Name,
		"brand":           string(product.Brand),
		"category":        string(product.Category),
		"collection_name": product.CollectionName,
		"price":           product.Price,
		"image_url":       product.ImageURL,
		"affiliate_url":   product.AffiliateURL,
		"availability":    string(product.Availability),
	}
	if len(product.StyleTags) > 0 {
		payload["style_tags"] = product.StyleTags
	}
	if len(product.SearchKeywords) > 0 {
		payload["search_keywords"] = product.SearchKeywords
	}
	if product.Color != "" {
		payload["color"] = product.Color
	}
	if product.Material != "" {
		payload["material"] = product.Material
	}
	if axes := product.Dimensions.Axes(); len(axes) > 0 {
		payload["dimensions"] = axes
	}

	item, err := ValidateProductPayload(marshal(t, payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != product.ID {
		t.Fatalf("id changed across the round trip: %q vs %q", item.ID, product.ID)
	}
	if item.Price != product.Price {
		t.Fatalf("price changed across the round trip: %d vs %d", item.Price, product.Price)
	}
}

func TestValidateProductPayloadMissingRequired(t *testing.T) {
	t.Parallel()

	payload := validPayload()
	delete(payload, "image_url")
	if _, err := ValidateProductPayload(marshal(t, payload)); err == nil {
		t.Fatal("expected schema failure for missing image_url")
	}
}

func TestValidateProductPayloadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	payload := validPayload()
	payload["surprise"] = true
	if _, err := ValidateProductPayload(marshal(t, payload)); err == nil {
		t.Fatal("expected schema failure for unknown field")
	}
}

func TestValidateProductPayloadBrandPrefix(t *testing.T) {
	t.Parallel()

	payload := validPayload()
	payload["brand"] = "jysk"
	if _, err := ValidateProductPayload(marshal(t, payload)); err == nil {
		t.Fatal("expected semantic failure for brand-mismatched id")
	}
}

func TestValidateProductPayloadSeasonNeedsFlag(t *testing.T) {
	t.Parallel()

	payload := validPayload()
	payload["season"] = "christmas"
	if _, err := ValidateProductPayload(marshal(t, payload)); err == nil {
		t.Fatal("expected semantic failure for season without is_seasonal")
	}

	payload["is_seasonal"] = true
	if _, err := ValidateProductPayload(marshal(t, payload)); err != nil {
		t.Fatalf("unexpected error with is_seasonal set: %v", err)
	}
}

func TestValidateProductPayloadRejectsTrailingContent(t *testing.T) {
	t.Parallel()

	raw := append(marshal(t, validPayload()), []byte("{}")...)
	if _, err := ValidateProductPayload(raw); err == nil {
		t.Fatal("expected failure for trailing JSON content")
	}
}

func TestValidateProductPayloadRejectsNegativePrice(t *testing.T) {
	t.Parallel()

	payload := validPayload()
	payload["price"] = -5
	if _, err := ValidateProductPayload(marshal(t, payload)); err == nil {
		t.Fatal("expected schema failure for negative price")
	}
}
