package rowparser

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
	"github.com/Michwuanquana/vybav.it-sub000/internal/extract"
)

// Vendor selects the row adapter. The set is closed; adding a vendor means
// writing a new adapter, not configuring an open plugin point.
type Vendor string

const (
	VendorIkea Vendor = "ikea"
	VendorJysk Vendor = "jysk"
	// VendorClean marks a previously exported, already-curated catalog that
	// only needs the passthrough path.
	VendorClean Vendor = "clean"
)

func ParseVendor(raw string) (Vendor, error) {
	switch Vendor(strings.TrimSpace(strings.ToLower(raw))) {
	case VendorIkea:
		return VendorIkea, nil
	case VendorJysk:
		return VendorJysk, nil
	case VendorClean:
		return VendorClean, nil
	default:
		return "", fmt.Errorf("unknown vendor %q", raw)
	}
}

// Parser turns raw vendor rows into canonical products.
type Parser struct {
	vendor        Vendor
	affiliateBase string
}

func New(vendor Vendor, affiliateBase string) *Parser {
	return &Parser{
		vendor:        vendor,
		affiliateBase: strings.TrimRight(strings.TrimSpace(affiliateBase), "/"),
	}
}

// Parse maps one raw row to a product candidate. A nil result means the row
// is unsalvageable (missing name, price or image) and should be skipped.
func (p *Parser) Parse(row RawRow) *catalog.Product {
	if isCleanRow(row) {
		return p.parseClean(row)
	}

	switch p.vendor {
	case VendorIkea:
		return p.parseIkea(row)
	case VendorJysk:
		return p.parseJysk(row)
	default:
		return nil
	}
}

// A row that already carries a populated id, price and image URL came from a
// previous clean export and skips the vendor heuristics.
func isCleanRow(row RawRow) bool {
	return row.Get("id") != "" && row.Get("price") != "" && row.Get("image_url") != ""
}

func (p *Parser) parseClean(row RawRow) *catalog.Product {
	name := strings.TrimSpace(row.Get("name"))
	if !usableName(name) {
		return nil
	}
	price := extract.Price(row.Get("price"))
	if price == nil {
		return nil
	}
	imageURL := strings.TrimSpace(row.Get("image_url"))
	if imageURL == "" {
		return nil
	}

	brand, err := catalog.ParseBrand(row.Get("brand"))
	if err != nil {
		return nil
	}

	product := &catalog.Product{
		ID:               row.Get("id"),
		Name:             name,
		Brand:            brand,
		Category:         catalog.Category(row.Get("category")),
		CollectionName:   row.Get("collection_name"),
		StyleTags:        splitList(row.Get("style_tags")),
		Color:            row.Get("color"),
		Material:         row.Get("material"),
		Price:            *price,
		ImageURL:         imageURL,
		AdditionalImages: splitList(row.Get("additional_images")),
		AffiliateURL:     row.Get("affiliate_url"),
		Availability:     catalog.Availability(row.Get("availability_status")),
		Season:           row.Get("season"),
		SearchKeywords:   splitList(row.Get("search_keywords")),
	}
	product.IsSeasonal = product.Season != "" || strings.EqualFold(row.Get("is_seasonal"), "true")
	if product.Availability == "" {
		product.Availability = catalog.AvailabilityUnknown
	}

	// The export is authoritative for everything it carries. Absent category
	// or enrichment surfaces as validation findings rather than re-derived
	// values. Re-derivation is limited to missing dimensions.
	product.Dimensions = dimensionsFromCleanRow(row)
	if product.Dimensions == nil {
		product.Dimensions = extract.Dimensions(name)
	}

	return product
}

func dimensionsFromCleanRow(row RawRow) *catalog.Dimensions {
	d := &catalog.Dimensions{
		Width:    parseAxis(row.Get("width")),
		Height:   parseAxis(row.Get("height")),
		Depth:    parseAxis(row.Get("depth")),
		Length:   parseAxis(row.Get("length")),
		Diameter: parseAxis(row.Get("diameter")),
	}
	if d.Empty() {
		return nil
	}
	return d
}

func parseAxis(raw string) *float64 {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if normalized == "" {
		return nil
	}
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &value
}

var (
	continuationMarkerRe = regexp.MustCompile(`^\+\d+`)

	// Marketing fragments that leak into name columns of some export batches.
	junkNamePhrases = []string{
		"doprava zdarma",
		"akční nabídka",
		"nejprodávanější",
		"novinka týdne",
	}
)

func usableName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len([]rune(trimmed)) < 3 {
		return false
	}
	if continuationMarkerRe.MatchString(trimmed) {
		return false
	}
	lowered := strings.ToLower(trimmed)
	for _, phrase := range junkNamePhrases {
		if strings.Contains(lowered, phrase) {
			return false
		}
	}
	return true
}

// pickName selects the product name among drifted candidate columns. A
// candidate containing a dimension-like substring is preferred: it is more
// likely the full product title than a marketing fragment.
func pickName(row RawRow, columns []string) string {
	var first string
	for _, column := range columns {
		value := row.Get(column)
		if !usableName(value) {
			continue
		}
		if extract.Dimensions(value) != nil {
			return value
		}
		if first == "" {
			first = value
		}
	}
	return first
}

// buildProduct composes the attribute extractors over the chosen texts. The
// full row is the fallback search space when the primary text yields nothing.
func (p *Parser) buildProduct(brand catalog.Brand, row RawRow, name, series, stockText, imageURL, productURL string, extraImages []string) *catalog.Product {
	price := extract.Price(row.First("price", "cena", "price_czk", "cena_kc"))
	if price == nil {
		return nil
	}
	if !extract.ValidImageURL(brand, imageURL) {
		return nil
	}

	dimensions := extract.Dimensions(name)
	if dimensions == nil {
		dimensions = extract.DimensionsFromRow(row.Values())
	}

	material := extract.Material(name + " " + series)
	if material == "" {
		for _, value := range row.Values() {
			if material = extract.Material(value); material != "" {
				break
			}
		}
	}

	category := extract.Category(name)
	color := extract.Color(name + " " + series)
	styles := extract.Styles(name, series)
	season, seasonal := extract.Seasonal(name)

	product := &catalog.Product{
		ID:               catalog.ProductID(brand, series, name),
		Name:             name,
		Brand:            brand,
		Category:         category,
		CollectionName:   series,
		StyleTags:        styles,
		Color:            color,
		Material:         material,
		Price:            *price,
		ImageURL:         strings.TrimSpace(imageURL),
		AdditionalImages: extraImages,
		Dimensions:       dimensions,
		Availability:     extract.Availability(stockText),
		IsSeasonal:       seasonal,
		Season:           season,
	}
	product.AffiliateURL = p.affiliateURL(brand, product.ID, productURL)
	product.SearchKeywords = extract.SearchKeywords(name, series, string(category), color, material)
	return product
}

func (p *Parser) affiliateURL(brand catalog.Brand, productID, productURL string) string {
	base := p.affiliateBase
	if base == "" {
		base = "https://vybav.it/go"
	}
	if trimmed := strings.TrimSpace(productURL); trimmed != "" {
		return base + "?b=" + string(brand) + "&u=" + url.QueryEscape(trimmed)
	}
	return base + "/" + string(brand) + "/" + productID
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '|' || r == ';'
	})
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}
