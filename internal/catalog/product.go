package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Brand identifies a supported vendor. The set is closed: each brand has its
// own row adapter and image URL conventions.
type Brand string

const (
	BrandIkea Brand = "ikea"
	BrandJysk Brand = "jysk"
)

func ParseBrand(raw string) (Brand, error) {
	switch Brand(strings.TrimSpace(strings.ToLower(raw))) {
	case BrandIkea:
		return BrandIkea, nil
	case BrandJysk:
		return BrandJysk, nil
	default:
		return "", fmt.Errorf("unknown brand %q", raw)
	}
}

func KnownBrand(b Brand) bool {
	_, err := ParseBrand(string(b))
	return err == nil
}

type Category string

const (
	CategorySofa     Category = "sofa"
	CategoryArmchair Category = "armchair"
	CategoryChair    Category = "chair"
	CategoryTable    Category = "table"
	CategoryWardrobe Category = "wardrobe"
	CategoryDresser  Category = "dresser"
	CategoryShelf    Category = "shelf"
	CategoryBed      Category = "bed"
	CategoryLighting Category = "lighting"
	CategoryRug      Category = "rug"
	CategoryTextile  Category = "textile"
	CategoryMirror   Category = "mirror"
	CategoryDecor    Category = "decor"
	CategoryOther    Category = "other"
)

// KnownCategories lists every category the classifier can produce.
var KnownCategories = []Category{
	CategorySofa,
	CategoryArmchair,
	CategoryChair,
	CategoryTable,
	CategoryWardrobe,
	CategoryDresser,
	CategoryShelf,
	CategoryBed,
	CategoryLighting,
	CategoryRug,
	CategoryTextile,
	CategoryMirror,
	CategoryDecor,
	CategoryOther,
}

func KnownCategory(c Category) bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityOnOrder    Availability = "on_order"
	AvailabilityUnknown    Availability = "unknown"
)

// Dimensions holds physical measurements in centimeters. Partially populated
// is valid; not every product shape exposes every axis.
type Dimensions struct {
	Width    *float64
	Height   *float64
	Depth    *float64
	Length   *float64
	Diameter *float64
}

func (d *Dimensions) Empty() bool {
	if d == nil {
		return true
	}
	return d.Width == nil && d.Height == nil && d.Depth == nil && d.Length == nil && d.Diameter == nil
}

// Axes returns the populated axes keyed by name, for range checks and
// pairwise closeness comparisons.
func (d *Dimensions) Axes() map[string]float64 {
	if d == nil {
		return nil
	}
	axes := make(map[string]float64, 5)
	if d.Width != nil {
		axes["width"] = *d.Width
	}
	if d.Height != nil {
		axes["height"] = *d.Height
	}
	if d.Depth != nil {
		axes["depth"] = *d.Depth
	}
	if d.Length != nil {
		axes["length"] = *d.Length
	}
	if d.Diameter != nil {
		axes["diameter"] = *d.Diameter
	}
	return axes
}

// Product is the canonical structured form of one vendor listing. Built once
// by a row adapter; the validator and duplicate detector only read it.
type Product struct {
	ID             string
	Name           string
	Brand          Brand
	Category       Category
	CollectionName string
	StyleTags      []string
	Color          string
	Material       string

	Price            int
	ImageURL         string
	AdditionalImages []string
	AffiliateURL     string

	Dimensions *Dimensions

	Availability   Availability
	IsSeasonal     bool
	Season         string
	SearchKeywords []string
}

const idDigestHexLen = 12

// ProductID derives the natural key for a listing: the lowercased brand,
// a dash, and a truncated sha256 of the lowercased brand-collection-name
// triple. Equal triples always map to the same id across imports.
func ProductID(brand Brand, collection, name string) string {
	basis := strings.ToLower(string(brand)) + "-" + strings.ToLower(strings.TrimSpace(collection)) + "-" + strings.ToLower(strings.TrimSpace(name))
	sum := sha256.Sum256([]byte(basis))
	return strings.ToLower(string(brand)) + "-" + hex.EncodeToString(sum[:])[:idDigestHexLen]
}
