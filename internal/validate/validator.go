package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
	"github.com/Michwuanquana/vybav.it-sub000/internal/extract"
)

// Severity classifies a finding. Blocking findings indicate parser
// malfunction and halt the entire run; advisory findings are vendor
// sloppiness and only get logged.
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityAdvisory Severity = "advisory"
)

// Finding is one data defect on one field of a candidate.
type Finding struct {
	Field    string
	Value    string
	Message  string
	Severity Severity
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s=%q: %s", f.Severity, f.Field, f.Value, f.Message)
}

const (
	minNameLen     = 3
	maxNameLen     = 150
	minAxisCm      = 0.1
	maxAxisCm      = 1000
	maxLengthCm    = 10000
	maxPlaintextID = 64
)

var productIDRe = regexp.MustCompile(`^[a-z]+-[0-9a-f]{12}$`)

type priceBand struct {
	min int
	max int
}

// Plausible price bands in CZK per category. Violations are advisory since
// genuine outliers exist.
var categoryPriceBands = map[catalog.Category]priceBand{
	catalog.CategorySofa:     {1000, 150000},
	catalog.CategoryBed:      {2000, 120000},
	catalog.CategoryWardrobe: {1500, 100000},
	catalog.CategoryTable:    {500, 80000},
	catalog.CategoryLighting: {20, 50000},
	catalog.CategoryRug:      {200, 60000},
	catalog.CategoryTextile:  {50, 20000},
	catalog.CategoryDecor:    {20, 30000},
}

// Product runs every check group against a candidate and collects all
// findings; nothing short-circuits, so the operator sees the full defect
// picture in one pass.
func Product(p *catalog.Product) []Finding {
	var findings []Finding
	findings = append(findings, requiredFields(p)...)
	findings = append(findings, typeAndRange(p)...)
	findings = append(findings, businessRules(p)...)
	findings = append(findings, dataQuality(p)...)
	return findings
}

// IsValid reports whether no blocking finding is present.
func IsValid(findings []Finding) bool {
	return len(Blocking(findings)) == 0
}

// Blocking filters the blocking subset.
func Blocking(findings []Finding) []Finding {
	var blocking []Finding
	for _, f := range findings {
		if f.Severity == SeverityBlocking {
			blocking = append(blocking, f)
		}
	}
	return blocking
}

func requiredFields(p *catalog.Product) []Finding {
	var findings []Finding
	required := []struct {
		field string
		value string
	}{
		{"id", p.ID},
		{"name", p.Name},
		{"brand", string(p.Brand)},
		{"category", string(p.Category)},
		{"image_url", p.ImageURL},
		{"affiliate_url", p.AffiliateURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			findings = append(findings, Finding{
				Field:    r.field,
				Value:    r.value,
				Message:  "required field is missing",
				Severity: SeverityBlocking,
			})
		}
	}
	return findings
}

func typeAndRange(p *catalog.Product) []Finding {
	var findings []Finding

	if p.ID != "" {
		if !productIDRe.MatchString(p.ID) || len(p.ID) > maxPlaintextID {
			findings = append(findings, Finding{
				Field:    "id",
				Value:    p.ID,
				Message:  "id does not match the brand-hexdigest shape",
				Severity: SeverityBlocking,
			})
		} else if p.Brand != "" && !strings.HasPrefix(p.ID, string(p.Brand)+"-") {
			findings = append(findings, Finding{
				Field:    "id",
				Value:    p.ID,
				Message:  "id prefix does not match the product brand",
				Severity: SeverityBlocking,
			})
		}
	}

	switch {
	case p.Price < 0:
		findings = append(findings, Finding{
			Field:    "price",
			Value:    fmt.Sprintf("%d", p.Price),
			Message:  "price must be non-negative",
			Severity: SeverityBlocking,
		})
	case p.Price == 0:
		findings = append(findings, Finding{
			Field:    "price",
			Value:    "0",
			Message:  "price is zero",
			Severity: SeverityAdvisory,
		})
	}

	if p.ImageURL != "" {
		if !validHTTPURL(p.ImageURL) {
			findings = append(findings, Finding{
				Field:    "image_url",
				Value:    p.ImageURL,
				Message:  "image URL is not a valid http(s) URL",
				Severity: SeverityBlocking,
			})
		} else if !extract.ValidImageURL(p.Brand, p.ImageURL) {
			findings = append(findings, Finding{
				Field:    "image_url",
				Value:    p.ImageURL,
				Message:  "image URL does not match the brand's hosting format",
				Severity: SeverityBlocking,
			})
		}
	}
	if p.AffiliateURL != "" && !validHTTPURL(p.AffiliateURL) {
		findings = append(findings, Finding{
			Field:    "affiliate_url",
			Value:    p.AffiliateURL,
			Message:  "affiliate URL is not a valid http(s) URL",
			Severity: SeverityBlocking,
		})
	}

	if p.Brand != "" && !catalog.KnownBrand(p.Brand) {
		findings = append(findings, Finding{
			Field:    "brand",
			Value:    string(p.Brand),
			Message:  "brand is not a known vendor",
			Severity: SeverityBlocking,
		})
	}

	findings = append(findings, dimensionRange(p.Dimensions)...)
	return findings
}

// Out-of-range axes are blocking, not advisory: a 40 meter wardrobe means
// the dimension parser misfired, not that the vendor sells one.
func dimensionRange(d *catalog.Dimensions) []Finding {
	if d.Empty() {
		return nil
	}
	var findings []Finding
	for axis, value := range d.Axes() {
		limit := float64(maxAxisCm)
		if axis == "length" {
			limit = maxLengthCm
		}
		if value < minAxisCm || value > limit {
			findings = append(findings, Finding{
				Field:    "dimensions." + axis,
				Value:    fmt.Sprintf("%g", value),
				Message:  fmt.Sprintf("axis outside physical plausibility [%g, %g] cm", minAxisCm, limit),
				Severity: SeverityBlocking,
			})
		}
	}
	return findings
}

func businessRules(p *catalog.Product) []Finding {
	var findings []Finding

	if band, ok := categoryPriceBands[p.Category]; ok && p.Price > 0 {
		if p.Price < band.min || p.Price > band.max {
			findings = append(findings, Finding{
				Field:    "price",
				Value:    fmt.Sprintf("%d", p.Price),
				Message:  fmt.Sprintf("price outside the plausible %s band [%d, %d] CZK", p.Category, band.min, band.max),
				Severity: SeverityAdvisory,
			})
		}
	}

	if p.IsSeasonal && strings.TrimSpace(p.Season) == "" {
		findings = append(findings, Finding{
			Field:    "season",
			Value:    "",
			Message:  "product is flagged seasonal but has no season",
			Severity: SeverityAdvisory,
		})
	}

	return findings
}

func dataQuality(p *catalog.Product) []Finding {
	var findings []Finding

	nameLen := len([]rune(strings.TrimSpace(p.Name)))
	switch {
	case nameLen > 0 && nameLen < minNameLen:
		findings = append(findings, Finding{
			Field:    "name",
			Value:    p.Name,
			Message:  fmt.Sprintf("name shorter than %d characters", minNameLen),
			Severity: SeverityBlocking,
		})
	case nameLen > maxNameLen:
		findings = append(findings, Finding{
			Field:    "name",
			Value:    p.Name,
			Message:  fmt.Sprintf("name longer than %d characters", maxNameLen),
			Severity: SeverityAdvisory,
		})
	}

	if p.Category != "" && !catalog.KnownCategory(p.Category) {
		findings = append(findings, Finding{
			Field:    "category",
			Value:    string(p.Category),
			Message:  "category is not in the known vocabulary",
			Severity: SeverityAdvisory,
		})
	}
	if p.Color != "" && !extract.KnownColorTag(p.Color) {
		findings = append(findings, Finding{
			Field:    "color",
			Value:    p.Color,
			Message:  "color is not in the known vocabulary",
			Severity: SeverityAdvisory,
		})
	}
	if p.Material != "" && !extract.KnownMaterialTag(p.Material) {
		findings = append(findings, Finding{
			Field:    "material",
			Value:    p.Material,
			Message:  "material is not in the known vocabulary",
			Severity: SeverityAdvisory,
		})
	}

	missingEnrichment := []struct {
		field string
		empty bool
	}{
		{"dimensions", p.Dimensions.Empty()},
		{"color", strings.TrimSpace(p.Color) == ""},
		{"material", strings.TrimSpace(p.Material) == ""},
	}
	for _, m := range missingEnrichment {
		if m.empty {
			findings = append(findings, Finding{
				Field:    m.field,
				Value:    "",
				Message:  "enrichment field is missing",
				Severity: SeverityAdvisory,
			})
		}
	}

	return findings
}

func validHTTPURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
