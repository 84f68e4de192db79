package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
)

// Vendor copy writes dimensions in a handful of competing notations. The
// families below are tried in strict priority order against the normalized
// text; the first family that matches wins and scanning stops.
//
//	1. Ø120 or Ø120 x V45            diameter, optional height
//	2. 80x28x202 / 80 x 160          generic width x height [x depth]
//	3. Š80 x D150 x V75              labeled width x length [x height]
//	4. Š80 / D150 / V75              individual labeled values
//	5. Ubrus ... 140                 tablecloth size
//	6. 45 cm                         bare value, treated as height
//
// Family 4 anchors its label on start-of-string or whitespace rather than \b,
// which is ASCII-only and never fires before š.
var (
	numPattern = `(\d+(?:[.,]\d+)?)`

	diameterRe   = regexp.MustCompile(`(?i)[ø⌀]\s*` + numPattern + `(?:\s*(?:cm)?\s*[x×]\s*v\s*:?\s*` + numPattern + `)?`)
	tripletRe    = regexp.MustCompile(numPattern + `\s*[x×]\s*` + numPattern + `(?:\s*[x×]\s*` + numPattern + `)?`)
	labeledRe    = regexp.MustCompile(`(?i)š\s*:?\s*` + numPattern + `\s*(m\b|cm)?\s*[x×]\s*d\s*:?\s*` + numPattern + `\s*(m\b|cm)?(?:\s*[x×]\s*v\s*:?\s*` + numPattern + `\s*(m\b|cm)?)?`)
	singleRe     = regexp.MustCompile(`(?i)(?:^|\s)([šdv])\s*:?\s*` + numPattern + `\s*(m\b|cm)?`)
	tableclothRe = regexp.MustCompile(`(?i)ubrus\D*(\d{2,3})\b`)
	bareCmRe     = regexp.MustCompile(`(?i)\b` + numPattern + `\s*cm\b`)
)

// Dimensions extracts centimeter measurements from free text. Returns nil
// when no pattern family matches.
func Dimensions(text string) *catalog.Dimensions {
	normalized := strings.TrimSpace(text)
	if normalized == "" {
		return nil
	}

	if m := diameterRe.FindStringSubmatch(normalized); m != nil {
		d := &catalog.Dimensions{Diameter: parseDim(m[1])}
		if m[2] != "" {
			d.Height = parseDim(m[2])
		}
		if !d.Empty() {
			return d
		}
	}

	if m := tripletRe.FindStringSubmatch(normalized); m != nil {
		d := &catalog.Dimensions{
			Width:  parseDim(m[1]),
			Height: parseDim(m[2]),
		}
		if m[3] != "" {
			d.Depth = parseDim(m[3])
		}
		if d.Width != nil && d.Height != nil {
			return d
		}
	}

	if m := labeledRe.FindStringSubmatch(normalized); m != nil {
		d := &catalog.Dimensions{
			Width:  scaleDim(parseDim(m[1]), m[2]),
			Length: scaleDim(parseDim(m[3]), m[4]),
		}
		if m[5] != "" {
			d.Height = scaleDim(parseDim(m[5]), m[6])
		}
		if d.Width != nil && d.Length != nil {
			return d
		}
	}

	if matches := singleRe.FindAllStringSubmatch(normalized, -1); matches != nil {
		d := &catalog.Dimensions{}
		for _, m := range matches {
			value := scaleDim(parseDim(m[2]), m[3])
			if value == nil {
				continue
			}
			switch strings.ToLower(m[1]) {
			case "š":
				if d.Width == nil {
					d.Width = value
				}
			case "d":
				if d.Length == nil {
					d.Length = value
				}
			case "v":
				if d.Height == nil {
					d.Height = value
				}
			}
		}
		if !d.Empty() {
			return d
		}
	}

	if m := tableclothRe.FindStringSubmatch(normalized); m != nil {
		if width := parseDim(m[1]); width != nil {
			return &catalog.Dimensions{Width: width}
		}
	}

	if m := bareCmRe.FindStringSubmatch(normalized); m != nil {
		if height := parseDim(m[1]); height != nil {
			return &catalog.Dimensions{Height: height}
		}
	}

	return nil
}

// DimensionsFromRow scans every value of a raw row in column order and
// returns the first extraction that succeeds. Fallback for vendors that put
// measurements into arbitrary description columns.
func DimensionsFromRow(values []string) *catalog.Dimensions {
	for _, value := range values {
		if d := Dimensions(value); d != nil {
			return d
		}
	}
	return nil
}

func parseDim(raw string) *float64 {
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

// scaleDim converts meter-suffixed values to centimeters.
func scaleDim(value *float64, unit string) *float64 {
	if value == nil {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(unit), "m") {
		scaled := *value * 100
		return &scaled
	}
	return value
}
