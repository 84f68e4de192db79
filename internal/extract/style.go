package extract

import "strings"

const (
	StyleScandinavian = "scandinavian"
	StyleModern       = "modern"
	StyleClassic      = "classic"
	StyleIndustrial   = "industrial"
	StyleRustic       = "rustic"
)

var styleKeywordRules = []struct {
	stem  string
	style string
}{
	{"skandináv", StyleScandinavian},
	{"severský", StyleScandinavian},
	{"minimalist", StyleModern},
	{"moderní", StyleModern},
	{"klasick", StyleClassic},
	{"venkovsk", StyleRustic},
	{"rustikáln", StyleRustic},
	{"industriáln", StyleIndustrial},
	{"loft", StyleIndustrial},
	{"vintage", StyleClassic},
}

// Known product-line names per style family. Series branding is often the
// only style signal a vendor row carries. Ordered so the tag set is stable.
var styleSeries = []struct {
	style  string
	series []string
}{
	{StyleScandinavian, []string{"billy", "kallax", "lack", "malm", "pax", "kungsbacka"}},
	{StyleClassic, []string{"hemnes", "liatorp", "havsta"}},
	{StyleIndustrial, []string{"fjällbo", "vittsjö", "kornum"}},
	{StyleRustic, []string{"tarva", "vedbo"}},
}

// Styles classifies a product into zero-or-more style tags from its name and
// collection; when nothing fires the baseline style is returned rather than
// an empty set.
func Styles(name, collection string) []string {
	haystack := strings.ToLower(name + " " + collection)

	var tags []string
	seen := make(map[string]struct{})
	add := func(style string) {
		if _, ok := seen[style]; ok {
			return
		}
		seen[style] = struct{}{}
		tags = append(tags, style)
	}

	for _, rule := range styleKeywordRules {
		if strings.Contains(haystack, rule.stem) {
			add(rule.style)
		}
	}
	for _, family := range styleSeries {
		for _, line := range family.series {
			if strings.Contains(haystack, line) {
				add(family.style)
				break
			}
		}
	}

	if len(tags) == 0 {
		return []string{StyleModern}
	}
	return tags
}
