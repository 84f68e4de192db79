package extract

import (
	"strings"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
)

// Ordered keyword table; "dekorac" must precede the textile "dek" stem and
// "stolek" must precede "stol" or the generic stems would shadow them.
var categoryRules = []struct {
	stem string
	cat  catalog.Category
}{
	{"rozkládací pohovk", catalog.CategorySofa},
	{"pohovk", catalog.CategorySofa},
	{"sedačk", catalog.CategorySofa},
	{"sedací souprav", catalog.CategorySofa},
	{"křesl", catalog.CategoryArmchair},
	{"židl", catalog.CategoryChair},
	{"barov", catalog.CategoryChair},
	{"konferenční stolek", catalog.CategoryTable},
	{"stolek", catalog.CategoryTable},
	{"stůl", catalog.CategoryTable},
	{"stol", catalog.CategoryTable},
	{"šatní skříň", catalog.CategoryWardrobe},
	{"skříň", catalog.CategoryWardrobe},
	{"skřín", catalog.CategoryWardrobe},
	{"komod", catalog.CategoryDresser},
	{"polic", catalog.CategoryShelf},
	{"regál", catalog.CategoryShelf},
	{"knihovn", catalog.CategoryShelf},
	{"postel", catalog.CategoryBed},
	{"matrac", catalog.CategoryBed},
	{"lustr", catalog.CategoryLighting},
	{"svítidl", catalog.CategoryLighting},
	{"lamp", catalog.CategoryLighting},
	{"koberec", catalog.CategoryRug},
	{"koberc", catalog.CategoryRug},
	{"zrcadl", catalog.CategoryMirror},
	{"dekorac", catalog.CategoryDecor},
	{"váz", catalog.CategoryDecor},
	{"svíčk", catalog.CategoryDecor},
	{"svícn", catalog.CategoryDecor},
	{"ubrus", catalog.CategoryTextile},
	{"závěs", catalog.CategoryTextile},
	{"polštář", catalog.CategoryTextile},
	{"povlečení", catalog.CategoryTextile},
	{"dek", catalog.CategoryTextile},
	{"pléd", catalog.CategoryTextile},
}

// Category classifies vendor copy into the canonical category set. Unmatched
// text falls into the generic bucket.
func Category(text string) catalog.Category {
	lowered := strings.ToLower(text)
	for _, rule := range categoryRules {
		if strings.Contains(lowered, rule.stem) {
			return rule.cat
		}
	}
	return catalog.CategoryOther
}
