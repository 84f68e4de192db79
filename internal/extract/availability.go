package extract

import (
	"strings"

	"github.com/Michwuanquana/vybav.it-sub000/internal/catalog"
)

// Negative phrases first: "není skladem" contains "skladem" and must not be
// read as in stock.
var availabilityRules = []struct {
	stem   string
	status catalog.Availability
}{
	{"není skladem", catalog.AvailabilityOutOfStock},
	{"vyprodáno", catalog.AvailabilityOutOfStock},
	{"vyprodán", catalog.AvailabilityOutOfStock},
	{"nedostupn", catalog.AvailabilityOutOfStock},
	{"na objednávku", catalog.AvailabilityOnOrder},
	{"na cestě", catalog.AvailabilityOnOrder},
	{"předobjedn", catalog.AvailabilityOnOrder},
	{"skladem", catalog.AvailabilityInStock},
	{"ihned k odběru", catalog.AvailabilityInStock},
	{"dostupn", catalog.AvailabilityInStock},
}

// Availability maps a free-text stock hint onto the availability enum.
func Availability(stockText string) catalog.Availability {
	lowered := strings.ToLower(strings.TrimSpace(stockText))
	if lowered == "" {
		return catalog.AvailabilityUnknown
	}
	for _, rule := range availabilityRules {
		if strings.Contains(lowered, rule.stem) {
			return rule.status
		}
	}
	return catalog.AvailabilityUnknown
}
