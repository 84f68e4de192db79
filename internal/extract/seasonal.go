package extract

import "strings"

var seasonalRules = []struct {
	stem   string
	season string
}{
	{"vánoč", "christmas"},
	{"vánoc", "christmas"},
	{"advent", "christmas"},
	{"velikonoč", "easter"},
	{"velikonoc", "easter"},
	{"jarní", "spring"},
	{"letní", "summer"},
	{"podzim", "autumn"},
	{"zimní", "winter"},
}

// Seasonal detects seasonal merchandise from the product name. Returns the
// season tag and whether a seasonal term was found.
func Seasonal(name string) (string, bool) {
	lowered := strings.ToLower(name)
	for _, rule := range seasonalRules {
		if strings.Contains(lowered, rule.stem) {
			return rule.season, true
		}
	}
	return "", false
}
