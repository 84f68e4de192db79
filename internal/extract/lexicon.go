package extract

import "strings"

// lexiconEntry maps a Czech vocabulary stem to a canonical English tag.
// Tables are evaluated top to bottom and the first substring hit wins, so
// more specific stems must precede generic fallbacks.
type lexiconEntry struct {
	stem string
	tag  string
}

var colorLexicon = []lexiconEntry{
	{"antracit", "anthracite"},
	{"krémov", "cream"},
	{"béžov", "beige"},
	{"stříbrn", "silver"},
	{"zlat", "gold"},
	{"tyrkys", "turquoise"},
	{"oranžov", "orange"},
	{"růžov", "pink"},
	{"fialov", "purple"},
	{"červen", "red"},
	{"zelen", "green"},
	{"žlut", "yellow"},
	{"modr", "blue"},
	{"hněd", "brown"},
	{"šed", "gray"},
	{"čern", "black"},
	{"bíl", "white"},
	{"přírodní", "natural"},
}

// KnownColors is the canonical color vocabulary, used by the validator to
// flag new tags without blocking the import.
var KnownColors = canonicalTags(colorLexicon)

// Color returns the canonical color tag for the first lexicon stem found in
// the text, or "" when nothing matches.
func Color(text string) string {
	return lookupLexicon(colorLexicon, text)
}

// Engineered-wood product terms are checked before anything else: a listing
// saying "dřevotříska" is particleboard no matter what species or modifier
// words surround it.
var engineeredWoodLexicon = []lexiconEntry{
	{"dřevotřísk", "particleboard"},
	{"lamino", "laminated_board"},
	{"mdf", "mdf"},
	{"hdf", "hdf"},
	{"překližk", "plywood"},
	{"vláknit", "fiberboard"},
}

var woodSpeciesLexicon = []lexiconEntry{
	{"dubov", "oak"},
	{"dub", "oak"},
	{"bukov", "beech"},
	{"buk", "beech"},
	{"borovic", "pine"},
	{"bříz", "birch"},
	{"jasan", "ash"},
	{"ořech", "walnut"},
	{"smrk", "spruce"},
}

var materialLexicon = []lexiconEntry{
	{"nerez", "stainless_steel"},
	{"ocel", "steel"},
	{"hliník", "aluminium"},
	{"kov", "metal"},
	{"sklo", "glass"},
	{"sklen", "glass"},
	{"plast", "plastic"},
	{"ratan", "rattan"},
	{"bambus", "bamboo"},
	{"proutí", "wicker"},
	{"kůže", "leather"},
	{"kožen", "leather"},
	{"samet", "velvet"},
	{"bavln", "cotton"},
	{"lněn", "linen"},
	{"vlněn", "wool"},
	{"látk", "fabric"},
	{"textil", "fabric"},
	{"keramik", "ceramic"},
	{"mramor", "marble"},
	{"beton", "concrete"},
	{"dřevěn", "wood"},
	{"dřev", "wood"},
}

// KnownMaterials covers the plain tags; composite wood values are handled by
// KnownMaterialTag.
var KnownMaterials = append(canonicalTags(engineeredWoodLexicon), canonicalTags(materialLexicon)...)

// Material extracts the material tag. Solid and veneer modifiers compose
// with a detected wood species ("masivní dub" -> "solid_wood (oak)",
// "dubová dýha" -> "engineered_wood (oak veneer)").
func Material(text string) string {
	lowered := strings.ToLower(text)
	if strings.TrimSpace(lowered) == "" {
		return ""
	}

	engineered := lookupLexicon(engineeredWoodLexicon, lowered)
	species := lookupLexicon(woodSpeciesLexicon, lowered)
	solid := strings.Contains(lowered, "masiv")
	veneer := strings.Contains(lowered, "dýh")

	switch {
	case veneer && species != "":
		return "engineered_wood (" + species + " veneer)"
	case veneer:
		return "engineered_wood (veneer)"
	case solid && species != "":
		return "solid_wood (" + species + ")"
	case solid:
		return "solid_wood"
	case engineered != "":
		return engineered
	case species != "":
		return "wood (" + species + ")"
	default:
		return lookupLexicon(materialLexicon, lowered)
	}
}

// KnownMaterialTag reports whether a material value belongs to the canonical
// vocabulary, including the composite wood forms.
func KnownMaterialTag(tag string) bool {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return false
	}
	for _, prefix := range []string{"solid_wood", "engineered_wood", "wood"} {
		if trimmed == prefix || strings.HasPrefix(trimmed, prefix+" (") {
			return true
		}
	}
	for _, known := range KnownMaterials {
		if trimmed == known {
			return true
		}
	}
	return false
}

// KnownColorTag reports whether a color value belongs to the canonical
// vocabulary.
func KnownColorTag(tag string) bool {
	trimmed := strings.TrimSpace(tag)
	for _, known := range KnownColors {
		if trimmed == known {
			return true
		}
	}
	return false
}

func lookupLexicon(table []lexiconEntry, text string) string {
	lowered := strings.ToLower(text)
	for _, entry := range table {
		if strings.Contains(lowered, entry.stem) {
			return entry.tag
		}
	}
	return ""
}

func canonicalTags(table []lexiconEntry) []string {
	seen := make(map[string]struct{}, len(table))
	tags := make([]string, 0, len(table))
	for _, entry := range table {
		if _, ok := seen[entry.tag]; ok {
			continue
		}
		seen[entry.tag] = struct{}{}
		tags = append(tags, entry.tag)
	}
	return tags
}
