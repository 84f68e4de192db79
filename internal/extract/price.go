package extract

import (
	"math"
	"strconv"
	"strings"
)

// Price normalizes a free-text price ("1 490 Kč", "1.490,00") to whole
// currency units. Returns nil when no number survives the cleanup.
func Price(text string) *int {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return nil
	}

	// With both separators present the dot is a thousands separator.
	if strings.Contains(cleaned, ".") && strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	rounded := int(math.Round(value))
	return &rounded
}
