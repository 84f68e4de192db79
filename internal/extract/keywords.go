package extract

import (
	"strings"
	"unicode"
)

// SearchKeywords derives the search token set for a product from its name
// and enrichment fields. Tokens keep first-seen order so repeated imports
// produce identical keyword lists.
func SearchKeywords(parts ...string) []string {
	var keywords []string
	seen := make(map[string]struct{})

	for _, part := range parts {
		for _, token := range tokenizeKeywords(part) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			keywords = append(keywords, token)
		}
	}
	return keywords
}

func tokenizeKeywords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len([]rune(field)) < 3 {
			continue
		}
		if isNumericToken(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func isNumericToken(token string) bool {
	for _, r := range token {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return len(token) > 0
}
