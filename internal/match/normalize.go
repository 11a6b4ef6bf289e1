package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy matching. Package qualifiers
// are dropped, then CamelCase and separators are collapsed to lower case:
//   - "plugs.UKToEU" -> "uktoeu"
//   - "uk_to_eu" -> "uktoeu"
func NormalizeIdent(s string) string {
	if i := strings.LastIndexAny(s, "./"); i >= 0 {
		s = s[i+1:]
	}

	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// Tokenize splits an identifier on separators and CamelCase boundaries.
// Examples:
//   - "EUStandard" -> ["EU", "Standard"]
//   - "eu_to_japan" -> ["eu", "to", "japan"]
func Tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports a lower-to-upper transition ("toEU") or the end of an
// acronym ("EUStandard", split before 'S').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
