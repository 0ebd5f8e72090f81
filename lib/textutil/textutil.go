package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CleanText collapses internal whitespace runs into single spaces and trims
// the ends. Scraped text nodes tend to carry the indentation of the
// surrounding markup.
func CleanText(raw string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(raw, " "))
}

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// MatchName reports whether the normalized name contains any of the
// matchers. Matchers are normalized too, so callers may pass display forms
// like "Champions Tour".
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, NormalizeName(m)) {
			return true
		}
	}
	return false
}
