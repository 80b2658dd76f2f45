// internal/matching/normalize.go
package matching

import (
	"regexp"
	"strings"
)

var (
	// Keep "+" and "#" so skill tokens like "c++" and "c#" survive.
	nonToken   = regexp.MustCompile(`[^a-z0-9 +#]+`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces characters outside [a-z0-9 +#] with
// spaces, collapses whitespace runs and trims. Always returns a string,
// possibly empty.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = nonToken.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits normalized text into word tokens.
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
