package analysis

import (
	"regexp"
	"strings"
)

var (
	nonWordExpr    = regexp.MustCompile(`[^\w\s]`)
	whitespaceExpr = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw text for matching: punctuation becomes spaces, runs of
// whitespace collapse to a single space, everything is lower-cased. Cleaning
// an already clean string is a no-op.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = nonWordExpr.ReplaceAllString(text, " ")
	text = whitespaceExpr.ReplaceAllString(strings.TrimSpace(text), " ")
	return strings.ToLower(text)
}
