package analysis

import (
	"regexp"
	"strings"
)

const (
	minContentLength  = 50
	shortContentScore = 20.0
	baseQualityScore  = 50.0
)

// credibilityBoosters are phrases that signal sourced, official reporting.
var credibilityBoosters = []string{
	"breaking news", "official statement", "government announces",
	"according to sources", "confirmed reports", "eye witness",
	"police confirm", "ministry says", "authorities state",
	"spokesperson said", "press release", "official document",
}

// credibilityReducers are speculative or unverified-content markers.
var credibilityReducers = []string{
	"rumored", "allegedly", "unconfirmed", "speculation",
	"social media claims", "viral post", "whatsapp forward",
	"fake news", "hoax", "misleading",
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(today|yesterday|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`),
}

// ScoreQuality rates the structural and lexical quality of an article body.
// Pure function, no I/O. The result is capped at 100 but may go below zero;
// the aggregator applies the lower clamp.
func ScoreQuality(title, content string) float64 {
	if len(content) < minContentLength {
		return shortContentScore
	}

	score := baseQualityScore

	// Length tiers
	if len(content) > 200 {
		score += 10
	}
	if len(content) > 500 {
		score += 10
	}
	if len(content) > 1000 {
		score += 5
	}

	// Structure
	if len(strings.Split(content, ".")) > 3 {
		score += 5
	}
	if len(strings.Split(content, "\n\n")) > 1 {
		score += 5
	}

	lower := strings.ToLower(content)

	boosters := 0
	for _, phrase := range credibilityBoosters {
		if strings.Contains(lower, phrase) {
			boosters++
		}
	}
	score += minFloat(float64(boosters)*3, 15)

	reducers := 0
	for _, phrase := range credibilityReducers {
		if strings.Contains(lower, phrase) {
			reducers++
		}
	}
	score -= minFloat(float64(reducers)*5, 20)

	// A date or weekday mention suggests timely reporting; first match wins.
	for _, pattern := range datePatterns {
		if pattern.MatchString(lower) {
			score += 5
			break
		}
	}

	return minFloat(score, 100)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
