package analysis

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 10

var wordExpr = regexp.MustCompile(`\b\w{3,}\b`)

// stopWords are common function words excluded from keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {},
}

// ExtractKeywords returns up to ten salient terms from title+content,
// most frequent first. Ties keep first-appearance order so the result is
// stable for identical input.
func ExtractKeywords(title, content string) []string {
	text := strings.ToLower(title + " " + content)

	type wordStat struct {
		count int
		first int
	}
	freq := make(map[string]*wordStat)
	var order []string

	for _, word := range wordExpr.FindAllString(text, -1) {
		if _, skip := stopWords[word]; skip {
			continue
		}
		if stat, ok := freq[word]; ok {
			stat.count++
			continue
		}
		freq[word] = &wordStat{count: 1, first: len(order)}
		order = append(order, word)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := freq[order[i]], freq[order[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.first < b.first
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
