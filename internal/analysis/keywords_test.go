package analysis

import (
	"strings"
	"testing"
)

func TestExtractKeywordsOrdering(t *testing.T) {
	t.Parallel()

	keywords := ExtractKeywords("flood alert", "flood warning warning warning river")
	if len(keywords) == 0 {
		t.Fatal("expected keywords")
	}
	if keywords[0] != "warning" {
		t.Fatalf("expected most frequent word first, got %v", keywords)
	}
	if keywords[1] != "flood" {
		t.Fatalf("expected flood second, got %v", keywords)
	}
}

func TestExtractKeywordsLimitsAndFilters(t *testing.T) {
	t.Parallel()

	content := "the and with alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima"
	keywords := ExtractKeywords("title words here", content)

	if len(keywords) > 10 {
		t.Fatalf("expected at most 10 keywords, got %d", len(keywords))
	}

	seen := map[string]bool{}
	for _, word := range keywords {
		if _, stop := stopWords[word]; stop {
			t.Fatalf("stop word %q leaked into keywords", word)
		}
		if len(word) < 3 {
			t.Fatalf("short word %q leaked into keywords", word)
		}
		if seen[word] {
			t.Fatalf("duplicate keyword %q", word)
		}
		seen[word] = true
	}
}

func TestExtractKeywordsStableTies(t *testing.T) {
	t.Parallel()

	first := ExtractKeywords("", "zebra yak xylophone walrus")
	second := ExtractKeywords("", "zebra yak xylophone walrus")
	if strings.Join(first, ",") != strings.Join(second, ",") {
		t.Fatalf("tie order unstable: %v vs %v", first, second)
	}
	// All frequency 1: first appearance wins.
	if first[0] != "zebra" || first[3] != "walrus" {
		t.Fatalf("expected appearance order, got %v", first)
	}
}
