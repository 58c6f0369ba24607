package analysis

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"newscred/internal/metrics"
	"newscred/internal/ports"
)

const (
	factCheckQueryLimit   = 80
	neutralFactCheckScore = 85.0
)

var factCheckSites = []string{
	"https://www.snopes.com/search/{query}",
	"https://factcheck.afp.com/search?query={query}",
}

var (
	disputeWords = []string{"false", "misleading", "debunked"}
	confirmWords = []string{"true", "verified", "confirmed"}
)

// FactCheckVerifier cross-references the title against fact-checking sites.
type FactCheckVerifier struct {
	sites   []string
	fetcher ports.PageFetcher
	pacer   ports.Pacer
	timeout time.Duration
	delay   time.Duration
	logger  *slog.Logger
}

// NewFactCheckVerifier wires the default site list; pass sites to override.
func NewFactCheckVerifier(fetcher ports.PageFetcher, pacer ports.Pacer, timeout, delay time.Duration, logger *slog.Logger, sites ...string) *FactCheckVerifier {
	if len(sites) == 0 {
		sites = factCheckSites
	}
	return &FactCheckVerifier{
		sites:   sites,
		fetcher: fetcher,
		pacer:   pacer,
		timeout: timeout,
		delay:   delay,
		logger:  logger,
	}
}

// Verify starts from a neutral 85 and nudges the score by what fact-check
// pages say about the title: dispute language subtracts 20 per site, pure
// confirmation language adds 10. Unreachable sites are skipped.
func (v *FactCheckVerifier) Verify(ctx context.Context, title string) float64 {
	query := url.QueryEscape(truncate(title, factCheckQueryLimit))
	score := neutralFactCheckScore

	for i, site := range v.sites {
		if i > 0 {
			v.pacer.Pace(ctx, v.delay)
		}

		reqCtx, cancel := context.WithTimeout(ctx, v.timeout)
		text, err := v.fetcher.FetchText(reqCtx, strings.ReplaceAll(site, "{query}", query))
		cancel()
		if err != nil {
			v.logger.Warn("fact-check site unreachable", "site", site, "error", err)
			metrics.FactCheckQueriesTotal.WithLabelValues("error").Inc()
			continue
		}

		lower := strings.ToLower(text)
		switch {
		case containsAny(lower, disputeWords):
			score -= 20
			metrics.FactCheckQueriesTotal.WithLabelValues("disputed").Inc()
		case containsAny(lower, confirmWords):
			score += 10
			metrics.FactCheckQueriesTotal.WithLabelValues("confirmed").Inc()
		default:
			metrics.FactCheckQueriesTotal.WithLabelValues("neutral").Inc()
		}
	}

	return clamp(score, 0, 100)
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
