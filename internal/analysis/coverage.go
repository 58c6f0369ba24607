package analysis

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"newscred/internal/domain"
	"newscred/internal/metrics"
	"newscred/internal/ports"
)

const (
	primaryQueryLimit = 100
	matchThreshold    = 0.30
)

// CoverageChecker measures how strongly the trusted-source registry
// corroborates a story. One checker is shared by concurrent runs; all of its
// fields are read-only after construction.
type CoverageChecker struct {
	registry *SourceRegistry
	fetcher  ports.PageFetcher
	pacer    ports.Pacer
	timeout  time.Duration
	delay    time.Duration
	logger   *slog.Logger
}

// NewCoverageChecker wires the registry with a page fetcher and pacing.
func NewCoverageChecker(registry *SourceRegistry, fetcher ports.PageFetcher, pacer ports.Pacer, timeout, delay time.Duration, logger *slog.Logger) *CoverageChecker {
	return &CoverageChecker{
		registry: registry,
		fetcher:  fetcher,
		pacer:    pacer,
		timeout:  timeout,
		delay:    delay,
		logger:   logger,
	}
}

// Check walks the registry in registration order and returns the weighted
// coverage percentage plus per-source results. A failing source is recorded
// as not-found; nothing aborts the overall check.
func (c *CoverageChecker) Check(ctx context.Context, title, content string) (float64, []domain.SourceCheckResult) {
	queries := buildQueries(title, content)
	titleWords := strings.Fields(Clean(title))

	results := make([]domain.SourceCheckResult, 0, c.registry.Len())
	var coveredWeight float64
	requested := false

	for _, source := range c.registry.Sources() {
		result := domain.SourceCheckResult{SourceID: source.ID, Weight: source.Weight}

		for _, query := range queries {
			if requested {
				c.pacer.Pace(ctx, c.delay)
			}
			requested = true

			pageURL := strings.ReplaceAll(source.SearchURL, "{query}", query)
			ratio, err := c.matchRatio(ctx, pageURL, titleWords)
			if err != nil {
				c.logger.Warn("source check failed", "source", source.Name, "error", err)
				metrics.SourceChecksTotal.WithLabelValues(source.ID, "error").Inc()
				continue
			}

			if ratio > matchThreshold {
				result.Found = true
				coveredWeight += source.Weight
				c.logger.Debug("coverage found", "source", source.Name, "ratio", ratio)
				metrics.SourceChecksTotal.WithLabelValues(source.ID, "found").Inc()
				break
			}
			metrics.SourceChecksTotal.WithLabelValues(source.ID, "miss").Inc()
		}

		results = append(results, result)
	}

	total := c.registry.TotalWeight()
	if total <= 0 {
		return 0, results
	}
	return coveredWeight / total * 100, results
}

func (c *CoverageChecker) matchRatio(ctx context.Context, pageURL string, titleWords []string) (float64, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.fetcher.FetchText(reqCtx, pageURL)
	if err != nil {
		return 0, err
	}

	if len(titleWords) == 0 {
		return 0, nil
	}

	pageText := Clean(text)
	matches := 0
	for _, word := range titleWords {
		if len(word) > 3 && strings.Contains(pageText, word) {
			matches++
		}
	}
	return float64(matches) / float64(len(titleWords)), nil
}

// buildQueries returns the primary title query followed by a secondary query
// built from the top-3 extracted keywords.
func buildQueries(title, content string) []string {
	queries := []string{url.QueryEscape(truncate(title, primaryQueryLimit))}

	keywords := ExtractKeywords(title, content)
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	if len(keywords) > 0 {
		queries = append(queries, url.QueryEscape(strings.Join(keywords, " ")))
	}
	return queries
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
