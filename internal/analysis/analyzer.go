package analysis

import (
	"context"
	"log/slog"
	"math"
	"time"

	"newscred/internal/domain"
	"newscred/internal/metrics"
	"newscred/internal/ports"
)

// Scoring weights and bounds of the aggregation formula.
const (
	coverageWeight  = 0.40
	qualityWeight   = 0.35
	factCheckWeight = 0.15
	recencyWeight   = 0.10

	recencyScore = 80.0 // constant: no real recency signal for user submissions

	boostTarget = 55.0
	maxBoost    = 15.0

	minFinalScore = 25.0
	maxFinalScore = 100.0

	emptyInputScore = 25.0
	fallbackScore   = 60.0
)

// Analyzer orchestrates the full credibility pass: coverage, quality,
// fact-check, then weighted aggregation. It is stateless across runs and
// safe for concurrent use.
type Analyzer struct {
	coverage  *CoverageChecker
	factCheck *FactCheckVerifier
	logger    *slog.Logger
}

var _ ports.Analyzer = (*Analyzer)(nil)

// NewAnalyzer wires the two network-bound checkers.
func NewAnalyzer(coverage *CoverageChecker, factCheck *FactCheckVerifier, logger *slog.Logger) *Analyzer {
	return &Analyzer{coverage: coverage, factCheck: factCheck, logger: logger}
}

// Analyze runs the sub-checks sequentially and combines them. It always
// produces a usable report: empty input short-circuits to 25.0, and any
// unexpected failure collapses to the fixed fallback score at this boundary.
func (a *Analyzer) Analyze(ctx context.Context, title, content string) (report domain.CredibilityReport) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("analysis failed, using fallback score", "panic", r)
			metrics.FallbacksTotal.Inc()
			report = domain.CredibilityReport{Final: fallbackScore, Fallback: true}
		}
		metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	if title == "" || content == "" {
		a.logger.Warn("missing title or content, skipping analysis")
		return domain.CredibilityReport{Final: emptyInputScore}
	}

	a.logger.Info("starting credibility analysis", "title", truncate(title, 100))

	coverage, sources := a.coverage.Check(ctx, title, content)
	quality := ScoreQuality(title, content)
	factCheck := a.factCheck.Verify(ctx, title)

	final := coverage*coverageWeight +
		quality*qualityWeight +
		factCheck*factCheckWeight +
		recencyScore*recencyWeight

	// Minimum-score boost: business policy so a single weak sub-score does
	// not sink an otherwise reasonable article below the review threshold.
	if final < boostTarget {
		boost := math.Min(maxBoost, boostTarget-final)
		final += boost
		a.logger.Debug("applied credibility boost", "boost", boost)
	}

	final = roundTo1(clamp(final, minFinalScore, maxFinalScore))

	a.logger.Info("credibility analysis complete",
		"coverage", coverage,
		"quality", quality,
		"fact_check", factCheck,
		"recency", recencyScore,
		"final", final,
	)

	return domain.CredibilityReport{
		Coverage:  coverage,
		Quality:   quality,
		FactCheck: factCheck,
		Recency:   recencyScore,
		Final:     final,
		Sources:   sources,
	}
}

// Score returns only the final credibility value in [25,100].
func (a *Analyzer) Score(ctx context.Context, title, content string) float64 {
	return a.Analyze(ctx, title, content).Final
}

// VerifyArticle is the legacy entry-point name kept for callers of the old
// verification API; it is an exact alias of Score.
func (a *Analyzer) VerifyArticle(ctx context.Context, title, content string) float64 {
	return a.Score(ctx, title, content)
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
