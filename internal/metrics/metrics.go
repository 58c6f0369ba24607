package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline outcome metrics
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newscred_analyses_total",
			Help: "Total number of credibility analyses by outcome",
		},
		[]string{"outcome"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newscred_analysis_duration_seconds",
			Help:    "Wall-clock duration of one full credibility analysis",
			Buckets: []float64{.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		},
	)

	FallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newscred_analysis_fallbacks_total",
			Help: "Analyses that collapsed to the fail-open fallback score",
		},
	)

	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newscred_score_cache_hits_total",
			Help: "Analyses answered from the score cache without network checks",
		},
	)

	// Outbound check metrics
	SourceChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newscred_source_checks_total",
			Help: "Trusted-source lookups by source and result",
		},
		[]string{"source", "result"},
	)

	FactCheckQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newscred_fact_check_queries_total",
			Help: "Fact-check site lookups by result",
		},
		[]string{"result"},
	)

	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newscred_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Worker pool metrics
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newscred_analysis_queue_depth",
			Help: "Analysis tasks waiting for a worker",
		},
	)
)

// Outcome label values for AnalysesTotal.
const (
	OutcomeScored    = "scored"
	OutcomeDiscarded = "discarded"
)
