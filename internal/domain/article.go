package domain

import "time"

// Article is the submitted story the credibility pipeline scores.
type Article struct {
	ID          int64
	HashID      string
	Title       string
	Content     string
	Status      ArticleStatus
	SubmittedBy int64
	Score       float64
	Scored      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ArticleStatus enumerates the submission lifecycle.
type ArticleStatus string

const (
	StatusPendingAnalysis ArticleStatus = "pending_analysis"
	StatusPendingReview   ArticleStatus = "pending_review"
	StatusApproved        ArticleStatus = "approved"
	StatusRejected        ArticleStatus = "rejected"
)

// TrustedSource is one entry of the immutable corroboration registry.
type TrustedSource struct {
	ID        string
	Name      string
	SearchURL string // contains a {query} placeholder
	Weight    float64
	Region    string
}

// SourceCheckResult records whether one registry source corroborated a story.
type SourceCheckResult struct {
	SourceID string  `json:"source_id"`
	Found    bool    `json:"found"`
	Weight   float64 `json:"weight"`
}

// CredibilityReport is the full breakdown produced by one analysis run.
type CredibilityReport struct {
	Coverage  float64             `json:"coverage"`
	Quality   float64             `json:"quality"`
	FactCheck float64             `json:"fact_check"`
	Recency   float64             `json:"recency"`
	Final     float64             `json:"final"`
	Sources   []SourceCheckResult `json:"sources,omitempty"`
	Fallback  bool                `json:"fallback,omitempty"`
	CacheHit  bool                `json:"cache_hit,omitempty"`
}
