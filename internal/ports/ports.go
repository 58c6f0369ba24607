package ports

import (
	"context"
	"errors"
	"time"

	"newscred/internal/domain"
)

// ErrArticleNotFound is returned by repositories for unknown identifiers.
var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository persists submissions and applies analysis verdicts.
type ArticleRepository interface {
	CreatePending(ctx context.Context, article *domain.Article) error
	ApplyVerdict(ctx context.Context, verdict domain.Verdict) error
	GetByHashID(ctx context.Context, hashID string) (domain.Article, error)
}

// Analyzer runs one full credibility pass over a submission.
type Analyzer interface {
	Analyze(ctx context.Context, title, content string) domain.CredibilityReport
}

// ScoreCache remembers scores for previously analyzed (title, content) pairs.
type ScoreCache interface {
	Get(ctx context.Context, key string) (float64, bool, error)
	Set(ctx context.Context, key string, score float64) error
}

// Notifier broadcasts analysis outcomes to interested consumers.
type Notifier interface {
	PublishAnalysis(ctx context.Context, event domain.AnalysisEvent) error
}

// TaskQueue accepts analysis task snapshots for background execution.
type TaskQueue interface {
	Enqueue(task domain.AnalysisTask) error
}

// PageFetcher retrieves the visible text of a remote search-result page.
type PageFetcher interface {
	FetchText(ctx context.Context, pageURL string) (string, error)
}

// Pacer spaces outbound requests; implementations may use a fake clock.
type Pacer interface {
	Pace(ctx context.Context, d time.Duration)
}
