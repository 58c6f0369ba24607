package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"newscred/internal/domain"
	"newscred/internal/metrics"
	"newscred/internal/ports"
)

const hashIDLength = 12

const hashIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// WorkflowDeps wires all collaborators of the submission workflow.
type WorkflowDeps struct {
	Repository ports.ArticleRepository
	Analyzer   ports.Analyzer
	Queue      ports.TaskQueue
	Cache      ports.ScoreCache
	Notifier   ports.Notifier
	Threshold  float64
	Logger     *slog.Logger
}

// Workflow implements the article submission and verdict write-back flow:
// persist pending, analyze in the background, then apply the score policy.
type Workflow struct {
	repo      ports.ArticleRepository
	analyzer  ports.Analyzer
	queue     ports.TaskQueue
	cache     ports.ScoreCache
	notifier  ports.Notifier
	threshold float64
	logger    *slog.Logger
}

// NewWorkflow constructs the workflow; Cache and Notifier may be nil.
func NewWorkflow(deps WorkflowDeps) *Workflow {
	threshold := deps.Threshold
	if threshold <= 0 {
		threshold = 50
	}
	return &Workflow{
		repo:      deps.Repository,
		analyzer:  deps.Analyzer,
		queue:     deps.Queue,
		cache:     deps.Cache,
		notifier:  deps.Notifier,
		threshold: threshold,
		logger:    deps.Logger,
	}
}

// Submit stores the article in pending-analysis state and enqueues one
// background analysis run. It returns the public hash ID immediately and
// never waits for the network-bound analysis.
func (w *Workflow) Submit(ctx context.Context, title, content string, submitterID int64) (string, error) {
	hashID, err := newHashID()
	if err != nil {
		return "", fmt.Errorf("generate hash id: %w", err)
	}

	article := domain.Article{
		HashID:      hashID,
		Title:       title,
		Content:     content,
		Status:      domain.StatusPendingAnalysis,
		SubmittedBy: submitterID,
	}
	if err := w.repo.CreatePending(ctx, &article); err != nil {
		return "", fmt.Errorf("persist submission: %w", err)
	}

	task := domain.AnalysisTask{
		ArticleID:   article.ID,
		HashID:      article.HashID,
		SubmitterID: submitterID,
		Title:       title,
		Content:     content,
	}
	if err := w.queue.Enqueue(task); err != nil {
		return "", fmt.Errorf("enqueue analysis: %w", err)
	}

	w.logger.Info("article submitted for analysis", "hash_id", hashID)
	return hashID, nil
}

// ProcessTask is the worker-pool handler: it runs the analysis over the
// task's snapshot and applies the verdict exactly once.
func (w *Workflow) ProcessTask(ctx context.Context, task domain.AnalysisTask) {
	report := w.analyzeWithCache(ctx, task)

	verdict := w.buildVerdict(task, report.Final)
	if err := w.repo.ApplyVerdict(ctx, verdict); err != nil {
		w.logger.Error("verdict write-back failed", "hash_id", task.HashID, "error", err)
		return
	}

	if verdict.Discard {
		metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeDiscarded).Inc()
		w.logger.Info("article automatically discarded", "hash_id", task.HashID, "score", report.Final)
	} else {
		metrics.AnalysesTotal.WithLabelValues(metrics.OutcomeScored).Inc()
		w.logger.Info("article marked pending review", "hash_id", task.HashID, "score", report.Final)
	}

	if w.notifier != nil {
		event := domain.AnalysisEvent{
			HashID:    task.HashID,
			ArticleID: task.ArticleID,
			Score:     report.Final,
			Discarded: verdict.Discard,
			Report:    report,
		}
		if err := w.notifier.PublishAnalysis(ctx, event); err != nil {
			w.logger.Warn("analysis event publish failed", "hash_id", task.HashID, "error", err)
		}
	}
}

func (w *Workflow) analyzeWithCache(ctx context.Context, task domain.AnalysisTask) domain.CredibilityReport {
	key := cacheKey(task.Title, task.Content)

	if w.cache != nil {
		if score, ok, err := w.cache.Get(ctx, key); err != nil {
			w.logger.Warn("score cache lookup failed", "error", err)
		} else if ok {
			metrics.CacheHitsTotal.Inc()
			w.logger.Debug("score cache hit", "hash_id", task.HashID, "score", score)
			return domain.CredibilityReport{Final: score, CacheHit: true}
		}
	}

	report := w.analyzer.Analyze(ctx, task.Title, task.Content)

	if w.cache != nil && !report.Fallback {
		if err := w.cache.Set(ctx, key, report.Final); err != nil {
			w.logger.Warn("score cache store failed", "error", err)
		}
	}
	return report
}

func (w *Workflow) buildVerdict(task domain.AnalysisTask, score float64) domain.Verdict {
	if score < w.threshold {
		return domain.Verdict{
			ArticleID: task.ArticleID,
			Score:     score,
			Discard:   true,
			LogAction: fmt.Sprintf("Auto-deleted (trust %.1f%%)", score),
			Notice: domain.Notification{
				UserID:  task.SubmitterID,
				Message: fmt.Sprintf("Your article '%s' was automatically deleted (trust %.1f%%).", task.Title, score),
			},
		}
	}
	return domain.Verdict{
		ArticleID: task.ArticleID,
		Score:     score,
		LogAction: fmt.Sprintf("Marked pending (trust %.1f%%)", score),
		Notice: domain.Notification{
			UserID:  task.SubmitterID,
			Message: fmt.Sprintf("Your article '%s' passed authenticity check (trust %.1f%%) and is pending approval.", task.Title, score),
		},
	}
}

// GetArticle exposes submission state for the read API.
func (w *Workflow) GetArticle(ctx context.Context, hashID string) (domain.Article, error) {
	return w.repo.GetByHashID(ctx, hashID)
}

func cacheKey(title, content string) string {
	sum := sha256.Sum256([]byte(title + "\n" + content))
	return "newscred:score:" + hex.EncodeToString(sum[:])
}

func newHashID() (string, error) {
	buf := make([]byte, hashIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = hashIDAlphabet[int(b)%len(hashIDAlphabet)]
	}
	return string(buf), nil
}
