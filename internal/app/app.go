package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"newscred/internal/analysis"
	"newscred/internal/config"
	"newscred/internal/infrastructure/cache"
	"newscred/internal/infrastructure/httpapi"
	"newscred/internal/infrastructure/notify"
	"newscred/internal/infrastructure/storage"
	"newscred/internal/logging"
	"newscred/internal/ports"
	"newscred/internal/usecase"
	"newscred/internal/worker"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	server   *httpapi.Server
	pool     *worker.Pool
	workflow *usecase.Workflow

	db       *sql.DB
	scores   *cache.RedisScoreCache
	notifier *notify.NATSNotifier
}

// New builds a runnable application instance. Redis and NATS are optional:
// if they are not configured or unreachable, the service runs without the
// score cache and without event publishing.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	a := &Application{cfg: cfg, logger: baseLogger}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database dsn is not configured")
	}
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = db
	repo := storage.NewPostgresRepository(db)

	var scoreCache ports.ScoreCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisScoreCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			baseLogger.Warn("score cache disabled", "error", err)
		} else {
			a.scores = redisCache
			scoreCache = redisCache
		}
	}

	var notifier ports.Notifier
	if cfg.NATS.URL != "" {
		natsNotifier, err := notify.NewNATSNotifier(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			baseLogger.Warn("analysis events disabled", "error", err)
		} else {
			a.notifier = natsNotifier
			notifier = natsNotifier
		}
	}

	analyzer := buildAnalyzer(cfg.Analysis, baseLogger)

	a.pool = worker.NewPool(cfg.Worker.Count, cfg.Worker.QueueSize, baseLogger.With("component", "worker"))

	a.workflow = usecase.NewWorkflow(usecase.WorkflowDeps{
		Repository: repo,
		Analyzer:   analyzer,
		Queue:      a.pool,
		Cache:      scoreCache,
		Notifier:   notifier,
		Threshold:  cfg.Analysis.ApprovalThreshold,
		Logger:     baseLogger.With("component", "workflow"),
	})

	a.server = httpapi.NewServer(a.workflow, baseLogger.With("component", "http"))
	return a, nil
}

func buildAnalyzer(cfg config.AnalysisConfig, baseLogger *slog.Logger) *analysis.Analyzer {
	fetcher := analysis.NewHTTPFetcher(nil)
	pacer := analysis.SleepPacer{}

	coverage := analysis.NewCoverageChecker(
		analysis.DefaultRegistry(),
		fetcher,
		pacer,
		cfg.SourceTimeout,
		cfg.SourceDelay,
		baseLogger.With("component", "coverage"),
	)
	factCheck := analysis.NewFactCheckVerifier(
		fetcher,
		pacer,
		cfg.FactCheckTimeout,
		cfg.FactCheckDelay,
		baseLogger.With("component", "factcheck"),
	)
	return analysis.NewAnalyzer(coverage, factCheck, baseLogger.With("component", "analyzer"))
}

// Run starts the worker pool and serves HTTP until the context is cancelled,
// then drains in-flight analyses.
func (a *Application) Run(ctx context.Context) error {
	a.pool.Start(ctx, a.workflow.ProcessTask)
	defer a.close()

	a.logger.Info("newscred started", "addr", a.cfg.HTTP.Addr, "workers", a.cfg.Worker.Count)
	return a.server.Run(ctx, a.cfg.HTTP.Addr)
}

func (a *Application) close() {
	a.pool.Stop()
	if a.notifier != nil {
		a.notifier.Close()
	}
	if a.scores != nil {
		_ = a.scores.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
