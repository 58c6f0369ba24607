package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"newscred/internal/domain"
	"newscred/internal/ports"
)

// PostgresRepository persists submissions, verdicts, audit entries and user
// notifications in Postgres.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ArticleRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreatePending inserts the submission in pending-analysis state and fills
// in the generated row ID.
func (r *PostgresRepository) CreatePending(ctx context.Context, article *domain.Article) error {
	if r.db == nil {
		return fmt.Errorf("repository is not configured")
	}

	query, args, err := r.builder.
		Insert("articles").
		Columns("hash_id", "title", "content", "status", "submitted_by").
		Values(article.HashID, article.Title, article.Content, string(article.Status), article.SubmittedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&article.ID, &article.CreatedAt); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// ApplyVerdict performs the write-back transaction for one analysis run:
// either deletes the discarded article or stores the score and moves it to
// pending review, plus the audit log row and the submitter notification.
func (r *PostgresRepository) ApplyVerdict(ctx context.Context, verdict domain.Verdict) error {
	if r.db == nil {
		return fmt.Errorf("repository is not configured")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin verdict tx: %w", err)
	}
	defer tx.Rollback()

	if verdict.Discard {
		query, args, bErr := r.builder.
			Delete("articles").
			Where(sq.Eq{"id": verdict.ArticleID}).
			ToSql()
		if bErr != nil {
			return fmt.Errorf("build delete: %w", bErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
	} else {
		query, args, bErr := r.builder.
			Update("articles").
			Set("credibility_score", verdict.Score).
			Set("status", string(domain.StatusPendingReview)).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": verdict.ArticleID}).
			ToSql()
		if bErr != nil {
			return fmt.Errorf("build update: %w", bErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("store score: %w", err)
		}
	}

	if err = r.insertAudit(ctx, tx, verdict.ArticleID, verdict.LogAction); err != nil {
		return err
	}
	if err = r.insertNotification(ctx, tx, verdict.Notice); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit verdict: %w", err)
	}
	return nil
}

// GetByHashID loads a submission by its public identifier.
func (r *PostgresRepository) GetByHashID(ctx context.Context, hashID string) (domain.Article, error) {
	if r.db == nil {
		return domain.Article{}, fmt.Errorf("repository is not configured")
	}

	query, args, err := r.builder.
		Select("id", "hash_id", "title", "content", "status", "submitted_by", "credibility_score", "created_at", "updated_at").
		From("articles").
		Where(sq.Eq{"hash_id": hashID}).
		ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build select: %w", err)
	}

	var (
		article domain.Article
		status  string
		score   sql.NullFloat64
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&article.ID, &article.HashID, &article.Title, &article.Content,
		&status, &article.SubmittedBy, &score, &article.CreatedAt, &article.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, ports.ErrArticleNotFound
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("load article: %w", err)
	}

	article.Status = domain.ArticleStatus(status)
	if score.Valid {
		article.Score = score.Float64
		article.Scored = true
	}
	return article, nil
}

func (r *PostgresRepository) insertAudit(ctx context.Context, tx *sql.Tx, articleID int64, action string) error {
	query, args, err := r.builder.
		Insert("audit_log").
		Columns("article_id", "action").
		Values(articleID, action).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *PostgresRepository) insertNotification(ctx context.Context, tx *sql.Tx, notice domain.Notification) error {
	query, args, err := r.builder.
		Insert("notifications").
		Columns("user_id", "message").
		Values(notice.UserID, notice.Message).
		ToSql()
	if err != nil {
		return fmt.Errorf("build notification insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
