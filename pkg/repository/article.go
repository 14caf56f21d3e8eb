package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/nwebcraft/reghawk/pkg/domain"
)

// ArticleRepository handles article database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article row
type articleSQL struct {
	ID             int64      `db:"id"`
	Source         string     `db:"source"`
	SourceName     string     `db:"source_name"`
	Title          string     `db:"title"`
	URL            string     `db:"url"`
	PublishedAt    *time.Time `db:"published_at"`
	IsRelevant     *bool      `db:"is_relevant"`
	Category       *string    `db:"category"`
	Summary        *string    `db:"summary"`
	WhatChanges    *string    `db:"what_changes"`
	WhoAffected    *string    `db:"who_affected"`
	EffectiveDate  *string    `db:"effective_date"`
	ActionRequired *string    `db:"action_required"`
	NotifiedAt     *time.Time `db:"notified_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// InsertIfNew stores a parsed feed entry unless its URL is already known.
// URL is the sole dedup key; a duplicate insert is a no-op, not an error,
// and reports wasNew=false. The stored article is returned either way.
// Safe under concurrent source processing, the unique constraint decides.
func (r *ArticleRepository) InsertIfNew(ctx context.Context, item domain.FeedItem, source domain.FeedSource) (*domain.Article, bool, error) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var wasNew bool
	err := retrier.Do(ctx, func() error {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO articles (source, source_name, title, url, published_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (url) DO NOTHING
		`, source.Key, source.Name, item.Title, item.URL, item.PublishedAt)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("insert article %s: %w", item.URL, err)}
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected for %s: %w", item.URL, err)}
		}
		wasNew = affected > 0
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	stored, err := r.GetByURL(ctx, item.URL)
	if err != nil {
		return nil, false, err
	}
	return stored, wasNew, nil
}

// GetByURL retrieves an article by its URL
func (r *ArticleRepository) GetByURL(ctx context.Context, url string) (*domain.Article, error) {
	var row articleSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM articles WHERE url = ?", url); err != nil {
		return nil, fmt.Errorf("get article by url %s: %w", url, err)
	}
	return r.toDomainArticle(&row), nil
}

// UpdateClassification records the relevance judgment. It is written for
// every judged article, relevant or not, so the same URL is never judged
// twice across runs.
func (r *ArticleRepository) UpdateClassification(ctx context.Context, articleID int64, relevant bool, category *string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			UPDATE articles
			SET is_relevant = ?, category = ?, updated_at = datetime('now')
			WHERE id = ?
		`, relevant, category, articleID)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update classification for article %d: %w", articleID, err)}
		}
		return nil
	})
}

// UpdateAnalysis records the five impact analysis fields
func (r *ArticleRepository) UpdateAnalysis(ctx context.Context, articleID int64, analysis domain.Analysis) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			UPDATE articles
			SET summary = ?, what_changes = ?, who_affected = ?,
			    effective_date = ?, action_required = ?, updated_at = datetime('now')
			WHERE id = ?
		`, analysis.Summary, analysis.WhatChanges, analysis.WhoAffected,
			analysis.EffectiveDate, analysis.ActionRequired, articleID)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("update analysis for article %d: %w", articleID, err)}
		}
		return nil
	})
}

// MarkNotified sets the notified timestamp after a successful broadcast
func (r *ArticleRepository) MarkNotified(ctx context.Context, articleID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			UPDATE articles
			SET notified_at = datetime('now'), updated_at = datetime('now')
			WHERE id = ?
		`, articleID)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("mark notified for article %d: %w", articleID, err)}
		}
		return nil
	})
}

// AwaitingNotify returns relevant, analyzed articles that were never
// broadcast, oldest first. These are retried every run until a broadcast
// containing them succeeds.
func (r *ArticleRepository) AwaitingNotify(ctx context.Context) ([]domain.Article, error) {
	var rows []articleSQL
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM articles
		WHERE is_relevant = 1 AND what_changes IS NOT NULL AND notified_at IS NULL
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("get articles awaiting notify: %w", err)
	}

	articles := make([]domain.Article, len(rows))
	for i := range rows {
		articles[i] = *r.toDomainArticle(&rows[i])
	}
	return articles, nil
}

func (r *ArticleRepository) toDomainArticle(row *articleSQL) *domain.Article {
	return &domain.Article{
		ID:             row.ID,
		Source:         row.Source,
		SourceName:     row.SourceName,
		Title:          row.Title,
		URL:            row.URL,
		PublishedAt:    row.PublishedAt,
		Relevant:       row.IsRelevant,
		Category:       row.Category,
		Summary:        row.Summary,
		WhatChanges:    row.WhatChanges,
		WhoAffected:    row.WhoAffected,
		EffectiveDate:  row.EffectiveDate,
		ActionRequired: row.ActionRequired,
		NotifiedAt:     row.NotifiedAt,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
