package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/nwebcraft/reghawk/pkg/domain"
)

// SourceRepository handles feed source database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a feed source row
type sourceSQL struct {
	ID            int64      `db:"id"`
	Key           string     `db:"key"`
	Name          string     `db:"name"`
	RSSURL        string     `db:"rss_url"`
	Interest      *string    `db:"interest"`
	IsActive      bool       `db:"is_active"`
	LastFetchedAt *time.Time `db:"last_fetched_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// ActiveFeedSources returns active sources ordered by key, so run logs and
// per-run iteration are deterministic
func (r *SourceRepository) ActiveFeedSources(ctx context.Context) ([]domain.FeedSource, error) {
	var rows []sourceSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM feed_sources WHERE is_active = 1 ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("get active feed sources: %w", err)
	}

	sources := make([]domain.FeedSource, len(rows))
	for i, row := range rows {
		sources[i] = r.toDomainSource(&row)
	}
	return sources, nil
}

// CreateSource inserts a new feed source
func (r *SourceRepository) CreateSource(ctx context.Context, source *domain.FeedSource) error {
	row := &sourceSQL{
		Key:      source.Key,
		Name:     source.Name,
		RSSURL:   source.FeedURL,
		Interest: source.Interest,
		IsActive: source.Active,
	}

	query := `
		INSERT INTO feed_sources (key, name, rss_url, interest, is_active)
		VALUES (:key, :name, :rss_url, :interest, :is_active)
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("create feed source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	source.ID = id
	return nil
}

// TouchLastFetched records a fetch attempt for the source, success or not
func (r *SourceRepository) TouchLastFetched(ctx context.Context, sourceKey string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE feed_sources SET last_fetched_at = datetime('now') WHERE key = ?", sourceKey)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("touch last fetched for %s: %w", sourceKey, err)}
		}
		return nil
	})
}

func (r *SourceRepository) toDomainSource(row *sourceSQL) domain.FeedSource {
	return domain.FeedSource{
		ID:            row.ID,
		Key:           row.Key,
		Name:          row.Name,
		FeedURL:       row.RSSURL,
		Interest:      row.Interest,
		Active:        row.IsActive,
		LastFetchedAt: row.LastFetchedAt,
		CreatedAt:     row.CreatedAt,
	}
}
