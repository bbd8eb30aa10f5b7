package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autonews/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sourceColumns = `id, name, url, category_id, fetch_interval, is_active, last_fetched_at, created_at`

func scanSource(row pgx.Row) (*domain.Source, error) {
	var s domain.Source

	err := row.Scan(&s.ID, &s.Name, &s.URL, &s.CategoryID, &s.FetchInterval,
		&s.IsActive, &s.LastFetchedAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// ListActiveSources returns the active feed sources ordered least recently
// fetched first, never-fetched sources ahead of everything.
func ListActiveSources(ctx context.Context, db *pgxpool.Pool) ([]*domain.Source, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT ` + sourceColumns + `
		FROM rss_sources
		WHERE is_active = true
		ORDER BY last_fetched_at ASC NULLS FIRST, created_at ASC
	`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active sources: %w", err)
	}
	defer rows.Close()

	var sources []*domain.Source

	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}

		sources = append(sources, s)
	}

	return sources, rows.Err()
}

// GetSource fetches one source by id.
func GetSource(ctx context.Context, db *pgxpool.Pool, id string) (*domain.Source, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + sourceColumns + ` FROM rss_sources WHERE id = $1`

	s, err := scanSource(db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSourceNotFound
		}

		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return s, nil
}

// TouchSourceFetched records a fetch attempt timestamp. It is written on
// success and failure alike so a broken feed does not get hammered.
func TouchSourceFetched(ctx context.Context, db *pgxpool.Pool, id string, at time.Time) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	tag, err := db.Exec(ctx, `UPDATE rss_sources SET last_fetched_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("failed to update source fetch time: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSourceNotFound
	}

	return nil
}

// CreateSource registers a new feed source.
func CreateSource(ctx context.Context, db *pgxpool.Pool, s *domain.Source) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		INSERT INTO rss_sources (id, name, url, category_id, fetch_interval, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := db.Exec(ctx, query, s.ID, s.Name, s.URL, s.CategoryID, s.FetchInterval, s.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}

	return nil
}
