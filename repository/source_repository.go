package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autonews/domain"
	"autonews/driver"

	"github.com/jackc/pgx/v5/pgxpool"
)

type sourceRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewSourceRepository creates a new source repository.
func NewSourceRepository(db *pgxpool.Pool, logger *slog.Logger) SourceRepository {
	return &sourceRepository{
		db:     db,
		logger: logger,
	}
}

// ListActive returns the active sources, least recently fetched first.
func (r *sourceRepository) ListActive(ctx context.Context) ([]*domain.Source, error) {
	sources, err := driver.ListActiveSources(ctx, r.db)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list active sources", "error", err)
		return nil, fmt.Errorf("failed to list active sources: %w", err)
	}

	r.logger.DebugContext(ctx, "listed active sources", "count", len(sources))

	return sources, nil
}

// FindByID fetches one source.
func (r *sourceRepository) FindByID(ctx context.Context, id string) (*domain.Source, error) {
	source, err := driver.GetSource(ctx, r.db, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to find source", "error", err, "source_id", id)
		return nil, fmt.Errorf("failed to find source: %w", err)
	}

	return source, nil
}

// MarkFetched stamps the last fetch time after an attempt.
func (r *sourceRepository) MarkFetched(ctx context.Context, id string, at time.Time) error {
	if err := driver.TouchSourceFetched(ctx, r.db, id, at); err != nil {
		r.logger.ErrorContext(ctx, "failed to mark source fetched", "error", err, "source_id", id)
		return fmt.Errorf("failed to mark source fetched: %w", err)
	}

	return nil
}

// Create registers a new source.
func (r *sourceRepository) Create(ctx context.Context, source *domain.Source) error {
	if err := driver.CreateSource(ctx, r.db, source); err != nil {
		r.logger.ErrorContext(ctx, "failed to create source", "error", err, "url", source.URL)
		return fmt.Errorf("failed to create source: %w", err)
	}

	r.logger.InfoContext(ctx, "source created", "source_id", source.ID, "url", source.URL)

	return nil
}
