package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autonews/domain"
	"autonews/driver"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queueRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	clock  func() time.Time
}

// NewQueueRepository creates a new content queue repository.
func NewQueueRepository(db *pgxpool.Pool, logger *slog.Logger) QueueRepository {
	return &queueRepository{
		db:     db,
		logger: logger,
		clock:  time.Now,
	}
}

// Enqueue inserts a new pending entry.
func (r *queueRepository) Enqueue(ctx context.Context, entry *domain.QueueEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if entry.Status == "" {
		entry.Status = domain.StatusPending
	}

	if entry.RewriteStatus == "" {
		entry.RewriteStatus = domain.RewriteNone
	}

	if entry.ScheduledFor.IsZero() {
		entry.ScheduledFor = r.clock()
	}

	if err := driver.InsertQueueEntry(ctx, r.db, entry); err != nil {
		r.logger.ErrorContext(ctx, "failed to enqueue entry", "error", err, "source_type", entry.SourceType)
		return fmt.Errorf("failed to enqueue entry: %w", err)
	}

	r.logger.InfoContext(ctx, "entry enqueued",
		"entry_id", entry.ID,
		"source_type", entry.SourceType,
		"scheduled_for", entry.ScheduledFor)

	return nil
}

// ClaimBatch atomically claims up to limit due entries for processing.
func (r *queueRepository) ClaimBatch(ctx context.Context, limit int, now time.Time) ([]*domain.QueueEntry, error) {
	entries, err := driver.ClaimDueEntries(ctx, r.db, limit, now)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to claim queue batch", "error", err)
		return nil, fmt.Errorf("failed to claim queue batch: %w", err)
	}

	if len(entries) > 0 {
		r.logger.InfoContext(ctx, "claimed queue batch", "count", len(entries))
	}

	return entries, nil
}

// MarkCompleted finishes a claimed entry and links its article.
func (r *queueRepository) MarkCompleted(ctx context.Context, id uuid.UUID, articleID string) error {
	if err := driver.MarkEntryCompleted(ctx, r.db, id, articleID, r.clock()); err != nil {
		r.logger.ErrorContext(ctx, "failed to mark entry completed", "error", err, "entry_id", id)
		return fmt.Errorf("failed to mark entry completed: %w", err)
	}

	return nil
}

// MarkFailed records a processing failure.
func (r *queueRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	if err := driver.MarkEntryFailed(ctx, r.db, id, message, r.clock()); err != nil {
		r.logger.ErrorContext(ctx, "failed to mark entry failed", "error", err, "entry_id", id)
		return fmt.Errorf("failed to mark entry failed: %w", err)
	}

	return nil
}

// FindByID fetches one entry.
func (r *queueRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.QueueEntry, error) {
	entry, err := driver.GetQueueEntry(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find queue entry: %w", err)
	}

	return entry, nil
}

// FindForRewrite returns completed entries awaiting a rewrite.
func (r *queueRepository) FindForRewrite(ctx context.Context, limit int) ([]*domain.QueueEntry, error) {
	entries, err := driver.SelectEntriesForRewrite(ctx, r.db, limit)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to find entries for rewrite", "error", err)
		return nil, fmt.Errorf("failed to find entries for rewrite: %w", err)
	}

	return entries, nil
}

// StoreRewrite saves a successful rewrite result.
func (r *queueRepository) StoreRewrite(ctx context.Context, id uuid.UUID, result *domain.RewriteResult) error {
	if err := driver.SetRewriteDone(ctx, r.db, id, result, r.clock()); err != nil {
		r.logger.ErrorContext(ctx, "failed to store rewrite result", "error", err, "entry_id", id)
		return fmt.Errorf("failed to store rewrite result: %w", err)
	}

	return nil
}

// MarkRewriteFailed records a rewrite failure without touching the
// processing status.
func (r *queueRepository) MarkRewriteFailed(ctx context.Context, id uuid.UUID, message string) error {
	if err := driver.SetRewriteFailed(ctx, r.db, id, message, r.clock()); err != nil {
		r.logger.ErrorContext(ctx, "failed to mark rewrite failed", "error", err, "entry_id", id)
		return fmt.Errorf("failed to mark rewrite failed: %w", err)
	}

	return nil
}

// List pages through queue entries for the admin view.
func (r *queueRepository) List(ctx context.Context, status *domain.ProcessingStatus, cursor *domain.Cursor, limit int) ([]*domain.QueueEntry, error) {
	entries, err := driver.ListQueueEntries(ctx, r.db, status, cursor, limit)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list queue entries", "error", err)
		return nil, fmt.Errorf("failed to list queue entries: %w", err)
	}

	return entries, nil
}

// Stats returns entry counts per processing status.
func (r *queueRepository) Stats(ctx context.Context) (map[domain.ProcessingStatus]int, error) {
	counts, err := driver.CountQueueByStatus(ctx, r.db)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to get queue stats", "error", err)
		return nil, fmt.Errorf("failed to get queue stats: %w", err)
	}

	return counts, nil
}
