package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autonews/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const queueColumns = `id, source_type, source_data, processing_status, rewrite_status,
	scheduled_for, error_message, article_id, rewrite_result, created_at, processed_at, rewritten_at`

func scanQueueEntry(row pgx.Row) (*domain.QueueEntry, error) {
	var e domain.QueueEntry

	err := row.Scan(&e.ID, &e.SourceType, &e.SourceData, &e.Status, &e.RewriteStatus,
		&e.ScheduledFor, &e.ErrorMessage, &e.ArticleID, &e.Rewrite,
		&e.CreatedAt, &e.ProcessedAt, &e.RewrittenAt)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func collectQueueEntries(rows pgx.Rows) ([]*domain.QueueEntry, error) {
	defer rows.Close()

	var entries []*domain.QueueEntry

	for rows.Next() {
		e, err := scanQueueEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// InsertQueueEntry adds a pending entry to the content queue.
func InsertQueueEntry(ctx context.Context, db *pgxpool.Pool, entry *domain.QueueEntry) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		INSERT INTO content_queue (id, source_type, source_data, processing_status, rewrite_status, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := db.Exec(ctx, query,
		entry.ID, entry.SourceType, entry.SourceData, entry.Status, entry.RewriteStatus, entry.ScheduledFor)
	if err != nil {
		return fmt.Errorf("failed to insert queue entry: %w", err)
	}

	return nil
}

// ClaimDueEntries atomically moves up to limit due pending entries to
// processing and returns them. SKIP LOCKED keeps concurrent workers from
// claiming the same rows; the claim and the status flip are one statement so
// a crash between them is impossible.
func ClaimDueEntries(ctx context.Context, db *pgxpool.Pool, limit int, now time.Time) ([]*domain.QueueEntry, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		UPDATE content_queue
		SET processing_status = 'processing'
		WHERE id IN (
			SELECT id FROM content_queue
			WHERE processing_status = 'pending' AND scheduled_for <= $2
			ORDER BY created_at ASC
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + queueColumns

	rows, err := db.Query(ctx, query, limit, now)
	if err != nil {
		return nil, fmt.Errorf("failed to claim queue entries: %w", err)
	}

	return collectQueueEntries(rows)
}

// MarkEntryCompleted finishes a claimed entry, linking it to the article it
// produced. Only entries still in processing can complete.
func MarkEntryCompleted(ctx context.Context, db *pgxpool.Pool, id uuid.UUID, articleID string, at time.Time) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		UPDATE content_queue
		SET processing_status = 'completed', article_id = $2, processed_at = $3, error_message = NULL
		WHERE id = $1 AND processing_status = 'processing'
	`

	tag, err := db.Exec(ctx, query, id, articleID, at)
	if err != nil {
		return fmt.Errorf("failed to mark entry completed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotClaimable
	}

	return nil
}

// MarkEntryFailed records a processing failure with its message.
func MarkEntryFailed(ctx context.Context, db *pgxpool.Pool, id uuid.UUID, message string, at time.Time) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		UPDATE content_queue
		SET processing_status = 'failed', error_message = $2, processed_at = $3
		WHERE id = $1 AND processing_status = 'processing'
	`

	tag, err := db.Exec(ctx, query, id, message, at)
	if err != nil {
		return fmt.Errorf("failed to mark entry failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotClaimable
	}

	return nil
}

// GetQueueEntry fetches one entry by id.
func GetQueueEntry(ctx context.Context, db *pgxpool.Pool, id uuid.UUID) (*domain.QueueEntry, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + queueColumns + ` FROM content_queue WHERE id = $1`

	e, err := scanQueueEntry(db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, fmt.Errorf("failed to get queue entry: %w", err)
	}

	return e, nil
}

// SelectEntriesForRewrite returns completed entries that have no rewrite yet,
// oldest first.
func SelectEntriesForRewrite(ctx context.Context, db *pgxpool.Pool, limit int) ([]*domain.QueueEntry, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT ` + queueColumns + `
		FROM content_queue
		WHERE processing_status = 'completed' AND rewrite_status = 'none'
		ORDER BY created_at ASC
		LIMIT $1
	`

	rows, err := db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries for rewrite: %w", err)
	}

	return collectQueueEntries(rows)
}

// SetRewriteDone stores the structured rewrite result. A previous failed
// rewrite may be overwritten by a manual re-trigger.
func SetRewriteDone(ctx context.Context, db *pgxpool.Pool, id uuid.UUID, result *domain.RewriteResult, at time.Time) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		UPDATE content_queue
		SET rewrite_status = 'rewritten', rewrite_result = $2, rewritten_at = $3
		WHERE id = $1 AND rewrite_status IN ('none', 'rewrite_failed')
	`

	tag, err := db.Exec(ctx, query, id, result, at)
	if err != nil {
		return fmt.Errorf("failed to store rewrite result: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// SetRewriteFailed marks an entry's rewrite as failed. The entry itself stays
// completed; only the rewrite dimension moves.
func SetRewriteFailed(ctx context.Context, db *pgxpool.Pool, id uuid.UUID, message string, at time.Time) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		UPDATE content_queue
		SET rewrite_status = 'rewrite_failed', error_message = $2, rewritten_at = $3
		WHERE id = $1 AND rewrite_status = 'none'
	`

	tag, err := db.Exec(ctx, query, id, message, at)
	if err != nil {
		return fmt.Errorf("failed to mark rewrite failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// ListQueueEntries pages through the queue for the admin view, newest first,
// optionally filtered by processing status.
func ListQueueEntries(ctx context.Context, db *pgxpool.Pool, status *domain.ProcessingStatus, cursor *domain.Cursor, limit int) ([]*domain.QueueEntry, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + queueColumns + ` FROM content_queue`
	args := []any{}
	where := []string{}

	if status != nil {
		args = append(args, *status)
		where = append(where, fmt.Sprintf("processing_status = $%d", len(args)))
	}

	if cursor != nil && cursor.LastCreatedAt != nil {
		args = append(args, *cursor.LastCreatedAt, cursor.LastID)
		where = append(where, fmt.Sprintf("(created_at, id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue entries: %w", err)
	}

	return collectQueueEntries(rows)
}

// CountQueueByStatus returns entry counts per processing status for the
// health and stats endpoints.
func CountQueueByStatus(ctx context.Context, db *pgxpool.Pool) (map[domain.ProcessingStatus]int, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	rows, err := db.Query(ctx, `SELECT processing_status, COUNT(*) FROM content_queue GROUP BY processing_status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count queue entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ProcessingStatus]int)

	for rows.Next() {
		var status domain.ProcessingStatus

		var n int

		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan queue count: %w", err)
		}

		counts[status] = n
	}

	return counts, rows.Err()
}
