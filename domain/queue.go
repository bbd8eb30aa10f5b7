package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceType distinguishes how a queue entry entered the pipeline.
type SourceType string

const (
	SourceTypeRSS    SourceType = "rss"
	SourceTypeManual SourceType = "manual"
)

// ProcessingStatus is the article-creation dimension of a queue entry's
// state. Transitions are monotonic: pending -> processing -> completed|failed.
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

// IsTerminal returns true once the entry can no longer change processing state.
func (s ProcessingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo enforces the monotonic state machine. An entry never
// reverts to an earlier state.
func (s ProcessingStatus) CanTransitionTo(next ProcessingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

// RewriteStatus is the AI-rewrite dimension of a queue entry's state. It
// advances independently of ProcessingStatus. A failed rewrite may be
// re-triggered manually, so rewrite_failed -> rewritten is allowed.
type RewriteStatus string

const (
	RewriteNone   RewriteStatus = "none"
	RewriteDone   RewriteStatus = "rewritten"
	RewriteFailed RewriteStatus = "rewrite_failed"
)

// CanTransitionTo validates rewrite-state moves.
func (s RewriteStatus) CanTransitionTo(next RewriteStatus) bool {
	switch s {
	case RewriteNone:
		return next == RewriteDone || next == RewriteFailed
	case RewriteFailed:
		return next == RewriteDone
	default:
		return false
	}
}

// RewriteResult is the structured output of the external rewrite service.
type RewriteResult struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
	Category        string   `json:"category"`
	Summary         string   `json:"summary"`
}

// SourcePayload is the opaque jsonb payload stored on a queue entry. RSS
// entries carry the original item plus its processed form; manual entries
// carry the raw uploaded row plus the alias-normalized item.
type SourcePayload struct {
	RSSSourceID string            `json:"rss_source_id,omitempty"`
	Original    *FeedItem         `json:"original_item,omitempty"`
	Processed   *ProcessedContent `json:"processed_content,omitempty"`
	Normalized  *FeedItem         `json:"normalized_data,omitempty"`
	UploadKind  string            `json:"upload_kind,omitempty"`
}

// QueueEntry is one unit of candidate content awaiting conversion into a
// published article. Entries are never deleted by the pipeline; terminal
// entries are retained for audit.
type QueueEntry struct {
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	ScheduledFor  time.Time        `db:"scheduled_for" json:"scheduled_for"`
	ProcessedAt   *time.Time       `db:"processed_at" json:"processed_at,omitempty"`
	RewrittenAt   *time.Time       `db:"rewritten_at" json:"rewritten_at,omitempty"`
	ErrorMessage  *string          `db:"error_message" json:"error_message,omitempty"`
	ArticleID     *string          `db:"article_id" json:"article_id,omitempty"`
	Rewrite       *RewriteResult   `db:"rewrite_result" json:"rewrite_result,omitempty"`
	ID            uuid.UUID        `db:"id" json:"id"`
	SourceType    SourceType       `db:"source_type" json:"source_type"`
	Status        ProcessingStatus `db:"processing_status" json:"processing_status"`
	RewriteStatus RewriteStatus    `db:"rewrite_status" json:"rewrite_status"`
	SourceData    SourcePayload    `db:"source_data" json:"source_data"`
}

// Due reports whether the entry is eligible for processing at now.
func (e *QueueEntry) Due(now time.Time) bool {
	return e.Status == StatusPending && !e.ScheduledFor.After(now)
}
