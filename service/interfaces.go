package service

import (
	"context"
	"io"

	"autonews/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// IngestService pulls configured feeds into the content queue.
type IngestService interface {
	FetchSource(ctx context.Context, sourceID string) (*domain.FetchOutcome, error)
	FetchAllDue(ctx context.Context) ([]domain.FetchOutcome, error)
}

// QueueProcessorService converts due queue entries into articles.
type QueueProcessorService interface {
	ProcessBatch(ctx context.Context) (*ProcessingResult, error)
}

// RewriteService runs completed entries through the external rewrite model.
type RewriteService interface {
	ProcessPending(ctx context.Context) (*RewriteResult, error)
	RewriteEntry(ctx context.Context, entryID uuid.UUID) error
}

// UploadService imports manually uploaded content batches into the queue.
type UploadService interface {
	ImportJSON(ctx context.Context, r io.Reader) (*UploadResult, error)
	ImportCSV(ctx context.Context, r io.Reader) (*UploadResult, error)
}

// FeedFetcher downloads and parses one syndication feed.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (*domain.Feed, error)
}

// ArticleFetcherService downloads a source page and extracts its readable
// body text.
type ArticleFetcherService interface {
	FetchArticle(ctx context.Context, pageURL string) (string, error)
	ValidateURL(pageURL string) error
}

// HealthCheckerService monitors the external rewrite model.
type HealthCheckerService interface {
	CheckRewriterHealth(ctx context.Context) error
	WaitForHealthy(ctx context.Context) error
}

// ProcessingResult summarizes one queue processing run. Per-entry failures
// are collected here instead of aborting the batch.
type ProcessingResult struct {
	Errors         []error
	ProcessedCount int
	SuccessCount   int
	DuplicateCount int
	ErrorCount     int
}

// RewriteResult summarizes one rewrite run.
type RewriteResult struct {
	Errors         []error
	ProcessedCount int
	SuccessCount   int
	ErrorCount     int
	Deferred       bool
}

// UploadResult summarizes one manual import.
type UploadResult struct {
	RowCount int `json:"row_count"`
	Enqueued int `json:"enqueued"`
}
