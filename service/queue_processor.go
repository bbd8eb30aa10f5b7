// ABOUTME: This file converts claimed queue entries into articles
// ABOUTME: Each entry fails on its own, a bad payload never poisons the batch
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"autonews/config"
	"autonews/domain"
	"autonews/repository"
)

type queueProcessorService struct {
	queueRepo   repository.QueueRepository
	articleRepo repository.ArticleRepository
	config      *config.Config
	logger      *slog.Logger
	clock       func() time.Time
}

// NewQueueProcessorService creates the queue processing service.
func NewQueueProcessorService(
	queueRepo repository.QueueRepository,
	articleRepo repository.ArticleRepository,
	cfg *config.Config,
	logger *slog.Logger,
) QueueProcessorService {
	return &queueProcessorService{
		queueRepo:   queueRepo,
		articleRepo: articleRepo,
		config:      cfg,
		logger:      logger,
		clock:       time.Now,
	}
}

// ProcessBatch claims one batch of due entries and converts each into an
// article. Claiming flips entries to processing atomically, so concurrent
// invocations never double-process.
func (s *queueProcessorService) ProcessBatch(ctx context.Context) (*ProcessingResult, error) {
	entries, err := s.queueRepo.ClaimBatch(ctx, s.config.Queue.BatchSize, s.clock())
	if err != nil {
		return nil, fmt.Errorf("failed to claim batch: %w", err)
	}

	result := &ProcessingResult{ProcessedCount: len(entries)}

	for _, entry := range entries {
		if err := s.processEntry(ctx, entry); err != nil {
			switch {
			case errors.Is(err, domain.ErrDuplicateContent):
				result.DuplicateCount++
			default:
				result.ErrorCount++
				result.Errors = append(result.Errors, err)
			}

			continue
		}

		result.SuccessCount++
	}

	if result.ProcessedCount > 0 {
		s.logger.InfoContext(ctx, "queue batch processed",
			"processed", result.ProcessedCount,
			"succeeded", result.SuccessCount,
			"duplicates", result.DuplicateCount,
			"errors", result.ErrorCount)
	}

	return result, nil
}

// processEntry turns one claimed entry into an article and marks the entry
// terminal either way.
func (s *queueProcessorService) processEntry(ctx context.Context, entry *domain.QueueEntry) error {
	processed, err := s.extractContent(entry)
	if err != nil {
		s.failEntry(ctx, entry, err)
		return err
	}

	article := &domain.Article{
		Title:         processed.Title,
		Slug:          processed.Slug,
		Content:       processed.Content,
		Excerpt:       processed.Excerpt,
		SourceURL:     processed.SourceURL,
		SourceName:    processed.SourceName,
		PublishedAt:   processed.PublishedAt,
		IsPublished:   false,
		IsAIGenerated: false,
	}

	if processed.CategoryID != "" {
		article.CategoryID = &processed.CategoryID
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		s.failEntry(ctx, entry, err)
		return err
	}

	if err := s.queueRepo.MarkCompleted(ctx, entry.ID, article.ID); err != nil {
		return fmt.Errorf("entry %s completed but status update failed: %w", entry.ID, err)
	}

	return nil
}

// extractContent resolves the entry payload to the common processed shape.
// RSS entries were normalized at ingest time; manual entries are normalized
// here so edits to a queued payload still take effect.
func (s *queueProcessorService) extractContent(entry *domain.QueueEntry) (*domain.ProcessedContent, error) {
	switch entry.SourceType {
	case domain.SourceTypeRSS:
		if entry.SourceData.Processed == nil {
			return nil, fmt.Errorf("rss entry %s has no processed content", entry.ID)
		}

		return entry.SourceData.Processed, nil

	case domain.SourceTypeManual:
		item := entry.SourceData.Normalized
		if item == nil {
			item = entry.SourceData.Original
		}

		if item == nil {
			return nil, fmt.Errorf("manual entry %s has no payload", entry.ID)
		}

		return BuildProcessedContent(item, "", s.config.Ingest.DefaultExcerpt), nil

	default:
		return nil, fmt.Errorf("entry %s: %w: %s", entry.ID, domain.ErrUnknownSourceType, entry.SourceType)
	}
}

func (s *queueProcessorService) failEntry(ctx context.Context, entry *domain.QueueEntry, cause error) {
	if err := s.queueRepo.MarkFailed(ctx, entry.ID, cause.Error()); err != nil {
		s.logger.ErrorContext(ctx, "failed to mark entry failed",
			"error", err, "entry_id", entry.ID, "cause", cause)
	}
}
