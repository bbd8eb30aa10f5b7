// ABOUTME: This file implements feed ingestion into the content queue
// ABOUTME: Per-item and per-source failures are isolated so one bad feed never aborts a run
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autonews/config"
	"autonews/domain"
	"autonews/repository"
	"autonews/utils"
)

type ingestService struct {
	sourceRepo     repository.SourceRepository
	articleRepo    repository.ArticleRepository
	queueRepo      repository.QueueRepository
	fetcher        FeedFetcher
	articleFetcher ArticleFetcherService
	sanitizer      *utils.Sanitizer
	config         *config.IngestConfig
	logger         *slog.Logger
	clock          func() time.Time
}

// NewIngestService creates the feed ingestion service.
func NewIngestService(
	sourceRepo repository.SourceRepository,
	articleRepo repository.ArticleRepository,
	queueRepo repository.QueueRepository,
	fetcher FeedFetcher,
	articleFetcher ArticleFetcherService,
	cfg *config.IngestConfig,
	logger *slog.Logger,
) IngestService {
	return &ingestService{
		sourceRepo:     sourceRepo,
		articleRepo:    articleRepo,
		queueRepo:      queueRepo,
		fetcher:        fetcher,
		articleFetcher: articleFetcher,
		sanitizer:      utils.NewSanitizer(),
		config:         cfg,
		logger:         logger,
		clock:          time.Now,
	}
}

// FetchSource fetches one source immediately, ignoring its interval. Used by
// the manual admin trigger.
func (s *ingestService) FetchSource(ctx context.Context, sourceID string) (*domain.FetchOutcome, error) {
	source, err := s.sourceRepo.FindByID(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load source: %w", err)
	}

	outcome := s.ingestSource(ctx, source)

	return &outcome, nil
}

// FetchAllDue runs one scheduler pass over every active source, least
// recently fetched first. Sources inside their interval are reported as
// skipped, not silently dropped.
func (s *ingestService) FetchAllDue(ctx context.Context) ([]domain.FetchOutcome, error) {
	sources, err := s.sourceRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	now := s.clock()
	outcomes := make([]domain.FetchOutcome, 0, len(sources))

	for _, source := range sources {
		if ctx.Err() != nil {
			return outcomes, ctx.Err()
		}

		if !source.Due(now) {
			outcomes = append(outcomes, domain.FetchOutcome{
				SourceID: source.ID,
				Status:   domain.FetchSkipped,
				Reason:   domain.SkipReasonTooRecent,
			})

			continue
		}

		outcomes = append(outcomes, s.ingestSource(ctx, source))
	}

	s.logger.InfoContext(ctx, "ingest run finished",
		"sources", len(sources),
		"outcomes", len(outcomes))

	return outcomes, nil
}

// ingestSource fetches one feed and enqueues its new items. The fetch
// timestamp is stamped on success and failure alike so a broken feed is not
// retried on every pass.
func (s *ingestService) ingestSource(ctx context.Context, source *domain.Source) domain.FetchOutcome {
	outcome := domain.FetchOutcome{SourceID: source.ID, Status: domain.FetchProcessed}

	if err := s.sourceRepo.MarkFetched(ctx, source.ID, s.clock()); err != nil {
		s.logger.ErrorContext(ctx, "failed to stamp source fetch time", "error", err, "source_id", source.ID)
	}

	feed, err := s.fetcher.Fetch(ctx, source.URL)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch feed",
			"error", err, "source_id", source.ID, "url", source.URL)

		outcome.Status = domain.FetchErrored
		outcome.Error = err.Error()

		return outcome
	}

	for i := range feed.Items {
		item := feed.Items[i]

		enqueued, err := s.ingestItem(ctx, source, &item)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to ingest feed item",
				"error", err, "source_id", source.ID, "link", item.Link)

			continue
		}

		if enqueued {
			outcome.Enqueued++
		} else {
			outcome.Skipped++
		}
	}

	s.logger.InfoContext(ctx, "source ingested",
		"source_id", source.ID,
		"enqueued", outcome.Enqueued,
		"skipped", outcome.Skipped)

	return outcome
}

func (s *ingestService) ingestItem(ctx context.Context, source *domain.Source, item *domain.FeedItem) (bool, error) {
	if item.Link == "" || item.Title == "" {
		return false, nil
	}

	exists, err := s.articleRepo.ExistsBySourceURL(ctx, item.Link)
	if err != nil {
		return false, err
	}

	if exists {
		return false, nil
	}

	item.Content = s.sanitizer.SanitizeHTML(item.Content)
	item.Description = s.sanitizer.SanitizeHTML(item.Description)

	if s.config.FetchFullBody && item.Content == "" && s.articleFetcher != nil {
		body, err := s.articleFetcher.FetchArticle(ctx, item.Link)
		if err != nil {
			// A summary-only entry is still worth keeping.
			s.logger.WarnContext(ctx, "full body fetch failed, keeping feed summary",
				"error", err, "link", item.Link)
		} else {
			item.Content = body
		}
	}

	processed := BuildProcessedContent(item, source.Name, s.config.DefaultExcerpt)
	if source.CategoryID != nil {
		processed.CategoryID = *source.CategoryID
	}

	entry := &domain.QueueEntry{
		SourceType: domain.SourceTypeRSS,
		SourceData: domain.SourcePayload{
			RSSSourceID: source.ID,
			Original:    item,
			Processed:   processed,
		},
	}

	if err := s.queueRepo.Enqueue(ctx, entry); err != nil {
		return false, err
	}

	return true, nil
}
