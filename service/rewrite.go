// ABOUTME: This file runs completed queue entries through the external rewrite model
// ABOUTME: Overload responses defer the batch instead of burning entries as failed
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"autonews/config"
	"autonews/domain"
	"autonews/repository"
	"autonews/utils"

	"github.com/google/uuid"
)

type rewriteService struct {
	queueRepo    repository.QueueRepository
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	apiRepo      repository.RewriteAPIRepository
	config       *config.Config
	logger       *slog.Logger
}

// NewRewriteService creates the AI rewrite service.
func NewRewriteService(
	queueRepo repository.QueueRepository,
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	apiRepo repository.RewriteAPIRepository,
	cfg *config.Config,
	logger *slog.Logger,
) RewriteService {
	return &rewriteService{
		queueRepo:    queueRepo,
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		apiRepo:      apiRepo,
		config:       cfg,
		logger:       logger,
	}
}

// ProcessPending rewrites one batch of completed entries. When the model
// signals overload the remainder of the batch is deferred untouched; those
// entries stay eligible for the next run.
func (s *rewriteService) ProcessPending(ctx context.Context) (*RewriteResult, error) {
	entries, err := s.queueRepo.FindForRewrite(ctx, s.config.Rewriter.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to find entries for rewrite: %w", err)
	}

	result := &RewriteResult{}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		result.ProcessedCount++

		err := s.rewriteOne(ctx, entry)

		switch {
		case err == nil:
			result.SuccessCount++

		case isOverload(err):
			// Leave the entry and the rest of the batch for the next run.
			s.logger.WarnContext(ctx, "rewrite model overloaded, deferring batch",
				"entry_id", entry.ID, "error", err)

			result.ProcessedCount--
			result.Deferred = true

			return result, nil

		default:
			result.ErrorCount++
			result.Errors = append(result.Errors, err)

			if markErr := s.queueRepo.MarkRewriteFailed(ctx, entry.ID, err.Error()); markErr != nil {
				s.logger.ErrorContext(ctx, "failed to mark rewrite failed",
					"error", markErr, "entry_id", entry.ID)
			}
		}
	}

	if result.ProcessedCount > 0 {
		s.logger.InfoContext(ctx, "rewrite batch processed",
			"processed", result.ProcessedCount,
			"succeeded", result.SuccessCount,
			"errors", result.ErrorCount)
	}

	return result, nil
}

// RewriteEntry re-runs the rewrite for one entry. Works for entries whose
// previous rewrite failed; entries already rewritten are rejected by the
// state machine.
func (s *rewriteService) RewriteEntry(ctx context.Context, entryID uuid.UUID) error {
	entry, err := s.queueRepo.FindByID(ctx, entryID)
	if err != nil {
		return err
	}

	if entry.Status != domain.StatusCompleted {
		return fmt.Errorf("entry %s is not completed, cannot rewrite", entryID)
	}

	if !entry.RewriteStatus.CanTransitionTo(domain.RewriteDone) {
		return fmt.Errorf("entry %s rewrite status %s does not allow a rewrite", entryID, entry.RewriteStatus)
	}

	if err := s.rewriteOne(ctx, entry); err != nil {
		// A re-triggered entry is already rewrite_failed; only first
		// attempts move the state.
		if entry.RewriteStatus == domain.RewriteNone {
			if markErr := s.queueRepo.MarkRewriteFailed(ctx, entry.ID, err.Error()); markErr != nil {
				s.logger.ErrorContext(ctx, "failed to mark rewrite failed",
					"error", markErr, "entry_id", entry.ID)
			}
		}

		return err
	}

	return nil
}

func (s *rewriteService) rewriteOne(ctx context.Context, entry *domain.QueueEntry) error {
	if entry.ArticleID == nil {
		return fmt.Errorf("entry %s has no article", entry.ID)
	}

	article, err := s.articleRepo.FindByID(ctx, *entry.ArticleID)
	if err != nil {
		return err
	}

	result, err := s.apiRepo.RewriteArticle(ctx, article.Title, article.Content)
	if err != nil {
		return err
	}

	if err := s.queueRepo.StoreRewrite(ctx, entry.ID, result); err != nil {
		return err
	}

	excerpt := result.MetaDescription
	if excerpt == "" {
		excerpt = GenerateExcerpt(result.Content, s.config.Ingest.DefaultExcerpt)
	}

	categoryID := s.resolveCategory(ctx, result.Category)

	if err := s.articleRepo.ApplyRewrite(ctx, article.ID, result, excerpt, categoryID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "entry rewritten",
		"entry_id", entry.ID,
		"article_id", article.ID)

	return nil
}

// resolveCategory maps a model-suggested category name to an existing
// category. Unknown names leave the article's category untouched.
func (s *rewriteService) resolveCategory(ctx context.Context, name string) *string {
	if name == "" {
		return nil
	}

	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		s.logger.WarnContext(ctx, "category lookup failed", "error", err, "name", name)
		return nil
	}

	if category == nil {
		return nil
	}

	return &category.ID
}

func isOverload(err error) bool {
	return errors.Is(err, domain.ErrServiceOverloaded) ||
		errors.Is(err, domain.ErrRewriterUnavailable) ||
		errors.Is(err, utils.ErrCircuitOpen)
}
