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

type articleRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	clock  func() time.Time
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *pgxpool.Pool, logger *slog.Logger) ArticleRepository {
	return &articleRepository{
		db:     db,
		logger: logger,
		clock:  time.Now,
	}
}

// Create inserts a new article. Duplicate source URLs and slugs surface as
// domain.ErrDuplicateContent from the unique constraints.
func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}

	if err := driver.InsertArticle(ctx, r.db, article); err != nil {
		r.logger.ErrorContext(ctx, "failed to create article", "error", err, "source_url", article.SourceURL)
		return fmt.Errorf("failed to create article: %w", err)
	}

	r.logger.InfoContext(ctx, "article created",
		"article_id", article.ID,
		"slug", article.Slug,
		"source_url", article.SourceURL)

	return nil
}

// ExistsBySourceURL reports whether an article already covers this URL.
func (r *articleRepository) ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error) {
	exists, err := driver.ArticleExistsBySourceURL(ctx, r.db, sourceURL)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to check article existence", "error", err, "source_url", sourceURL)
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}

	return exists, nil
}

// FindByID fetches one article regardless of publication state.
func (r *articleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	article, err := driver.GetArticleByID(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return article, nil
}

// FindPublishedBySlug fetches a published article for the public site.
func (r *articleRepository) FindPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := driver.GetPublishedArticleBySlug(ctx, r.db, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to find article by slug: %w", err)
	}

	return article, nil
}

// ListPublished pages through published articles newest first.
func (r *articleRepository) ListPublished(ctx context.Context, categoryID *string, cursor *domain.Cursor, limit int) ([]*domain.Article, error) {
	articles, err := driver.ListPublishedArticles(ctx, r.db, categoryID, cursor, limit)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list published articles", "error", err)
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}

	return articles, nil
}

// IncrementViews bumps the view counter.
func (r *articleRepository) IncrementViews(ctx context.Context, id string) error {
	if err := driver.IncrementViewCount(ctx, r.db, id); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}

	return nil
}

// Publish makes an article visible on the public site.
func (r *articleRepository) Publish(ctx context.Context, id string) error {
	if err := driver.PublishArticle(ctx, r.db, id, r.clock()); err != nil {
		r.logger.ErrorContext(ctx, "failed to publish article", "error", err, "article_id", id)
		return fmt.Errorf("failed to publish article: %w", err)
	}

	r.logger.InfoContext(ctx, "article published", "article_id", id)

	return nil
}

// ApplyRewrite replaces the article's presentation fields with the rewritten
// version.
func (r *articleRepository) ApplyRewrite(ctx context.Context, id string, result *domain.RewriteResult, excerpt string, categoryID *string) error {
	err := driver.UpdateArticleFromRewrite(ctx, r.db, id, result.Title, result.Content, excerpt, categoryID, r.clock())
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to apply rewrite to article", "error", err, "article_id", id)
		return fmt.Errorf("failed to apply rewrite to article: %w", err)
	}

	r.logger.InfoContext(ctx, "rewrite applied to article", "article_id", id)

	return nil
}
