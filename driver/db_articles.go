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

const articleColumns = `id, title, slug, content, excerpt, source_url, source_name,
	category_id, view_count, is_published, is_ai_generated, published_at, created_at, updated_at`

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article

	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Excerpt, &a.SourceURL,
		&a.SourceName, &a.CategoryID, &a.ViewCount, &a.IsPublished, &a.IsAIGenerated,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// InsertArticle creates an article. The unique constraints on source_url and
// slug are the dedup guard: a conflicting insert is reported as
// ErrDuplicateContent instead of silently updating the existing row.
func InsertArticle(ctx context.Context, db *pgxpool.Pool, a *domain.Article) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		INSERT INTO articles (id, title, slug, content, excerpt, source_url, source_name,
			category_id, view_count, is_published, is_ai_generated, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT DO NOTHING
	`

	tag, err := db.Exec(ctx, query,
		a.ID, a.Title, a.Slug, a.Content, a.Excerpt, a.SourceURL, a.SourceName,
		a.CategoryID, a.ViewCount, a.IsPublished, a.IsAIGenerated, a.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateContent
	}

	return nil
}

// ArticleExistsBySourceURL is the cheap pre-check before enqueueing; the
// unique constraint remains the authoritative guard.
func ArticleExistsBySourceURL(ctx context.Context, db *pgxpool.Pool, sourceURL string) (bool, error) {
	if db == nil {
		return false, fmt.Errorf("database connection is nil")
	}

	var exists bool

	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE source_url = $1)`, sourceURL).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}

	return exists, nil
}

// GetArticleByID fetches one article regardless of publication state.
func GetArticleByID(ctx context.Context, db *pgxpool.Pool, id string) (*domain.Article, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	a, err := scanArticle(db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}

		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return a, nil
}

// GetPublishedArticleBySlug fetches one published article for the public site.
func GetPublishedArticleBySlug(ctx context.Context, db *pgxpool.Pool, slug string) (*domain.Article, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1 AND is_published = true`

	a, err := scanArticle(db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}

		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return a, nil
}

// ListPublishedArticles pages through published articles newest first using a
// keyset cursor, optionally restricted to one category.
func ListPublishedArticles(ctx context.Context, db *pgxpool.Pool, categoryID *string, cursor *domain.Cursor, limit int) ([]*domain.Article, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE is_published = true`
	args := []any{}

	if categoryID != nil {
		args = append(args, *categoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}

	if cursor != nil && cursor.LastCreatedAt != nil {
		args = append(args, *cursor.LastCreatedAt, cursor.LastID)
		query += fmt.Sprintf(" AND (created_at, id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}
	defer rows.Close()

	var articles []*domain.Article

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}

		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// IncrementViewCount bumps an article's view counter. Best effort from the
// read path, so a miss is not an error.
func IncrementViewCount(ctx context.Context, db *pgxpool.Pool, id string) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	_, err := db.Exec(ctx, `UPDATE articles SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	return nil
}

// PublishArticle flips an article to published and stamps the publication
// time. Republishing an already published article is a no-op.
func PublishArticle(ctx context.Context, db *pgxpool.Pool, id string, at time.Time) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		UPDATE articles
		SET is_published = true, published_at = $2, updated_at = $2
		WHERE id = $1
	`

	tag, err := db.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to publish article: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}

// UpdateArticleFromRewrite replaces an article's presentation fields with the
// rewritten version. The original source_url and slug stay stable so existing
// links keep working.
func UpdateArticleFromRewrite(ctx context.Context, db *pgxpool.Pool, id string, title, content, excerpt string, categoryID *string, at time.Time) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		UPDATE articles
		SET title = $2, content = $3, excerpt = $4, category_id = COALESCE($5, category_id),
			is_ai_generated = true, updated_at = $6
		WHERE id = $1
	`

	tag, err := db.Exec(ctx, query, id, title, content, excerpt, categoryID, at)
	if err != nil {
		return fmt.Errorf("failed to update article from rewrite: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}
