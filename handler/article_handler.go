package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"autonews/domain"
	"autonews/repository"

	"github.com/labstack/echo/v4"
)

// ArticleHandler serves the public article browsing API and the admin
// publish action.
type ArticleHandler struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleRepo repository.ArticleRepository, categoryRepo repository.CategoryRepository, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List handles GET /api/v1/articles with optional category slug filtering
// and keyset pagination. Only published articles are visible here.
func (h *ArticleHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var categoryID *string

	if slug := c.QueryParam("category"); slug != "" {
		category, err := h.categoryRepo.FindBySlug(ctx, slug)
		if err != nil {
			h.logger.ErrorContext(ctx, "category lookup failed", "error", err, "slug", slug)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list articles")
		}

		if category == nil {
			return echo.NewHTTPError(http.StatusNotFound, "category not found")
		}

		categoryID = &category.ID
	}

	limit := parseLimit(c)

	articles, err := h.articleRepo.ListPublished(ctx, categoryID, parseCursor(c), limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "article listing failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list articles")
	}

	response := map[string]any{"articles": articles}

	if len(articles) > 0 {
		last := articles[len(articles)-1]
		if cursor := nextCursor(last.CreatedAt, last.ID, len(articles), limit); cursor != nil {
			response["next_cursor"] = cursor
		}
	}

	return c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/articles/:slug. The view counter is best effort
// and never blocks the response.
func (h *ArticleHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	article, err := h.articleRepo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "article not found")
		}

		h.logger.ErrorContext(ctx, "article lookup failed", "error", err, "slug", slug)

		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get article")
	}

	if err := h.articleRepo.IncrementViews(ctx, article.ID); err != nil {
		h.logger.WarnContext(ctx, "view count update failed", "error", err, "article_id", article.ID)
	}

	return c.JSON(http.StatusOK, article)
}

// Categories handles GET /api/v1/categories.
func (h *ArticleHandler) Categories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.categoryRepo.ListActive(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "category listing failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list categories")
	}

	return c.JSON(http.StatusOK, map[string]any{"categories": categories})
}

// Publish handles POST /api/v1/admin/articles/:id/publish. Publication is
// always an explicit editorial act.
func (h *ArticleHandler) Publish(c echo.Context) error {
	ctx := c.Request().Context()
	articleID := c.Param("id")

	if err := h.articleRepo.Publish(ctx, articleID); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "article not found")
		}

		h.logger.ErrorContext(ctx, "article publish failed", "error", err, "article_id", articleID)

		return echo.NewHTTPError(http.StatusInternalServerError, "failed to publish article")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"article_id": articleID,
		"published":  true,
	})
}
