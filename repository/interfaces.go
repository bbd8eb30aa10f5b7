package repository

import (
	"context"
	"time"

	"autonews/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// SourceRepository handles feed source persistence.
type SourceRepository interface {
	ListActive(ctx context.Context) ([]*domain.Source, error)
	FindByID(ctx context.Context, id string) (*domain.Source, error)
	MarkFetched(ctx context.Context, id string, at time.Time) error
	Create(ctx context.Context, source *domain.Source) error
}

// QueueRepository handles the content queue persistence.
type QueueRepository interface {
	Enqueue(ctx context.Context, entry *domain.QueueEntry) error
	ClaimBatch(ctx context.Context, limit int, now time.Time) ([]*domain.QueueEntry, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, articleID string) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.QueueEntry, error)
	FindForRewrite(ctx context.Context, limit int) ([]*domain.QueueEntry, error)
	StoreRewrite(ctx context.Context, id uuid.UUID, result *domain.RewriteResult) error
	MarkRewriteFailed(ctx context.Context, id uuid.UUID, message string) error
	List(ctx context.Context, status *domain.ProcessingStatus, cursor *domain.Cursor, limit int) ([]*domain.QueueEntry, error)
	Stats(ctx context.Context) (map[domain.ProcessingStatus]int, error)
}

// ArticleRepository handles article persistence.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	ListPublished(ctx context.Context, categoryID *string, cursor *domain.Cursor, limit int) ([]*domain.Article, error)
	IncrementViews(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) error
	ApplyRewrite(ctx context.Context, id string, result *domain.RewriteResult, excerpt string, categoryID *string) error
}

// CategoryRepository handles category lookups.
type CategoryRepository interface {
	ListActive(ctx context.Context) ([]*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
}

// MonetizationRepository handles affiliate links, clicks and ad placements.
type MonetizationRepository interface {
	FindActiveLink(ctx context.Context, id string) (*domain.AffiliateLink, error)
	RecordClick(ctx context.Context, click *domain.AffiliateClick) error
	PlacementsForSlot(ctx context.Context, slot string) ([]*domain.AdPlacement, error)
	Revenue(ctx context.Context, from, to time.Time) (*domain.RevenueReport, error)
}

// RewriteAPIRepository handles calls to the external rewrite model.
type RewriteAPIRepository interface {
	RewriteArticle(ctx context.Context, title, content string) (*domain.RewriteResult, error)
	CheckHealth(ctx context.Context) error
}
