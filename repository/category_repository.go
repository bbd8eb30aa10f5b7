package repository

import (
	"context"
	"fmt"
	"log/slog"

	"autonews/domain"
	"autonews/driver"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *pgxpool.Pool, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) ListActive(ctx context.Context) ([]*domain.Category, error) {
	categories, err := driver.ListActiveCategories(ctx, r.db)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// FindBySlug resolves a category slug. A missing slug returns (nil, nil).
func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := driver.GetCategoryBySlug(ctx, r.db, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to find category by slug: %w", err)
	}

	return category, nil
}

// FindByName maps a free-form category name onto an existing category. An
// unknown name returns (nil, nil).
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	category, err := driver.GetCategoryByName(ctx, r.db, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}

	return category, nil
}
