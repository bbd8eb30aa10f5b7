package driver

import (
	"context"
	"errors"
	"fmt"

	"autonews/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, name, slug, description, is_active, created_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category

	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ListActiveCategories returns the categories shown on the public site.
func ListActiveCategories(ctx context.Context, db *pgxpool.Pool) ([]*domain.Category, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE is_active = true ORDER BY name ASC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetCategoryBySlug resolves a public category slug to its row. Missing slugs
// come back as pgx.ErrNoRows wrapped, callers decide whether that is fatal.
func GetCategoryBySlug(ctx context.Context, db *pgxpool.Pool, slug string) (*domain.Category, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`

	c, err := scanCategory(db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return c, nil
}

// GetCategoryByName maps a rewrite-suggested category name onto an existing
// category, case insensitively. Unknown names return nil so the article keeps
// its current category.
func GetCategoryByName(ctx context.Context, db *pgxpool.Pool, name string) (*domain.Category, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE LOWER(name) = LOWER($1) AND is_active = true`

	c, err := scanCategory(db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return c, nil
}
