package domain

import (
	"time"
)

// Article is a published (or publishable) piece of content created from a
// queue entry. Slug and SourceURL are globally unique; the database enforces
// both so re-ingesting the same story is a no-op.
type Article struct {
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
	PublishedAt   time.Time `db:"published_at" json:"published_at"`
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Slug          string    `db:"slug" json:"slug"`
	Content       string    `db:"content" json:"content"`
	Excerpt       string    `db:"excerpt" json:"excerpt"`
	SourceURL     string    `db:"source_url" json:"source_url"`
	SourceName    string    `db:"source_name" json:"source_name"`
	CategoryID    *string   `db:"category_id" json:"category_id,omitempty"`
	ViewCount     int       `db:"view_count" json:"view_count"`
	IsPublished   bool      `db:"is_published" json:"is_published"`
	IsAIGenerated bool      `db:"is_ai_generated" json:"is_ai_generated"`
}

// Category groups articles for the public browsing site.
type Category struct {
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
}
