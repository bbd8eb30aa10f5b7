package domain

import (
	"time"
)

// FeedItem is one normalized entry from an RSS 2.0 or Atom feed, or from an
// uploaded record mapped through the same field aliases. It is transient:
// produced by the parser, carried inside a queue entry payload, never
// persisted on its own.
type FeedItem struct {
	PublishedAt time.Time `json:"published_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Author      string    `json:"author,omitempty"`
	Category    string    `json:"category,omitempty"`
	GUID        string    `json:"guid,omitempty"`
	Content     string    `json:"content,omitempty"`
}

// Feed is a parsed syndication document.
type Feed struct {
	Title       string
	Description string
	Link        string
	Items       []FeedItem
}

// ProcessedContent is the common normalized shape produced from either a
// feed item or an uploaded row. Slug and excerpt are derived from the title
// and description by the normalizer.
type ProcessedContent struct {
	PublishedAt time.Time `json:"published_at"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	SourceURL   string    `json:"source_url"`
	SourceName  string    `json:"source_name"`
	CategoryID  string    `json:"category_id,omitempty"`
}
