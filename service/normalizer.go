// ABOUTME: This file normalizes raw feed items and upload rows into articles
// ABOUTME: Slug and excerpt generation live here so every path derives them identically
package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"autonews/domain"
	"autonews/utils/htmltext"
)

const (
	maxSlugLength = 100

	// DefaultExcerptLength is used when the caller passes no explicit limit.
	DefaultExcerptLength = 200

	manualSourceName = "Manual Import"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL slug from a title. The result is lowercase
// ASCII words joined by single dashes, at most 100 characters.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
		slug = strings.Trim(slug, "-")
	}

	return slug
}

// GenerateExcerpt strips markup from the given HTML, collapses whitespace and
// truncates to maxLength characters with a trailing ellipsis.
func GenerateExcerpt(html string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	text := htmltext.StripTags(html)

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}

// uploadFieldAliases maps each canonical upload field to the accepted column
// or key names, in priority order.
var uploadFieldAliases = map[string][]string{
	"title":       {"title", "headline"},
	"link":        {"link", "url"},
	"description": {"description", "summary"},
	"content":     {"content", "body"},
	"published":   {"published_time", "pubDate", "date"},
	"author":      {"author"},
	"category":    {"category"},
}

// publishedTimeFormats are tried in order when parsing uploaded dates.
var publishedTimeFormats = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func pickAlias(row map[string]string, field string) string {
	for _, key := range uploadFieldAliases[field] {
		if v, ok := row[key]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}

	return ""
}

// NormalizeUploadRow maps one uploaded record through the accepted field
// aliases into a feed item. Title and link are required; a row missing either
// rejects the whole batch so partial imports never slip through silently.
func NormalizeUploadRow(row map[string]string, rowIndex int) (*domain.FeedItem, error) {
	item := &domain.FeedItem{
		Title:       pickAlias(row, "title"),
		Link:        pickAlias(row, "link"),
		Description: pickAlias(row, "description"),
		Content:     pickAlias(row, "content"),
		Author:      pickAlias(row, "author"),
		Category:    pickAlias(row, "category"),
	}

	if item.Title == "" {
		return nil, fmt.Errorf("row %d has no title: %w", rowIndex, domain.ErrMissingRequiredField)
	}

	if item.Link == "" {
		return nil, fmt.Errorf("row %d has no link: %w", rowIndex, domain.ErrMissingRequiredField)
	}

	if raw := pickAlias(row, "published"); raw != "" {
		for _, format := range publishedTimeFormats {
			if t, err := time.Parse(format, raw); err == nil {
				item.PublishedAt = t
				break
			}
		}
	}

	return item, nil
}

// BuildProcessedContent derives the stored article shape from a normalized
// item. Manual entries get their slug and excerpt here, at processing time,
// so an edited queue payload is reflected in the final article.
func BuildProcessedContent(item *domain.FeedItem, sourceName string, excerptLength int) *domain.ProcessedContent {
	if sourceName == "" {
		sourceName = manualSourceName
	}

	body := item.Content
	if body == "" {
		body = item.Description
	}

	excerptSource := item.Description
	if excerptSource == "" {
		excerptSource = body
	}

	publishedAt := item.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	return &domain.ProcessedContent{
		PublishedAt: publishedAt,
		Title:       strings.TrimSpace(item.Title),
		Slug:        GenerateSlug(item.Title),
		Content:     body,
		Excerpt:     GenerateExcerpt(excerptSource, excerptLength),
		SourceURL:   item.Link,
		SourceName:  sourceName,
	}
}
