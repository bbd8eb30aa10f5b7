package service

import (
	"strings"
	"testing"
	"time"

	"autonews/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := map[string]struct {
		title string
		want  string
	}{
		"simple title":             {"Breaking News", "breaking-news"},
		"punctuation and numbers":  {"Hello, World! 2024", "hello-world-2024"},
		"leading trailing spaces":  {"  Spaced Out  ", "spaced-out"},
		"repeated separators":      {"One -- Two  --  Three", "one-two-three"},
		"special characters":       {"Profits up 5% (Q3 report)", "profits-up-5-q3-report"},
		"unicode stripped":         {"Café nights", "caf-nights"},
		"already a slug":           {"already-a-slug", "already-a-slug"},
		"empty title":              {"", ""},
		"only special characters":  {"!!!???", ""},
		"dashes collapse and trim": {"- leading and trailing -", "leading-and-trailing"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlug_Truncation(t *testing.T) {
	long := strings.Repeat("word ", 50)

	slug := GenerateSlug(long)

	assert.LessOrEqual(t, len(slug), 100)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.False(t, strings.HasPrefix(slug, "-"))
}

func TestGenerateExcerpt(t *testing.T) {
	tests := map[string]struct {
		html      string
		maxLength int
		want      string
	}{
		"short text passes through": {
			html:      "<p>Hello World</p>",
			maxLength: 200,
			want:      "Hello World",
		},
		"truncated with ellipsis": {
			html:      "<p>Hello <b>World</b></p>",
			maxLength: 5,
			want:      "Hello...",
		},
		"markup stripped before measuring": {
			html:      "<div><p>Short</p></div>",
			maxLength: 10,
			want:      "Short",
		},
		"zero falls back to default length": {
			html:      "<p>Tiny</p>",
			maxLength: 0,
			want:      "Tiny",
		},
		"empty input": {
			html:      "",
			maxLength: 200,
			want:      "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateExcerpt(tt.html, tt.maxLength))
		})
	}
}

func TestGenerateExcerpt_ExactBoundary(t *testing.T) {
	// Text exactly at the limit gets no ellipsis.
	assert.Equal(t, "Hello", GenerateExcerpt("Hello", 5))
}

func TestNormalizeUploadRow(t *testing.T) {
	tests := map[string]struct {
		row       map[string]string
		wantTitle string
		wantLink  string
		wantErr   error
	}{
		"canonical field names": {
			row:       map[string]string{"title": "A Story", "link": "https://example.com/a"},
			wantTitle: "A Story",
			wantLink:  "https://example.com/a",
		},
		"headline and url aliases": {
			row:       map[string]string{"headline": "Aliased", "url": "https://example.com/b"},
			wantTitle: "Aliased",
			wantLink:  "https://example.com/b",
		},
		"canonical wins over alias": {
			row: map[string]string{
				"title":    "Canonical",
				"headline": "Alias",
				"link":     "https://example.com/c",
			},
			wantTitle: "Canonical",
			wantLink:  "https://example.com/c",
		},
		"missing title": {
			row:     map[string]string{"link": "https://example.com/d"},
			wantErr: domain.ErrMissingRequiredField,
		},
		"missing link": {
			row:     map[string]string{"title": "No Link"},
			wantErr: domain.ErrMissingRequiredField,
		},
		"whitespace only title": {
			row:     map[string]string{"title": "   ", "link": "https://example.com/e"},
			wantErr: domain.ErrMissingRequiredField,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item, err := NormalizeUploadRow(tt.row, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, item.Title)
			assert.Equal(t, tt.wantLink, item.Link)
		})
	}
}

func TestNormalizeUploadRow_PublishedTimeAliases(t *testing.T) {
	tests := map[string]struct {
		row  map[string]string
		want time.Time
	}{
		"rfc3339 published_time": {
			row: map[string]string{
				"title": "t", "link": "https://example.com",
				"published_time": "2024-03-01T10:30:00Z",
			},
			want: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		"date only": {
			row: map[string]string{
				"title": "t", "link": "https://example.com",
				"date": "2024-03-01",
			},
			want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		"unparseable left zero": {
			row: map[string]string{
				"title": "t", "link": "https://example.com",
				"pubDate": "next tuesday",
			},
			want: time.Time{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item, err := NormalizeUploadRow(tt.row, 1)

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(item.PublishedAt), "got %v", item.PublishedAt)
		})
	}
}

func TestBuildProcessedContent(t *testing.T) {
	item := &domain.FeedItem{
		Title:       "  Big Story  ",
		Link:        "https://example.com/big-story",
		Description: "<p>A short description of the story.</p>",
		Content:     "<p>The full body.</p>",
		PublishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	processed := BuildProcessedContent(item, "Example Feed", 200)

	assert.Equal(t, "Big Story", processed.Title)
	assert.Equal(t, "big-story", processed.Slug)
	assert.Equal(t, "<p>The full body.</p>", processed.Content)
	assert.Equal(t, "A short description of the story.", processed.Excerpt)
	assert.Equal(t, "https://example.com/big-story", processed.SourceURL)
	assert.Equal(t, "Example Feed", processed.SourceName)
	assert.Equal(t, item.PublishedAt, processed.PublishedAt)
}

func TestBuildProcessedContent_ManualDefaults(t *testing.T) {
	item := &domain.FeedItem{
		Title: "Uploaded Story",
		Link:  "https://example.com/uploaded",
	}

	processed := BuildProcessedContent(item, "", 200)

	assert.Equal(t, "Manual Import", processed.SourceName)
	assert.False(t, processed.PublishedAt.IsZero(), "missing dates default to now")
}

func TestBuildProcessedContent_DescriptionFallsBackToBody(t *testing.T) {
	item := &domain.FeedItem{
		Title:   "No Description",
		Link:    "https://example.com/nd",
		Content: "<p>Body text used for the excerpt.</p>",
	}

	processed := BuildProcessedContent(item, "Feed", 200)

	assert.Equal(t, "Body text used for the excerpt.", processed.Excerpt)
}
