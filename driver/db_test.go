package driver

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"autonews/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// Every driver function must refuse a nil pool instead of panicking inside
// pgx.
func TestNilDatabaseGuards(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	now := time.Now()

	tests := map[string]func() error{
		"ListActiveSources": func() error {
			_, err := ListActiveSources(ctx, nil)
			return err
		},
		"GetSource": func() error {
			_, err := GetSource(ctx, nil, "id")
			return err
		},
		"TouchSourceFetched": func() error {
			return TouchSourceFetched(ctx, nil, "id", now)
		},
		"CreateSource": func() error {
			return CreateSource(ctx, nil, &domain.Source{})
		},
		"InsertQueueEntry": func() error {
			return InsertQueueEntry(ctx, nil, &domain.QueueEntry{})
		},
		"ClaimDueEntries": func() error {
			_, err := ClaimDueEntries(ctx, nil, 10, now)
			return err
		},
		"MarkEntryCompleted": func() error {
			return MarkEntryCompleted(ctx, nil, id, "article", now)
		},
		"MarkEntryFailed": func() error {
			return MarkEntryFailed(ctx, nil, id, "boom", now)
		},
		"GetQueueEntry": func() error {
			_, err := GetQueueEntry(ctx, nil, id)
			return err
		},
		"SelectEntriesForRewrite": func() error {
			_, err := SelectEntriesForRewrite(ctx, nil, 5)
			return err
		},
		"SetRewriteDone": func() error {
			return SetRewriteDone(ctx, nil, id, &domain.RewriteResult{}, now)
		},
		"SetRewriteFailed": func() error {
			return SetRewriteFailed(ctx, nil, id, "boom", now)
		},
		"ListQueueEntries": func() error {
			_, err := ListQueueEntries(ctx, nil, nil, nil, 10)
			return err
		},
		"CountQueueByStatus": func() error {
			_, err := CountQueueByStatus(ctx, nil)
			return err
		},
		"InsertArticle": func() error {
			return InsertArticle(ctx, nil, &domain.Article{})
		},
		"ArticleExistsBySourceURL": func() error {
			_, err := ArticleExistsBySourceURL(ctx, nil, "https://example.com")
			return err
		},
		"GetArticleByID": func() error {
			_, err := GetArticleByID(ctx, nil, "id")
			return err
		},
		"GetPublishedArticleBySlug": func() error {
			_, err := GetPublishedArticleBySlug(ctx, nil, "slug")
			return err
		},
		"ListPublishedArticles": func() error {
			_, err := ListPublishedArticles(ctx, nil, nil, nil, 10)
			return err
		},
		"IncrementViewCount": func() error {
			return IncrementViewCount(ctx, nil, "id")
		},
		"PublishArticle": func() error {
			return PublishArticle(ctx, nil, "id", now)
		},
		"UpdateArticleFromRewrite": func() error {
			return UpdateArticleFromRewrite(ctx, nil, "id", "t", "c", "e", nil, now)
		},
		"ListActiveCategories": func() error {
			_, err := ListActiveCategories(ctx, nil)
			return err
		},
		"GetCategoryBySlug": func() error {
			_, err := GetCategoryBySlug(ctx, nil, "slug")
			return err
		},
		"GetCategoryByName": func() error {
			_, err := GetCategoryByName(ctx, nil, "Tech")
			return err
		},
		"GetActiveAffiliateLink": func() error {
			_, err := GetActiveAffiliateLink(ctx, nil, "id")
			return err
		},
		"InsertAffiliateClick": func() error {
			return InsertAffiliateClick(ctx, nil, &domain.AffiliateClick{})
		},
		"ListAdPlacements": func() error {
			_, err := ListAdPlacements(ctx, nil, "sidebar")
			return err
		},
		"AggregateRevenue": func() error {
			_, err := AggregateRevenue(ctx, nil, now.Add(-24*time.Hour), now)
			return err
		},
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			err := fn()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "database connection is nil")
		})
	}
}
