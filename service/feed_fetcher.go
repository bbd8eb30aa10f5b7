// ABOUTME: This file downloads and parses RSS 2.0 and Atom feeds
// ABOUTME: Outbound requests are rate limited per publisher domain
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"autonews/config"
	"autonews/domain"
	"autonews/utils"

	"github.com/mmcdole/gofeed"
)

type feedFetcher struct {
	parser      *gofeed.Parser
	client      *http.Client
	rateLimiter *utils.DomainRateLimiter
	logger      *slog.Logger
	userAgent   string
}

// NewFeedFetcher creates the gofeed-backed fetcher. Both RSS 2.0 and Atom
// documents come back as the same normalized feed shape.
func NewFeedFetcher(cfg *config.Config, logger *slog.Logger) FeedFetcher {
	transport := &http.Transport{
		MaxIdleConns:        cfg.HTTP.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.HTTP.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
	}

	maxRedirects := cfg.HTTP.MaxRedirects

	client := &http.Client{
		Timeout:   cfg.HTTP.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}

			return nil
		},
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = cfg.HTTP.UserAgent

	return &feedFetcher{
		parser:      parser,
		client:      client,
		rateLimiter: utils.NewDomainRateLimiter(cfg.RateLimit.DefaultInterval),
		logger:      logger,
		userAgent:   cfg.HTTP.UserAgent,
	}
}

// Fetch downloads and parses one feed.
func (f *feedFetcher) Fetch(ctx context.Context, feedURL string) (*domain.Feed, error) {
	if err := f.rateLimiter.Wait(ctx, feedURL); err != nil {
		return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	start := time.Now()

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
	}

	f.logger.DebugContext(ctx, "feed fetched",
		"url", feedURL,
		"feed_type", parsed.FeedType,
		"items", len(parsed.Items),
		"duration_ms", time.Since(start).Milliseconds())

	if len(parsed.Items) == 0 {
		return nil, domain.ErrEmptyFeed
	}

	feed := &domain.Feed{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		Items:       make([]domain.FeedItem, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		feed.Items = append(feed.Items, convertFeedItem(item))
	}

	return feed, nil
}

func convertFeedItem(item *gofeed.Item) domain.FeedItem {
	converted := domain.FeedItem{
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		GUID:        item.GUID,
		Content:     item.Content,
	}

	if item.PublishedParsed != nil {
		converted.PublishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		converted.PublishedAt = *item.UpdatedParsed
	}

	if item.Author != nil {
		converted.Author = item.Author.Name
	}

	if len(item.Categories) > 0 {
		converted.Category = item.Categories[0]
	}

	return converted
}
