// ABOUTME: This file fetches source pages and extracts their readable body text
// ABOUTME: URLs are validated against private networks before any request is made
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"autonews/config"
	"autonews/retry"
	"autonews/utils"
	"autonews/utils/htmltext"
)

// URL scheme constants
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// maxArticleBodyBytes caps how much of a page is read. Pages larger than
// this are almost never articles.
const maxArticleBodyBytes = 10 << 20

type articleFetcherService struct {
	logger      *slog.Logger
	client      *http.Client
	rateLimiter *utils.DomainRateLimiter
	retrier     *retry.Retrier
	userAgent   string
}

// transientFetchError marks an upstream response worth retrying.
type transientFetchError struct {
	status string
}

func (e *transientFetchError) Error() string {
	return fmt.Sprintf("article fetch returned status: %s", e.status)
}

func isRetryableFetchError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var transient *transientFetchError
	if errors.As(err, &transient) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// NewArticleFetcherService creates a fetcher for full article bodies. It is
// only used when a feed carries bare summaries and full-body ingestion is
// enabled.
func NewArticleFetcherService(cfg *config.Config, logger *slog.Logger) ArticleFetcherService {
	retrier := retry.NewRetrier(retry.Config{
		MaxAttempts:   cfg.Retry.MaxAttempts,
		BaseDelay:     cfg.Retry.BaseDelay,
		MaxDelay:      cfg.Retry.MaxDelay,
		BackoffFactor: cfg.Retry.BackoffFactor,
		JitterFactor:  cfg.Retry.JitterFactor,
	}, isRetryableFetchError, logger)

	return &articleFetcherService{
		logger: logger,
		client: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        cfg.HTTP.MaxIdleConns,
				MaxIdleConnsPerHost: cfg.HTTP.MaxIdleConnsPerHost,
				IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
			},
		},
		rateLimiter: utils.NewDomainRateLimiter(cfg.RateLimit.DefaultInterval),
		retrier:     retrier,
		userAgent:   cfg.HTTP.UserAgent,
	}
}

// FetchArticle downloads a page and returns its readable text content.
// Transient failures are retried with exponential backoff.
func (s *articleFetcherService) FetchArticle(ctx context.Context, pageURL string) (string, error) {
	if err := s.ValidateURL(pageURL); err != nil {
		return "", fmt.Errorf("invalid article url: %w", err)
	}

	if err := s.rateLimiter.Wait(ctx, pageURL); err != nil {
		return "", fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	var text string

	err := s.retrier.Do(ctx, func() error {
		var fetchErr error
		text, fetchErr = s.fetchOnce(ctx, pageURL)

		return fetchErr
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}

	return text, nil
}

func (s *articleFetcherService) fetchOnce(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.ErrorContext(ctx, "failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return "", &transientFetchError{status: resp.Status}
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("article fetch returned status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArticleBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read article body: %w", err)
	}

	text := htmltext.ExtractReadableText(string(body))

	s.logger.DebugContext(ctx, "article fetched",
		"url", pageURL,
		"content_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return text, nil
}

// ValidateURL validates a URL for scheme, format and SSRF safety.
func (s *articleFetcherService) ValidateURL(pageURL string) error {
	if pageURL == "" {
		return errors.New("URL cannot be empty")
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != SchemeHTTP && parsedURL.Scheme != SchemeHTTPS {
		return errors.New("only HTTP or HTTPS schemes allowed")
	}

	if parsedURL.Hostname() == "" {
		return errors.New("URL must contain a host")
	}

	if isPrivateHost(parsedURL.Hostname()) {
		return errors.New("access to private networks not allowed")
	}

	return nil
}

func isPrivateHost(hostname string) bool {
	if ip := net.ParseIP(hostname); ip != nil {
		return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
	}

	hostname = strings.ToLower(hostname)
	if hostname == "localhost" || hostname == "metadata.google.internal" {
		return true
	}

	internalDomains := []string{".local", ".internal", ".corp", ".lan"}
	for _, domain := range internalDomains {
		if strings.HasSuffix(hostname, domain) {
			return true
		}
	}

	return false
}
