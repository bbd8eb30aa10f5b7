// ABOUTME: This file implements per-domain rate limiting for outbound fetches
// ABOUTME: Enforces a politeness interval so one publisher is never hammered
package utils

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// DomainRateLimiter manages rate limiting per remote domain.
type DomainRateLimiter struct {
	limiters map[string]*domainLimiter
	mu       sync.RWMutex
	interval time.Duration
}

type domainLimiter struct {
	lastRequest time.Time
	mu          sync.Mutex
}

// NewDomainRateLimiter creates a new domain-based rate limiter with the
// given minimum interval between requests to the same domain.
func NewDomainRateLimiter(interval time.Duration) *DomainRateLimiter {
	return &DomainRateLimiter{
		limiters: make(map[string]*domainLimiter),
		interval: interval,
	}
}

// Wait blocks until the domain may make another request or the context is
// cancelled.
func (d *DomainRateLimiter) Wait(ctx context.Context, rawURL string) error {
	domain := ExtractDomain(rawURL)

	d.mu.RLock()
	limiter, exists := d.limiters[domain]
	d.mu.RUnlock()

	if !exists {
		d.mu.Lock()
		// Double check after acquiring write lock
		if limiter, exists = d.limiters[domain]; !exists {
			limiter = &domainLimiter{}
			d.limiters[domain] = limiter
		}
		d.mu.Unlock()
	}

	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	if !limiter.lastRequest.IsZero() {
		elapsed := time.Since(limiter.lastRequest)
		if elapsed < d.interval {
			wait := d.interval - elapsed

			timer := time.NewTimer(wait)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	limiter.lastRequest = time.Now()

	return nil
}

// ExtractDomain extracts the hostname from a URL string.
func ExtractDomain(rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}

	hostname := parsedURL.Hostname()
	if hostname == "" {
		return "unknown"
	}

	return hostname
}
