// ABOUTME: Domain-level sentinel errors for the autonews content pipeline
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Ingestion errors
var (
	// ErrSourceNotFound indicates the requested RSS source does not exist or is inactive
	ErrSourceNotFound = errors.New("rss source not found")

	// ErrDuplicateContent indicates an article with the same source URL or slug
	// has already been ingested; the item is skipped, not failed
	ErrDuplicateContent = errors.New("content already ingested")

	// ErrEmptyFeed indicates the feed parsed successfully but contained no items
	ErrEmptyFeed = errors.New("feed contains no items")
)

// Queue errors
var (
	// ErrEntryNotFound indicates the requested queue entry does not exist
	ErrEntryNotFound = errors.New("queue entry not found")

	// ErrUnknownSourceType indicates a queue entry carries a source type the
	// processor does not understand; fails that entry only
	ErrUnknownSourceType = errors.New("unknown source type")

	// ErrEntryNotClaimable indicates the entry was already claimed by a
	// concurrent processor invocation
	ErrEntryNotClaimable = errors.New("queue entry not claimable")
)

// Article errors
var (
	// ErrArticleNotFound indicates the requested article does not exist
	ErrArticleNotFound = errors.New("article not found")
)

// Upload validation errors
var (
	// ErrInvalidUpload indicates the uploaded batch file could not be parsed
	ErrInvalidUpload = errors.New("invalid upload format")

	// ErrMissingRequiredField indicates a row is missing every accepted alias
	// of a required field; rejects the whole batch
	ErrMissingRequiredField = errors.New("row missing required field")
)

// External rewrite service errors
var (
	// ErrRewriterUnavailable indicates the rewrite service is not reachable
	ErrRewriterUnavailable = errors.New("rewrite service unavailable")

	// ErrServiceOverloaded indicates downstream service returned 429 (queue full)
	ErrServiceOverloaded = errors.New("downstream service overloaded")
)

// Monetization errors
var (
	// ErrAffiliateLinkNotFound indicates the affiliate link does not exist or is inactive
	ErrAffiliateLinkNotFound = errors.New("affiliate link not found")
)
