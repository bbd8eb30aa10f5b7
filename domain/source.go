package domain

import (
	"time"
)

// Source is a configured RSS/Atom feed the scheduler polls. Read-only input
// to the fetcher except for LastFetchedAt, which is updated after every
// fetch attempt.
type Source struct {
	CreatedAt     time.Time  `db:"created_at"`
	LastFetchedAt *time.Time `db:"last_fetched_at"`
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	URL           string     `db:"url"`
	CategoryID    *string    `db:"category_id"`
	FetchInterval int        `db:"fetch_interval"` // seconds
	IsActive      bool       `db:"is_active"`
}

// Due reports whether enough time has elapsed since the last fetch. A source
// that has never been fetched is always due.
func (s *Source) Due(now time.Time) bool {
	last := time.Time{}
	if s.LastFetchedAt != nil {
		last = *s.LastFetchedAt
	}
	return now.Sub(last) >= time.Duration(s.FetchInterval)*time.Second
}

// Fetch outcome statuses recorded per source by the scheduler.
const (
	FetchProcessed = "processed"
	FetchSkipped   = "skipped"
	FetchErrored   = "error"
)

// SkipReasonTooRecent marks a source skipped because its interval has not
// elapsed yet.
const SkipReasonTooRecent = "too_recent"

// FetchOutcome records the result of one source in a scheduler run.
// Per-source failures are captured here instead of aborting the run.
type FetchOutcome struct {
	SourceID string `json:"source_id"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Error    string `json:"error,omitempty"`
	Enqueued int    `json:"enqueued"`
	Skipped  int    `json:"skipped"`
}
