package domain

import (
	"time"
)

// Cursor represents pagination cursor for efficient keyset pagination over
// articles and queue entries.
type Cursor struct {
	LastCreatedAt *time.Time
	LastID        string
}
