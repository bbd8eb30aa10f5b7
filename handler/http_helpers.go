package handler

import (
	"strconv"
	"time"

	"autonews/domain"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// parseLimit reads the "limit" query parameter with sane bounds.
func parseLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return defaultPageSize
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultPageSize
	}

	if limit > maxPageSize {
		return maxPageSize
	}

	return limit
}

// parseCursor reads the keyset cursor query parameters. Both parts must be
// present for the cursor to apply.
func parseCursor(c echo.Context) *domain.Cursor {
	rawCreatedAt := c.QueryParam("last_created_at")
	lastID := c.QueryParam("last_id")

	if rawCreatedAt == "" || lastID == "" {
		return nil
	}

	createdAt, err := time.Parse(time.RFC3339, rawCreatedAt)
	if err != nil {
		return nil
	}

	return &domain.Cursor{
		LastCreatedAt: &createdAt,
		LastID:        lastID,
	}
}

// nextCursor builds the cursor query values pointing past the last item of
// a page, or nil when the page was not full.
func nextCursor(createdAt time.Time, id string, pageLen, limit int) map[string]string {
	if pageLen < limit {
		return nil
	}

	return map[string]string{
		"last_created_at": createdAt.Format(time.RFC3339),
		"last_id":         id,
	}
}
