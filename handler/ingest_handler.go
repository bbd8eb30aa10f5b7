package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"autonews/domain"
	"autonews/service"

	"github.com/labstack/echo/v4"
)

// IngestHandler exposes the manual ingest triggers for the admin API.
type IngestHandler struct {
	ingest service.IngestService
	logger *slog.Logger
}

// NewIngestHandler creates a new ingest handler.
func NewIngestHandler(ingest service.IngestService, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{
		ingest: ingest,
		logger: logger,
	}
}

// FetchSource handles POST /api/v1/admin/ingest/sources/:id/fetch. The
// source is fetched immediately, bypassing its interval.
func (h *IngestHandler) FetchSource(c echo.Context) error {
	ctx := c.Request().Context()
	sourceID := c.Param("id")

	outcome, err := h.ingest.FetchSource(ctx, sourceID)
	if err != nil {
		if errors.Is(err, domain.ErrSourceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "source not found")
		}

		h.logger.ErrorContext(ctx, "manual source fetch failed", "error", err, "source_id", sourceID)

		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch source")
	}

	return c.JSON(http.StatusOK, outcome)
}

// FetchAll handles POST /api/v1/admin/ingest/fetch, one full scheduler pass.
func (h *IngestHandler) FetchAll(c echo.Context) error {
	ctx := c.Request().Context()

	outcomes, err := h.ingest.FetchAllDue(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "scheduler pass failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to run scheduler pass")
	}

	var enqueued, skipped, errored int

	for _, o := range outcomes {
		enqueued += o.Enqueued

		switch o.Status {
		case domain.FetchSkipped:
			skipped++
		case domain.FetchErrored:
			errored++
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"sources":         len(outcomes),
		"enqueued":        enqueued,
		"skipped_sources": skipped,
		"errored_sources": errored,
		"outcomes":        outcomes,
	})
}
