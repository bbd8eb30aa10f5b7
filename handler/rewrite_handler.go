package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"autonews/domain"
	"autonews/service"
	"autonews/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RewriteRequest is the body for the single-entry rewrite trigger.
type RewriteRequest struct {
	EntryID string `json:"entry_id"`
}

// RewriteHandler exposes the AI rewrite triggers for the admin API.
type RewriteHandler struct {
	rewriter service.RewriteService
	logger   *slog.Logger
}

// NewRewriteHandler creates a new rewrite handler.
func NewRewriteHandler(rewriter service.RewriteService, logger *slog.Logger) *RewriteHandler {
	return &RewriteHandler{
		rewriter: rewriter,
		logger:   logger,
	}
}

// Process handles POST /api/v1/admin/rewrite/process.
func (h *RewriteHandler) Process(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.rewriter.ProcessPending(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "rewrite run failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to run rewrite batch")
	}

	errorMessages := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		errorMessages = append(errorMessages, e.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"processed": result.ProcessedCount,
		"succeeded": result.SuccessCount,
		"failed":    result.ErrorCount,
		"deferred":  result.Deferred,
		"errors":    errorMessages,
	})
}

// Rewrite handles POST /api/v1/admin/rewrite for one queue entry. Entries
// whose previous rewrite failed can be re-triggered here.
func (h *RewriteHandler) Rewrite(c echo.Context) error {
	ctx := c.Request().Context()

	var req RewriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	entryID, err := uuid.Parse(req.EntryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "entry_id must be a UUID")
	}

	if err := h.rewriter.RewriteEntry(ctx, entryID); err != nil {
		switch {
		case errors.Is(err, domain.ErrEntryNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "queue entry not found")
		case errors.Is(err, domain.ErrServiceOverloaded), errors.Is(err, utils.ErrCircuitOpen):
			return echo.NewHTTPError(http.StatusServiceUnavailable, "rewrite model is overloaded, try again later")
		case errors.Is(err, domain.ErrRewriterUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "rewrite model unavailable")
		default:
			h.logger.ErrorContext(ctx, "entry rewrite failed", "error", err, "entry_id", entryID)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"entry_id":  entryID,
		"rewritten": true,
	})
}
