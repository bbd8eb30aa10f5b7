package handler

import (
	"log/slog"
	"net/http"

	"autonews/domain"
	"autonews/repository"
	"autonews/service"

	"github.com/labstack/echo/v4"
)

// QueueHandler exposes queue processing and the admin audit view.
type QueueHandler struct {
	processor service.QueueProcessorService
	queueRepo repository.QueueRepository
	logger    *slog.Logger
}

// NewQueueHandler creates a new queue handler.
func NewQueueHandler(processor service.QueueProcessorService, queueRepo repository.QueueRepository, logger *slog.Logger) *QueueHandler {
	return &QueueHandler{
		processor: processor,
		queueRepo: queueRepo,
		logger:    logger,
	}
}

// Process handles POST /api/v1/admin/queue/process.
func (h *QueueHandler) Process(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.processor.ProcessBatch(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "queue processing failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process queue")
	}

	errorMessages := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		errorMessages = append(errorMessages, e.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"processed":  result.ProcessedCount,
		"succeeded":  result.SuccessCount,
		"duplicates": result.DuplicateCount,
		"failed":     result.ErrorCount,
		"errors":     errorMessages,
	})
}

// List handles GET /api/v1/admin/queue with an optional status filter and
// keyset pagination.
func (h *QueueHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var statusFilter *domain.ProcessingStatus

	if raw := c.QueryParam("status"); raw != "" {
		status := domain.ProcessingStatus(raw)

		switch status {
		case domain.StatusPending, domain.StatusProcessing, domain.StatusCompleted, domain.StatusFailed:
			statusFilter = &status
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
		}
	}

	limit := parseLimit(c)

	entries, err := h.queueRepo.List(ctx, statusFilter, parseCursor(c), limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "queue listing failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list queue")
	}

	response := map[string]any{"entries": entries}

	if len(entries) > 0 {
		last := entries[len(entries)-1]
		if cursor := nextCursor(last.CreatedAt, last.ID.String(), len(entries), limit); cursor != nil {
			response["next_cursor"] = cursor
		}
	}

	return c.JSON(http.StatusOK, response)
}

// Stats handles GET /api/v1/admin/queue/stats.
func (h *QueueHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	counts, err := h.queueRepo.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "queue stats failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get queue stats")
	}

	return c.JSON(http.StatusOK, counts)
}
