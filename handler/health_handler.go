package handler

import (
	"log/slog"
	"net/http"

	"autonews/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness, database reachability and the
// rewrite model state.
type HealthHandler struct {
	db            *pgxpool.Pool
	healthChecker service.HealthCheckerService
	logger        *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *pgxpool.Pool, healthChecker service.HealthCheckerService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:            db,
		healthChecker: healthChecker,
		logger:        logger,
	}
}

// Check handles GET /api/v1/health. A broken database makes the check fail;
// a down rewriter only degrades it, ingestion keeps working without it.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	dbHealthy := true

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database ping failed", "error", err)
		dbHealthy = false
	}

	rewriterHealthy := h.healthChecker.CheckRewriterHealth(ctx) == nil

	status := "ok"
	code := http.StatusOK

	switch {
	case !dbHealthy:
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	case !rewriterHealthy:
		status = "degraded"
	}

	return c.JSON(code, map[string]any{
		"status":   status,
		"database": dbHealthy,
		"rewriter": rewriterHealthy,
	})
}
