package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"autonews/domain"
	"autonews/repository"

	"github.com/labstack/echo/v4"
)

// defaultRevenueWindow is used when the report range is not given.
const defaultRevenueWindow = 30 * 24 * time.Hour

// MonetizationHandler serves ad placements, the affiliate click redirect
// and the admin revenue report.
type MonetizationHandler struct {
	monetization repository.MonetizationRepository
	logger       *slog.Logger
	clock        func() time.Time
}

// NewMonetizationHandler creates a new monetization handler.
func NewMonetizationHandler(monetization repository.MonetizationRepository, logger *slog.Logger) *MonetizationHandler {
	return &MonetizationHandler{
		monetization: monetization,
		logger:       logger,
		clock:        time.Now,
	}
}

// Placements handles GET /api/v1/ads/:slot.
func (h *MonetizationHandler) Placements(c echo.Context) error {
	ctx := c.Request().Context()
	slot := c.Param("slot")

	placements, err := h.monetization.PlacementsForSlot(ctx, slot)
	if err != nil {
		h.logger.ErrorContext(ctx, "placement lookup failed", "error", err, "slot", slot)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list ad placements")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"slot":       slot,
		"placements": placements,
	})
}

// Click handles GET /api/v1/affiliate/click/:id. The click is recorded and
// the visitor redirected; a failed recording never blocks the redirect.
func (h *MonetizationHandler) Click(c echo.Context) error {
	ctx := c.Request().Context()
	linkID := c.Param("id")

	link, err := h.monetization.FindActiveLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, domain.ErrAffiliateLinkNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "affiliate link not found")
		}

		h.logger.ErrorContext(ctx, "affiliate link lookup failed", "error", err, "link_id", linkID)

		return echo.NewHTTPError(http.StatusInternalServerError, "failed to resolve affiliate link")
	}

	click := &domain.AffiliateClick{
		AffiliateLinkID: link.ID,
		IPAddress:       c.RealIP(),
		UserAgent:       c.Request().UserAgent(),
		Referrer:        c.Request().Referer(),
		CreatedAt:       h.clock(),
	}

	if err := h.monetization.RecordClick(ctx, click); err != nil {
		h.logger.WarnContext(ctx, "click recording failed, redirecting anyway",
			"error", err, "link_id", link.ID)
	}

	return c.Redirect(http.StatusFound, link.AffiliateURL)
}

// Revenue handles GET /api/v1/admin/revenue with optional RFC 3339 "from"
// and "to" parameters. The window defaults to the last 30 days.
func (h *MonetizationHandler) Revenue(c echo.Context) error {
	ctx := c.Request().Context()

	now := h.clock()
	from := now.Add(-defaultRevenueWindow)
	to := now

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be RFC 3339")
		}

		from = parsed
	}

	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "to must be RFC 3339")
		}

		to = parsed
	}

	if !from.Before(to) {
		return echo.NewHTTPError(http.StatusBadRequest, "from must precede to")
	}

	report, err := h.monetization.Revenue(ctx, from, to)
	if err != nil {
		h.logger.ErrorContext(ctx, "revenue report failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build revenue report")
	}

	return c.JSON(http.StatusOK, report)
}
