package consumer

import (
	"context"
	"log/slog"

	"autonews/service"

	"github.com/google/uuid"
)

// RewriteServiceAdapter adapts the rewrite service to the RewriteTrigger
// interface used by the event handler.
type RewriteServiceAdapter struct {
	rewriter service.RewriteService
	logger   *slog.Logger
}

// NewRewriteServiceAdapter creates a new RewriteServiceAdapter.
func NewRewriteServiceAdapter(rewriter service.RewriteService, logger *slog.Logger) *RewriteServiceAdapter {
	return &RewriteServiceAdapter{
		rewriter: rewriter,
		logger:   logger,
	}
}

// TriggerRewrite runs the rewrite for one queue entry.
func (a *RewriteServiceAdapter) TriggerRewrite(ctx context.Context, entryID uuid.UUID) error {
	a.logger.InfoContext(ctx, "rewrite triggered via event", "entry_id", entryID)

	if err := a.rewriter.RewriteEntry(ctx, entryID); err != nil {
		a.logger.ErrorContext(ctx, "event-driven rewrite failed",
			"entry_id", entryID,
			"error", err)

		return err
	}

	return nil
}
