package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Event types handled by this service.
const (
	EventTypeRewriteRequested = "RewriteRequested"
	EventTypeEntryCompleted   = "EntryCompleted"
)

// RewriteEventPayload carries the queue entry a rewrite was requested for.
type RewriteEventPayload struct {
	EntryID string `json:"entry_id"`
}

// RewriteTrigger runs the AI rewrite for one queue entry.
type RewriteTrigger interface {
	TriggerRewrite(ctx context.Context, entryID uuid.UUID) error
}

// RewriteEventHandler routes stream events to the rewrite pipeline. Other
// services publish EntryCompleted when they finish processing; operators can
// publish RewriteRequested to re-run a failed rewrite.
type RewriteEventHandler struct {
	trigger RewriteTrigger
	logger  *slog.Logger
}

// NewRewriteEventHandler creates a new RewriteEventHandler.
func NewRewriteEventHandler(trigger RewriteTrigger, logger *slog.Logger) *RewriteEventHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &RewriteEventHandler{
		trigger: trigger,
		logger:  logger,
	}
}

// HandleEvent processes a single event based on its type. Unknown event
// types are acknowledged and dropped.
func (h *RewriteEventHandler) HandleEvent(ctx context.Context, event Event) error {
	h.logger.InfoContext(ctx, "handling event",
		"event_id", event.EventID,
		"event_type", event.EventType,
		"message_id", event.MessageID)

	switch event.EventType {
	case EventTypeRewriteRequested, EventTypeEntryCompleted:
		return h.handleRewriteEvent(ctx, event)
	default:
		h.logger.DebugContext(ctx, "ignoring unknown event type", "event_type", event.EventType)
		return nil
	}
}

func (h *RewriteEventHandler) handleRewriteEvent(ctx context.Context, event Event) error {
	var payload RewriteEventPayload

	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		h.logger.ErrorContext(ctx, "failed to unmarshal rewrite event payload",
			"event_id", event.EventID,
			"error", err)

		return fmt.Errorf("failed to unmarshal rewrite event payload: %w", err)
	}

	entryID, err := uuid.Parse(payload.EntryID)
	if err != nil {
		h.logger.ErrorContext(ctx, "rewrite event carries invalid entry id",
			"event_id", event.EventID,
			"entry_id", payload.EntryID)

		return fmt.Errorf("invalid entry id %q: %w", payload.EntryID, err)
	}

	if err := h.trigger.TriggerRewrite(ctx, entryID); err != nil {
		h.logger.ErrorContext(ctx, "failed to trigger rewrite",
			"entry_id", entryID,
			"error", err)

		return err
	}

	return nil
}
