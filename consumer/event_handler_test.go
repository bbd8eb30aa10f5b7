package consumer_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"autonews/consumer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTrigger struct {
	triggered []uuid.UUID
	err       error
}

func (s *stubTrigger) TriggerRewrite(_ context.Context, entryID uuid.UUID) error {
	s.triggered = append(s.triggered, entryID)
	return s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func rewriteEvent(t *testing.T, eventType, entryID string) consumer.Event {
	t.Helper()

	payload, err := json.Marshal(consumer.RewriteEventPayload{EntryID: entryID})
	require.NoError(t, err)

	return consumer.Event{
		MessageID: "1-0",
		EventID:   "evt-1",
		EventType: eventType,
		Source:    "autonews",
		Payload:   payload,
	}
}

func TestRewriteEventHandler_HandleEvent(t *testing.T) {
	entryID := uuid.New()

	t.Run("should trigger rewrite for RewriteRequested", func(t *testing.T) {
		trigger := &stubTrigger{}
		h := consumer.NewRewriteEventHandler(trigger, testLogger())

		err := h.HandleEvent(context.Background(), rewriteEvent(t, consumer.EventTypeRewriteRequested, entryID.String()))

		require.NoError(t, err)
		require.Len(t, trigger.triggered, 1)
		assert.Equal(t, entryID, trigger.triggered[0])
	})

	t.Run("should trigger rewrite for EntryCompleted", func(t *testing.T) {
		trigger := &stubTrigger{}
		h := consumer.NewRewriteEventHandler(trigger, testLogger())

		err := h.HandleEvent(context.Background(), rewriteEvent(t, consumer.EventTypeEntryCompleted, entryID.String()))

		require.NoError(t, err)
		assert.Len(t, trigger.triggered, 1)
	})

	t.Run("should ignore unknown event types", func(t *testing.T) {
		trigger := &stubTrigger{}
		h := consumer.NewRewriteEventHandler(trigger, testLogger())

		err := h.HandleEvent(context.Background(), rewriteEvent(t, "UserRegistered", entryID.String()))

		require.NoError(t, err)
		assert.Empty(t, trigger.triggered)
	})

	t.Run("should fail on malformed payload", func(t *testing.T) {
		trigger := &stubTrigger{}
		h := consumer.NewRewriteEventHandler(trigger, testLogger())

		event := consumer.Event{
			MessageID: "1-0",
			EventType: consumer.EventTypeRewriteRequested,
			Payload:   json.RawMessage(`{not json`),
		}

		err := h.HandleEvent(context.Background(), event)

		require.Error(t, err)
		assert.Empty(t, trigger.triggered)
	})

	t.Run("should fail on non-uuid entry id", func(t *testing.T) {
		trigger := &stubTrigger{}
		h := consumer.NewRewriteEventHandler(trigger, testLogger())

		err := h.HandleEvent(context.Background(), rewriteEvent(t, consumer.EventTypeRewriteRequested, "entry-42"))

		require.Error(t, err)
		assert.Empty(t, trigger.triggered)
	})

	t.Run("should propagate trigger failures for redelivery", func(t *testing.T) {
		trigger := &stubTrigger{err: assert.AnError}
		h := consumer.NewRewriteEventHandler(trigger, testLogger())

		err := h.HandleEvent(context.Background(), rewriteEvent(t, consumer.EventTypeRewriteRequested, entryID.String()))

		require.Error(t, err)
	})
}
