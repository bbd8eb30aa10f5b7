// ABOUTME: This file provides context-aware logging helpers for request tracing
// ABOUTME: Supports request ID propagation through context values
package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	OperationKey ContextKey = "operation"
)

// WithRequestID stores a request ID on the context for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithOperation stores the logical operation name on the context.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

// FromContext returns the logger enriched with whatever tracing values the
// context carries.
func FromContext(ctx context.Context, log *slog.Logger) *slog.Logger {
	var fields []any

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		fields = append(fields, "request_id", requestID)
	}

	if operation := ctx.Value(OperationKey); operation != nil {
		fields = append(fields, "operation", operation)
	}

	if len(fields) > 0 {
		return log.With(fields...)
	}

	return log
}
