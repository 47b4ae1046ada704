// Package logging configures structured logging for the service.
//
// When a cloud logging project is configured, logs are emitted as JSON on
// stdout so the cloud sink can ingest them; otherwise a plain text handler
// writes to stderr for local development.
package logging

import (
	"context"
	"log/slog"
	"os"
)

type contextKey string

// requestIDKey carries the per-request identifier through the request context.
const requestIDKey contextKey = "request_id"

// WithRequestID returns a context carrying the given request identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request identifier stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextHandler decorates a slog.Handler with request-scoped attributes.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler wraps h so records pick up the request id from context.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: h}
}

// Handle implements slog.Handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

// New builds the process logger. gcpProject selects the cloud JSON sink when
// non-empty.
func New(gcpProject string) *slog.Logger {
	var handler slog.Handler
	if gcpProject != "" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(NewContextHandler(handler))
}
