// Package context carries request-scoped values between the delivery and
// service layers.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key under which the request id travels.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key under which the request-scoped logger travels.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the request id HTTP header.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// context never passed through the request-id middleware.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
