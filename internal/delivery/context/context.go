// Package context carries request-scoped values between the HTTP delivery and
// the layers it calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyLanguage is the key for the language the response is rendered in.
	KeyLanguage ContextKey = "language"

	// KeyUserEmail is the key for the identifier read from the session cookie.
	KeyUserEmail ContextKey = "user_email"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetLanguage stores the negotiated response language in echo.Context.
func SetLanguage(c echo.Context, tag language.Tag) {
	c.Set(string(KeyLanguage), tag)
}

// GetLanguage returns the negotiated response language, or fallback when
// negotiation has not run.
func GetLanguage(c echo.Context, fallback language.Tag) language.Tag {
	if tag, ok := c.Get(string(KeyLanguage)).(language.Tag); ok {
		return tag
	}

	return fallback
}

// SetUserEmail stores the identifier read from the session cookie.
func SetUserEmail(c echo.Context, email string) {
	c.Set(string(KeyUserEmail), email)
}

// GetUserEmail returns the identifier of the logged-in client, or "" for
// anonymous requests. It is for display only and grants no access.
func GetUserEmail(c echo.Context) string {
	email, _ := c.Get(string(KeyUserEmail)).(string)

	return email
}
