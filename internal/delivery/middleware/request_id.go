package middleware

import (
	"log/slog"

	deliverycontext "bistro/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client-supplied IDs before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an ID and a logger bound to it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the client's X-Request-Id when it is usable and echoes the
// final ID back in the response.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestIDFrom(c)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		// Services and the gorm logger pick this logger up from the context.
		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func requestIDFrom(c echo.Context) string {
	requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
	if requestID == "" || len(requestID) > maxRequestIDLength {
		return uuid.New().String()
	}

	return requestID
}
