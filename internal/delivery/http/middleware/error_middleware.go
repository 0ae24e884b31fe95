package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/delivery/http/view"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/errors"
	"bistro/internal/infra/i18n"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns handler errors into the HTML error page.
type ErrorMiddleware struct {
	logger     *slog.Logger
	translator *i18n.Translator
	renderer   *view.Renderer
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, translator *i18n.Translator, renderer *view.Renderer) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		translator: translator,
		renderer:   renderer,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	if c.Response().Committed {
		logger.Warn("Error after response was committed", slog.Any("error", err))

		return
	}

	appErr := m.classify(err)
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	page := &view.Page{
		Title:  "error.title",
		Status: appErr.HTTPCode(),
		Error:  m.translator.Error(m.renderer.Language(c), appErr),
	}
	if renderErr := c.Render(appErr.HTTPCode(), view.PageError, page); renderErr != nil {
		logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(appErr.HTTPCode(), http.StatusText(appErr.HTTPCode()))
	}
}

func (m *ErrorMiddleware) classify(err error) domainerrors.AppError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			return domainerrors.ErrNotFound
		}

		return domainerrors.NewBaseError(httpErr.Code, domainerrors.CodeHTTPError, http.StatusText(httpErr.Code), "")
	}

	return domainerrors.ErrInternalError
}
