// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/delivery/http/response"
	"bistro/internal/delivery/http/view"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	MenuUC   usecase.MenuUsecase
	Renderer *view.Renderer
	DB       Pinger
	Logger   *slog.Logger
}

// PageHandler serves the read-only pages and the health probe.
type PageHandler struct {
	menuUC   usecase.MenuUsecase
	renderer *view.Renderer
	db       Pinger
	logger   *slog.Logger
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		menuUC:   params.MenuUC,
		renderer: params.Renderer,
		db:       params.DB,
		logger:   params.Logger,
	}
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageHome, &view.Page{
		Title:   "nav.home",
		Content: h.renderer.Home(h.renderer.Language(c)),
	})
}

// Menu renders the menu. It looks the same whether or not the client is logged in.
func (h *PageHandler) Menu(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageMenu, &view.Page{
		Title: "menu.title",
		Items: h.menuUC.ListItems(c.Request().Context()),
	})
}

// HealthCheck reports healthy when the database answers a ping.
func (h *PageHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Health check failed", slog.Any("error", err))

		return response.ServiceUnavailable(c, domainerrors.CodeDatabaseExecuteFailed, "Database is unreachable")
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
