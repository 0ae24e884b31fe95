// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler *handler.PageHandler
	AuthHandler *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler *handler.PageHandler
	authHandler *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler: params.PageHandler,
		authHandler: params.AuthHandler,
	}
}

// RegisterRoutes sets up all the routes for the application.
// No route requires a login; the session only changes what pages show.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.pageHandler.HealthCheck)

	e.GET("/", r.pageHandler.Home)
	e.GET("/menu", r.pageHandler.Menu)

	e.GET("/register", r.authHandler.ShowRegister)
	e.POST("/register", r.authHandler.Register)
	e.GET("/login", r.authHandler.ShowLogin)
	e.POST("/login", r.authHandler.Login)
	e.GET("/logout", r.authHandler.Logout)
}
