package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"bistro/config"
	"bistro/internal/delivery"
	httpmiddleware "bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/router"
	"bistro/internal/delivery/http/session"
	"bistro/internal/delivery/http/validator"
	"bistro/internal/delivery/http/view"
	"bistro/internal/delivery/middleware"
	"bistro/internal/domain/lifecycle"
	"bistro/internal/errors"
	"bistro/internal/infra/i18n"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Translator   *i18n.Translator
	Renderer     *view.Renderer
	Cookies      *session.CookieManager
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)

	// 3. Logger middleware
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	// 4. Response language and session cookie, read by every page
	echoServer.Use(httpmiddleware.NewLanguageMiddleware(params.Translator).Negotiate)
	echoServer.Use(httpmiddleware.NewSessionMiddleware(params.Cookies).Load)

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// Set up centralized error handler
	errorMiddleware := httpmiddleware.NewErrorMiddleware(params.Logger, params.Translator, params.Renderer)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()
	echoServer.Renderer = params.Renderer

	echoServer.StaticFS("/static", echo.MustSubFS(view.StaticFiles, "static"))

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
