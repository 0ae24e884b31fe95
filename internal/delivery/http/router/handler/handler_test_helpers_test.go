package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bistro/config"
	"bistro/internal/delivery/http/session"
	"bistro/internal/delivery/http/validator"
	"bistro/internal/delivery/http/view"
	"bistro/internal/infra/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

type handlerEnv struct {
	echo       *echo.Echo
	renderer   *view.Renderer
	translator *i18n.Translator
	cookies    *session.CookieManager
	logger     *slog.Logger
}

func newHandlerEnv(t *testing.T) handlerEnv {
	t.Helper()

	translator, err := i18n.New(&config.Config{})
	require.NoError(t, err)
	renderer, err := view.NewRenderer(translator)
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return handlerEnv{
		echo:       e,
		renderer:   renderer,
		translator: translator,
		cookies:    session.NewCookieManager(&config.Config{}),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (env handlerEnv) get(path string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return env.echo.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec), rec
}

func (env handlerEnv) postForm(path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return env.echo.NewContext(req, rec), rec
}

func credentials(email, password string) url.Values {
	return url.Values{"email": {email}, "password": {password}}
}
