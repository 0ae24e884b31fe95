package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bistro/config"
	"bistro/internal/delivery/http/router"
	"bistro/internal/delivery/http/router/handler"
	"bistro/internal/delivery/http/session"
	"bistro/internal/delivery/http/view"
	"bistro/internal/infra/auth"
	"bistro/internal/infra/i18n"
	"bistro/internal/infra/persistence/dbtest"
	"bistro/internal/infra/persistence/store"
	"bistro/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testApp struct {
	echo    *echo.Echo
	db      *gorm.DB
	cookies *session.CookieManager
}

func newTestApp(t *testing.T) testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db := dbtest.New(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	translator, err := i18n.New(cfg)
	require.NoError(t, err)
	renderer, err := view.NewRenderer(translator)
	require.NoError(t, err)
	cookies := session.NewCookieManager(cfg)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		Sessions: store.NewSessionManager(db),
		Hasher:   auth.NewBcryptHasher(cfg),
		Logger:   logger,
	})

	e := newEcho(ServerParams{
		Cfg:        cfg,
		Logger:     logger,
		Translator: translator,
		Renderer:   renderer,
		Cookies:    cookies,
		RouterParams: router.RouterParams{
			PageHandler: handler.NewPageHandler(handler.PageHandlerParams{
				MenuUC:   impl.NewMenuService(),
				Renderer: renderer,
				DB:       sqlDB,
				Logger:   logger,
			}),
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC:     authUC,
				Cookies:    cookies,
				Renderer:   renderer,
				Translator: translator,
			}),
		},
	})

	return testApp{echo: e, db: db, cookies: cookies}
}

func (app testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	return rec
}

func (app testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return app.do(req)
}

func (app testApp) post(path, email, password string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return app.do(req)
}

func (app testApp) sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == app.cookies.Name() {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", app.cookies.Name())

	return nil
}

func TestServer_RegisterTwice(t *testing.T) {
	app := newTestApp(t)

	first := app.post("/register", "a@b.com", "p1")
	assert.Equal(t, http.StatusSeeOther, first.Code)
	assert.Equal(t, "/", first.Header().Get(echo.HeaderLocation))

	second := app.post("/register", "a@b.com", "p2")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "Такой пользователь уже существует")
}

func TestServer_RegisterThenLogin(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, http.StatusSeeOther, app.post("/register", "a@b.com", "p1").Code)

	login := app.post("/login", "a@b.com", "p1")
	assert.Equal(t, http.StatusSeeOther, login.Code)
	assert.Equal(t, "/", login.Header().Get(echo.HeaderLocation))

	cookie := app.sessionCookie(t, login)
	assert.Equal(t, "a@b.com", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	home := app.get("/", cookie)
	assert.Contains(t, home.Body.String(), "a@b.com")
	assert.Contains(t, home.Body.String(), `href="/logout"`)
}

func TestServer_LoginFailuresLookAlike(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.post("/register", "a@b.com", "p1").Code)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "nobody@b.com", password: "p1"},
		{name: "wrong password", email: "a@b.com", password: "p2"},
		{name: "over-long wrong password", email: "a@b.com", password: strings.Repeat("x", 73)},
		{name: "over-long unknown email", email: strings.Repeat("n", 292) + "@b.com", password: "p1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.post("/login", tt.email, tt.password)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Логин или пароль неверны")
			assert.NotContains(t, rec.Body.String(), "Проверьте правильность заполнения формы")
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestServer_LogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)

	for _, cookies := range [][]*http.Cookie{nil, {{Name: app.cookies.Name(), Value: "a@b.com"}}} {
		rec := app.get("/logout", cookies...)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		cookie := app.sessionCookie(t, rec)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestServer_StoredHashIsNotPlaintext(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.post("/register", "a@b.com", "p1").Code)

	var stored string
	require.NoError(t, app.db.Raw("SELECT hashed_password FROM clients WHERE email = ?", "a@b.com").Scan(&stored).Error)

	assert.NotEqual(t, "p1", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("p1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("p2")))
}

func TestServer_MenuIgnoresSession(t *testing.T) {
	app := newTestApp(t)

	anonymous := app.get("/menu")
	loggedIn := app.get("/menu", &http.Cookie{Name: app.cookies.Name(), Value: "a@b.com"})

	for _, rec := range []*httptest.ResponseRecorder{anonymous, loggedIn} {
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		burger := strings.Index(body, "Бургер")
		pizza := strings.Index(body, "Пицца")
		salad := strings.Index(body, "Салат")
		assert.True(t, burger >= 0 && burger < pizza && pizza < salad, "items out of order")
		assert.Contains(t, body, "200 ₽")
		assert.Contains(t, body, "500 ₽")
		assert.Contains(t, body, "300 ₽")
	}
}

func TestServer_RegisterStorageFailureIsServerError(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.db.Exec("DROP TABLE clients").Error)

	rec := app.post("/register", "a@b.com", "p1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Такой пользователь уже существует")
	assert.Contains(t, rec.Body.String(), "Внутренняя ошибка сервера")
}

func TestServer_OperationalRoutes(t *testing.T) {
	app := newTestApp(t)

	health := app.get("/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"status":"ok"`)

	css := app.get("/static/style.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Header().Get(echo.HeaderContentType), "text/css")

	missing := app.get("/static/missing.css")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	unknown := app.get("/nowhere")
	assert.Equal(t, http.StatusNotFound, unknown.Code)
	assert.Contains(t, unknown.Body.String(), "Страница не найдена")
}

func TestServer_EnglishPages(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusSeeOther, app.post("/register", "a@b.com", "p1").Code)

	form := url.Values{"email": {"a@b.com"}, "password": {"p1"}}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.8")

	rec := app.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This user already exists")
}

func TestServer_RequestIDHeader(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/")

	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
