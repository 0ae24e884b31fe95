package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestCookieManager_Set(t *testing.T) {
	manager := NewCookieManager(&config.Config{})
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	manager.Set(c, "a@b.com")

	assert.Equal(t, "user_email", manager.Name())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, manager.Name(), cookies[0].Name)
	assert.Equal(t, "a@b.com", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)
	assert.Zero(t, cookies[0].MaxAge)
	assert.True(t, cookies[0].Expires.IsZero())
}

func TestCookieManager_Clear(t *testing.T) {
	manager := NewCookieManager(&config.Config{Session: &config.SessionConfig{CookieName: "sid", Secure: true}})
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	manager.Clear(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", manager.Name())
	assert.Equal(t, manager.Name(), cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
	assert.True(t, cookies[0].Secure)
	assert.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "Max-Age=0")
}

func TestCookieManager_Read(t *testing.T) {
	manager := NewCookieManager(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newContext(req)
	assert.Empty(t, manager.Read(c))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: manager.Name(), Value: "a@b.com"})
	c, _ = newContext(req)
	assert.Equal(t, "a@b.com", manager.Read(c))
}
