// Package session issues and reads the login cookie.
package session

import (
	"net/http"

	"bistro/config"

	"github.com/labstack/echo/v4"
)

// CookieManager owns the session cookie. The cookie value is the account
// email in plain text; it carries no expiry and no signature.
type CookieManager struct {
	name   string
	secure bool
}

// NewCookieManager builds the manager from the session config section.
func NewCookieManager(cfg *config.Config) *CookieManager {
	manager := &CookieManager{name: "user_email"}
	if cfg != nil && cfg.Session != nil {
		if cfg.Session.CookieName != "" {
			manager.name = cfg.Session.CookieName
		}
		manager.secure = cfg.Session.Secure
	}

	return manager
}

// Name returns the cookie name.
func (m *CookieManager) Name() string {
	return m.name
}

// Set stores the session token as a browser-session cookie.
func (m *CookieManager) Set(c echo.Context, token string) {
	c.SetCookie(m.cookie(token, 0))
}

// Clear expires the cookie immediately, whether or not the client sent one.
func (m *CookieManager) Clear(c echo.Context) {
	c.SetCookie(m.cookie("", -1))
}

// Read returns the session token, or "" when the client sent none.
func (m *CookieManager) Read(c echo.Context) string {
	cookie, err := c.Cookie(m.name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (m *CookieManager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
