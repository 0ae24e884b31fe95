package middleware

import (
	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/delivery/http/session"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware exposes the session cookie to handlers and views.
type SessionMiddleware struct {
	cookies *session.CookieManager
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(cookies *session.CookieManager) *SessionMiddleware {
	return &SessionMiddleware{cookies: cookies}
}

// Load records the cookie's identifier on the request. It never rejects a
// request: being logged in only changes what the navigation shows.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if email := m.cookies.Read(c); email != "" {
			deliverycontext.SetUserEmail(c, email)
		}

		return next(c)
	}
}
