package middleware

import (
	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/infra/i18n"

	"github.com/labstack/echo/v4"
)

const headerAcceptLanguage = "Accept-Language"

// LanguageMiddleware picks the response language from Accept-Language.
type LanguageMiddleware struct {
	translator *i18n.Translator
}

// NewLanguageMiddleware creates a new language negotiation middleware
func NewLanguageMiddleware(translator *i18n.Translator) *LanguageMiddleware {
	return &LanguageMiddleware{translator: translator}
}

// Negotiate stores the chosen language for the renderer and announces it.
func (m *LanguageMiddleware) Negotiate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tag := m.translator.Match(c.Request().Header.Get(headerAcceptLanguage))

		deliverycontext.SetLanguage(c, tag)
		c.Response().Header().Set("Content-Language", tag.String())

		return next(c)
	}
}
