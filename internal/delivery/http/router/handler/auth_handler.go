package handler

import (
	"net/http"

	"bistro/internal/delivery/http/session"
	"bistro/internal/delivery/http/view"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/errors"
	"bistro/internal/infra/i18n"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// registerForm is the body of the registration form. The limits match the
// email column and the longest password bcrypt accepts.
type registerForm struct {
	Email    string `form:"email" validate:"required,max=255"`
	Password string `form:"password" validate:"required,max=72"`
}

// loginForm is the body of the login form. It has no length limits: an
// over-long value matches no account and fails as bad credentials.
type loginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC     usecase.AuthUsecase
	Cookies    *session.CookieManager
	Renderer   *view.Renderer
	Translator *i18n.Translator
}

// AuthHandler holds dependencies for the registration and login pages.
type AuthHandler struct {
	authUC     usecase.AuthUsecase
	cookies    *session.CookieManager
	renderer   *view.Renderer
	translator *i18n.Translator
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:     params.AuthUC,
		cookies:    params.Cookies,
		renderer:   params.Renderer,
		translator: params.Translator,
	}
}

// ShowRegister renders the empty registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageRegister, &view.Page{Title: "register.title"})
}

// Register creates the account and sends the client home.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	err := bindForm(c, &form)
	if err == nil {
		_, err = h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
			Email:    form.Email,
			Password: form.Password,
		})
	}
	if err != nil {
		return h.renderFormError(c, view.PageRegister, "register.title", form.Email, err)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// ShowLogin renders the empty login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageLogin, &view.Page{Title: "login.title"})
}

// Login checks the credentials and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := bindForm(c, &form); err != nil {
		return h.renderFormError(c, view.PageLogin, "login.title", form.Email, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return h.renderFormError(c, view.PageLogin, "login.title", form.Email, err)
	}

	h.cookies.Set(c, output.SessionToken)

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie, logged in or not.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context(), h.cookies.Read(c)); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Clear(c)

	return c.Redirect(http.StatusSeeOther, "/")
}

func bindForm(c echo.Context, form any) error {
	if err := c.Bind(form); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed form body")
	}

	return c.Validate(form)
}

// renderFormError shows the form again with the localized message for form
// errors. Anything else goes to the central error handler.
func (h *AuthHandler) renderFormError(c echo.Context, page, title, email string, err error) error {
	var appErr domainerrors.AppError
	if !errors.IsAny(err, domainerrors.FormErrors...) || !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, page, &view.Page{
		Title: title,
		Email: email,
		Error: h.translator.Error(h.renderer.Language(c), appErr),
	})
}
