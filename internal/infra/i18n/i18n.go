// Package i18n translates user-facing messages, keyed by business error code,
// into the language a request prefers.
package i18n

import (
	"bistro/config"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// dictionary holds the messages of one language, keyed by business error
// code or by a dotted page label such as "nav.menu".
type dictionary struct {
	tag      language.Tag
	messages map[string]string
}

var dictionaries = []dictionary{
	{
		tag: language.Russian,
		messages: map[string]string{
			domainerrors.CodeAccountAlreadyExists:  "Такой пользователь уже существует",
			domainerrors.CodeInvalidCredentials:    "Логин или пароль неверны",
			domainerrors.CodeValidationFailed:      "Проверьте правильность заполнения формы",
			domainerrors.CodePasswordTooLong:       "Пароль слишком длинный",
			domainerrors.CodeNotFound:              "Страница не найдена",
			domainerrors.CodeHTTPError:             "Ошибка запроса",
			domainerrors.CodeInternalError:         "Внутренняя ошибка сервера",
			domainerrors.CodeDatabaseExecuteFailed: "Внутренняя ошибка сервера",
			domainerrors.CodePasswordHashFailed:    "Внутренняя ошибка сервера",
			domainerrors.CodeSessionFailed:         "Внутренняя ошибка сервера",

			"site.title":      "Бистро",
			"nav.home":        "Главная",
			"nav.menu":        "Меню",
			"nav.register":    "Регистрация",
			"nav.login":       "Вход",
			"nav.logout":      "Выйти",
			"menu.title":      "Наше меню",
			"register.title":  "Регистрация",
			"register.submit": "Зарегистрироваться",
			"login.title":     "Вход",
			"login.submit":    "Войти",
			"form.email":      "Электронная почта",
			"form.password":   "Пароль",
			"error.title":     "Ошибка",
			"error.back":      "Вернуться на главную",
		},
	},
	{
		tag: language.English,
		messages: map[string]string{
			domainerrors.CodeAccountAlreadyExists:  "This user already exists",
			domainerrors.CodeInvalidCredentials:    "Login or password incorrect",
			domainerrors.CodeValidationFailed:      "Please check the form fields",
			domainerrors.CodePasswordTooLong:       "Password is too long",
			domainerrors.CodeNotFound:              "Page not found",
			domainerrors.CodeHTTPError:             "Request error",
			domainerrors.CodeInternalError:         "Internal server error",
			domainerrors.CodeDatabaseExecuteFailed: "Internal server error",
			domainerrors.CodePasswordHashFailed:    "Internal server error",
			domainerrors.CodeSessionFailed:         "Internal server error",

			"site.title":      "Bistro",
			"nav.home":        "Home",
			"nav.menu":        "Menu",
			"nav.register":    "Sign up",
			"nav.login":       "Sign in",
			"nav.logout":      "Sign out",
			"menu.title":      "Our menu",
			"register.title":  "Sign up",
			"register.submit": "Create account",
			"login.title":     "Sign in",
			"login.submit":    "Sign in",
			"form.email":      "Email",
			"form.password":   "Password",
			"error.title":     "Error",
			"error.back":      "Back to the home page",
		},
	},
}

// Translator picks a supported language for a request and renders messages in it.
type Translator struct {
	fallback  language.Tag
	supported []language.Tag
	matcher   language.Matcher
	catalog   catalog.Catalog
}

// New builds the translator. The configured default language must be one of
// the bundled dictionaries.
func New(cfg *config.Config) (*Translator, error) {
	defaultLanguage := "ru"
	if cfg != nil && cfg.I18n != nil && cfg.I18n.DefaultLanguage != "" {
		defaultLanguage = cfg.I18n.DefaultLanguage
	}

	fallback, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, errors.Wrapf(err, "parse default language %q", defaultLanguage)
	}

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	supported := make([]language.Tag, 0, len(dictionaries))
	var fallbackFound bool

	for _, dict := range dictionaries {
		for key, msg := range dict.messages {
			if err := builder.SetString(dict.tag, key, msg); err != nil {
				return nil, errors.Wrapf(err, "register %s message %s", dict.tag, key)
			}
		}

		if dict.tag.String() == fallback.String() {
			fallbackFound = true
			fallback = dict.tag
			// The matcher treats the first supported tag as the default.
			supported = append([]language.Tag{dict.tag}, supported...)

			continue
		}
		supported = append(supported, dict.tag)
	}

	if !fallbackFound {
		return nil, errors.Errorf("default language %q has no dictionary", defaultLanguage)
	}

	return &Translator{
		fallback:  fallback,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		catalog:   builder,
	}, nil
}

// Default returns the configured default language.
func (t *Translator) Default() language.Tag {
	return t.fallback
}

// Match picks the supported language that best fits an Accept-Language header value.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback
	}

	return t.supported[index]
}

// Translate renders the message registered under code, or fallback when the
// code has no translation.
func (t *Translator) Translate(tag language.Tag, code, fallback string) string {
	printer := message.NewPrinter(tag, message.Catalog(t.catalog))

	return printer.Sprintf(message.Key(code, fallback))
}

// Error renders the localized message of an application error.
func (t *Translator) Error(tag language.Tag, appErr domainerrors.AppError) string {
	return t.Translate(tag, appErr.ErrorCode(), appErr.Message())
}
