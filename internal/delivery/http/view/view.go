// Package view renders the HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	"bistro/internal/errors"
	"bistro/internal/infra/i18n"

	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"
	"golang.org/x/text/language"
)

// Page names accepted by Render.
const (
	PageHome     = "home"
	PageMenu     = "menu"
	PageRegister = "register"
	PageLogin    = "login"
	PageError    = "error"
)

var pageNames = []string{PageHome, PageMenu, PageRegister, PageLogin, PageError}

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed content/*.md
var contentFS embed.FS

// StaticFiles holds the assets served under /static, rooted at "static".
//
//go:embed static
var StaticFiles embed.FS

// Page is the data every template receives. Handlers fill the page-specific
// fields; Render fills the language, the current user and the translator.
type Page struct {
	Title     string // i18n key
	Error     string
	Email     string // form prefill
	Status    int
	Items     []entity.MenuItem
	Content   template.HTML
	UserEmail string
	Lang      language.Tag

	translate func(key string) string
}

// T translates a page label.
func (p *Page) T(key string) string {
	if p.translate == nil {
		return key
	}

	return p.translate(key)
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages      map[string]*template.Template
	home       map[string]template.HTML
	translator *i18n.Translator
}

// NewRenderer parses every page and converts the home page markdown once.
func NewRenderer(translator *i18n.Translator) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, page := range pageNames {
		// Each page defines the "content" block the layout calls.
		t, err := template.New("layout.html").ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s template", page)
		}
		pages[page] = t
	}

	home := map[string]template.HTML{}
	for _, lang := range []string{"ru", "en"} {
		md, err := contentFS.ReadFile("content/home." + lang + ".md")
		if err != nil {
			return nil, errors.Wrapf(err, "read %s home page", lang)
		}
		html, err := renderMarkdown(md)
		if err != nil {
			return nil, errors.Wrapf(err, "render %s home page", lang)
		}
		home[lang] = html
	}

	return &Renderer{
		pages:      pages,
		home:       home,
		translator: translator,
	}, nil
}

// Home returns the home page body in the requested language.
func (r *Renderer) Home(tag language.Tag) template.HTML {
	base, _ := tag.Base()
	if html, ok := r.home[base.String()]; ok {
		return html
	}

	return r.home["ru"]
}

// Language returns the language negotiated for the request.
func (r *Renderer) Language(c echo.Context) language.Tag {
	return deliverycontext.GetLanguage(c, r.translator.Default())
}

// Render executes the layout with the named page. data must be a *Page.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	page, ok := data.(*Page)
	if !ok {
		return errors.Errorf("page %q rendered with %T, want *view.Page", name, data)
	}

	page.Lang = r.Language(c)
	page.UserEmail = deliverycontext.GetUserEmail(c)
	page.translate = func(key string) string {
		return r.translator.Translate(page.Lang, key, key)
	}

	if err := t.ExecuteTemplate(w, "layout", page); err != nil {
		return errors.Wrapf(err, "execute %s template", name)
	}

	return nil
}

func renderMarkdown(md []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(md, &buf); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buf.String()), nil
}
