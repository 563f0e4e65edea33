// Package page renders form markup as a complete HTML document.
package page

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formhelper/pkg/render"
	"github.com/goliatone/go-formhelper/pkg/render/template"
	"github.com/goliatone/go-formhelper/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embedded embed.FS

// Name is the registry name of the page renderer.
const Name = "page"

// DefaultStylesheet is linked when a document names no stylesheet.
const DefaultStylesheet = "https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css"

// Option configures the renderer.
type Option func(*Renderer)

// WithEngine replaces the template engine, e.g. to serve a custom page.tpl.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithContainerClass sets extra classes on the <main> wrapper.
func WithContainerClass(class string) Option {
	return func(r *Renderer) {
		r.container = strings.TrimSpace(class)
	}
}

// WithDefaultStylesheets replaces the stylesheets used when a document has
// none. Passing nothing disables them.
func WithDefaultStylesheets(hrefs ...string) Option {
	return func(r *Renderer) {
		r.stylesheets = append([]string(nil), hrefs...)
	}
}

// Renderer wraps the document body in the page template.
type Renderer struct {
	engine      template.TemplateRenderer
	container   string
	stylesheets []string
}

var _ render.Renderer = (*Renderer)(nil)

// New builds the renderer on the embedded page template.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{stylesheets: []string{DefaultStylesheet}}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.engine == nil {
		files, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("page: templates: %w", err)
		}
		engine, err := gotemplate.New(gotemplate.WithFS(files))
		if err != nil {
			return nil, fmt.Errorf("page: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render produces the full page.
func (r *Renderer) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.Body) == "" {
		return nil, render.ErrEmptyBody
	}
	lang := doc.Lang
	if lang == "" {
		lang = "en"
	}
	stylesheets := doc.Stylesheets
	if len(stylesheets) == 0 {
		stylesheets = r.stylesheets
	}
	out, err := r.engine.RenderTemplate("page", map[string]any{
		"title":       doc.Title,
		"lang":        lang,
		"body":        doc.Body,
		"stylesheets": stylesheets,
		"scripts":     doc.Scripts,
		"container":   r.container,
	})
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	return []byte(out), nil
}
