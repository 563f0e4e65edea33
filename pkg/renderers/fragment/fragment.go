// Package fragment emits form markup without any page chrome, for embedding
// into an existing layout.
package fragment

import (
	"context"
	"html"
	"strings"

	"github.com/goliatone/go-formhelper/pkg/render"
)

// Name is the registry name of the fragment renderer.
const Name = "fragment"

// Renderer returns the document body, optionally preceded by a heading.
type Renderer struct {
	// Heading renders the document title as an <h2> above the form.
	Heading bool
}

var _ render.Renderer = Renderer{}

func (Renderer) Name() string { return Name }

func (Renderer) ContentType() string { return "text/html; charset=utf-8" }

func (r Renderer) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.Body) == "" {
		return nil, render.ErrEmptyBody
	}
	var b strings.Builder
	if r.Heading && doc.Title != "" {
		b.WriteString("<h2>")
		b.WriteString(html.EscapeString(doc.Title))
		b.WriteString("</h2>\n")
	}
	b.WriteString(doc.Body)
	if !strings.HasSuffix(doc.Body, "\n") {
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}
