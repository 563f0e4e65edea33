// Package render wraps rendered form markup into an output document. A
// Renderer turns a Document into bytes; the Registry keeps renderers by name.
package render

import (
	"context"
	"errors"
)

// ErrEmptyBody is returned by renderers asked to render a document without
// markup.
var ErrEmptyBody = errors.New("render: document body is empty")

// Document is the rendered form markup plus the page chrome around it.
type Document struct {
	Title string
	Lang  string
	// Body is trusted HTML produced by the form helper.
	Body        string
	Stylesheets []string
	Scripts     []string
}

// Renderer converts a Document into its final byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document) ([]byte, error)
}
