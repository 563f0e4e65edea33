// Package formhelper generates Bootstrap form markup. It re-exports the form
// helper of pkg/form and wires the bundled page and fragment renderers.
package formhelper

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formhelper/pkg/form"
	"github.com/goliatone/go-formhelper/pkg/render"
	"github.com/goliatone/go-formhelper/pkg/renderers/fragment"
	"github.com/goliatone/go-formhelper/pkg/renderers/page"
)

// FormHelper aliases form.FormHelper for callers importing the module root.
type FormHelper = form.FormHelper

// Option configures a FormHelper.
type Option = form.Option

// ControlOptions aliases the per field options of Control.
type ControlOptions = form.ControlOptions

// FormOptions aliases the options of Create.
type FormOptions = form.FormOptions

// ButtonOptions aliases the options of Submit and Button.
type ButtonOptions = form.ButtonOptions

// Document aliases render.Document.
type Document = render.Document

// New returns a form helper with Bootstrap 4 templates.
func New(options ...Option) *FormHelper {
	return form.New(options...)
}

// NewRegistry returns a renderer registry holding the page and fragment
// renderers. Extra renderers are registered after the built-ins.
func NewRegistry(extra ...render.Renderer) (*render.Registry, error) {
	registry := render.NewRegistry()
	pageRenderer, err := page.New()
	if err != nil {
		return nil, err
	}
	for _, r := range append([]render.Renderer{pageRenderer, fragment.Renderer{Heading: true}}, extra...) {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// RenderDocument renders doc with the named renderer of a default registry.
func RenderDocument(ctx context.Context, rendererName string, doc Document) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	r, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	out, err := r.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("formhelper: render %s: %w", rendererName, err)
	}
	return out, nil
}
