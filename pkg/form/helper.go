// Package form renders Bootstrap form markup: the form tag, controls with
// their labels, help, errors and containers, and buttons. A FormHelper holds
// the template registry and the alignment of the form being rendered; it
// serves one form at a time and is not safe for concurrent use.
package form

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formhelper/pkg/formctx"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/templates"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// ErrInvalidOption is returned (wrapped in *OptionError) for option values the
// helper does not understand, such as an unknown alignment.
var ErrInvalidOption = layout.ErrInvalidOption

// OptionError describes an invalid option value.
type OptionError = layout.OptionError

// Helper is the capability set of a form renderer.
type Helper interface {
	Create(ctx formctx.Context, opts FormOptions) (string, error)
	Control(field string, opts ControlOptions) (string, error)
	End() string
	Widget(name string, data widgets.Data) (string, error)
}

var _ Helper = (*FormHelper)(nil)

// FormHelper renders forms. Build one with New.
type FormHelper struct {
	base       templates.Set
	templater  *templates.Templater
	layout     layout.Config
	scope      layout.Scope
	widgets    *widgets.Registry
	logger     *zap.Logger
	context    formctx.Context
	errorClass string
	sanitize   bool
	formPushed bool
}

// New builds a helper with the Bootstrap 4 templates, applying options in
// order.
func New(options ...Option) *FormHelper {
	h := &FormHelper{
		base:       templates.Base(),
		layout:     layout.DefaultConfig(),
		widgets:    widgets.NewRegistry(),
		logger:     zap.NewNop(),
		context:    formctx.Null{},
		errorClass: DefaultErrorClass,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(h)
	}
	h.templater = templates.New(h.base)
	return h
}

// Templater exposes the template registry so callers can add or inspect
// templates between forms.
func (h *FormHelper) Templater() *templates.Templater {
	return h.templater
}

// State returns the alignment of the open form.
func (h *FormHelper) State() layout.State {
	return h.scope.State()
}

// Context returns the form context of the open form, or a null context.
func (h *FormHelper) Context() formctx.Context {
	return h.context
}

// Widget renders a registered widget directly, without label or container.
func (h *FormHelper) Widget(name string, data widgets.Data) (string, error) {
	widget, ok := h.widgets.Widget(name)
	if !ok {
		data.Type = name
		return h.widgets.Render(data, h.templater)
	}
	return widget.Render(data, h.templater)
}
