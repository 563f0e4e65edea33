package form

import (
	"github.com/goliatone/go-formhelper/pkg/formctx"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// StaticControl renders a read-only value as plain text, followed by a hidden
// input carrying the value unless HiddenField is false. Use Control with type
// staticControl to get a label and container.
func (h *FormHelper) StaticControl(field string, opts StaticOptions) (string, error) {
	a := opts.Attrs.Clone()
	a.SetDefault("id", formctx.DomID(field))
	raw := opts.Value
	if raw == nil {
		raw = h.context.Value(field)
	}
	value, _ := stringify(raw, widgets.WidgetStatic)
	return h.renderWidget(widgets.WidgetStatic, widgets.Data{
		Type:        widgets.WidgetStatic,
		Name:        formctx.InputName(field),
		Attrs:       a,
		Value:       value,
		Escape:      boolOr(opts.Escape, true),
		HiddenField: boolOr(opts.HiddenField, true),
	})
}
