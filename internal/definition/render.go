package definition

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/form"
	"github.com/goliatone/go-formhelper/pkg/formctx"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// FormOptions converts the form section.
func (f Form) FormOptions() form.FormOptions {
	opts := form.FormOptions{
		Align:     f.Align,
		Action:    f.Action,
		Method:    f.Method,
		Type:      f.Type,
		Templates: f.Templates,
	}
	if len(f.Attrs) > 0 {
		opts.Attrs = attrs.FromMap(f.Attrs)
	}
	return opts
}

// ControlOptions converts a control entry.
func (c Control) ControlOptions() form.ControlOptions {
	opts := form.ControlOptions{
		Type:        c.Type,
		Tooltip:     c.Tooltip,
		Required:    c.Required,
		Options:     []widgets.Choice(c.Options),
		Empty:       c.Empty,
		Multiple:    form.MultipleMode(c.Multiple),
		Custom:      c.Custom,
		Inline:      c.Inline,
		NestedInput: c.NestedInput,
		Prepend:     c.Prepend,
		Append:      c.Append,
		Value:       c.Value,
		Templates:   c.Templates,
	}
	if c.Label != (Label{}) {
		label := &form.LabelOptions{Text: c.Label.Text, Disabled: c.Label.Disabled, Floating: c.Label.Floating}
		if c.Label.Class != "" {
			label.Attrs = attrs.New("class", c.Label.Class)
		}
		opts.Label = label
	}
	if c.Help != "" {
		opts.Help = form.Help(c.Help)
	}
	if len(c.Error) > 0 || c.ErrorStyle != "" {
		opts.Error = &form.ErrorOptions{Messages: c.Error, FeedbackStyle: c.ErrorStyle}
	}
	if len(c.Attrs) > 0 {
		opts.Attrs = attrs.FromMap(c.Attrs)
	}
	if len(c.Container) > 0 {
		opts.Container = attrs.FromMap(c.Container)
	}
	for _, p := range c.Parts {
		opts.Parts = append(opts.Parts, widgets.DatePart{Name: p.Name, Min: p.Min, Max: p.Max})
	}
	return opts
}

// Render writes the whole form with h, one element per line. A nil ctx uses
// the definition's own context.
func (d Definition) Render(h *form.FormHelper, ctx formctx.Context) (string, error) {
	if ctx == nil {
		ctx = formctx.NewArrayContext(d.Context)
	}
	start, err := h.Create(ctx, d.Form.FormOptions())
	if err != nil {
		return "", fmt.Errorf("definition: open form: %w", err)
	}
	parts := []string{start}
	for _, c := range d.Controls {
		out, err := h.Control(c.Field, c.ControlOptions())
		if err != nil {
			h.End()
			return "", fmt.Errorf("definition: %w", err)
		}
		parts = append(parts, out)
	}
	if d.Submit != "" {
		parts = append(parts, h.Submit(d.Submit, form.ButtonOptions{}))
	}
	parts = append(parts, h.End())
	return strings.Join(parts, "\n"), nil
}
