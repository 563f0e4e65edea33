package widgets

import (
	"html"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/templates"
)

// Formatter renders a named template. *templates.Templater implements it.
type Formatter interface {
	Format(name string, slots templates.Slots) string
}

// Widget renders a single control from fully resolved data.
type Widget interface {
	Render(data Data, f Formatter) (string, error)
}

// WidgetFunc adapts a function to Widget.
type WidgetFunc func(data Data, f Formatter) (string, error)

// Render calls fn.
func (fn WidgetFunc) Render(data Data, f Formatter) (string, error) {
	return fn(data, f)
}

// Choice is an entry of a select, radio set or checkbox list. A choice with
// Children is a group and Text is its label.
type Choice struct {
	Value    string       `json:"value" yaml:"value"`
	Text     string       `json:"text" yaml:"text"`
	Disabled bool         `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Attrs    *attrs.Attrs `json:"-" yaml:"-"`
	Children []Choice     `json:"children,omitempty" yaml:"children,omitempty"`
}

// Choices builds choices from value/text pairs.
func Choices(pairs ...string) []Choice {
	out := make([]Choice, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Choice{Value: pairs[i], Text: pairs[i+1]})
	}
	return out
}

// ChoicesFromValues uses every value as its own text.
func ChoicesFromValues(values ...string) []Choice {
	out := make([]Choice, 0, len(values))
	for _, value := range values {
		out = append(out, Choice{Value: value, Text: value})
	}
	return out
}

// Data is the resolved input handed to a widget.
type Data struct {
	// Type is the requested control type (text, email, datetime-local...).
	Type string
	// Name is the HTML name attribute.
	Name string
	// Attrs are the resolved input attributes (id, classes, ARIA, caller attrs).
	Attrs *attrs.Attrs
	// Value is the current value; Values holds selected values of multi
	// choice controls.
	Value  string
	Values []string
	// Checked marks a checkbox as checked regardless of Value.
	Checked bool

	Options   []Choice
	Empty     string
	ShowEmpty bool
	Multiple  bool

	// InjectFormControl adds the default control class (form-control and
	// friends) at render time.
	InjectFormControl bool
	Custom            bool

	// HiddenField renders the hidden companion input of checkboxes, radio
	// sets, checkbox lists and static controls. HiddenValue is the value it
	// posts for checkboxes.
	HiddenField bool
	HiddenValue string

	// ItemLabelAttrs are applied to the label of every radio or checkbox item.
	ItemLabelAttrs *attrs.Attrs
	// ItemWrapper is the template wrapping each item (radioWrapper...).
	ItemWrapper string
	NestedInput bool

	Parts []DatePart

	// Text is the caption of buttons.
	Text string
	// Escape escapes Text, Value and choice texts.
	Escape bool

	TemplateVars map[string]string
}

func (d Data) escape(s string) string {
	if d.Escape {
		return html.EscapeString(s)
	}
	return s
}

func (d Data) slots(s templates.Slots) templates.Slots {
	return s.With(d.TemplateVars)
}

// ControlClass returns the default class injected into inputs of type t.
func ControlClass(t string) string {
	switch t {
	case "hidden", "checkbox", "radio", "submit", "reset", "button", "image":
		return ""
	case "file":
		return "form-control-file"
	case "range":
		return "form-control-range"
	}
	return "form-control"
}

// HiddenInput renders a hidden input through the input template.
func HiddenInput(f Formatter, name, value string) string {
	return f.Format("input", templates.Slots{
		"type":  "hidden",
		"name":  html.EscapeString(name),
		"attrs": attrs.New("value", value).Format(),
	})
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
