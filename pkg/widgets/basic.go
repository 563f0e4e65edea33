package widgets

import (
	"html"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/templates"
)

func inputAttrs(d Data, controlType string) *attrs.Attrs {
	a := d.Attrs.Clone()
	if d.Value != "" {
		a.Set("value", d.Value)
	}
	if d.InjectFormControl {
		if class := ControlClass(controlType); class != "" {
			attrs.InjectClasses(a, class)
		}
	}
	return a
}

func renderBasic(d Data, f Formatter) (string, error) {
	controlType := d.Type
	if controlType == "" {
		controlType = "text"
	}
	a := inputAttrs(d, controlType)
	return f.Format("input", d.slots(templates.Slots{
		"type":  controlType,
		"name":  html.EscapeString(d.Name),
		"attrs": a.Format(),
	})), nil
}

func renderHidden(d Data, f Formatter) (string, error) {
	a := d.Attrs.Clone()
	if d.Value != "" {
		a.Set("value", d.Value)
	}
	return f.Format("input", d.slots(templates.Slots{
		"type":  "hidden",
		"name":  html.EscapeString(d.Name),
		"attrs": a.Format(),
	})), nil
}

func renderTextarea(d Data, f Formatter) (string, error) {
	a := d.Attrs.Clone()
	if d.InjectFormControl {
		attrs.InjectClasses(a, "form-control")
	}
	return f.Format("textarea", d.slots(templates.Slots{
		"name":  html.EscapeString(d.Name),
		"value": html.EscapeString(d.Value),
		"attrs": a.Format(),
	})), nil
}

func renderFile(d Data, f Formatter) (string, error) {
	a := d.Attrs.Clone()
	switch {
	case d.Custom:
		attrs.InjectClasses(a, "custom-file-input")
	case d.InjectFormControl:
		attrs.InjectClasses(a, ControlClass("file"))
	}
	return f.Format("file", d.slots(templates.Slots{
		"name":  html.EscapeString(d.Name),
		"attrs": a.Format(),
	})), nil
}

func renderButton(d Data, f Formatter) (string, error) {
	a := d.Attrs.Clone()
	if d.Type == "submit" || d.Type == "reset" || d.Type == "button" {
		a.SetDefault("type", d.Type)
	} else {
		a.SetDefault("type", "submit")
	}
	if d.Name != "" {
		a.SetDefault("name", d.Name)
	}
	return f.Format("button", d.slots(templates.Slots{
		"text":  d.escape(d.Text),
		"attrs": a.Format(),
	})), nil
}

// renderStatic leaves the id off the paragraph; the field value travels in
// the hidden input.
func renderStatic(d Data, f Formatter) (string, error) {
	a := d.Attrs.Without("id")
	attrs.InjectClasses(a, "form-control-plaintext")
	out := f.Format("staticControl", d.slots(templates.Slots{
		"content": d.escape(d.Value),
		"attrs":   a.Format(),
	}))
	if d.HiddenField {
		out += HiddenInput(f, d.Name, d.Value)
	}
	return out, nil
}
