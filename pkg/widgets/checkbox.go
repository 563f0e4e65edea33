package widgets

import (
	"html"

	"github.com/goliatone/go-formhelper/pkg/templates"
)

func renderCheckbox(d Data, f Formatter) (string, error) {
	value := d.Value
	if value == "" {
		value = "1"
	}
	a := d.Attrs.Clone()
	if d.Checked {
		a.SetBool("checked", true)
	}

	out := ""
	if d.HiddenField {
		hidden := d.HiddenValue
		if hidden == "" {
			hidden = "0"
		}
		out = HiddenInput(f, d.Name, hidden)
	}
	out += f.Format("checkbox", d.slots(templates.Slots{
		"name":  html.EscapeString(d.Name),
		"value": html.EscapeString(value),
		"attrs": a.Format(),
	}))
	return out, nil
}
