package widgets

import (
	"html"
	"strings"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/formctx"
	"github.com/goliatone/go-formhelper/pkg/templates"
)

func renderSelect(d Data, f Formatter) (string, error) {
	a := d.Attrs.Clone()
	if d.InjectFormControl {
		attrs.InjectClasses(a, "form-control")
	}
	selected := d.Values
	if !d.Multiple && d.Value != "" {
		selected = []string{d.Value}
	}

	var content strings.Builder
	if d.ShowEmpty {
		content.WriteString(f.Format("option", templates.Slots{
			"value": "",
			"text":  d.escape(d.Empty),
		}))
	}
	writeOptions(&content, d, f, d.Options, selected)

	name := "select"
	if d.Multiple {
		name = "selectMultiple"
	}
	return f.Format(name, d.slots(templates.Slots{
		"name":    html.EscapeString(d.Name),
		"attrs":   a.Format(),
		"content": content.String(),
	})), nil
}

func writeOptions(b *strings.Builder, d Data, f Formatter, choices []Choice, selected []string) {
	for _, choice := range choices {
		if len(choice.Children) > 0 {
			var group strings.Builder
			writeOptions(&group, d, f, choice.Children, selected)
			b.WriteString(f.Format("optgroup", templates.Slots{
				"label":   html.EscapeString(choice.Text),
				"attrs":   choice.Attrs.Format(),
				"content": group.String(),
			}))
			continue
		}
		a := choice.Attrs.Clone()
		if contains(selected, choice.Value) {
			a.SetBool("selected", true)
		}
		if choice.Disabled {
			a.SetBool("disabled", true)
		}
		b.WriteString(f.Format("option", templates.Slots{
			"value": html.EscapeString(choice.Value),
			"text":  d.escape(choice.Text),
			"attrs": a.Format(),
		}))
	}
}

type itemConfig struct {
	template string
	name     string
	wrapper  string
	selected func(value string) bool
}

func renderRadio(d Data, f Formatter) (string, error) {
	cfg := itemConfig{
		template: "radio",
		name:     d.Name,
		wrapper:  firstNonEmpty(d.ItemWrapper, "radioWrapper"),
		selected: func(value string) bool { return d.Value != "" && value == d.Value },
	}
	var b strings.Builder
	if d.HiddenField {
		b.WriteString(HiddenInput(f, d.Name, ""))
	}
	writeItems(&b, d, f, cfg, flatten(d.Options))
	return b.String(), nil
}

func renderMultiCheckbox(d Data, f Formatter) (string, error) {
	cfg := itemConfig{
		template: "checkbox",
		name:     d.Name + "[]",
		wrapper:  firstNonEmpty(d.ItemWrapper, "checkboxWrapper"),
		selected: func(value string) bool { return contains(d.Values, value) },
	}
	var b strings.Builder
	if d.HiddenField {
		b.WriteString(HiddenInput(f, d.Name, ""))
	}
	for _, choice := range d.Options {
		if len(choice.Children) == 0 {
			writeItems(&b, d, f, cfg, []Choice{choice})
			continue
		}
		var group strings.Builder
		group.WriteString(f.Format("multicheckboxTitle", templates.Slots{"text": d.escape(choice.Text)}))
		writeItems(&group, d, f, cfg, choice.Children)
		b.WriteString(f.Format("multicheckboxWrapper", templates.Slots{"content": group.String()}))
	}
	return b.String(), nil
}

func writeItems(b *strings.Builder, d Data, f Formatter, cfg itemConfig, choices []Choice) {
	baseID := d.Attrs.Value("id")
	if baseID == "" {
		baseID = formctx.DomID(d.Name)
	}
	labelTemplate := "nestingLabel"
	if d.NestedInput {
		labelTemplate = "nestingLabelNestedInput"
	}

	for _, choice := range choices {
		id := formctx.DomID(baseID + "-" + choice.Value)

		a := d.Attrs.Without("id")
		a.Set("id", id)
		a.Merge(choice.Attrs)
		if cfg.selected(choice.Value) {
			a.SetBool("checked", true)
		}
		if choice.Disabled {
			a.SetBool("disabled", true)
		}
		input := f.Format(cfg.template, templates.Slots{
			"name":  html.EscapeString(cfg.name),
			"value": html.EscapeString(choice.Value),
			"attrs": a.Format(),
		})

		labelAttrs := d.ItemLabelAttrs.Clone()
		labelAttrs.Set("for", id)
		if cfg.selected(choice.Value) {
			attrs.InjectClasses(labelAttrs, "selected")
		}
		label := f.Format(labelTemplate, templates.Slots{
			"attrs": labelAttrs.Format(),
			"text":  d.escape(choice.Text),
			"input": input,
		})
		b.WriteString(f.Format(cfg.wrapper, d.slots(templates.Slots{"label": label})))
	}
}

func flatten(choices []Choice) []Choice {
	var out []Choice
	for _, choice := range choices {
		if len(choice.Children) > 0 {
			out = append(out, flatten(choice.Children)...)
			continue
		}
		out = append(out, choice)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
