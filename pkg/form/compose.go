package form

import (
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/markup"
	"github.com/goliatone/go-formhelper/pkg/templates"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// LookupTemplate returns preferred when the registry holds it and fallback
// otherwise.
func LookupTemplate(t *templates.Templater, preferred, fallback string) string {
	if t.Has(preferred) {
		return preferred
	}
	return fallback
}

func (h *FormHelper) lookup(preferred, fallback string) string {
	name := LookupTemplate(h.templater, preferred, fallback)
	if name != preferred {
		h.logger.Debug("template fallback", zap.String("requested", preferred), zap.String("used", name))
	}
	return name
}

// compose renders a resolved control: widget, input group, label, group
// template and container, in that order.
func (h *FormHelper) compose(c control) (string, error) {
	if len(c.aliases) > 0 {
		h.push("control aliases")
		defer h.pop("control aliases")
		for _, a := range c.aliases {
			tpl, ok := h.templater.Get(a.source)
			if !ok {
				h.logger.Debug("template alias source missing", zap.String("target", a.target), zap.String("source", a.source))
				continue
			}
			h.templater.Set(a.target, tpl)
		}
	}

	nestCheckbox := c.kind == "checkbox" && c.nested && c.label != nil
	data := h.widgetData(c)
	if nestCheckbox {
		data.HiddenField = false
	}
	input, err := h.renderWidget(c.widget, data)
	if err != nil {
		return "", fmt.Errorf("form: control %s: %w", c.field, err)
	}
	if c.kind == "hidden" {
		return input, nil
	}

	input = h.inputGroup(c, input)
	label := ""
	if nestCheckbox {
		hidden := ""
		if c.hiddenField {
			hidden = widgets.HiddenInput(h.templater, c.name, "0")
		}
		label = h.renderLabel(c, c.label, "nestingLabelNestedInput", templates.Slots{"input": input, "hidden": hidden})
		input = ""
	} else if c.label != nil {
		labelTemplate := "label"
		if c.floating {
			labelTemplate = h.lookup("floatingLabel", "label")
		}
		label = h.renderLabel(c, c.label, labelTemplate, nil)
	}
	errorHTML := h.renderError(c)
	help := h.renderHelp(c)

	groupName := h.lookup(c.kind+"FormGroup", "formGroup")
	if c.floating {
		groupName = "formGroupFloatingLabel"
	}
	group := h.templater.Format(groupName, templates.Slots{
		"input": input,
		"label": label,
		"error": errorHTML,
		"help":  help,
	}.With(c.templateVars))

	suffix := ""
	if c.hasError {
		suffix = "Error"
	}
	containerName := h.lookup(c.kind+"Container"+suffix, "inputContainer"+suffix)
	container := c.opts.Container.Clone()
	if c.floating {
		// Group templates that already wrap the input in form-floating keep
		// the container plain.
		if tpl, _ := h.templater.Get(groupName); !strings.Contains(tpl, "form-floating") {
			attrs.InjectClasses(container, "form-floating")
		}
	}
	required := ""
	if c.required {
		required = " required"
	}
	out := h.templater.Format(containerName, templates.Slots{
		"content":        group,
		"error":          errorHTML,
		"help":           help,
		"required":       required,
		"type":           c.kind,
		"containerAttrs": container.Format("class"),
		"containerClass": attrs.ClassPrefix(container),
	}.With(c.templateVars))

	if h.scope.State().Is(layout.ModeInline) {
		out = h.templater.Format("elementWrapper", templates.Slots{"content": out})
	}
	return out, nil
}

func (h *FormHelper) widgetData(c control) widgets.Data {
	return widgets.Data{
		Type:              c.kind,
		Name:              c.name,
		Attrs:             c.input,
		Value:             c.value,
		Values:            c.values,
		Checked:           c.checked,
		Options:           c.choices,
		Empty:             c.opts.Empty,
		ShowEmpty:         c.opts.ShowEmpty || c.opts.Empty != "",
		Multiple:          c.opts.Multiple == MultipleSelect,
		InjectFormControl: c.injectFormControl,
		Custom:            c.custom,
		HiddenField:       c.hiddenField,
		ItemLabelAttrs:    c.itemLabelAttrs,
		ItemWrapper:       c.itemWrapper,
		NestedInput:       c.nested,
		Parts:             c.opts.Parts,
		Escape:            c.escape,
		TemplateVars:      c.templateVars,
	}
}

func (h *FormHelper) renderWidget(widgetType string, data widgets.Data) (string, error) {
	name := h.widgets.Resolve(widgetType)
	h.logger.Debug("widget resolved", zap.String("type", widgetType), zap.String("widget", name))
	widget, ok := h.widgets.Widget(name)
	if !ok {
		return "", fmt.Errorf("widget %q not registered", name)
	}
	return widget.Render(data, h.templater)
}

func (h *FormHelper) renderLabel(c control, label *labelState, template string, extra templates.Slots) string {
	a := attrs.New()
	if c.groupLabel {
		a.Set("id", groupLabelID(c.field))
	} else {
		a.Set("for", c.id)
	}
	a.Merge(label.attrs)

	text := label.text
	if label.escape {
		text = html.EscapeString(text)
	} else {
		text = h.markup(text)
	}
	tooltip := ""
	if c.opts.Tooltip != "" {
		tooltip = " " + h.templater.Format("tooltip", templates.Slots{"content": html.EscapeString(c.opts.Tooltip)})
	}

	slots := templates.Slots{
		"attrs":      a.Format(),
		"labelAttrs": a.Format("class"),
		"labelClass": attrs.ClassPrefix(a),
		"text":       text,
		"tooltip":    tooltip,
	}
	for key, value := range extra {
		slots[key] = value
	}
	return h.templater.Format(template, slots.With(label.vars).With(c.templateVars))
}

func (h *FormHelper) inputGroup(c control, input string) string {
	if len(c.opts.Prepend) == 0 && len(c.opts.Append) == 0 {
		return input
	}
	switch c.kind {
	case "checkbox", "radio", "multicheckbox", "hidden":
		return input
	}
	label := ""
	if c.inputGroupLabel != nil {
		label = h.renderLabel(c, c.inputGroupLabel, "label", nil)
	}
	return h.templater.Format("inputGroupContainer", templates.Slots{
		"attrs":   attrs.New("class", "input-group").Format(),
		"prepend": h.addons("input-group-prepend", c.opts.Prepend),
		"content": input,
		"append":  h.addons("input-group-append", c.opts.Append),
		"label":   label,
	})
}

func (h *FormHelper) addons(class string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for _, item := range items {
		if markup.IsMarkup(item) {
			b.WriteString(h.markup(item))
			continue
		}
		b.WriteString(h.templater.Format("inputGroupText", templates.Slots{"content": html.EscapeString(item)}))
	}
	return h.templater.Format("inputGroupAddon", templates.Slots{"class": class, "content": b.String()})
}

func (h *FormHelper) renderError(c control) string {
	if !c.showError {
		return ""
	}
	var content string
	if len(c.messages) == 1 {
		content = c.messages[0]
		if c.escapeErrors {
			content = html.EscapeString(content)
		}
	} else {
		content = h.errorList(c.messages, c.escapeErrors)
	}
	return h.templater.Format(c.errorTemplate, templates.Slots{"content": content})
}

func (h *FormHelper) renderHelp(c control) string {
	if c.opts.Help == nil || c.opts.Help.Content == "" {
		return ""
	}
	a := c.opts.Help.Attrs.Clone()
	a.SetDefault("id", helpID(c))
	attrs.InjectClasses(a, "form-text", "text-muted")
	return h.templater.Format("help", templates.Slots{
		"content": h.markup(c.opts.Help.Content),
		"attrs":   a.Format(),
	})
}

// markup passes caller supplied HTML through the sanitiser when enabled.
func (h *FormHelper) markup(s string) string {
	if !h.sanitize {
		return s
	}
	return markup.Sanitize(s)
}
