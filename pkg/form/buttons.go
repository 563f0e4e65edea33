package form

import (
	"strings"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/templates"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

var buttonStyles = map[string]struct{}{
	"primary":   {},
	"secondary": {},
	"success":   {},
	"danger":    {},
	"warning":   {},
	"info":      {},
	"light":     {},
	"dark":      {},
	"link":      {},
}

var buttonSizes = map[string]struct{}{
	"lg":    {},
	"sm":    {},
	"block": {},
}

// ButtonClasses turns style tokens into Bootstrap button classes. "btn" is
// always first; when no colour style is present fallback is used.
func ButtonClasses(class, fallback string) string {
	out := []string{"btn"}
	styled := false
	for _, token := range attrs.SplitClasses(class) {
		name := strings.TrimPrefix(token, "btn-")
		_, style := buttonStyles[strings.TrimPrefix(name, "outline-")]
		_, size := buttonSizes[name]
		switch {
		case token == "btn":
			continue
		case style:
			styled = true
			token = "btn-" + name
		case size:
			token = "btn-" + name
		}
		if !contains(out, token) {
			out = append(out, token)
		}
	}
	if !styled && fallback != "" {
		out = append(out[:1], append([]string{"btn-" + fallback}, out[1:]...)...)
	}
	return strings.Join(out, " ")
}

// Submit renders a submit input inside the submit container. The default
// style is primary.
func (h *FormHelper) Submit(caption string, opts ButtonOptions) string {
	if len(opts.Templates) > 0 {
		h.push("submit templates")
		defer h.pop("submit templates")
		h.templater.Add(opts.Templates)
	}
	if caption == "" {
		caption = "Submit"
	}

	a := opts.Attrs.Clone()
	a.Set("class", ButtonClasses(strings.TrimSpace(opts.Style+" "+a.Value("class")), "primary"))
	a.SetDefault("value", caption)
	input := h.templater.Format("inputSubmit", templates.Slots{
		"type":  "submit",
		"attrs": a.Format(),
	})

	container := opts.Container.Clone()
	out := h.templater.Format("submitContainer", templates.Slots{
		"content":        input,
		"containerAttrs": container.Format("class"),
		"containerClass": attrs.ClassPrefix(container),
	})
	if h.scope.State().Is(layout.ModeInline) {
		out = h.templater.Format("elementWrapper", templates.Slots{"content": out})
	}
	return out
}

// Button renders a <button>. The default style is secondary and the default
// type submit.
func (h *FormHelper) Button(title string, opts ButtonOptions) (string, error) {
	if len(opts.Templates) > 0 {
		h.push("button templates")
		defer h.pop("button templates")
		h.templater.Add(opts.Templates)
	}
	a := opts.Attrs.Clone()
	a.Set("class", ButtonClasses(strings.TrimSpace(opts.Style+" "+a.Value("class")), "secondary"))
	buttonType := a.Value("type")
	if buttonType == "" {
		buttonType = "submit"
	}
	return h.renderWidget(widgets.WidgetButton, widgets.Data{
		Type:   buttonType,
		Attrs:  a,
		Text:   title,
		Escape: boolOr(opts.Escape, true),
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
