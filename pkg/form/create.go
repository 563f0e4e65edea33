package form

import (
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/formctx"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/templates"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// Create opens a form: it resolves the alignment, activates the form scope
// with the alignment templates and returns the opening form tag. Calling
// Create while a form is open closes the previous scope first.
func (h *FormHelper) Create(ctx formctx.Context, opts FormOptions) (string, error) {
	if h.scope.Active() {
		h.logger.Debug("form reopened without end")
		h.reset()
	}

	formAttrs := opts.Attrs.Clone()
	res, err := layout.Resolve(layout.Request{
		Align: opts.Align,
		Class: formAttrs.Value("class"),
	}, h.layout)
	if err != nil {
		h.logger.Warn("invalid form alignment", zap.String("align", opts.Align.String()), zap.Error(err))
		return "", err
	}

	h.scope.Activate(res)
	h.templater.Push()
	h.templater.Add(res.Templates)
	h.templater.Add(opts.Templates)
	h.formPushed = true
	if ctx == nil {
		ctx = formctx.Null{}
	}
	h.context = ctx

	fields := []zap.Field{zap.String("mode", string(res.Mode)), zap.Int("depth", h.templater.Depth())}
	if res.Grid != nil {
		fields = append(fields, zap.String("grid", res.Grid.ClassFor(layout.Left, false)+" "+res.Grid.ClassFor(layout.Middle, false)))
	}
	h.logger.Debug("form alignment resolved", fields...)

	method := strings.ToLower(strings.TrimSpace(opts.Method))
	if method == "" {
		method = "post"
	}
	tag := attrs.New("method", "post", "accept-charset", "utf-8")
	if method == "get" {
		tag.Set("method", "get")
	}
	if opts.Type == "file" {
		tag.Set("enctype", "multipart/form-data")
	}
	tag.Merge(formAttrs)
	tag.SetDefault("role", "form")
	if opts.Action != "" {
		tag.Set("action", opts.Action)
	}
	if res.Class != "" {
		attrs.InjectClasses(tag, res.Class)
	}

	var out strings.Builder
	out.WriteString(h.templater.Format("formStart", templates.Slots{"attrs": tag.Format()}))
	switch method {
	case "put", "patch", "delete":
		hidden := widgets.HiddenInput(h.templater, "_method", strings.ToUpper(method))
		out.WriteString(h.templater.Format("hiddenBlock", templates.Slots{"content": hidden}))
	}
	out.WriteString(h.formErrors())
	return out.String(), nil
}

// End closes the form and returns the scope to idle. It is safe to call
// without an open form.
func (h *FormHelper) End() string {
	h.reset()
	return h.templater.Format("formEnd", nil)
}

func (h *FormHelper) reset() {
	if h.formPushed {
		h.templater.Pop()
		h.formPushed = false
	}
	h.scope.Reset()
	h.context = formctx.Null{}
	h.logger.Debug("form scope reset", zap.Int("depth", h.templater.Depth()))
}

func (h *FormHelper) formErrors() string {
	source, ok := h.context.(formctx.FormErrorer)
	if !ok {
		return ""
	}
	messages := source.FormErrors()
	if len(messages) == 0 {
		return ""
	}
	var content string
	if len(messages) == 1 {
		content = html.EscapeString(messages[0])
	} else {
		content = h.errorList(messages, true)
	}
	return h.templater.Format("formErrors", templates.Slots{"content": content})
}

func (h *FormHelper) errorList(messages []string, escape bool) string {
	var items strings.Builder
	for _, message := range messages {
		if escape {
			message = html.EscapeString(message)
		}
		items.WriteString(h.templater.Format("errorItem", templates.Slots{"text": message}))
	}
	return h.templater.Format("errorList", templates.Slots{"content": items.String()})
}
