package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-formhelper/internal/inflect"
	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/formctx"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

type alias struct {
	target string
	source string
}

type labelState struct {
	text   string
	attrs  *attrs.Attrs
	vars   map[string]string
	escape bool
}

// control is the resolved state of one Control call.
type control struct {
	field string
	// kind names the control in template lookups ({kind}FormGroup) and in the
	// container type slot.
	kind string
	// widget is the type handed to the widget registry.
	widget string
	id     string
	name   string
	input  *attrs.Attrs

	value   string
	values  []string
	checked bool
	choices []widgets.Choice

	label           *labelState
	groupLabel      bool
	inputGroupLabel *labelState
	floating        bool

	required      bool
	hasError      bool
	showError     bool
	messages      []string
	errorTemplate string
	escape        bool
	escapeErrors  bool

	custom            bool
	inline            bool
	nested            bool
	injectFormControl bool
	itemLabelAttrs    *attrs.Attrs
	itemWrapper       string
	hiddenField       bool

	templateVars map[string]string
	aliases      []alias
	opts         ControlOptions
}

func (c *control) alias(target, source string) {
	c.aliases = append(c.aliases, alias{target: target, source: source})
}

func (c *control) setVar(key, value string) {
	if c.templateVars == nil {
		c.templateVars = make(map[string]string)
	}
	if _, ok := c.templateVars[key]; !ok {
		c.templateVars[key] = value
	}
}

// Control renders a field with its label, help, error and container.
// Templates supplied in opts are scoped to this call.
func (h *FormHelper) Control(field string, options ControlOptions) (string, error) {
	opts := options.clone()
	if len(opts.Templates) > 0 || opts.TemplatesFile != "" {
		h.push("control templates")
		defer h.pop("control templates")
		if opts.TemplatesFile != "" {
			if err := h.templater.Load(opts.TemplatesFile); err != nil {
				return "", fmt.Errorf("form: control %s: %w", field, err)
			}
		}
		h.templater.Add(opts.Templates)
	}

	c := h.parseOptions(field, opts)
	c = resolveControl(c, h.scope.State())
	h.initInput(&c)
	return h.compose(c)
}

func (h *FormHelper) push(reason string) {
	h.templater.Push()
	h.logger.Debug("template scope pushed", zap.String("reason", reason), zap.Int("depth", h.templater.Depth()))
}

func (h *FormHelper) pop(reason string) {
	h.templater.Pop()
	h.logger.Debug("template scope popped", zap.String("reason", reason), zap.Int("depth", h.templater.Depth()))
}

func (h *FormHelper) parseOptions(field string, opts ControlOptions) control {
	c := control{
		field:             field,
		opts:              opts,
		escape:            boolOr(opts.Escape, true),
		escapeErrors:      true,
		custom:            opts.Custom,
		nested:            opts.NestedInput,
		injectFormControl: true,
		templateVars:      opts.TemplateVars,
	}

	c.input = opts.Attrs.Clone()
	if opts.ID != "" {
		c.input.Set("id", opts.ID)
	}
	c.input.SetDefault("id", formctx.DomID(field))
	c.id = c.input.Value("id")
	c.name = opts.Name
	if c.name == "" {
		c.name = formctx.InputName(field)
	}

	c.kind = h.detectType(field, opts)
	c.widget = c.kind

	c.choices = opts.Options
	if len(c.choices) == 0 {
		if provider, ok := h.context.(formctx.ChoiceProvider); ok {
			c.choices = widgets.ChoicesFromValues(provider.FieldChoices(field)...)
		}
	}

	raw := opts.Value
	if raw == nil {
		raw = h.context.Value(field)
	}
	c.value, c.values = stringify(raw, c.kind)
	if c.kind == "checkbox" {
		checkedValue := c.input.Value("value")
		c.input.Delete("value")
		if checkedValue == "" {
			checkedValue = "1"
		}
		c.checked = boolOr(opts.Checked, truthy(raw, checkedValue))
		c.value = checkedValue
	}

	c.required = boolOr(opts.Required, h.context.IsRequired(field))

	if opts.Error != nil && len(opts.Error.Messages) > 0 {
		c.hasError = true
		c.messages = formctx.MergeMessages(nil, opts.Error.Messages...)
	} else if h.context.HasError(field) {
		c.hasError = true
		c.messages = h.context.ErrorMessages(field)
	}
	c.showError = c.hasError && len(c.messages) > 0 && (opts.Error == nil || !opts.Error.Disabled)
	c.errorTemplate = "error"
	if opts.Error != nil {
		c.escapeErrors = boolOr(opts.Error.Escape, true)
		if opts.Error.FeedbackStyle == FeedbackTooltip {
			c.errorTemplate = "errorTooltip"
			if c.hasError {
				c.setVar("formGroupPosition", "position-relative ")
			}
		}
	}

	switch {
	case c.kind == "hidden":
	case opts.Label == nil:
		c.label = &labelState{text: inflect.Label(field), attrs: attrs.New(), escape: true}
	case !opts.Label.Disabled:
		text := opts.Label.Text
		if text == "" {
			text = inflect.Label(field)
		}
		c.label = &labelState{
			text:   text,
			attrs:  opts.Label.Attrs.Clone(),
			vars:   opts.Label.TemplateVars,
			escape: boolOr(opts.Label.Escape, true),
		}
		c.floating = opts.Label.Floating
	}
	return c
}

func (h *FormHelper) detectType(field string, opts ControlOptions) string {
	if opts.Type != "" {
		return opts.Type
	}
	if opts.Multiple != "" || len(opts.Options) > 0 {
		return "select"
	}
	if provider, ok := h.context.(formctx.ChoiceProvider); ok && len(provider.FieldChoices(field)) > 0 {
		return "select"
	}
	if hinter, ok := h.context.(formctx.TypeHinter); ok {
		switch hinter.FieldType(field) {
		case "text":
			return "textarea"
		case "integer", "float", "decimal", "number":
			return "number"
		case "boolean":
			return "checkbox"
		case "datetime", "timestamp":
			return "datetime-local"
		case "date":
			return "date"
		case "time":
			return "time"
		case "binary", "file":
			return "file"
		case "email":
			return "email"
		case "password":
			return "password"
		}
	}

	name := strings.ToLower(field)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	switch {
	case strings.Contains(name, "password") || strings.Contains(name, "passwd"):
		return "password"
	case strings.Contains(name, "email"):
		return "email"
	case strings.Contains(name, "phone") || name == "tel" || strings.HasSuffix(name, "_tel"):
		return "tel"
	}
	return "text"
}

// initInput applies the state derived classes and attributes to the input
// once the dispatcher has injected its own classes.
func (h *FormHelper) initInput(c *control) {
	if c.required {
		c.input.SetBool("required", true)
	}
	if c.hasError {
		attrs.InjectClasses(c.input, h.errorClass)
	}
	if c.opts.Help != nil && c.opts.Help.Content != "" {
		attrs.InjectARIA(c.input, "describedby", helpID(*c))
	}
}

func helpID(c control) string {
	if c.opts.Help != nil {
		if id := c.opts.Help.Attrs.Value("id"); id != "" {
			return id
		}
	}
	return c.id + "-help"
}

func stringify(raw any, kind string) (string, []string) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, []string{v}
	case []string:
		return strings.Join(v, ","), append([]string(nil), v...)
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, _ := stringify(item, kind)
			values = append(values, s)
		}
		return strings.Join(values, ","), values
	case bool:
		if v {
			return "1", []string{"1"}
		}
		return "0", []string{"0"}
	case int:
		s := strconv.Itoa(v)
		return s, []string{s}
	case int64:
		s := strconv.FormatInt(v, 10)
		return s, []string{s}
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return s, []string{s}
	case time.Time:
		s := formatTime(v, kind)
		return s, []string{s}
	case fmt.Stringer:
		s := v.String()
		return s, []string{s}
	}
	s := fmt.Sprint(raw)
	return s, []string{s}
}

func formatTime(t time.Time, kind string) string {
	switch kind {
	case "date":
		return t.Format("2006-01-02")
	case "time":
		return t.Format("15:04:05")
	case "month":
		return t.Format("2006-01")
	case "week":
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	}
	return t.Format("2006-01-02T15:04:05")
}

func truthy(raw any, checkedValue string) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	}
	s, _ := stringify(raw, "")
	switch strings.ToLower(s) {
	case checkedValue, "1", "true", "on", "yes":
		return true
	}
	return false
}
