package form

import (
	"maps"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/templates"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// MultipleMode selects how a select with several values renders.
type MultipleMode string

const (
	// MultipleSelect renders a <select multiple>.
	MultipleSelect MultipleMode = "select"
	// MultipleCheckbox renders one checkbox per choice.
	MultipleCheckbox MultipleMode = "checkbox"
)

// FeedbackStyle values accepted by ErrorOptions.
const (
	FeedbackDefault = ""
	FeedbackTooltip = "tooltip"
)

// LabelOptions configures the label of a control. A nil *LabelOptions means
// "derive the text from the field name".
type LabelOptions struct {
	Text     string
	Attrs    *attrs.Attrs
	Disabled bool
	// Floating renders the label after the input inside a form-floating
	// container.
	Floating     bool
	Escape       *bool
	TemplateVars map[string]string
}

// Label returns label options with the given text.
func Label(text string) *LabelOptions {
	return &LabelOptions{Text: text}
}

// NoLabel disables the label.
func NoLabel() *LabelOptions {
	return &LabelOptions{Disabled: true}
}

// ErrorOptions configures the error feedback of a control.
type ErrorOptions struct {
	// Disabled suppresses the message. The input still gets the error class.
	Disabled bool
	// Messages override the messages held by the form context.
	Messages []string
	// FeedbackStyle is FeedbackDefault or FeedbackTooltip.
	FeedbackStyle string
	Escape        *bool
}

// HelpOptions is help text rendered below the control.
type HelpOptions struct {
	Content string
	Attrs   *attrs.Attrs
}

// Help returns help options with the given content.
func Help(content string) *HelpOptions {
	return &HelpOptions{Content: content}
}

// ControlOptions is the per field option bag of Control. The helper copies it
// and never retains the caller's value.
type ControlOptions struct {
	Type    string
	Label   *LabelOptions
	Error   *ErrorOptions
	Help    *HelpOptions
	Tooltip string
	// Required overrides the form context.
	Required *bool

	Options   []widgets.Choice
	Empty     string
	ShowEmpty bool
	Multiple  MultipleMode

	// Templates are pushed for the duration of the call. TemplatesFile is a
	// JSON or YAML file loaded into the same scope.
	Templates     templates.Set
	TemplatesFile string
	TemplateVars  map[string]string

	Custom bool
	// Inline renders checkboxes and radios inline. nil follows the form.
	Inline      *bool
	NestedInput bool

	// Prepend and Append are input group addons. Plain text is wrapped in
	// inputGroupText, markup (buttons...) is kept as is.
	Prepend []string
	Append  []string

	// Value overrides the value held by the form context.
	Value   any
	Checked *bool

	// Container holds the attributes of the container element.
	Container *attrs.Attrs
	// Attrs are the input attributes (min, max, placeholder, class...).
	Attrs *attrs.Attrs
	// Parts renders date and time controls as one select per part.
	Parts []widgets.DatePart

	ID          string
	Name        string
	Escape      *bool
	HiddenField *bool
}

func (o ControlOptions) clone() ControlOptions {
	out := o
	if o.Label != nil {
		label := *o.Label
		label.Attrs = o.Label.Attrs.Clone()
		label.TemplateVars = maps.Clone(o.Label.TemplateVars)
		out.Label = &label
	}
	if o.Error != nil {
		e := *o.Error
		e.Messages = append([]string(nil), o.Error.Messages...)
		out.Error = &e
	}
	if o.Help != nil {
		h := *o.Help
		h.Attrs = o.Help.Attrs.Clone()
		out.Help = &h
	}
	out.Options = append([]widgets.Choice(nil), o.Options...)
	out.Templates = o.Templates.Clone()
	out.TemplateVars = maps.Clone(o.TemplateVars)
	out.Prepend = append([]string(nil), o.Prepend...)
	out.Append = append([]string(nil), o.Append...)
	out.Container = o.Container.Clone()
	out.Attrs = o.Attrs.Clone()
	out.Parts = append([]widgets.DatePart(nil), o.Parts...)
	return out
}

// FormOptions configures Create.
type FormOptions struct {
	// Align overrides the configured alignment. When zero the alignment is
	// detected from the form-horizontal or form-inline class in Attrs.
	Align  layout.Align
	Action string
	// Method defaults to post. put, patch and delete post with a hidden
	// _method field.
	Method string
	// Type file sets the multipart enctype.
	Type      string
	Attrs     *attrs.Attrs
	Templates templates.Set
}

// ButtonOptions configures Submit and Button.
type ButtonOptions struct {
	// Style tokens (primary, outline-danger, lg...) are turned into btn-*
	// classes. Classes already prefixed with btn- are kept.
	Style     string
	Attrs     *attrs.Attrs
	Container *attrs.Attrs
	Escape    *bool
	Templates templates.Set
}

// StaticOptions configures StaticControl.
type StaticOptions struct {
	Attrs       *attrs.Attrs
	Value       any
	Escape      *bool
	HiddenField *bool
}

// Bool returns a pointer to b, for the optional flags of the option structs.
func Bool(b bool) *bool {
	return &b
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
