// Package definition reads form definition files: the form options, a seed
// form context and the list of controls to render, in YAML or JSON.
package definition

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelper/pkg/formctx"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/markup"
	"github.com/goliatone/go-formhelper/pkg/templates"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// ErrInvalid is wrapped by every validation error of Parse.
var ErrInvalid = errors.New("definition: invalid")

// Definition is one form to render.
type Definition struct {
	Title string `yaml:"title"`
	Lang  string `yaml:"lang"`
	Form  Form   `yaml:"form"`
	// Context seeds an array form context when no other context is given.
	Context  formctx.Data `yaml:"context"`
	Controls []Control    `yaml:"controls"`
	// Submit is the caption of the submit button; empty renders none.
	Submit string `yaml:"submit"`
}

// Form holds the options of the form tag.
type Form struct {
	Action    string            `yaml:"action"`
	Method    string            `yaml:"method"`
	Type      string            `yaml:"type"`
	Align     layout.Align      `yaml:"align"`
	Attrs     map[string]string `yaml:"attrs"`
	Templates templates.Set     `yaml:"templates"`
}

// Control describes one Control call.
type Control struct {
	Field string `yaml:"field"`
	Type  string `yaml:"type"`
	Label Label  `yaml:"label"`
	Help  string `yaml:"help"`
	// Markdown renders Help as markdown.
	Markdown bool    `yaml:"markdown"`
	Tooltip  string  `yaml:"tooltip"`
	Required *bool   `yaml:"required"`
	Options  Options `yaml:"options"`
	Empty    string  `yaml:"empty"`
	// Multiple is "select" or "checkbox".
	Multiple    string            `yaml:"multiple"`
	Custom      bool              `yaml:"custom"`
	Inline      *bool             `yaml:"inline"`
	NestedInput bool              `yaml:"nestedInput"`
	Prepend     []string          `yaml:"prepend"`
	Append      []string          `yaml:"append"`
	Value       any               `yaml:"value"`
	Attrs       map[string]string `yaml:"attrs"`
	Container   map[string]string `yaml:"container"`
	// Error replaces the context messages; ErrorStyle "tooltip" renders them
	// as tooltips.
	Error      []string      `yaml:"error"`
	ErrorStyle string        `yaml:"errorStyle"`
	Templates  templates.Set `yaml:"templates"`
	Parts      []Part        `yaml:"parts"`
}

// Part is one select of a date or time control.
type Part struct {
	Name string `yaml:"name"`
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
}

// Label is written as a string (the text), false (no label) or a mapping.
type Label struct {
	Disabled bool   `yaml:"disabled"`
	Text     string `yaml:"text"`
	Floating bool   `yaml:"floating"`
	Class    string `yaml:"class"`
}

// UnmarshalYAML implements the scalar shorthands.
func (l *Label) UnmarshalYAML(node *yaml.Node) error {
	*l = Label{}
	if node.Kind != yaml.ScalarNode {
		type plain Label
		return node.Decode((*plain)(l))
	}
	if node.Tag == "!!bool" {
		var on bool
		if err := node.Decode(&on); err != nil {
			return err
		}
		l.Disabled = !on
		return nil
	}
	l.Text = node.Value
	return nil
}

// Options is written as a list of values, a list of {value, text} mappings
// (with optional children for groups) or a value to text mapping, which keeps
// document order.
type Options []widgets.Choice

// UnmarshalYAML implements the shorthands.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	*o = nil
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			*o = append(*o, widgets.Choice{Value: node.Content[i].Value, Text: node.Content[i+1].Value})
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				*o = append(*o, widgets.Choice{Value: item.Value, Text: item.Value})
				continue
			}
			var choice widgets.Choice
			if err := item.Decode(&choice); err != nil {
				return err
			}
			if choice.Text == "" {
				choice.Text = choice.Value
			}
			*o = append(*o, choice)
		}
		return nil
	}
	return fmt.Errorf("definition: options must be a list or a mapping (line %d)", node.Line)
}

// Load reads a definition file.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a definition. JSON documents parse as YAML.
func Parse(data []byte, source string) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("definition: parse %s: %w", source, err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, fmt.Errorf("%s: %w", source, err)
	}
	for i, c := range def.Controls {
		if !c.Markdown || c.Help == "" {
			continue
		}
		help, err := markup.Markdown(c.Help)
		if err != nil {
			return Definition{}, fmt.Errorf("definition: %s: field %q: %w", source, c.Field, err)
		}
		def.Controls[i].Help = help
	}
	return def, nil
}

// Validate checks the controls.
func (d Definition) Validate() error {
	if len(d.Controls) == 0 {
		return fmt.Errorf("%w: no controls", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(d.Controls))
	for i, c := range d.Controls {
		field := strings.TrimSpace(c.Field)
		if field == "" {
			return fmt.Errorf("%w: control %d has no field", ErrInvalid, i)
		}
		if _, dup := seen[field]; dup {
			return fmt.Errorf("%w: field %q appears twice", ErrInvalid, field)
		}
		seen[field] = struct{}{}
		switch c.Multiple {
		case "", "select", "checkbox":
		default:
			return fmt.Errorf("%w: field %q: multiple must be select or checkbox, got %q", ErrInvalid, field, c.Multiple)
		}
		switch c.ErrorStyle {
		case "", "tooltip":
		default:
			return fmt.Errorf("%w: field %q: unknown errorStyle %q", ErrInvalid, field, c.ErrorStyle)
		}
	}
	return nil
}
