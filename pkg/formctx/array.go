package formctx

import "sort"

// Field describes one field of an ArrayContext schema.
type Field struct {
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Default  any      `json:"default,omitempty" yaml:"default,omitempty"`
	Choices  []string `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// Data seeds an ArrayContext.
type Data struct {
	Schema     map[string]Field    `json:"schema,omitempty" yaml:"schema,omitempty"`
	Values     map[string]any      `json:"values,omitempty" yaml:"values,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty" yaml:"errors,omitempty"`
	FormErrors []string            `json:"formErrors,omitempty" yaml:"formErrors,omitempty"`
}

// ArrayContext is a context backed by plain maps keyed by dotted field path.
type ArrayContext struct {
	data Data
}

var (
	_ Context        = (*ArrayContext)(nil)
	_ TypeHinter     = (*ArrayContext)(nil)
	_ ChoiceProvider = (*ArrayContext)(nil)
	_ FormErrorer    = (*ArrayContext)(nil)
)

// NewArrayContext builds a context from data. Error messages are normalised.
func NewArrayContext(data Data) *ArrayContext {
	ctx := &ArrayContext{data: Data{
		Schema:     data.Schema,
		Values:     data.Values,
		Errors:     make(map[string][]string, len(data.Errors)),
		FormErrors: normalizeMessages(data.FormErrors),
	}}
	for field, messages := range data.Errors {
		if normalized := normalizeMessages(messages); len(normalized) > 0 {
			ctx.data.Errors[field] = normalized
		}
	}
	return ctx
}

// WithErrorPayload maps a server error payload onto the known fields (schema
// and value keys). Unmatched entries become form errors.
func (c *ArrayContext) WithErrorPayload(payload map[string][]string) *ArrayContext {
	mapping := MapErrorPayload(c.Fields(), payload)
	for field, messages := range mapping.Fields {
		c.data.Errors[field] = MergeMessages(c.data.Errors[field], messages...)
	}
	c.data.FormErrors = MergeMessages(c.data.FormErrors, mapping.Form...)
	return c
}

// Fields lists every field the context knows about, sorted.
func (c *ArrayContext) Fields() []string {
	seen := make(map[string]struct{})
	for field := range c.data.Schema {
		seen[field] = struct{}{}
	}
	for field := range c.data.Values {
		seen[field] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for field := range seen {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

func (c *ArrayContext) HasError(field string) bool {
	return len(c.data.Errors[field]) > 0
}

func (c *ArrayContext) ErrorMessages(field string) []string {
	return append([]string(nil), c.data.Errors[field]...)
}

func (c *ArrayContext) IsRequired(field string) bool {
	return c.data.Schema[field].Required
}

func (c *ArrayContext) Value(field string) any {
	if value, ok := c.data.Values[field]; ok {
		return value
	}
	return c.data.Schema[field].Default
}

func (c *ArrayContext) FieldType(field string) string {
	return c.data.Schema[field].Type
}

func (c *ArrayContext) FieldChoices(field string) []string {
	return append([]string(nil), c.data.Schema[field].Choices...)
}

func (c *ArrayContext) FormErrors() []string {
	return append([]string(nil), c.data.FormErrors...)
}
