// Package formctx defines the form context the helper reads field metadata
// from (errors, required-ness, values) and ships simple implementations.
package formctx

import (
	"strings"
	"unicode"
)

// Context supplies per-field metadata to the form helper.
type Context interface {
	HasError(field string) bool
	ErrorMessages(field string) []string
	IsRequired(field string) bool
	// Value returns the current value of field or nil.
	Value(field string) any
}

// TypeHinter is implemented by contexts that know the data type of a field
// (string, text, integer, boolean, date, datetime, binary...).
type TypeHinter interface {
	FieldType(field string) string
}

// ChoiceProvider is implemented by contexts that know the allowed values of a
// field.
type ChoiceProvider interface {
	FieldChoices(field string) []string
}

// FormErrorer is implemented by contexts that carry errors not tied to a
// field.
type FormErrorer interface {
	FormErrors() []string
}

// Null is a context without any metadata.
type Null struct{}

func (Null) HasError(string) bool { return false }

func (Null) ErrorMessages(string) []string { return nil }

func (Null) IsRequired(string) bool { return false }

func (Null) Value(string) any { return nil }

// DomID derives a deterministic element id from a dotted field path:
// lower-cased, with every run of characters other than letters and digits
// collapsed into a dash. "User.first_name" gives "user-first-name".
func DomID(field string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(field) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// InputName converts a dotted field path to the bracketed form used by HTML
// name attributes: "user.first_name" gives "user[first_name]".
func InputName(field string) string {
	segments := strings.Split(field, ".")
	if len(segments) == 1 {
		return field
	}
	var b strings.Builder
	b.WriteString(segments[0])
	for _, segment := range segments[1:] {
		b.WriteByte('[')
		b.WriteString(segment)
		b.WriteByte(']')
	}
	return b.String()
}
