// Package inflect turns field names into display labels.
package inflect

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Underscore converts camelCase and dashed names to snake_case.
func Underscore(name string) string {
	var out strings.Builder
	for i, r := range name {
		if i > 0 && isBoundary(name, i, r) {
			out.WriteRune('_')
		}
		out.WriteRune(r)
	}
	return strings.ToLower(splitWordsPattern.ReplaceAllString(out.String(), "_"))
}

// Humanize turns "first_name" into "First Name".
func Humanize(name string) string {
	// Casers keep state, so each call gets its own.
	titler := cases.Title(language.Und, cases.NoLower)
	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titler.String(strings.ToLower(word)))
	}
	return strings.Join(segments, " ")
}

// Label derives a label from a dotted field path: the last segment, without a
// trailing _id, underscored and humanized. "user.country_id" gives "Country".
func Label(fieldName string) string {
	name := fieldName
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	name = Underscore(name)
	if name != "_id" {
		name = strings.TrimSuffix(name, "_id")
	}
	return Humanize(name)
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
