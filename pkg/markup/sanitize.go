// Package markup sanitises caller supplied HTML fragments (help text, input
// group addons, static content) before they are placed in form markup.
package markup

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Sanitize strips scripts, event handlers and unknown elements from raw while
// keeping inline formatting, links, icons and buttons.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(sanitizer().Sanitize(trimmed))
}

// IsMarkup reports whether s looks like an HTML fragment rather than text.
func IsMarkup(s string) bool {
	trimmed := strings.TrimSpace(s)
	return strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">")
}

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("button", "span", "i", "small", "strong", "em", "kbd")
		p.AllowAttrs("class", "id", "title", "role").Globally()
		p.AllowAttrs("type", "name", "value", "disabled").OnElements("button")
		p.AllowAttrs("aria-hidden", "aria-label").Globally()
		p.AllowDataAttributes()
		policy = p
	})
	return policy
}
