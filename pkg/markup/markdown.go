package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// Markdown converts a short markdown snippet (help text, labels) into
// sanitised HTML. A single paragraph is unwrapped so the result can sit
// inside inline elements.
func Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markup: markdown: %w", err)
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return Sanitize(out), nil
}
