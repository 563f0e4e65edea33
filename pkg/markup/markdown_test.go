package markup

import (
	"strings"
	"testing"
)

func TestMarkdownUnwrapsSingleParagraph(t *testing.T) {
	got, err := Markdown("Use **bold** and `code`")
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if want := "Use <strong>bold</strong> and <code>code</code>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMarkdownKeepsParagraphs(t *testing.T) {
	got, err := Markdown("one\n\ntwo")
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if !strings.HasPrefix(got, "<p>one</p>") || !strings.HasSuffix(got, "<p>two</p>") {
		t.Fatalf("got %q", got)
	}
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	got, err := Markdown(`see <b onclick="x()">this</b>`)
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if strings.Contains(got, "onclick") || strings.Contains(got, "<b") {
		t.Fatalf("raw html leaked: %q", got)
	}
	if !strings.Contains(got, "this") {
		t.Fatalf("text lost: %q", got)
	}
}
