package markup

import (
	"strings"
	"testing"
)

func TestSanitizeRemovesScriptsKeepsButtons(t *testing.T) {
	got := Sanitize(` <button type="button" class="btn btn-outline-secondary" onclick="steal()">Go</button><script>alert(1)</script> `)
	if strings.Contains(got, "script") || strings.Contains(got, "onclick") {
		t.Fatalf("expected script and handlers removed, got %q", got)
	}
	if !strings.Contains(got, `<button type="button" class="btn btn-outline-secondary">Go</button>`) {
		t.Fatalf("expected button kept, got %q", got)
	}
}

func TestSanitizeKeepsIcons(t *testing.T) {
	got := Sanitize(`<i class="fas fa-at"></i>`)
	if got != `<i class="fas fa-at"></i>` {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if Sanitize("   ") != "" {
		t.Fatalf("expected empty output")
	}
}

func TestIsMarkup(t *testing.T) {
	if !IsMarkup(` <button>x</button>`) || IsMarkup("@") || IsMarkup("a < b") {
		t.Fatalf("unexpected IsMarkup result")
	}
}
