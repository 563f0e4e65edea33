package formhelper

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhelper/pkg/render"
)

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if diff := cmp.Diff([]string{"fragment", "page"}, registry.List()); diff != "" {
		t.Fatalf("renderers (-want +got):\n%s", diff)
	}
}

func TestRenderDocument(t *testing.T) {
	h := New()
	start, err := h.Create(nil, FormOptions{Action: "/signup"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	email, err := h.Control("email", ControlOptions{Type: "email"})
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	body := strings.Join([]string{start, email, h.End()}, "\n")

	out, err := RenderDocument(context.Background(), "page", Document{Title: "Sign up", Body: body})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"<title>Sign up</title>",
		`<form method="post" accept-charset="utf-8" role="form" action="/signup">`,
		`<input type="email" name="email" id="email" class="form-control">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page is missing %q", want)
		}
	}
}

func TestRenderDocumentUnknownRenderer(t *testing.T) {
	_, err := RenderDocument(context.Background(), "pdf", Document{Body: "<p>x</p>"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("err = %v", err)
	}
}
