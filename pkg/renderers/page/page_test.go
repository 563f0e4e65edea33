package page

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formhelper/pkg/render"
)

func TestRenderWrapsBody(t *testing.T) {
	r, err := New(WithContainerClass("py-4"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := r.Render(context.Background(), render.Document{
		Title:   "Edit <article>",
		Body:    `<form method="post"></form>`,
		Scripts: []string{"/app.js"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Edit &lt;article&gt;</title>",
		`<link rel="stylesheet" href="` + DefaultStylesheet + `">`,
		`<main class="py-4 container">`,
		`<form method="post"></form>`,
		`<script src="/app.js"></script>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page is missing %q:\n%s", want, html)
		}
	}
}

func TestRenderDocumentStylesheetsWin(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := r.Render(context.Background(), render.Document{
		Lang:        "es",
		Body:        "<form></form>",
		Stylesheets: []string{"/theme.css"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, DefaultStylesheet) || !strings.Contains(html, `href="/theme.css"`) {
		t.Fatalf("unexpected stylesheets:\n%s", html)
	}
	if !strings.Contains(html, `<html lang="es">`) {
		t.Fatalf("expected lang es:\n%s", html)
	}
}

func TestRenderRejectsEmptyBody(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := r.Render(context.Background(), render.Document{}); !errors.Is(err, render.ErrEmptyBody) {
		t.Fatalf("err = %v, want ErrEmptyBody", err)
	}
}

func TestRenderHonoursCancellation(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, render.Document{Body: "<form></form>"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
