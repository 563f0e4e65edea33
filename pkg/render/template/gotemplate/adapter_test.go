package gotemplate_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formhelper/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte(`Hello {{ name }}`)},
		"use-global.tpl": {Data: []byte(`env={{ settings.env }}`)},
		"escape.tpl":     {Data: []byte(`{{ body }}|{{ body|safe }}`)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestRenderTemplateWritesToOutputs(t *testing.T) {
	engine := newEngine(t)
	var buf bytes.Buffer
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada" || buf.String() != got {
		t.Fatalf("got %q, writer %q", got, buf.String())
	}
}

func TestRenderEscapesUnlessSafe(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.Render("escape.tpl", map[string]any{"body": "<b>x</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "&lt;b&gt;x&lt;/b&gt;|<b>x</b>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGlobalData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))
	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderStringWithStructData(t *testing.T) {
	engine := newEngine(t)
	data := struct {
		Title string `json:"title"`
	}{Title: "Form"}
	got, err := engine.Render(`<h1>{{ title }}</h1>`, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<h1>Form</h1>" {
		t.Fatalf("got %q", got)
	}
}

func TestClassesFilter(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderString(`{{ "btn btn-primary"|classes:"btn btn-lg" }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "btn btn-primary btn-lg" {
		t.Fatalf("got %q", got)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout_formhelper", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	got, err := engine.RenderString(`{{ name|shout_formhelper }}`, map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("got %q", got)
	}
	if err := engine.RegisterFilter("shout_formhelper", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatal("expected duplicate filter error")
	}
}

func TestNewRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error without base dir or fs")
	}
}

func TestMissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("nope", nil); err == nil {
		t.Fatal("expected error for a missing template")
	}
}

func TestWithExtension(t *testing.T) {
	files := fstest.MapFS{"card.html": {Data: []byte(`<div class="card">{{ title|trim }}</div>`)}}
	engine, err := gotemplate.New(gotemplate.WithFS(files), gotemplate.WithExtension("html"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.RenderTemplate("card", map[string]any{"title": "  Sign up "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<div class="card">Sign up</div>` {
		t.Fatalf("got %q", got)
	}
}

func TestWithBaseDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "field.tpl"), []byte(`{{ label }}`), 0o644); err != nil {
		t.Fatal(err)
	}
	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.RenderTemplate("field", map[string]any{"label": "Email"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Email" {
		t.Fatalf("got %q", got)
	}
}
