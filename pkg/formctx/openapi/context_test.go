package openapi

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFileBuildsContextFromRequestSchema(t *testing.T) {
	ctx, err := LoadFile(context.Background(), filepath.Join("testdata", "articles.yaml"), "createArticle", Options{
		Values: map[string]any{"title": "Hello"},
		Errors: map[string][]string{"/body/author/email": {"invalid"}},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !ctx.IsRequired("title") || !ctx.IsRequired("published_at") || ctx.IsRequired("status") {
		t.Fatalf("unexpected required flags")
	}
	if !ctx.IsRequired("author.email") {
		t.Fatalf("expected nested required flag")
	}
	if got := ctx.FieldType("published_at"); got != "datetime" {
		t.Fatalf("want datetime, got %q", got)
	}
	if got := ctx.FieldType("featured"); got != "boolean" {
		t.Fatalf("want boolean, got %q", got)
	}
	if ctx.Value("status") != "draft" || ctx.Value("title") != "Hello" {
		t.Fatalf("unexpected values %v %v", ctx.Value("status"), ctx.Value("title"))
	}
	if diff := cmp.Diff([]string{"draft", "published"}, ctx.FieldChoices("status")); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"invalid"}, ctx.ErrorMessages("author.email")); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestNewContextAddressesOperationsWithoutID(t *testing.T) {
	ctx, err := LoadFile(context.Background(), filepath.Join("testdata", "articles.yaml"), "patch:/articles/{id}", Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := ctx.FieldType("body"); got != "string" {
		t.Fatalf("want string, got %q", got)
	}
}

func TestNewContextUnknownOperation(t *testing.T) {
	if _, err := LoadFile(context.Background(), filepath.Join("testdata", "articles.yaml"), "missing", Options{}); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
	if _, err := NewContext(context.Background(), nil, "x", Options{}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
