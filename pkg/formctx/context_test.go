package formctx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDomID(t *testing.T) {
	cases := map[string]string{
		"created":             "created",
		"User.first_name":     "user-first-name",
		"tags[]":              "tags",
		"created-group-label": "created-group-label",
		"gender-M":            "gender-m",
		"articles.0.title":    "articles-0-title",
	}
	for input, want := range cases {
		if got := DomID(input); got != want {
			t.Fatalf("DomID(%q): want %q, got %q", input, want, got)
		}
	}
}

func TestInputName(t *testing.T) {
	cases := map[string]string{
		"title":               "title",
		"user.first_name":     "user[first_name]",
		"articles.0.comments": "articles[0][comments]",
	}
	for input, want := range cases {
		if got := InputName(input); got != want {
			t.Fatalf("InputName(%q): want %q, got %q", input, want, got)
		}
	}
}

func TestArrayContext(t *testing.T) {
	ctx := NewArrayContext(Data{
		Schema: map[string]Field{
			"title":  {Type: "string", Required: true},
			"status": {Type: "string", Default: "draft", Choices: []string{"draft", "live"}},
		},
		Values: map[string]any{"title": "Hello"},
		Errors: map[string][]string{"title": {" too short ", "too short"}, "empty": {" "}},
	})

	if !ctx.IsRequired("title") || ctx.IsRequired("status") {
		t.Fatalf("unexpected required flags")
	}
	if ctx.Value("title") != "Hello" || ctx.Value("status") != "draft" || ctx.Value("missing") != nil {
		t.Fatalf("unexpected values")
	}
	if diff := cmp.Diff([]string{"too short"}, ctx.ErrorMessages("title")); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if ctx.HasError("empty") {
		t.Fatalf("blank messages must not count as errors")
	}
	if ctx.FieldType("title") != "string" {
		t.Fatalf("unexpected type %q", ctx.FieldType("title"))
	}
	if diff := cmp.Diff([]string{"draft", "live"}, ctx.FieldChoices("status")); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestArrayContextWithErrorPayload(t *testing.T) {
	ctx := NewArrayContext(Data{
		Schema: map[string]Field{"author.email": {Type: "string"}},
	}).WithErrorPayload(map[string][]string{
		"/data/author/email": {"invalid email"},
		"__all__":            {"try again"},
	})

	if diff := cmp.Diff([]string{"invalid email"}, ctx.ErrorMessages("author.email")); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"try again"}, ctx.FormErrors()); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestNullContext(t *testing.T) {
	var ctx Context = Null{}
	if ctx.HasError("x") || ctx.IsRequired("x") || ctx.Value("x") != nil || ctx.ErrorMessages("x") != nil {
		t.Fatalf("null context must be empty")
	}
}
