package definition

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhelper/pkg/form"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

func TestLoad(t *testing.T) {
	def, err := Load("testdata/article.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !def.Form.Align.IsZero() || def.Form.Action != "/articles" {
		t.Fatalf("form = %+v", def.Form)
	}
	if len(def.Controls) != 5 {
		t.Fatalf("controls = %d", len(def.Controls))
	}

	wantStatus := Options{{Value: "draft", Text: "Draft"}, {Value: "published", Text: "Published"}}
	if diff := cmp.Diff(wantStatus, def.Controls[1].Options); diff != "" {
		t.Fatalf("status options (-want +got):\n%s", diff)
	}
	wantTags := Options{{Value: "go", Text: "go"}, {Value: "html", Text: "html"}}
	if diff := cmp.Diff(wantTags, def.Controls[2].Options); diff != "" {
		t.Fatalf("tag options (-want +got):\n%s", diff)
	}
	if got := def.Controls[3].Label; got.Text != "Feature on the front page" || got.Disabled {
		t.Fatalf("featured label = %+v", got)
	}
	if !def.Controls[4].Label.Disabled {
		t.Fatal("notes label should be disabled")
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{"form": {"align": {"left": 3, "middle": 9}}, "controls": [{"field": "name", "label": {"text": "Full name", "floating": true}}]}`
	def, err := Parse([]byte(doc), "inline.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if def.Form.Align.Grid == nil || def.Form.Align.Grid.Flat.Left != 3 {
		t.Fatalf("grid = %+v", def.Form.Align.Grid)
	}
	if want := (Label{Text: "Full name", Floating: true}); def.Controls[0].Label != want {
		t.Fatalf("label = %+v", def.Controls[0].Label)
	}
}

func TestParseMarkdownHelp(t *testing.T) {
	doc := "controls:\n  - field: token\n    markdown: true\n    help: Find it under **Settings**\n"
	def, err := Parse([]byte(doc), "md.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := def.Controls[0].Help, "Find it under <strong>Settings</strong>"; got != want {
		t.Fatalf("help = %q, want %q", got, want)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"no controls":     `title: x`,
		"missing field":   "controls:\n  - type: text\n",
		"duplicate field": "controls:\n  - field: a\n  - field: a\n",
		"bad multiple":    "controls:\n  - field: a\n    multiple: radio\n",
		"bad error style": "controls:\n  - field: a\n    errorStyle: toast\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc), name); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestControlOptions(t *testing.T) {
	c := Control{
		Field:      "born",
		Type:       "date",
		Label:      Label{Text: "Birthday", Class: "lead"},
		Help:       "Used for greetings",
		Error:      []string{"too young"},
		ErrorStyle: "tooltip",
		Attrs:      map[string]string{"min": "1900-01-01"},
		Parts:      []Part{{Name: widgets.PartYear, Min: 1900, Max: 2020}},
	}
	opts := c.ControlOptions()
	if opts.Label == nil || opts.Label.Text != "Birthday" || opts.Label.Attrs.Value("class") != "lead" {
		t.Fatalf("label = %+v", opts.Label)
	}
	if opts.Help == nil || opts.Help.Content != "Used for greetings" {
		t.Fatalf("help = %+v", opts.Help)
	}
	if opts.Error == nil || opts.Error.FeedbackStyle != form.FeedbackTooltip {
		t.Fatalf("error = %+v", opts.Error)
	}
	if opts.Attrs.Value("min") != "1900-01-01" {
		t.Fatalf("attrs = %v", opts.Attrs.Map())
	}
	if len(opts.Parts) != 1 || opts.Parts[0].Max != 2020 {
		t.Fatalf("parts = %+v", opts.Parts)
	}
	if (Control{Field: "x"}).ControlOptions().Label != nil {
		t.Fatal("an empty label entry should derive the text")
	}
}

func TestRender(t *testing.T) {
	def, err := Load("testdata/article.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	h := form.New()
	out, err := def.Render(h, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{
		`<form method="post" accept-charset="utf-8" role="form" action="/articles">`,
		`<div class="invalid-feedback">must be set</div>`,
		`<option value="draft" selected="selected">Draft</option>`,
		`<input type="checkbox" name="tags[]" value="go" class="form-check-input" id="tags-go">`,
		`<label for="featured" class="form-check-label">Feature on the front page</label>`,
		`<textarea name="notes" id="notes" class="form-control"></textarea>`,
		`<div class="submit"><input type="submit" class="btn btn-primary" value="Save"></div>`,
		`</form>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	if h.State().Active {
		t.Fatal("form should be closed")
	}
}
