package form

import (
	"testing"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/testsupport"
)

func TestButtonClasses(t *testing.T) {
	cases := []struct {
		class    string
		fallback string
		want     string
	}{
		{class: "", fallback: "primary", want: "btn btn-primary"},
		{class: "success lg", fallback: "primary", want: "btn btn-success btn-lg"},
		{class: "outline-danger", fallback: "primary", want: "btn btn-outline-danger"},
		{class: "btn btn-sm", fallback: "secondary", want: "btn btn-secondary btn-sm"},
		{class: "btn-info btn-info", fallback: "primary", want: "btn btn-info"},
		{class: "my-class", fallback: "", want: "btn my-class"},
	}
	for _, tc := range cases {
		if got := ButtonClasses(tc.class, tc.fallback); got != tc.want {
			t.Errorf("ButtonClasses(%q, %q) = %q, want %q", tc.class, tc.fallback, got, tc.want)
		}
	}
}

func TestSubmit(t *testing.T) {
	cases := []struct {
		name    string
		align   layout.Align
		caption string
		opts    ButtonOptions
		want    string
	}{
		{
			name:    "default",
			caption: "Save",
			want:    `<div class="submit"><input type="submit" class="btn btn-primary" value="Save"></div>`,
		},
		{
			name: "default caption",
			want: `<div class="submit"><input type="submit" class="btn btn-primary" value="Submit"></div>`,
		},
		{
			name:    "styled with container",
			caption: "Delete",
			opts:    ButtonOptions{Style: "danger", Container: attrs.New("class", "mt-3")},
			want:    `<div class="mt-3 submit"><input type="submit" class="btn btn-danger" value="Delete"></div>`,
		},
		{
			name:    "horizontal",
			align:   layout.AlignMode(layout.ModeHorizontal),
			caption: "Save",
			want:    `<div class="form-group row"><div class="offset-md-2 col-md-10"><input type="submit" class="btn btn-primary" value="Save"></div></div>`,
		},
		{
			name:    "inline",
			align:   layout.AlignMode(layout.ModeInline),
			caption: "Go",
			want:    `<div class="col-auto"><div class="submit"><input type="submit" class="btn btn-primary" value="Go"></div></div>`,
		},
		{
			name:    "scoped template",
			caption: "Save",
			opts:    ButtonOptions{Templates: map[string]string{"submitContainer": `<p>{{content}}</p>`}},
			want:    `<p><input type="submit" class="btn btn-primary" value="Save"></p>`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := New()
			open(t, h, nil, FormOptions{Align: tc.align})
			assertHTML(t, tc.want, h.Submit(tc.caption, tc.opts))
			if got := h.Templater().Depth(); got != 1 {
				t.Fatalf("depth = %d, want 1", got)
			}
		})
	}
}

func TestButton(t *testing.T) {
	h := New()

	got, err := h.Button("Go", ButtonOptions{})
	if err != nil {
		t.Fatalf("button: %v", err)
	}
	assertHTML(t, `<button class="btn btn-secondary" type="submit">Go</button>`, got)

	got, err = h.Button("<b>x</b>", ButtonOptions{Attrs: attrs.New("type", "button"), Style: "link"})
	if err != nil {
		t.Fatalf("button: %v", err)
	}
	assertHTML(t, `<button type="button" class="btn btn-link">&lt;b&gt;x&lt;/b&gt;</button>`, got)

	got, err = h.Button("<b>x</b>", ButtonOptions{Escape: Bool(false)})
	if err != nil {
		t.Fatalf("button: %v", err)
	}
	assertHTML(t, `<button class="btn btn-secondary" type="submit"><b>x</b></button>`, got)
}

func TestStaticControl(t *testing.T) {
	h := New()
	got, err := h.StaticControl("code", StaticOptions{Value: "A&B"})
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	want := testsupport.Lines(
		`<p class="form-control-plaintext">A&amp;B</p>`,
		`<input type="hidden" name="code" value="A&amp;B">`,
	)
	assertHTML(t, want, got)

	got, err = h.StaticControl("code", StaticOptions{Value: "A1", HiddenField: Bool(false)})
	if err != nil {
		t.Fatalf("static: %v", err)
	}
	assertHTML(t, `<p class="form-control-plaintext">A1</p>`, got)
}
