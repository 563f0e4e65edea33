package fragment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhelper/pkg/render"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name     string
		renderer Renderer
		doc      render.Document
		want     string
	}{
		{
			name: "body only",
			doc:  render.Document{Title: "ignored", Body: "<form></form>"},
			want: "<form></form>\n",
		},
		{
			name:     "heading",
			renderer: Renderer{Heading: true},
			doc:      render.Document{Title: "Q&A", Body: "<form></form>\n"},
			want:     "<h2>Q&amp;A</h2>\n<form></form>\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.renderer.Render(context.Background(), tc.doc)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if diff := cmp.Diff(tc.want, string(out)); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := (Renderer{}).Render(context.Background(), render.Document{Body: "  "}); !errors.Is(err, render.ErrEmptyBody) {
		t.Fatalf("err = %v, want ErrEmptyBody", err)
	}
}
