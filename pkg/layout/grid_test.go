package layout

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestFlatGridClasses(t *testing.T) {
	grid := FlatGrid(2, 10, 0)
	cases := []struct {
		pos    Position
		offset bool
		want   string
	}{
		{Left, false, "col-md-2"},
		{Middle, false, "col-md-10"},
		{Right, false, ""},
		{Left, true, "offset-md-2"},
	}
	for _, tc := range cases {
		if got := grid.ClassFor(tc.pos, tc.offset); got != tc.want {
			t.Fatalf("%s offset=%v: want %q, got %q", tc.pos, tc.offset, tc.want, got)
		}
	}
	if got := grid.OffsetClass(); got != "offset-md-2 col-md-10" {
		t.Fatalf("unexpected offset class %q", got)
	}
}

func TestBreakpointGridKeepsDeclaredOrder(t *testing.T) {
	grid := GridSpec{Breakpoints: []Breakpoint{
		{Name: "sm", Spans: Spans{Left: 12, Middle: 12}},
		{Name: "lg", Spans: Spans{Left: 3, Middle: 9}},
		{Name: "xl", Spans: Spans{Middle: 8}},
	}}
	if got := grid.ClassFor(Left, false); got != "col-sm-12 col-lg-3" {
		t.Fatalf("unexpected left classes %q", got)
	}
	if got := grid.ClassFor(Middle, false); got != "col-sm-12 col-lg-9 col-xl-8" {
		t.Fatalf("unexpected middle classes %q", got)
	}
	if got := grid.OffsetClass(); got != "offset-sm-12 offset-lg-3 col-sm-12 col-lg-9 col-xl-8" {
		t.Fatalf("unexpected offset classes %q", got)
	}
}

func TestGridValidateRejectsNegativeSpans(t *testing.T) {
	err := FlatGrid(-1, 10, 0).Validate()
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestGridUnmarshalYAML(t *testing.T) {
	var flat GridSpec
	if err := yaml.Unmarshal([]byte("left: 3\nmiddle: 9\n"), &flat); err != nil {
		t.Fatalf("unmarshal flat: %v", err)
	}
	if diff := cmp.Diff(FlatGrid(3, 9, 0), flat); diff != "" {
		t.Fatalf("flat grid mismatch (-want +got):\n%s", diff)
	}

	var nested GridSpec
	doc := "xl:\n  left: 2\n  middle: 10\nsm:\n  left: 4\n  middle: 8\n"
	if err := yaml.Unmarshal([]byte(doc), &nested); err != nil {
		t.Fatalf("unmarshal nested: %v", err)
	}
	want := GridSpec{Breakpoints: []Breakpoint{
		{Name: "xl", Spans: Spans{Left: 2, Middle: 10}},
		{Name: "sm", Spans: Spans{Left: 4, Middle: 8}},
	}}
	if diff := cmp.Diff(want, nested); diff != "" {
		t.Fatalf("nested grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGridUnmarshalJSONKeepsOrder(t *testing.T) {
	var grid GridSpec
	if err := json.Unmarshal([]byte(`{"lg": {"left": 3, "middle": 9}, "md": {"left": 4, "middle": 8}}`), &grid); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := grid.ClassFor(Left, false); got != "col-lg-3 col-md-4" {
		t.Fatalf("unexpected classes %q", got)
	}

	var flat GridSpec
	if err := json.Unmarshal([]byte(`{"left": 2, "middle": 10}`), &flat); err != nil {
		t.Fatalf("unmarshal flat: %v", err)
	}
	if diff := cmp.Diff(FlatGrid(2, 10, 0), flat); diff != "" {
		t.Fatalf("flat grid mismatch (-want +got):\n%s", diff)
	}
}
