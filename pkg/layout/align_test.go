package layout

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelper/pkg/templates"
)

func TestResolveDetectsAlignmentFromClassTokens(t *testing.T) {
	cases := []struct {
		name  string
		class string
		want  Mode
	}{
		{name: "horizontal token", class: "needs-validation form-horizontal", want: ModeHorizontal},
		{name: "inline token", class: "form-inline", want: ModeInline},
		{name: "horizontal checked first", class: "form-inline form-horizontal", want: ModeHorizontal},
		{name: "substring ignored", class: "my-form-horizontal", want: ModeDefault},
		{name: "no class", class: "", want: ModeDefault},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Resolve(Request{Class: tc.class}, DefaultConfig())
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if res.Mode != tc.want {
				t.Fatalf("want %s, got %s", tc.want, res.Mode)
			}
		})
	}
}

func TestResolveFallsBackToConfiguredDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Default = AlignMode(ModeInline)
	res, err := Resolve(Request{}, cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Mode != ModeInline || res.Class != "form-inline" {
		t.Fatalf("unexpected resolution %+v", res)
	}
	if res.Templates["elementWrapper"] == "" {
		t.Fatalf("expected inline templates")
	}
}

func TestResolveHorizontalInterpolatesGrid(t *testing.T) {
	res, err := Resolve(Request{Align: AlignMode(ModeHorizontal)}, DefaultConfig())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Class != "form-horizontal" {
		t.Fatalf("unexpected class %q", res.Class)
	}
	if res.Grid == nil || res.Grid.ClassFor(Left, false) != "col-md-2" {
		t.Fatalf("expected default grid, got %+v", res.Grid)
	}
	for name, tpl := range res.Templates {
		if strings.Contains(tpl, "{{grid.") {
			t.Fatalf("template %s still has grid placeholders: %s", name, tpl)
		}
	}
	if got := res.Templates["formGroup"]; got != `{{label}}<div class="col-md-10">{{input}}{{error}}{{help}}</div>` {
		t.Fatalf("unexpected formGroup %q", got)
	}
	if got := res.Templates["submitContainer"]; !strings.Contains(got, `<div class="offset-md-2 col-md-10">`) {
		t.Fatalf("unexpected submitContainer %q", got)
	}
}

func TestResolveGridImpliesHorizontal(t *testing.T) {
	res, err := Resolve(Request{Align: AlignGrid(FlatGrid(4, 8, 0))}, DefaultConfig())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Mode != ModeHorizontal {
		t.Fatalf("want horizontal, got %s", res.Mode)
	}
	if !strings.Contains(res.Templates["label"], "col-md-4") {
		t.Fatalf("grid not applied to label: %s", res.Templates["label"])
	}
}

func TestResolveDoesNotMutateConfiguredSets(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := Resolve(Request{Align: AlignMode(ModeHorizontal)}, cfg); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(cfg.Sets[templates.SetHorizontal]["label"], templates.GridLeft) {
		t.Fatalf("configured set was interpolated in place")
	}
}

func TestResolveRejectsUnknownMode(t *testing.T) {
	_, err := Resolve(Request{Align: AlignMode("diagonal")}, DefaultConfig())
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	var optErr *OptionError
	if !errors.As(err, &optErr) || optErr.Option != "align" || optErr.Value != "diagonal" {
		t.Fatalf("unexpected error detail %v", err)
	}
}

func TestAlignUnmarshalYAML(t *testing.T) {
	var doc struct {
		A Align `yaml:"a"`
		B Align `yaml:"b"`
	}
	if err := yaml.Unmarshal([]byte("a: inline\nb:\n  left: 3\n  middle: 9\n"), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.A.Mode != ModeInline || doc.A.Grid != nil {
		t.Fatalf("unexpected scalar align %+v", doc.A)
	}
	if doc.B.Grid == nil || doc.B.Grid.ClassFor(Middle, false) != "col-md-9" {
		t.Fatalf("unexpected grid align %+v", doc.B)
	}
}

func TestScopeLifecycle(t *testing.T) {
	var scope Scope
	if scope.Active() || !scope.State().Is(ModeDefault) {
		t.Fatalf("idle scope should behave as default")
	}
	grid := FlatGrid(2, 10, 0)
	scope.Activate(Resolution{Mode: ModeHorizontal, Grid: &grid})
	grid.Flat.Left = 6
	state := scope.State()
	if !state.Active || !state.Is(ModeHorizontal) || state.Grid.ClassFor(Left, false) != "col-md-2" {
		t.Fatalf("unexpected active state %+v", state)
	}
	scope.Reset()
	if scope.State() != (State{}) {
		t.Fatalf("reset must clear state, got %+v", scope.State())
	}
}
