// Package layout resolves form alignment (default, horizontal, inline) and
// the horizontal grid, and tracks the alignment of the form being rendered.
package layout

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/templates"
)

// Mode is a form alignment strategy.
type Mode string

const (
	ModeDefault    Mode = "default"
	ModeHorizontal Mode = "horizontal"
	ModeInline     Mode = "inline"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeDefault, ModeHorizontal, ModeInline:
		return true
	}
	return false
}

// FormClass returns the class injected into the form tag for m.
func (m Mode) FormClass() string {
	switch m {
	case ModeHorizontal:
		return "form-horizontal"
	case ModeInline:
		return "form-inline"
	}
	return ""
}

// Align is the caller's alignment choice: a mode name or a grid, which
// implies horizontal. The zero value means "not specified".
type Align struct {
	Mode Mode
	Grid *GridSpec
}

// AlignMode selects a named mode.
func AlignMode(mode Mode) Align {
	return Align{Mode: mode}
}

// AlignGrid selects horizontal alignment with a custom grid.
func AlignGrid(grid GridSpec) Align {
	g := grid.Clone()
	return Align{Grid: &g}
}

// IsZero reports whether no alignment was given.
func (a Align) IsZero() bool {
	return a.Mode == "" && a.Grid == nil
}

// UnmarshalYAML accepts a scalar mode name or a grid mapping.
func (a *Align) UnmarshalYAML(node *yaml.Node) error {
	*a = Align{}
	if node.Kind == yaml.ScalarNode {
		a.Mode = Mode(strings.TrimSpace(node.Value))
		return nil
	}
	var grid GridSpec
	if err := node.Decode(&grid); err != nil {
		return err
	}
	a.Grid = &grid
	return nil
}

// UnmarshalJSON accepts a mode name string or a grid object.
func (a *Align) UnmarshalJSON(data []byte) error {
	*a = Align{}
	var mode string
	if err := json.Unmarshal(data, &mode); err == nil {
		a.Mode = Mode(strings.TrimSpace(mode))
		return nil
	}
	var grid GridSpec
	if err := json.Unmarshal(data, &grid); err != nil {
		return err
	}
	a.Grid = &grid
	return nil
}

// Config holds the resolver defaults.
type Config struct {
	// Default is used when the caller neither sets an alignment nor hints one
	// through the form class.
	Default Align
	// Grid is the grid adopted for horizontal forms without their own grid.
	Grid GridSpec
	// Sets are the alignment override templates keyed by mode name.
	Sets map[string]templates.Set
}

// DefaultConfig returns the stock resolver configuration.
func DefaultConfig() Config {
	return Config{
		Default: AlignMode(ModeDefault),
		Grid:    DefaultGrid(),
		Sets:    templates.Alignments(),
	}
}

// Request is what the form opener passes to Resolve.
type Request struct {
	Align Align
	// Class is the caller supplied form class attribute, used to detect
	// alignment when Align is zero.
	Class string
}

// Resolution is the outcome of resolving a form's alignment.
type Resolution struct {
	Mode Mode
	// Grid is set for horizontal forms only.
	Grid *GridSpec
	// Class is the class to inject into the form tag ("" for default).
	Class string
	// Templates are the alignment overrides with grid classes already
	// interpolated.
	Templates templates.Set
}

// Resolve picks the mode and grid for a form and prepares the alignment
// template overrides.
func Resolve(req Request, cfg Config) (Resolution, error) {
	align := req.Align
	if align.IsZero() {
		align = detect(req.Class, cfg.Default)
	}

	res := Resolution{Mode: align.Mode}
	switch {
	case align.Grid != nil:
		res.Mode = ModeHorizontal
		grid := align.Grid.Clone()
		res.Grid = &grid
	case align.Mode == ModeHorizontal:
		grid := cfg.Grid
		if grid.IsZero() {
			grid = DefaultGrid()
		}
		grid = grid.Clone()
		res.Grid = &grid
	case align.Mode == "":
		res.Mode = ModeDefault
	}

	if !res.Mode.Valid() {
		return Resolution{}, &OptionError{Option: "align", Value: string(res.Mode), Reason: "expected default, horizontal or inline"}
	}
	if res.Grid != nil {
		if err := res.Grid.Validate(); err != nil {
			return Resolution{}, err
		}
	}

	res.Class = res.Mode.FormClass()
	set := cfg.Sets[string(res.Mode)].Clone()
	if res.Grid != nil {
		set = Interpolate(set, *res.Grid)
	}
	res.Templates = set
	return res, nil
}

func detect(class string, fallback Align) Align {
	tokens := attrs.SplitClasses(class)
	switch {
	case attrs.CheckClasses(ModeHorizontal.FormClass(), tokens):
		return AlignMode(ModeHorizontal)
	case attrs.CheckClasses(ModeInline.FormClass(), tokens):
		return AlignMode(ModeInline)
	}
	return fallback
}

// Interpolate replaces the grid placeholders of every template in set.
func Interpolate(set templates.Set, grid GridSpec) templates.Set {
	replacer := strings.NewReplacer(
		templates.GridLeft, grid.ClassFor(Left, false),
		templates.GridMiddle, grid.ClassFor(Middle, false),
		templates.GridRight, grid.ClassFor(Right, false),
		templates.GridOffset, grid.OffsetClass(),
	)
	out := make(templates.Set, len(set))
	for name, tpl := range set {
		if strings.Contains(tpl, "{{grid.") {
			tpl = replacer.Replace(tpl)
		}
		out[name] = tpl
	}
	return out
}

// String renders the alignment for logs.
func (a Align) String() string {
	if a.Grid != nil {
		return string(ModeHorizontal) + "(" + a.Grid.ClassFor(Left, false) + " | " + a.Grid.ClassFor(Middle, false) + ")"
	}
	return string(a.Mode)
}
