package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Position names a column of a horizontal form row.
type Position string

const (
	Left   Position = "left"
	Middle Position = "middle"
	Right  Position = "right"
)

// DefaultBreakpoint is used by the flat grid shorthand.
const DefaultBreakpoint = "md"

// Spans holds the column spans of the three positions. Zero disables a
// position.
type Spans struct {
	Left   int `json:"left,omitempty" yaml:"left,omitempty"`
	Middle int `json:"middle,omitempty" yaml:"middle,omitempty"`
	Right  int `json:"right,omitempty" yaml:"right,omitempty"`
}

func (s Spans) span(pos Position) int {
	switch pos {
	case Left:
		return s.Left
	case Middle:
		return s.Middle
	case Right:
		return s.Right
	}
	return 0
}

func (s Spans) validate(where string) error {
	for _, pos := range []Position{Left, Middle, Right} {
		if v := s.span(pos); v < 0 {
			return &OptionError{Option: "grid", Value: where + "." + string(pos), Reason: "spans must be positive"}
		}
	}
	return nil
}

// Breakpoint pairs a responsive tier name (sm, md, lg...) with spans.
type Breakpoint struct {
	Name  string
	Spans Spans
}

// GridSpec configures horizontal column classes. Either Flat is set (the
// legacy shorthand that renders col-md-*) or Breakpoints lists one entry per
// tier in declaration order.
type GridSpec struct {
	Flat        *Spans
	Breakpoints []Breakpoint
}

// FlatGrid builds the shorthand grid.
func FlatGrid(left, middle, right int) GridSpec {
	return GridSpec{Flat: &Spans{Left: left, Middle: middle, Right: right}}
}

// DefaultGrid returns the grid used when horizontal alignment is requested
// without one.
func DefaultGrid() GridSpec {
	return FlatGrid(2, 10, 0)
}

// IsZero reports whether the grid has no spans at all.
func (g GridSpec) IsZero() bool {
	return g.Flat == nil && len(g.Breakpoints) == 0
}

// Clone returns a deep copy.
func (g GridSpec) Clone() GridSpec {
	out := GridSpec{}
	if g.Flat != nil {
		flat := *g.Flat
		out.Flat = &flat
	}
	if len(g.Breakpoints) > 0 {
		out.Breakpoints = append([]Breakpoint(nil), g.Breakpoints...)
	}
	return out
}

// Validate rejects negative spans and unnamed breakpoints.
func (g GridSpec) Validate() error {
	if g.Flat != nil {
		if err := g.Flat.validate(DefaultBreakpoint); err != nil {
			return err
		}
	}
	for _, bp := range g.Breakpoints {
		if strings.TrimSpace(bp.Name) == "" {
			return &OptionError{Option: "grid", Value: "", Reason: "breakpoint name is required"}
		}
		if err := bp.Spans.validate(bp.Name); err != nil {
			return err
		}
	}
	return nil
}

// ClassFor returns the column classes for pos, one per breakpoint, joined by
// spaces. With offset set the offset-* variant is produced instead.
func (g GridSpec) ClassFor(pos Position, offset bool) string {
	prefix := "col"
	if offset {
		prefix = "offset"
	}
	var classes []string
	if g.Flat != nil {
		if span := g.Flat.span(pos); span > 0 {
			classes = append(classes, gridClass(prefix, DefaultBreakpoint, span))
		}
	}
	for _, bp := range g.Breakpoints {
		if span := bp.Spans.span(pos); span > 0 {
			classes = append(classes, gridClass(prefix, bp.Name, span))
		}
	}
	return strings.Join(classes, " ")
}

// OffsetClass is the class of containers without a visible label column: the
// left offset followed by the middle column.
func (g GridSpec) OffsetClass() string {
	return joinClasses(g.ClassFor(Left, true), g.ClassFor(Middle, false))
}

func gridClass(prefix, breakpoint string, span int) string {
	return prefix + "-" + breakpoint + "-" + strconv.Itoa(span)
}

func joinClasses(parts ...string) string {
	var out []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}

func isSpanKey(key string) bool {
	switch Position(key) {
	case Left, Middle, Right:
		return true
	}
	return false
}

// UnmarshalYAML accepts either {left, middle, right} or a mapping of
// breakpoint names to spans. Breakpoint order follows the document.
func (g *GridSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("layout: grid must be a mapping (line %d)", node.Line)
	}
	*g = GridSpec{}
	flat := true
	for i := 0; i+1 < len(node.Content); i += 2 {
		if !isSpanKey(node.Content[i].Value) {
			flat = false
			break
		}
	}
	if flat {
		var spans Spans
		if err := node.Decode(&spans); err != nil {
			return fmt.Errorf("layout: decode grid: %w", err)
		}
		g.Flat = &spans
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var spans Spans
		if err := node.Content[i+1].Decode(&spans); err != nil {
			return fmt.Errorf("layout: decode grid breakpoint %q: %w", node.Content[i].Value, err)
		}
		g.Breakpoints = append(g.Breakpoints, Breakpoint{Name: node.Content[i].Value, Spans: spans})
	}
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML, reading keys in document order.
func (g *GridSpec) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("layout: decode grid: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("layout: grid must be an object")
	}
	*g = GridSpec{}
	var (
		flat  Spans
		names []string
		raws  []json.RawMessage
	)
	isFlat := true
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("layout: decode grid: %w", err)
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("layout: decode grid %q: %w", key, err)
		}
		if !isSpanKey(key) {
			isFlat = false
		}
		names = append(names, key)
		raws = append(raws, raw)
	}
	if isFlat {
		for i, key := range names {
			var span int
			if err := json.Unmarshal(raws[i], &span); err != nil {
				return fmt.Errorf("layout: decode grid %q: %w", key, err)
			}
			switch Position(key) {
			case Left:
				flat.Left = span
			case Middle:
				flat.Middle = span
			case Right:
				flat.Right = span
			}
		}
		g.Flat = &flat
		return nil
	}
	for i, name := range names {
		var spans Spans
		if err := json.Unmarshal(raws[i], &spans); err != nil {
			return fmt.Errorf("layout: decode grid breakpoint %q: %w", name, err)
		}
		g.Breakpoints = append(g.Breakpoints, Breakpoint{Name: name, Spans: spans})
	}
	return nil
}
