package layout

// State is a read-only view of the active form alignment.
type State struct {
	Active bool
	Mode   Mode
	Grid   *GridSpec
}

// Is reports whether the active mode is m. An idle scope behaves as default.
func (s State) Is(m Mode) bool {
	if !s.Active {
		return m == ModeDefault
	}
	return s.Mode == m
}

// Scope tracks the alignment of the form between create and end. A Scope
// serves one form at a time.
type Scope struct {
	state State
}

// Activate records the resolved alignment.
func (s *Scope) Activate(res Resolution) {
	var grid *GridSpec
	if res.Grid != nil {
		g := res.Grid.Clone()
		grid = &g
	}
	s.state = State{Active: true, Mode: res.Mode, Grid: grid}
}

// Reset returns the scope to idle.
func (s *Scope) Reset() {
	s.state = State{}
}

// State returns the current alignment.
func (s *Scope) State() State {
	return s.state
}

// Active reports whether a form is open.
func (s *Scope) Active() bool {
	return s.state.Active
}
