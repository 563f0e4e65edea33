package templates

import "sort"

// Set maps template names to template strings.
type Set map[string]string

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for name, tpl := range s {
		out[name] = tpl
	}
	return out
}

// Merge returns a new set holding s overlaid with every set in others. Later
// sets win.
func (s Set) Merge(others ...Set) Set {
	out := s.Clone()
	for _, other := range others {
		for name, tpl := range other {
			out[name] = tpl
		}
	}
	return out
}

// Fill returns a copy of s with entries from defaults added where s has none.
func (s Set) Fill(defaults Set) Set {
	out := s.Clone()
	for name, tpl := range defaults {
		if _, ok := out[name]; !ok {
			out[name] = tpl
		}
	}
	return out
}

// Names returns the template names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Slots holds the values substituted into template placeholders.
type Slots map[string]string

// With returns a copy of s with vars added for keys s does not define. Explicit
// slots always win over template variables.
func (s Slots) With(vars map[string]string) Slots {
	out := make(Slots, len(s)+len(vars))
	for key, value := range vars {
		out[key] = value
	}
	for key, value := range s {
		out[key] = value
	}
	return out
}
