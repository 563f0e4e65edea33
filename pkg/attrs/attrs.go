// Package attrs holds the ordered HTML attribute bag shared by templates,
// widgets and the form helper, plus the class and ARIA injection helpers.
package attrs

import (
	"html"
	"sort"
	"strings"
)

// Attrs is an insertion-ordered set of HTML attributes. Formatting follows
// insertion order so identical inputs always serialise identically. The zero
// value is ready to use; a nil *Attrs behaves as an empty bag for reads.
type Attrs struct {
	keys   []string
	values map[string]string
}

// New builds a bag from alternating key/value pairs. A trailing key without a
// value is ignored.
func New(pairs ...string) *Attrs {
	a := &Attrs{}
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Set(pairs[i], pairs[i+1])
	}
	return a
}

// FromMap builds a bag from a map. Keys are sorted so the result is stable.
func FromMap(values map[string]string) *Attrs {
	a := &Attrs{}
	if len(values) == 0 {
		return a
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		a.Set(key, values[key])
	}
	return a
}

// Set stores value under key. Existing keys keep their position.
func (a *Attrs) Set(key, value string) *Attrs {
	key = strings.TrimSpace(key)
	if key == "" {
		return a
	}
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return a
}

// SetDefault stores value only when key is not present yet.
func (a *Attrs) SetDefault(key, value string) *Attrs {
	if a.Has(key) {
		return a
	}
	return a.Set(key, value)
}

// SetBool sets a boolean attribute (rendered as name="name") or removes it.
func (a *Attrs) SetBool(key string, on bool) *Attrs {
	if !on {
		a.Delete(key)
		return a
	}
	return a.Set(key, key)
}

// Get returns the value stored under key.
func (a *Attrs) Get(key string) (string, bool) {
	if a == nil || a.values == nil {
		return "", false
	}
	value, ok := a.values[key]
	return value, ok
}

// Value returns the value stored under key or the empty string.
func (a *Attrs) Value(key string) string {
	value, _ := a.Get(key)
	return value
}

// Has reports whether key is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Delete removes the supplied keys.
func (a *Attrs) Delete(keys ...string) *Attrs {
	if a == nil || a.values == nil {
		return a
	}
	for _, key := range keys {
		if _, ok := a.values[key]; !ok {
			continue
		}
		delete(a.values, key)
		for i, existing := range a.keys {
			if existing == key {
				a.keys = append(a.keys[:i], a.keys[i+1:]...)
				break
			}
		}
	}
	return a
}

// Keys returns the attribute names in insertion order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// Len returns the number of attributes.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Clone returns an independent copy. Cloning nil yields an empty bag.
func (a *Attrs) Clone() *Attrs {
	out := &Attrs{}
	if a == nil {
		return out
	}
	for _, key := range a.keys {
		out.Set(key, a.values[key])
	}
	return out
}

// Merge copies every attribute from other into a; values from other win.
func (a *Attrs) Merge(other *Attrs) *Attrs {
	if other == nil {
		return a
	}
	for _, key := range other.keys {
		a.Set(key, other.values[key])
	}
	return a
}

// Without returns a copy of a minus the supplied keys.
func (a *Attrs) Without(keys ...string) *Attrs {
	return a.Clone().Delete(keys...)
}

// Map returns the attributes as a plain map.
func (a *Attrs) Map() map[string]string {
	if a == nil || len(a.keys) == 0 {
		return nil
	}
	out := make(map[string]string, len(a.keys))
	for _, key := range a.keys {
		out[key] = a.values[key]
	}
	return out
}

// Format serialises the attributes as ` key="value"` pairs, skipping the
// excluded keys. Values are HTML escaped. An empty bag formats to "".
func (a *Attrs) Format(exclude ...string) string {
	if a.Len() == 0 {
		return ""
	}
	skip := make(map[string]struct{}, len(exclude))
	for _, key := range exclude {
		skip[key] = struct{}{}
	}
	var b strings.Builder
	for _, key := range a.keys {
		if _, ok := skip[key]; ok {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.values[key]))
		b.WriteByte('"')
	}
	return b.String()
}
