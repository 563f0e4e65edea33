// Package templates implements the layered template registry used to render
// form markup. Templates are strings with {{name}} placeholders; the registry
// supports scoped overrides through Push and Pop.
package templates

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyScopeStack is the panic value raised when Pop is called without a
// matching Push.
var ErrEmptyScopeStack = errors.New("templates: pop on empty scope stack")

var placeholderPattern = regexp.MustCompile(`\{\{([\w.]+)\}\}`)

type part struct {
	literal string
	slot    string
}

type compiled struct {
	raw   string
	parts []part
}

func compile(raw string) *compiled {
	c := &compiled{raw: raw}
	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(raw, -1) {
		if loc[0] > last {
			c.parts = append(c.parts, part{literal: raw[last:loc[0]]})
		}
		c.parts = append(c.parts, part{slot: raw[loc[2]:loc[3]]})
		last = loc[1]
	}
	if last < len(raw) {
		c.parts = append(c.parts, part{literal: raw[last:]})
	}
	return c
}

func (c *compiled) format(slots Slots) string {
	var b strings.Builder
	b.Grow(len(c.raw))
	for _, p := range c.parts {
		if p.slot == "" {
			b.WriteString(p.literal)
			continue
		}
		b.WriteString(slots[p.slot])
	}
	return b.String()
}

// Templater is a template registry with a push/pop override stack. It is not
// safe for concurrent use; each form rendering pass owns one instance.
type Templater struct {
	templates map[string]*compiled
	stack     []map[string]*compiled
}

// New builds a registry seeded with the supplied sets, later sets winning.
func New(sets ...Set) *Templater {
	t := &Templater{templates: make(map[string]*compiled)}
	for _, set := range sets {
		t.Add(set)
	}
	return t
}

// Get returns the raw template registered under name.
func (t *Templater) Get(name string) (string, bool) {
	c, ok := t.templates[name]
	if !ok {
		return "", false
	}
	return c.raw, true
}

// Has reports whether name is registered.
func (t *Templater) Has(name string) bool {
	_, ok := t.templates[name]
	return ok
}

// Set registers or replaces a single template.
func (t *Templater) Set(name, tpl string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	t.templates[name] = compile(tpl)
}

// Add registers every template in set.
func (t *Templater) Add(set Set) {
	for name, tpl := range set {
		t.Set(name, tpl)
	}
}

// Remove drops the named templates.
func (t *Templater) Remove(names ...string) {
	for _, name := range names {
		delete(t.templates, name)
	}
}

// Load reads a template file (JSON or YAML mapping) and adds its entries.
func (t *Templater) Load(path string) error {
	set, err := LoadFile(path)
	if err != nil {
		return err
	}
	t.Add(set)
	return nil
}

// Push saves the current mapping. Changes made until the matching Pop are
// discarded by it.
func (t *Templater) Push() {
	saved := make(map[string]*compiled, len(t.templates))
	for name, c := range t.templates {
		saved[name] = c
	}
	t.stack = append(t.stack, saved)
}

// Pop restores the mapping saved by the most recent Push. It panics with
// ErrEmptyScopeStack when there is nothing to restore.
func (t *Templater) Pop() {
	if len(t.stack) == 0 {
		panic(ErrEmptyScopeStack)
	}
	last := len(t.stack) - 1
	t.templates = t.stack[last]
	t.stack[last] = nil
	t.stack = t.stack[:last]
}

// Depth returns the number of pushed scopes.
func (t *Templater) Depth() int {
	return len(t.stack)
}

// Snapshot returns a copy of the current mapping.
func (t *Templater) Snapshot() Set {
	out := make(Set, len(t.templates))
	for name, c := range t.templates {
		out[name] = c.raw
	}
	return out
}

// Format renders the named template. Unknown names render as the empty string;
// placeholders without a slot render empty.
func (t *Templater) Format(name string, slots Slots) string {
	c, ok := t.templates[name]
	if !ok {
		return ""
	}
	return c.format(slots)
}

// FormatString renders a template string that is not registered.
func FormatString(tpl string, slots Slots) string {
	return compile(tpl).format(slots)
}
