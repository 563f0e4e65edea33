// Package widgets renders single form controls (inputs, selects, checkbox
// lists, date parts...) from resolved attributes through the template
// registry.
package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetBasic         = "basic"
	WidgetHidden        = "hidden"
	WidgetCheckbox      = "checkbox"
	WidgetRadio         = "radio"
	WidgetMultiCheckbox = "multicheckbox"
	WidgetSelect        = "select"
	WidgetTextarea      = "textarea"
	WidgetFile          = "file"
	WidgetButton        = "button"
	WidgetDatetime      = "datetime"
	WidgetStatic        = "staticControl"
)

// Matcher decides whether a widget should render the supplied control type.
type Matcher func(controlType string) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry maps control types to widgets. A type equal to a registered
// widget name resolves to it directly; otherwise matchers are evaluated by
// priority (ties fall back to registration order) and the basic widget is
// the fallback.
type Registry struct {
	mu       sync.RWMutex
	widgets  map[string]Widget
	rules    []rule
	fallback string
}

// NewRegistry constructs a registry with the built-in widgets and matchers.
func NewRegistry() *Registry {
	reg := &Registry{
		widgets:  make(map[string]Widget),
		fallback: WidgetBasic,
	}
	reg.registerBuiltins()
	return reg
}

// Add registers or replaces the widget stored under name.
func (r *Registry) Add(name string, widget Widget) {
	trimmed := strings.TrimSpace(name)
	if r == nil || trimmed == "" || widget == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.widgets[trimmed] = widget
}

// Register adds a matcher routing control types to the widget name. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a control type.
func (r *Registry) Resolve(controlType string) string {
	if r == nil {
		return WidgetBasic
	}
	r.mu.RLock()
	if _, ok := r.widgets[controlType]; ok {
		r.mu.RUnlock()
		return controlType
	}
	rules := append([]rule(nil), r.rules...)
	fallback := r.fallback
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(controlType) {
			return entry.name
		}
	}
	return fallback
}

// Widget returns the widget stored under name.
func (r *Registry) Widget(name string) (Widget, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	widget, ok := r.widgets[name]
	return widget, ok
}

// Names returns the registered widget names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render resolves the widget for data.Type and renders it.
func (r *Registry) Render(data Data, f Formatter) (string, error) {
	name := r.Resolve(data.Type)
	widget, ok := r.Widget(name)
	if !ok {
		return "", fmt.Errorf("widgets: widget %q not registered", name)
	}
	return widget.Render(data, f)
}

func (r *Registry) registerBuiltins() {
	r.widgets[WidgetBasic] = WidgetFunc(renderBasic)
	r.widgets[WidgetHidden] = WidgetFunc(renderHidden)
	r.widgets[WidgetCheckbox] = WidgetFunc(renderCheckbox)
	r.widgets[WidgetRadio] = WidgetFunc(renderRadio)
	r.widgets[WidgetMultiCheckbox] = WidgetFunc(renderMultiCheckbox)
	r.widgets[WidgetSelect] = WidgetFunc(renderSelect)
	r.widgets[WidgetTextarea] = WidgetFunc(renderTextarea)
	r.widgets[WidgetFile] = WidgetFunc(renderFile)
	r.widgets[WidgetButton] = WidgetFunc(renderButton)
	r.widgets[WidgetDatetime] = WidgetFunc(renderDatetime)
	r.widgets[WidgetStatic] = WidgetFunc(renderStatic)

	r.Register(WidgetDatetime, 90, IsDatetimeType)
	r.Register(WidgetButton, 80, func(t string) bool {
		return t == "submit" || t == "reset"
	})
}

// IsDatetimeType reports whether t is one of the native date/time input types.
func IsDatetimeType(t string) bool {
	switch t {
	case "datetime", "datetime-local", "date", "time", "month", "week":
		return true
	}
	return false
}
