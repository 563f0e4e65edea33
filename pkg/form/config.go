package form

import (
	"encoding/json"
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/templates"
	"github.com/goliatone/go-formhelper/pkg/widgets"
)

// DefaultErrorClass is added to inputs of fields with errors.
const DefaultErrorClass = "is-invalid"

// Config is the file representation of the helper settings.
type Config struct {
	Align       layout.Align             `json:"align" yaml:"align"`
	Grid        *layout.GridSpec         `json:"grid,omitempty" yaml:"grid,omitempty"`
	ErrorClass  string                   `json:"errorClass,omitempty" yaml:"errorClass,omitempty"`
	Templates   templates.Set            `json:"templates,omitempty" yaml:"templates,omitempty"`
	TemplateSet map[string]templates.Set `json:"templateSet,omitempty" yaml:"templateSet,omitempty"`
	// SanitizeMarkup passes caller supplied markup (help, addons, unescaped
	// labels) through the HTML sanitiser.
	SanitizeMarkup bool `json:"sanitizeMarkup,omitempty" yaml:"sanitizeMarkup,omitempty"`
}

// LoadConfig reads a JSON or YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("form: read config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes a config document, trying JSON first then YAML.
func ParseConfig(data []byte, source string) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}
	cfg = Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("form: parse config %s: %w", source, err)
	}
	return cfg, nil
}

// Option customises a FormHelper.
type Option func(*FormHelper)

// WithConfig applies every non-zero setting of cfg.
func WithConfig(cfg Config) Option {
	return func(h *FormHelper) {
		if !cfg.Align.IsZero() {
			h.layout.Default = cfg.Align
		}
		if cfg.Grid != nil {
			h.layout.Grid = cfg.Grid.Clone()
		}
		if cfg.ErrorClass != "" {
			h.errorClass = cfg.ErrorClass
		}
		h.base = h.base.Merge(cfg.Templates)
		for mode, set := range cfg.TemplateSet {
			h.layout.Sets[mode] = h.layout.Sets[mode].Merge(set)
		}
		if cfg.SanitizeMarkup {
			h.sanitize = true
		}
	}
}

// WithTemplates overlays the base template set.
func WithTemplates(set templates.Set) Option {
	return func(h *FormHelper) {
		h.base = h.base.Merge(set)
	}
}

// WithTemplateSet overlays the alignment overrides of mode.
func WithTemplateSet(mode layout.Mode, set templates.Set) Option {
	return func(h *FormHelper) {
		h.layout.Sets[string(mode)] = h.layout.Sets[string(mode)].Merge(set)
	}
}

// WithGrid sets the grid used by horizontal forms without their own grid.
func WithGrid(grid layout.GridSpec) Option {
	return func(h *FormHelper) {
		h.layout.Grid = grid.Clone()
	}
}

// WithAlign sets the default alignment.
func WithAlign(align layout.Align) Option {
	return func(h *FormHelper) {
		h.layout.Default = align
	}
}

// WithErrorClass replaces the class added to inputs with errors.
func WithErrorClass(class string) Option {
	return func(h *FormHelper) {
		if class != "" {
			h.errorClass = class
		}
	}
}

// WithTheme overlays the templates of a theme manifest. Variants named after
// an alignment mode extend that mode's overrides.
func WithTheme(manifest *theme.Manifest) Option {
	return func(h *FormHelper) {
		base, variants := templates.FromManifest(manifest)
		h.base = h.base.Merge(base)
		for mode, set := range variants {
			h.layout.Sets[mode] = h.layout.Sets[mode].Merge(set)
		}
	}
}

// WithWidgets replaces the widget registry.
func WithWidgets(registry *widgets.Registry) Option {
	return func(h *FormHelper) {
		if registry != nil {
			h.widgets = registry
		}
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(h *FormHelper) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithSanitizer toggles sanitising of caller supplied markup.
func WithSanitizer(enabled bool) Option {
	return func(h *FormHelper) {
		h.sanitize = enabled
	}
}
