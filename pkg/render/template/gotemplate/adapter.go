// Package gotemplate implements the template engine seam with
// github.com/goliatone/go-template, which renders pongo2 templates.
package gotemplate

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	sources bool
	options []gotemplatepkg.Option
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		if dir = strings.TrimSpace(dir); dir != "" {
			cfg.sources = true
			cfg.options = append(cfg.options, gotemplatepkg.WithBaseDir(dir))
		}
	}
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.sources = true
			cfg.options = append(cfg.options, gotemplatepkg.WithFS(files))
		}
	}
}

// WithExtension overrides the template extension (default ".tpl").
func WithExtension(ext string) Option {
	return func(cfg *config) {
		if ext = strings.TrimSpace(ext); ext != "" {
			cfg.options = append(cfg.options, gotemplatepkg.WithExtension(ext))
		}
	}
}

// WithTemplateFunc registers pongo2 filters or callable globals.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		cfg.options = append(cfg.options, gotemplatepkg.WithTemplateFunc(funcs))
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		cfg.options = append(cfg.options, gotemplatepkg.WithGlobalData(data))
	}
}

// Engine is a go-template renderer carrying the document filters.
type Engine struct {
	*gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine. At least one of WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if !cfg.sources {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}
	opts := append([]gotemplatepkg.Option{
		gotemplatepkg.WithTemplateFunc(map[string]any{"classes": filterClasses}),
	}, cfg.options...)
	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{Engine: engine}, nil
}

// filterClasses merges the class tokens of the input with those of the
// parameter, dropping duplicates: {{ "btn"|classes:"btn btn-lg" }}.
func filterClasses(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	a := attrs.InjectClasses(nil, in.String())
	if param != nil {
		attrs.InjectClasses(a, param.String())
	}
	return pongo2.AsValue(a.Value("class")), nil
}
