package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	formhelper "github.com/goliatone/go-formhelper"
	"github.com/goliatone/go-formhelper/internal/definition"
	"github.com/goliatone/go-formhelper/internal/prompt"
	"github.com/goliatone/go-formhelper/internal/watch"
	"github.com/goliatone/go-formhelper/pkg/form"
	"github.com/goliatone/go-formhelper/pkg/formctx"
	ctxopenapi "github.com/goliatone/go-formhelper/pkg/formctx/openapi"
	"github.com/goliatone/go-formhelper/pkg/layout"
	"github.com/goliatone/go-formhelper/pkg/render"
	"github.com/goliatone/go-formhelper/pkg/templates"
)

type flags struct {
	form      string
	config    string
	openapi   string
	operation string
	theme     string
	output    string
}

func main() {
	var f flags
	flag.StringVar(&f.form, "form", "", "form definition file (YAML or JSON)")
	flag.StringVar(&f.config, "config", "", "helper configuration file")
	flag.StringVar(&f.openapi, "openapi", "", "OpenAPI document used as form context")
	flag.StringVar(&f.operation, "operation", "", "operation ID inside -openapi")
	flag.StringVar(&f.theme, "theme", "", "go-theme manifest with template overrides")
	flag.StringVar(&f.output, "output", "", "output file (stdout if empty)")
	renderer := flag.String("renderer", "page", "output renderer (page or fragment)")
	interactive := flag.Bool("interactive", false, "prompt for alignment, renderer and title")
	sanitize := flag.Bool("sanitize", false, "sanitize caller supplied label and help markup")
	watchFiles := flag.Bool("watch", false, "render again whenever an input file changes")
	verbose := flag.Bool("verbose", false, "log helper decisions to stderr")
	flag.Parse()

	if f.form == "" {
		log.Fatalf("-form is required")
	}
	if f.openapi != "" && f.operation == "" {
		log.Fatalf("-operation is required with -openapi")
	}

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		logger = dev
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry, err := formhelper.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to build renderers: %v", err)
	}

	def, err := definition.Load(f.form)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}
	settings := prompt.Settings{
		Align:    def.Form.Align.Mode,
		Renderer: *renderer,
		Title:    def.Title,
		Sanitize: *sanitize,
	}
	if *interactive {
		settings, err = prompt.Ask(ctx, prompt.NewSurveyDriver(), settings, registry.List())
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}
	if !registry.Has(settings.Renderer) {
		log.Fatalf("Unknown renderer %q (have %v)", settings.Renderer, registry.List())
	}

	build := func() error {
		out, err := generate(ctx, f, settings, registry, logger)
		if err != nil {
			return err
		}
		return write(f.output, out)
	}
	if err := build(); err != nil {
		log.Fatalf("%v", err)
	}
	if !*watchFiles {
		return
	}

	paths := []string{f.form}
	for _, p := range []string{f.config, f.openapi, f.theme} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	logger.Info("watching for changes", zap.Strings("paths", paths))
	if err := watch.Run(ctx, paths, watch.DefaultDebounce, build, logger); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

// generate loads every input and renders the document. It reloads the
// definition so watch mode picks up edits.
func generate(ctx context.Context, f flags, settings prompt.Settings, registry *render.Registry, logger *zap.Logger) ([]byte, error) {
	def, err := definition.Load(f.form)
	if err != nil {
		return nil, fmt.Errorf("load form: %w", err)
	}
	if settings.Align != "" && settings.Align != def.Form.Align.Mode {
		def.Form.Align = layout.AlignMode(settings.Align)
	}

	opts := []form.Option{form.WithLogger(logger), form.WithSanitizer(settings.Sanitize)}
	if f.config != "" {
		cfg, err := form.LoadConfig(f.config)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		opts = append(opts, form.WithConfig(cfg))
	}
	var stylesheets []string
	if f.theme != "" {
		manifest, err := loadTheme(f.theme)
		if err != nil {
			return nil, fmt.Errorf("load theme: %w", err)
		}
		opts = append(opts, form.WithTheme(manifest))
		stylesheets = templates.Stylesheets(manifest)
	}

	var fctx formctx.Context
	if f.openapi != "" {
		arrayCtx, err := ctxopenapi.LoadFile(ctx, f.openapi, f.operation, ctxopenapi.Options{
			Values: def.Context.Values,
			Errors: def.Context.Errors,
		})
		if err != nil {
			return nil, fmt.Errorf("load OpenAPI context: %w", err)
		}
		fctx = arrayCtx
	}

	body, err := def.Render(form.New(opts...), fctx)
	if err != nil {
		return nil, fmt.Errorf("render form: %w", err)
	}
	r, err := registry.Get(settings.Renderer)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, render.Document{
		Title:       settings.Title,
		Lang:        def.Lang,
		Body:        body,
		Stylesheets: stylesheets,
	})
}

func write(path string, out []byte) error {
	if path == "" {
		fmt.Print(string(out))
		return nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Form written to %s\n", path)
	return nil
}

// loadTheme reads a manifest and registers it, which validates it.
func loadTheme(path string) (*theme.Manifest, error) {
	manifest, err := templates.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := theme.NewRegistry().Register(manifest); err != nil {
		return nil, fmt.Errorf("register theme %s: %w", manifest.Name, err)
	}
	return manifest, nil
}
