// Package prompt asks the CLI render settings interactively.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formhelper/pkg/layout"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt: aborted")

// SelectConfig configures a single choice prompt.
type SelectConfig struct {
	Message string
	Options []string
	Default int
	Help    string
}

// InputConfig configures a text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// Driver runs the prompts. NewSurveyDriver talks to the terminal; tests
// substitute a scripted driver.
type Driver interface {
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by survey.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	prompt := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if cfg.Default >= 0 && cfg.Default < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.Default]
	}
	var out string
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translate(err)
	}
	for i, option := range cfg.Options {
		if option == out {
			return i, nil
		}
	}
	return 0, fmt.Errorf("prompt: unknown option %q", out)
}

func (surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prompt := &survey.Input{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validator := cfg.Validator
		opts = append(opts, survey.WithValidator(func(v any) error {
			s, _ := v.(string)
			return validator(s)
		}))
	}
	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translate(err)
	}
	return out, nil
}

func (surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}, &out); err != nil {
		return false, translate(err)
	}
	return out, nil
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Settings are the choices the CLI asks for.
type Settings struct {
	Align    layout.Mode
	Renderer string
	Title    string
	Sanitize bool
}

var modes = []layout.Mode{layout.ModeDefault, layout.ModeHorizontal, layout.ModeInline}

// Ask walks the user through the settings, starting from defaults.
// renderers lists the registered renderer names.
func Ask(ctx context.Context, d Driver, defaults Settings, renderers []string) (Settings, error) {
	out := defaults

	names := make([]string, len(modes))
	current := 0
	for i, m := range modes {
		names[i] = string(m)
		if m == defaults.Align {
			current = i
		}
	}
	idx, err := d.Select(ctx, SelectConfig{Message: "Form alignment", Options: names, Default: current})
	if err != nil {
		return defaults, err
	}
	if idx < 0 || idx >= len(modes) {
		return defaults, fmt.Errorf("prompt: alignment choice %d out of range", idx)
	}
	out.Align = modes[idx]

	if len(renderers) > 0 {
		current = 0
		for i, name := range renderers {
			if name == defaults.Renderer {
				current = i
			}
		}
		idx, err = d.Select(ctx, SelectConfig{Message: "Output", Options: renderers, Default: current})
		if err != nil {
			return defaults, err
		}
		if idx < 0 || idx >= len(renderers) {
			return defaults, fmt.Errorf("prompt: renderer choice %d out of range", idx)
		}
		out.Renderer = renderers[idx]
	}

	title, err := d.Input(ctx, InputConfig{Message: "Page title", Default: defaults.Title})
	if err != nil {
		return defaults, err
	}
	out.Title = strings.TrimSpace(title)

	out.Sanitize, err = d.Confirm(ctx, ConfirmConfig{
		Message: "Sanitize help and label markup?",
		Default: defaults.Sanitize,
	})
	if err != nil {
		return defaults, err
	}
	return out, nil
}
