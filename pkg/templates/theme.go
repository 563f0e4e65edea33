package templates

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Tokens    map[string]string      `yaml:"tokens"`
	Templates map[string]string      `yaml:"templates"`
	Assets    assetsFile             `yaml:"assets"`
	Variants  map[string]variantFile `yaml:"variants"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type variantFile struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsFile        `yaml:"assets"`
}

// LoadManifest reads a theme manifest from a YAML (or JSON) file.
func LoadManifest(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("templates: read theme %s: %w", path, err)
	}
	return ParseManifest(data, path)
}

// ParseManifest decodes a theme manifest document.
func ParseManifest(data []byte, source string) (*theme.Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("templates: parse theme %s: %w", source, err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, fmt.Errorf("templates: theme %s has no name", source)
	}
	manifest := &theme.Manifest{
		Name:      file.Name,
		Version:   file.Version,
		Tokens:    file.Tokens,
		Templates: file.Templates,
		Assets:    theme.Assets{Prefix: file.Assets.Prefix, Files: file.Assets.Files},
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
		for name, variant := range file.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}

// Stylesheets returns the manifest assets whose key ends in ".stylesheet",
// joined with the asset prefix, sorted by key.
func Stylesheets(manifest *theme.Manifest) []string {
	if manifest == nil {
		return nil
	}
	var keys []string
	for key := range manifest.Assets.Files {
		if strings.HasSuffix(key, ".stylesheet") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		file := manifest.Assets.Files[key]
		if manifest.Assets.Prefix != "" && !strings.Contains(file, "://") {
			file = path.Join(manifest.Assets.Prefix, file)
		}
		out = append(out, file)
	}
	return out
}

// FromManifest extracts template sets from a go-theme manifest. Manifest
// templates become base overrides; variants named after alignment modes
// (default, horizontal, inline) become alignment overrides.
func FromManifest(manifest *theme.Manifest) (Set, map[string]Set) {
	if manifest == nil {
		return nil, nil
	}
	base := Set(manifest.Templates).Clone()
	sets := make(map[string]Set)
	for name, variant := range manifest.Variants {
		switch name {
		case SetDefault, SetHorizontal, SetInline:
			sets[name] = Set(variant.Templates).Clone()
		}
	}
	return base, sets
}

// SelectTheme resolves a theme through selector and returns the manifest
// templates merged with the selected variant's templates.
func SelectTheme(selector theme.ThemeSelector, name, variant string) (Set, error) {
	if selector == nil {
		return nil, errors.New("templates: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("templates: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("templates: theme %q has no manifest", name)
	}
	out := Set(selection.Manifest.Templates).Clone()
	if selected, ok := selection.Manifest.Variants[selection.Variant]; ok {
		out = out.Merge(Set(selected.Templates))
	}
	return out, nil
}
