package templates

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a JSON or YAML mapping of template names to template strings.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("templates: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a template file from fsys.
func LoadFS(fsys fs.FS, path string) (Set, error) {
	if fsys == nil {
		return nil, fmt.Errorf("templates: filesystem is required to read %s", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("templates: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a template mapping, trying JSON first and YAML second. source
// is only used in error messages.
func Parse(data []byte, source string) (Set, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("templates: file %s is empty", source)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err == nil {
		return set, nil
	}
	set = nil
	if err := yaml.Unmarshal(data, &set); err == nil {
		return set, nil
	}
	return nil, fmt.Errorf("templates: parse %s: invalid JSON or YAML", source)
}
