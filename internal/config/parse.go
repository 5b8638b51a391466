package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mailru/easyjson"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a configuration document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension; anything that is not
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

var packageManagers = map[string]bool{"npm": true, "pnpm": true, "yarn": true}

// Validate checks the configuration for errors. Package entries are not
// checked here; missing names or paths are handled per entry at switch time.
func Validate(f *File) error {
	if f.PackageManager != "" && !packageManagers[f.PackageManager] {
		return fmt.Errorf("config: unsupported packageManager %q (must be npm, pnpm, or yarn)", f.PackageManager)
	}
	return nil
}

// Load reads and validates a configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided --config path
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data, FormatFor(path))
}

// Parse parses and validates configuration content.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	default:
		if err := easyjson.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing config JSON: %w", err)
		}
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Marshal encodes the configuration in the given format. JSON output is
// indented with two spaces.
func Marshal(f *File, format Format) ([]byte, error) {
	if format == FormatYAML {
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}
		return data, nil
	}
	compact, err := easyjson.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting config: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save validates and writes a configuration file, choosing the format from
// the file extension.
func Save(path string, f *File) error {
	if err := Validate(f); err != nil {
		return err
	}
	data, err := Marshal(f, FormatFor(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
