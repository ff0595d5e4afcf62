// Package transform applies per-column derivations and type coercion to
// tables, driven by a declarative column configuration.
package transform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec holds the configured transforms for a single column.
//
// DType accepts string/str/text, int/integer/number, float/decimal,
// bool/boolean, date/datetime, and category (case-insensitive). The template
// placeholder "auto" and any unrecognized token leave the column unchanged.
type Spec struct {
	WordCount   bool   `json:"word_count" yaml:"word_count"`
	DType       string `json:"dtype,omitempty" yaml:"dtype,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Config maps column names to their transform specs. Columns absent from the
// table it is applied to are skipped; table columns absent from the config
// are left untouched.
type Config map[string]Spec

// ConfigError reports a column configuration file that could not be loaded.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("could not load column config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfig reads a column configuration file. Files ending in .yaml or
// .yml are parsed as YAML; everything else is parsed as JSON. Structurally
// invalid entries (wrong field types, non-object values) are rejected here
// rather than during consolidation.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("file not found")}
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
	}

	return cfg, nil
}

// Transforms summarizes the enabled transforms for display, e.g.
// "word_count, dtype=int", or "no transformations" when the spec is inert.
func (s Spec) Transforms() string {
	var parts []string
	if s.WordCount {
		parts = append(parts, "word_count")
	}
	if s.DType != "" {
		parts = append(parts, "dtype="+s.DType)
	}
	if len(parts) == 0 {
		return "no transformations"
	}
	return strings.Join(parts, ", ")
}

// ColumnNames returns the configured column names in sorted order.
func (c Config) ColumnNames() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
