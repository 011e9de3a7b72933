// Package config loads CLI defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the defaults file looked up in the home directory when
// no --config flag is given.
const DefaultFileName = ".junipersky.yaml"

// Defaults holds user-configurable defaults for the radec CLI. Every field
// is optional; zero values defer to the engine defaults.
type Defaults struct {
	// PairDelimiter separates RA and Dec in the output ("\t" if unset).
	PairDelimiter string `yaml:"pair_delimiter"`

	// InternalDelimiter separates sexagesimal fields (":" if unset).
	InternalDelimiter string `yaml:"internal_delimiter"`

	// RAPrecision and DecPrecision override output digit counts.
	RAPrecision  *int `yaml:"ra_precision"`
	DecPrecision *int `yaml:"dec_precision"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// Load reads defaults from path. A missing file is not an error: the zero
// Defaults value is returned so the engine defaults apply.
func Load(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &d, nil
}

// DefaultPath returns the defaults file location in the user's home
// directory, or "" when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}
