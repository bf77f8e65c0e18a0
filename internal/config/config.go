// Package config loads the optional ysv tool configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is looked up in the working directory. A missing file is not
// an error: every setting has a flag or an in-code default.
const ConfigFile = ".ysv.yml"

type Config struct {
	// Definition is the default schema definition path, used when the
	// --definition flag is omitted.
	Definition string `yaml:"definition"`
	// Output is the default output format: "text" or "json".
	Output string `yaml:"output"`
	// LogFile receives structured JSON logs when set.
	LogFile string `yaml:"logFile"`
	// NoColour disables ANSI colour in text output.
	NoColour bool `yaml:"noColour"`
}

// Load reads the configuration file from dir, falling back to defaults
// when the file does not exist.
func Load(dir string) (*Config, error) {
	cfg := &Config{Output: "text"}

	raw, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, &InvalidOutputFormatError{Value: cfg.Output}
	}
	return cfg, nil
}
