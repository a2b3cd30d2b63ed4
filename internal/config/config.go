// Package config loads the alch configuration file and applies
// environment overrides. Configuration is a plain YAML document; every
// field also has an ALCH_* environment variable that wins over the file.
// A missing config file is not an error, the defaults simply apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/radj307/caco-alch-potion-builder/internal/gamesettings"
)

// DefaultFileName is the config file looked up in the working directory
// when --config is not given.
const DefaultFileName = "alch.yml"

// DefaultRegistryFileName is the registry file used when --registry is
// not given and the config does not name one.
const DefaultRegistryFileName = "caco-ingredient-list.dat"

// Output holds presentation defaults; command-line flags override these
// per invocation.
type Output struct {
	// Indent is the number of spaces before ingredient names; effect
	// lines get double.
	Indent int `yaml:"indent" env:"ALCH_INDENT"`
	// Precision is the number of decimal places for magnitudes.
	Precision int `yaml:"precision" env:"ALCH_PRECISION"`
	// Color enables keyword-driven effect coloring.
	Color bool `yaml:"color" env:"ALCH_COLOR"`
	// Reverse flips list output to reverse collation order.
	Reverse bool `yaml:"reverse" env:"ALCH_REVERSE"`
}

// Config is the full alch configuration.
type Config struct {
	// Registry is the path to the ingredient registry file.
	Registry string `yaml:"registry" env:"ALCH_REGISTRY"`
	// Output holds presentation defaults.
	Output Output `yaml:"output"`
	// GameSettings parameterizes the potion magnitude formula.
	GameSettings gamesettings.Settings `yaml:"gamesettings"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		Registry: DefaultRegistryFileName,
		Output: Output{
			Indent:    2,
			Precision: 2,
			Color:     true,
		},
		GameSettings: gamesettings.Default(),
	}
}

// Load reads the config file at path, falls back to defaults when the
// file does not exist and explicit is false, then applies ALCH_*
// environment overrides. With explicit true a missing file is an error:
// the user asked for that file by name.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Defaults apply.
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Registry == "" {
		return errors.New("config: registry path must not be empty")
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("config: indent must not be negative, got %d", c.Output.Indent)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("config: precision must not be negative, got %d", c.Output.Precision)
	}
	return c.GameSettings.Validate()
}

// WriteDefault writes a fresh default config file at path, refusing to
// clobber an existing one.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: marshal defaults: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
