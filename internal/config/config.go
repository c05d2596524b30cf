// Package config loads the settings of the diffy command from a YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dacharyc/diffy"
)

// EnvFormat names the environment variable that overrides the format of the
// config file.
const EnvFormat = "DIFFY_FORMAT"

// Config holds the command settings. Zero values mean "not set".
type Config struct {
	Format    string `yaml:"format"`
	Context   *int   `yaml:"context"`
	PlusMinus bool   `yaml:"plus_minus"`

	ShiftBoundaries bool `yaml:"shift_boundaries"`
}

// DefaultPath returns the path of the user config file, or "" when the
// platform has no user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "diffy", "config.yaml")
}

// Load reads the config file at path. A missing file, or an empty path,
// gives an empty Config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// Resolve loads the file at path and applies the environment on top of it.
func Resolve(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv(os.Getenv)
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if f := getenv(EnvFormat); f != "" {
		c.Format = f
	}
}

// Apply installs the configured format as the process-wide default format.
// Without a format, the default is text.
func (c *Config) Apply() error {
	f := diffy.FormatText
	if c.Format != "" {
		var err error
		if f, err = diffy.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	return diffy.SetDefaultFormat(f)
}

// RenderOptions returns the render options for the settings other than the
// format.
func (c *Config) RenderOptions() []diffy.RenderOption {
	var opts []diffy.RenderOption
	if c.Context != nil {
		opts = append(opts, diffy.WithContext(*c.Context))
	}
	if c.PlusMinus {
		opts = append(opts, diffy.WithPlusMinus())
	}
	return opts
}

// DiffOptions returns the options for computing the diff.
func (c *Config) DiffOptions() []diffy.Option {
	if c.ShiftBoundaries {
		return []diffy.Option{diffy.WithBoundaryShift(true)}
	}
	return nil
}
