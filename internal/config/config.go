package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when --config is not given. It is optional.
const DefaultPath = "srtkit.yaml"

// settings shared by every command; flags override them
type Config struct {
	// reject records with an empty text section
	RequireText bool `yaml:"require_text"`
	Verbose     bool `yaml:"verbose"`
	// base directory for relative --output paths
	OutputDir string `yaml:"output_dir"`

	path string
}

func defaultConfig() *Config {
	return &Config{
		RequireText: false,
		Verbose:     false,
		OutputDir:   ".",
	}
}

// Load reads path over the defaults. An empty path falls back to
// DefaultPath, and a missing default file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.path = path

	cfg.normalize()
	return cfg, nil
}

// Path is the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// ResolveOutput joins relative output paths onto OutputDir.
func (c *Config) ResolveOutput(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.OutputDir, path)
}

func (c *Config) normalize() {
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)
}
