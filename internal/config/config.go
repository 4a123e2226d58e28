// Package config assembles imgx settings from three layers: built-in
// defaults, the optional ~/.config/imgx/config.yaml file, and environment
// variables. Flags are applied on top by the cmd layer. The config file is
// only ever read, never written.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel          = "gemini-2.5-flash"
	DefaultImagesDir      = "."
	DefaultTimeoutSeconds = 60
)

// Config holds everything the commands need beyond their positional
// arguments.
type Config struct {
	APIKey         string  `env:"GEMINI_API_KEY" yaml:"api_key"`
	BaseURL        string  `env:"GEMINI_BASE_URL" yaml:"base_url"`
	Model          string  `env:"IMGX_MODEL" yaml:"model"`
	System         string  `env:"IMGX_SYSTEM" yaml:"system"`
	ImagesDir      string  `env:"IMGX_IMAGES_DIR" yaml:"images_dir"`
	TimeoutSeconds float64 `env:"IMGX_TIMEOUT" yaml:"timeout"`
	Debug          bool    `env:"IMGX_DEBUG" yaml:"-"`
}

// Load returns the effective configuration before flag overrides.
func Load() (*Config, error) {
	return load(defaultPath())
}

func load(path string) (*Config, error) {
	cfg := &Config{
		Model:          DefaultModel,
		ImagesDir:      DefaultImagesDir,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}

	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}

// applyFile overlays settings from a YAML config file. A missing file is
// not an error.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "imgx", "config.yaml")
}

// Timeout converts the configured fractional seconds to a duration with
// millisecond granularity, as the transport layer expects.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds*1000) * time.Millisecond
}
