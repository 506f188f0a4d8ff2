package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
)

type Config struct {
	Log   LogConfig   `yaml:"log"`
	IDs   IDConfig    `yaml:"ids"`
	Scene SceneConfig `yaml:"scene"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"` // "json" or "console"
}

type IDConfig struct {
	// Prefix is prepended to every generated uid.
	Prefix string `yaml:"prefix"`
}

type SceneConfig struct {
	DefaultTransform bool   `yaml:"default_transform"`
	OutputFormat     string `yaml:"output_format"` // "json" or "yaml"
	// StrictComponents turns skipped component entries into a failure.
	StrictComponents bool `yaml:"strict_components"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		IDs: IDConfig{
			Prefix: "@",
		},
		Scene: SceneConfig{
			DefaultTransform: true,
			OutputFormat:     "json",
		},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of the defaults. An empty document yields the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("log.encoding: unsupported value %q", c.Log.Encoding)
	}
	switch c.Scene.OutputFormat {
	case "json", "yaml":
	default:
		return fmt.Errorf("scene.output_format: unsupported value %q", c.Scene.OutputFormat)
	}
	return nil
}

// LogLevel returns the parsed log level. Validate has already checked it.
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}
