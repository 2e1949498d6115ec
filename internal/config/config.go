// Package config loads the settings of the dyck command line tool.
//
// Settings come from built-in defaults, optionally overlaid by a file in
// YAML (.yaml, .yml) or JSON with comments (.json, .jsonc), and finally by
// command line flags (applied by package cli). File contents are decoded
// into a generic map first and then into Config with mapstructure, so
// scalar types are coerced ("8" → 8) and unknown keys are rejected.
//
// Example dyck.yaml:
//
//	max_length: 7
//	format: yaml
//	color: never
//	metrics: true
//	log:
//	  level: debug
//	  format: json
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFile indicates a config file extension that is neither
	// YAML nor JSON.
	ErrUnsupportedFile = errors.New("config: unsupported file type")

	// ErrInvalid indicates a config value outside its allowed range or set.
	ErrInvalid = errors.New("config: invalid value")
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete CLI configuration.
type Config struct {
	// MaxLength bounds the number of rows accepted by the enumerating
	// commands; n! orderings make large values impractical.
	MaxLength int `mapstructure:"max_length" yaml:"max_length" json:"max_length"`

	// Format selects the output encoding: text, json or yaml.
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Color selects styling of drawings: auto, always or never.
	Color string `mapstructure:"color" yaml:"color" json:"color"`

	// Metrics dumps the prometheus text exposition to stderr on exit.
	Metrics bool `mapstructure:"metrics" yaml:"metrics" json:"metrics"`

	// Log configures the slog logger.
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`    // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format" json:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxLength: 8,
		Format:    FormatText,
		Color:     ColorAuto,
		Metrics:   false,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode overlays the document data, in the format named by ext (".yaml",
// ".yml", ".json", ".jsonc"), onto cfg. Keys absent from data keep their
// current values.
func Decode(data []byte, ext string, cfg *Config) error {
	// 1) parse into a generic tree
	raw := map[string]any{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return fmt.Errorf("parse json: %w", err)
		}
	default:
		return fmt.Errorf("%q: %w", ext, ErrUnsupportedFile)
	}

	// 2) decode the tree onto the struct
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("max_length %d: %w", c.MaxLength, ErrInvalid)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalid)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q: %w", c.Color, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}
