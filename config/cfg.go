// Package config handles program configuration.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

// ContentConfig describes where utility classes are collected from.
type ContentConfig struct {
	Roots      []string `yaml:"roots" validate:"min=1,dive,required"`
	Extensions []string `yaml:"extensions" validate:"min=1,dive,startswith=."`
}

// OutputConfig describes the produced style sheet.
type OutputConfig struct {
	Destination string   `yaml:"destination" validate:"required"`
	Preflight   bool     `yaml:"preflight"`
	Inject      []string `yaml:"inject" validate:"dive,required"`
}

// DarkModeConfig controls compilation of the dark: variant.
type DarkModeConfig struct {
	Strategy DarkModeStrategy `yaml:"strategy" validate:"oneof=media class"`
	Selector string           `yaml:"selector" validate:"required"`
}

// CacheConfig controls the on-disk extraction cache. Empty path disables it.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// ConsoleLoggingConfig defines console logger.
type ConsoleLoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=none debug normal"`
}

// FileLoggingConfig defines file logger.
type FileLoggingConfig struct {
	Destination string `yaml:"destination" validate:"required_unless=Level none"`
	Level       string `yaml:"level" validate:"oneof=none debug normal"`
	Mode        string `yaml:"mode" validate:"oneof=append overwrite"`
}

// LoggingConfig defines logging.
type LoggingConfig struct {
	Console ConsoleLoggingConfig `yaml:"console"`
	File    FileLoggingConfig    `yaml:"file"`
}

// ReporterConfig defines reporting.
type ReporterConfig struct {
	Destination string `yaml:"destination" validate:"required"`
}

// Config keeps all configuration values.
type Config struct {
	Version   int            `yaml:"version" validate:"eq=1"`
	Content   ContentConfig  `yaml:"content"`
	Output    OutputConfig   `yaml:"output"`
	DarkMode  DarkModeConfig `yaml:"dark_mode"`
	Cache     CacheConfig    `yaml:"cache"`
	Logging   LoggingConfig  `yaml:"logging"`
	Reporting ReporterConfig `yaml:"reporting"`
}

// Default returns configuration with all values set to their defaults.
func Default() *Config {
	return &Config{
		Version: 1,
		Content: ContentConfig{
			Roots:      []string{"."},
			Extensions: []string{".html", ".htm", ".vue", ".svelte", ".jsx", ".tsx", ".js", ".ts", ".md"},
		},
		Output: OutputConfig{
			Destination: "ucss.css",
			Preflight:   true,
		},
		DarkMode: DarkModeConfig{
			Strategy: DarkModeStrategyMedia,
			Selector: "dark",
		},
		Logging: LoggingConfig{
			Console: ConsoleLoggingConfig{Level: "normal"},
			File:    FileLoggingConfig{Destination: "ucss.log", Level: "none", Mode: "append"},
		},
		Reporting: ReporterConfig{Destination: "ucss-report.zip"},
	}
}

// LoadConfiguration reads and validates configuration. Empty fname keeps
// the defaults, values from the file overlay them otherwise.
func LoadConfiguration(fname string) (*Config, error) {
	cfg := Default()
	if len(fname) != 0 {
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, fmt.Errorf("unable to read configuration file: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("unable to parse configuration file %s: %w", fname, err)
		}
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Dump serializes effective configuration, mostly for debugging.
func (c *Config) Dump() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
