package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/spendview/internal/sample"
)

// FileName is the default config file looked up in the working directory.
const FileName = "spendview.yaml"

// Environment variables that override file values.
const (
	EnvCurrency = "SPENDVIEW_CURRENCY"
	EnvAddr     = "SPENDVIEW_ADDR"
	EnvLogLevel = "SPENDVIEW_LOG_LEVEL"
)

// Config represents the top-level spendview.yaml configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Sample  SampleConfig  `yaml:"sample"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls how amounts and dates are rendered.
type DisplayConfig struct {
	Currency   string `yaml:"currency"`
	DateFormat string `yaml:"date_format"` // Go layout, e.g. "2006-01-02"
}

// InputConfig selects the default CSV format.
type InputConfig struct {
	Format string `yaml:"format"`
}

// SampleConfig shapes generated sample data.
type SampleConfig struct {
	Size       int      `yaml:"size"`
	MinAmount  float64  `yaml:"min_amount"`
	MaxAmount  float64  `yaml:"max_amount"`
	Categories []string `yaml:"categories,omitempty"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Load reads a spendview.yaml file from disk. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Resolve loads the config at path. An empty path falls back to FileName
// when it exists, otherwise to Default. A .env file in the working directory
// is loaded first and environment overrides are applied last.
func Resolve(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg *Config
	switch {
	case path != "":
		c, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		c, err := Load(FileName)
		switch {
		case err == nil:
			cfg = c
		case errors.Is(err, fs.ErrNotExist):
			cfg = Default()
		default:
			return nil, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file values with any set environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvCurrency); ok {
		c.Display.Currency = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate checks the config for values the commands cannot use.
func (c *Config) Validate() error {
	var problems []string
	if c.Sample.Size < 0 {
		problems = append(problems, fmt.Sprintf("sample.size %d must not be negative", c.Sample.Size))
	}
	if c.Sample.MaxAmount <= c.Sample.MinAmount {
		problems = append(problems, fmt.Sprintf("sample.max_amount (%g) must exceed sample.min_amount (%g)", c.Sample.MaxAmount, c.Sample.MinAmount))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q must be text or json", c.Log.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Currency:   "₹",
			DateFormat: "2006-01-02",
		},
		Input: InputConfig{
			Format: "standard",
		},
		Sample: SampleConfig{
			Size:      100,
			MinAmount: 10,
			MaxAmount: 500,
			Categories: sample.DefaultCategories(),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
