package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "usererror.yaml"

// Config represents the application configuration.
type Config struct {
	Color   ColorMode     `yaml:"color"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the diagnostic logger of the CLI.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Color: ColorAuto,
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// Load reads configuration from configPath. A missing file yields the defaults.
// Variables from .env files and USERERROR_* overrides are applied on top.
func Load(configPath string) (*Config, error) {
	// A missing .env file is normal.
	_ = loadEnvFiles("")

	cfg := Default()
	if configPath == "" {
		configPath = DefaultPath
	}

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode expands ${VAR} references before unmarshalling. Unknown keys are rejected.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("USERERROR_COLOR"); v != "" {
		cfg.Color = ColorMode(v)
	}
	if v := os.Getenv("USERERROR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = LogLevel(v)
	}
	if v := os.Getenv("USERERROR_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = LogFormat(v)
	}
}

// Normalize canonicalizes enum values and rejects unknown ones.
func (c *Config) Normalize() error {
	color, err := colorModeNormalizer.NormalizeWithError(string(c.Color))
	if err != nil {
		return err
	}
	level, err := logLevelNormalizer.NormalizeWithError(string(c.Logging.Level))
	if err != nil {
		return err
	}
	format, err := logFormatNormalizer.NormalizeWithError(string(c.Logging.Format))
	if err != nil {
		return err
	}
	c.Color, c.Logging.Level, c.Logging.Format = color, level, format
	return nil
}

// Init writes a configuration file holding the defaults.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
