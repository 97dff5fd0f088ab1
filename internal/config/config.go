// Package config loads the machine configuration used by the command line.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/logging"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = "vending.yaml"

// Config describes one machine and how the CLI runs it.
type Config struct {
	Serial    string         `yaml:"serial" mapstructure:"serial"`
	Extended  bool           `yaml:"extended" mapstructure:"extended"`
	LogLevel  string         `yaml:"log_level" mapstructure:"log_level"`
	LogFormat string         `yaml:"log_format" mapstructure:"log_format"`
	Color     string         `yaml:"color" mapstructure:"color"`
	Items     domain.Catalog `yaml:"items" mapstructure:"items"`
}

// Default returns the factory configuration: basic flavor, default catalog,
// info logging in text format.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: string(logging.FormatText),
		Items:     domain.DefaultCatalog(),
	}
}

// Load reads the YAML file at path and merges it over the defaults.
// A missing file is not an error unless required is set.
// The serial id is generated when the file leaves it empty.
func Load(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			cfg := Default()
			cfg.Serial = vending.NewSerialID()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes over the defaults and validates the result.
// Scalars are weakly typed ("5" is accepted for a price); unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Serial == "" {
		cfg.Serial = vending.NewSerialID()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, &ValidationError{Key: "log_level", Reason: err.Error()})
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, &ValidationError{Key: "log_format", Reason: err.Error()})
	}
	for _, slot := range []domain.Slot{domain.SlotA, domain.SlotB} {
		item := c.Items.Item(slot)
		key := "items." + string(slot)
		if item.Name == "" {
			errs = append(errs, &ValidationError{Key: key + ".name", Reason: "must not be empty"})
		}
		if item.Price < 1 {
			errs = append(errs, &ValidationError{Key: key + ".price", Reason: "must be at least 1", Value: item.Price})
		}
		if item.Stock < 0 {
			errs = append(errs, &ValidationError{Key: key + ".stock", Reason: "must not be negative", Value: item.Stock})
		}
	}
	if c.Items.A.Name != "" && c.Items.A.Name == c.Items.B.Name {
		errs = append(errs, &ValidationError{Key: "items.b.name", Reason: "must differ from items.a.name", Value: c.Items.B.Name})
	}

	if len(errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: errs}
}

// Logger builds the logger described by the configuration.
// debug forces the debug level.
func (c Config) Logger(debug bool) (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level, format), nil
}
