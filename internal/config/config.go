// Package config loads pipeloop's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate = validator.New()

// Config holds all pipeloop configuration.
type Config struct {
	// Parity selects the crossing rule: up or down.
	Parity string `yaml:"parity" validate:"oneof=up down"`

	// Workers bounds concurrent row scans; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"min=0,max=1024"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Rendering of classified grids
	Render RenderConfig `yaml:"render"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// RenderConfig configures the render command.
type RenderConfig struct {
	Color   bool   `yaml:"color"`
	Inside  string `yaml:"inside" validate:"len=1"`
	Outside string `yaml:"outside" validate:"len=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Parity:  "up",
		Workers: 0,
		Logging: LoggingConfig{
			Level: "info",
		},
		Render: RenderConfig{
			Color:   true,
			Inside:  "I",
			Outside: "O",
		},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens validator errors into one message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s], got %v", fe.Namespace(), fe.Param(), fe.Value()))
		case "min", "max", "len":
			msgs = append(msgs, fmt.Sprintf("%s: violates %s=%s, got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
