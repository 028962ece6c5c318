// Package config provides configuration management for the sparsesheet CLI.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/controller"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/render"
)

// Default values, also used when a key is absent from every source.
const (
	DefaultPrompt       = "Type instruction: "
	DefaultLogLevel     = "warn"
	DefaultPrecision    = -1
	DefaultMaxPrintRows = 50
	DefaultMaxPrintCols = 20
)

// Config holds the resolved CLI configuration.
type Config struct {
	Prompt       string `koanf:"prompt"`
	HistoryFile  string `koanf:"history_file"`
	LogLevel     string `koanf:"log_level"`
	ShowMenu     bool   `koanf:"show_menu"`
	Precision    int    `koanf:"precision"`
	MaxPrintRows int    `koanf:"max_print_rows"`
	MaxPrintCols int    `koanf:"max_print_cols"`
}

// Validate checks value ranges that the decoder cannot.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Precision < -1 {
		return fmt.Errorf("precision must be -1 or greater, got %d", c.Precision)
	}
	if c.MaxPrintRows < 0 || c.MaxPrintCols < 0 {
		return fmt.Errorf("print limits cannot be negative")
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// ControllerOptions maps the configuration onto controller options.
func (c *Config) ControllerOptions() controller.Options {
	return controller.Options{
		Prompt:   c.Prompt,
		ShowMenu: c.ShowMenu,
		Render: render.Options{
			Precision: c.Precision,
			MaxRows:   c.MaxPrintRows,
			MaxCols:   c.MaxPrintCols,
		},
	}
}
