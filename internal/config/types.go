// Package config handles configuration loading and defaults.
package config

import (
	"fmt"

	"github.com/nibzard/todosort/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceExplicit ConfigSource = "config file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// Default values.
const (
	DefaultOrder            = todo.DefaultOrderString
	DefaultAlphabeticalTies = true
	DefaultWorkers          = 4
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// Config holds the full configuration for todosort.
type Config struct {
	// Sorting
	Order            string `toml:"order"`
	AlphabeticalTies bool   `toml:"alphabetical_ties"`

	// Number of files sorted concurrently (0 = one worker per file)
	Workers int `toml:"workers"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Explicit config file from -config or TODOSORT_CONFIG
	ConfigFile string `toml:"-"`

	// Files is the list of config files that were applied, lowest priority first (computed)
	Files []string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"order",
		"alphabetical_ties",
		"workers",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Options converts the sorting settings into pipeline options.
func (c *Config) Options() (todo.Options, error) {
	order, err := todo.ParseOrder(c.Order)
	if err != nil {
		return todo.Options{}, fmt.Errorf("order: %w", err)
	}
	return todo.Options{
		Order:            order,
		AlphabeticalTies: c.AlphabeticalTies,
	}, nil
}

// ValidationError represents a config validation error with context.
type ValidationError struct {
	Path string // dotted path to the offending key
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
