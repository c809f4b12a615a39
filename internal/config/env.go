package config

import (
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from TODOSORT_* environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setEnv := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	// An empty order is meaningful (nothing ranked), so presence counts.
	if v, ok := os.LookupEnv("TODOSORT_ORDER"); ok {
		cfg.Order = v
		setEnv("order")
	}
	if v := os.Getenv("TODOSORT_ALPHABETICAL_TIES"); v != "" {
		cfg.AlphabeticalTies = boolFromString(v)
		setEnv("alphabetical_ties")
	}
	if v := os.Getenv("TODOSORT_WORKERS"); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Workers = i
			setEnv("workers")
		}
	}

	// Logging configuration
	if v := os.Getenv("TODOSORT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		setEnv("log_level")
	}
	if v := os.Getenv("TODOSORT_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		setEnv("log_format")
	}
	if v := os.Getenv("TODOSORT_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		setEnv("log_timestamps")
	}
	if v := os.Getenv("TODOSORT_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		setEnv("log_caller")
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
