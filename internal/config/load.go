package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/todosort/internal/todo"
)

// LoadWithSources loads configuration from every source in priority order
// (see the package documentation) and tracks the source of each value.
// Returns ConfigWithSources containing the config and a map of field names to their sources.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	cfg := &Config{}

	// 1. Set defaults (all fields start with default source)
	setDefaults(cfg)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}

	// Flags are parsed up front so -config is known, but applied last.
	flags, err := parseFlags(cfg, fs, args)
	if err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 2. User config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Explicit config file
	explicit := flags.configFile
	if explicit == "" {
		explicit = os.Getenv("TODOSORT_CONFIG")
	}
	if explicit != "" {
		cfg.ConfigFile = expandPath(explicit)
		if err := loadConfigFile(cfg, cfg.ConfigFile, sources, SourceExplicit); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", cfg.ConfigFile, err)
		}
	}

	// 5. Environment
	loadFromEnv(cfg, sources)

	// 6. Flags that were explicitly set
	flags.apply(cfg, sources)

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return &ConfigWithSources{
		Config:  cfg,
		Sources: sources,
	}, nil
}

// loadConfigFile validates the TOML file at path against the config schema,
// decodes it over cfg, and records the source of every key it defines.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var table map[string]interface{}
	if _, err := toml.Decode(string(data), &table); err != nil {
		return err
	}
	if err := validateTable(table); err != nil {
		return err
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if sources != nil {
		for _, field := range configFields() {
			if md.IsDefined(field) {
				sources[field] = source
			}
		}
	}

	cfg.Files = append(cfg.Files, path)
	return nil
}

// finalizeConfig normalizes values and rejects settings the pipeline cannot use.
func finalizeConfig(cfg *Config) error {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if _, err := todo.ParseOrder(cfg.Order); err != nil {
		return &ValidationError{Path: "order", Err: err}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("invalid level %q, must be one of: debug, info, warn, error", cfg.LogLevel)}
	}

	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return &ValidationError{Path: "log_format", Err: fmt.Errorf("invalid format %q, must be one of: text, json, logfmt", cfg.LogFormat)}
	}

	if cfg.Workers < 0 {
		return &ValidationError{Path: "workers", Err: fmt.Errorf("must be >= 0, got %d", cfg.Workers)}
	}

	return nil
}
