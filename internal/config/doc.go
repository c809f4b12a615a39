// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.todosort/todosort.toml or OS-specific config directory)
// 3. Project config file (todosort.toml or .todosort.toml in the current directory)
// 4. Explicit config file (-config flag or TODOSORT_CONFIG)
// 5. Environment variables (TODOSORT_*)
// 6. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// Every config file is checked against an embedded JSON Schema before it
// is applied, so unknown keys and wrongly typed values are reported with
// their location instead of being silently ignored.
//
// User-level config locations:
// - ~/.todosort/todosort.toml (preferred)
// - Windows: %APPDATA%\todosort\todosort.toml
// - macOS: ~/Library/Application Support/todosort/todosort.toml
// - Linux/BSD: $XDG_CONFIG_HOME/todosort/todosort.toml or ~/.config/todosort/todosort.toml
//
// Project-level config locations (overrides user config):
// - ./todosort.toml (preferred)
// - ./.todosort.toml
package config
