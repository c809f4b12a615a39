package config

import "flag"

// flagValues holds parsed flag values until the other sources are loaded.
type flagValues struct {
	configFile    string
	order         string
	alphaTies     bool
	workers       int
	logLevel      string
	logFormat     string
	logTimestamps bool
	logCaller     bool

	set map[string]bool
}

// flagToSource maps flag names to config field names.
var flagToSource = map[string]string{
	"order":          "order",
	"alpha-ties":     "alphabetical_ties",
	"workers":        "workers",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// parseFlags defines the global flags on fs and parses args.
// Defaults shown in help come from cfg.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) (*flagValues, error) {
	if fs == nil {
		fs = flag.NewFlagSet("todosort", flag.ContinueOnError)
	}

	fv := &flagValues{set: make(map[string]bool)}

	fs.StringVar(&fv.configFile, "config", "", "Path to an explicit config file")

	// Sorting
	fs.StringVar(&fv.order, "order", cfg.Order, "Comma-separated status order, highest priority first (empty token = space)")
	fs.BoolVar(&fv.alphaTies, "alpha-ties", cfg.AlphabeticalTies, "Sort items with equal status alphabetically")
	fs.IntVar(&fv.workers, "workers", cfg.Workers, "Number of files sorted concurrently (0 = unlimited)")

	// Logging
	fs.StringVar(&fv.logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&fv.logFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&fv.logTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&fv.logCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		fv.set[f.Name] = true
	})

	return fv, nil
}

// apply copies explicitly set flags onto cfg.
func (fv *flagValues) apply(cfg *Config, sources map[string]ConfigSource) {
	if fv.set["order"] {
		cfg.Order = fv.order
	}
	if fv.set["alpha-ties"] {
		cfg.AlphabeticalTies = fv.alphaTies
	}
	if fv.set["workers"] {
		cfg.Workers = fv.workers
	}
	if fv.set["log-level"] {
		cfg.LogLevel = fv.logLevel
	}
	if fv.set["log-format"] {
		cfg.LogFormat = fv.logFormat
	}
	if fv.set["log-timestamps"] {
		cfg.LogTimestamps = fv.logTimestamps
	}
	if fv.set["log-caller"] {
		cfg.LogCaller = fv.logCaller
	}

	if sources == nil {
		return
	}
	for name := range fv.set {
		if field, ok := flagToSource[name]; ok {
			sources[field] = SourceFlag
		}
	}
}
