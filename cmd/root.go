// Package cmd implements the CLI command structure for todosort.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todosort/internal/config"
	"github.com/nibzard/todosort/internal/document"
	"github.com/nibzard/todosort/internal/logging"
	"github.com/nibzard/todosort/internal/parallel"
	"github.com/nibzard/todosort/internal/todo"
)

// Version is set via ldflags at build time.
var Version = "dev"

// stdinName labels the document read from standard input.
const stdinName = "<stdin>"

// ErrUnsorted is returned by the check command when a file would change.
var ErrUnsorted = errors.New("checklists not sorted")

// env bundles the streams and shared state a command runs with.
type env struct {
	cfg     *config.ConfigWithSources
	logger  *log.Logger
	sorter  *todo.Sorter
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	workers int
}

// Run executes the todosort CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todosort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	opts, err := cws.Config.Options()
	if err != nil {
		return err
	}

	e := &env{
		cfg:     cws,
		logger:  logging.FromConfig(stderr, cws.Config),
		sorter:  todo.NewSorter(opts),
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		workers: cws.Config.Workers,
	}

	// Determine the subcommand
	// If no args or first arg is a flag, use "sort" as default
	subcommand := "sort"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "sort":
		return sortCommand(ctx, e, remainingArgs)
	case "check":
		return checkCommand(ctx, e, remainingArgs)
	case "config":
		return configCommand(e, remainingArgs)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		// A bare path sorts that file.
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			return sortCommand(ctx, e, fs.Args())
		}
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// sortCommand sorts stdin or the named files.
func sortCommand(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("todosort sort", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	write := fs.Bool("w", false, "Write result to the source file instead of stdout")
	list := fs.Bool("l", false, "List files whose checklists would change")

	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if *write {
			return errors.New("cannot use -w with standard input")
		}
		out, changed, err := sortStdin(e)
		if err != nil {
			return err
		}
		if *list {
			if changed {
				fmt.Fprintln(e.stdout, stdinName)
			}
			return nil
		}
		fmt.Fprint(e.stdout, out)
		return nil
	}

	results, err := sortFiles(ctx, e, paths, *write)
	for _, r := range results {
		if r.Error != nil || r.Outcome == nil {
			continue
		}
		switch {
		case *list:
			if r.Outcome.Changed {
				fmt.Fprintln(e.stdout, r.Path)
			}
		case !*write:
			fmt.Fprint(e.stdout, r.Outcome.Output)
		}
	}
	return err
}

// checkCommand reports files whose checklists are not sorted.
func checkCommand(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("todosort check", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		_, changed, err := sortStdin(e)
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintln(e.stdout, stdinName)
			return ErrUnsorted
		}
		return nil
	}

	results, err := sortFiles(ctx, e, paths, false)
	unsorted := 0
	for _, r := range results {
		if r.Outcome != nil && r.Outcome.Changed {
			fmt.Fprintln(e.stdout, r.Path)
			unsorted++
		}
	}
	if err != nil {
		return err
	}
	if unsorted > 0 {
		return fmt.Errorf("%d of %d files: %w", unsorted, len(results), ErrUnsorted)
	}
	return nil
}

func sortStdin(e *env) (string, bool, error) {
	doc, err := document.Read(e.stdin, stdinName)
	if err != nil {
		return "", false, err
	}
	out, reps, changed, err := doc.Sort(e.sorter)
	if err != nil {
		return "", false, err
	}
	logRegions(e.logger, stdinName, reps)
	return out, changed, nil
}

// sortFiles sorts every distinct path concurrently. Results are in argument
// order; the returned error joins every per-file failure in the same order.
func sortFiles(ctx context.Context, e *env, paths []string, write bool) ([]parallel.FileResult, error) {
	paths = uniquePaths(paths)
	pool := parallel.NewWorkerPool(ctx, e.workers, false)
	for _, path := range paths {
		pool.Submit(path, func() (*parallel.Outcome, error) {
			return sortFile(e, path, write)
		})
	}

	results, errs := pool.Wait()
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, errors.Join(errs...)
}

// uniquePaths drops repeated paths, keeping the first spelling, so no two
// jobs write the same file.
func uniquePaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		key := filepath.Clean(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// sortFile sorts one file and optionally writes it back.
func sortFile(e *env, path string, write bool) (*parallel.Outcome, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}

	out, reps, changed, err := doc.Sort(e.sorter)
	if err != nil {
		return nil, err
	}
	logRegions(e.logger, path, reps)

	if write && changed {
		if err := document.Save(path, out, doc.Mode); err != nil {
			return nil, err
		}
		e.logger.Info("sorted", "file", path, "regions", len(reps))
	}

	return &parallel.Outcome{
		Output:  out,
		Changed: changed,
		Regions: len(reps),
	}, nil
}

func logRegions(logger *log.Logger, name string, reps []todo.Replacement) {
	for _, r := range reps {
		logger.Debug("region", "file", name, "start", r.StartLine+1, "end", r.EndLine)
	}
}

// configCommand prints the effective configuration.
func configCommand(e *env, args []string) error {
	fs := flag.NewFlagSet("todosort config", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	example := fs.Bool("example", false, "Print an example config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	w := e.stdout
	if *example {
		fmt.Fprint(w, config.ExampleConfig())
		return nil
	}

	cfg := e.cfg.Config
	values := []struct {
		key   string
		value interface{}
	}{
		{"order", fmt.Sprintf("%q", cfg.Order)},
		{"alphabetical_ties", cfg.AlphabeticalTies},
		{"workers", cfg.Workers},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"log_timestamps", cfg.LogTimestamps},
		{"log_caller", cfg.LogCaller},
	}

	fmt.Fprintln(w, "Configuration")
	fmt.Fprintln(w, "=============")
	if len(cfg.Files) == 0 {
		fmt.Fprintln(w, "Files: (none)")
	} else {
		fmt.Fprintf(w, "Files: %s\n", strings.Join(cfg.Files, ", "))
	}
	fmt.Fprintln(w)
	for _, v := range values {
		fmt.Fprintf(w, "  %-18s %-16v (%s)\n", v.key, v.value, e.cfg.Sources[v.key])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Status order")
	fmt.Fprintln(w, "============")
	order := e.sorter.Options().Order
	statuses := order.Statuses()
	if len(statuses) == 0 {
		fmt.Fprintln(w, "  (empty: input order is kept)")
	}
	for i, status := range statuses {
		name := todo.StatusName(status)
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "  %d. [%c] %s\n", i+1, status, name)
	}
	fmt.Fprintln(w, "  unlisted statuses sort last")
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todosort version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todosort - Sort markdown checklists by status")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todosort [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  sort [file ...]   Sort checklists (default command; stdin when no files)")
	fmt.Fprintln(w, "  check [file ...]  Fail if any checklist is not sorted")
	fmt.Fprintln(w, "  config            Show the effective configuration")
	fmt.Fprintln(w, "  version           Show version information")
	fmt.Fprintln(w, "  help              Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sort Options (use with 'sort' command):")
	fmt.Fprintln(w, "  -w    Write result to the source file instead of stdout")
	fmt.Fprintln(w, "  -l    List files whose checklists would change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options (use with 'config' command):")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example config file")
}
