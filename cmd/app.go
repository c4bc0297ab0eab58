// Package cmd implements the CLI application to convert and inspect Vanguard transaction histories.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/vanguard"
	"github.com/google/subcommands"
)

// Environment variables used as defaults when the matching flag is not set.
// They can also be set in a .env file.
const (
	EnvInputFile  = "VGC_INPUT_FILE"
	EnvOutputFile = "VGC_OUTPUT_FILE"
	EnvLogLevel   = "VGC_LOG_LEVEL"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "conversion")

	c.Register(&txCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error). Defaults to $"+EnvLogLevel+" or info.")
var Verbose = flag.Bool("v", false, "Verbose logging, same as -log-level=debug.")

// levelName returns the requested log level name.
func levelName() string {
	if *Verbose {
		return "debug"
	}
	if *logLevel != "" {
		return *logLevel
	}
	return envOr(EnvLogLevel, "info")
}

// newLogger returns the application logger, writing to stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "vgc"})
	name := levelName()
	level, err := log.ParseLevel(name)
	if err != nil {
		logger.Warn("invalid log level, using info", "level", name)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// envOr returns the environment variable key, or def when it is unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// resolveConfig returns the conversion Config: flags first, then environment, then defaults.
func resolveConfig(input, output string) vanguard.Config {
	cfg := vanguard.Config{
		InputPath:  envOr(EnvInputFile, vanguard.DefaultInputPath),
		OutputPath: envOr(EnvOutputFile, vanguard.DefaultOutputPath),
	}
	if input != "" {
		cfg.InputPath = input
	}
	if output != "" {
		cfg.OutputPath = output
	}
	return cfg
}

// csvFile returns the converted CSV to read: the single positional argument, or the conversion output.
func csvFile(f *flag.FlagSet) (string, error) {
	switch f.NArg() {
	case 0:
		return resolveConfig("", "").OutputPath, nil
	case 1:
		return f.Arg(0), nil
	default:
		return "", fmt.Errorf("expected at most one CSV file, got %d arguments", f.NArg())
	}
}

// readTransactions reads the converted CSV at path as transactions.
func readTransactions(path string) ([]vanguard.Transaction, error) {
	table, err := vanguard.ReadTable(path)
	if err != nil {
		return nil, err
	}
	txs, err := vanguard.Transactions(table)
	if err != nil {
		return nil, fmt.Errorf("cannot map transactions of %q: %w", path, err)
	}
	return txs, nil
}

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
