// Package main controls the user interaction logic for the plot application.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashcracky/plot/pkg/args"
)

// version is the current version of the plot application.
var version = "0.1.0"

// newLogger builds the stderr logger. Debug output is enabled by setting
// PLOT_DEBUG to any non-empty value.
//
// Args:
// w: io.Writer - Destination for log records.
// debug: bool - Log at debug level instead of warn.
//
// Returns:
// *slog.Logger - The configured logger.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run parses the command line and reports the resolved configuration.
//
// Args:
// argv: []string - Process arguments without the program name.
// stdout: io.Writer - Receives the resolved configuration.
// stderr: io.Writer - Receives error messages.
//
// Returns:
// int - Process exit code.
func run(argv []string, stdout io.Writer, stderr io.Writer) int {
	cfg, err := args.Parse(argv)
	if err != nil {
		fmt.Fprintf(stderr, "[!] %s.\n", err)
		return 1
	}

	slog.Debug("Handing configuration to the canvas.", "version", version, "config", cfg)

	if _, err := fmt.Fprintln(stdout, cfg); err != nil {
		fmt.Fprintf(stderr, "[!] failed to write output: %s.\n", err)
		return 1
	}

	return 0
}

// main is the entry point for the plot application.
func main() {
	slog.SetDefault(newLogger(os.Stderr, os.Getenv("PLOT_DEBUG") != ""))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
