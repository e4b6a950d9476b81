package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytekit/cmd/bytectl/logger"
	"github.com/joshuapare/bytekit/pkg/alloc"
)

var (
	// Global flags
	verbose       bool
	quiet         bool
	jsonOut       bool
	maxBytes      int64
	inputFile     string
	inputEncoding string
	logLevel      string
	logFormat     string
)

var rootCmd = &cobra.Command{
	Use:   "bytectl",
	Short: "Split, trim, compare and hash byte strings",
	Long: `bytectl drives the bytekit containers from the command line. Input is
taken from the first argument, a file (--file) or stdin (--file -), optionally
transcoded to UTF-8 first (--encoding). Every byte the commands hold is
accounted against --max-bytes when it is set.`,
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		Int64Var(&maxBytes, "max-bytes", 0, "Allocation budget in bytes (0 = unlimited)")
	rootCmd.PersistentFlags().
		StringVarP(&inputFile, "file", "f", "", "Read input from a file ('-' for stdin)")
	rootCmd.PersistentFlags().
		StringVar(&inputEncoding, "encoding", "utf-8", "Input encoding: utf-8, windows-1252, iso-8859-1")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging turns on the stderr logger when --log-level or --verbose is set.
func initLogging() error {
	level := slog.LevelDebug
	if logLevel != "" {
		l, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		level = l
	}
	switch logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", logFormat)
	}
	logger.Init(logger.Options{
		Enabled: logLevel != "" || verbose,
		Level:   level,
		JSON:    logFormat == "json",
	})
	return nil
}

// newAllocator returns the allocator a command should draw from: a fresh
// budget when --max-bytes is set, the heap otherwise.
func newAllocator() alloc.Allocator {
	if maxBytes > 0 {
		logger.Debug("allocation budget", "limit", maxBytes)
		return alloc.NewLimited(maxBytes, nil)
	}
	return alloc.Default
}

// logUsage reports peak usage for budgeted allocators.
func logUsage(a alloc.Allocator, op string) {
	if l, ok := a.(*alloc.Limited); ok {
		logger.Debug("allocation usage", "op", op, "peak", l.Peak(), "in_use", l.InUse(), "limit", l.Limit())
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
