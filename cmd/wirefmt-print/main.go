// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// wirefmt-print decodes a binary log file with its pattern table and
// prints one line per record.
//
// The table must be the one the log was written against: the log header
// carries the table's fingerprint and a mismatch is refused. Records
// print as text (optionally colored by level) or as JSON lines.
//
// With --dump-table the tool prints the table itself instead of a log:
// every ID with its pattern, or with --diagnose the raw CBOR document in
// diagnostic notation.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/wirefmt/lib/cli"
	"github.com/bureau-foundation/wirefmt/lib/codec"
	"github.com/bureau-foundation/wirefmt/lib/config"
	"github.com/bureau-foundation/wirefmt/lib/decode"
	"github.com/bureau-foundation/wirefmt/lib/intern"
	"github.com/bureau-foundation/wirefmt/lib/logfile"
	"github.com/bureau-foundation/wirefmt/lib/version"
	"github.com/bureau-foundation/wirefmt/lib/wire"
	"github.com/bureau-foundation/wirefmt/lib/wirelog"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, cli.NewCommandLogger)
	status, printMessage := cli.ExitStatus(err)
	if printMessage {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(status)
}

func run(args []string, stdin io.Reader, stdout io.Writer, newLogger func(verbose bool) *slog.Logger) error {
	var (
		configPath  string
		tablePath   string
		levelName   string
		colorMode   string
		formatName  string
		relative    bool
		dumpTable   bool
		diagnose    bool
		verbose     bool
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("wirefmt-print", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&tablePath, "table", "", "pattern table file (overrides config)")
	flagSet.StringVar(&levelName, "level", "", "hide records below this level (overrides config)")
	flagSet.StringVar(&colorMode, "color", "", "auto, always, or never (overrides config)")
	flagSet.StringVar(&formatName, "format", "", "text or json (overrides config)")
	flagSet.BoolVar(&relative, "relative", false, "print timestamps relative to the first record")
	flagSet.BoolVar(&dumpTable, "dump-table", false, "print the pattern table instead of a log")
	flagSet.BoolVar(&diagnose, "diagnose", false, "with --dump-table, print the raw CBOR in diagnostic notation")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log debug diagnostics")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stdout, flagSet)
			return nil
		}
		return cli.Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}
	if showVersion {
		version.Fprint(stdout, "wirefmt-print")
		return nil
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return cli.Validation("loading config: %w", err)
	}
	if tablePath != "" {
		cfg.Table = tablePath
	}
	if levelName != "" {
		if cfg.Print.Level, err = wirelog.ParseLevel(levelName); err != nil {
			return cli.Validation("--level: %w", err)
		}
	}
	if colorMode != "" {
		cfg.Print.Color = config.ColorMode(colorMode)
	}
	if formatName != "" {
		cfg.Print.Format = config.OutputFormat(formatName)
	}
	if relative {
		cfg.Print.RelativeTime = true
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("%w", err)
	}

	logger := newLogger(verbose).With("command", "wirefmt-print", "table", cfg.Table)

	if dumpTable {
		if flagSet.NArg() != 0 {
			return cli.Validation("--dump-table takes no log file")
		}
		return printTable(stdout, cfg.Table, diagnose, logger)
	}
	if diagnose {
		return cli.Validation("--diagnose requires --dump-table")
	}
	if flagSet.NArg() != 1 {
		return cli.Validation("expected exactly one log file (or - for stdin), got %d", flagSet.NArg())
	}

	table, err := loadTable(cfg.Table, logger)
	if err != nil {
		return err
	}

	logPath := flagSet.Arg(0)
	input := stdin
	if logPath != "-" {
		file, err := os.Open(logPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cli.NotFound("log file %s does not exist", logPath)
			}
			return cli.Internal("opening log file: %w", err)
		}
		defer file.Close()
		input = file
	}

	profile := colorProfile(cfg.Print.Color, stdout)
	output := newPrinter(stdout, cfg.Print.Format, cfg.Print.RelativeTime, profile)
	return printLog(input, table, cfg.Print.Level, output, logger.With("log", logPath))
}

func loadTable(path string, logger *slog.Logger) (*intern.Table, error) {
	table, err := intern.ReadFile(path, logger)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("pattern table %s does not exist", path)
		}
		return nil, cli.Data("%w", err)
	}
	logger.Debug("loaded pattern table", "patterns", table.Len(), "fingerprint", table.Fingerprint().Short())
	return table, nil
}

// printLog prints every record at or above minimum. Frames that fail to
// decode are reported and skipped; a corrupt block ends the read.
func printLog(input io.Reader, table *intern.Table, minimum wirelog.Level, output *printer, logger *slog.Logger) error {
	reader, err := logfile.NewReader(input)
	if err != nil {
		return cli.Data("%w", err)
	}
	if err := reader.Verify(table); err != nil {
		return cli.Data("%w", err)
	}

	decoder := decode.New(table)
	var printed, skipped, failed int
	for frame, err := range reader.Frames() {
		if err != nil {
			return cli.Data("after %d records: %w", printed+skipped+failed, err)
		}
		record, err := wirelog.DecodeFrame(decoder, frame)
		if err != nil {
			failed++
			logger.Warn("skipping undecodable frame", "index", printed+skipped+failed-1, "error", err)
			continue
		}
		if record.Level < minimum {
			skipped++
			continue
		}
		if err := output.print(record); err != nil {
			return cli.Internal("writing output: %w", err)
		}
		printed++
	}
	logger.Debug("finished", "printed", printed, "filtered", skipped, "failed", failed)
	if failed > 0 {
		return cli.Data("%d frames could not be decoded", failed)
	}
	return nil
}

func printTable(stdout io.Writer, path string, diagnose bool, logger *slog.Logger) error {
	if diagnose {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cli.NotFound("pattern table %s does not exist", path)
			}
			return cli.Internal("reading pattern table: %w", err)
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return cli.Data("%s: %w", path, err)
		}
		_, err = fmt.Fprintln(stdout, notation)
		return err
	}

	table, err := loadTable(path, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "# fingerprint %s\n", table.Fingerprint())
	for index, pattern := range table.Patterns() {
		fmt.Fprintf(stdout, "%d\t%s\n", wire.ID(index+1), pattern)
	}
	return nil
}

// colorProfile picks the styling profile for stdout.
func colorProfile(mode config.ColorMode, stdout io.Writer) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.ANSI256
	case config.ColorNever:
		return termenv.Ascii
	}
	if file, ok := stdout.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

func printHelp(output io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(output, `Usage: wirefmt-print [flags] LOG
       wirefmt-print --dump-table [--diagnose] [flags]

Decode a binary log with its pattern table. LOG may be - for stdin.

Flags:
%s`, flagSet.FlagUsages())
}
