// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// wirefmt-sample writes a sample binary log and the pattern table that
// decodes it. It drives the whole producer path (logger, encoder,
// block container, table persistence) and gives wirefmt-print
// something to read.
//
// Patterns are collected in a first pass that discards its frames,
// the way a firmware build fixes its table before any device logs, so
// the log header can carry the final table fingerprint.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/wirefmt/lib/cli"
	"github.com/bureau-foundation/wirefmt/lib/clock"
	"github.com/bureau-foundation/wirefmt/lib/codec"
	"github.com/bureau-foundation/wirefmt/lib/config"
	"github.com/bureau-foundation/wirefmt/lib/intern"
	"github.com/bureau-foundation/wirefmt/lib/logfile"
	"github.com/bureau-foundation/wirefmt/lib/version"
	"github.com/bureau-foundation/wirefmt/lib/wirelog"
)

// sampleEpoch is the fake clock's starting time, so repeated runs
// produce identical files.
var sampleEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func main() {
	err := run(os.Args[1:], os.Stdout, cli.NewCommandLogger)
	status, printMessage := cli.ExitStatus(err)
	if printMessage {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(status)
}

// options are the resolved settings for one run.
type options struct {
	tablePath   string
	outputPath  string
	compression codec.CompressionTag
	blockSize   int
	maxFrame    int
	cycles      int
	realClock   bool
}

func run(args []string, stdout io.Writer, newLogger func(verbose bool) *slog.Logger) error {
	var (
		configPath  string
		tablePath   string
		outputPath  string
		compression string
		blockSize   int
		cycles      int
		realClock   bool
		verbose     bool
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("wirefmt-sample", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&tablePath, "table", "", "pattern table to write (overrides config)")
	flagSet.StringVarP(&outputPath, "output", "o", "", "log file to write (required)")
	flagSet.StringVar(&compression, "compression", "", "block compression: none, lz4, or zstd (overrides config)")
	flagSet.IntVar(&blockSize, "block-size", 0, "uncompressed block size in bytes (overrides config)")
	flagSet.IntVar(&cycles, "cycles", 10, "number of simulated session cycles")
	flagSet.BoolVar(&realClock, "real-clock", false, "stamp frames with wall time instead of a fixed fake clock")
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
		version.Fprint(stdout, "wirefmt-sample")
		return nil
	}
	if flagSet.NArg() != 0 {
		return cli.Validation("unexpected arguments: %v", flagSet.Args())
	}
	if outputPath == "" {
		return cli.Validation("--output is required")
	}
	if cycles < 1 {
		return cli.Validation("--cycles must be at least 1")
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		return cli.Validation("loading config: %w", err)
	}
	opts := options{
		tablePath:  cfg.Table,
		outputPath: outputPath,
		blockSize:  cfg.Capture.BlockSize,
		maxFrame:   cfg.Capture.MaxFrame,
		cycles:     cycles,
		realClock:  realClock,
	}
	if tablePath != "" {
		opts.tablePath = tablePath
	}
	if blockSize != 0 {
		opts.blockSize = blockSize
	}
	if compression == "" {
		compression = cfg.Capture.Compression
	}
	opts.compression, err = codec.ParseCompressionTag(compression)
	if err != nil {
		return cli.Validation("--compression: %w", err)
	}

	logger := newLogger(verbose).With("command", "wirefmt-sample")
	return writeSample(opts, logger)
}

func writeSample(opts options, logger *slog.Logger) error {
	table := intern.NewTable(logger)

	// First pass: intern every pattern the scenario uses.
	discard := wirelog.FrameWriterFunc(func([]byte) error { return nil })
	collector, err := wirelog.New(wirelog.Config{
		Output:   discard,
		Interner: table,
		Clock:    clock.Fake(sampleEpoch),
		MaxFrame: opts.maxFrame,
	})
	if err != nil {
		return cli.Internal("creating collector: %w", err)
	}
	if err := emitScenario(collector, nil, opts.cycles); err != nil {
		return cli.Internal("collecting patterns: %w", err)
	}
	patternCount := table.Len()
	fingerprint := table.Fingerprint()
	logger.Debug("collected patterns", "patterns", patternCount, "fingerprint", fingerprint.Short())

	file, err := os.Create(opts.outputPath)
	if err != nil {
		return cli.Internal("creating log file: %w", err)
	}
	defer file.Close()

	writer, err := logfile.NewWriter(file, fingerprint, opts.compression, opts.blockSize)
	if err != nil {
		return cli.Internal("starting log file: %w", err)
	}
	var frames int
	counted := wirelog.FrameWriterFunc(func(frame []byte) error {
		frames++
		return writer.WriteFrame(frame)
	})

	var timestamps clock.Clock
	var fake *clock.FakeClock
	if opts.realClock {
		timestamps = clock.Real()
	} else {
		fake = clock.Fake(sampleEpoch)
		timestamps = fake
	}
	frameLogger, err := wirelog.New(wirelog.Config{
		Output:   counted,
		Interner: table,
		Clock:    timestamps,
		MaxFrame: opts.maxFrame,
	})
	if err != nil {
		return cli.Internal("creating logger: %w", err)
	}
	if err := emitScenario(frameLogger, fake, opts.cycles); err != nil {
		return cli.Internal("writing frames: %w", err)
	}
	if err := writer.Close(); err != nil {
		return cli.Internal("finishing log file: %w", err)
	}
	if err := file.Close(); err != nil {
		return cli.Internal("closing log file: %w", err)
	}
	if table.Len() != patternCount {
		return cli.Internal("pattern table grew from %d to %d after the header was written",
			patternCount, table.Len())
	}

	if err := intern.WriteFile(opts.tablePath, table); err != nil {
		return cli.Internal("%w", err)
	}

	logger.Info("wrote sample log",
		"log", opts.outputPath,
		"table", opts.tablePath,
		"frames", frames,
		"patterns", patternCount,
		"compression", opts.compression.String(),
		"fingerprint", fingerprint.Short(),
	)
	return nil
}

func printHelp(output io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(output, `Usage: wirefmt-sample --output FILE [flags]

Write a sample binary log and the pattern table that decodes it.

Flags:
%s`, flagSet.FlagUsages())
}
