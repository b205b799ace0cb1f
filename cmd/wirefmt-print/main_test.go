// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/wirefmt/lib/cli"
	"github.com/bureau-foundation/wirefmt/lib/clock"
	"github.com/bureau-foundation/wirefmt/lib/codec"
	"github.com/bureau-foundation/wirefmt/lib/config"
	"github.com/bureau-foundation/wirefmt/lib/intern"
	"github.com/bureau-foundation/wirefmt/lib/logfile"
	"github.com/bureau-foundation/wirefmt/lib/wire"
	"github.com/bureau-foundation/wirefmt/lib/wirelog"
)

var fixtureEpoch = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

// fixture is a log file and its table on disk.
type fixture struct {
	logPath   string
	tablePath string
}

// writeFixture logs three records and stores the log and table.
func writeFixture(t *testing.T) fixture {
	t.Helper()
	directory := t.TempDir()
	table := intern.NewTable(nil)
	patterns := []string{"boot {=u32}", "queue {=?}", "lost {=str}"}
	for _, pattern := range patterns {
		table.Intern(pattern)
	}

	var file bytes.Buffer
	writer, err := logfile.NewWriter(&file, table.Fingerprint(), codec.CompressionLZ4, 0)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	fake := clock.Fake(fixtureEpoch)
	logger, err := wirelog.New(wirelog.Config{Output: writer, Interner: table, Clock: fake})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := logger.Info("boot {=u32}", wire.ArgU32(7)); err != nil {
		t.Fatalf("Info: %v", err)
	}
	fake.Advance(1500 * time.Microsecond)
	if err := logger.Debug("queue {=?}", wire.ArgValue(wire.Some(wire.U8(3)))); err != nil {
		t.Fatalf("Debug: %v", err)
	}
	fake.Advance(time.Second)
	if err := logger.Error("lost {=str}", wire.ArgStr("link\x1b[31m")); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if table.Len() != len(patterns) {
		t.Fatalf("logging interned new patterns: %v", table.Patterns())
	}

	result := fixture{
		logPath:   filepath.Join(directory, "device.wlog"),
		tablePath: filepath.Join(directory, "table.cbor"),
	}
	if err := os.WriteFile(result.logPath, file.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := intern.WriteFile(result.tablePath, table); err != nil {
		t.Fatalf("intern.WriteFile: %v", err)
	}
	return result
}

func quietLogger(bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runPrint(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var stdout bytes.Buffer
	err := run(args, stdin, &stdout, quietLogger)
	return stdout.String(), err
}

func TestPrintText(t *testing.T) {
	files := writeFixture(t)
	output, err := runPrint(t, nil, "--table", files.tablePath, "--color", "never", files.logPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := strings.Join([]string{
		"2026-02-03T04:05:06.000000Z INFO  boot 7",
		"2026-02-03T04:05:06.001500Z DEBUG queue Some(3)",
		"2026-02-03T04:05:07.001500Z ERROR lost link",
		"",
	}, "\n")
	if diff := cmp.Diff(want, output); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintLevelFilterAndRelative(t *testing.T) {
	files := writeFixture(t)
	output, err := runPrint(t, nil, "--table", files.tablePath, "--color", "never",
		"--level", "info", "--relative", files.logPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "+0.000000 INFO  boot 7\n+1.001500 ERROR lost link\n"
	if diff := cmp.Diff(want, output); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintJSONFromStdin(t *testing.T) {
	files := writeFixture(t)
	logData, err := os.ReadFile(files.logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	output, err := runPrint(t, bytes.NewReader(logData), "--table", files.tablePath, "--format", "json", "-")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var got []jsonRecord
	decoder := json.NewDecoder(strings.NewReader(output))
	for decoder.More() {
		var record jsonRecord
		if err := decoder.Decode(&record); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		got = append(got, record)
	}
	start := clock.Micros(fixtureEpoch)
	want := []jsonRecord{
		{Time: "2026-02-03T04:05:06.000000Z", Micros: start, Level: "info", Tag: 1, Message: "boot 7"},
		{Time: "2026-02-03T04:05:06.001500Z", Micros: start + 1500, Level: "debug", Tag: 2, Message: "queue Some(3)"},
		{Time: "2026-02-03T04:05:07.001500Z", Micros: start + 1_001_500, Level: "error", Tag: 3, Message: "lost link"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintColorAlways(t *testing.T) {
	files := writeFixture(t)
	output, err := runPrint(t, nil, "--table", files.tablePath, "--color", "always", files.logPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(output, "\x1b[") {
		t.Errorf("--color always produced no escape sequences: %q", output)
	}
	if strings.Contains(output, "\x1b[31m") {
		t.Error("device-supplied escape sequence reached the output")
	}
}

func TestDumpTable(t *testing.T) {
	files := writeFixture(t)
	output, err := runPrint(t, nil, "--table", files.tablePath, "--dump-table")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[0], "# fingerprint ") {
		t.Fatalf("dump = %q", output)
	}
	if diff := cmp.Diff([]string{"1\tboot {=u32}", "2\tqueue {=?}", "3\tlost {=str}"}, lines[1:]); diff != "" {
		t.Errorf("table lines mismatch (-want +got):\n%s", diff)
	}

	output, err = runPrint(t, nil, "--table", files.tablePath, "--dump-table", "--diagnose")
	if err != nil {
		t.Fatalf("run --diagnose: %v", err)
	}
	if !strings.Contains(output, `"boot {=u32}"`) {
		t.Errorf("diagnostic notation lacks the patterns: %q", output)
	}
}

func TestPrintRejectsOtherTable(t *testing.T) {
	files := writeFixture(t)
	other, err := intern.FromPatterns([]string{"unrelated {=u8}"}, nil)
	if err != nil {
		t.Fatalf("FromPatterns: %v", err)
	}
	otherPath := filepath.Join(t.TempDir(), "other.cbor")
	if err := intern.WriteFile(otherPath, other); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err = runPrint(t, nil, "--table", otherPath, files.logPath)
	if !errors.Is(err, logfile.ErrFingerprintMismatch) {
		t.Fatalf("run = %v, want ErrFingerprintMismatch", err)
	}
	if status, _ := cli.ExitStatus(err); status != cli.ExitBadData {
		t.Errorf("exit status = %d, want %d", status, cli.ExitBadData)
	}
}

func TestPrintErrors(t *testing.T) {
	files := writeFixture(t)
	tests := []struct {
		name     string
		args     []string
		category cli.ErrorCategory
	}{
		{"no log", []string{"--table", files.tablePath}, cli.CategoryValidation},
		{"two logs", []string{"--table", files.tablePath, files.logPath, files.logPath}, cli.CategoryValidation},
		{"bad level", []string{"--table", files.tablePath, "--level", "loud", files.logPath}, cli.CategoryValidation},
		{"bad color", []string{"--table", files.tablePath, "--color", "rainbow", files.logPath}, cli.CategoryValidation},
		{"diagnose without dump", []string{"--table", files.tablePath, "--diagnose", files.logPath}, cli.CategoryValidation},
		{"missing table", []string{"--table", files.tablePath + ".gone", files.logPath}, cli.CategoryNotFound},
		{"missing log", []string{"--table", files.tablePath, files.logPath + ".gone"}, cli.CategoryNotFound},
		{"table as log", []string{"--table", files.tablePath, files.tablePath}, cli.CategoryData},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := runPrint(t, nil, test.args...)
			if got := cli.Category(err); err == nil || got != test.category {
				t.Errorf("run = %v (category %q), want category %q", err, got, test.category)
			}
		})
	}
}

func TestVersionAndHelp(t *testing.T) {
	output, err := runPrint(t, nil, "--version")
	if err != nil || !strings.HasPrefix(output, "wirefmt-print ") {
		t.Errorf("--version = %q, %v", output, err)
	}
	output, err = runPrint(t, nil, "--help")
	if err != nil || !strings.Contains(output, "--dump-table") {
		t.Errorf("--help = %q, %v", output, err)
	}
}
