// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package intern

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/wirefmt/lib/codec"
)

// tableFormatVersion is the version field written to table files.
const tableFormatVersion = 1

// tableDocument is the on-disk form of a table.
type tableDocument struct {
	Version     int      `cbor:"version"`
	Fingerprint []byte   `cbor:"fingerprint"`
	Patterns    []string `cbor:"patterns"`
}

// Marshal encodes the table as deterministic CBOR.
func (t *Table) Marshal() ([]byte, error) {
	patterns := t.Patterns()
	fingerprint := fingerprintPatterns(patterns)
	return codec.Marshal(tableDocument{
		Version:     tableFormatVersion,
		Fingerprint: fingerprint[:],
		Patterns:    patterns,
	})
}

// Unmarshal decodes a table written by Marshal and checks its stored
// fingerprint against the patterns.
func Unmarshal(data []byte, logger *slog.Logger) (*Table, error) {
	var document tableDocument
	if err := codec.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("decoding pattern table: %w", err)
	}
	if document.Version != tableFormatVersion {
		return nil, fmt.Errorf("pattern table version %d, want %d", document.Version, tableFormatVersion)
	}
	table, err := FromPatterns(document.Patterns, logger)
	if err != nil {
		return nil, fmt.Errorf("pattern table: %w", err)
	}
	computed := table.Fingerprint()
	if string(document.Fingerprint) != string(computed[:]) {
		return nil, fmt.Errorf("pattern table fingerprint mismatch: stored %x, computed %s",
			document.Fingerprint, computed)
	}
	return table, nil
}

// WriteFile stores the table at path, replacing any existing file
// atomically via a rename.
func WriteFile(path string, table *Table) error {
	data, err := table.Marshal()
	if err != nil {
		return fmt.Errorf("encoding pattern table: %w", err)
	}
	temporary := path + ".tmp"
	if err := os.WriteFile(temporary, data, 0o644); err != nil {
		return fmt.Errorf("writing pattern table: %w", err)
	}
	if err := os.Rename(temporary, path); err != nil {
		_ = os.Remove(temporary)
		return fmt.Errorf("installing pattern table %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a table stored by WriteFile.
func ReadFile(path string, logger *slog.Logger) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern table: %w", err)
	}
	table, err := Unmarshal(data, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
