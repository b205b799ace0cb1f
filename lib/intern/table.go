// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package intern

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/bureau-foundation/wirefmt/lib/wire"
)

// MaxPatterns is the number of patterns a table can hold. ID 0 is
// reserved, leaving every other 16-bit value.
const MaxPatterns = math.MaxUint16

// Table is an in-memory pattern table. It is safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	ids      map[string]wire.ID
	patterns []string // patterns[id-1]
	logger   *slog.Logger
}

// NewTable returns an empty table. New patterns are logged at debug
// level; a nil logger discards them.
func NewTable(logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Table{
		ids:    make(map[string]wire.ID),
		logger: logger,
	}
}

// FromPatterns rebuilds a table whose pattern with ID n is
// patterns[n-1]. Duplicate patterns are rejected because they would
// make Intern ambiguous.
func FromPatterns(patterns []string, logger *slog.Logger) (*Table, error) {
	if len(patterns) > MaxPatterns {
		return nil, fmt.Errorf("table holds %d patterns, limit is %d", len(patterns), MaxPatterns)
	}
	table := NewTable(logger)
	for index, pattern := range patterns {
		if existing, ok := table.ids[pattern]; ok {
			return nil, fmt.Errorf("pattern %q appears as both ID %d and ID %d", pattern, existing, index+1)
		}
		table.ids[pattern] = wire.ID(index + 1)
	}
	table.patterns = slices.Clone(patterns)
	return table, nil
}

// Intern implements wire.Interner. It panics if the table already holds
// MaxPatterns patterns: the wire format cannot name another one, and
// callers treat interning as infallible.
func (t *Table) Intern(pattern string) wire.ID {
	t.mu.RLock()
	id, ok := t.ids[pattern]
	t.mu.RUnlock()
	if ok {
		return id
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[pattern]; ok {
		return id
	}
	if len(t.patterns) >= MaxPatterns {
		panic(fmt.Sprintf("intern: table full (%d patterns), cannot add %q", MaxPatterns, pattern))
	}
	t.patterns = append(t.patterns, pattern)
	id = wire.ID(len(t.patterns))
	t.ids[pattern] = id
	t.logger.Debug("interned pattern", "id", id, "pattern", pattern)
	return id
}

// Lookup returns the pattern with the given ID.
func (t *Table) Lookup(id wire.ID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id == 0 || int(id) > len(t.patterns) {
		return "", false
	}
	return t.patterns[id-1], true
}

// Len returns the number of patterns in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.patterns)
}

// Patterns returns a copy of the patterns in ID order.
func (t *Table) Patterns() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.patterns)
}
