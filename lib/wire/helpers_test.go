// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"sync"
	"testing"
)

// sequentialInterner assigns IDs 1, 2, 3, ... in first-request order and
// records every request so tests can check when patterns are asked for.
type sequentialInterner struct {
	mu       sync.Mutex
	ids      map[string]ID
	requests []string
}

func newSequentialInterner() *sequentialInterner {
	return &sequentialInterner{ids: make(map[string]ID)}
}

func (in *sequentialInterner) Intern(pattern string) ID {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.requests = append(in.requests, pattern)
	if id, ok := in.ids[pattern]; ok {
		return id
	}
	id := ID(len(in.ids) + 1)
	in.ids[pattern] = id
	return id
}

// tag returns the little-endian bytes of pattern's ID.
func (in *sequentialInterner) tag(pattern string) []byte {
	return binary.LittleEndian.AppendUint16(nil, uint16(in.Intern(pattern)))
}

// encodeTagged encodes v through the top-level entry point.
func encodeTagged(t *testing.T, interner Interner, v Format) []byte {
	t.Helper()
	buffer := NewBuffer(1024)
	if err := NewFormatter(buffer, interner).Encode(v); err != nil {
		t.Fatalf("Encode(%T): %v", v, err)
	}
	return append([]byte(nil), buffer.Bytes()...)
}

// encodeData encodes v through the data-only entry point.
func encodeData(t *testing.T, interner Interner, v Format) []byte {
	t.Helper()
	buffer := NewBuffer(1024)
	if err := v.EncodeData(NewFormatter(buffer, interner)); err != nil {
		t.Fatalf("EncodeData(%T): %v", v, err)
	}
	return append([]byte(nil), buffer.Bytes()...)
}

func concat(parts ...[]byte) []byte {
	var result []byte
	for _, part := range parts {
		result = append(result, part...)
	}
	return result
}
