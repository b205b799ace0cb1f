// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package intern

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Fingerprint identifies the exact contents of a table.
type Fingerprint [32]byte

// fingerprintDomainKey keys the BLAKE3 hash so table fingerprints never
// collide with hashes computed for other purposes over the same bytes.
// ASCII "wirefmt.intern.table", zero-padded to 32 bytes.
var fingerprintDomainKey = [32]byte{
	'w', 'i', 'r', 'e', 'f', 'm', 't', '.', 'i', 'n', 't', 'e', 'r', 'n', '.',
	't', 'a', 'b', 'l', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint hashes the patterns in ID order, each prefixed with its
// length so that ["ab", "c"] and ["a", "bc"] differ.
func (t *Table) Fingerprint() Fingerprint {
	return fingerprintPatterns(t.Patterns())
}

func fingerprintPatterns(patterns []string) Fingerprint {
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("intern: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	var lengthPrefix [binary.MaxVarintLen64]byte
	for _, pattern := range patterns {
		length := binary.PutUvarint(lengthPrefix[:], uint64(len(pattern)))
		hasher.Write(lengthPrefix[:length])
		hasher.WriteString(pattern)
	}
	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint
}

// String returns the hex encoding of the fingerprint.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Short returns the first 12 hex digits, enough to tell tables apart in
// log output.
func (f Fingerprint) Short() string { return hex.EncodeToString(f[:6]) }

// ParseFingerprint parses a 64-digit hex fingerprint.
func ParseFingerprint(text string) (Fingerprint, error) {
	var fingerprint Fingerprint
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return fingerprint, fmt.Errorf("parsing table fingerprint: %w", err)
	}
	if len(decoded) != len(fingerprint) {
		return fingerprint, fmt.Errorf("table fingerprint is %d bytes, want %d", len(decoded), len(fingerprint))
	}
	copy(fingerprint[:], decoded)
	return fingerprint, nil
}
