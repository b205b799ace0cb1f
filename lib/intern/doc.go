// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package intern assigns IDs to pattern strings.
//
// A [Table] implements wire.Interner. IDs are handed out sequentially
// from 1 in first-request order; ID 0 stays reserved as the format
// sequence terminator. Because assignment order depends on which values
// are encoded first, the table built by a producer must travel with its
// logs: [WriteFile] stores it as a deterministic CBOR document and
// [ReadFile] loads it on the host.
//
// A table's [Fingerprint] is a BLAKE3 keyed hash over its patterns in ID
// order. Log files record the fingerprint of the table they were
// written against so a reader can refuse to decode with the wrong one.
package intern
