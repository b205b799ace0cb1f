// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the host-side serialization helpers shared by the
// pattern table and the log file container.
//
// Pattern tables are CBOR documents encoded with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer encoding,
// no indefinite-length items. The same table always produces the same
// bytes, so table files can be compared and cached by content.
//
//	data, err := codec.Marshal(document)
//	err = codec.Unmarshal(data, &document)
//
// Log file blocks are compressed with one of the algorithms named by a
// [CompressionTag]. The tag values are stored in block headers and are
// protocol constants.
//
//	stored, tag, err := codec.CompressBest(block, codec.CompressionZstd)
//	block, err = codec.Decompress(stored, tag, uncompressedSize)
//
// The producer side of the wire format (package wire) never imports
// this package: CBOR and compression only run on the host.
package codec
