// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package logfile stores wirelog frames on disk in compressed blocks.
//
// File layout:
//
//	header (40 bytes):
//	  magic        4 bytes  "WFMT"
//	  version      1 byte   currently 1
//	  reserved     3 bytes  zero
//	  fingerprint 32 bytes  intern.Fingerprint of the pattern table
//
//	block (repeated until EOF):
//	  compression   1 byte   codec.CompressionTag (none=0, lz4=1, zstd=2)
//	  reserved      3 bytes  zero
//	  uncompressed  4 bytes  little-endian payload size before compression
//	  stored        4 bytes  little-endian size of the bytes that follow
//	  payload       stored bytes
//
// A decompressed payload is a run of frames, each prefixed with its
// length as an unsigned LEB128 varint. Frames never straddle blocks.
//
// The fingerprint ties a log file to the table that decodes it: a
// [Reader] refuses a table whose fingerprint differs (see
// [Reader.Verify]). Blocks the compressor cannot shrink are stored with
// CompressionNone.
package logfile
