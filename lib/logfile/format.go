// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package logfile

import "errors"

const (
	formatVersion = 1

	// HeaderSize is the fixed file header: magic, version, reserved
	// bytes, fingerprint.
	HeaderSize = 4 + 1 + 3 + 32

	// blockHeaderSize is compression tag, 3 reserved bytes,
	// uncompressed size, stored size. The reserved bytes keep the
	// uint32 fields 4-byte aligned.
	blockHeaderSize = 12

	// DefaultBlockSize is the uncompressed payload size at which a
	// Writer flushes a block.
	DefaultBlockSize = 64 * 1024

	// MaxBlockSize bounds the uncompressed payload of one block. Readers
	// reject larger blocks instead of allocating for them.
	MaxBlockSize = 16 * 1024 * 1024
)

var fileMagic = [4]byte{'W', 'F', 'M', 'T'}

var (
	// ErrNotLogFile means the header magic is wrong.
	ErrNotLogFile = errors.New("logfile: not a wirefmt log file")

	// ErrUnsupportedVersion means the header names a format version
	// this package does not read.
	ErrUnsupportedVersion = errors.New("logfile: unsupported format version")

	// ErrFingerprintMismatch means the log was written against a
	// different pattern table.
	ErrFingerprintMismatch = errors.New("logfile: pattern table fingerprint mismatch")

	// ErrCorruptBlock means a block header or payload is inconsistent.
	ErrCorruptBlock = errors.New("logfile: corrupt block")

	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("logfile: writer closed")
)
