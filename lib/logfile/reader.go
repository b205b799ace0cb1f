// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package logfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/bureau-foundation/wirefmt/lib/codec"
	"github.com/bureau-foundation/wirefmt/lib/intern"
)

// Reader reads frames from a log file.
type Reader struct {
	input       io.Reader
	fingerprint intern.Fingerprint
}

// NewReader reads and validates the file header.
func NewReader(input io.Reader) (*Reader, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(input, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: header truncated", ErrNotLogFile)
		}
		return nil, fmt.Errorf("reading log file header: %w", err)
	}
	if [4]byte(header[0:4]) != fileMagic {
		return nil, ErrNotLogFile
	}
	if header[4] != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header[4])
	}
	reader := &Reader{input: input}
	copy(reader.fingerprint[:], header[8:])
	return reader, nil
}

// Fingerprint returns the pattern table fingerprint from the header.
func (r *Reader) Fingerprint() intern.Fingerprint { return r.fingerprint }

// Verify checks that table is the one the log was written against.
func (r *Reader) Verify(table *intern.Table) error {
	if actual := table.Fingerprint(); actual != r.fingerprint {
		return fmt.Errorf("%w: log expects %s, table is %s",
			ErrFingerprintMismatch, r.fingerprint.Short(), actual.Short())
	}
	return nil
}

// Frames iterates the frames in file order. Iteration stops after the
// first error. The frame slice is only valid until the next iteration.
func (r *Reader) Frames() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			payload, err := r.readBlock()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			for len(payload) > 0 {
				length, size := binary.Uvarint(payload)
				if size <= 0 || length > uint64(len(payload)-size) {
					yield(nil, fmt.Errorf("%w: frame length prefix overruns payload", ErrCorruptBlock))
					return
				}
				payload = payload[size:]
				if !yield(payload[:length:length], nil) {
					return
				}
				payload = payload[length:]
			}
		}
	}
}

// readBlock returns the next decompressed payload, or io.EOF at a clean
// end of file.
func (r *Reader) readBlock() ([]byte, error) {
	var header [blockHeaderSize]byte
	if _, err := io.ReadFull(r.input, header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: block header truncated", ErrCorruptBlock)
		}
		return nil, fmt.Errorf("reading block header: %w", err)
	}
	tag := codec.CompressionTag(header[0])
	uncompressed := binary.LittleEndian.Uint32(header[4:8])
	stored := binary.LittleEndian.Uint32(header[8:12])
	if uncompressed > MaxBlockSize || stored > MaxBlockSize {
		return nil, fmt.Errorf("%w: block sizes %d/%d exceed %d",
			ErrCorruptBlock, uncompressed, stored, MaxBlockSize)
	}

	data := make([]byte, stored)
	if _, err := io.ReadFull(r.input, data); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: payload truncated", ErrCorruptBlock)
		}
		return nil, fmt.Errorf("reading block payload: %w", err)
	}
	payload, err := codec.Decompress(data, tag, int(uncompressed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlock, err)
	}
	return payload, nil
}
