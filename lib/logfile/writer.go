// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package logfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/bureau-foundation/wirefmt/lib/codec"
	"github.com/bureau-foundation/wirefmt/lib/intern"
)

// Writer appends frames to a log file. It implements
// wirelog.FrameWriter and is safe for concurrent use.
//
// Frames are buffered until the pending block reaches the block size,
// then compressed and written. Call Flush to force the pending block
// out and Close when done; Close does not close the underlying writer.
type Writer struct {
	mu          sync.Mutex
	output      io.Writer
	compression codec.CompressionTag
	blockSize   int
	pending     []byte
	closed      bool
}

// NewWriter writes the file header to output and returns a Writer for
// the frames that follow. A blockSize of zero means DefaultBlockSize.
func NewWriter(output io.Writer, fingerprint intern.Fingerprint, compression codec.CompressionTag, blockSize int) (*Writer, error) {
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	if blockSize < 0 || blockSize > MaxBlockSize {
		return nil, fmt.Errorf("block size %d out of range (1..%d)", blockSize, MaxBlockSize)
	}
	if !compression.Valid() {
		return nil, fmt.Errorf("unsupported compression tag: %d", compression)
	}

	var header [HeaderSize]byte
	copy(header[0:4], fileMagic[:])
	header[4] = formatVersion
	copy(header[8:], fingerprint[:])
	if _, err := output.Write(header[:]); err != nil {
		return nil, fmt.Errorf("writing log file header: %w", err)
	}

	return &Writer{
		output:      output,
		compression: compression,
		blockSize:   blockSize,
		pending:     make([]byte, 0, blockSize),
	}, nil
}

// WriteFrame appends one frame. The frame is copied.
func (w *Writer) WriteFrame(frame []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	record := binary.MaxVarintLen64 + len(frame)
	if record > MaxBlockSize {
		return fmt.Errorf("frame of %d bytes exceeds the maximum block size", len(frame))
	}
	if len(w.pending) > 0 && len(w.pending)+record > w.blockSize {
		if err := w.flushLocked(); err != nil {
			return err
		}
	}
	w.pending = binary.AppendUvarint(w.pending, uint64(len(frame)))
	w.pending = append(w.pending, frame...)
	if len(w.pending) >= w.blockSize {
		return w.flushLocked()
	}
	return nil
}

// Flush writes the pending block, if any.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	return w.flushLocked()
}

// Close flushes the pending block. Further writes return ErrClosed.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.flushLocked()
}

func (w *Writer) flushLocked() error {
	if len(w.pending) == 0 {
		return nil
	}
	stored, tag, err := codec.CompressBest(w.pending, w.compression)
	if err != nil {
		return fmt.Errorf("compressing block: %w", err)
	}

	var header [blockHeaderSize]byte
	header[0] = byte(tag)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(w.pending)))
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(stored)))
	if _, err := w.output.Write(header[:]); err != nil {
		return fmt.Errorf("writing block header: %w", err)
	}
	if _, err := w.output.Write(stored); err != nil {
		return fmt.Errorf("writing block payload: %w", err)
	}
	w.pending = w.pending[:0]
	return nil
}
