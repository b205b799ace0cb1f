// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"io"
)

// ID names a pattern string within one build. ID 0 is reserved: it
// terminates a format sequence and is never returned by an Interner.
type ID uint16

// Interner maps pattern strings to IDs. The same pattern text must
// always yield the same ID. Implementations must be safe for concurrent
// use; the encoder only ever asks, it never assigns.
type Interner interface {
	Intern(pattern string) ID
}

// InternerFunc adapts a function to the Interner interface.
type InternerFunc func(pattern string) ID

// Intern calls fn(pattern).
func (fn InternerFunc) Intern(pattern string) ID { return fn(pattern) }

// Sink is an append-only byte destination. Append either accepts all of
// data or none of it.
type Sink interface {
	Append(data []byte) error
}

// StringSink is implemented by sinks that can append string data
// without first converting it to a byte slice.
type StringSink interface {
	AppendString(data string) error
}

// Rewinder is implemented by sinks that can discard bytes appended
// after a mark. Formatter.Encode uses it to drop a value that failed
// half way through.
type Rewinder interface {
	Len() int
	Truncate(length int)
}

// ErrFull is returned by a fixed-capacity sink that cannot accept the
// bytes of a write.
var ErrFull = errors.New("wire: sink full")

// Buffer is a fixed-capacity Sink. It never grows past the capacity it
// was created with, so encoding into it does not allocate.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer that holds at most capacity bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// Append implements Sink. Returns ErrFull without writing anything if
// data does not fit in the remaining capacity.
func (b *Buffer) Append(data []byte) error {
	if len(data) > cap(b.data)-len(b.data) {
		return ErrFull
	}
	b.data = append(b.data, data...)
	return nil
}

// AppendString implements StringSink.
func (b *Buffer) AppendString(data string) error {
	if len(data) > cap(b.data)-len(b.data) {
		return ErrFull
	}
	b.data = append(b.data, data...)
	return nil
}

// Bytes returns the bytes written so far. The slice aliases the
// buffer and is only valid until the next Append, Truncate, or Reset.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the buffer's fixed capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Truncate discards everything after the first length bytes. Lengths
// outside [0, Len()] are ignored.
func (b *Buffer) Truncate(length int) {
	if length < 0 || length > len(b.data) {
		return
	}
	b.data = b.data[:length]
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// StreamSink adapts an io.Writer to the Sink interface. Write errors
// are returned unchanged. A short write without an error is reported
// as io.ErrShortWrite.
type StreamSink struct {
	writer io.Writer
}

// NewStreamSink returns a Sink that appends to writer.
func NewStreamSink(writer io.Writer) *StreamSink {
	return &StreamSink{writer: writer}
}

// Append implements Sink.
func (s *StreamSink) Append(data []byte) error {
	written, err := s.writer.Write(data)
	if err != nil {
		return err
	}
	if written != len(data) {
		return io.ErrShortWrite
	}
	return nil
}
