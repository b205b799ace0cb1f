// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirelog

import (
	"errors"
	"sync"

	"github.com/bureau-foundation/wirefmt/lib/clock"
	"github.com/bureau-foundation/wirefmt/lib/wire"
)

// DefaultMaxFrame is the staging buffer size used when Config.MaxFrame
// is zero.
const DefaultMaxFrame = 1024

// FrameWriter receives finished frames. The slice is only valid for the
// duration of the call.
type FrameWriter interface {
	WriteFrame(frame []byte) error
}

// FrameWriterFunc adapts a function to FrameWriter.
type FrameWriterFunc func(frame []byte) error

// WriteFrame calls fn(frame).
func (fn FrameWriterFunc) WriteFrame(frame []byte) error { return fn(frame) }

// Config holds the parameters for New.
type Config struct {
	// Output receives each finished frame. Required.
	Output FrameWriter

	// Interner assigns message and argument tags. Required.
	Interner wire.Interner

	// Clock stamps frames. Nil means clock.Uptime().
	Clock clock.Clock

	// Level is the minimum level written. Calls below it are no-ops.
	Level Level

	// MaxFrame bounds the encoded size of one frame in bytes. Zero
	// means DefaultMaxFrame.
	MaxFrame int
}

// Logger writes leveled frames. Create one with New.
type Logger struct {
	output   FrameWriter
	interner wire.Interner
	clock    clock.Clock

	mu        sync.Mutex
	level     Level
	staging   *wire.Buffer
	formatter *wire.Formatter
	dropped   uint64
}

// New creates a Logger from config.
func New(config Config) (*Logger, error) {
	if config.Output == nil {
		return nil, errors.New("wirelog: Output is required")
	}
	if config.Interner == nil {
		return nil, errors.New("wirelog: Interner is required")
	}
	if !config.Level.Valid() {
		return nil, errors.New("wirelog: invalid minimum level")
	}
	if config.MaxFrame < 0 {
		return nil, errors.New("wirelog: MaxFrame must not be negative")
	}
	maxFrame := config.MaxFrame
	if maxFrame == 0 {
		maxFrame = DefaultMaxFrame
	}
	timestamps := config.Clock
	if timestamps == nil {
		timestamps = clock.Uptime()
	}
	staging := wire.NewBuffer(maxFrame)
	return &Logger{
		output:    config.Output,
		interner:  config.Interner,
		clock:     timestamps,
		level:     config.Level,
		staging:   staging,
		formatter: wire.NewFormatter(staging, config.Interner),
	}, nil
}

// Enabled reports whether frames at level are written.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Dropped returns how many enabled frames failed to encode or write.
func (l *Logger) Dropped() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Log writes one frame for pattern at level. The arguments must match
// the pattern's parameters one for one. Nothing reaches the output
// unless the whole frame encoded; encoding errors (wire.ErrFull when
// the frame exceeds MaxFrame) and output errors are returned unchanged.
func (l *Logger) Log(level Level, pattern string, args ...wire.Arg) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return nil
	}
	l.staging.Reset()
	if err := l.encodeFrame(level, pattern, args); err != nil {
		l.staging.Reset()
		l.dropped++
		return err
	}
	if err := l.output.WriteFrame(l.staging.Bytes()); err != nil {
		l.dropped++
		return err
	}
	return nil
}

func (l *Logger) encodeFrame(level Level, pattern string, args []wire.Arg) error {
	f := l.formatter
	if err := f.Tag(pattern); err != nil {
		return err
	}
	if err := f.U8(uint8(level)); err != nil {
		return err
	}
	if err := f.U64(clock.Micros(l.clock.Now())); err != nil {
		return err
	}
	return f.Args(args...)
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(pattern string, args ...wire.Arg) error {
	return l.Log(LevelTrace, pattern, args...)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(pattern string, args ...wire.Arg) error {
	return l.Log(LevelDebug, pattern, args...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(pattern string, args ...wire.Arg) error {
	return l.Log(LevelInfo, pattern, args...)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(pattern string, args ...wire.Arg) error {
	return l.Log(LevelWarn, pattern, args...)
}

// Error logs at LevelError.
func (l *Logger) Error(pattern string, args ...wire.Arg) error {
	return l.Log(LevelError, pattern, args...)
}
