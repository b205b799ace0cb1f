// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirelog

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bureau-foundation/wirefmt/lib/clock"
	"github.com/bureau-foundation/wirefmt/lib/decode"
	"github.com/bureau-foundation/wirefmt/lib/intern"
	"github.com/bureau-foundation/wirefmt/lib/wire"
)

// frameCollector records every frame it receives.
type frameCollector struct {
	mu     sync.Mutex
	frames [][]byte
	err    error
}

func (c *frameCollector) WriteFrame(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.frames = append(c.frames, append([]byte(nil), frame...))
	return nil
}

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T, collector *frameCollector, level Level, maxFrame int) (*Logger, *intern.Table, *clock.FakeClock) {
	t.Helper()
	table := intern.NewTable(nil)
	fake := clock.Fake(testEpoch)
	logger, err := New(Config{
		Output:   collector,
		Interner: table,
		Clock:    fake,
		Level:    level,
		MaxFrame: maxFrame,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return logger, table, fake
}

func TestLoggerRoundTrip(t *testing.T) {
	collector := &frameCollector{}
	logger, table, fake := newTestLogger(t, collector, LevelTrace, 0)

	if err := logger.Info("boot complete in {=u32} ms", wire.ArgU32(125)); err != nil {
		t.Fatalf("Info: %v", err)
	}
	fake.Advance(2500 * time.Microsecond)
	timeout, err := wire.NewDuration(3, 500_000_000)
	if err != nil {
		t.Fatalf("NewDuration: %v", err)
	}
	if err := logger.Warn("sensor {=str} retry after {=?}",
		wire.ArgStr("imu0"), wire.ArgValue(timeout)); err != nil {
		t.Fatalf("Warn: %v", err)
	}
	if err := logger.Error("read failed: {=?}",
		wire.ArgValue(wire.Err[wire.U8](wire.Str("timeout")))); err != nil {
		t.Fatalf("Error: %v", err)
	}

	decoder := decode.New(table)
	var got []Record
	for _, frame := range collector.frames {
		record, err := DecodeFrame(decoder, frame)
		if err != nil {
			t.Fatalf("DecodeFrame: %v", err)
		}
		got = append(got, record)
	}

	start := clock.Micros(testEpoch)
	want := []Record{
		{Level: LevelInfo, Micros: start, Message: "boot complete in 125 ms"},
		{Level: LevelWarn, Micros: start + 2500, Message: "sensor imu0 retry after Duration { secs: 3, nanos: 500000000 }"},
		{Level: LevelError, Micros: start + 2500, Message: "read failed: Err(timeout)"},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Record{}, "Tag")); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if got[0].Tag != 1 {
		t.Errorf("first message tag = %d, want 1", got[0].Tag)
	}
	if !got[0].Time().Equal(testEpoch) {
		t.Errorf("Time() = %v, want %v", got[0].Time(), testEpoch)
	}
}

func TestLoggerFrameLayout(t *testing.T) {
	collector := &frameCollector{}
	logger, _, _ := newTestLogger(t, collector, LevelTrace, 0)
	if err := logger.Debug("x={=u16}", wire.ArgU16(0x0102)); err != nil {
		t.Fatalf("Debug: %v", err)
	}
	micros := clock.Micros(testEpoch)
	want := []byte{
		0x01, 0x00, // tag
		byte(LevelDebug),
		byte(micros), byte(micros >> 8), byte(micros >> 16), byte(micros >> 24),
		byte(micros >> 32), byte(micros >> 40), byte(micros >> 48), byte(micros >> 56),
		0x02, 0x01, // argument
	}
	if diff := cmp.Diff(want, collector.frames[0]); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	collector := &frameCollector{}
	logger, table, _ := newTestLogger(t, collector, LevelWarn, 0)

	if err := logger.Info("filtered"); err != nil {
		t.Fatalf("Info: %v", err)
	}
	if len(collector.frames) != 0 {
		t.Fatalf("filtered frame was written")
	}
	if table.Len() != 0 {
		t.Errorf("filtered call interned %d patterns, want 0", table.Len())
	}
	if logger.Enabled(LevelInfo) {
		t.Error("Enabled(info) = true at warn threshold")
	}

	logger.SetLevel(LevelInfo)
	if err := logger.Info("now visible"); err != nil {
		t.Fatalf("Info: %v", err)
	}
	if len(collector.frames) != 1 {
		t.Errorf("got %d frames after SetLevel, want 1", len(collector.frames))
	}
}

func TestLoggerOversizedFrameIsDroppedWhole(t *testing.T) {
	collector := &frameCollector{}
	logger, _, _ := newTestLogger(t, collector, LevelTrace, 16)

	err := logger.Info("payload {=[u8]}", wire.ArgBytes(make([]byte, 32)))
	if !errors.Is(err, wire.ErrFull) {
		t.Fatalf("Info = %v, want wire.ErrFull", err)
	}
	if len(collector.frames) != 0 {
		t.Fatalf("partial frame reached the output")
	}
	if logger.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", logger.Dropped())
	}

	if err := logger.Info("small {=u8}", wire.ArgU8(1)); err != nil {
		t.Fatalf("Info after overflow: %v", err)
	}
	if len(collector.frames) != 1 || len(collector.frames[0]) != FrameHeaderSize+1 {
		t.Errorf("frame after overflow = %v", collector.frames)
	}
}

func TestLoggerOutputErrorPropagates(t *testing.T) {
	failure := errors.New("disk gone")
	collector := &frameCollector{err: failure}
	logger, _, _ := newTestLogger(t, collector, LevelTrace, 0)
	if err := logger.Error("bye"); !errors.Is(err, failure) {
		t.Errorf("Error = %v, want %v", err, failure)
	}
	if logger.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", logger.Dropped())
	}
}

func TestLoggerConcurrentFramesStayIntact(t *testing.T) {
	collector := &frameCollector{}
	logger, table, _ := newTestLogger(t, collector, LevelTrace, 0)

	const goroutines, perGoroutine = 8, 50
	var wait sync.WaitGroup
	for worker := range goroutines {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for sequence := range perGoroutine {
				if err := logger.Info("worker {=u8} step {=u32}",
					wire.ArgU8(uint8(worker)), wire.ArgU32(uint32(sequence))); err != nil {
					t.Errorf("Info: %v", err)
					return
				}
			}
		}()
	}
	wait.Wait()

	if len(collector.frames) != goroutines*perGoroutine {
		t.Fatalf("got %d frames, want %d", len(collector.frames), goroutines*perGoroutine)
	}
	decoder := decode.New(table)
	for _, frame := range collector.frames {
		if _, err := DecodeFrame(decoder, frame); err != nil {
			t.Fatalf("DecodeFrame: %v", err)
		}
	}
}

func TestNewValidation(t *testing.T) {
	output := FrameWriterFunc(func([]byte) error { return nil })
	interner := intern.NewTable(nil)
	tests := []struct {
		name   string
		config Config
	}{
		{"missing output", Config{Interner: interner}},
		{"missing interner", Config{Output: output}},
		{"invalid level", Config{Output: output, Interner: interner, Level: 9}},
		{"negative max frame", Config{Output: output, Interner: interner, MaxFrame: -1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := New(test.config); err == nil {
				t.Error("New succeeded, want error")
			}
		})
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	table, err := intern.FromPatterns([]string{"value {=u32}"}, nil)
	if err != nil {
		t.Fatalf("FromPatterns: %v", err)
	}
	decoder := decode.New(table)
	header := func(tag uint16, level byte) []byte {
		return []byte{byte(tag), byte(tag >> 8), level, 0, 0, 0, 0, 0, 0, 0, 0}
	}
	tests := []struct {
		name  string
		frame []byte
		want  error
	}{
		{"short header", []byte{1, 0, 2}, ErrBadFrame},
		{"bad level", append(header(1, 7), 1, 0, 0, 0), ErrBadFrame},
		{"unknown tag", append(header(9, 2), 1, 0, 0, 0), decode.ErrUnknownID},
		{"truncated args", append(header(1, 2), 1, 0), decode.ErrTruncated},
		{"trailing bytes", append(header(1, 2), 1, 0, 0, 0, 0xff), ErrBadFrame},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := DecodeFrame(decoder, test.frame); !errors.Is(err, test.want) {
				t.Errorf("DecodeFrame = %v, want %v", err, test.want)
			}
		})
	}
}
