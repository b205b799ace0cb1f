// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/bureau-foundation/wirefmt/lib/clock"
	"github.com/bureau-foundation/wirefmt/lib/wire"
	"github.com/bureau-foundation/wirefmt/lib/wirelog"
)

// sensorReading is logged through the Debug adapter.
type sensorReading struct {
	Channel int
	Celsius float64
}

// bootStage is logged through the Display adapter.
type bootStage uint8

func (stage bootStage) String() string {
	switch stage {
	case 0:
		return "rom"
	case 1:
		return "loader"
	default:
		return fmt.Sprintf("stage%d", uint8(stage))
	}
}

// emitScenario logs one pass of a simulated device session, advancing
// the fake clock between events when one is supplied. Every built-in
// encoding appears at least once.
func emitScenario(logger *wirelog.Logger, fake *clock.FakeClock, cycles int) error {
	step := func(d time.Duration) {
		if fake != nil {
			fake.Advance(d)
		}
	}

	events := []func() error{
		func() error {
			return logger.Info("boot stage {=?} after {=?}",
				wire.ArgValue(wire.Display[bootStage]{Value: 1}),
				wire.ArgValue(mustDuration(0, 120_000_000)))
		},
		func() error {
			return logger.Debug("config flags {=u8} checksum {=u32} ok {=bool}",
				wire.ArgU8(0b1010), wire.ArgU32(0xC0FFEE), wire.ArgBool(true))
		},
		func() error {
			serial, _ := wire.NewNonZeroU64(0x5EED_0001)
			return logger.Info("device serial {=?} phantom {=?}",
				wire.ArgValue(serial), wire.ArgValue(wire.Phantom[wire.U8]{}))
		},
		func() error {
			return logger.Trace("calibration window {=?} gains {=?}",
				wire.ArgValue(wire.Range[wire.U16]{Start: 100, End: 900}),
				wire.ArgValue(wire.Slice[wire.I16]{-3, 0, 7}))
		},
		func() error {
			return logger.Info("link {=?} peer {=?}",
				wire.ArgValue(wire.Pair[wire.Str, wire.U16]{First: "uart1", Second: 115}),
				wire.ArgValue(wire.Some(wire.Str("hub-7"))))
		},
		func() error {
			return logger.Debug("pairing {=?}",
				wire.ArgValue(wire.ZipOf(slices.Values([]int{1, 2}), slices.Values([]string{"a", "b"}))))
		},
	}

	for cycle := range cycles {
		for _, event := range events {
			step(250 * time.Microsecond)
			if err := event(); err != nil {
				return err
			}
		}

		step(time.Millisecond)
		reading := sensorReading{Channel: cycle % 4, Celsius: 21.5 + float64(cycle)/10}
		if err := logger.Info("sensor {=?} raw {=f32}",
			wire.ArgValue(wire.Debug{Value: reading}),
			wire.ArgF32(float32(reading.Celsius))); err != nil {
			return err
		}

		var outcome wire.Result[wire.U32, wire.Str]
		if cycle%3 == 2 {
			outcome = wire.Err[wire.U32](wire.Str("crc mismatch"))
		} else {
			outcome = wire.Ok[wire.U32, wire.Str](wire.U32(512 * (cycle + 1)))
		}
		level := wirelog.LevelInfo
		if !outcome.IsOk() {
			level = wirelog.LevelWarn
		}
		if err := logger.Log(level, "flash write {=?} retries {=?}",
			wire.ArgValue(outcome), wire.ArgValue(wire.None[wire.U8]())); err != nil {
			return err
		}

		if cycle%5 == 4 {
			if err := logger.Error("watchdog fired in {=str} at tick {=u64} temp {=i8}",
				wire.ArgStr("idle"), wire.ArgU64(uint64(cycle)*1000), wire.ArgI8(-12)); err != nil {
				return err
			}
		}
	}
	return nil
}

func mustDuration(secs uint64, nanos uint32) wire.Duration {
	d, err := wire.NewDuration(secs, nanos)
	if err != nil {
		panic("wirefmt-sample: " + err.Error())
	}
	return d
}
