// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"math"
	"time"
)

// DurationPattern is the template a Duration writes.
const DurationPattern = "Duration {{ secs: {=u64}, nanos: {=u32} }}"

// MaxSubsecNanos is the largest sub-second remainder a Duration holds.
const MaxSubsecNanos = 999_999_999

const nanosPerSecond = 1_000_000_000

var (
	// ErrNegativeDuration is returned when converting a negative
	// time.Duration, which has no seconds-and-nanoseconds form.
	ErrNegativeDuration = errors.New("wire: negative duration")

	// ErrDurationOverflow is returned when carrying nanoseconds into
	// seconds overflows the seconds field.
	ErrDurationOverflow = errors.New("wire: duration overflows u64 seconds")
)

// Duration is a span of time held as whole seconds and a sub-second
// remainder in nanoseconds, 0 <= nanos <= MaxSubsecNanos. It encodes
// through a template rather than as tag and nested data.
type Duration struct {
	secs  uint64
	nanos uint32
}

// NewDuration returns secs seconds plus nanos nanoseconds. Nanoseconds
// beyond one second carry into secs.
func NewDuration(secs uint64, nanos uint32) (Duration, error) {
	carry := uint64(nanos / nanosPerSecond)
	if secs > math.MaxUint64-carry {
		return Duration{}, ErrDurationOverflow
	}
	return Duration{secs: secs + carry, nanos: nanos % nanosPerSecond}, nil
}

// DurationOf splits d into whole seconds and the nanosecond remainder.
// The split is exact: Std on the result returns d.
func DurationOf(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, ErrNegativeDuration
	}
	return Duration{
		secs:  uint64(d / time.Second),
		nanos: uint32(d % time.Second),
	}, nil
}

// Secs returns the whole seconds.
func (d Duration) Secs() uint64 { return d.secs }

// SubsecNanos returns the nanoseconds past the last whole second.
func (d Duration) SubsecNanos() uint32 { return d.nanos }

// Std recombines the Duration into a time.Duration. The second result is
// false when the value does not fit in time.Duration's int64
// nanoseconds.
func (d Duration) Std() (time.Duration, bool) {
	const maxSecs = uint64(math.MaxInt64 / nanosPerSecond)
	if d.secs > maxSecs {
		return 0, false
	}
	total := int64(d.secs) * nanosPerSecond
	if total > math.MaxInt64-int64(d.nanos) {
		return 0, false
	}
	return time.Duration(total + int64(d.nanos)), true
}

func (Duration) Pattern() string { return SequencePattern }

// Encode writes the Duration template with secs as u64 then nanos as u32.
func (d Duration) Encode(f *Formatter) error {
	return f.Write(DurationPattern, ArgU64(d.secs), ArgU32(d.nanos))
}

func (d Duration) EncodeData(f *Formatter) error { return EncodeSequence(f, d) }
