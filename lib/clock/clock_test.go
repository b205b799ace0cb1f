// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	c := Fake(epoch)
	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("Now() = %v, want %v", got, epoch)
	}
	if got := c.Now(); !got.Equal(epoch) {
		t.Errorf("Now() moved without Advance: %v", got)
	}
}

func TestFakeClockAdvanceAndSet(t *testing.T) {
	c := Fake(epoch)
	c.Advance(1500 * time.Microsecond)
	if got := Micros(c.Now()) - Micros(epoch); got != 1500 {
		t.Errorf("advanced %d µs, want 1500", got)
	}
	c.Set(epoch.Add(-time.Hour))
	if got := c.Now(); !got.Equal(epoch.Add(-time.Hour)) {
		t.Errorf("after Set, Now() = %v", got)
	}
}

func TestMicros(t *testing.T) {
	if got := Micros(time.Unix(2, 5000)); got != 2_000_005 {
		t.Errorf("Micros = %d, want 2000005", got)
	}
	if got := Micros(time.Unix(-10, 0)); got != 0 {
		t.Errorf("Micros before epoch = %d, want 0", got)
	}
}

func TestUptimeStartsNearZero(t *testing.T) {
	c := Uptime()
	if got := Micros(c.Now()); got > uint64(time.Minute/time.Microsecond) {
		t.Errorf("fresh uptime clock reads %d µs", got)
	}
	first := c.Now()
	if second := c.Now(); second.Before(first) {
		t.Error("uptime clock went backwards")
	}
}

func TestClockImplementations(t *testing.T) {
	var _ Clock = Real()
	var _ Clock = Uptime()
	var _ Clock = Fake(epoch)
}
