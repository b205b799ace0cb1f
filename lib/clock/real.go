// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Uptime returns a Clock whose epoch is the moment Uptime was called:
// Now reports the Unix epoch plus the elapsed monotonic time. Micros of
// its readings are microseconds since start.
func Uptime() Clock { return &uptimeClock{start: time.Now()} }

type uptimeClock struct {
	start time.Time
}

func (c *uptimeClock) Now() time.Time {
	return time.Unix(0, 0).Add(time.Since(c.start))
}
