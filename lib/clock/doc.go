// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides the timestamp source for log frames.
//
// Frame timestamps come from a [Clock] injected into the logger rather
// than from time.Now, so tests can pin them. Production code uses
// [Real] (wall time) or [Uptime] (time since the clock was created,
// the usual choice on devices without a calendar clock). Tests use
// [Fake], which only moves when told to:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	logger, err := wirelog.New(wirelog.Config{Output: w, Interner: table, Clock: c})
//	c.Advance(1500 * time.Microsecond)
package clock
