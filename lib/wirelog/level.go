// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirelog

import (
	"fmt"
	"strings"
)

// Level is a frame severity. The numeric values are written on the
// wire and must not change.
type Level uint8

const (
	LevelTrace Level = 0
	LevelDebug Level = 1
	LevelInfo  Level = 2
	LevelWarn  Level = 3
	LevelError Level = 4
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

// String returns the lowercase level name.
func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}
	return fmt.Sprintf("level(%d)", uint8(level))
}

// Valid reports whether level is one of the defined levels.
func (level Level) Valid() bool { return level <= LevelError }

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(name string) (Level, error) {
	for index, candidate := range levelNames {
		if strings.EqualFold(name, candidate) {
			return Level(index), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q (valid: %s)", name, strings.Join(levelNames[:], ", "))
}

// UnmarshalText implements encoding.TextUnmarshaler so levels can be
// read from configuration files.
func (level *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*level = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (level Level) MarshalText() ([]byte, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("invalid log level %d", uint8(level))
	}
	return []byte(level.String()), nil
}
