// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wirelog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/bureau-foundation/wirefmt/lib/decode"
	"github.com/bureau-foundation/wirefmt/lib/wire"
)

// FrameHeaderSize is the number of bytes before a frame's arguments.
const FrameHeaderSize = 2 + 1 + 8

// ErrBadFrame means a frame's header is short or carries an unknown
// level, or its arguments do not exactly fill the frame.
var ErrBadFrame = errors.New("wirelog: malformed frame")

// Record is a decoded frame.
type Record struct {
	// Tag is the message pattern's ID.
	Tag wire.ID

	Level Level

	// Micros is the raw frame timestamp in microseconds.
	Micros uint64

	// Message is the rendered message text.
	Message string
}

// Time returns the timestamp as a time.Time. For frames from an uptime
// clock this is an offset from the Unix epoch.
func (r Record) Time() time.Time {
	return time.UnixMicro(int64(r.Micros)).UTC()
}

// DecodeFrame renders one frame using decoder.
func DecodeFrame(decoder *decode.Decoder, frame []byte) (Record, error) {
	if len(frame) < FrameHeaderSize {
		return Record{}, fmt.Errorf("%w: %d bytes, header needs %d", ErrBadFrame, len(frame), FrameHeaderSize)
	}
	record := Record{
		Tag:    wire.ID(binary.LittleEndian.Uint16(frame[0:2])),
		Level:  Level(frame[2]),
		Micros: binary.LittleEndian.Uint64(frame[3:11]),
	}
	if !record.Level.Valid() {
		return Record{}, fmt.Errorf("%w: level %d", ErrBadFrame, frame[2])
	}
	message, rest, err := decoder.Data(record.Tag, frame[FrameHeaderSize:])
	if err != nil {
		return Record{}, fmt.Errorf("decoding message %d: %w", record.Tag, err)
	}
	if len(rest) != 0 {
		return Record{}, fmt.Errorf("%w: %d trailing bytes after message %d", ErrBadFrame, len(rest), record.Tag)
	}
	record.Message = message
	return record, nil
}
