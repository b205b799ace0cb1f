// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wirelog is a leveled logger that writes binary frames instead
// of text.
//
// Each log call becomes one frame:
//
//	[message tag: u16][level: u8][timestamp: u64 µs][arguments]
//
// The message tag identifies the interned format string. The arguments
// follow it in the order and widths the format string's parameters
// name. No text formatting happens on the producer: the host side
// ([DecodeFrame]) renders the message using the pattern table.
//
// A frame is staged in a private buffer and handed to the
// [FrameWriter] only after every byte encoded, so a frame that does not
// fit is dropped whole and the caller gets the error (wire.ErrFull for
// an oversized frame). The Logger is safe for concurrent use.
package wirelog
