// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package decode turns wire-encoded bytes back into text using the
// pattern table the producer interned against.
//
// The decoder replays the producer's rules: read a tag, look up its
// pattern, and let the pattern's parameters say how many bytes follow.
// Patterns are parsed once and cached.
//
// Pattern syntax:
//
//	text          copied to the output
//	{{ and }}     literal braces
//	{=u8} ...     a fixed-width scalar: u8 u16 u32 u64 i8 i16 i32 i64
//	              f32 f64 bool
//	{=str}        LEB128 length then UTF-8 bytes
//	{=[u8]}       LEB128 length then raw bytes
//	{=?}          a nested value: tag then data
//	{=[?]}        LEB128 length, one element tag, then element data
//	a|b|c         an enum; a u8 discriminant picks the variant
//
// The format sequence pattern reads tag-and-data pairs until tag 0 and
// concatenates them.
//
// Malformed input produces an error wrapping one of the package's
// sentinel errors; the decoder never panics on bad bytes.
package decode
