// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire defines how a value becomes a stream of tagged,
// recursively encoded bytes.
//
// A producer never ships format strings. Every distinct pattern string
// ("None|Some({=?})", "{=u32}", "Duration {{ secs: {=u64}, nanos: {=u32} }}")
// is replaced by a 16-bit [ID] obtained from an [Interner]; the host
// recovers the pattern from the same table and uses it to decode the
// data bytes that follow the tag.
//
// Every encodable type implements [Format]:
//
//   - Pattern returns the type's pattern string. It is a property of
//     the type, so it must not look at the receiver's value.
//   - EncodeData writes only the value's data bytes. A parent that has
//     already written the tag (an Option selecting its Some variant, a
//     slice after its first element) calls this entry point. It never
//     writes its own tag.
//   - Encode writes the tag followed by the data. Top-level callers use
//     this entry point, usually through [Formatter.Encode].
//
// Most types implement Encode with [EncodeTagged]. Types whose best
// representation is a template of inline scalars ([Duration], [Zip])
// implement Encode with [Formatter.Write] and EncodeData with
// [EncodeSequence], which wraps the template bytes in a format sequence
// terminated by ID 0. Interners never hand out ID 0.
//
// # Wire layout
//
// Tags and fixed-width scalars are little-endian. Lengths are unsigned
// LEB128. Composite layouts:
//
//	Option   [discriminant:u8]                 None=0
//	         [1][element tag:u16][element data] Some=1
//	Result   [0][error tag:u16][error data]     Err=0
//	         [1][value tag:u16][value data]     Ok=1
//	Phantom  [tag:u16]                          no data
//	Slice    [len:uleb128][element tag:u16][data]...  tag omitted when empty
//
// Discriminants follow the variant order of the pattern text and are
// protocol constants.
//
// # Sinks and errors
//
// A [Sink] is append-only. [Buffer] is a fixed-capacity sink that
// returns [ErrFull] when a write does not fit; that error reaches the
// caller unchanged. [Formatter.Encode] rewinds sinks that implement
// [Rewinder] so a failed value leaves no partial bytes behind.
//
// [Never] has no values. Its methods cannot be reached from a valid
// program; reaching them through a nil Never panics.
package wire
