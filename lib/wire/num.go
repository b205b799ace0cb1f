// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// NonZeroU32 is a uint32 known not to be zero. On the wire it is
// indistinguishable from U32: every method delegates.
type NonZeroU32 struct {
	value uint32
}

// NewNonZeroU32 returns v as a NonZeroU32, or false if v is zero.
func NewNonZeroU32(v uint32) (NonZeroU32, bool) {
	if v == 0 {
		return NonZeroU32{}, false
	}
	return NonZeroU32{value: v}, true
}

// Get returns the underlying integer.
func (n NonZeroU32) Get() uint32 { return n.value }

func (NonZeroU32) Pattern() string                 { return U32(0).Pattern() }
func (n NonZeroU32) Encode(f *Formatter) error     { return U32(n.value).Encode(f) }
func (n NonZeroU32) EncodeData(f *Formatter) error { return U32(n.value).EncodeData(f) }

// NonZeroU64 is a uint64 known not to be zero. It delegates to U64.
type NonZeroU64 struct {
	value uint64
}

// NewNonZeroU64 returns v as a NonZeroU64, or false if v is zero.
func NewNonZeroU64(v uint64) (NonZeroU64, bool) {
	if v == 0 {
		return NonZeroU64{}, false
	}
	return NonZeroU64{value: v}, true
}

// Get returns the underlying integer.
func (n NonZeroU64) Get() uint64 { return n.value }

func (NonZeroU64) Pattern() string                 { return U64(0).Pattern() }
func (n NonZeroU64) Encode(f *Formatter) error     { return U64(n.value).Encode(f) }
func (n NonZeroU64) EncodeData(f *Formatter) error { return U64(n.value).EncodeData(f) }
