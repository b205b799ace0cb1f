// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"math"
)

// ArgKind identifies the wire width and signedness of a template
// argument.
type ArgKind uint8

const (
	KindU8 ArgKind = iota
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindBool
	KindStr
	KindBytes
	// KindValue fills a {=?} slot: the value's tag followed by its data.
	KindValue
)

// String returns the parameter spelling used in patterns.
func (kind ArgKind) String() string {
	switch kind {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindBool:
		return "bool"
	case KindStr:
		return "str"
	case KindBytes:
		return "[u8]"
	case KindValue:
		return "?"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(kind))
	}
}

// Arg is one typed argument of a template write. Build Args with the
// Arg* constructors.
type Arg struct {
	kind  ArgKind
	bits  uint64
	text  string
	data  []byte
	value Format
}

// Kind returns the argument's wire kind.
func (arg Arg) Kind() ArgKind { return arg.kind }

// ArgU8 through ArgI64 fill integer slots of the matching width. Signed
// values are stored as their two's complement bits.
func ArgU8(v uint8) Arg   { return Arg{kind: KindU8, bits: uint64(v)} }
func ArgU16(v uint16) Arg { return Arg{kind: KindU16, bits: uint64(v)} }
func ArgU32(v uint32) Arg { return Arg{kind: KindU32, bits: uint64(v)} }
func ArgU64(v uint64) Arg { return Arg{kind: KindU64, bits: v} }
func ArgI8(v int8) Arg    { return Arg{kind: KindI8, bits: uint64(uint8(v))} }
func ArgI16(v int16) Arg  { return Arg{kind: KindI16, bits: uint64(uint16(v))} }
func ArgI32(v int32) Arg  { return Arg{kind: KindI32, bits: uint64(uint32(v))} }
func ArgI64(v int64) Arg  { return Arg{kind: KindI64, bits: uint64(v)} }

// ArgF32 and ArgF64 fill float slots with the IEEE 754 bits of v.
func ArgF32(v float32) Arg { return Arg{kind: KindF32, bits: uint64(math.Float32bits(v))} }
func ArgF64(v float64) Arg { return Arg{kind: KindF64, bits: math.Float64bits(v)} }

// ArgBool fills a {=bool} slot, written as one byte 0 or 1.
func ArgBool(v bool) Arg {
	if v {
		return Arg{kind: KindBool, bits: 1}
	}
	return Arg{kind: KindBool}
}

// ArgStr and ArgBytes fill {=str} and {=[u8]} slots. Both are written
// with a LEB128 length prefix.
func ArgStr(v string) Arg   { return Arg{kind: KindStr, text: v} }
func ArgBytes(v []byte) Arg { return Arg{kind: KindBytes, data: v} }

// ArgValue fills a {=?} slot with any Format value.
func ArgValue(v Format) Arg { return Arg{kind: KindValue, value: v} }

func (arg *Arg) encode(f *Formatter) error {
	switch arg.kind {
	case KindU8, KindI8, KindBool:
		return f.U8(uint8(arg.bits))
	case KindU16, KindI16:
		return f.U16(uint16(arg.bits))
	case KindU32, KindI32, KindF32:
		return f.U32(uint32(arg.bits))
	case KindU64, KindI64, KindF64:
		return f.U64(arg.bits)
	case KindStr:
		return f.Str(arg.text)
	case KindBytes:
		return f.Bytes(arg.data)
	case KindValue:
		return arg.value.Encode(f)
	default:
		panic(fmt.Sprintf("wire: argument of unknown kind %d", uint8(arg.kind)))
	}
}
