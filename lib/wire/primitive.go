// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Scalar wrappers. Each has the pattern "{=<kind>}" and writes its
// value at the kind's fixed width.

type (
	U8    uint8
	U16   uint16
	U32   uint32
	U64   uint64
	I8    int8
	I16   int16
	I32   int32
	I64   int64
	F32   float32
	F64   float64
	Bool  bool
	Str   string
	Bytes []byte
)

func (U8) Pattern() string                    { return "{=u8}" }
func (v U8) Encode(f *Formatter) error        { return EncodeTagged(f, v) }
func (v U8) EncodeData(f *Formatter) error    { return f.U8(uint8(v)) }
func (U16) Pattern() string                   { return "{=u16}" }
func (v U16) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v U16) EncodeData(f *Formatter) error   { return f.U16(uint16(v)) }
func (U32) Pattern() string                   { return "{=u32}" }
func (v U32) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v U32) EncodeData(f *Formatter) error   { return f.U32(uint32(v)) }
func (U64) Pattern() string                   { return "{=u64}" }
func (v U64) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v U64) EncodeData(f *Formatter) error   { return f.U64(uint64(v)) }
func (I8) Pattern() string                    { return "{=i8}" }
func (v I8) Encode(f *Formatter) error        { return EncodeTagged(f, v) }
func (v I8) EncodeData(f *Formatter) error    { return f.I8(int8(v)) }
func (I16) Pattern() string                   { return "{=i16}" }
func (v I16) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v I16) EncodeData(f *Formatter) error   { return f.I16(int16(v)) }
func (I32) Pattern() string                   { return "{=i32}" }
func (v I32) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v I32) EncodeData(f *Formatter) error   { return f.I32(int32(v)) }
func (I64) Pattern() string                   { return "{=i64}" }
func (v I64) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v I64) EncodeData(f *Formatter) error   { return f.I64(int64(v)) }
func (F32) Pattern() string                   { return "{=f32}" }
func (v F32) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v F32) EncodeData(f *Formatter) error   { return f.F32(float32(v)) }
func (F64) Pattern() string                   { return "{=f64}" }
func (v F64) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v F64) EncodeData(f *Formatter) error   { return f.F64(float64(v)) }
func (Bool) Pattern() string                  { return "{=bool}" }
func (v Bool) Encode(f *Formatter) error      { return EncodeTagged(f, v) }
func (v Bool) EncodeData(f *Formatter) error  { return f.Bool(bool(v)) }
func (Str) Pattern() string                   { return "{=str}" }
func (v Str) Encode(f *Formatter) error       { return EncodeTagged(f, v) }
func (v Str) EncodeData(f *Formatter) error   { return f.Str(string(v)) }
func (Bytes) Pattern() string                 { return "{=[u8]}" }
func (v Bytes) Encode(f *Formatter) error     { return EncodeTagged(f, v) }
func (v Bytes) EncodeData(f *Formatter) error { return f.Bytes([]byte(v)) }
