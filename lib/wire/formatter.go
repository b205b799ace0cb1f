// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"math"
)

// Formatter forwards primitive writes to a Sink and resolves pattern
// strings to IDs through an Interner. It holds no state between writes
// beyond a scratch array, so one Formatter can be reused for any number
// of values. A Formatter must not be used by more than one goroutine at
// a time.
type Formatter struct {
	sink     Sink
	interner Interner
	scratch  [binary.MaxVarintLen64]byte
}

// NewFormatter returns a Formatter writing to sink.
func NewFormatter(sink Sink, interner Interner) *Formatter {
	return &Formatter{sink: sink, interner: interner}
}

// Sink returns the destination this Formatter writes to.
func (f *Formatter) Sink() Sink { return f.sink }

// Interner returns the interner used to resolve patterns.
func (f *Formatter) Interner() Interner { return f.interner }

// Encode writes v's tag and data. If the sink implements Rewinder and
// the encoding fails, every byte written for v is discarded before the
// error is returned.
func (f *Formatter) Encode(v Format) error {
	rewinder, canRewind := f.sink.(Rewinder)
	mark := 0
	if canRewind {
		mark = rewinder.Len()
	}
	if err := v.Encode(f); err != nil {
		if canRewind {
			rewinder.Truncate(mark)
		}
		return err
	}
	return nil
}

// Tag interns pattern and writes the resulting ID.
func (f *Formatter) Tag(pattern string) error {
	return f.WriteTag(f.interner.Intern(pattern))
}

// WriteTag writes an already resolved ID.
func (f *Formatter) WriteTag(id ID) error {
	return f.U16(uint16(id))
}

// U8 writes one byte. Discriminants are written with U8.
func (f *Formatter) U8(v uint8) error {
	f.scratch[0] = v
	return f.sink.Append(f.scratch[:1])
}

// U16 writes v little-endian.
func (f *Formatter) U16(v uint16) error {
	binary.LittleEndian.PutUint16(f.scratch[:2], v)
	return f.sink.Append(f.scratch[:2])
}

// U32 writes v little-endian.
func (f *Formatter) U32(v uint32) error {
	binary.LittleEndian.PutUint32(f.scratch[:4], v)
	return f.sink.Append(f.scratch[:4])
}

// U64 writes v little-endian.
func (f *Formatter) U64(v uint64) error {
	binary.LittleEndian.PutUint64(f.scratch[:8], v)
	return f.sink.Append(f.scratch[:8])
}

// I8 writes v as its two's complement byte.
func (f *Formatter) I8(v int8) error { return f.U8(uint8(v)) }

// I16 writes v little-endian, two's complement.
func (f *Formatter) I16(v int16) error { return f.U16(uint16(v)) }

// I32 writes v little-endian, two's complement.
func (f *Formatter) I32(v int32) error { return f.U32(uint32(v)) }

// I64 writes v little-endian, two's complement.
func (f *Formatter) I64(v int64) error { return f.U64(uint64(v)) }

// F32 writes the IEEE 754 bits of v. No formatting happens on the
// producer.
func (f *Formatter) F32(v float32) error { return f.U32(math.Float32bits(v)) }

// F64 writes the IEEE 754 bits of v.
func (f *Formatter) F64(v float64) error { return f.U64(math.Float64bits(v)) }

// Bool writes 1 for true and 0 for false.
func (f *Formatter) Bool(v bool) error {
	if v {
		return f.U8(1)
	}
	return f.U8(0)
}

// Usize writes v as unsigned LEB128. Lengths use this encoding.
func (f *Formatter) Usize(v uint64) error {
	length := binary.PutUvarint(f.scratch[:], v)
	return f.sink.Append(f.scratch[:length])
}

// Str writes the length of s followed by its bytes.
func (f *Formatter) Str(s string) error {
	if err := f.Usize(uint64(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	if stringSink, ok := f.sink.(StringSink); ok {
		return stringSink.AppendString(s)
	}
	return f.sink.Append([]byte(s))
}

// Bytes writes the length of data followed by data.
func (f *Formatter) Bytes(data []byte) error {
	if err := f.Usize(uint64(len(data))); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return f.sink.Append(data)
}

// Write interns pattern, writes its tag, then writes each argument in
// order using the argument's own width. The arguments must match the
// pattern's parameters one for one; the producer does not parse the
// pattern to check.
//
//	f.Write("Duration {{ secs: {=u64}, nanos: {=u32} }}", ArgU64(secs), ArgU32(nanos))
func (f *Formatter) Write(pattern string, args ...Arg) error {
	if err := f.Tag(pattern); err != nil {
		return err
	}
	return f.Args(args...)
}

// Args writes each argument in order without a tag. Frame writers use
// it to put a header between a message tag and its arguments.
func (f *Formatter) Args(args ...Arg) error {
	for index := range args {
		if err := args[index].encode(f); err != nil {
			return err
		}
	}
	return nil
}
