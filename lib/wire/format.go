// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Format is implemented by every type that can be written to a stream.
// See the package documentation for the contract between the three
// methods.
type Format interface {
	// Pattern returns the pattern string describing this type. The
	// result depends only on the type, never on the receiver's value,
	// and may be called on a zero value.
	Pattern() string

	// Encode writes the tag for Pattern followed by the data.
	Encode(f *Formatter) error

	// EncodeData writes the data bytes only.
	EncodeData(f *Formatter) error
}

// SequencePattern is the pattern of a format sequence: a run of
// tag-and-data pairs ended by ID 0. Types that encode themselves with a
// template write use it as their Pattern so they can still be nested
// inside composites.
const SequencePattern = "{=__internal_FormatSequence}"

// Describe returns the ID of T's pattern. It asks interner every time;
// interners are required to answer the same pattern with the same ID,
// so repeated calls agree.
func Describe[T Format](interner Interner) ID {
	var zero T
	return interner.Intern(zero.Pattern())
}

// EncodeTagged writes v's tag followed by v's data. It is the usual
// body of a type's Encode method:
//
//	func (o Option[T]) Encode(f *Formatter) error { return EncodeTagged(f, o) }
func EncodeTagged[T Format](f *Formatter, v T) error {
	if err := f.Tag(v.Pattern()); err != nil {
		return err
	}
	return v.EncodeData(f)
}

// EncodeSequence is the EncodeData body for types whose Encode writes a
// template. The template's own tag and arguments become the body of a
// format sequence, closed with the reserved ID 0.
func EncodeSequence[T Format](f *Formatter, v T) error {
	if err := v.Encode(f); err != nil {
		return err
	}
	return f.WriteTag(0)
}

// encodeVariant writes the discriminant of the active variant, the
// payload's tag, and the payload's data.
func encodeVariant[T Format](f *Formatter, discriminant uint8, payload T) error {
	if err := f.U8(discriminant); err != nil {
		return err
	}
	if err := f.Tag(payload.Pattern()); err != nil {
		return err
	}
	return payload.EncodeData(f)
}
