// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// OptionPattern lists the Option variants in discriminant order.
const OptionPattern = "None|Some({=?})"

// Option is a value that may be absent. The zero Option is None.
type Option[T Format] struct {
	value   T
	present bool
}

// Some returns a present Option holding value.
func Some[T Format](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an absent Option.
func None[T Format]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.present }

func (Option[T]) Pattern() string { return OptionPattern }

func (o Option[T]) Encode(f *Formatter) error { return EncodeTagged(f, o) }

// EncodeData writes 0 for None. For Some it writes 1, the element's tag,
// and the element's data.
func (o Option[T]) EncodeData(f *Formatter) error {
	if !o.present {
		return f.U8(0)
	}
	return encodeVariant(f, 1, o.value)
}
