// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// ResultPattern lists the Result variants in discriminant order.
const ResultPattern = "Err({=?})|Ok({=?})"

// Result holds either a success value of type T or a failure value of
// type E. The zero Result is a failure holding E's zero value; for
// Result[T, Never] that failure is the nil Never, and encoding it panics.
type Result[T, E Format] struct {
	value   T
	failure E
	ok      bool
}

// Ok returns a successful Result.
func Ok[T, E Format](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a failed Result.
func Err[T, E Format](failure E) Result[T, E] {
	return Result[T, E]{failure: failure}
}

// Value returns the success value and whether the Result succeeded.
func (r Result[T, E]) Value() (T, bool) { return r.value, r.ok }

// Failure returns the failure value and whether the Result failed.
func (r Result[T, E]) Failure() (E, bool) { return r.failure, !r.ok }

// IsOk reports whether the Result succeeded.
func (r Result[T, E]) IsOk() bool { return r.ok }

func (Result[T, E]) Pattern() string { return ResultPattern }

func (r Result[T, E]) Encode(f *Formatter) error { return EncodeTagged(f, r) }

// EncodeData writes 0 and the failure for Err, 1 and the value for Ok,
// each payload preceded by its own tag.
func (r Result[T, E]) EncodeData(f *Formatter) error {
	if r.ok {
		return encodeVariant(f, 1, r.value)
	}
	return encodeVariant(f, 0, r.failure)
}
