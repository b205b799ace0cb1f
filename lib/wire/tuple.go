// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

const (
	PairPattern   = "({=?}, {=?})"
	TriplePattern = "({=?}, {=?}, {=?})"
	RangePattern  = "{=?}..{=?}"
)

// Pair is a two-element tuple. Each element is written with its own tag.
type Pair[A, B Format] struct {
	First  A
	Second B
}

func (Pair[A, B]) Pattern() string { return PairPattern }

func (p Pair[A, B]) Encode(f *Formatter) error { return EncodeTagged(f, p) }

func (p Pair[A, B]) EncodeData(f *Formatter) error {
	if err := EncodeTagged(f, p.First); err != nil {
		return err
	}
	return EncodeTagged(f, p.Second)
}

// Triple is a three-element tuple.
type Triple[A, B, C Format] struct {
	First  A
	Second B
	Third  C
}

func (Triple[A, B, C]) Pattern() string { return TriplePattern }

func (t Triple[A, B, C]) Encode(f *Formatter) error { return EncodeTagged(f, t) }

func (t Triple[A, B, C]) EncodeData(f *Formatter) error {
	if err := EncodeTagged(f, t.First); err != nil {
		return err
	}
	if err := EncodeTagged(f, t.Second); err != nil {
		return err
	}
	return EncodeTagged(f, t.Third)
}

// Range is the half-open interval [Start, End).
type Range[T Format] struct {
	Start T
	End   T
}

func (Range[T]) Pattern() string { return RangePattern }

func (r Range[T]) Encode(f *Formatter) error { return EncodeTagged(f, r) }

func (r Range[T]) EncodeData(f *Formatter) error {
	if err := EncodeTagged(f, r.Start); err != nil {
		return err
	}
	return EncodeTagged(f, r.End)
}
