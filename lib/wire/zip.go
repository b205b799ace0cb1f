// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "iter"

// ZipPattern is the placeholder every Zip encodes as.
const ZipPattern = "Zip(..)"

// Zip walks two sequences in lockstep. Its position inside the
// underlying sequences is not observable, so it encodes as the opaque
// placeholder "Zip(..)" and carries no data.
type Zip[A, B any] struct {
	left  iter.Seq[A]
	right iter.Seq[B]
}

// ZipOf pairs left with right.
func ZipOf[A, B any](left iter.Seq[A], right iter.Seq[B]) Zip[A, B] {
	return Zip[A, B]{left: left, right: right}
}

// All yields pairs until either sequence ends.
func (z Zip[A, B]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextRight, stop := iter.Pull(z.right)
		defer stop()
		for left := range z.left {
			right, ok := nextRight()
			if !ok || !yield(left, right) {
				return
			}
		}
	}
}

func (Zip[A, B]) Pattern() string { return SequencePattern }

func (Zip[A, B]) Encode(f *Formatter) error { return f.Write(ZipPattern) }

func (z Zip[A, B]) EncodeData(f *Formatter) error { return EncodeSequence(f, z) }
