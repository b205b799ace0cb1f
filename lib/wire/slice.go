// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"
)

// ErrMixedSlice is returned when the elements of a Slice do not all
// share one pattern, which can happen when T is an interface type.
var ErrMixedSlice = errors.New("wire: slice elements have different patterns")

// SlicePattern is the pattern of a slice of Format values.
const SlicePattern = "{=[?]}"

// Slice is a sequence of values of one type. The element tag is written
// once, ahead of the first element, and every element after it is
// written data-only. Every element must have the first element's
// pattern.
type Slice[T Format] []T

func (Slice[T]) Pattern() string { return SlicePattern }

func (s Slice[T]) Encode(f *Formatter) error { return EncodeTagged(f, s) }

// EncodeData writes the length, then for a non-empty slice the element
// tag followed by each element's data.
func (s Slice[T]) EncodeData(f *Formatter) error {
	if err := f.Usize(uint64(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	pattern := s[0].Pattern()
	if err := f.Tag(pattern); err != nil {
		return err
	}
	for index := range s {
		if index > 0 {
			if got := s[index].Pattern(); got != pattern {
				return fmt.Errorf("%w: element %d is %q, element 0 is %q", ErrMixedSlice, index, got, pattern)
			}
		}
		if err := s[index].EncodeData(f); err != nil {
			return err
		}
	}
	return nil
}
