// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "fmt"

// Display ships the String form of a value as {=str}. Unlike every
// other encoding in this package it formats on the producer and
// allocates, so reserve it for types that have no Format of their own.
type Display[T fmt.Stringer] struct {
	Value T
}

func (Display[T]) Pattern() string { return Str("").Pattern() }

func (d Display[T]) Encode(f *Formatter) error { return EncodeTagged(f, d) }

func (d Display[T]) EncodeData(f *Formatter) error { return f.Str(d.Value.String()) }

// Debug ships the %+v rendering of any value as {=str}. Same cost as
// Display.
type Debug struct {
	Value any
}

func (Debug) Pattern() string { return Str("").Pattern() }

func (d Debug) Encode(f *Formatter) error { return EncodeTagged(f, d) }

func (d Debug) EncodeData(f *Formatter) error { return f.Str(fmt.Sprintf("%+v", d.Value)) }
