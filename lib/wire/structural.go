// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Phantom marks a type parameter without carrying a value. Every
// Phantom encodes as its tag alone.
type Phantom[T any] struct{}

func (Phantom[T]) Pattern() string { return "PhantomData" }

func (p Phantom[T]) Encode(f *Formatter) error { return EncodeTagged(f, p) }

func (Phantom[T]) EncodeData(*Formatter) error { return nil }

// Never is the uninhabited type. It can instantiate a type parameter,
// for example Result[U32, Never] for an operation that cannot fail, but
// no type can implement it because of the unexported method, so the
// only Never value is nil.
//
// The zero Result[T, Never] is an Err holding that nil Never, so
// declaring one without calling Ok also builds a value that cannot
// exist. Always construct infallible results with Ok.
//
// Calling any method through a nil Never panics. A program that gets
// there has already produced a value that cannot exist, and stops
// rather than writing bytes for it.
type Never interface {
	Format
	uninhabited()
}
