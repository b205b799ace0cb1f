// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/bureau-foundation/wirefmt/lib/wire"
)

var (
	// ErrUnknownID means a tag names no pattern in the table.
	ErrUnknownID = errors.New("decode: unknown pattern ID")

	// ErrTruncated means the data ended inside a value.
	ErrTruncated = errors.New("decode: truncated data")

	// ErrBadDiscriminant means an enum discriminant has no variant.
	ErrBadDiscriminant = errors.New("decode: discriminant out of range")

	// ErrMalformedPattern means a pattern string does not parse.
	ErrMalformedPattern = errors.New("decode: malformed pattern")

	// ErrMalformedData covers any other inconsistency in the bytes.
	ErrMalformedData = errors.New("decode: malformed data")

	// ErrTooDeep means values nest deeper than MaxDepth.
	ErrTooDeep = errors.New("decode: nesting too deep")
)

// MaxDepth bounds how deeply nested values may be.
const MaxDepth = 128

// maxZeroWidthElements caps slices whose elements carry no data, which
// the remaining byte count cannot bound.
const maxZeroWidthElements = 1 << 16

// minOutputLimit and outputPerInputByte bound the rendered text of one
// value to minOutputLimit plus outputPerInputByte for every input byte.
// Nested slices of data-less elements would otherwise expand a small
// frame into an unbounded amount of text.
const (
	minOutputLimit     = 1 << 20
	outputPerInputByte = 64
)

// Table resolves IDs to pattern strings. *intern.Table implements it.
type Table interface {
	Lookup(id wire.ID) (string, bool)
}

// Decoder renders encoded values as text. It is safe for concurrent use.
type Decoder struct {
	table Table

	mu       sync.Mutex
	patterns map[wire.ID]*Pattern
}

// New returns a Decoder resolving tags through table.
func New(table Table) *Decoder {
	return &Decoder{table: table, patterns: make(map[wire.ID]*Pattern)}
}

// Pattern returns the parsed pattern for id.
func (d *Decoder) Pattern(id wire.ID) (*Pattern, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if pattern, ok := d.patterns[id]; ok {
		return pattern, nil
	}
	text, ok := d.table.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	pattern, err := ParsePattern(text)
	if err != nil {
		return nil, err
	}
	d.patterns[id] = pattern
	return pattern, nil
}

// Value decodes one tagged value from the front of data. It returns the
// rendered text and the bytes after the value.
func (d *Decoder) Value(data []byte) (string, []byte, error) {
	state := newDecodeState(d, data)
	if err := state.tagged(0); err != nil {
		return "", nil, err
	}
	return state.output.String(), state.reader.remaining(), nil
}

// Data decodes the data of a value whose tag was already read.
func (d *Decoder) Data(id wire.ID, data []byte) (string, []byte, error) {
	state := newDecodeState(d, data)
	if err := state.data(id, 0); err != nil {
		return "", nil, err
	}
	return state.output.String(), state.reader.remaining(), nil
}

type decodeState struct {
	decoder     *Decoder
	reader      reader
	output      strings.Builder
	outputLimit int
}

func newDecodeState(decoder *Decoder, data []byte) *decodeState {
	return &decodeState{
		decoder:     decoder,
		reader:      reader{data: data},
		outputLimit: minOutputLimit + outputPerInputByte*len(data),
	}
}

func (s *decodeState) tagged(depth int) error {
	tag, err := s.reader.u16()
	if err != nil {
		return err
	}
	return s.data(wire.ID(tag), depth)
}

func (s *decodeState) data(id wire.ID, depth int) error {
	if depth > MaxDepth {
		return ErrTooDeep
	}
	if s.output.Len() > s.outputLimit {
		return fmt.Errorf("%w: rendered text exceeds %d bytes", ErrMalformedData, s.outputLimit)
	}
	pattern, err := s.decoder.Pattern(id)
	if err != nil {
		return err
	}

	if pattern.Sequence {
		for {
			tag, err := s.reader.u16()
			if err != nil {
				return err
			}
			if tag == 0 {
				return nil
			}
			if err := s.data(wire.ID(tag), depth+1); err != nil {
				return err
			}
		}
	}

	segments := pattern.Variants[0]
	if pattern.IsEnum() {
		discriminant, err := s.reader.u8()
		if err != nil {
			return err
		}
		if int(discriminant) >= len(pattern.Variants) {
			return fmt.Errorf("%w: %d for pattern ID %d with %d variants",
				ErrBadDiscriminant, discriminant, id, len(pattern.Variants))
		}
		segments = pattern.Variants[discriminant]
	}

	for _, segment := range segments {
		if segment.Param == 0 {
			s.output.WriteString(segment.Literal)
			continue
		}
		if err := s.param(segment.Param, depth); err != nil {
			return err
		}
	}
	return nil
}

func (s *decodeState) param(kind ParamKind, depth int) error {
	switch kind {
	case ParamU8, ParamI8, ParamBool:
		value, err := s.reader.u8()
		if err != nil {
			return err
		}
		switch kind {
		case ParamU8:
			s.output.WriteString(strconv.FormatUint(uint64(value), 10))
		case ParamI8:
			s.output.WriteString(strconv.FormatInt(int64(int8(value)), 10))
		default:
			if value > 1 {
				return fmt.Errorf("%w: bool byte %d", ErrMalformedData, value)
			}
			s.output.WriteString(strconv.FormatBool(value == 1))
		}
	case ParamU16, ParamI16:
		value, err := s.reader.u16()
		if err != nil {
			return err
		}
		if kind == ParamU16 {
			s.output.WriteString(strconv.FormatUint(uint64(value), 10))
		} else {
			s.output.WriteString(strconv.FormatInt(int64(int16(value)), 10))
		}
	case ParamU32, ParamI32, ParamF32:
		value, err := s.reader.u32()
		if err != nil {
			return err
		}
		switch kind {
		case ParamU32:
			s.output.WriteString(strconv.FormatUint(uint64(value), 10))
		case ParamI32:
			s.output.WriteString(strconv.FormatInt(int64(int32(value)), 10))
		default:
			s.output.WriteString(strconv.FormatFloat(float64(math.Float32frombits(value)), 'g', -1, 32))
		}
	case ParamU64, ParamI64, ParamF64:
		value, err := s.reader.u64()
		if err != nil {
			return err
		}
		switch kind {
		case ParamU64:
			s.output.WriteString(strconv.FormatUint(value, 10))
		case ParamI64:
			s.output.WriteString(strconv.FormatInt(int64(value), 10))
		default:
			s.output.WriteString(strconv.FormatFloat(math.Float64frombits(value), 'g', -1, 64))
		}
	case ParamStr:
		text, err := s.reader.lengthPrefixed()
		if err != nil {
			return err
		}
		s.output.Write(text)
	case ParamBytes:
		raw, err := s.reader.lengthPrefixed()
		if err != nil {
			return err
		}
		s.output.WriteByte('[')
		for index, value := range raw {
			if index > 0 {
				s.output.WriteString(", ")
			}
			s.output.WriteString(strconv.Itoa(int(value)))
		}
		s.output.WriteByte(']')
	case ParamValue:
		return s.tagged(depth + 1)
	case ParamSlice:
		return s.slice(depth)
	default:
		return fmt.Errorf("%w: parameter kind %d", ErrMalformedPattern, kind)
	}
	return nil
}

func (s *decodeState) slice(depth int) error {
	length, err := s.reader.uvarint()
	if err != nil {
		return err
	}
	s.output.WriteByte('[')
	if length > 0 {
		elementTag, err := s.reader.u16()
		if err != nil {
			return err
		}
		element, err := s.decoder.Pattern(wire.ID(elementTag))
		if err != nil {
			return err
		}
		// Elements with data take at least one byte each; tag-only
		// elements take none, so their count gets a fixed ceiling.
		if zeroWidth(element) {
			if length > maxZeroWidthElements {
				return fmt.Errorf("%w: slice of %d data-less elements", ErrMalformedData, length)
			}
		} else if length > uint64(len(s.reader.remaining())) {
			return fmt.Errorf("%w: slice of %d elements in %d bytes", ErrTruncated, length, len(s.reader.remaining()))
		}
		for index := uint64(0); index < length; index++ {
			if index > 0 {
				s.output.WriteString(", ")
			}
			if err := s.data(wire.ID(elementTag), depth+1); err != nil {
				return err
			}
		}
	}
	s.output.WriteByte(']')
	return nil
}

// zeroWidth reports whether values of the pattern carry no data bytes.
func zeroWidth(pattern *Pattern) bool {
	if pattern.Sequence || pattern.IsEnum() {
		return false
	}
	for _, segment := range pattern.Variants[0] {
		if segment.Param != 0 {
			return false
		}
	}
	return true
}
