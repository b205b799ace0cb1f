// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/wirefmt/lib/wire"
)

// ParamKind is the type of one pattern parameter.
type ParamKind uint8

const (
	ParamU8 ParamKind = iota + 1
	ParamU16
	ParamU32
	ParamU64
	ParamI8
	ParamI16
	ParamI32
	ParamI64
	ParamF32
	ParamF64
	ParamBool
	ParamStr
	ParamBytes
	ParamValue
	ParamSlice
)

var paramKinds = map[string]ParamKind{
	"u8":   ParamU8,
	"u16":  ParamU16,
	"u32":  ParamU32,
	"u64":  ParamU64,
	"i8":   ParamI8,
	"i16":  ParamI16,
	"i32":  ParamI32,
	"i64":  ParamI64,
	"f32":  ParamF32,
	"f64":  ParamF64,
	"bool": ParamBool,
	"str":  ParamStr,
	"[u8]": ParamBytes,
	"?":    ParamValue,
	"[?]":  ParamSlice,
}

// Segment is either literal text or a parameter.
type Segment struct {
	Literal string
	Param   ParamKind // zero for literal segments
}

// Pattern is a parsed pattern string.
type Pattern struct {
	// Variants holds one segment list per enum variant. Non-enum
	// patterns have exactly one variant.
	Variants [][]Segment

	// Sequence is set for wire.SequencePattern.
	Sequence bool
}

// IsEnum reports whether the pattern selects a variant by discriminant.
func (p *Pattern) IsEnum() bool { return len(p.Variants) > 1 }

// ParsePattern parses a pattern string.
func ParsePattern(text string) (*Pattern, error) {
	if text == wire.SequencePattern {
		return &Pattern{Sequence: true}, nil
	}

	pattern := &Pattern{}
	var segments []Segment
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			segments = append(segments, Segment{Literal: literal.String()})
			literal.Reset()
		}
	}

	for index := 0; index < len(text); index++ {
		switch character := text[index]; character {
		case '{':
			if index+1 < len(text) && text[index+1] == '{' {
				literal.WriteByte('{')
				index++
				continue
			}
			if index+1 >= len(text) || text[index+1] != '=' {
				return nil, fmt.Errorf("%w: %q: '{' at offset %d must start {= or {{", ErrMalformedPattern, text, index)
			}
			end := strings.IndexByte(text[index:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q: unterminated parameter at offset %d", ErrMalformedPattern, text, index)
			}
			name := text[index+2 : index+end]
			kind, ok := paramKinds[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q: unknown parameter type %q", ErrMalformedPattern, text, name)
			}
			flushLiteral()
			segments = append(segments, Segment{Param: kind})
			index += end
		case '}':
			if index+1 < len(text) && text[index+1] == '}' {
				literal.WriteByte('}')
				index++
				continue
			}
			return nil, fmt.Errorf("%w: %q: unmatched '}' at offset %d", ErrMalformedPattern, text, index)
		case '|':
			flushLiteral()
			pattern.Variants = append(pattern.Variants, segments)
			segments = nil
		default:
			literal.WriteByte(character)
		}
	}
	flushLiteral()
	pattern.Variants = append(pattern.Variants, segments)

	if len(pattern.Variants) > 256 {
		return nil, fmt.Errorf("%w: %q: %d variants do not fit a u8 discriminant", ErrMalformedPattern, text, len(pattern.Variants))
	}
	return pattern, nil
}
