// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/wirefmt/lib/wire"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *Pattern
	}{
		{
			name: "option",
			text: wire.OptionPattern,
			want: &Pattern{Variants: [][]Segment{
				{{Literal: "None"}},
				{{Literal: "Some("}, {Param: ParamValue}, {Literal: ")"}},
			}},
		},
		{
			name: "escaped braces",
			text: wire.DurationPattern,
			want: &Pattern{Variants: [][]Segment{{
				{Literal: "Duration { secs: "}, {Param: ParamU64},
				{Literal: ", nanos: "}, {Param: ParamU32}, {Literal: " }"},
			}}},
		},
		{
			name: "slice and bytes",
			text: "{=[?]}{=[u8]}",
			want: &Pattern{Variants: [][]Segment{{{Param: ParamSlice}, {Param: ParamBytes}}}},
		},
		{
			name: "empty variant",
			text: "A|",
			want: &Pattern{Variants: [][]Segment{{{Literal: "A"}}, nil}},
		},
		{
			name: "sequence",
			text: wire.SequencePattern,
			want: &Pattern{Sequence: true},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParsePattern(test.text)
			if err != nil {
				t.Fatalf("ParsePattern(%q): %v", test.text, err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ParsePattern(%q) (-want +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestParsePatternErrors(t *testing.T) {
	for _, text := range []string{"{", "{x}", "{=u8", "}", "{=u128}", "a } b"} {
		if _, err := ParsePattern(text); !errors.Is(err, ErrMalformedPattern) {
			t.Errorf("ParsePattern(%q) error = %v, want ErrMalformedPattern", text, err)
		}
	}
}

func TestIsEnum(t *testing.T) {
	enum, _ := ParsePattern(wire.ResultPattern)
	plain, _ := ParsePattern("PhantomData")
	if !enum.IsEnum() || plain.IsEnum() {
		t.Errorf("IsEnum: result=%v phantom=%v", enum.IsEnum(), plain.IsEnum())
	}
}
