// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"encoding/binary"
	"fmt"
)

// reader consumes little-endian scalars from a byte slice.
type reader struct {
	data   []byte
	offset int
}

func (r *reader) remaining() []byte { return r.data[r.offset:] }

func (r *reader) take(count int) ([]byte, error) {
	if count < 0 || count > len(r.data)-r.offset {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, count, r.offset, len(r.data)-r.offset)
	}
	chunk := r.data[r.offset : r.offset+count]
	r.offset += count
	return chunk, nil
}

func (r *reader) u8() (uint8, error) {
	chunk, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return chunk[0], nil
}

func (r *reader) u16() (uint16, error) {
	chunk, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(chunk), nil
}

func (r *reader) u32() (uint32, error) {
	chunk, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(chunk), nil
}

func (r *reader) u64() (uint64, error) {
	chunk, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(chunk), nil
}

func (r *reader) uvarint() (uint64, error) {
	value, length := binary.Uvarint(r.remaining())
	if length == 0 {
		return 0, fmt.Errorf("%w: length prefix at offset %d", ErrTruncated, r.offset)
	}
	if length < 0 {
		return 0, fmt.Errorf("%w: length prefix at offset %d overflows", ErrMalformedData, r.offset)
	}
	r.offset += length
	return value, nil
}

// lengthPrefixed reads a LEB128 length and that many bytes.
func (r *reader) lengthPrefixed() ([]byte, error) {
	length, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	if length > uint64(len(r.data)-r.offset) {
		return nil, fmt.Errorf("%w: length %d at offset %d exceeds remaining %d bytes",
			ErrTruncated, length, r.offset, len(r.data)-r.offset)
	}
	return r.take(int(length))
}
