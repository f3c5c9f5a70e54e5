package dotosr

import (
	"encoding/binary"
	"fmt"
	"math"

	"osureader/osuerr"
)

const (
	stringAbsent  = 0x00
	stringPresent = 0x0b
)

// Reader is a forward-only cursor over a little-endian byte buffer.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) Offset() int    { return r.off }
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) take(field string, n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, osuerr.Truncated(field, r.off, n)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) Uint8(field string) (uint8, error) {
	b, err := r.take(field, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Int8(field string) (int8, error) {
	v, err := r.Uint8(field)
	return int8(v), err
}

func (r *Reader) Bool(field string) (bool, error) {
	v, err := r.Uint8(field)
	return v != 0, err
}

func (r *Reader) Uint16(field string) (uint16, error) {
	b, err := r.take(field, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) Int16(field string) (int16, error) {
	v, err := r.Uint16(field)
	return int16(v), err
}

func (r *Reader) Uint32(field string) (uint32, error) {
	b, err := r.take(field, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) Int32(field string) (int32, error) {
	v, err := r.Uint32(field)
	return int32(v), err
}

func (r *Reader) Uint64(field string) (uint64, error) {
	b, err := r.take(field, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) Int64(field string) (int64, error) {
	v, err := r.Uint64(field)
	return int64(v), err
}

func (r *Reader) Float64(field string) (float64, error) {
	v, err := r.Uint64(field)
	return math.Float64frombits(v), err
}

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(field string, n int) ([]byte, error) {
	return r.take(field, n)
}

// ULEB128 reads an unsigned LEB128 integer of at most 10 bytes.
func (r *Reader) ULEB128(field string) (uint64, error) {
	start := r.off
	var v uint64
	for shift := uint(0); shift < 70; shift += 7 {
		b, err := r.Uint8(field)
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, osuerr.WithMetadata(osuerr.CodeMalformedString, "ULEB128 longer than 10 bytes", map[string]string{
		"field":  field,
		"offset": fmt.Sprint(start),
	})
}

// String reads the .NET style string osu! writes: 0x00 for an absent
// string, or 0x0b followed by a ULEB128 byte length and UTF-8 bytes.
func (r *Reader) String(field string) (string, error) {
	start := r.off
	marker, err := r.Uint8(field)
	if err != nil {
		return "", err
	}
	switch marker {
	case stringAbsent:
		return "", nil
	case stringPresent:
	default:
		return "", osuerr.WithMetadata(osuerr.CodeMalformedString, fmt.Sprintf("bad string marker 0x%02x", marker), map[string]string{
			"field":  field,
			"offset": fmt.Sprint(start),
		})
	}
	n, err := r.ULEB128(field)
	if err != nil {
		return "", err
	}
	if n > uint64(r.Remaining()) {
		return "", osuerr.Truncated(field, r.off, int(min(n, math.MaxInt32)))
	}
	b, err := r.take(field, int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
