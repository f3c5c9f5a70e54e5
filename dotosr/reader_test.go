package dotosr

import (
	"errors"
	"testing"

	"osureader/osuerr"
)

func TestReaderIntegers(t *testing.T) {
	r := NewReader([]byte{
		0xff,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x01,
	})
	if v, err := r.Int8("i8"); err != nil || v != -1 {
		t.Fatalf("Int8 = %d, %v", v, err)
	}
	if v, err := r.Uint16("u16"); err != nil || v != 0x1234 {
		t.Fatalf("Uint16 = %#x, %v", v, err)
	}
	if v, err := r.Int32("i32"); err != nil || v != 0x12345678 {
		t.Fatalf("Int32 = %#x, %v", v, err)
	}
	if v, err := r.Int64("i64"); err != nil || v != -2 {
		t.Fatalf("Int64 = %d, %v", v, err)
	}
	if v, err := r.Bool("flag"); err != nil || !v {
		t.Fatalf("Bool = %v, %v", v, err)
	}
	if r.Remaining() != 0 || r.Offset() != 16 {
		t.Fatalf("offset %d remaining %d", r.Offset(), r.Remaining())
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if _, err := r.Uint16("first"); err != nil {
		t.Fatal(err)
	}
	_, err := r.Uint32("second")
	var oe *osuerr.Error
	if !errors.As(err, &oe) || oe.Code != osuerr.CodeTruncatedBinary {
		t.Fatalf("err = %v", err)
	}
	if oe.Metadata["field"] != "second" || oe.Metadata["offset"] != "2" || oe.Metadata["width"] != "4" {
		t.Errorf("metadata = %v", oe.Metadata)
	}
	if r.Offset() != 2 {
		t.Errorf("a failed read must not move the cursor, offset %d", r.Offset())
	}
}

func TestULEB128(t *testing.T) {
	cases := []struct {
		in   []byte
		want uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
	}
	for _, c := range cases {
		if got, err := NewReader(c.in).ULEB128("n"); err != nil || got != c.want {
			t.Errorf("ULEB128(% x) = %d, %v", c.in, got, err)
		}
	}

	if _, err := NewReader([]byte{0x80, 0x80}).ULEB128("n"); !errors.Is(err, osuerr.ErrTruncatedBinary) {
		t.Errorf("unterminated: %v", err)
	}
	long := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	if _, err := NewReader(long).ULEB128("n"); err == nil {
		t.Error("11 byte ULEB128 must fail")
	}
}

func TestReaderString(t *testing.T) {
	r := NewReader([]byte{0x00, 0x0b, 0x03, 'a', 'b', 'c', 0x0b, 0x00})
	for _, want := range []string{"", "abc", ""} {
		got, err := r.String("s")
		if err != nil || got != want {
			t.Fatalf("String = %q, %v, want %q", got, err, want)
		}
	}

	if _, err := NewReader([]byte{0x0b, 0x05, 'a'}).String("s"); !errors.Is(err, osuerr.ErrTruncatedBinary) {
		t.Errorf("short payload: %v", err)
	}
	_, err := NewReader([]byte{0x07}).String("s")
	var oe *osuerr.Error
	if !errors.As(err, &oe) || oe.Code != osuerr.CodeMalformedString {
		t.Errorf("bad marker: %v", err)
	}
}
