package dotosu

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"osureader/osuerr"
)

var (
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// normaliseText returns data as UTF-8. Files saved by some editors carry a
// UTF-16 or UTF-32 byte order mark; without one the bytes are taken as UTF-8.
func normaliseText(data []byte) (string, error) {
	var dec *encoding.Decoder
	switch {
	// UTF-32LE must be checked before BOMOverride sees FF FE as UTF-16LE.
	case bytes.HasPrefix(data, bomUTF32LE):
		dec = utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder()
	case bytes.HasPrefix(data, bomUTF32BE):
		dec = utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder()
	default:
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
		if err != nil {
			return "", osuerr.Wrap(osuerr.CodeMalformedHeader, "cannot decode text encoding", err)
		}
		return string(out), nil
	}
	out, err := dec.Bytes(data)
	if err != nil {
		return "", osuerr.Wrap(osuerr.CodeMalformedHeader, "cannot decode UTF-32 text", err)
	}
	return string(out), nil
}
