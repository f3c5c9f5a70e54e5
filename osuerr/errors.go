// Package osuerr provides the typed errors and warnings returned by the
// beatmap and replay decoders.
package osuerr

import (
	"fmt"
	"sort"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeMalformedHeader      Code = "MALFORMED_HEADER"
	CodeUnknownSection       Code = "UNKNOWN_SECTION"
	CodeUnknownKey           Code = "UNKNOWN_KEY"
	CodeUnparsableNumber     Code = "UNPARSABLE_NUMBER"
	CodeUnsupportedCurve     Code = "UNSUPPORTED_CURVE"
	CodeTruncatedBinary      Code = "TRUNCATED_BINARY"
	CodeDecompressionFailure Code = "DECOMPRESSION_FAILURE"
	CodeUnsupportedVersion   Code = "UNSUPPORTED_VERSION"
	CodeMalformedFrame       Code = "MALFORMED_FRAME"
	CodeMalformedRow         Code = "MALFORMED_ROW"
	CodeMalformedString      Code = "MALFORMED_STRING"
)

// Sentinels for errors.Is. Matching is by code only.
var (
	ErrMalformedHeader      = &Error{Code: CodeMalformedHeader}
	ErrUnparsableNumber     = &Error{Code: CodeUnparsableNumber}
	ErrUnsupportedCurve     = &Error{Code: CodeUnsupportedCurve}
	ErrTruncatedBinary      = &Error{Code: CodeTruncatedBinary}
	ErrDecompressionFailure = &Error{Code: CodeDecompressionFailure}
	ErrUnsupportedVersion   = &Error{Code: CodeUnsupportedVersion}
	ErrMalformedFrame       = &Error{Code: CodeMalformedFrame}
)

// Error is the decoder error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message
	Metadata map[string]string // Offending section/key/offset etc.
	Cause    error             // Wrapped underlying error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(string(e.Code)))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Metadata) > 0 {
		keys := make([]string, 0, len(e.Metadata))
		for k := range e.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%q", k, e.Metadata[k])
		}
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata, Cause: cause}
}

// Truncated reports a read of width bytes at offset that ran past the end
// of the buffer.
func Truncated(field string, offset, width int) *Error {
	return WithMetadata(CodeTruncatedBinary, "unexpected end of buffer", map[string]string{
		"field":  field,
		"offset": fmt.Sprint(offset),
		"width":  fmt.Sprint(width),
	})
}

// Number reports a numeric field that failed to parse.
func Number(section, key, value string, cause error) *Error {
	return WrapWithMetadata(CodeUnparsableNumber, "invalid numeric value", map[string]string{
		"section": section,
		"key":     key,
		"value":   value,
	}, cause)
}

// Warning is a tolerated condition collected while decoding.
type Warning struct {
	Code    Code
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", w.Line, strings.ToLower(string(w.Code)), w.Message)
	}
	return fmt.Sprintf("%s: %s", strings.ToLower(string(w.Code)), w.Message)
}
