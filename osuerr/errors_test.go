package osuerr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestIsMatchesByCode(t *testing.T) {
	err := Truncated("score", 40, 4)
	if !errors.Is(err, ErrTruncatedBinary) {
		t.Fatalf("expected truncated binary, got %v", err)
	}
	if errors.Is(err, ErrMalformedHeader) {
		t.Fatal("truncated error must not match malformed header")
	}

	wrapped := fmt.Errorf("read replay: %w", err)
	if !errors.Is(wrapped, ErrTruncatedBinary) {
		t.Fatalf("expected wrapped error to match, got %v", wrapped)
	}
}

func TestNumberKeepsCause(t *testing.T) {
	_, cause := strconv.Atoi("x1")
	err := Number("Difficulty", "HPDrainRate", "x1", cause)

	if !errors.Is(err, ErrUnparsableNumber) {
		t.Fatalf("expected unparsable number, got %v", err)
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected strconv cause, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{`key="HPDrainRate"`, `section="Difficulty"`, `value="x1"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %s", msg, want)
		}
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Code: CodeUnknownSection, Line: 12, Message: "[Fonts]"}
	if got := w.String(); got != "line 12: unknown_section: [Fonts]" {
		t.Fatalf("unexpected warning string %q", got)
	}
}
