package dotosr

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz/lzma"

	"osureader/osuerr"
)

// SEED_DELTA marks the frame osu! appends after the last real frame; its
// key field holds the RNG seed of the play.
const SEED_DELTA = -12345

// Decompressor turns the replay's compressed frame block into frame text.
type Decompressor interface {
	Decompress(src []byte) ([]byte, error)
}

// LZMA decodes the LZMA "alone" stream osu! writes (.lzma header with
// properties, dictionary size and uncompressed length).
type LZMA struct{}

func (LZMA) Decompress(src []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// Keys is the key state of a standard frame. Other modes reuse the field
// with their own meaning; mania stores one bit per column.
type Keys int32

const (
	KeyM1 Keys = 1 << iota
	KeyM2
	KeyK1
	KeyK2
	KeySmoke
)

func (k Keys) Has(want Keys) bool { return k&want == want }

// Frame is one cursor sample.
type Frame struct {
	// Delta is the time since the previous frame in ms.
	Delta int32
	// Time is the running sum of deltas.
	Time int64
	X, Y float32
	Keys Keys
}

func (f Frame) IsSeed() bool { return f.Delta == SEED_DELTA }

// ParseFrames decodes "delta|x|y|keys" frames separated by commas. Seed
// frames do not advance the running time.
func ParseFrames(text string) ([]Frame, error) {
	// "w|x|y|z," repeated; count commas for a tight allocation
	frames := make([]Frame, 0, strings.Count(text, ","))
	var now int64
	index := 0
	for raw := range strings.SplitSeq(text, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		f, err := parseFrame(raw, index)
		if err != nil {
			return nil, err
		}
		if !f.IsSeed() {
			now += int64(f.Delta)
		}
		f.Time = now
		frames = append(frames, f)
		index++
	}
	return frames, nil
}

func parseFrame(raw string, index int) (Frame, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 4 {
		return Frame{}, frameError(index, raw, "want 4 fields", nil)
	}
	delta, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return Frame{}, frameError(index, raw, "delta", err)
	}
	x, err := strconv.ParseFloat(parts[1], 32)
	if err != nil {
		return Frame{}, frameError(index, raw, "x", err)
	}
	y, err := strconv.ParseFloat(parts[2], 32)
	if err != nil {
		return Frame{}, frameError(index, raw, "y", err)
	}
	keys, err := strconv.ParseInt(parts[3], 10, 32)
	if err != nil {
		return Frame{}, frameError(index, raw, "keys", err)
	}
	return Frame{Delta: int32(delta), X: float32(x), Y: float32(y), Keys: Keys(keys)}, nil
}

func frameError(index int, raw, msg string, cause error) error {
	return osuerr.WrapWithMetadata(osuerr.CodeMalformedFrame, msg, map[string]string{
		"frame": strconv.Itoa(index),
		"text":  raw,
	}, cause)
}

func (f Frame) String() string {
	return strconv.Itoa(int(f.Delta)) + "|" +
		strconv.FormatFloat(float64(f.X), 'g', -1, 32) + "|" +
		strconv.FormatFloat(float64(f.Y), 'g', -1, 32) + "|" +
		strconv.Itoa(int(f.Keys))
}
