// Package dotosr decodes .osr replay files.
package dotosr

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"osureader/mods"
	"osureader/osuerr"
	"osureader/osuhash"
	"osureader/ruleset"
)

// Options control a single Decode call.
type Options struct {
	// ParseFrames decompresses and decodes the frame block. Otherwise the
	// block is skipped and Frames stays empty.
	ParseFrames bool
	// StripSeedFrame drops the trailing seed frame from Frames. Seed is
	// filled either way.
	StripSeedFrame bool
	// Decompressor for the frame block; LZMA when nil.
	Decompressor Decompressor
	// Logger receives one line per warning. Nil discards them.
	Logger *log.Logger
}

// Replay is one decoded .osr file.
type Replay struct {
	Mode ruleset.Mode
	// Version of the game client that wrote the file, as yyyymmdd.
	Version    int32
	BeatmapMD5 string
	Player     string
	ReplayMD5  string

	Count300  uint16
	Count100  uint16
	Count50   uint16
	CountGeki uint16
	CountKatu uint16
	CountMiss uint16

	Score    int32
	MaxCombo uint16
	Perfect  bool
	Mods     mods.Mods
	// LifeBar is the raw "time|life," graph; see LifeBarGraph.
	LifeBar   string
	Timestamp time.Time

	Frames []Frame
	// Seed of the play's RNG, taken from the seed frame.
	Seed    int32
	HasSeed bool

	// ScoreID is 0 for offline plays and files older than the field.
	ScoreID int64
	// TargetPracticeAccuracy is only written with the TargetPractice mod.
	TargetPracticeAccuracy float64

	Warnings []osuerr.Warning
}

// DecodeString decodes a replay held in a string.
func DecodeString(data string, opts Options) (*Replay, error) {
	return Decode([]byte(data), opts)
}

// Decode parses a complete .osr file. On error no replay is returned.
func Decode(data []byte, opts Options) (*Replay, error) {
	r := NewReader(data)
	rp := &Replay{}

	mode, err := r.Uint8("mode")
	if err != nil {
		return nil, err
	}
	rp.Mode = ruleset.Mode(mode)
	if !rp.Mode.Valid() {
		return nil, osuerr.WithMetadata(osuerr.CodeMalformedHeader, "unknown game mode", map[string]string{
			"mode": strconv.Itoa(int(mode)),
		})
	}

	if rp.Version, err = r.Int32("version"); err != nil {
		return nil, err
	}
	if rp.BeatmapMD5, err = r.String("beatmap md5"); err != nil {
		return nil, err
	}
	if rp.Player, err = r.String("player"); err != nil {
		return nil, err
	}
	if rp.ReplayMD5, err = r.String("replay md5"); err != nil {
		return nil, err
	}

	counts := []struct {
		field string
		dst   *uint16
	}{
		{"count 300", &rp.Count300},
		{"count 100", &rp.Count100},
		{"count 50", &rp.Count50},
		{"count geki", &rp.CountGeki},
		{"count katu", &rp.CountKatu},
		{"count miss", &rp.CountMiss},
	}
	for _, c := range counts {
		if *c.dst, err = r.Uint16(c.field); err != nil {
			return nil, err
		}
	}

	if rp.Score, err = r.Int32("score"); err != nil {
		return nil, err
	}
	if rp.MaxCombo, err = r.Uint16("max combo"); err != nil {
		return nil, err
	}
	if rp.Perfect, err = r.Bool("perfect"); err != nil {
		return nil, err
	}
	m, err := r.Uint32("mods")
	if err != nil {
		return nil, err
	}
	rp.Mods = mods.Mods(m)
	if rp.LifeBar, err = r.String("life bar"); err != nil {
		return nil, err
	}
	ticks, err := r.Int64("timestamp")
	if err != nil {
		return nil, err
	}
	rp.Timestamp = TicksToTime(ticks)

	size, err := r.Int32("frame block length")
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, osuerr.WithMetadata(osuerr.CodeMalformedFrame, "negative frame block length", map[string]string{
			"length": strconv.Itoa(int(size)),
			"offset": strconv.Itoa(r.Offset() - 4),
		})
	}
	block, err := r.Bytes("frame block", int(size))
	if err != nil {
		return nil, err
	}
	if opts.ParseFrames && size > 0 {
		if err := rp.decodeFrames(block, opts); err != nil {
			return nil, err
		}
	}

	switch {
	case r.Remaining() >= 8:
		rp.ScoreID, _ = r.Int64("score id")
	case r.Remaining() >= 4:
		id, _ := r.Int32("score id")
		rp.ScoreID = int64(id)
	default:
		rp.warn(opts, osuerr.CodeTruncatedBinary, "no online score id")
	}
	if rp.Mods.Has(mods.TargetPractice) && r.Remaining() >= 8 {
		rp.TargetPracticeAccuracy, _ = r.Float64("target practice accuracy")
	}
	return rp, nil
}

func (rp *Replay) decodeFrames(block []byte, opts Options) error {
	dec := opts.Decompressor
	if dec == nil {
		dec = LZMA{}
	}
	text, err := dec.Decompress(block)
	if err != nil {
		return osuerr.WrapWithMetadata(osuerr.CodeDecompressionFailure, "frame block", map[string]string{
			"length": strconv.Itoa(len(block)),
		}, err)
	}
	frames, err := ParseFrames(string(text))
	if err != nil {
		return err
	}
	if n := len(frames); n > 0 && frames[n-1].IsSeed() {
		rp.Seed = int32(frames[n-1].Keys)
		rp.HasSeed = true
		if opts.StripSeedFrame {
			frames = frames[:n-1]
		}
	}
	rp.Frames = frames
	return nil
}

func (rp *Replay) warn(opts Options, code osuerr.Code, msg string) {
	w := osuerr.Warning{Code: code, Message: msg}
	rp.Warnings = append(rp.Warnings, w)
	if opts.Logger != nil {
		opts.Logger.Printf("dotosr: %s", w)
	}
}

// ScoreFields returns the fields the integrity checksum and rank are
// derived from. Exported replays are always passes.
func (rp *Replay) ScoreFields() osuhash.Score {
	return osuhash.Score{
		Mode:       rp.Mode,
		Count300:   int(rp.Count300),
		Count100:   int(rp.Count100),
		Count50:    int(rp.Count50),
		CountGeki:  int(rp.CountGeki),
		CountKatu:  int(rp.CountKatu),
		CountMiss:  int(rp.CountMiss),
		BeatmapMD5: rp.BeatmapMD5,
		MaxCombo:   int(rp.MaxCombo),
		Perfect:    rp.Perfect,
		Player:     rp.Player,
		TotalScore: int64(rp.Score),
		Mods:       rp.Mods,
		Passed:     true,
	}
}

func (rp *Replay) Accuracy() float64 { return osuhash.Accuracy(rp.ScoreFields()) }

func (rp *Replay) Rank() osuhash.Rank { return osuhash.RankOf(rp.ScoreFields()) }

// VerifyIntegrity recomputes the replay checksum and compares it with the
// stored ReplayMD5.
func (rp *Replay) VerifyIntegrity() bool {
	return osuhash.VerifyReplay(rp.ScoreFields(), rp.ReplayMD5)
}

// Duration is the running time of the last frame.
func (rp *Replay) Duration() time.Duration {
	if len(rp.Frames) == 0 {
		return 0
	}
	return time.Duration(rp.Frames[len(rp.Frames)-1].Time) * time.Millisecond
}

// LifePoint is one sample of the life bar graph.
type LifePoint struct {
	Time int
	Life float64 // 0 to 1
}

// LifeBarGraph parses LifeBar.
func (rp *Replay) LifeBarGraph() ([]LifePoint, error) {
	var out []LifePoint
	for pair := range strings.SplitSeq(rp.LifeBar, ",") {
		if pair = strings.TrimSpace(pair); pair == "" {
			continue
		}
		ts, ls, ok := strings.Cut(pair, "|")
		if !ok {
			return nil, osuerr.Number("LifeBar", "sample", pair, errors.New("missing separator"))
		}
		t, err := strconv.Atoi(ts)
		if err != nil {
			return nil, osuerr.Number("LifeBar", "time", pair, err)
		}
		l, err := strconv.ParseFloat(ls, 64)
		if err != nil {
			return nil, osuerr.Number("LifeBar", "life", pair, err)
		}
		out = append(out, LifePoint{Time: t, Life: l})
	}
	return out, nil
}

// .NET ticks are 100ns units since 0001-01-01 UTC.
const unixEpochTicks = 621355968000000000

func TicksToTime(ticks int64) time.Time {
	d := ticks - unixEpochTicks
	return time.Unix(d/10_000_000, (d%10_000_000)*100).UTC()
}

func TimeToTicks(t time.Time) int64 {
	return t.Unix()*10_000_000 + int64(t.Nanosecond()/100) + unixEpochTicks
}
