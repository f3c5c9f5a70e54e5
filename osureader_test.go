package osureader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/ulikunitz/xz/lzma"
	"golang.org/x/sync/errgroup"

	"osureader/osuerr"
	"osureader/ruleset"
)

const excerpt = "dotosu/testdata/nanatsu_koyoto_excerpt.osu"

func readExcerpt(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(excerpt)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// replayBytes builds a small standard-mode replay with four frames and a
// seed frame.
func replayBytes(t *testing.T) []byte {
	t.Helper()
	var block bytes.Buffer
	lw, err := lzma.NewWriter(&block)
	if err != nil {
		t.Fatal(err)
	}
	lw.Write([]byte("0|256|-500|0,-1|256|-500|0,16|100|200|1,17|101|201|5,-12345|0|0|777,"))
	if err := lw.Close(); err != nil {
		t.Fatal(err)
	}

	var w bytes.Buffer
	le := func(v any) { binary.Write(&w, binary.LittleEndian, v) }
	str := func(s string) {
		w.WriteByte(0x0b)
		w.WriteByte(byte(len(s)))
		w.WriteString(s)
	}
	w.WriteByte(byte(ruleset.Standard))
	le(int32(20181231))
	str("da8aae79c8f3306b5d65ec951874a7fb")
	str("cptnXn")
	str("391edbb7774bfa13bd252d5b92c72637")
	for _, c := range []uint16{1960, 23, 0, 240, 11, 0} {
		le(c)
	}
	le(int32(116845640))
	le(uint16(2384))
	w.WriteByte(0)
	le(uint32(0))
	w.WriteByte(0)
	le(int64(636818976000000000))
	le(int32(block.Len()))
	w.Write(block.Bytes())
	le(int64(1740197996))
	return w.Bytes()
}

func TestParseBeatmapEntryPointsAgree(t *testing.T) {
	data := readExcerpt(t)
	for _, opts := range []Options{{}, {SliderPaths: true}} {
		a, err := ParseBeatmap(data, opts)
		if err != nil {
			t.Fatal(err)
		}
		b, err := ParseBeatmapString(string(data), opts)
		if err != nil {
			t.Fatal(err)
		}
		c, err := ParseBeatmapReader(bytes.NewReader(data), opts)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(a, c) {
			t.Errorf("entry points disagree with %+v", opts)
		}
		if a.FormatVersion != 14 || a.Metadata.Title != "Nanatsu Koyoto" {
			t.Errorf("version %d title %q", a.FormatVersion, a.Metadata.Title)
		}
	}
}

func TestParseReplayEntryPointsAgree(t *testing.T) {
	data := replayBytes(t)
	opts := Options{ParseFrames: true}
	a, err := ParseReplay(data, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseReplayString(string(data), opts)
	if err != nil {
		t.Fatal(err)
	}
	c, err := ParseReplayReader(bytes.NewReader(data), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) || !reflect.DeepEqual(a, c) {
		t.Error("entry points disagree")
	}
	if !a.VerifyIntegrity() {
		t.Error("integrity check failed")
	}
}

func TestParseFramesToggle(t *testing.T) {
	data := replayBytes(t)
	on, err := ParseReplay(data, Options{ParseFrames: true})
	if err != nil {
		t.Fatal(err)
	}
	off, err := ParseReplay(data, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(on.Frames) != 5 || len(off.Frames) != 0 {
		t.Fatalf("frames on %d off %d", len(on.Frames), len(off.Frames))
	}
	if !on.HasSeed || on.Seed != 777 || off.HasSeed {
		t.Errorf("seed on %v/%d off %v", on.HasSeed, on.Seed, off.HasSeed)
	}

	// Everything outside the frame block is identical.
	on.Frames, on.Seed, on.HasSeed = nil, 0, false
	if !reflect.DeepEqual(on, off) {
		t.Errorf("headers differ:\n%+v\n%+v", on, off)
	}
}

func TestStripSeedFrame(t *testing.T) {
	rp, err := ParseReplay(replayBytes(t), Options{ParseFrames: true, StripSeedFrame: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(rp.Frames) != 4 || rp.Seed != 777 {
		t.Errorf("frames %d seed %d", len(rp.Frames), rp.Seed)
	}
	if last := rp.Frames[len(rp.Frames)-1]; last.Time != 32 {
		t.Errorf("last frame time %d", last.Time)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("OSU_SLIDER_PATHS", "true")
	t.Setenv("OSU_PARSE_FRAMES", "1")
	t.Setenv("OSU_STRIP_SEED_FRAME", "false")
	opts, err := OptionsFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Options{SliderPaths: true, ParseFrames: true}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("opts = %+v", opts)
	}

	t.Setenv("OSU_PARSE_FRAMES", "sometimes")
	if _, err := OptionsFromEnv(); err == nil || !strings.HasPrefix(err.Error(), "parse env: ") {
		t.Errorf("err = %v", err)
	}
}

func TestFatalErrorsReturnNoModel(t *testing.T) {
	bm, err := ParseBeatmapString("not a beatmap\n", Options{})
	if bm != nil || !errors.Is(err, osuerr.ErrMalformedHeader) {
		t.Errorf("beatmap %v err %v", bm, err)
	}
	data := replayBytes(t)
	rp, err := ParseReplay(data[:40], Options{})
	if rp != nil || !errors.Is(err, osuerr.ErrTruncatedBinary) {
		t.Errorf("replay %v err %v", rp, err)
	}
}

func TestConcurrentParsing(t *testing.T) {
	osu := readExcerpt(t)
	osr := replayBytes(t)
	want, err := ParseBeatmap(osu, Options{SliderPaths: true})
	if err != nil {
		t.Fatal(err)
	}

	var g errgroup.Group
	for i := range 16 {
		g.Go(func() error {
			// alternate settings so parses with different options overlap
			opts := Options{SliderPaths: i%2 == 0, ParseFrames: i%3 == 0}
			bm, err := ParseBeatmap(osu, opts)
			if err != nil {
				return err
			}
			for _, s := range bm.Sliders() {
				if _, err := s.Path(); err != nil {
					return err
				}
			}
			if len(bm.HitObjects) != len(want.HitObjects) {
				return errors.New("hit object count differs")
			}
			rp, err := ParseReplay(osr, opts)
			if err != nil {
				return err
			}
			if opts.ParseFrames != (len(rp.Frames) > 0) {
				return errors.New("frame toggle ignored")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
