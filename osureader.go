// Package osureader decodes osu! beatmaps (.osu) and replays (.osr) from
// in-memory buffers.
package osureader

import (
	"fmt"
	"io"
	"log"

	"github.com/caarlos0/env/v11"

	"osureader/dotosr"
	"osureader/dotosu"
)

// Options is passed by value to every parse call. The zero value decodes
// headers only: slider paths stay lazy and replay frames are skipped.
type Options struct {
	SliderPaths    bool `env:"OSU_SLIDER_PATHS"`
	ParseFrames    bool `env:"OSU_PARSE_FRAMES"`
	StripSeedFrame bool `env:"OSU_STRIP_SEED_FRAME"`
	// LenientCurves re-types degenerate perfect-circle segments instead of
	// failing with UnsupportedCurve.
	LenientCurves bool `env:"OSU_LENIENT_CURVES"`

	// Decompressor replaces the LZMA codec for replay frame blocks.
	Decompressor dotosr.Decompressor `env:"-"`
	Logger       *log.Logger         `env:"-"`
}

// OptionsFromEnv reads the OSU_* variables. Unset variables keep the zero
// value.
func OptionsFromEnv() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}
	return opts, nil
}

func (o Options) beatmap() dotosu.Options {
	return dotosu.Options{
		SliderPaths:   o.SliderPaths,
		LenientCurves: o.LenientCurves,
		Logger:        o.Logger,
	}
}

func (o Options) replay() dotosr.Options {
	return dotosr.Options{
		ParseFrames:    o.ParseFrames,
		StripSeedFrame: o.StripSeedFrame,
		Decompressor:   o.Decompressor,
		Logger:         o.Logger,
	}
}

func ParseBeatmap(data []byte, opts Options) (*dotosu.Beatmap, error) {
	return dotosu.Decode(data, opts.beatmap())
}

func ParseBeatmapString(text string, opts Options) (*dotosu.Beatmap, error) {
	return dotosu.DecodeString(text, opts.beatmap())
}

// ParseBeatmapReader reads r to EOF and decodes the result.
func ParseBeatmapReader(r io.Reader, opts Options) (*dotosu.Beatmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read beatmap: %w", err)
	}
	return ParseBeatmap(data, opts)
}

func ParseReplay(data []byte, opts Options) (*dotosr.Replay, error) {
	return dotosr.Decode(data, opts.replay())
}

func ParseReplayString(data string, opts Options) (*dotosr.Replay, error) {
	return dotosr.DecodeString(data, opts.replay())
}

// ParseReplayReader reads r to EOF and decodes the result.
func ParseReplayReader(r io.Reader, opts Options) (*dotosr.Replay, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	return ParseReplay(data, opts)
}
