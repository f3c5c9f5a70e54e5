package dotosu

import (
	"osureader/osuerr"
	"osureader/ruleset"
)

const (
	EARLY_VERSION_TIMING_OFFSET = 24
	MAX_MANIA_KEY_COUNT         = 18
	LATEST_VERSION              = 14
	MIN_VERSION                 = 1
)

// Beatmap is the decoded content of one .osu file. It is never mutated
// after Decode returns; the only lazily filled state is each slider's path
// cache.
type Beatmap struct {
	FormatVersion int
	// MD5 of the raw file bytes; replays reference their beatmap by it.
	MD5 string

	General    General
	Editor     Editor
	Metadata   Metadata
	Difficulty Difficulty
	Events     Events
	Colours    Colours

	TimingPoints []TimingPoint
	HitObjects   []HitObject

	// Sections this decoder does not understand, verbatim.
	RawSections []RawSection
	Warnings    []osuerr.Warning

	timeline []TimingPoint // TimingPoints stably sorted by time
}

type General struct {
	AudioFilename            string
	AudioLeadIn              int
	PreviewTime              int
	Countdown                int
	SampleSet                string
	SampleVolume             int
	StackLeniency            float64
	Mode                     ruleset.Mode
	LetterboxInBreaks        bool
	StoryFireInFront         bool
	UseSkinSprites           bool
	SkinPreference           string
	EpilepsyWarning          bool
	CountdownOffset          int
	SpecialStyle             bool
	WidescreenStoryboard     bool
	SamplesMatchPlaybackRate bool
}

type Editor struct {
	Bookmarks       []int
	DistanceSpacing float64
	BeatDivisor     int
	GridSize        int
	TimelineZoom    float64
}

type Metadata struct {
	Title, TitleUnicode     string
	Artist, ArtistUnicode   string
	Creator, Version        string
	Source                  string
	Tags                    []string
	BeatmapID, BeatmapSetID int
}

type Difficulty struct {
	HPDrainRate, CircleSize, OverallDifficulty, ApproachRate float64
	SliderMultiplier, SliderTickRate                         float64
}

type Events struct {
	BackgroundFile, VideoFile string
	VideoOffset               int
	Breaks                    []BreakPeriod
	// Storyboard and other event lines, trimmed.
	Unhandled []string
}

type BreakPeriod struct{ Start, End int }

type Colour struct{ R, G, B uint8 }

type Colours struct {
	// Combo colours in declaration order.
	Combo               []Colour
	SliderTrackOverride *Colour
	SliderBorder        *Colour
}

type RawSection struct {
	Name  string
	Lines []string
}

// TimingPoint is one row of [TimingPoints]. Uninherited points define the
// tempo; inherited points only scale slider velocity and their BeatLength
// is a negative inverse percentage.
type TimingPoint struct {
	Time        int
	BeatLength  float64
	Meter       int
	SampleSet   int
	SampleIndex int
	Volume      int
	Uninherited bool
	Effects     Effects
}

type Effects int

const (
	EffectKiai         Effects = 1 << 0
	EffectOmitFirstBar Effects = 1 << 3
)

func (tp TimingPoint) Kiai() bool { return tp.Effects&EffectKiai != 0 }

// SliderVelocity is the velocity multiplier of an inherited point; 1 for
// uninherited points.
func (tp TimingPoint) SliderVelocity() float64 {
	if tp.Uninherited || !(tp.BeatLength < 0) {
		return 1
	}
	return clampFloat(100.0/-tp.BeatLength, 0.1, 10)
}

// BPM of an uninherited point; 0 for inherited ones.
func (tp TimingPoint) BPM() float64 {
	if !tp.Uninherited || tp.BeatLength <= 0 {
		return 0
	}
	return 60000 / tp.BeatLength
}

type Counts struct {
	Circles, Sliders, Spinners, Holds int
}

func (b *Beatmap) Counts() Counts {
	var c Counts
	for _, ho := range b.HitObjects {
		switch ho.Kind() {
		case KindCircle:
			c.Circles++
		case KindSlider:
			c.Sliders++
		case KindSpinner:
			c.Spinners++
		case KindHold:
			c.Holds++
		}
	}
	return c
}

func (b *Beatmap) Circles() []*Circle   { return collect[*Circle](b.HitObjects) }
func (b *Beatmap) Sliders() []*Slider   { return collect[*Slider](b.HitObjects) }
func (b *Beatmap) Spinners() []*Spinner { return collect[*Spinner](b.HitObjects) }
func (b *Beatmap) Holds() []*Hold       { return collect[*Hold](b.HitObjects) }

func collect[T HitObject](objects []HitObject) []T {
	var out []T
	for _, ho := range objects {
		if v, ok := ho.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
