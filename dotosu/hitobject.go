package dotosu

import (
	"sync"

	"osureader/curve"
)

type ObjectKind uint8

const (
	KindCircle ObjectKind = iota
	KindSlider
	KindSpinner
	KindHold
)

func (k ObjectKind) String() string {
	switch k {
	case KindSlider:
		return "slider"
	case KindSpinner:
		return "spinner"
	case KindHold:
		return "hold"
	default:
		return "circle"
	}
}

type HitSoundFlags uint8

const (
	HitSoundNormal  HitSoundFlags = 1 << iota // 1
	HitSoundWhistle                           // 2
	HitSoundFinish                            // 4
	HitSoundClap                              // 8
)

type SampleSet uint8

const (
	SampleNone SampleSet = iota
	SampleNormal
	SampleSoft
	SampleDrum
)

type HitObjectTypeFlags int

const (
	TypeCircle     HitObjectTypeFlags = 1 << iota // 1
	TypeSlider                                    // 2
	TypeNewCombo                                  // 4
	TypeSpinner                                   // 8
	TypeComboSkip1                                // 16
	TypeComboSkip2                                // 32
	TypeComboSkip3                                // 64
	TypeHold       HitObjectTypeFlags = 1 << 7    // 128
)

// ComboSkip is the number of combo colours skipped by a new combo.
func (f HitObjectTypeFlags) ComboSkip() int {
	return int(f>>4) & 7
}

type HitSampleSpec struct {
	NormalSet   SampleSet
	AdditionSet SampleSet
	Index       int // custom sample bank
	Volume      int
	Filename    string
}

type EdgeAdd struct {
	NormalSet   SampleSet
	AdditionSet SampleSet
}

// HitObject is implemented by *Circle, *Slider, *Spinner and *Hold. Switch
// on the concrete type to reach the variant payload.
type HitObject interface {
	Kind() ObjectKind
	StartTime() int
	EndTime() int
	NewCombo() bool
	Flags() HitObjectTypeFlags
	Pos() curve.Vec
	HitSound() HitSoundFlags
	Sample() HitSampleSpec
}

type BaseHO struct {
	Position curve.Vec
	Time     int
	Type     HitObjectTypeFlags
	Sound    HitSoundFlags
	SampleHS HitSampleSpec
}

func (b BaseHO) StartTime() int            { return b.Time }
func (b BaseHO) NewCombo() bool            { return (b.Type & TypeNewCombo) != 0 }
func (b BaseHO) Flags() HitObjectTypeFlags { return b.Type }
func (b BaseHO) Pos() curve.Vec            { return b.Position }
func (b BaseHO) HitSound() HitSoundFlags   { return b.Sound }
func (b BaseHO) Sample() HitSampleSpec     { return b.SampleHS }

type Circle struct{ BaseHO }

func (*Circle) Kind() ObjectKind { return KindCircle }
func (c *Circle) EndTime() int   { return c.Time }

type Slider struct {
	BaseHO
	// ControlPoints starts with the slider head.
	ControlPoints []curve.Vec
	// Curve is the type letter the row declares; Segments hold the split
	// the path is built from.
	Curve    curve.Kind
	Segments []curve.Segment
	// Repeats is the number of slides, at least 1.
	Repeats       int
	Length        float64
	EdgeSounds    []HitSoundFlags
	EdgeAdditions []EdgeAdd

	// SpanDuration is the time in ms of one slide, resolved from the
	// timing point active at the head.
	SpanDuration float64
	Velocity     float64 // osu!pixels per ms

	path *pathCell
}

func (*Slider) Kind() ObjectKind { return KindSlider }

// Duration covers all slides.
func (s *Slider) Duration() float64 { return s.SpanDuration * float64(s.Repeats) }

func (s *Slider) EndTime() int { return s.Time + int(s.Duration()) }

// Path returns the sampled slider path fitted to Length. The result is
// computed once and shared; callers must not modify it.
func (s *Slider) Path() ([]curve.Vec, error) {
	if s.path == nil {
		return s.computePath()
	}
	s.path.once.Do(func() {
		s.path.points, s.path.err = s.computePath()
	})
	return s.path.points, s.path.err
}

// PositionAt is the point progress osu!pixels along the path.
func (s *Slider) PositionAt(progress float64) (curve.Vec, error) {
	p, err := s.Path()
	if err != nil {
		return curve.Vec{}, err
	}
	return curve.PositionAt(p, progress), nil
}

// TailPosition is where the last slide ends.
func (s *Slider) TailPosition() (curve.Vec, error) {
	if s.Repeats%2 == 0 {
		return s.Position, nil
	}
	p, err := s.Path()
	if err != nil {
		return curve.Vec{}, err
	}
	return p[len(p)-1], nil
}

func (s *Slider) computePath() ([]curve.Vec, error) {
	segs := s.Segments
	if s.path != nil && s.path.lenient {
		segs = curve.Relax(segs)
	}
	return curve.Path(segs, s.Length)
}

type pathCell struct {
	once    sync.Once
	lenient bool
	points  []curve.Vec
	err     error
}

type Spinner struct {
	BaseHO
	End int
}

func (*Spinner) Kind() ObjectKind { return KindSpinner }
func (s *Spinner) EndTime() int   { return s.End }

// Hold is a mania long note.
type Hold struct {
	BaseHO
	End int
}

func (*Hold) Kind() ObjectKind { return KindHold }
func (h *Hold) EndTime() int   { return h.End }

// Column is the mania key a hold or note at x falls into.
func Column(x float64, keys int) int {
	if keys <= 0 {
		return 0
	}
	col := int(x * float64(keys) / 512)
	return max(0, min(col, keys-1))
}
