package dotosu

import (
	"sort"
)

// DEFAULT_BEAT_LENGTH applies when a map has no uninherited timing point.
const DEFAULT_BEAT_LENGTH = 1000.0

func sortTimeline(points []TimingPoint) []TimingPoint {
	out := make([]TimingPoint, len(points))
	copy(out, points)
	// stable: a later row at the same time overrides an earlier one
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// TimingPointAt returns the last timing point, inherited or not, starting at
// or before t.
func (b *Beatmap) TimingPointAt(t int) (TimingPoint, bool) {
	i := sort.Search(len(b.timeline), func(i int) bool { return b.timeline[i].Time > t })
	if i == 0 {
		return TimingPoint{}, false
	}
	return b.timeline[i-1], true
}

// BeatLengthAt is the beat length of the uninherited point governing t.
// Objects before the first uninherited point use that point.
func (b *Beatmap) BeatLengthAt(t int) float64 {
	var first *TimingPoint
	for i := range b.timeline {
		tp := &b.timeline[i]
		if !tp.Uninherited {
			continue
		}
		if first == nil {
			first = tp
		}
		if tp.Time > t {
			break
		}
		first = tp
	}
	if first == nil || !(first.BeatLength > 0) {
		return DEFAULT_BEAT_LENGTH
	}
	return first.BeatLength
}

// SliderVelocityAt is the inherited multiplier in effect at t, 1 when the
// governing point is uninherited.
func (b *Beatmap) SliderVelocityAt(t int) float64 {
	tp, ok := b.TimingPointAt(t)
	if !ok {
		return 1
	}
	return tp.SliderVelocity()
}

// BPMAt is the tempo at t.
func (b *Beatmap) BPMAt(t int) float64 {
	return 60000 / b.BeatLengthAt(t)
}

// timeSlider fills in velocity and span duration:
// span = length / (multiplier * 100 * sv) * beatLength.
func (b *Beatmap) timeSlider(s *Slider) {
	beat := b.BeatLengthAt(s.Time)
	pxPerBeat := b.Difficulty.SliderMultiplier * 100 * b.SliderVelocityAt(s.Time)
	if pxPerBeat <= 0 {
		return
	}
	s.Velocity = pxPerBeat / beat
	s.SpanDuration = s.Length / pxPerBeat * beat
}
