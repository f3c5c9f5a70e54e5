package dotosu

import (
	"osureader/mods"
	"osureader/ruleset"
)

// WithMods applies the HardRock and Easy multipliers. Rate changes are not
// folded in here; see Constants.
func (d Difficulty) WithMods(m mods.Mods) Difficulty {
	if m.Has(mods.HardRock) {
		d.CircleSize = min(d.CircleSize*1.3, 10)
		d.OverallDifficulty = min(d.OverallDifficulty*1.4, 10)
		d.ApproachRate = min(d.ApproachRate*1.4, 10)
		d.HPDrainRate = min(d.HPDrainRate*1.4, 10)
	}
	if m.Has(mods.Easy) {
		d.CircleSize /= 2
		d.OverallDifficulty /= 2
		d.ApproachRate /= 2
		d.HPDrainRate /= 2
	}
	return d
}

// Constants are the gameplay values a difficulty resolves to under a mod
// combination. Windows are +- milliseconds in real time.
type Constants struct {
	Mods         mods.Mods
	CircleRadius float64
	ApproachRate float64
	Preempt      float64
	Window300    float64
	Window100    float64
	Window50     float64
}

func (d Difficulty) Constants(m mods.Mods) Constants {
	d = d.WithMods(m)
	rate := m.Rate()

	preempt := ApproachRateToPreempt(d.ApproachRate) / rate
	od := d.OverallDifficulty

	return Constants{
		Mods:         m,
		CircleRadius: 54.4 - 4.48*d.CircleSize,
		ApproachRate: PreemptToAR(preempt),
		Preempt:      preempt,
		Window300:    (80 - 6*od) / rate,
		Window100:    (140 - 8*od) / rate,
		Window50:     (200 - 10*od) / rate,
	}
}

func ApproachRateToPreempt(ar float64) float64 {
	if ar < 5 {
		return 1200 + 120*(5-ar)
	}
	return 1200 - 150*(ar-5)
}

func PreemptToAR(preempt float64) float64 {
	if preempt > 1200 {
		return 5 - (preempt-1200)/120
	}
	return 5 + (1200-preempt)/150
}

func applyDifficultyRestrictions(d *Difficulty, mode ruleset.Mode) {
	d.HPDrainRate = clampFloat(d.HPDrainRate, 0, 10)
	d.OverallDifficulty = clampFloat(d.OverallDifficulty, 0, 10)
	d.ApproachRate = clampFloat(d.ApproachRate, 0, 10)
	if mode == ruleset.Mania {
		d.CircleSize = clampFloat(d.CircleSize, 1, MAX_MANIA_KEY_COUNT)
	} else {
		d.CircleSize = clampFloat(d.CircleSize, 0, 10)
	}
	d.SliderMultiplier = clampFloat(d.SliderMultiplier, 0.4, 3.6)
	d.SliderTickRate = clampFloat(d.SliderTickRate, 0.5, 8.0)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
