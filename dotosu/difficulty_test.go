package dotosu

import (
	"testing"

	"osureader/mods"
)

func TestApproachRatePreempt(t *testing.T) {
	cases := map[float64]float64{0: 1800, 1: 1680, 4.5: 1260, 5: 1200, 6: 1050, 10: 450, 11: 300}
	for ar, want := range cases {
		if got := ApproachRateToPreempt(ar); !approx(got, want) {
			t.Errorf("ApproachRateToPreempt(%v) = %v, want %v", ar, got, want)
		}
		if got := PreemptToAR(want); !approx(got, ar) {
			t.Errorf("PreemptToAR(%v) = %v, want %v", want, got, ar)
		}
	}
}

func TestDifficultyWithMods(t *testing.T) {
	d := Difficulty{HPDrainRate: 5, CircleSize: 4, OverallDifficulty: 8, ApproachRate: 9}

	hr := d.WithMods(mods.HardRock)
	if !approx(hr.CircleSize, 5.2) || hr.OverallDifficulty != 10 || hr.ApproachRate != 10 || !approx(hr.HPDrainRate, 7) {
		t.Errorf("HR = %+v", hr)
	}
	ez := d.WithMods(mods.Easy)
	if ez.CircleSize != 2 || ez.OverallDifficulty != 4 || ez.ApproachRate != 4.5 {
		t.Errorf("EZ = %+v", ez)
	}
	if d.WithMods(mods.None) != d {
		t.Error("no mods must not change the difficulty")
	}
}

func TestConstants(t *testing.T) {
	d := Difficulty{CircleSize: 4, OverallDifficulty: 5, ApproachRate: 9}

	nm := d.Constants(mods.None)
	if !approx(nm.Window300, 50) || !approx(nm.Window100, 100) || !approx(nm.Window50, 150) {
		t.Errorf("windows = %+v", nm)
	}
	if !approx(nm.Preempt, 600) || !approx(nm.ApproachRate, 9) {
		t.Errorf("preempt = %+v", nm)
	}
	if !approx(nm.CircleRadius, 54.4-4.48*4) {
		t.Errorf("radius = %v", nm.CircleRadius)
	}

	dt := d.Constants(mods.DoubleTime)
	if !approx(dt.Preempt, 400) || !approx(dt.ApproachRate, 5+800.0/150) {
		t.Errorf("DT preempt = %+v", dt)
	}
	if !approx(dt.Window300, 50/1.5) {
		t.Errorf("DT 300 window = %v", dt.Window300)
	}
}
