package mods

import "testing"

func TestModsLogic(t *testing.T) {
	if None != 0 {
		t.Fatalf("None = %d", None)
	}
	if Hidden|HardRock != 24 {
		t.Fatalf("HDHR = %d, want 24", Hidden|HardRock)
	}
	if KeyMod&Key4 == 0 || KeyMod&Key9 == 0 {
		t.Fatal("KeyMod must include all key mods")
	}
	if Mirror != 1<<30 {
		t.Fatalf("Mirror = %d", Mirror)
	}

	cases := []struct {
		have, want Mods
		ok         bool
	}{
		{Hidden | HardRock, Hidden, true},
		{Hidden | HardRock, Hidden | HardRock, true},
		{Hidden | HardRock, None, true},
		{None, None, true},
		{None, Hidden, false},
		{Hidden, Hidden | HardRock, false},
	}
	for _, c := range cases {
		if got := c.have.Has(c.want); got != c.ok {
			t.Errorf("%v.Has(%v) = %v, want %v", c.have, c.want, got, c.ok)
		}
	}
}

func TestModsString(t *testing.T) {
	cases := map[Mods]string{
		None:                               "NM",
		Hidden | HardRock:                  "HDHR",
		DoubleTime | Nightcore:             "NC",
		SuddenDeath | Perfect:              "PF",
		Hidden | DoubleTime | Flashlight:   "HDDTFL",
		Easy | NoFail | HalfTime | SpunOut: "NFEZHTSO",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("Mods(%d).String() = %q, want %q", uint32(m), got, want)
		}
	}
}

func TestRate(t *testing.T) {
	if r := (DoubleTime | Nightcore).Rate(); r != 1.5 {
		t.Fatalf("NC rate = %v", r)
	}
	if r := HalfTime.Rate(); r != 0.75 {
		t.Fatalf("HT rate = %v", r)
	}
	if r := Hidden.Rate(); r != 1 {
		t.Fatalf("HD rate = %v", r)
	}
}
