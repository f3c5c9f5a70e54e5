package mods

import "strings"

// Mods is the gameplay modifier bitmask stored in replays and scores.
type Mods uint32

const (
	NoFail Mods = 1 << iota
	Easy
	TouchDevice
	Hidden
	HardRock
	SuddenDeath
	DoubleTime
	Relax
	HalfTime
	Nightcore // always set together with DoubleTime
	Flashlight
	Autoplay
	SpunOut
	Autopilot
	Perfect
	Key4
	Key5
	Key6
	Key7
	Key8
	FadeIn
	Random
	Cinema
	TargetPractice
	Key9
	Coop
	Key1
	Key3
	Key2
	ScoreV2
	Mirror

	None Mods = 0

	KeyMod = Key1 | Key2 | Key3 | Key4 | Key5 | Key6 | Key7 | Key8 | Key9
)

// Has reports whether every bit of want is set. Has(None) is always true.
func (m Mods) Has(want Mods) bool {
	return m&want == want
}

// Rate is the playback rate implied by the speed mods.
func (m Mods) Rate() float64 {
	switch {
	case m.Has(DoubleTime):
		return 1.5
	case m.Has(HalfTime):
		return 0.75
	default:
		return 1
	}
}

var acronyms = []struct {
	mod  Mods
	name string
}{
	{NoFail, "NF"},
	{Easy, "EZ"},
	{TouchDevice, "TD"},
	{Hidden, "HD"},
	{HardRock, "HR"},
	{SuddenDeath, "SD"},
	{Perfect, "PF"},
	{Nightcore, "NC"},
	{DoubleTime, "DT"},
	{Relax, "RX"},
	{HalfTime, "HT"},
	{Flashlight, "FL"},
	{Autoplay, "AT"},
	{SpunOut, "SO"},
	{Autopilot, "AP"},
	{FadeIn, "FI"},
	{Random, "RD"},
	{Cinema, "CN"},
	{TargetPractice, "TP"},
	{Key1, "1K"},
	{Key2, "2K"},
	{Key3, "3K"},
	{Key4, "4K"},
	{Key5, "5K"},
	{Key6, "6K"},
	{Key7, "7K"},
	{Key8, "8K"},
	{Key9, "9K"},
	{Coop, "CO"},
	{ScoreV2, "V2"},
	{Mirror, "MR"},
}

// String renders the mods as concatenated acronyms, e.g. "HDHR".
// NC hides DT and PF hides SD since the client always sets both.
func (m Mods) String() string {
	if m == None {
		return "NM"
	}
	var sb strings.Builder
	for _, a := range acronyms {
		if !m.Has(a.mod) {
			continue
		}
		if a.mod == DoubleTime && m.Has(Nightcore) {
			continue
		}
		if a.mod == SuddenDeath && m.Has(Perfect) {
			continue
		}
		sb.WriteString(a.name)
	}
	return sb.String()
}
