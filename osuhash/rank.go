package osuhash

import (
	"osureader/mods"
	"osureader/ruleset"
)

// Rank is the letter grade of a play, named as osu!stable's Rankings enum.
type Rank string

const (
	RankXH Rank = "XH" // silver SS
	RankSH Rank = "SH" // silver S
	RankX  Rank = "X"
	RankS  Rank = "S"
	RankA  Rank = "A"
	RankB  Rank = "B"
	RankC  Rank = "C"
	RankD  Rank = "D"
	RankF  Rank = "F"
)

// Accuracy returns the mode-specific accuracy in [0,1]. Plays with no
// judgements count as perfect.
func Accuracy(s Score) float64 {
	switch s.Mode {
	case ruleset.Taiko:
		total := s.Count300 + s.Count100 + s.CountMiss
		if total == 0 {
			return 1
		}
		return (float64(s.Count300) + 0.5*float64(s.Count100)) / float64(total)
	case ruleset.Catch:
		total := s.Count300 + s.Count100 + s.Count50 + s.CountKatu + s.CountMiss
		if total == 0 {
			return 1
		}
		return float64(s.Count300+s.Count100+s.Count50) / float64(total)
	case ruleset.Mania:
		total := s.Count300 + s.CountGeki + s.CountKatu + s.Count100 + s.Count50 + s.CountMiss
		if total == 0 {
			return 1
		}
		hit := 300*(s.Count300+s.CountGeki) + 200*s.CountKatu + 100*s.Count100 + 50*s.Count50
		return float64(hit) / float64(300*total)
	default:
		total := s.Count300 + s.Count100 + s.Count50 + s.CountMiss
		if total == 0 {
			return 1
		}
		hit := 300*s.Count300 + 100*s.Count100 + 50*s.Count50
		return float64(hit) / float64(300*total)
	}
}

// RankOf derives the grade letter the way osu!stable does before signing a
// score. Failed plays are always F.
func RankOf(s Score) Rank {
	if !s.Passed {
		return RankF
	}
	silver := s.Mods.Has(mods.Hidden) || s.Mods.Has(mods.Flashlight)
	if s.Mode == ruleset.Mania {
		silver = silver || s.Mods.Has(mods.FadeIn)
	}

	var r Rank
	switch s.Mode {
	case ruleset.Catch:
		r = byAccuracy(Accuracy(s), 0.98, 0.94, 0.90, 0.85)
	case ruleset.Mania:
		r = byAccuracy(Accuracy(s), 0.95, 0.90, 0.80, 0.70)
	default:
		r = byRatio(s)
	}

	if silver {
		switch r {
		case RankX:
			return RankXH
		case RankS:
			return RankSH
		}
	}
	return r
}

func byAccuracy(acc, s, a, b, c float64) Rank {
	switch {
	case acc == 1:
		return RankX
	case acc > s:
		return RankS
	case acc > a:
		return RankA
	case acc > b:
		return RankB
	case acc > c:
		return RankC
	default:
		return RankD
	}
}

// byRatio is the standard/taiko rule, driven by the share of 300s.
func byRatio(s Score) Rank {
	total := s.Count300 + s.Count100 + s.Count50 + s.CountMiss
	if total == 0 {
		return RankX
	}
	r300 := float64(s.Count300) / float64(total)
	r50 := float64(s.Count50) / float64(total)
	noMiss := s.CountMiss == 0

	switch {
	case r300 == 1:
		return RankX
	case r300 > 0.9 && r50 <= 0.01 && noMiss:
		return RankS
	case r300 > 0.8 && noMiss, r300 > 0.9:
		return RankA
	case r300 > 0.7 && noMiss, r300 > 0.8:
		return RankB
	case r300 > 0.6:
		return RankC
	default:
		return RankD
	}
}
