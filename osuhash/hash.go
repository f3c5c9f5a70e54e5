// Package osuhash computes the digests osu! uses to identify beatmaps and to
// sign replay scores.
package osuhash

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"osureader/mods"
	"osureader/ruleset"
)

// BeatmapMD5 is the lowercase hex MD5 of the raw .osu bytes. Replays refer to
// their beatmap by this value.
func BeatmapMD5(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

func md5String(s string) string {
	return BeatmapMD5([]byte(s))
}

// Score holds the replay fields that feed the legacy integrity checksum.
type Score struct {
	Mode       ruleset.Mode
	Count300   int
	Count100   int
	Count50    int
	CountGeki  int
	CountKatu  int
	CountMiss  int
	BeatmapMD5 string
	MaxCombo   int
	Perfect    bool
	Player     string
	TotalScore int64
	Mods       mods.Mods
	// Passed is false for failed or retried plays. Exported replays are
	// always passes.
	Passed bool
}

// ReplayChecksumInput builds the string whose MD5 is stored as the replay
// hash in .osr files. The rank letter comes from RankOf.
func ReplayChecksumInput(s Score) string {
	return fmt.Sprintf("%dosu%s%s%d%s", s.MaxCombo, s.Player, s.BeatmapMD5, s.TotalScore, RankOf(s))
}

// ReplayChecksum is the lowercase hex MD5 of ReplayChecksumInput.
func ReplayChecksum(s Score) string {
	return md5String(ReplayChecksumInput(s))
}

// VerifyReplay reports whether stored matches the replay checksum
// recomputed from s.
func VerifyReplay(s Score, stored string) bool {
	return strings.EqualFold(ReplayChecksum(s), stored)
}

// OnlineChecksumInput builds the string osu!stable digests when submitting a
// score (Score.OnlineChecksum). Booleans render the way .NET formats them.
func OnlineChecksumInput(s Score) string {
	return fmt.Sprintf("%dp%do%do%dt%da%sr%de%sy%so%du%s%d%s",
		s.Count100+s.Count300,
		s.Count50,
		s.CountGeki,
		s.CountKatu,
		s.CountMiss,
		s.BeatmapMD5,
		s.MaxCombo,
		dotnetBool(s.Perfect),
		s.Player,
		s.TotalScore,
		RankOf(s),
		uint32(s.Mods),
		dotnetBool(s.Passed),
	)
}

// OnlineChecksum is the lowercase hex MD5 of OnlineChecksumInput.
func OnlineChecksum(s Score) string {
	return md5String(OnlineChecksumInput(s))
}

func dotnetBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
