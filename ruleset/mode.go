// Package ruleset names the four game modes.
package ruleset

import "fmt"

// Mode is the game mode byte shared by beatmaps and replays.
type Mode uint8

const (
	Standard Mode = iota
	Taiko
	Catch
	Mania
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "osu"
	case Taiko:
		return "taiko"
	case Catch:
		return "fruits"
	case Mania:
		return "mania"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

func (m Mode) Valid() bool { return m <= Mania }
