package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"osureader"
)

// Summary is the printed result for one file.
type Summary struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Error string `json:"error,omitempty"`

	Version  int    `json:"version,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Title    string `json:"title,omitempty"`
	Player   string `json:"player,omitempty"`
	MD5      string `json:"md5,omitempty"`
	Objects  int    `json:"objects,omitempty"`
	Frames   int    `json:"frames,omitempty"`
	Mods     string `json:"mods,omitempty"`
	Rank     string `json:"rank,omitempty"`
	Verified *bool  `json:"verified,omitempty"`
	Warnings int    `json:"warnings,omitempty"`
}

// DecodeAll decodes paths with at most jobs files in flight. Every path
// gets a summary; the returned error reports how many failed and the first
// failure.
func DecodeAll(paths []string, opts osureader.Options, jobs int) ([]Summary, error) {
	summaries := make([]Summary, len(paths))
	var g errgroup.Group
	g.SetLimit(max(jobs, 1))
	for i, p := range paths {
		g.Go(func() (err error) {
			defer recoverInto(&err)
			summaries[i] = decode(p, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summaries, err
	}

	failCount := 0
	first := -1
	for i, s := range summaries {
		if s.Error == "" {
			continue
		}
		failCount++
		if first < 0 {
			first = i
		}
	}
	if first >= 0 {
		return summaries, fmt.Errorf("decoded %d/%d files; first failure %s: %s",
			len(paths)-failCount, len(paths), summaries[first].Path, summaries[first].Error)
	}
	return summaries, nil
}

func decode(path string, opts osureader.Options) Summary {
	s := Summary{Path: path, Kind: kindOf(path)}
	data, err := os.ReadFile(path)
	if err != nil {
		s.Error = err.Error()
		return s
	}

	switch s.Kind {
	case "beatmap":
		bm, err := osureader.ParseBeatmap(data, opts)
		if err != nil {
			s.Error = err.Error()
			return s
		}
		s.Version = bm.FormatVersion
		s.Mode = bm.General.Mode.String()
		s.Title = fmt.Sprintf("%s - %s [%s]", bm.Metadata.Artist, bm.Metadata.Title, bm.Metadata.Version)
		s.MD5 = bm.MD5
		s.Objects = len(bm.HitObjects)
		s.Warnings = len(bm.Warnings)
	case "replay":
		rp, err := osureader.ParseReplay(data, opts)
		if err != nil {
			s.Error = err.Error()
			return s
		}
		ok := rp.VerifyIntegrity()
		s.Version = int(rp.Version)
		s.Mode = rp.Mode.String()
		s.Player = rp.Player
		s.MD5 = rp.BeatmapMD5
		s.Frames = len(rp.Frames)
		s.Mods = rp.Mods.String()
		s.Rank = string(rp.Rank())
		s.Verified = &ok
		s.Warnings = len(rp.Warnings)
	default:
		s.Error = "not an .osu or .osr file"
	}
	return s
}

// recoverInto turns a panic in a worker into an error carrying the stack.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		buf := make([]byte, 100000)
		n := runtime.Stack(buf, false)
		*err = fmt.Errorf("panic: %v\n\n%s", r, buf[:n])
	}
}
