// Command osureader decodes .osu and .osr files, or every such file under
// the given directories, and prints a JSON summary per file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"osureader"
)

func main() {
	opts, err := osureader.OptionsFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.BoolVar(&opts.SliderPaths, "slider-paths", opts.SliderPaths, "materialize slider paths")
	flag.BoolVar(&opts.ParseFrames, "frames", opts.ParseFrames, "decode replay frames")
	flag.BoolVar(&opts.StripSeedFrame, "strip-seed", opts.StripSeedFrame, "drop the seed frame")
	flag.BoolVar(&opts.LenientCurves, "lenient", opts.LenientCurves, "re-type degenerate curves")
	jobs := flag.Int("j", runtime.NumCPU(), "files decoded in parallel")
	flag.Parse()

	var paths []string
	for _, arg := range flag.Args() {
		found, err := collect(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: osureader [flags] file-or-dir...")
		os.Exit(2)
	}

	summaries, err := DecodeAll(paths, opts, *jobs)
	out, _ := json.MarshalIndent(summaries, "", "\t")
	os.Stdout.Write(append(out, '\n'))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// collect returns path itself, or every .osu and .osr file below it.
func collect(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var paths []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if kindOf(p) != "" {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func kindOf(path string) string {
	switch ext := filepath.Ext(path); {
	case strings.EqualFold(ext, ".osu"):
		return "beatmap"
	case strings.EqualFold(ext, ".osr"):
		return "replay"
	}
	return ""
}
