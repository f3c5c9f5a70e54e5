package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"osureader"
)

func TestCollectAndDecodeAll(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile("../../dotosu/testdata/nanatsu_koyoto_excerpt.osu")
	if err != nil {
		t.Fatal(err)
	}
	set := filepath.Join(dir, "770521")
	if err := os.Mkdir(set, 0o777); err != nil {
		t.Fatal(err)
	}
	files := map[string][]byte{
		"b.osu":      src,
		"a.OSU":      src,
		"broken.osr": {0x00, 0x01},
		"cover.jpg":  {0xff},
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(set, name), data, 0o666); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := collect(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 || filepath.Base(paths[0]) != "a.OSU" {
		t.Fatalf("paths = %v", paths)
	}

	summaries, err := DecodeAll(paths, osureader.Options{SliderPaths: true}, 2)
	if err == nil || !strings.Contains(err.Error(), "decoded 2/3 files") {
		t.Fatalf("err = %v", err)
	}
	for _, s := range summaries[:2] {
		if s.Kind != "beatmap" || s.Error != "" || s.Version != 14 || s.Objects == 0 {
			t.Errorf("summary = %+v", s)
		}
	}
	if s := summaries[2]; s.Kind != "replay" || s.Error == "" {
		t.Errorf("broken replay summary = %+v", s)
	}
}

func TestCollectSingleFile(t *testing.T) {
	paths, err := collect("main.go")
	if err != nil || len(paths) != 1 {
		t.Fatalf("paths %v err %v", paths, err)
	}
	if kindOf("x.Osr") != "replay" || kindOf("main.go") != "" {
		t.Error("kindOf")
	}
	if _, err := collect("does-not-exist"); err == nil {
		t.Error("missing path must fail")
	}
}
