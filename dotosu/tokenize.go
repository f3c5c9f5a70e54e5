package dotosu

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"osureader/osuerr"
)

const formatHeader = "osu file format v"

// Line is one meaningful line of a section, trimmed, with its 1-based
// position in the file.
type Line struct {
	Num  int
	Text string
}

// Section is a bracketed block and the lines that follow it up to the next
// header.
type Section struct {
	Name  string
	Num   int
	Lines []Line
}

// Tokenize checks the format header and returns the file version together
// with a lazy sequence of sections. Blank lines and // comments are dropped.
// Lines between the header and the first section are ignored.
func Tokenize(text string) (int, iter.Seq[Section], error) {
	var header Line
	for num, raw := range numberedLines(text) {
		if line := strings.TrimSpace(raw); line != "" {
			header = Line{Num: num, Text: line}
			break
		}
	}
	if header.Num == 0 {
		return 0, nil, osuerr.New(osuerr.CodeMalformedHeader, "empty beatmap")
	}

	version, err := parseHeader(header.Text)
	if err != nil {
		return 0, nil, err
	}

	sections := func(yield func(Section) bool) {
		var cur *Section
		for num, raw := range numberedLines(text) {
			if num <= header.Num {
				continue
			}
			line := strings.TrimSpace(raw)
			if line == "" || strings.HasPrefix(line, "//") {
				continue
			}
			if name, ok := sectionName(line); ok {
				if cur != nil && !yield(*cur) {
					return
				}
				cur = &Section{Name: name, Num: num}
				continue
			}
			if cur != nil {
				cur.Lines = append(cur.Lines, Line{Num: num, Text: line})
			}
		}
		if cur != nil {
			yield(*cur)
		}
	}
	return version, sections, nil
}

func parseHeader(line string) (int, error) {
	// a UTF-8 BOM that survived normalisation is not part of the header
	line = strings.TrimPrefix(line, "\ufeff")
	if !strings.HasPrefix(line, formatHeader) {
		return 0, osuerr.WithMetadata(osuerr.CodeMalformedHeader, "missing format header", map[string]string{
			"line": truncate(line, 40),
		})
	}
	suffix := strings.TrimSpace(strings.TrimPrefix(line, formatHeader))
	version, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, osuerr.WrapWithMetadata(osuerr.CodeMalformedHeader, "invalid format version", map[string]string{
			"version": truncate(suffix, 40),
		}, err)
	}
	if version < MIN_VERSION || version > LATEST_VERSION {
		return 0, osuerr.WithMetadata(osuerr.CodeUnsupportedVersion,
			fmt.Sprintf("supported versions are %d to %d", MIN_VERSION, LATEST_VERSION),
			map[string]string{"version": strconv.Itoa(version)})
	}
	return version, nil
}

func numberedLines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		num := 0
		for line := range strings.Lines(text) {
			num++
			if !yield(num, strings.TrimRight(line, "\r\n")) {
				return
			}
		}
	}
}

func sectionName(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}

// KeyValue splits a line on its first colon and trims both halves. Lines
// without a colon yield an empty value.
func KeyValue(line string) (key, value string) {
	k, v, _ := strings.Cut(line, ":")
	return strings.TrimSpace(k), strings.TrimSpace(v)
}

// Fields splits a comma separated row. Commas are never escaped or quoted
// in .osu rows, so no quote handling takes place.
func Fields(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
