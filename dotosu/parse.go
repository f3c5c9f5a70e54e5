// Package dotosu decodes .osu beatmap files.
package dotosu

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"osureader/curve"
	"osureader/osuerr"
	"osureader/osuhash"
	"osureader/ruleset"
)

// Options control a single Decode call.
type Options struct {
	// SliderPaths samples every slider path while decoding. Otherwise
	// paths are built on the first Slider.Path call.
	SliderPaths bool
	// LenientCurves lets degenerate perfect-circle sliders fall back to
	// Bezier or Linear instead of failing with UnsupportedCurve.
	LenientCurves bool
	// Logger receives one line per warning. Nil discards them.
	Logger *log.Logger
}

// DecodeString decodes a beatmap held in a string.
func DecodeString(text string, opts Options) (*Beatmap, error) {
	return Decode([]byte(text), opts)
}

// Decode parses a complete .osu file. On error no beatmap is returned.
func Decode(data []byte, opts Options) (*Beatmap, error) {
	text, err := normaliseText(data)
	if err != nil {
		return nil, err
	}
	version, sections, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	b := &builder{
		opts: opts,
		bm:   newBeatmap(version),
	}
	b.bm.MD5 = osuhash.BeatmapMD5(data)
	if version < 5 {
		b.offset = EARLY_VERSION_TIMING_OFFSET
	}

	for sec := range sections {
		if err := b.section(sec); err != nil {
			return nil, err
		}
	}
	if err := b.finish(); err != nil {
		return nil, err
	}
	return b.bm, nil
}

func newBeatmap(version int) *Beatmap {
	return &Beatmap{
		FormatVersion: version,
		General: General{
			PreviewTime:      -1,
			Countdown:        1,
			SampleSet:        "Normal",
			SampleVolume:     100,
			StackLeniency:    0.7,
			StoryFireInFront: true,
		},
		Editor: Editor{
			BeatDivisor:  4,
			GridSize:     4,
			TimelineZoom: 1,
		},
		Difficulty: Difficulty{
			HPDrainRate:       5,
			CircleSize:        5,
			OverallDifficulty: 5,
			ApproachRate:      5,
			SliderMultiplier:  1.4,
			SliderTickRate:    1,
		},
	}
}

type builder struct {
	opts   Options
	bm     *Beatmap
	offset int
	seenAR bool
}

func (b *builder) warn(line int, code osuerr.Code, format string, args ...any) {
	w := osuerr.Warning{Code: code, Line: line, Message: fmt.Sprintf(format, args...)}
	b.bm.Warnings = append(b.bm.Warnings, w)
	if b.opts.Logger != nil {
		b.opts.Logger.Printf("dotosu: %s", w)
	}
}

func (b *builder) section(sec Section) error {
	if fields, ok := schemas[strings.ToLower(sec.Name)]; ok {
		return b.keyValues(sec, fields)
	}
	var row func(Line) error
	switch strings.ToLower(sec.Name) {
	case "events":
		row = b.event
	case "timingpoints":
		row = b.timingPoint
	case "colours":
		row = b.colour
	case "hitobjects":
		row = b.hitObject
	default:
		raw := RawSection{Name: sec.Name, Lines: make([]string, len(sec.Lines))}
		for i, l := range sec.Lines {
			raw.Lines[i] = l.Text
		}
		b.bm.RawSections = append(b.bm.RawSections, raw)
		b.warn(sec.Num, osuerr.CodeUnknownSection, "section [%s] kept raw", sec.Name)
		return nil
	}
	for _, l := range sec.Lines {
		if err := row(l); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) keyValues(sec Section, fields map[string]field) error {
	for _, l := range sec.Lines {
		key, value := KeyValue(l.Text)
		f, ok := fields[strings.ToLower(key)]
		if !ok {
			b.warn(l.Num, osuerr.CodeUnknownKey, "[%s] %s", sec.Name, key)
			continue
		}
		if value == "" {
			continue // keep the default
		}
		if err := f(b, value); err != nil {
			return numberError(sec.Name, key, value, l.Num, err)
		}
	}
	return nil
}

func numberError(section, key, value string, line int, cause error) error {
	e := osuerr.Number(section, key, value, cause)
	e.Metadata["line"] = strconv.Itoa(line)
	return e
}

func (b *builder) finish() error {
	bm := b.bm
	applyDifficultyRestrictions(&bm.Difficulty, bm.General.Mode)
	bm.timeline = sortTimeline(bm.TimingPoints)

	for _, ho := range bm.HitObjects {
		s, ok := ho.(*Slider)
		if !ok {
			continue
		}
		bm.timeSlider(s)
		if b.opts.SliderPaths {
			if _, err := s.Path(); err != nil {
				return osuerr.WrapWithMetadata(osuerr.CodeUnsupportedCurve, "slider path", map[string]string{
					"time": strconv.Itoa(s.Time),
				}, err)
			}
		}
	}
	return nil
}

// --- numbers ---

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// parseLooseInt accepts decimal values where the format declares an
// integer; older editors wrote times like "1234.5".
func parseLooseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return int(f), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}

// --- schema tables ---

// field stores a non-empty value into the beatmap.
type field func(b *builder, value string) error

func stringField(target func(*Beatmap) *string) field {
	return func(b *builder, v string) error {
		*target(b.bm) = v
		return nil
	}
}

func intField(target func(*Beatmap) *int) field {
	return func(b *builder, v string) error {
		n, err := parseLooseInt(v)
		if err != nil {
			return err
		}
		*target(b.bm) = n
		return nil
	}
}

func floatField(target func(*Beatmap) *float64) field {
	return func(b *builder, v string) error {
		f, err := parseFloat(v)
		if err != nil {
			return err
		}
		*target(b.bm) = f
		return nil
	}
}

func boolField(target func(*Beatmap) *bool) field {
	return func(b *builder, v string) error {
		x, err := parseBool(v)
		if err != nil {
			return err
		}
		*target(b.bm) = x
		return nil
	}
}

func schema(fields map[string]field) map[string]field {
	out := make(map[string]field, len(fields))
	for k, f := range fields {
		out[strings.ToLower(k)] = f
	}
	return out
}

var schemas = map[string]map[string]field{
	"general": schema(map[string]field{
		"AudioFilename": func(b *builder, v string) error {
			b.bm.General.AudioFilename = standardisePath(v)
			return nil
		},
		"AudioLeadIn": intField(func(m *Beatmap) *int { return &m.General.AudioLeadIn }),
		"PreviewTime": func(b *builder, v string) error {
			t, err := parseLooseInt(v)
			if err != nil {
				return err
			}
			if t != -1 {
				t += b.offset
			}
			b.bm.General.PreviewTime = t
			return nil
		},
		"Countdown":     intField(func(m *Beatmap) *int { return &m.General.Countdown }),
		"SampleSet":     stringField(func(m *Beatmap) *string { return &m.General.SampleSet }),
		"SampleVolume":  intField(func(m *Beatmap) *int { return &m.General.SampleVolume }),
		"StackLeniency": floatField(func(m *Beatmap) *float64 { return &m.General.StackLeniency }),
		"Mode": func(b *builder, v string) error {
			n, err := parseInt(v)
			if err != nil {
				return err
			}
			if n < 0 || !ruleset.Mode(n).Valid() {
				return fmt.Errorf("unknown game mode %d", n)
			}
			b.bm.General.Mode = ruleset.Mode(n)
			return nil
		},
		"LetterboxInBreaks":        boolField(func(m *Beatmap) *bool { return &m.General.LetterboxInBreaks }),
		"StoryFireInFront":         boolField(func(m *Beatmap) *bool { return &m.General.StoryFireInFront }),
		"UseSkinSprites":           boolField(func(m *Beatmap) *bool { return &m.General.UseSkinSprites }),
		"SkinPreference":           stringField(func(m *Beatmap) *string { return &m.General.SkinPreference }),
		"EpilepsyWarning":          boolField(func(m *Beatmap) *bool { return &m.General.EpilepsyWarning }),
		"CountdownOffset":          intField(func(m *Beatmap) *int { return &m.General.CountdownOffset }),
		"SpecialStyle":             boolField(func(m *Beatmap) *bool { return &m.General.SpecialStyle }),
		"WidescreenStoryboard":     boolField(func(m *Beatmap) *bool { return &m.General.WidescreenStoryboard }),
		"SamplesMatchPlaybackRate": boolField(func(m *Beatmap) *bool { return &m.General.SamplesMatchPlaybackRate }),
		// editor-only flags osu!stable still writes
		"AlwaysShowPlayfield": func(*builder, string) error { return nil },
		"OverlayPosition":     func(*builder, string) error { return nil },
	}),
	"editor": schema(map[string]field{
		"Bookmarks": func(b *builder, v string) error {
			var marks []int
			for _, p := range Fields(v) {
				if p == "" {
					continue
				}
				n, err := parseLooseInt(p)
				if err != nil {
					return err
				}
				marks = append(marks, n)
			}
			b.bm.Editor.Bookmarks = marks
			return nil
		},
		"DistanceSpacing": floatField(func(m *Beatmap) *float64 { return &m.Editor.DistanceSpacing }),
		"BeatDivisor":     intField(func(m *Beatmap) *int { return &m.Editor.BeatDivisor }),
		"GridSize":        intField(func(m *Beatmap) *int { return &m.Editor.GridSize }),
		"TimelineZoom":    floatField(func(m *Beatmap) *float64 { return &m.Editor.TimelineZoom }),
	}),
	"metadata": schema(map[string]field{
		"Title":         stringField(func(m *Beatmap) *string { return &m.Metadata.Title }),
		"TitleUnicode":  stringField(func(m *Beatmap) *string { return &m.Metadata.TitleUnicode }),
		"Artist":        stringField(func(m *Beatmap) *string { return &m.Metadata.Artist }),
		"ArtistUnicode": stringField(func(m *Beatmap) *string { return &m.Metadata.ArtistUnicode }),
		"Creator":       stringField(func(m *Beatmap) *string { return &m.Metadata.Creator }),
		"Version":       stringField(func(m *Beatmap) *string { return &m.Metadata.Version }),
		"Source":        stringField(func(m *Beatmap) *string { return &m.Metadata.Source }),
		"Tags": func(b *builder, v string) error {
			b.bm.Metadata.Tags = strings.Fields(v)
			return nil
		},
		"BeatmapID":    intField(func(m *Beatmap) *int { return &m.Metadata.BeatmapID }),
		"BeatmapSetID": intField(func(m *Beatmap) *int { return &m.Metadata.BeatmapSetID }),
	}),
	"difficulty": schema(map[string]field{
		"HPDrainRate": floatField(func(m *Beatmap) *float64 { return &m.Difficulty.HPDrainRate }),
		"CircleSize":  floatField(func(m *Beatmap) *float64 { return &m.Difficulty.CircleSize }),
		"OverallDifficulty": func(b *builder, v string) error {
			od, err := parseFloat(v)
			if err != nil {
				return err
			}
			b.bm.Difficulty.OverallDifficulty = od
			// maps older than v8 have no ApproachRate key
			if !b.seenAR {
				b.bm.Difficulty.ApproachRate = od
			}
			return nil
		},
		"ApproachRate": func(b *builder, v string) error {
			ar, err := parseFloat(v)
			if err != nil {
				return err
			}
			b.bm.Difficulty.ApproachRate = ar
			b.seenAR = true
			return nil
		},
		"SliderMultiplier": floatField(func(m *Beatmap) *float64 { return &m.Difficulty.SliderMultiplier }),
		"SliderTickRate":   floatField(func(m *Beatmap) *float64 { return &m.Difficulty.SliderTickRate }),
	}),
}

// --- events ---

var videoExtensions = map[string]bool{
	".avi": true, ".flv": true, ".mp4": true, ".mkv": true, ".mov": true,
	".wmv": true, ".mpg": true, ".mpeg": true, ".ogv": true, ".webm": true,
}

func (b *builder) event(l Line) error {
	parts := Fields(l.Text)
	ev := &b.bm.Events
	switch strings.ToLower(parts[0]) {
	case "0", "background":
		if len(parts) < 3 {
			break
		}
		ev.BackgroundFile = standardisePath(parts[2])
		return nil
	case "1", "video":
		if len(parts) < 3 {
			break
		}
		fn := standardisePath(parts[2])
		if !videoExtensions[strings.ToLower(extension(fn))] {
			// some maps declare their background as a video event
			ev.BackgroundFile = fn
			return nil
		}
		off, err := parseLooseInt(parts[1])
		if err != nil {
			return numberError("Events", "video offset", parts[1], l.Num, err)
		}
		ev.VideoFile = fn
		ev.VideoOffset = off + b.offset
		return nil
	case "2", "break":
		if len(parts) < 3 {
			break
		}
		start, err := parseLooseInt(parts[1])
		if err != nil {
			return numberError("Events", "break start", parts[1], l.Num, err)
		}
		end, err := parseLooseInt(parts[2])
		if err != nil {
			return numberError("Events", "break end", parts[2], l.Num, err)
		}
		start += b.offset
		end = max(end+b.offset, start)
		ev.Breaks = append(ev.Breaks, BreakPeriod{Start: start, End: end})
		return nil
	}
	ev.Unhandled = append(ev.Unhandled, l.Text)
	return nil
}

func standardisePath(p string) string {
	p = strings.Trim(p, "\"")
	return strings.ReplaceAll(p, "\\", "/")
}

func extension(fn string) string {
	if i := strings.LastIndexByte(fn, '.'); i >= 0 && !strings.Contains(fn[i:], "/") {
		return fn[i:]
	}
	return ""
}

// --- timing points ---

func (b *builder) timingPoint(l Line) error {
	parts := Fields(l.Text)
	if len(parts) < 2 {
		b.warn(l.Num, osuerr.CodeMalformedRow, "timing point needs at least 2 columns")
		return nil
	}
	col := func(i int, key string, def int) (int, error) {
		if i >= len(parts) || parts[i] == "" {
			return def, nil
		}
		n, err := parseLooseInt(parts[i])
		if err != nil {
			return 0, numberError("TimingPoints", key, parts[i], l.Num, err)
		}
		return n, nil
	}

	tp := TimingPoint{Uninherited: true}
	var err error
	if tp.Time, err = col(0, "time", 0); err != nil {
		return err
	}
	tp.Time += b.offset
	if tp.BeatLength, err = parseFloat(parts[1]); err != nil {
		return numberError("TimingPoints", "beatLength", parts[1], l.Num, err)
	}
	if tp.Meter, err = col(2, "meter", 4); err != nil {
		return err
	}
	if tp.Meter <= 0 {
		tp.Meter = 4
	}
	if tp.SampleSet, err = col(3, "sampleSet", 0); err != nil {
		return err
	}
	if tp.SampleIndex, err = col(4, "sampleIndex", 0); err != nil {
		return err
	}
	if tp.Volume, err = col(5, "volume", 100); err != nil {
		return err
	}
	uninherited, err := col(6, "uninherited", 1)
	if err != nil {
		return err
	}
	tp.Uninherited = uninherited != 0
	effects, err := col(7, "effects", 0)
	if err != nil {
		return err
	}
	tp.Effects = Effects(effects)

	b.bm.TimingPoints = append(b.bm.TimingPoints, tp)
	return nil
}

// --- colours ---

func (b *builder) colour(l Line) error {
	key, value := KeyValue(l.Text)
	parts := Fields(value)
	if len(parts) < 3 {
		return numberError("Colours", key, value, l.Num, fmt.Errorf("need r,g,b"))
	}
	var rgb [3]uint8
	for i := range rgb {
		n, err := strconv.ParseUint(parts[i], 10, 8)
		if err != nil {
			return numberError("Colours", key, value, l.Num, err)
		}
		rgb[i] = uint8(n)
	}
	c := Colour{R: rgb[0], G: rgb[1], B: rgb[2]}

	switch lk := strings.ToLower(key); {
	case strings.HasPrefix(lk, "combo"):
		b.bm.Colours.Combo = append(b.bm.Colours.Combo, c)
	case lk == "slidertrackoverride":
		b.bm.Colours.SliderTrackOverride = &c
	case lk == "sliderborder":
		b.bm.Colours.SliderBorder = &c
	default:
		b.warn(l.Num, osuerr.CodeUnknownKey, "[Colours] %s", key)
	}
	return nil
}

// --- hit objects ---

func (b *builder) hitObject(l Line) error {
	parts := Fields(l.Text)
	if len(parts) < 5 {
		b.warn(l.Num, osuerr.CodeMalformedRow, "hit object needs at least 5 columns")
		return nil
	}
	num := func(i int, key string) (float64, error) {
		f, err := parseFloat(parts[i])
		if err != nil {
			return 0, numberError("HitObjects", key, parts[i], l.Num, err)
		}
		return f, nil
	}
	integer := func(i int, key string) (int, error) {
		n, err := parseLooseInt(parts[i])
		if err != nil {
			return 0, numberError("HitObjects", key, parts[i], l.Num, err)
		}
		return n, nil
	}

	x, err := num(0, "x")
	if err != nil {
		return err
	}
	y, err := num(1, "y")
	if err != nil {
		return err
	}
	t, err := integer(2, "time")
	if err != nil {
		return err
	}
	flags, err := integer(3, "type")
	if err != nil {
		return err
	}
	hs, err := integer(4, "hitSound")
	if err != nil {
		return err
	}
	// osu! truncates positions to whole pixels
	base := BaseHO{
		Position: curve.Vec{X: math.Trunc(x), Y: math.Trunc(y)},
		Time:     t + b.offset,
		Type:     HitObjectTypeFlags(flags),
		Sound:    HitSoundFlags(hs),
	}
	sample := func(i int) error {
		if i >= len(parts) || parts[i] == "" {
			return nil
		}
		s, err := parseHitSample(parts[i])
		if err != nil {
			return numberError("HitObjects", "hitSample", parts[i], l.Num, err)
		}
		base.SampleHS = s
		return nil
	}

	var ho HitObject
	switch ft := base.Type; {
	case ft&TypeCircle != 0:
		if err := sample(5); err != nil {
			return err
		}
		ho = &Circle{BaseHO: base}

	case ft&TypeSlider != 0:
		if len(parts) < 8 {
			b.warn(l.Num, osuerr.CodeMalformedRow, "slider needs at least 8 columns")
			return nil
		}
		s, err := b.slider(base, parts, l.Num)
		if err != nil {
			return err
		}
		if err := sample(10); err != nil {
			return err
		}
		s.BaseHO.SampleHS = base.SampleHS
		ho = s

	case ft&TypeSpinner != 0:
		end := base.Time
		if len(parts) > 5 && parts[5] != "" {
			e, err := integer(5, "endTime")
			if err != nil {
				return err
			}
			end = max(e+b.offset, base.Time)
		}
		if err := sample(6); err != nil {
			return err
		}
		ho = &Spinner{BaseHO: base, End: end}

	case ft&TypeHold != 0:
		end := base.Time
		if len(parts) > 5 {
			endStr, rest, _ := strings.Cut(parts[5], ":")
			e, err := parseLooseInt(endStr)
			if err != nil {
				return numberError("HitObjects", "endTime", endStr, l.Num, err)
			}
			end = max(e+b.offset, base.Time)
			if rest != "" {
				s, err := parseHitSample(rest)
				if err != nil {
					return numberError("HitObjects", "hitSample", rest, l.Num, err)
				}
				base.SampleHS = s
			}
		}
		ho = &Hold{BaseHO: base, End: end}

	default:
		b.warn(l.Num, osuerr.CodeMalformedRow, "hit object type %d has no known kind", flags)
		return nil
	}
	b.bm.HitObjects = append(b.bm.HitObjects, ho)
	return nil
}

func (b *builder) slider(base BaseHO, parts []string, line int) (*Slider, error) {
	segs, points, kind, err := parseSliderPath(base.Position, parts[5])
	if err != nil {
		return nil, numberError("HitObjects", "curvePoints", parts[5], line, err)
	}
	repeats, err := parseLooseInt(parts[6])
	if err != nil {
		return nil, numberError("HitObjects", "slides", parts[6], line, err)
	}
	length, err := parseFloat(parts[7])
	if err != nil {
		return nil, numberError("HitObjects", "length", parts[7], line, err)
	}
	s := &Slider{
		BaseHO:        base,
		ControlPoints: points,
		Curve:         kind,
		Segments:      segs,
		Repeats:       max(repeats, 1),
		Length:        max(length, 0),
		path:          &pathCell{lenient: b.opts.LenientCurves},
	}

	if len(parts) > 8 && parts[8] != "" {
		for _, p := range strings.Split(parts[8], "|") {
			n, err := parseInt(p)
			if err != nil {
				return nil, numberError("HitObjects", "edgeSounds", parts[8], line, err)
			}
			s.EdgeSounds = append(s.EdgeSounds, HitSoundFlags(n))
		}
	}
	if len(parts) > 9 && parts[9] != "" {
		for _, p := range strings.Split(parts[9], "|") {
			ns, as, err := parseSetPair(p)
			if err != nil {
				return nil, numberError("HitObjects", "edgeSets", parts[9], line, err)
			}
			s.EdgeAdditions = append(s.EdgeAdditions, EdgeAdd{NormalSet: ns, AdditionSet: as})
		}
	}
	return s, nil
}

// parseSliderPath turns "B|x:y|x:y|..." into segments. The head is the
// first control point. A lone curve letter inside the list starts a new
// segment of that kind; a point repeated back to back (a red anchor) starts
// a new segment of the current kind. New segments begin on the last point
// of the previous one.
func parseSliderPath(head curve.Vec, raw string) ([]curve.Segment, []curve.Vec, curve.Kind, error) {
	tokens := strings.Split(raw, "|")
	kind, ok := curve.KindFromLetter(firstByte(tokens[0]))
	if !ok || len(strings.TrimSpace(tokens[0])) != 1 {
		return nil, nil, curve.Bezier, fmt.Errorf("unknown curve type %q", tokens[0])
	}
	declared := kind

	points := []curve.Vec{head}
	cur := curve.Segment{Kind: kind, Points: []curve.Vec{head}}
	var segs []curve.Segment
	flush := func(next curve.Kind) {
		last := cur.Points[len(cur.Points)-1]
		if len(cur.Points) > 1 {
			segs = append(segs, cur)
		}
		cur = curve.Segment{Kind: next, Points: []curve.Vec{last}}
	}

	for _, tok := range tokens[1:] {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if len(tok) == 1 {
			k, ok := curve.KindFromLetter(tok[0])
			if !ok {
				return nil, nil, declared, fmt.Errorf("unknown curve type %q", tok)
			}
			flush(k)
			continue
		}
		xs, ys, found := strings.Cut(tok, ":")
		if !found {
			return nil, nil, declared, fmt.Errorf("bad control point %q", tok)
		}
		x, err := parseFloat(xs)
		if err != nil {
			return nil, nil, declared, err
		}
		y, err := parseFloat(ys)
		if err != nil {
			return nil, nil, declared, err
		}
		p := curve.Vec{X: math.Trunc(x), Y: math.Trunc(y)}
		points = append(points, p)

		if last := cur.Points[len(cur.Points)-1]; p == last && len(cur.Points) > 1 {
			flush(cur.Kind)
			continue
		}
		cur.Points = append(cur.Points, p)
	}
	if len(cur.Points) > 1 || len(segs) == 0 {
		segs = append(segs, cur)
	}
	return segs, points, declared, nil
}

func firstByte(s string) byte {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	return s[0]
}

// parseHitSample reads normalSet:additionSet:index:volume:filename. Missing
// trailing fields keep their zero value.
func parseHitSample(s string) (HitSampleSpec, error) {
	parts := strings.SplitN(s, ":", 5)
	var nums [4]int
	for i := 0; i < 4 && i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		n, err := parseInt(parts[i])
		if err != nil {
			return HitSampleSpec{}, err
		}
		nums[i] = n
	}
	ss := HitSampleSpec{
		NormalSet:   toSampleSet(nums[0]),
		AdditionSet: toSampleSet(nums[1]),
		Index:       nums[2],
		Volume:      nums[3],
	}
	if len(parts) == 5 {
		ss.Filename = strings.Trim(strings.TrimSpace(parts[4]), "\"")
	}
	return ss, nil
}

func parseSetPair(s string) (SampleSet, SampleSet, error) {
	a, bs, _ := strings.Cut(s, ":")
	na, err := parseInt(a)
	if err != nil {
		return 0, 0, err
	}
	nb := 0
	if bs != "" {
		if nb, err = parseInt(bs); err != nil {
			return 0, 0, err
		}
	}
	return toSampleSet(na), toSampleSet(nb), nil
}

func toSampleSet(id int) SampleSet {
	switch id {
	case 1:
		return SampleNormal
	case 2:
		return SampleSoft
	case 3:
		return SampleDrum
	default:
		return SampleNone
	}
}
