// Package curve turns slider control points into sampled polylines.
//
// The approximation constants mirror osu!lazer's PathApproximator so that
// paths line up with what the game renders:
//
//	Bezier:  adaptive de Casteljau subdivision until the second difference
//	         of every control polygon is below BezierTolerance (0.25px).
//	Catmull: CatmullDetail (50) samples per control-point span.
//	Perfect: arc step chosen so the sagitta stays below
//	         CircularArcTolerance (0.1px).
package curve

import (
	"fmt"
	"math"

	"osureader/osuerr"
)

const (
	BezierTolerance      = 0.25
	CircularArcTolerance = 0.1
	CatmullDetail        = 50

	// LengthEpsilon is how far a fitted path may deviate from the
	// requested length.
	LengthEpsilon = 1e-6
)

type Kind uint8

const (
	Bezier Kind = iota
	Linear
	Catmull
	Perfect
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "Linear"
	case Catmull:
		return "Catmull"
	case Perfect:
		return "PerfectCircle"
	default:
		return "Bezier"
	}
}

// Letter is the one-byte tag used in .osu slider definitions.
func (k Kind) Letter() byte {
	switch k {
	case Linear:
		return 'L'
	case Catmull:
		return 'C'
	case Perfect:
		return 'P'
	default:
		return 'B'
	}
}

// KindFromLetter maps a .osu curve letter to a Kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'B', 'b':
		return Bezier, true
	case 'L', 'l':
		return Linear, true
	case 'C', 'c':
		return Catmull, true
	case 'P', 'p':
		return Perfect, true
	}
	return Bezier, false
}

// Segment is a run of control points sharing one curve kind. A segment
// usually starts on the last point of the one before it; the repeated point
// is dropped when segments are joined.
type Segment struct {
	Kind   Kind
	Points []Vec
}

func unsupported(kind Kind, format string, args ...any) error {
	return osuerr.WithMetadata(osuerr.CodeUnsupportedCurve, fmt.Sprintf(format, args...), map[string]string{
		"curve": kind.String(),
	})
}

// Approximate samples a single segment.
func Approximate(kind Kind, points []Vec) ([]Vec, error) {
	if len(points) < 2 {
		return nil, unsupported(kind, "need at least 2 control points, got %d", len(points))
	}
	switch kind {
	case Linear:
		out := make([]Vec, len(points))
		copy(out, points)
		return out, nil
	case Catmull:
		return approximateCatmull(points), nil
	case Perfect:
		if len(points) != 3 {
			return nil, unsupported(kind, "need exactly 3 control points, got %d", len(points))
		}
		return approximateCircularArc(points[0], points[1], points[2])
	default:
		return approximateBezier(points), nil
	}
}

// Path samples all segments, drops repeated and redundant collinear points
// and fits the result to length. A non-positive length keeps the raw
// curve length.
func Path(segments []Segment, length float64) ([]Vec, error) {
	var poly []Vec
	for _, seg := range segments {
		pts, err := Approximate(seg.Kind, seg.Points)
		if err != nil {
			return nil, err
		}
		poly = append(poly, pts...)
	}
	poly = dedupeCollinear(dedupe(poly))
	if len(poly) < 2 {
		return nil, unsupported(kindOf(segments), "path collapses to a single point")
	}
	if length <= 0 {
		return poly, nil
	}
	return Fit(poly, length), nil
}

// Relax rewrites segments the way osu!stable tolerates them: a perfect
// circle without exactly 3 points becomes a Bezier, and one whose points are
// collinear becomes Linear. Other segments are returned unchanged.
func Relax(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	for i, seg := range segments {
		out[i] = seg
		if seg.Kind != Perfect {
			continue
		}
		switch {
		case len(seg.Points) != 3:
			out[i].Kind = Bezier
		case IsCollinear(seg.Points[0], seg.Points[1], seg.Points[2]):
			out[i].Kind = Linear
		}
	}
	return out
}

func kindOf(segments []Segment) Kind {
	if len(segments) == 0 {
		return Bezier
	}
	return segments[0].Kind
}

// Fit truncates or extends poly so that its polyline length equals length.
// Truncation interpolates inside the segment that crosses length; extension
// continues the direction of the last segment. poly must hold at least two
// distinct points.
func Fit(poly []Vec, length float64) []Vec {
	if len(poly) < 2 {
		return poly
	}
	out := make([]Vec, len(poly))
	copy(out, poly)
	dist := Distances(out)

	if dist[len(dist)-1] > length {
		for len(out) > 2 && dist[len(dist)-2] >= length {
			out = out[:len(out)-1]
			dist = dist[:len(dist)-1]
		}
		n := len(out)
		dir := out[n-1].Sub(out[n-2]).Normalized()
		out[n-1] = out[n-2].Add(dir.Scale(length - dist[n-2]))
		return out
	}
	if rem := length - dist[len(dist)-1]; rem > 0 {
		n := len(out)
		dir := out[n-1].Sub(out[n-2]).Normalized()
		out = append(out, out[n-1].Add(dir.Scale(rem)))
	}
	return out
}

// Distances returns the cumulative polyline length at every point.
func Distances(poly []Vec) []float64 {
	if len(poly) == 0 {
		return nil
	}
	out := make([]float64, len(poly))
	for i := 1; i < len(poly); i++ {
		out[i] = out[i-1] + poly[i].Dist(poly[i-1])
	}
	return out
}

// Length is the total polyline length.
func Length(poly []Vec) float64 {
	total := 0.0
	for i := 1; i < len(poly); i++ {
		total += poly[i].Dist(poly[i-1])
	}
	return total
}

// PositionAt walks progress pixels along poly. Past the end it keeps going
// in the direction of the last segment.
func PositionAt(poly []Vec, progress float64) Vec {
	if len(poly) == 0 {
		return Vec{}
	}
	if len(poly) == 1 || progress <= 0 {
		return poly[0]
	}
	for i := 1; i < len(poly); i++ {
		dir := poly[i].Sub(poly[i-1])
		l := dir.Length()
		if l == 0 {
			continue
		}
		if progress <= l {
			return poly[i-1].Add(dir.Scale(progress / l))
		}
		progress -= l
	}
	from := poly[len(poly)-1]
	dir := from.Sub(poly[len(poly)-2]).Normalized()
	return from.Add(dir.Scale(progress))
}

// --- Bezier ---

func approximateBezier(cp []Vec) []Vec {
	n := len(cp)
	out := make([]Vec, 0, n*4)

	// scratch buffers shared by every subdivision step
	mid := make([]Vec, n)
	left := make([]Vec, 2*n-1)
	right := make([]Vec, n)

	root := make([]Vec, n)
	copy(root, cp)
	stack := [][]Vec{root}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if bezierFlatEnough(cur) {
			out = bezierEmit(cur, mid, left, right, out)
			continue
		}
		r := make([]Vec, n)
		bezierSubdivide(cur, mid, left, r)
		copy(cur, left[:n])
		// right half first so the left half pops next
		stack = append(stack, r, cur)
	}
	return append(out, cp[n-1])
}

func bezierFlatEnough(cp []Vec) bool {
	limit := BezierTolerance * BezierTolerance * 4
	for i := 1; i < len(cp)-1; i++ {
		d := cp[i-1].Sub(cp[i].Scale(2)).Add(cp[i+1])
		if d.LengthSquared() > limit {
			return false
		}
	}
	return true
}

// bezierSubdivide splits cp at t=0.5 into left and right, each len(cp)
// points long.
func bezierSubdivide(cp, mid, left, right []Vec) {
	n := len(cp)
	copy(mid, cp)
	for i := 0; i < n; i++ {
		left[i] = mid[0]
		right[n-i-1] = mid[n-i-1]
		for j := 0; j < n-i-1; j++ {
			mid[j] = mid[j].Midpoint(mid[j+1])
		}
	}
}

// bezierEmit appends the sampled points of a flat-enough piece, all but its
// final point.
func bezierEmit(cp, mid, left, right, out []Vec) []Vec {
	n := len(cp)
	bezierSubdivide(cp, mid, left, right)
	for i := 0; i < n-1; i++ {
		left[n+i] = right[i+1]
	}
	out = append(out, cp[0])
	for i := 1; i < n-1; i++ {
		idx := 2 * i
		p := left[idx-1].Add(left[idx].Scale(2)).Add(left[idx+1]).Scale(0.25)
		out = append(out, p)
	}
	return out
}

// --- Catmull-Rom ---

func approximateCatmull(pts []Vec) []Vec {
	n := len(pts)
	out := make([]Vec, 0, (n-1)*CatmullDetail+1)
	out = append(out, pts[0])
	for i := 0; i < n-1; i++ {
		v1 := pts[i]
		if i > 0 {
			v1 = pts[i-1]
		}
		v2 := pts[i]
		v3 := pts[i+1]
		var v4 Vec
		if i < n-2 {
			v4 = pts[i+2]
		} else {
			v4 = v3.Add(v3).Sub(v2)
		}
		for s := 1; s <= CatmullDetail; s++ {
			out = append(out, catmullPoint(v1, v2, v3, v4, float64(s)/CatmullDetail))
		}
	}
	return out
}

func catmullPoint(p0, p1, p2, p3 Vec, t float64) Vec {
	t2 := t * t
	t3 := t2 * t
	return Vec{
		X: 0.5 * ((2 * p1.X) + (-p0.X+p2.X)*t + (2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 + (-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * ((2 * p1.Y) + (-p0.Y+p2.Y)*t + (2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 + (-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}

// --- Perfect circle ---

type arc struct {
	centre     Vec
	radius     float64
	thetaStart float64
	thetaRange float64
	direction  float64
}

// IsCollinear reports whether three points are too close to a line to
// define a circle.
func IsCollinear(a, b, c Vec) bool {
	return math.Abs((b.Y-a.Y)*(c.X-a.X)-(b.X-a.X)*(c.Y-a.Y)) <= 1e-3
}

func circularArc(a, b, c Vec) (arc, bool) {
	if IsCollinear(a, b, c) {
		return arc{}, false
	}
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	aSq, bSq, cSq := a.LengthSquared(), b.LengthSquared(), c.LengthSquared()
	centre := Vec{
		X: (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d,
		Y: (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d,
	}
	dA := a.Sub(centre)
	dC := c.Sub(centre)

	thetaStart := math.Atan2(dA.Y, dA.X)
	thetaEnd := math.Atan2(dC.Y, dC.X)
	for thetaEnd < thetaStart {
		thetaEnd += 2 * math.Pi
	}

	dir := 1.0
	thetaRange := thetaEnd - thetaStart

	// b on the clockwise side of a->c means the arc runs the other way
	orthoAC := Vec{c.Y - a.Y, -(c.X - a.X)}
	if orthoAC.Dot(b.Sub(a)) < 0 {
		dir = -dir
		thetaRange = 2*math.Pi - thetaRange
	}
	return arc{
		centre:     centre,
		radius:     dA.Length(),
		thetaStart: thetaStart,
		thetaRange: thetaRange,
		direction:  dir,
	}, true
}

func approximateCircularArc(a, b, c Vec) ([]Vec, error) {
	props, ok := circularArc(a, b, c)
	if !ok {
		return nil, unsupported(Perfect, "control points do not determine a circle")
	}

	count := 2
	if 2*props.radius > CircularArcTolerance {
		step := 2 * math.Acos(1-CircularArcTolerance/props.radius)
		count = max(2, int(math.Ceil(props.thetaRange/step)))
	}

	out := make([]Vec, count)
	for i := range count {
		fract := float64(i) / float64(count-1)
		theta := props.thetaStart + props.direction*fract*props.thetaRange
		out[i] = props.centre.Add(Vec{math.Cos(theta), math.Sin(theta)}.Scale(props.radius))
	}
	return out, nil
}

// --- cleanup ---

func dedupe(pts []Vec) []Vec {
	if len(pts) == 0 {
		return pts
	}
	out := []Vec{pts[0]}
	for _, p := range pts[1:] {
		if !out[len(out)-1].AlmostEqual(p) {
			out = append(out, p)
		}
	}
	return out
}

// dedupeCollinear drops interior points that continue the previous segment
// in exactly the same direction. Polyline length is unchanged.
func dedupeCollinear(pts []Vec) []Vec {
	if len(pts) <= 2 {
		return pts
	}
	out := []Vec{pts[0]}
	for i := 1; i < len(pts)-1; i++ {
		a, b, c := out[len(out)-1], pts[i], pts[i+1]
		ab, bc := b.Sub(a), c.Sub(b)
		if math.Abs(ab.Cross(bc)) < 1e-7 && ab.Normalized().Dot(bc.Normalized()) > 0.999999 {
			continue
		}
		out = append(out, b)
	}
	return append(out, pts[len(pts)-1])
}
