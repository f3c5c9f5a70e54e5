package curve

import "math"

// Vec is a point or direction on the playfield in osu!pixels.
type Vec struct{ X, Y float64 }

func (a Vec) Add(b Vec) Vec          { return Vec{a.X + b.X, a.Y + b.Y} }
func (a Vec) Sub(b Vec) Vec          { return Vec{a.X - b.X, a.Y - b.Y} }
func (a Vec) Scale(s float64) Vec    { return Vec{a.X * s, a.Y * s} }
func (a Vec) Dot(b Vec) float64      { return a.X*b.X + a.Y*b.Y }
func (a Vec) Cross(b Vec) float64    { return a.X*b.Y - a.Y*b.X }
func (a Vec) LengthSquared() float64 { return a.X*a.X + a.Y*a.Y }
func (a Vec) Length() float64        { return math.Hypot(a.X, a.Y) }
func (a Vec) Dist(b Vec) float64     { return math.Hypot(a.X-b.X, a.Y-b.Y) }
func (a Vec) Midpoint(b Vec) Vec     { return Vec{(a.X + b.X) * 0.5, (a.Y + b.Y) * 0.5} }
func (a Vec) AlmostEqual(b Vec) bool { return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 }
func (a Vec) Normalized() Vec {
	l := a.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{a.X / l, a.Y / l}
}
