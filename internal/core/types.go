package core

import "math"

// Size describes the dimensions of a drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Vec2 is a 2D vector or position.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns atan2(v.Y, v.X).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Point is a single sample of the generated map.
type Point struct {
	X, Y        float64
	Elevation   float64
	Temperature float64
	Rainfall    float64
	Biome       string
}

// Pos returns the position of the point.
func (p Point) Pos() Vec2 { return Vec2{X: p.X, Y: p.Y} }

// Rect is an axis aligned rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromSize returns the rectangle [0,0,w,h].
func RectFromSize(w, h float64) Rect {
	return Rect{MaxX: w, MaxY: h}
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Bounds returns the bounding rectangle of the points. The second result is
// false when points is empty.
func Bounds(points []Point) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r, true
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
