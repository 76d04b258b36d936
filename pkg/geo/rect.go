package geo

import "math"

// Rect is an axis-aligned rectangle, MinX <= MaxX and MinY <= MaxY.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromPoints returns the smallest rectangle containing both points.
func RectFromPoints(a, b Point) Rect {
	r := Rect{MinX: a.X, MaxX: a.X, MinY: a.Y, MaxY: a.Y}
	r.ExpandToPoint(b)
	return r
}

// EmptyRect returns a rectangle with inverted bounds, suitable as the
// starting accumulator for ExpandToPoint / ExpandToRect.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether the rectangle has never been expanded to
// contain anything.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// ExpandToPoint grows r in place to contain p.
func (r *Rect) ExpandToPoint(p Point) {
	if p.X < r.MinX {
		r.MinX = p.X
	}
	if p.X > r.MaxX {
		r.MaxX = p.X
	}
	if p.Y < r.MinY {
		r.MinY = p.Y
	}
	if p.Y > r.MaxY {
		r.MaxY = p.Y
	}
}

// ExpandToRect grows r in place to contain o.
func (r *Rect) ExpandToRect(o Rect) {
	if o.IsEmpty() {
		return
	}
	r.ExpandToPoint(Point{o.MinX, o.MinY})
	r.ExpandToPoint(Point{o.MaxX, o.MaxY})
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Diagonal returns the Euclidean length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Width(), r.Height())
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// ContainsPoint reports whether p lies inside or on the boundary of r.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Intersects reports whether r and o overlap or touch (axis separation).
func (r Rect) Intersects(o Rect) bool {
	return !(r.MaxX < o.MinX || o.MaxX < r.MinX || r.MaxY < o.MinY || o.MaxY < r.MinY)
}

// ContainsRect reports whether r fully contains o.
func (r Rect) ContainsRect(o Rect) bool {
	return o.MinX >= r.MinX && o.MaxX <= r.MaxX && o.MinY >= r.MinY && o.MaxY <= r.MaxY
}

// Quadrants splits r into four equal children in fixed NW, NE, SW, SE
// order (matching the region quadtree's deterministic child ordering).
func (r Rect) Quadrants() [4]Rect {
	midX := (r.MinX + r.MaxX) / 2
	midY := (r.MinY + r.MaxY) / 2
	return [4]Rect{
		{MinX: r.MinX, MinY: midY, MaxX: midX, MaxY: r.MaxY}, // NW
		{MinX: midX, MinY: midY, MaxX: r.MaxX, MaxY: r.MaxY}, // NE
		{MinX: r.MinX, MinY: r.MinY, MaxX: midX, MaxY: midY}, // SW
		{MinX: midX, MinY: r.MinY, MaxX: r.MaxX, MaxY: midY}, // SE
	}
}

// Inflate returns r expanded by d on every side (d may be negative).
func (r Rect) Inflate(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}
