package geo

// Edge is the fundamental boundary unit: an ordered pair of points.
type Edge struct {
	A Point
	B Point
}

// Seg is a shorthand constructor for Edge.
func Seg(a, b Point) Edge {
	return Edge{A: a, B: b}
}

// Vector returns the direction vector of the edge, from A to B.
func (e Edge) Vector() Point {
	return e.B.Sub(e.A)
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 {
	return e.A.Distance(e.B)
}

// BoundingBox returns the axis-aligned bounding rectangle of the edge.
func (e Edge) BoundingBox() Rect {
	return RectFromPoints(e.A, e.B)
}

// Reversed returns the edge with endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{A: e.B, B: e.A}
}

// PointAt returns the point at parameter t in [0,1] along the edge.
func (e Edge) PointAt(t float64) Point {
	return e.A.Lerp(e.B, t)
}

// ClosestPoint returns the closest point on the segment to p, and the
// squared distance to it.
func (e Edge) ClosestPoint(p Point) (Point, float64) {
	v := e.Vector()
	vlen2 := v.Dot(v)
	if vlen2 == 0 {
		return e.A, p.DistanceSquared(e.A)
	}
	t := p.Sub(e.A).Dot(v) / vlen2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := e.PointAt(t)
	return closest, p.DistanceSquared(closest)
}
