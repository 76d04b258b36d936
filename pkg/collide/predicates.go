package collide

import (
	"math"

	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// scaledZero reports whether v is within eps of zero, scaled by a
// magnitude representative of the inputs that produced v (cross
// products grow with segment length, so a fixed absolute threshold
// would be too strict for long edges and too loose for short ones).
func scaledZero(v, scale, absEps float64) bool {
	return math.Abs(v) <= absEps*(1+scale)
}

func orient(a, b, c geo.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegmentBBox reports whether point p, already known to be collinear
// with a-b, lies within the bounding box of segment a-b (i.e. actually
// on the segment, not just on the infinite line through it).
func onSegmentBBox(a, b, p geo.Point) bool {
	return p.X >= math.Min(a.X, b.X)-1e-12 && p.X <= math.Max(a.X, b.X)+1e-12 &&
		p.Y >= math.Min(a.Y, b.Y)-1e-12 && p.Y <= math.Max(a.Y, b.Y)+1e-12
}

// EdgeEdge reports whether two segments intersect, including proper
// crossings, collinear overlaps, and touching endpoints (spec §4.B).
//
// The exact tie-break for two segments that touch at exactly one
// shared endpoint without otherwise crossing (documented as an open
// question in the source spec) is resolved conservatively here: any
// touch, including a lone shared vertex, is reported as a collision.
func EdgeEdge(e1, e2 geo.Edge, eps Epsilon) bool {
	scale := e1.Length() + e2.Length()

	o1 := orient(e1.A, e1.B, e2.A)
	o2 := orient(e1.A, e1.B, e2.B)
	o3 := orient(e2.A, e2.B, e1.A)
	o4 := orient(e2.A, e2.B, e1.B)

	z1, z2, z3, z4 := scaledZero(o1, scale, eps.Abs), scaledZero(o2, scale, eps.Abs),
		scaledZero(o3, scale, eps.Abs), scaledZero(o4, scale, eps.Abs)

	s1, s2 := sign(o1, z1), sign(o2, z2)
	s3, s4 := sign(o3, z3), sign(o4, z4)

	if s1 != s2 && s3 != s4 {
		return true
	}
	if z1 && onSegmentBBox(e1.A, e1.B, e2.A) {
		return true
	}
	if z2 && onSegmentBBox(e1.A, e1.B, e2.B) {
		return true
	}
	if z3 && onSegmentBBox(e2.A, e2.B, e1.A) {
		return true
	}
	if z4 && onSegmentBBox(e2.A, e2.B, e1.B) {
		return true
	}
	return false
}

func sign(v float64, isZero bool) int {
	if isZero {
		return 0
	}
	if v > 0 {
		return 1
	}
	return -1
}

// EdgeRect reports whether a segment intersects an axis-aligned
// rectangle: trivial-reject by bounding box, then a Liang-Barsky style
// clip. Endpoints inside the rectangle count as collision.
func EdgeRect(e geo.Edge, r geo.Rect) bool {
	if !e.BoundingBox().Intersects(r) {
		return false
	}
	if r.ContainsPoint(e.A) || r.ContainsPoint(e.B) {
		return true
	}

	dx := e.B.X - e.A.X
	dy := e.B.Y - e.A.Y
	tMin, tMax := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > tMax {
				return false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return false
			}
			if t < tMax {
				tMax = t
			}
		}
		return true
	}

	if !clip(-dx, e.A.X-r.MinX) {
		return false
	}
	if !clip(dx, r.MaxX-e.A.X) {
		return false
	}
	if !clip(-dy, e.A.Y-r.MinY) {
		return false
	}
	if !clip(dy, r.MaxY-e.A.Y) {
		return false
	}
	return tMin <= tMax
}

// RectRect reports whether two axis-aligned rectangles overlap or
// touch, via axis separation.
func RectRect(a, b geo.Rect) bool {
	return a.Intersects(b)
}

// CircleEdge reports whether a circle intersects a segment: the
// squared distance from the circle's center to the segment is compared
// against radius squared. Endpoints inside the disk count as collision.
func CircleEdge(c geo.Circle, e geo.Edge) bool {
	_, d2 := e.ClosestPoint(c.Center)
	return d2 <= c.Radius*c.Radius
}

// CircleRect reports whether a circle intersects an axis-aligned
// rectangle: clamp the center to the rectangle and compare the squared
// distance to the radius squared.
func CircleRect(c geo.Circle, r geo.Rect) bool {
	clampedX := math.Max(r.MinX, math.Min(c.Center.X, r.MaxX))
	clampedY := math.Max(r.MinY, math.Min(c.Center.Y, r.MaxY))
	dx := c.Center.X - clampedX
	dy := c.Center.Y - clampedY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
