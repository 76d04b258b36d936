package collide

import (
	"math"

	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// Containment is the tri-state result of a point-in-polygon test.
type Containment int

const (
	Outside Containment = iota
	Boundary
	Inside
)

// PointInEdges ray-casts p against an arbitrary collection of edges,
// returning whether it is outside, on the boundary, or inside the
// implied polygon. This is deliberately generic over "some edges", not
// "a whole ring": it is reused both for exact polygon containment
// (pass Shape.Edges()) and for the quadtree's node-local containment
// test (pass only the edges stored at a node and its ancestors, per
// spec §4.E query_point).
//
// The ray is cast along +X from p. Vertex grazes (the ray passing
// exactly through a vertex) are avoided by re-casting along a
// slightly different angle on the ambiguity signal, per spec §4.B.
func PointInEdges(p geo.Point, edges []geo.Edge, eps Epsilon) Containment {
	for _, e := range edges {
		if onBoundary(p, e, eps) {
			return Boundary
		}
	}
	inside := castRay(p, edges, 0)
	if !isAmbiguous(p, edges) {
		return boolToContainment(inside)
	}
	// Re-cast at a slightly rotated angle to dodge vertex grazes.
	inside2 := castRay(p, edges, 1e-3)
	return boolToContainment(inside2)
}

func boolToContainment(inside bool) Containment {
	if inside {
		return Inside
	}
	return Outside
}

func onBoundary(p geo.Point, e geo.Edge, eps Epsilon) bool {
	_, d2 := e.ClosestPoint(p)
	tol := eps.Abs
	if tol <= 0 {
		tol = 1e-9
	}
	return d2 <= tol*tol
}

// isAmbiguous reports whether the default +X ray from p passes exactly
// through a vertex of any edge, which would make the crossing count
// undercount or overcount depending on floating point noise.
func isAmbiguous(p geo.Point, edges []geo.Edge) bool {
	for _, e := range edges {
		if e.A.Y == p.Y || e.B.Y == p.Y {
			return true
		}
	}
	return false
}

// castRay casts a ray from p at angle theta (radians, relative to +X)
// and counts boundary crossings using the standard even-odd rule.
func castRay(p geo.Point, edges []geo.Edge, theta float64) bool {
	dir := geo.Pt(math.Cos(theta), math.Sin(theta))
	crossings := 0
	for _, e := range edges {
		if rayCrossesEdge(p, dir, e) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// rayCrossesEdge tests whether the ray from origin p in direction dir
// crosses segment e, using the standard "does edge straddle the ray's
// horizontal line, and is the crossing x ahead of p" test generalized
// to an arbitrary ray direction via a local rotation.
func rayCrossesEdge(p geo.Point, dir geo.Point, e geo.Edge) bool {
	// Rotate the whole problem so the ray lies along +X: transform
	// edge endpoints into the ray's frame.
	angle := math.Atan2(dir.Y, dir.X)
	ca, sa := math.Cos(-angle), math.Sin(-angle)
	toLocal := func(q geo.Point) geo.Point {
		rel := q.Sub(p)
		return geo.Point{X: rel.X*ca - rel.Y*sa, Y: rel.X*sa + rel.Y*ca}
	}
	a := toLocal(e.A)
	b := toLocal(e.B)

	if (a.Y > 0) == (b.Y > 0) {
		return false
	}
	if a.Y == b.Y {
		return false
	}
	t := a.Y / (a.Y - b.Y)
	x := a.X + t*(b.X-a.X)
	return x > 0
}

// PointInShape tests point p against a full shape (exterior ring plus
// holes), returning Inside only when p is inside the exterior and
// outside every hole.
func PointInShape(p geo.Point, s geo.Shape, eps Epsilon) Containment {
	ext := PointInEdges(p, s.Exterior.Edges(), eps)
	if ext == Outside {
		return Outside
	}
	if ext == Boundary {
		return Boundary
	}
	for _, h := range s.Holes {
		switch PointInEdges(p, h.Edges(), eps) {
		case Inside:
			return Outside
		case Boundary:
			return Boundary
		}
	}
	return Inside
}
