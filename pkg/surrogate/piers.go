package surrogate

import (
	"math"

	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// generatePiers picks n chords between two convex-hull vertices, each
// accepted by chordInsideShape (midpoint inside shape, no hole
// boundary crossed), chosen greedily to cover the parts
// of the shape that the given poles represent poorly (spec §4.D: piers
// "chosen to maximize discriminating power - edges likely to cross a
// hazard when the poles do not").
//
// This is a much simpler stand-in for the reference implementation's
// grid-search-plus-loss-function optimizer: rather than searching over
// arbitrary rotated rays, it restricts candidates to hull-vertex
// diagonals that pass chordInsideShape, which are cheap to enumerate
// and still favor chords that cut across the parts of the shape
// furthest from any existing pole. On a concave exterior such a
// chord can still leave the shape between its midpoint and its ends;
// that case is not checked.
func generatePiers(shape geo.Shape, n int, poles []geo.Circle, eps collide.Epsilon) []geo.Edge {
	if n <= 0 {
		return nil
	}
	verts := shape.Exterior.Vertices
	hull := ConvexHullIndices(verts)
	if len(hull) < 3 {
		return nil
	}

	var candidates []geo.Edge
	for i := 0; i < len(hull); i++ {
		for j := i + 2; j < len(hull); j++ {
			if i == 0 && j == len(hull)-1 {
				continue // adjacent around the wrap
			}
			e := geo.Edge{A: verts[hull[i]], B: verts[hull[j]]}
			if chordInsideShape(e, shape, eps) {
				candidates = append(candidates, e)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var selected []geo.Edge
	for len(selected) < n && len(candidates) > 0 {
		bestIdx := 0
		bestScore := -math.Inf(1)
		for i, c := range candidates {
			score := discriminatingScore(c, poles, selected)
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		selected = append(selected, candidates[bestIdx])
		candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)
	}
	return selected
}

// chordInsideShape reports whether a candidate chord's midpoint lies
// inside the shape and the chord crosses no hole boundary, a cheap
// approximation of full containment adequate for a convex-hull chord.
func chordInsideShape(e geo.Edge, shape geo.Shape, eps collide.Epsilon) bool {
	mid := e.A.Lerp(e.B, 0.5)
	if collide.PointInShape(mid, shape, eps) == collide.Outside {
		return false
	}
	for _, h := range shape.Holes {
		for _, he := range h.Edges() {
			if collide.EdgeEdge(e, he, eps) {
				return false
			}
		}
	}
	return true
}

// discriminatingScore favors chords far from every already-covered
// feature (pole or previously selected pier), so successive picks
// spread coverage rather than clustering.
func discriminatingScore(c geo.Edge, poles []geo.Circle, selected []geo.Edge) float64 {
	mid := c.A.Lerp(c.B, 0.5)
	best := math.Inf(1)
	for _, p := range poles {
		d := mid.Distance(p.Center) - p.Radius
		if d < best {
			best = d
		}
	}
	for _, s := range selected {
		_, d2 := s.ClosestPoint(mid)
		if d := math.Sqrt(d2); d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return c.Length()
	}
	return best + c.Length()*0.01
}
