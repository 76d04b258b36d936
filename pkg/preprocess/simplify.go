package preprocess

import (
	"math"

	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// simplifyInflate iteratively removes reflex (concave) vertices whose
// removal changes the ring's area by less than tolerance*originalArea,
// per spec §4.C step 3. Removing a reflex vertex always fills in a
// notch, so the simplified ring is a conservative over-approximation
// of the original: never smaller, only ever equal or larger.
//
// Each round picks the single candidate with the smallest area delta
// (greedy, matching the reference simplifier's "smallest change first"
// strategy) and rejects it if applying it would introduce a new
// self-intersection.
func simplifyInflate(r geo.Ring, tolerance float64, eps collide.Epsilon) geo.Ring {
	if tolerance <= 0 {
		return r
	}
	originalArea := r.Area()
	if originalArea <= 0 {
		return r
	}
	verts := append([]geo.Point{}, r.Vertices...)

	for len(verts) > 3 {
		bestIdx := -1
		bestDelta := math.Inf(1)
		for i := range verts {
			n := len(verts)
			prev := verts[(i-1+n)%n]
			cur := verts[i]
			next := verts[(i+1)%n]
			if !isReflex(prev, cur, next) {
				continue
			}
			delta := math.Abs(triangleArea(prev, cur, next))
			if delta >= bestDelta {
				continue
			}
			if introducesIntersection(verts, i, eps) {
				continue
			}
			bestDelta = delta
			bestIdx = i
		}
		if bestIdx < 0 {
			break
		}
		candidate := append(append([]geo.Point{}, verts[:bestIdx]...), verts[bestIdx+1:]...)
		candidateArea := (geo.Ring{Vertices: candidate}).Area()
		if math.Abs(candidateArea-originalArea) > tolerance*originalArea {
			break
		}
		verts = candidate
	}
	return geo.Ring{Vertices: verts}
}

func triangleArea(a, b, c geo.Point) float64 {
	return (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)) / 2
}

// introducesIntersection checks whether replacing the notch at index i
// with the direct chord from its predecessor to its successor would
// cross any edge of the ring that touches neither vertex i nor the
// chord's own endpoints (the edges ending at the predecessor and
// starting at the successor always meet the chord there).
func introducesIntersection(verts []geo.Point, i int, eps collide.Epsilon) bool {
	n := len(verts)
	prev := verts[(i-1+n)%n]
	next := verts[(i+1)%n]
	chord := geo.Edge{A: prev, B: next}

	for j := 0; j < n; j++ {
		if j == (i-2+n)%n || j == (i-1+n)%n || j == i || j == (i+1)%n {
			continue
		}
		e := geo.Edge{A: verts[j], B: verts[(j+1)%n]}
		if collide.EdgeEdge(chord, e, eps) {
			return true
		}
	}
	return false
}
