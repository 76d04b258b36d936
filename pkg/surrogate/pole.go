package surrogate

import (
	"math"

	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// maxPoleSearchDepth bounds the quadtree refinement search for the
// next pole; grounded on the reference implementation's polylabel-
// style search (MAX_POI_TREE_DEPTH), adapted from a priority queue to
// a bounded depth-first stack (last pushed, first expanded) since this
// package has no heap type of its own to reach for.
const maxPoleSearchDepth = 10

type poiNode struct {
	rect     geo.Rect
	depth    int
	distance float64 // signed distance from the rect's center to the nearest boundary/pole; negative if excluded
}

func (n poiNode) upperBound() float64 {
	return n.distance + n.rect.Diagonal()/2
}

func newPOINode(rect geo.Rect, depth int, shape geo.Shape, existing []geo.Circle, eps collide.Epsilon) poiNode {
	c := rect.Center()
	inside := collide.PointInShape(c, shape, eps) != collide.Outside
	for _, pole := range existing {
		if pole.ContainsPoint(c) {
			inside = false
			break
		}
	}
	dist := distanceToBoundary(c, shape, existing)
	if !inside {
		dist = -math.Abs(dist)
	}
	return poiNode{rect: rect, depth: depth, distance: dist}
}

func distanceToBoundary(p geo.Point, shape geo.Shape, existing []geo.Circle) float64 {
	best := math.Inf(1)
	for _, e := range shape.Exterior.Edges() {
		_, d2 := e.ClosestPoint(p)
		if d := math.Sqrt(d2); d < best {
			best = d
		}
	}
	for _, h := range shape.Holes {
		for _, e := range h.Edges() {
			_, d2 := e.ClosestPoint(p)
			if d := math.Sqrt(d2); d < best {
				best = d
			}
		}
	}
	for _, pole := range existing {
		d := p.Distance(pole.Center) - pole.Radius
		if d < best {
			best = d
		}
	}
	return best
}

// generateNextPole finds the largest inscribed disk of shape that is
// disjoint from every pole in existing, via a bounded depth-first
// branch-and-bound quadtree refinement over the shape's bounding
// square (spec §4.D:
// "the largest inscribed disk... disjoint from all previously chosen
// poles").
func generateNextPole(shape geo.Shape, existing []geo.Circle, eps collide.Epsilon) (geo.Circle, bool) {
	box := squareify(shape.BoundingBox())
	root := newPOINode(box, maxPoleSearchDepth, shape, existing, eps)

	stack := []poiNode{root}
	var best *poiNode
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if best == nil || n.distance > best.distance {
			cp := n
			best = &cp
		}
		bestDist := 0.0
		if best != nil {
			bestDist = best.distance
		}
		if n.depth == 0 || n.upperBound() <= bestDist {
			continue
		}
		for _, q := range n.rect.Quadrants() {
			stack = append(stack, newPOINode(q, n.depth-1, shape, existing, eps))
		}
	}
	if best == nil || best.distance <= 0 {
		return geo.Circle{}, false
	}
	return geo.Circle{Center: best.rect.Center(), Radius: best.distance}, true
}

func squareify(r geo.Rect) geo.Rect {
	w, h := r.Width(), r.Height()
	side := math.Max(w, h)
	cx, cy := r.Center().X, r.Center().Y
	half := side / 2
	return geo.Rect{MinX: cx - half, MinY: cy - half, MaxX: cx + half, MaxY: cy + half}
}
