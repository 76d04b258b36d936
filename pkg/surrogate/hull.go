package surrogate

import (
	"sort"

	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// ConvexHullIndices returns the indices, into verts, of the vertices
// that lie on the convex hull, via the monotone chain algorithm.
func ConvexHullIndices(verts []geo.Point) []int {
	n := len(verts)
	if n < 3 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := verts[order[a]], verts[order[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Y < pb.Y
	})

	cross := func(o, a, b int) float64 {
		return verts[a].Sub(verts[o]).Cross(verts[b].Sub(verts[o]))
	}

	grow := func(seq []int, p int) []int {
		for len(seq) >= 2 && cross(seq[len(seq)-2], seq[len(seq)-1], p) <= 0 {
			seq = seq[:len(seq)-1]
		}
		return append(seq, p)
	}

	lower := make([]int, 0, n)
	for _, idx := range order {
		lower = grow(lower, idx)
	}
	upper := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		upper = grow(upper, order[i])
	}
	lower = lower[:len(lower)-1]
	upper = upper[:len(upper)-1]
	return append(lower, upper...)
}
