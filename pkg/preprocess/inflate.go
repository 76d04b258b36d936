package preprocess

import "github.com/ChicagoDave/nestcde/pkg/geo"

// inflate expands a CCW exterior ring outward by distance d, moving
// each vertex along the average of its two adjacent edge normals. Used
// to realize min_item_separation as a preprocessing-time buffer (spec
// §6) rather than a per-query separation test.
func inflate(r geo.Ring, d float64) geo.Ring {
	if d <= 0 {
		return r
	}
	n := r.Len()
	if n < 3 {
		return r
	}
	out := make([]geo.Point, n)
	for i := 0; i < n; i++ {
		prev := r.Vertices[(i-1+n)%n]
		cur := r.Vertices[i]
		next := r.Vertices[(i+1)%n]

		n1 := outwardNormal(prev, cur)
		n2 := outwardNormal(cur, next)
		avg := n1.Add(n2)
		l := avg.Length()
		if l < 1e-12 {
			out[i] = cur
			continue
		}
		avg = avg.Scale(1.0 / l)
		out[i] = cur.Add(avg.Scale(d))
	}
	return geo.Ring{Vertices: out}
}

// outwardNormal returns the unit outward-facing normal of the directed
// edge a->b, assuming CCW winding (outward is to the right of travel).
func outwardNormal(a, b geo.Point) geo.Point {
	v := b.Sub(a)
	l := v.Length()
	if l < 1e-12 {
		return geo.Point{}
	}
	return geo.Point{X: v.Y / l, Y: -v.X / l}
}
