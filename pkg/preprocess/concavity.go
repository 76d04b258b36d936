package preprocess

import "github.com/ChicagoDave/nestcde/pkg/geo"

// pruneNarrowConcavities removes reflex (concave) vertices whose "mouth
// width" - the distance between the two vertices bracketing the notch -
// falls below minMouth, per spec §4.C step 2.
//
// This is documented as lossy: removing a concave vertex replaces the
// notch with the straight chord between its neighbors, which can only
// grow the polygon's area, never shrink it, so the result remains a
// conservative over-approximation of the original hazard. The mouth-
// width metric is not uniquely defined in the source material; this
// package uses neighbor-to-neighbor chord length, the simplest metric
// that is monotonic in how "narrow" a notch looks. minMouth <= 0
// disables pruning entirely.
func pruneNarrowConcavities(r geo.Ring, minMouth float64) geo.Ring {
	if minMouth <= 0 {
		return r
	}
	verts := append([]geo.Point{}, r.Vertices...)
	for {
		n := len(verts)
		if n < 4 {
			break
		}
		removed := -1
		for i := 0; i < n; i++ {
			prev := verts[(i-1+n)%n]
			cur := verts[i]
			next := verts[(i+1)%n]
			if !isReflex(prev, cur, next) {
				continue
			}
			if prev.Distance(next) < minMouth {
				removed = i
				break
			}
		}
		if removed < 0 {
			break
		}
		verts = append(append([]geo.Point{}, verts[:removed]...), verts[removed+1:]...)
	}
	return geo.Ring{Vertices: verts}
}

// isReflex reports whether the interior angle at cur is reflex (> 180
// degrees) under the assumption the ring is CCW-oriented.
func isReflex(prev, cur, next geo.Point) bool {
	cross := cur.Sub(prev).Cross(next.Sub(cur))
	return cross < 0
}
