package preprocess

import (
	"math"

	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// removeDegenerate strips zero-length edges and collinear-degenerate
// vertex triples (inner angle within angleEps of pi radians), per spec
// §4.C step 1. Stripping stops once 3 vertices remain, so a ring that
// is still degenerate at that point is left for the caller's
// validation to reject explicitly.
func removeDegenerate(r geo.Ring, angleEps float64) geo.Ring {
	verts := r.Vertices
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
			if isZeroLength(prev, cur) || isZeroLength(cur, next) {
				removed = i
				break
			}
			if isCollinearDegenerate(prev, cur, next, angleEps) {
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

func isZeroLength(a, b geo.Point) bool {
	return a.DistanceSquared(b) < 1e-20
}

// isCollinearDegenerate reports whether the interior angle at cur,
// formed by prev-cur-next, is within angleEps of pi radians (a "flat"
// vertex contributing no shape information).
func isCollinearDegenerate(prev, cur, next geo.Point, angleEps float64) bool {
	v1 := prev.Sub(cur)
	v2 := next.Sub(cur)
	l1, l2 := v1.Length(), v2.Length()
	if l1 < 1e-15 || l2 < 1e-15 {
		return true
	}
	cosAngle := v1.Dot(v2) / (l1 * l2)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))
	angle := math.Acos(cosAngle)
	return math.Abs(angle-math.Pi) <= angleEps
}
