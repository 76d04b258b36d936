package surrogate

import "github.com/ChicagoDave/nestcde/pkg/geo"

// smallestEnclosingCircle returns a circle enclosing every pole disk,
// used as the surrogate's outermost trivial-reject bound (spec §4.D).
//
// This centers on the mean of the pole centers and grows the radius to
// reach the farthest pole's edge, rather than solving for the true
// minimum enclosing circle: the bounding pole is only ever used to
// short-circuit a query early, never to confirm one, so a
// non-minimal-but-always-enclosing circle is exactly as correct and
// considerably simpler than an exact Apollonius fit.
func smallestEnclosingCircle(poles []geo.Circle) geo.Circle {
	if len(poles) == 0 {
		return geo.Circle{}
	}
	var sum geo.Point
	for _, p := range poles {
		sum = sum.Add(p.Center)
	}
	center := sum.Scale(1.0 / float64(len(poles)))

	radius := 0.0
	for _, p := range poles {
		if r := center.Distance(p.Center) + p.Radius; r > radius {
			radius = r
		}
	}
	return geo.Circle{Center: center, Radius: radius}
}
