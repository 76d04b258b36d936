package geo

// Placement is a rigid transformation: rotate by Theta radians around
// the origin, then translate by (DX, DY) (rotation is applied to the
// item's local coordinates before translation, i.e. the item
// prototype is defined around its own origin).
type Placement struct {
	DX, DY float64
	Theta  float64
}

// Identity is the no-op placement.
var Identity = Placement{}

// Apply transforms a single point by the placement.
func (pl Placement) Apply(p Point) Point {
	r := p.Rotate(pl.Theta)
	return Point{r.X + pl.DX, r.Y + pl.DY}
}

// ApplyEdge transforms both endpoints of an edge.
func (pl Placement) ApplyEdge(e Edge) Edge {
	return Edge{A: pl.Apply(e.A), B: pl.Apply(e.B)}
}

// ApplyShape returns the shape transformed by the placement. It does
// not mutate the prototype shape and does not attempt to cache the
// result; callers on hot paths should transform lazily edge-by-edge
// instead (see pkg/cde) rather than materializing a full transformed
// shape per query.
func (pl Placement) ApplyShape(s Shape) Shape {
	return s.Rotated(pl.Theta).Translated(pl.DX, pl.DY)
}

// ApplyCircle transforms a circle's center by the placement; a
// circle's radius is rotation-invariant.
func (pl Placement) ApplyCircle(c Circle) Circle {
	return Circle{Center: pl.Apply(c.Center), Radius: c.Radius}
}
