package geo

// Shape is one exterior ring plus zero or more interior rings (holes).
// By convention the exterior is CCW and holes are CW once normalized by
// the preprocessor (see pkg/preprocess).
type Shape struct {
	Exterior Ring
	Holes    []Ring
}

// NewShape builds a shape from an exterior ring and optional holes.
func NewShape(exterior Ring, holes ...Ring) Shape {
	return Shape{Exterior: exterior, Holes: holes}
}

// EdgeCount returns the total number of edges across the exterior and
// all holes.
func (s Shape) EdgeCount() int {
	n := s.Exterior.Len()
	for _, h := range s.Holes {
		n += h.Len()
	}
	return n
}

// Edges returns every edge of the shape: the exterior ring's edges
// first, in order, followed by each hole's edges in order. This is the
// canonical edge ordering used to index into a shape by edge number
// (e.g. the quadtree's per-node edge indices).
func (s Shape) Edges() []Edge {
	edges := make([]Edge, 0, s.EdgeCount())
	edges = append(edges, s.Exterior.Edges()...)
	for _, h := range s.Holes {
		edges = append(edges, h.Edges()...)
	}
	return edges
}

// EdgeAt returns the edge at the given index in the canonical Edges()
// ordering, without allocating the full slice.
func (s Shape) EdgeAt(i int) Edge {
	n := s.Exterior.Len()
	if i < n {
		return s.Exterior.Edge(i)
	}
	i -= n
	for _, h := range s.Holes {
		if i < h.Len() {
			return h.Edge(i)
		}
		i -= h.Len()
	}
	panic("geo: EdgeAt index out of range")
}

// Area returns the exterior area minus the area of all holes.
func (s Shape) Area() float64 {
	area := s.Exterior.Area()
	for _, h := range s.Holes {
		area -= h.Area()
	}
	if area < 0 {
		return 0
	}
	return area
}

// Centroid returns the exterior ring's area-weighted centroid. Holes
// are not subtracted from the centroid computation; for the small,
// hole-sparse hazards this engine deals with, the exterior centroid is
// used as the representative interior point. Nothing checks that it
// lies inside the shape: for a concave exterior or a shape with holes
// it can fall outside.
func (s Shape) Centroid() Point {
	return s.Exterior.Centroid()
}

// BoundingBox returns the axis-aligned bounding rectangle of the
// exterior ring (holes are contained within it by construction).
func (s Shape) BoundingBox() Rect {
	return s.Exterior.BoundingBox()
}

// Translated returns the shape translated by (dx, dy).
func (s Shape) Translated(dx, dy float64) Shape {
	holes := make([]Ring, len(s.Holes))
	for i, h := range s.Holes {
		holes[i] = h.Translated(dx, dy)
	}
	return Shape{Exterior: s.Exterior.Translated(dx, dy), Holes: holes}
}

// Rotated returns the shape rotated by angle radians around the origin.
func (s Shape) Rotated(angle float64) Shape {
	holes := make([]Ring, len(s.Holes))
	for i, h := range s.Holes {
		holes[i] = h.Rotated(angle)
	}
	return Shape{Exterior: s.Exterior.Rotated(angle), Holes: holes}
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	holes := make([]Ring, len(s.Holes))
	for i, h := range s.Holes {
		holes[i] = h.Clone()
	}
	return Shape{Exterior: s.Exterior.Clone(), Holes: holes}
}
