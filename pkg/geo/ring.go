package geo

import "math"

// Ring is a closed, simple polygon boundary: an ordered sequence of
// vertices with an implicit edge back from the last vertex to the
// first. Exterior rings are oriented CCW, hole rings CW (see
// EnsureCCW/EnsureCW); orientation is normalized by the preprocessor,
// not enforced by the type itself.
type Ring struct {
	Vertices []Point
}

// NewRing builds a ring from the given vertices, in order.
func NewRing(pts ...Point) Ring {
	return Ring{Vertices: pts}
}

// Len returns the number of vertices.
func (r Ring) Len() int {
	return len(r.Vertices)
}

// IsEmpty reports whether the ring has fewer than 3 vertices.
func (r Ring) IsEmpty() bool {
	return len(r.Vertices) < 3
}

// Edge returns the i-th edge as (start, end); the index wraps around so
// that Edge(Len()-1) is the closing edge back to Vertices[0].
func (r Ring) Edge(i int) Edge {
	n := len(r.Vertices)
	return Edge{A: r.Vertices[i%n], B: r.Vertices[(i+1)%n]}
}

// Edges returns every edge of the ring, in vertex order.
func (r Ring) Edges() []Edge {
	n := len(r.Vertices)
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = r.Edge(i)
	}
	return edges
}

// SignedArea returns the signed area via the shoelace formula. Positive
// for CCW winding, negative for CW.
func (r Ring) SignedArea() float64 {
	n := len(r.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += r.Vertices[i].X * r.Vertices[j].Y
		area -= r.Vertices[j].X * r.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the ring.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// IsCCW reports whether the ring winds counter-clockwise.
func (r Ring) IsCCW() bool {
	return r.SignedArea() > 0
}

// EnsureCCW returns the ring with vertices in counter-clockwise order.
func (r Ring) EnsureCCW() Ring {
	if r.SignedArea() < 0 {
		return r.Reverse()
	}
	return r
}

// EnsureCW returns the ring with vertices in clockwise order.
func (r Ring) EnsureCW() Ring {
	if r.SignedArea() > 0 {
		return r.Reverse()
	}
	return r
}

// Reverse returns the ring with reversed vertex order.
func (r Ring) Reverse() Ring {
	n := len(r.Vertices)
	rev := make([]Point, n)
	for i, v := range r.Vertices {
		rev[n-1-i] = v
	}
	return Ring{Vertices: rev}
}

// Centroid returns the area-weighted centroid of the ring. Degenerate
// (near-zero-area) rings fall back to the vertex average.
func (r Ring) Centroid() Point {
	n := len(r.Vertices)
	if n == 0 {
		return Point{}
	}
	a := r.SignedArea()
	if n < 3 || math.Abs(a) < 1e-12 {
		sum := Point{}
		for _, v := range r.Vertices {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := r.Vertices[i].X*r.Vertices[j].Y - r.Vertices[j].X*r.Vertices[i].Y
		cx += (r.Vertices[i].X + r.Vertices[j].X) * cross
		cy += (r.Vertices[i].Y + r.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point{cx * f, cy * f}
}

// BoundingBox returns the axis-aligned bounding rectangle of the ring.
func (r Ring) BoundingBox() Rect {
	box := EmptyRect()
	for _, v := range r.Vertices {
		box.ExpandToPoint(v)
	}
	return box
}

// Perimeter returns the total boundary length.
func (r Ring) Perimeter() float64 {
	n := len(r.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += r.Edge(i).Length()
	}
	return total
}

// Translated returns the ring translated by (dx, dy).
func (r Ring) Translated(dx, dy float64) Ring {
	out := make([]Point, len(r.Vertices))
	for i, v := range r.Vertices {
		out[i] = Point{v.X + dx, v.Y + dy}
	}
	return Ring{Vertices: out}
}

// Rotated returns the ring rotated by angle radians around the origin.
func (r Ring) Rotated(angle float64) Ring {
	out := make([]Point, len(r.Vertices))
	for i, v := range r.Vertices {
		out[i] = v.Rotate(angle)
	}
	return Ring{Vertices: out}
}

// Clone returns a deep copy of the ring.
func (r Ring) Clone() Ring {
	out := make([]Point, len(r.Vertices))
	copy(out, r.Vertices)
	return Ring{Vertices: out}
}
