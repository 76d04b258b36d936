package geo

// Circle is a disk defined by a center point and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// BoundingBox returns the axis-aligned bounding rectangle of the circle.
func (c Circle) BoundingBox() Rect {
	return Rect{
		MinX: c.Center.X - c.Radius, MinY: c.Center.Y - c.Radius,
		MaxX: c.Center.X + c.Radius, MaxY: c.Center.Y + c.Radius,
	}
}

// ContainsPoint reports whether p lies inside or on the boundary of c.
func (c Circle) ContainsPoint(p Point) bool {
	return p.DistanceSquared(c.Center) <= c.Radius*c.Radius
}
