package geo

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointRotate(t *testing.T) {
	p := Pt(1, 0)
	r := p.Rotate(math.Pi / 2)
	if !approxEqual(r.X, 0, 1e-9) || !approxEqual(r.Y, 1, 1e-9) {
		t.Errorf("expected (0,1), got (%f,%f)", r.X, r.Y)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{10, 0, 20, 10}
	if !a.Intersects(b) {
		t.Error("expected touching rectangles to intersect")
	}
	c := Rect{10.0001, 0, 20, 10}
	if a.Intersects(c) {
		t.Error("expected separated rectangles not to intersect")
	}
}

func TestRectQuadrantsOrder(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	q := r.Quadrants()
	// NW
	if q[0].MinX != 0 || q[0].MinY != 5 || q[0].MaxX != 5 || q[0].MaxY != 10 {
		t.Errorf("unexpected NW quadrant: %+v", q[0])
	}
	// SE
	if q[3].MinX != 5 || q[3].MinY != 0 || q[3].MaxX != 10 || q[3].MaxY != 5 {
		t.Errorf("unexpected SE quadrant: %+v", q[3])
	}
}

func TestRingSignedAreaOrientation(t *testing.T) {
	ccw := NewRing(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	if !ccw.IsCCW() {
		t.Error("expected unit square to be CCW")
	}
	if !approxEqual(ccw.Area(), 1.0, tolerance) {
		t.Errorf("expected area 1.0, got %f", ccw.Area())
	}
	cw := ccw.Reverse()
	if cw.IsCCW() {
		t.Error("expected reversed square to be CW")
	}
}

func TestRingCentroidOfSquare(t *testing.T) {
	sq := NewRing(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2))
	c := sq.Centroid()
	if !approxEqual(c.X, 1, tolerance) || !approxEqual(c.Y, 1, tolerance) {
		t.Errorf("expected centroid (1,1), got (%f,%f)", c.X, c.Y)
	}
}

func TestShapeAreaSubtractsHoles(t *testing.T) {
	outer := NewRing(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	hole := NewRing(Pt(4, 4), Pt(6, 4), Pt(6, 6), Pt(4, 6)).EnsureCW()
	s := NewShape(outer, hole)
	if !approxEqual(s.Area(), 96, tolerance) {
		t.Errorf("expected area 96, got %f", s.Area())
	}
}

func TestShapeEdgeAtMatchesEdges(t *testing.T) {
	outer := NewRing(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	hole := NewRing(Pt(4, 4), Pt(6, 4), Pt(6, 6), Pt(4, 6))
	s := NewShape(outer, hole)
	all := s.Edges()
	for i, e := range all {
		if s.EdgeAt(i) != e {
			t.Errorf("EdgeAt(%d) = %+v, want %+v", i, s.EdgeAt(i), e)
		}
	}
}

func TestPlacementApplyRotatesThenTranslates(t *testing.T) {
	pl := Placement{DX: 5, DY: -2, Theta: math.Pi}
	p := Pt(1, 0)
	out := pl.Apply(p)
	if !approxEqual(out.X, 4, 1e-9) || !approxEqual(out.Y, -2, 1e-9) {
		t.Errorf("expected (4,-2), got (%f,%f)", out.X, out.Y)
	}
}
