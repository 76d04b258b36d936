package collide

import (
	"testing"

	"github.com/ChicagoDave/nestcde/pkg/geo"
)

var eps = DefaultEpsilon(100)

func TestEdgeEdgeCrossing(t *testing.T) {
	a := geo.Seg(geo.Pt(0, 0), geo.Pt(10, 10))
	b := geo.Seg(geo.Pt(0, 10), geo.Pt(10, 0))
	if !EdgeEdge(a, b, eps) {
		t.Error("expected crossing segments to collide")
	}
}

func TestEdgeEdgeDisjoint(t *testing.T) {
	a := geo.Seg(geo.Pt(0, 0), geo.Pt(1, 0))
	b := geo.Seg(geo.Pt(0, 5), geo.Pt(1, 5))
	if EdgeEdge(a, b, eps) {
		t.Error("expected parallel disjoint segments not to collide")
	}
}

func TestEdgeEdgeTouchingEndpoint(t *testing.T) {
	a := geo.Seg(geo.Pt(0, 0), geo.Pt(1, 0))
	b := geo.Seg(geo.Pt(1, 0), geo.Pt(2, 1))
	if !EdgeEdge(a, b, eps) {
		t.Error("expected touching endpoint to collide (conservative)")
	}
}

func TestEdgeRectEndpointInside(t *testing.T) {
	r := geo.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	e := geo.Seg(geo.Pt(5, 5), geo.Pt(20, 20))
	if !EdgeRect(e, r) {
		t.Error("expected edge with endpoint inside rect to collide")
	}
}

func TestEdgeRectPassThrough(t *testing.T) {
	r := geo.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	e := geo.Seg(geo.Pt(-5, 5), geo.Pt(15, 5))
	if !EdgeRect(e, r) {
		t.Error("expected edge passing through rect to collide")
	}
}

func TestEdgeRectMiss(t *testing.T) {
	r := geo.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	e := geo.Seg(geo.Pt(20, 20), geo.Pt(30, 30))
	if EdgeRect(e, r) {
		t.Error("expected far edge not to collide")
	}
}

func TestCircleEdge(t *testing.T) {
	c := geo.Circle{Center: geo.Pt(0, 0), Radius: 1}
	near := geo.Seg(geo.Pt(0.5, 0.5), geo.Pt(2, 2))
	if !CircleEdge(c, near) {
		t.Error("expected nearby edge to collide with circle")
	}
	far := geo.Seg(geo.Pt(5, 5), geo.Pt(6, 6))
	if CircleEdge(c, far) {
		t.Error("expected far edge not to collide with circle")
	}
}

func TestCircleRect(t *testing.T) {
	r := geo.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	inside := geo.Circle{Center: geo.Pt(5, 5), Radius: 1}
	if !CircleRect(inside, r) {
		t.Error("expected circle inside rect to collide")
	}
	outside := geo.Circle{Center: geo.Pt(50, 50), Radius: 1}
	if CircleRect(outside, r) {
		t.Error("expected far circle not to collide with rect")
	}
	touching := geo.Circle{Center: geo.Pt(11, 5), Radius: 1}
	if !CircleRect(touching, r) {
		t.Error("expected touching circle to collide with rect")
	}
}

func square(minX, minY, maxX, maxY float64) geo.Ring {
	return geo.NewRing(geo.Pt(minX, minY), geo.Pt(maxX, minY), geo.Pt(maxX, maxY), geo.Pt(minX, maxY))
}

func TestPointInEdgesInsideOutside(t *testing.T) {
	sq := square(0, 0, 10, 10)
	if PointInEdges(geo.Pt(5, 5), sq.Edges(), eps) != Inside {
		t.Error("expected center to be inside")
	}
	if PointInEdges(geo.Pt(50, 50), sq.Edges(), eps) != Outside {
		t.Error("expected far point to be outside")
	}
}

func TestPointInEdgesBoundary(t *testing.T) {
	sq := square(0, 0, 10, 10)
	if PointInEdges(geo.Pt(0, 5), sq.Edges(), eps) != Boundary {
		t.Error("expected edge point to be boundary")
	}
	if PointInEdges(geo.Pt(0, 0), sq.Edges(), eps) != Boundary {
		t.Error("expected vertex point to be boundary")
	}
}

func TestPointInShapeHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(4, 4, 6, 6).EnsureCW()
	s := geo.NewShape(outer, hole)
	if PointInShape(geo.Pt(5, 5), s, eps) != Outside {
		t.Error("expected point inside hole to be outside the shape")
	}
	if PointInShape(geo.Pt(1, 1), s, eps) != Inside {
		t.Error("expected point outside hole but inside exterior to be inside")
	}
}
