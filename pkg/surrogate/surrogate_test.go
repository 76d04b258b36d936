package surrogate

import (
	"math"
	"testing"

	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/config"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

func testEps() collide.Epsilon {
	return collide.DefaultEpsilon(141)
}

func unitSquareShape() geo.Shape {
	return geo.NewShape(geo.NewRing(geo.Pt(0, 0), geo.Pt(10, 0), geo.Pt(10, 10), geo.Pt(0, 10)))
}

func TestGenerateNextPoleLiesInsideSquare(t *testing.T) {
	shape := unitSquareShape()
	pole, ok := generateNextPole(shape, nil, testEps())
	if !ok {
		t.Fatal("expected a pole for a 10x10 square")
	}
	if collide.PointInShape(pole.Center, shape, testEps()) != collide.Inside {
		t.Error("pole center must lie strictly inside the shape")
	}
	if pole.Radius <= 0 {
		t.Error("expected a positive pole radius")
	}
	// The largest inscribed disk of a 10x10 square is centered near
	// (5,5) with radius near 5.
	if pole.Center.Distance(geo.Pt(5, 5)) > 1.0 {
		t.Errorf("expected the first pole near the square's center, got %+v", pole.Center)
	}
}

func TestGenerateNextPoleDisjointFromExisting(t *testing.T) {
	shape := unitSquareShape()
	first, _ := generateNextPole(shape, nil, testEps())
	second, ok := generateNextPole(shape, []geo.Circle{first}, testEps())
	if !ok {
		t.Skip("second pole not found for this shape/depth, acceptable for a single-inscribed-disk square")
	}
	if first.Center.Distance(second.Center) < first.Radius+second.Radius-1e-6 {
		t.Error("expected the second pole to be disjoint from the first")
	}
}

func TestBuildPolesSoundness(t *testing.T) {
	shape := unitSquareShape()
	cfg := config.Default()
	s := Build(shape, cfg, testEps(), nil)

	if len(s.Poles) == 0 {
		t.Fatal("expected at least one pole")
	}
	for i, p := range s.Poles {
		if collide.PointInShape(p.Center, shape, testEps()) != collide.Inside {
			t.Errorf("pole %d center not strictly inside shape", i)
		}
		for j, q := range s.Poles {
			if i == j {
				continue
			}
			if p.Center.Distance(q.Center) < p.Radius+q.Radius-1e-6 {
				t.Errorf("poles %d and %d overlap", i, j)
			}
		}
	}
}

func TestBuildPolesSortedDescending(t *testing.T) {
	s := Build(unitSquareShape(), config.Default(), testEps(), nil)
	for i := 1; i < len(s.Poles); i++ {
		if s.Poles[i].Radius > s.Poles[i-1].Radius {
			t.Fatal("expected poles sorted by radius descending")
		}
	}
}

func TestFailFastPolesClampedToAvailable(t *testing.T) {
	cfg := config.Default()
	cfg.NFailFastPoles = 100
	s := Build(unitSquareShape(), cfg, testEps(), nil)
	if len(s.FailFastPoles()) != len(s.Poles) {
		t.Errorf("expected fail-fast subset clamped to %d poles, got %d", len(s.Poles), len(s.FailFastPoles()))
	}
}

func TestBoundingPoleEnclosesAllPoles(t *testing.T) {
	s := Build(unitSquareShape(), config.Default(), testEps(), nil)
	for _, p := range s.Poles {
		d := s.BoundingPole.Center.Distance(p.Center) + p.Radius
		if d > s.BoundingPole.Radius+1e-6 {
			t.Errorf("bounding pole does not enclose pole at %+v radius %v", p.Center, p.Radius)
		}
	}
}

func TestConvexHullIndicesOfSquare(t *testing.T) {
	verts := unitSquareShape().Exterior.Vertices
	hull := ConvexHullIndices(verts)
	if len(hull) != 4 {
		t.Fatalf("expected all 4 square vertices on the hull, got %d", len(hull))
	}
}

func TestConvexHullDropsInteriorPoint(t *testing.T) {
	verts := []geo.Point{geo.Pt(0, 0), geo.Pt(10, 0), geo.Pt(10, 10), geo.Pt(0, 10), geo.Pt(5, 5)}
	hull := ConvexHullIndices(verts)
	for _, idx := range hull {
		if idx == 4 {
			t.Fatal("expected the interior point to be excluded from the convex hull")
		}
	}
}

func TestTransformedAppliesPlacement(t *testing.T) {
	s := Build(unitSquareShape(), config.Default(), testEps(), nil)
	pl := geo.Placement{DX: 100, DY: 50, Theta: 0}
	out := s.Transformed(pl)
	for i, p := range s.Poles {
		want := pl.Apply(p.Center)
		if out.Poles[i].Center.Distance(want) > 1e-9 {
			t.Errorf("pole %d not transformed correctly", i)
		}
		if out.Poles[i].Radius != p.Radius {
			t.Error("rotation-invariant radius changed under translation")
		}
	}
}

func TestSmallestEnclosingCircleEnclosesSinglePole(t *testing.T) {
	c := smallestEnclosingCircle([]geo.Circle{{Center: geo.Pt(1, 1), Radius: 3}})
	if c.Radius != 3 || c.Center != (geo.Pt(1, 1)) {
		t.Errorf("expected the single-pole case to return that pole unchanged, got %+v", c)
	}
}

func TestGeneratePiersMidpointInsideShape(t *testing.T) {
	shape := unitSquareShape()
	s := Build(shape, config.Default(), testEps(), nil)
	for _, pier := range s.Piers {
		mid := pier.A.Lerp(pier.B, 0.5)
		if collide.PointInShape(mid, shape, testEps()) == collide.Outside {
			t.Error("expected pier midpoint to lie inside the shape")
		}
	}
}

func TestTierSatisfiedRequiresThreshold(t *testing.T) {
	schedule := []config.CoverageTier{{Count: 1, Coverage: 0.5}, {Count: 4, Coverage: 0.9}}
	if tierSatisfied(schedule, 1, 0.4) {
		t.Error("expected tier 1 with insufficient coverage to not be satisfied")
	}
	if !tierSatisfied(schedule, 1, 0.6) {
		t.Error("expected tier 1 with sufficient coverage to be satisfied")
	}
	if tierSatisfied(schedule, 4, 0.8) {
		t.Error("expected tier 4's higher threshold to override tier 1's")
	}
}

func TestSquareifyProducesSquare(t *testing.T) {
	r := squareify(geo.Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 5})
	if math.Abs(r.Width()-r.Height()) > 1e-9 {
		t.Error("expected squareify to produce equal width and height")
	}
}
