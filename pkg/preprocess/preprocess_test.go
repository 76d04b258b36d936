package preprocess

import (
	"testing"

	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/config"
	"github.com/ChicagoDave/nestcde/pkg/diagnostics"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

func testEps() collide.Epsilon {
	return collide.DefaultEpsilon(141)
}

func TestRemoveDegenerateStripsCollinearVertex(t *testing.T) {
	r := geo.NewRing(geo.Pt(0, 0), geo.Pt(5, 0), geo.Pt(10, 0), geo.Pt(10, 10), geo.Pt(0, 10))
	out := removeDegenerate(r, 1e-3)
	if out.Len() != 4 {
		t.Fatalf("expected the collinear midpoint to be removed, got %d vertices", out.Len())
	}
}

func TestRemoveDegenerateStripsZeroLengthEdge(t *testing.T) {
	r := geo.NewRing(geo.Pt(0, 0), geo.Pt(0, 0), geo.Pt(10, 0), geo.Pt(10, 10), geo.Pt(0, 10))
	out := removeDegenerate(r, 1e-3)
	if out.Len() != 4 {
		t.Fatalf("expected the duplicate vertex to be removed, got %d vertices", out.Len())
	}
}

func notchedSquare() geo.Ring {
	// A square with a small triangular notch bitten out of one edge.
	return geo.NewRing(
		geo.Pt(0, 0), geo.Pt(4, 0), geo.Pt(5, 1), geo.Pt(6, 0), geo.Pt(10, 0),
		geo.Pt(10, 10), geo.Pt(0, 10),
	)
}

func TestPruneNarrowConcavitiesRemovesNotch(t *testing.T) {
	r := notchedSquare()
	out := pruneNarrowConcavities(r, 5)
	if out.Len() >= r.Len() {
		t.Fatalf("expected the notch vertex to be pruned, got %d vertices (started with %d)", out.Len(), r.Len())
	}
	if out.Area() < r.Area() {
		t.Error("pruning a concavity must never shrink the polygon")
	}
}

func TestPruneNarrowConcavitiesDisabledAtZero(t *testing.T) {
	r := notchedSquare()
	out := pruneNarrowConcavities(r, 0)
	if out.Len() != r.Len() {
		t.Error("a zero mouth-width threshold must disable pruning")
	}
}

func TestSimplifyInflateNeverShrinks(t *testing.T) {
	r := notchedSquare()
	originalArea := r.Area()
	out := simplifyInflate(r, 0.5, testEps())
	if out.Area() < originalArea-1e-9 {
		t.Error("simplification must be a conservative over-approximation")
	}
}

func TestSimplifyInflateRespectsTolerance(t *testing.T) {
	r := notchedSquare()
	originalArea := r.Area()
	out := simplifyInflate(r, 1e-9, testEps())
	delta := (out.Area() - originalArea) / originalArea
	if delta > 1e-9+1e-12 {
		t.Errorf("expected simplification to respect a near-zero tolerance, got delta %v", delta)
	}
}

func TestInflateGrowsRing(t *testing.T) {
	r := geo.NewRing(geo.Pt(0, 0), geo.Pt(10, 0), geo.Pt(10, 10), geo.Pt(0, 10)).EnsureCCW()
	out := inflate(r, 1)
	if out.Area() <= r.Area() {
		t.Fatal("expected inflate to grow the ring's area")
	}
}

func TestShapeNormalizesOrientation(t *testing.T) {
	ext := geo.NewRing(geo.Pt(0, 0), geo.Pt(0, 10), geo.Pt(10, 10), geo.Pt(10, 0)) // CW
	hole := geo.NewRing(geo.Pt(4, 4), geo.Pt(5, 4), geo.Pt(5, 5), geo.Pt(4, 5))    // CCW
	shape := geo.NewShape(ext, hole)

	out, err := Shape(shape, config.Default(), testEps(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Exterior.IsCCW() {
		t.Error("expected exterior to be normalized to CCW")
	}
	if out.Holes[0].IsCCW() {
		t.Error("expected hole to be normalized to CW")
	}
}

func TestShapeRejectsSelfIntersectingExterior(t *testing.T) {
	bowtie := geo.NewRing(geo.Pt(0, 0), geo.Pt(10, 10), geo.Pt(10, 0), geo.Pt(0, 10))
	_, err := Shape(geo.NewShape(bowtie), config.Default(), testEps(), nil)
	if err == nil {
		t.Fatal("expected a self-intersecting ring to be rejected")
	}
}

func TestShapeNeverShrinksANotchedHole(t *testing.T) {
	// A hole wound clockwise (the container convention) with a narrow
	// notch bitten into one edge. isReflex only reads correctly on CCW
	// rings, so if the concavity/simplification passes ever ran
	// directly on this CW ring they would prune a convex vertex instead
	// of the reflex notch, shrinking the hole below its original area.
	ext := geo.NewRing(geo.Pt(0, 0), geo.Pt(20, 0), geo.Pt(20, 20), geo.Pt(0, 20))
	hole := geo.NewRing(
		geo.Pt(5, 5), geo.Pt(5, 15), geo.Pt(10, 15), geo.Pt(9, 10), geo.Pt(10, 5),
	).EnsureCW()
	originalHoleArea := hole.Area()

	cfg := config.Default()
	cfg.ConcavityMouthWidth = 5
	cfg.PolySimplTolerance = 0.5

	shape, err := Shape(geo.NewShape(ext, hole), cfg, testEps(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(shape.Holes) != 1 {
		t.Fatalf("expected 1 hole, got %d", len(shape.Holes))
	}
	if shape.Holes[0].IsCCW() {
		t.Error("expected the hole to remain CW after preprocessing")
	}
	if shape.Holes[0].Area() < originalHoleArea-1e-9 {
		t.Errorf("hole shrank from %v to %v; holes must only ever grow or stay the same", originalHoleArea, shape.Holes[0].Area())
	}
}

func TestShapeAppliesMinItemSeparation(t *testing.T) {
	square := geo.NewRing(geo.Pt(0, 0), geo.Pt(10, 0), geo.Pt(10, 10), geo.Pt(0, 10))
	cfg := config.Default()
	cfg.MinItemSeparation = 1
	out, err := Shape(geo.NewShape(square), cfg, testEps(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Area() <= square.Area() {
		t.Error("expected min_item_separation to inflate the exterior")
	}
}

func TestShapeReportsFindingsWithoutFailing(t *testing.T) {
	r := geo.NewRing(geo.Pt(0, 0), geo.Pt(5, 0), geo.Pt(10, 0), geo.Pt(10, 10), geo.Pt(0, 10))
	report := &diagnostics.Report{}
	_, err := Shape(geo.NewShape(r), config.Default(), testEps(), report)
	if err != nil {
		t.Fatal(err)
	}
	if report.Empty() {
		t.Error("expected the degenerate-vertex removal to be recorded as a finding")
	}
}
