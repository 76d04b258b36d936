package instance

import (
	"testing"

	"github.com/ChicagoDave/nestcde/pkg/cde"
	"github.com/ChicagoDave/nestcde/pkg/config"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

func newEngine(t *testing.T, inst Instance) *cde.Engine {
	t.Helper()
	return cde.New(inst.Container.Bounds(), config.Default())
}

func square(cx, cy, half float64) RingSpec {
	return RingSpec{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}
}

func testInstance() Instance {
	return Instance{
		Container: ContainerSpec{
			Outer: square(50, 50, 50),
			Holes: []RingSpec{square(10, 10, 3)},
			QualityZones: []QualityZoneSpec{
				{Polygon: square(80, 80, 5), Level: 2},
			},
		},
		Items: []ItemSpec{
			{ID: "part-a", Polygon: square(0, 0, 1), Demand: 3, AllowedRotations: []float64{0, 1.5707963267948966}},
		},
	}
}

func TestContainerSpecShapeAndBounds(t *testing.T) {
	c := testInstance().Container
	shape := c.Shape()
	if len(shape.Holes) != 1 {
		t.Fatalf("expected 1 hole, got %d", len(shape.Holes))
	}
	bounds := c.Bounds()
	want := geo.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	if bounds != want {
		t.Errorf("expected bounds %+v, got %+v", want, bounds)
	}
}

func TestItemSpecShape(t *testing.T) {
	item := testInstance().Items[0]
	shape := item.Shape()
	if shape.Exterior.Len() != 4 {
		t.Fatalf("expected a 4-vertex item, got %d", shape.Exterior.Len())
	}
}

func TestRegisterContainerWiresAllHazards(t *testing.T) {
	inst := testInstance()
	e := newEngine(t, inst)

	bin, holes, zones, err := RegisterContainer(e, inst.Container)
	if err != nil {
		t.Fatalf("RegisterContainer: %v", err)
	}
	if len(holes) != 1 || len(zones) != 1 {
		t.Fatalf("expected 1 hole and 1 zone key, got %d holes, %d zones", len(holes), len(zones))
	}

	active := e.ActiveHazards()
	if len(active) != 3 {
		t.Fatalf("expected 3 active hazards (bin, hole, zone), got %d", len(active))
	}
	if active[0] != bin {
		t.Error("expected the bin outline to be registered first")
	}
}

func TestQualityZoneForbidsItsOwnInterior(t *testing.T) {
	inst := testInstance()
	e := newEngine(t, inst)
	if _, _, _, err := RegisterContainer(e, inst.Container); err != nil {
		t.Fatalf("RegisterContainer: %v", err)
	}

	item := inst.Items[0]
	shape := item.Shape()
	sur := e.BuildSurrogate(shape)

	// The quality zone in testInstance() is centered on (80,80); placing
	// the item there must collide, since a quality zone's interior is
	// forbidden ground exactly like a hole's.
	inside := geo.Placement{DX: 80, DY: 80}
	if collides, _ := e.DetectItem(shape, sur, inside, nil); !collides {
		t.Error("expected placing an item inside a quality zone to collide")
	}

	// Well clear of the hole, the bin, and the quality zone.
	outside := geo.Placement{DX: 50, DY: 30}
	if collides, key := e.DetectItem(shape, sur, outside, nil); collides {
		t.Errorf("expected a placement clear of every hazard not to collide, got hazard %+v", key)
	}
}

func TestRegisterPlacedItemAddsExclusionHazard(t *testing.T) {
	inst := testInstance()
	e := newEngine(t, inst)
	item := inst.Items[0]

	key, err := RegisterPlacedItem(e, item, geo.Placement{DX: 20, DY: 20})
	if err != nil {
		t.Fatalf("RegisterPlacedItem: %v", err)
	}
	h, err := e.Hazard(key)
	if err != nil {
		t.Fatalf("Hazard: %v", err)
	}
	if h.Scope != "item:part-a" {
		t.Errorf("expected scope %q, got %q", "item:part-a", h.Scope)
	}
	// The item's exterior was translated by the placement: its
	// bounding box should now sit near (19,19)-(21,21).
	box := h.Shape.BoundingBox()
	if box.MinX < 18 || box.MaxX > 22 {
		t.Errorf("expected the placed item's bounding box near x=[19,21], got %+v", box)
	}
}
