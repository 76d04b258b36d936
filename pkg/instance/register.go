package instance

import (
	"fmt"

	"github.com/ChicagoDave/nestcde/pkg/cde"
	"github.com/ChicagoDave/nestcde/pkg/geo"
	"github.com/ChicagoDave/nestcde/pkg/hazard"
)

// RegisterContainer registers a container's outer boundary, holes, and
// quality zones as hazards on e: the outer boundary as an Enclosure
// hazard (scope "bin"), each hole as an Exclusion hazard (scope
// "hole"), and each quality zone as an Exclusion hazard scoped by its
// level. A quality zone forbids its own interior exactly like a hole
// does: placements must avoid it, matching the original's
// classification of a quality zone's interior as forbidden ground
// (spec §6 supplemental feature; quality zones are ordinary hazards,
// not a distinct hazard kind).
func RegisterContainer(e *cde.Engine, c ContainerSpec) (bin hazard.HazardKey, holes, zones []hazard.HazardKey, err error) {
	bin, err = e.RegisterHazard(geo.NewShape(c.Outer.Ring()), hazard.Enclosure, "bin")
	if err != nil {
		return hazard.HazardKey{}, nil, nil, fmt.Errorf("registering container outline: %w", err)
	}

	for i, h := range c.Holes {
		key, rerr := e.RegisterHazard(geo.NewShape(h.Ring()), hazard.Exclusion, "hole")
		if rerr != nil {
			return bin, holes, zones, fmt.Errorf("registering hole %d: %w", i, rerr)
		}
		holes = append(holes, key)
	}

	for i, qz := range c.QualityZones {
		scope := fmt.Sprintf("quality-zone:%d", qz.Level)
		key, rerr := e.RegisterHazard(geo.NewShape(qz.Polygon.Ring()), hazard.Exclusion, scope)
		if rerr != nil {
			return bin, holes, zones, fmt.Errorf("registering quality zone %d: %w", i, rerr)
		}
		zones = append(zones, key)
	}

	return bin, holes, zones, nil
}

// RegisterPlacedItem registers a committed placement of item as an
// Exclusion hazard, scoped by the item's own id, so it becomes an
// obstacle for every subsequent query. This is the mechanism by which
// "already-placed items" (spec's Hazard definition) enter the registry:
// the CDE has no separate notion of a placed item beyond an Exclusion
// hazard at that transformed shape.
func RegisterPlacedItem(e *cde.Engine, item ItemSpec, pl geo.Placement) (hazard.HazardKey, error) {
	shape := pl.ApplyShape(item.Shape())
	key, err := e.RegisterHazard(shape, hazard.Exclusion, fmt.Sprintf("item:%s", item.ID))
	if err != nil {
		return hazard.HazardKey{}, fmt.Errorf("registering placed item %q: %w", item.ID, err)
	}
	return key, nil
}
