// Package instance holds the loadable description of a nesting problem
// instance (spec §6 "Instance input"): a container with its holes and
// quality zones, plus the item catalog. It is a thin YAML-loadable data
// layer above pkg/geo and pkg/hazard, in the same spirit as the
// teacher's pkg/spec.CitySpec — this package owns none of the
// collision logic itself.
package instance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// PointSpec is a YAML-friendly point, decoupled from geo.Point so the
// geometry package itself never carries serialization tags.
type PointSpec struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Point converts a PointSpec to a geo.Point.
func (p PointSpec) Point() geo.Point {
	return geo.Pt(p.X, p.Y)
}

// RingSpec is an ordered list of points describing a polygon ring.
type RingSpec []PointSpec

// Ring converts a RingSpec to a geo.Ring.
func (r RingSpec) Ring() geo.Ring {
	pts := make([]geo.Point, len(r))
	for i, p := range r {
		pts[i] = p.Point()
	}
	return geo.NewRing(pts...)
}

// QualityZoneSpec is an interior region of the container tagged with an
// integer quality level (spec §6, supplemental feature: quality zones
// are modeled as Exclusion hazards, forbidding their own interior like
// a hole, rather than a new hazard kind).
type QualityZoneSpec struct {
	Polygon RingSpec `yaml:"polygon" json:"polygon"`
	Level   int      `yaml:"level" json:"level"`
}

// ContainerSpec is the bin description: an outer boundary, zero or more
// holes, and zero or more quality zones.
type ContainerSpec struct {
	Outer        RingSpec          `yaml:"outer" json:"outer"`
	Holes        []RingSpec        `yaml:"holes" json:"holes"`
	QualityZones []QualityZoneSpec `yaml:"quality_zones" json:"quality_zones"`
}

// Shape returns the container's outer boundary and holes as a geo.Shape,
// suitable for preprocessing and registration as the bin's Enclosure
// hazard.
func (c ContainerSpec) Shape() geo.Shape {
	holes := make([]geo.Ring, len(c.Holes))
	for i, h := range c.Holes {
		holes[i] = h.Ring()
	}
	return geo.NewShape(c.Outer.Ring(), holes...)
}

// Bounds returns the container's bounding rectangle, used to size the
// engine's quadtree and its epsilon policy.
func (c ContainerSpec) Bounds() geo.Rect {
	return c.Outer.Ring().BoundingBox()
}

// ItemSpec is one entry of the item catalog. Demand and AllowedRotations
// are descriptive metadata the optimizer consumes; the CDE itself has
// no notion of item multiplicity and treats rotation as a continuous
// float64 on every trial Placement (spec §1 Non-goals).
type ItemSpec struct {
	ID               string     `yaml:"id" json:"id"`
	Polygon          RingSpec   `yaml:"polygon" json:"polygon"`
	Demand           int        `yaml:"demand" json:"demand"`
	AllowedRotations []float64  `yaml:"allowed_rotations" json:"allowed_rotations"`
	Holes            []RingSpec `yaml:"holes,omitempty" json:"holes,omitempty"`
}

// Shape returns the item's prototype geometry, in its own local frame,
// ready for preprocessing and surrogate building.
func (i ItemSpec) Shape() geo.Shape {
	holes := make([]geo.Ring, len(i.Holes))
	for j, h := range i.Holes {
		holes[j] = h.Ring()
	}
	return geo.NewShape(i.Polygon.Ring(), holes...)
}

// Instance is a full problem instance: one container plus an item
// catalog.
type Instance struct {
	Container ContainerSpec `yaml:"container" json:"container"`
	Items     []ItemSpec    `yaml:"items" json:"items"`
}

// Load reads an instance description from a YAML file.
func Load(path string) (Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, fmt.Errorf("reading instance file: %w", err)
	}
	var inst Instance
	if err := yaml.Unmarshal(data, &inst); err != nil {
		return Instance{}, fmt.Errorf("parsing instance YAML: %w", err)
	}
	return inst, nil
}
