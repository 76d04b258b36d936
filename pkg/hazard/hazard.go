package hazard

import (
	"github.com/ChicagoDave/nestcde/pkg/diagnostics"
	"github.com/ChicagoDave/nestcde/pkg/geo"
	"github.com/ChicagoDave/nestcde/pkg/quadtree"
)

// Presence mirrors quadtree.Presence: Exclusion hazards forbid their
// closed interior (placed items, holes, quality zones); Enclosure
// hazards forbid everything outside their open interior (the bin
// outline).
type Presence = quadtree.Presence

const (
	Exclusion = quadtree.Exclusion
	Enclosure = quadtree.Enclosure
)

// Hazard is a registered spatial obstacle.
type Hazard struct {
	Key      HazardKey
	Shape    geo.Shape
	Presence Presence
	// Scope is an opaque tag a Filter can match against (e.g. "bin",
	// "quality-zone", or an item's own id so a query can ignore the
	// hazard it is about to move).
	Scope  string
	Active bool

	seq uint64 // registration sequence, for stable iteration order
}

// validateShape runs the load-time geometry checks of spec §7: no
// non-finite coordinates, no degenerate (near-zero-area or <3 vertex)
// exterior, and holes that at least nominally sit inside the exterior.
// Self-intersection and precise containment are the preprocessor's
// responsibility (pkg/preprocess) before a shape ever reaches the
// registry; this is the registry's own belt-and-suspenders check.
func validateShape(shape geo.Shape) error {
	if shape.Exterior.Len() < 3 {
		return &diagnostics.GeometryError{Reason: "exterior ring has fewer than 3 vertices"}
	}
	for _, v := range shape.Exterior.Vertices {
		if !v.Finite() {
			return &diagnostics.GeometryError{Reason: "non-finite coordinate in exterior ring"}
		}
	}
	if shape.Exterior.Area() < 1e-12 {
		return &diagnostics.GeometryError{Reason: "exterior ring has zero area"}
	}
	extBox := shape.Exterior.BoundingBox()
	for _, h := range shape.Holes {
		if h.Len() < 3 {
			return &diagnostics.GeometryError{Reason: "hole ring has fewer than 3 vertices"}
		}
		for _, v := range h.Vertices {
			if !v.Finite() {
				return &diagnostics.GeometryError{Reason: "non-finite coordinate in hole ring"}
			}
		}
		box := h.BoundingBox()
		if !extBox.ContainsRect(box) {
			return &diagnostics.GeometryError{Reason: "hole lies outside the exterior ring"}
		}
	}
	return nil
}
