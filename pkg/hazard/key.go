// Package hazard implements the hazard registry of spec §4.F: a
// slot-mapped store of hazards with stable, generational keys that
// binds hazards to quadtree entries and supports dynamic activation.
package hazard

import "fmt"

// HazardKey is a stable, generational handle to a registered hazard.
// Removing and re-registering into the same slot yields a different
// key (a different Generation), so a key captured before a removal
// fails fast as stale rather than silently aliasing onto a new hazard.
type HazardKey struct {
	Index      uint32
	Generation uint32
}

func (k HazardKey) String() string {
	return fmt.Sprintf("hz:%d.%d", k.Index, k.Generation)
}
