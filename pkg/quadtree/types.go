// Package quadtree implements the region quadtree spatial index over
// hazard edges described in spec §4.E: a hierarchical index over a
// bin-sized rectangle where each node stores, per hazard key that
// touches its region, a presence tag (Entire, Partial(edges), or an
// implicit None).
//
// The tree is generic over the hazard key type so it has no dependency
// on the hazard registry above it (pkg/hazard); the registry binds its
// own generational HazardKey as the type parameter, matching Design
// Note 9's requirement that quadtree nodes hold only an opaque key and
// per-tag edge indices, never a pointer back into hazard data.
package quadtree

// Presence is a hazard's forbidden-region semantics, used by the tree
// to decide, when no boundary edge crosses a node, whether that node's
// entire region should be tagged Entire.
type Presence int

const (
	// Exclusion hazards forbid their closed interior (inside and
	// boundary): already-placed items, holes, quality zones.
	Exclusion Presence = iota
	// Enclosure hazards forbid everything outside their open interior:
	// the bin outline. Touching the boundary exactly is not itself a
	// violation (see collidesByPresence in tree.go).
	Enclosure
)

func (p Presence) String() string {
	if p == Enclosure {
		return "enclosure"
	}
	return "exclusion"
}

// Config bounds the tree's subdivision behavior.
type Config struct {
	// CDThreshold is the total edge count across a node's Partial tags
	// above which the node subdivides.
	CDThreshold int
	// MaxDepth is the hard cap on node depth (spec §7 "capacity
	// exceeded": beyond this the node accepts more edges instead of
	// subdividing further; queries stay correct, just slower).
	MaxDepth int
}
