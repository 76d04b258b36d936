package cde

import (
	"sort"

	"github.com/ChicagoDave/nestcde/pkg/geo"
	"github.com/ChicagoDave/nestcde/pkg/hazard"
	"github.com/ChicagoDave/nestcde/pkg/quadtree"
	"github.com/ChicagoDave/nestcde/pkg/surrogate"
)

// DetectItem answers whether placing protoShape at pl collides with any
// active, filter-allowed hazard, stopping at the first collision found
// (spec §4.G detect mode). proto must be the surrogate built from
// protoShape (see Engine.BuildSurrogate); passing filter as nil applies
// no exclusions.
func (e *Engine) DetectItem(protoShape geo.Shape, proto surrogate.Surrogate, pl geo.Placement, filter *Filter) (collides bool, first hazard.HazardKey) {
	collided, keys := e.evaluate(protoShape, proto, pl, filter, false)
	if !collided {
		return false, hazard.HazardKey{}
	}
	return true, keys[0]
}

// CollectItem returns every active, filter-allowed hazard key that
// collides with protoShape placed at pl, in hazard registration order
// (spec §4.G collect mode, §8 S6). Unlike detect mode, collect mode
// never short-circuits after phase 1: the point of collecting is
// exhaustiveness, and phase 1's fail-fast short-circuit exists purely
// as a detect-mode optimization. Its poles and piers still contribute
// any keys they find; the exact edge sweep and interior point test run
// regardless, so a hazard only phase 2 would have caught is never
// missed.
func (e *Engine) CollectItem(protoShape geo.Shape, proto surrogate.Surrogate, pl geo.Placement, filter *Filter) []hazard.HazardKey {
	_, keys := e.evaluate(protoShape, proto, pl, filter, true)
	return keys
}

func (e *Engine) evaluate(protoShape geo.Shape, proto surrogate.Surrogate, pl geo.Placement, filter *Filter, collectAll bool) (bool, []hazard.HazardKey) {
	include := e.includeFn(filter)
	found := make(map[hazard.HazardKey]struct{})
	collided := false

	visit := func(k hazard.HazardKey) bool {
		found[k] = struct{}{}
		collided = true
		return !collectAll
	}

	tree := e.registry.Tree()
	tsur := proto.Transformed(pl)

	// The bounding pole strictly encloses every fail-fast pole (spec
	// §4.D), so a query against it that finds nothing rules out a hit
	// against any individual pole too: skip the whole pole loop rather
	// than running FailFastPoles one at a time against the tree.
	if anyHazardWithin(tree, tsur.BoundingPole, include) {
		for _, pole := range tsur.FailFastPoles() {
			tree.VisitDisk(pole, include, visit)
			if collided && !collectAll {
				return true, e.orderedKeys(found)
			}
		}
	}
	for _, pier := range tsur.FailFastPiers() {
		tree.VisitEdge(pier, include, visit)
		if collided && !collectAll {
			return true, e.orderedKeys(found)
		}
	}
	if collided && !collectAll {
		return true, e.orderedKeys(found)
	}

	for _, edge := range protoShape.Edges() {
		te := pl.ApplyEdge(edge)
		tree.VisitEdge(te, include, visit)
		if collided && !collectAll {
			return true, e.orderedKeys(found)
		}
	}

	// A representative interior point catches the case no boundary edge
	// crosses: the item sits fully inside an exclusion hole, or fully
	// outside every enclosure hazard (spec §4.G). It is tested against
	// every hazard the filter allows, not only enclosure hazards, since
	// a hole (exclusion) can just as easily swallow the item whole.
	rp := pl.Apply(protoShape.Centroid())
	tree.VisitPoint(rp, include, visit)

	return collided, e.orderedKeys(found)
}

// anyHazardWithin reports whether disk touches any filter-allowed
// hazard in tree, stopping at the first hit. It never records the
// result as a collision itself; it only decides whether the fail-fast
// pole loop can possibly find one.
func anyHazardWithin(tree *quadtree.Tree[hazard.HazardKey], disk geo.Circle, include func(hazard.HazardKey) bool) bool {
	hit := false
	tree.VisitDisk(disk, include, func(hazard.HazardKey) bool {
		hit = true
		return true
	})
	return hit
}

func (e *Engine) includeFn(filter *Filter) func(hazard.HazardKey) bool {
	return func(k hazard.HazardKey) bool {
		if filter == nil {
			return true
		}
		scope, ok := e.registry.ScopeOf(k)
		if !ok {
			return true
		}
		return filter.Allows(k, scope)
	}
}

// orderedKeys renders a set of colliding keys in hazard registration
// order, giving collect-mode results a traversal-independent, stable
// ordering (spec §8 S6).
func (e *Engine) orderedKeys(found map[hazard.HazardKey]struct{}) []hazard.HazardKey {
	keys := make([]hazard.HazardKey, 0, len(found))
	for k := range found {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		si, _ := e.registry.SequenceOf(keys[i])
		sj, _ := e.registry.SequenceOf(keys[j])
		return si < sj
	})
	return keys
}
