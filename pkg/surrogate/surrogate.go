// Package surrogate implements the surrogate builder of spec §4.D: for
// each item polygon, a small ordered set of inscribed disks (poles)
// plus optional internal chords (piers), used as a fail-fast filter
// ahead of the exact edge sweep.
package surrogate

import (
	"math"
	"sort"

	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/config"
	"github.com/ChicagoDave/nestcde/pkg/diagnostics"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// Surrogate is the prototype fail-fast representation of an item
// shape, in the item's own local coordinate frame. A query transforms
// its poles and piers by the trial placement rather than transforming
// the polygon itself (spec §6: "applies the transform lazily").
type Surrogate struct {
	Poles             []geo.Circle
	Piers             []geo.Edge
	BoundingPole      geo.Circle
	ConvexHullIndices []int

	nFailFastPoles int
	nFailFastPiers int
}

// Build computes a surrogate for shape according to cfg's pole
// coverage schedule and fail-fast counts.
func Build(shape geo.Shape, cfg config.Config, eps collide.Epsilon, report *diagnostics.Report) Surrogate {
	poles := buildPoles(shape, cfg, eps, report)
	sort.SliceStable(poles, func(i, j int) bool { return poles[i].Radius > poles[j].Radius })

	nFF := cfg.NFailFastPoles
	if nFF > len(poles) {
		nFF = len(poles)
	}
	piers := generatePiers(shape, cfg.NFailFastPiers, poles[:nFF], eps)
	nFFPiers := cfg.NFailFastPiers
	if nFFPiers > len(piers) {
		nFFPiers = len(piers)
	}

	bounding := geo.Circle{}
	if len(poles) > 0 {
		bounding = smallestEnclosingCircle(poles)
	}

	return Surrogate{
		Poles:             poles,
		Piers:             piers,
		BoundingPole:      bounding,
		ConvexHullIndices: ConvexHullIndices(shape.Exterior.Vertices),
		nFailFastPoles:    nFF,
		nFailFastPiers:    nFFPiers,
	}
}

func buildPoles(shape geo.Shape, cfg config.Config, eps collide.Epsilon, report *diagnostics.Report) []geo.Circle {
	area := shape.Area()
	if area <= 0 {
		return nil
	}
	maxPoles := cfg.MaxPoles
	if maxPoles <= 0 {
		maxPoles = 1
	}

	var poles []geo.Circle
	first, ok := generateNextPole(shape, nil, eps)
	if !ok {
		if report != nil {
			report.Add(diagnostics.SeverityLocal, "surrogate: item too small to admit any pole")
		}
		return nil
	}
	poles = append(poles, first)
	covered := first.Radius * first.Radius * math.Pi

	for len(poles) < maxPoles {
		if tierSatisfied(cfg.PoleCoverageSchedule, len(poles), covered/area) {
			break
		}
		next, ok := generateNextPole(shape, poles, eps)
		if !ok {
			break
		}
		poles = append(poles, next)
		covered += next.Radius * next.Radius * math.Pi
	}

	if len(poles) < cfg.NFailFastPoles && report != nil {
		report.Add(diagnostics.SeverityLocal, "surrogate: fewer poles produced than n_ff_poles requests, clamping")
	}
	return poles
}

// tierSatisfied reports whether, having produced n poles with the
// given fractional coverage, the tiered stopping rule of spec §4.D
// permits stopping now: after count poles, coverage must reach the
// tier's threshold; the highest tier whose count has been reached
// governs.
func tierSatisfied(schedule []config.CoverageTier, n int, coverage float64) bool {
	satisfied := false
	for _, tier := range schedule {
		if n < tier.Count {
			continue
		}
		if coverage >= tier.Coverage {
			satisfied = true
		} else {
			satisfied = false
		}
	}
	return satisfied
}

// FailFastPoles returns the subset of poles, sorted by radius
// descending at build time, used by the query fast path.
func (s Surrogate) FailFastPoles() []geo.Circle {
	return s.Poles[:s.nFailFastPoles]
}

// FailFastPiers returns the subset of piers used by the query fast
// path.
func (s Surrogate) FailFastPiers() []geo.Edge {
	return s.Piers[:s.nFailFastPiers]
}

// Transformed returns a copy of the surrogate with every pole, pier
// and the bounding pole transformed by pl, for use against a specific
// trial placement.
func (s Surrogate) Transformed(pl geo.Placement) Surrogate {
	out := Surrogate{
		nFailFastPoles: s.nFailFastPoles,
		nFailFastPiers: s.nFailFastPiers,
	}
	out.Poles = make([]geo.Circle, len(s.Poles))
	for i, p := range s.Poles {
		out.Poles[i] = pl.ApplyCircle(p)
	}
	out.Piers = make([]geo.Edge, len(s.Piers))
	for i, e := range s.Piers {
		out.Piers[i] = pl.ApplyEdge(e)
	}
	out.BoundingPole = pl.ApplyCircle(s.BoundingPole)
	out.ConvexHullIndices = s.ConvexHullIndices
	return out
}
