// Package preprocess implements the polygon preprocessor of spec §4.C:
// degenerate-edge elimination, narrow-concavity pruning, area-bounded
// simplification, and orientation normalization, run once over a
// hazard's shape before it is handed to the surrogate builder and the
// hazard registry.
package preprocess

import (
	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/config"
	"github.com/ChicagoDave/nestcde/pkg/diagnostics"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// Shape runs the full pipeline over a shape's exterior and every hole:
// degenerate-edge elimination, narrow concavity pruning, and
// area-bounded simplification, all done in a canonical CCW frame, then
// orientation normalization back to the ring's final convention (spec
// §4.C). isReflex assumes CCW winding, so ring() always normalizes its
// input to CCW before running the reflex-dependent passes; holes,
// which are CW by convention, get flipped back to CW only after those
// passes complete. Doing this in the ring's own final orientation
// instead would silently invert every reflex test for holes, turning
// "always expanding, never shrinking" into "always shrinking" for
// them. Self-intersecting or degenerate results are refused (spec §7
// "invalid geometry", fatal at load); nothing is mutated on error
// since preprocessing works from copies throughout.
func Shape(s geo.Shape, cfg config.Config, eps collide.Epsilon, report *diagnostics.Report) (geo.Shape, error) {
	ext, err := ring(s.Exterior, cfg, eps, report)
	if err != nil {
		return geo.Shape{}, err
	}
	ext = ext.EnsureCCW()

	holes := make([]geo.Ring, len(s.Holes))
	for i, h := range s.Holes {
		hr, err := ring(h, cfg, eps, report)
		if err != nil {
			return geo.Shape{}, err
		}
		holes[i] = hr.EnsureCW()
	}

	out := geo.Shape{Exterior: ext, Holes: holes}
	if cfg.MinItemSeparation > 0 {
		out.Exterior = inflate(out.Exterior, cfg.MinItemSeparation)
	}
	return out, nil
}

// ring runs the reflex-dependent passes (narrow-concavity pruning,
// area-bounded simplification) in a canonical CCW frame regardless of
// r's incoming winding, since isReflex only reads correctly on CCW
// rings; the caller is responsible for normalizing the result back to
// r's intended final orientation.
func ring(r geo.Ring, cfg config.Config, eps collide.Epsilon, report *diagnostics.Report) (geo.Ring, error) {
	r = r.EnsureCCW()

	angleEps := cfg.DegenerateAngleEpsilon
	if angleEps <= 0 {
		angleEps = 1e-3
	}
	before := r.Len()
	r = removeDegenerate(r, angleEps)
	if r.Len() < before && report != nil {
		report.Add(diagnostics.SeverityLocal, "degenerate vertices removed")
	}

	if cfg.ConcavityMouthWidth > 0 {
		before = r.Len()
		r = pruneNarrowConcavities(r, cfg.ConcavityMouthWidth)
		if r.Len() < before && report != nil {
			report.Add(diagnostics.SeverityLocal, "narrow concavities pruned (lossy)")
		}
	}

	if cfg.PolySimplTolerance > 0 {
		before = r.Len()
		r = simplifyInflate(r, cfg.PolySimplTolerance, eps)
		if r.Len() < before && report != nil {
			report.Add(diagnostics.SeverityLocal, "polygon simplified within area tolerance")
		}
	}

	if r.Len() < 3 {
		return geo.Ring{}, &diagnostics.GeometryError{Reason: "ring degenerated to fewer than 3 vertices during preprocessing"}
	}
	if r.Area() < 1e-12 {
		return geo.Ring{}, &diagnostics.GeometryError{Reason: "ring has zero area after preprocessing"}
	}
	if isSelfIntersecting(r, eps) {
		return geo.Ring{}, &diagnostics.GeometryError{Reason: "ring self-intersects"}
	}
	for _, v := range r.Vertices {
		if !v.Finite() {
			return geo.Ring{}, &diagnostics.GeometryError{Reason: "non-finite coordinate"}
		}
	}
	return r, nil
}

// isSelfIntersecting reports whether any two non-adjacent edges of the
// ring cross.
func isSelfIntersecting(r geo.Ring, eps collide.Epsilon) bool {
	edges := r.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent edges share an endpoint by construction
			}
			if collide.EdgeEdge(edges[i], edges[j], eps) {
				return true
			}
		}
	}
	return false
}
