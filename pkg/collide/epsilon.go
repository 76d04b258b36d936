// Package collide implements the collision predicates the rest of the
// engine is built on: edge×edge, edge×rect, rect×rect, point-in-polygon,
// circle×edge and circle×rect. Every predicate here shares the same
// tolerance policy and is biased conservatively toward reporting a
// collision on ambiguous input (spec §4.A/§4.B).
package collide

// Epsilon bundles the tolerances every predicate in this package is
// parameterized by, so that a single instance (scaled to the bin's
// diagonal at load time) governs the whole query path.
type Epsilon struct {
	// Abs is the absolute distance tolerance, default 1e-9 * bin
	// diagonal, used for point/segment coincidence tests.
	Abs float64
	// Angle is a relative angular slack (in radians). No predicate in
	// this package reads it: edge×edge classification uses Abs only,
	// and the preprocessor's collinearity test takes its angle from
	// config.Config.DegenerateAngleEpsilon.
	Angle float64
}

// DefaultEpsilon returns the engine's default tolerance policy scaled
// to binDiagonal, per spec §4.A ("default 1e-9 x bin_diagonal").
func DefaultEpsilon(binDiagonal float64) Epsilon {
	if binDiagonal <= 0 {
		binDiagonal = 1
	}
	return Epsilon{
		Abs:   1e-9 * binDiagonal,
		Angle: 1e-7,
	}
}
