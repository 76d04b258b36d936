// Package config holds the tunables the core recognizes (spec §6's
// configuration table), loadable from YAML the same way the teacher's
// pkg/spec loads a CitySpec: Load reads a file, Default supplies the
// engine's built-in values, and a loaded file overlays on top of them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CoverageTier is one entry of a pole_coverage_schedule: after Count
// poles have been chosen, the surrogate builder must have covered at
// least Coverage of the item's area before it may stop early.
type CoverageTier struct {
	Count    int     `yaml:"count" json:"count"`
	Coverage float64 `yaml:"coverage" json:"coverage"`
}

// Config is the full set of engine tunables recognized by the core.
type Config struct {
	// QuadtreeMaxDepth is the hard cap on quadtree node depth.
	QuadtreeMaxDepth int `yaml:"quadtree_max_depth" json:"quadtree_max_depth"`
	// CDThreshold is the edge count above which a quadtree node
	// subdivides.
	CDThreshold int `yaml:"cd_threshold" json:"cd_threshold"`
	// NFailFastPoles is the number of fail-fast poles tested before the
	// exact edge sweep.
	NFailFastPoles int `yaml:"n_ff_poles" json:"n_ff_poles"`
	// NFailFastPiers is the number of fail-fast piers tested before the
	// exact edge sweep.
	NFailFastPiers int `yaml:"n_ff_piers" json:"n_ff_piers"`
	// PoleCoverageSchedule is the tiered (count, coverage) stopping rule
	// for pole generation.
	PoleCoverageSchedule []CoverageTier `yaml:"pole_coverage_schedule" json:"pole_coverage_schedule"`
	// MaxPoles is p_max: the hard cap on the number of poles a
	// surrogate may contain.
	MaxPoles int `yaml:"max_poles" json:"max_poles"`
	// PolySimplTolerance is the area-fraction tolerance used by the
	// preprocessor's area-bounded simplification pass.
	PolySimplTolerance float64 `yaml:"poly_simpl_tolerance" json:"poly_simpl_tolerance"`
	// MinItemSeparation is an optional non-negative buffer distance
	// inflated around each item at preprocessing time.
	MinItemSeparation float64 `yaml:"min_item_separation" json:"min_item_separation"`
	// ConcavityMouthWidth is the minimum mouth width a concavity must
	// have to survive narrow-concavity pruning (0 disables pruning).
	ConcavityMouthWidth float64 `yaml:"concavity_mouth_width" json:"concavity_mouth_width"`
	// DegenerateAngleEpsilon is the angular tolerance (radians) used to
	// detect collinear-degenerate vertex triples.
	DegenerateAngleEpsilon float64 `yaml:"degenerate_angle_epsilon" json:"degenerate_angle_epsilon"`
}

// Default returns the engine's built-in tunables.
func Default() Config {
	return Config{
		QuadtreeMaxDepth: 10,
		CDThreshold:      16,
		NFailFastPoles:   4,
		NFailFastPiers:   2,
		PoleCoverageSchedule: []CoverageTier{
			{Count: 1, Coverage: 0.5},
			{Count: 4, Coverage: 0.75},
			{Count: 8, Coverage: 0.9},
		},
		MaxPoles:               12,
		PolySimplTolerance:     0.001,
		MinItemSeparation:      0,
		ConcavityMouthWidth:    0,
		DegenerateAngleEpsilon: 1e-3,
	}
}

// Load reads a YAML config file and overlays it onto Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}
