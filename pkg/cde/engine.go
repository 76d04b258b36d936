// Package cde is the collision detection engine façade of spec §4.G/§4.H:
// it owns a hazard registry and its quadtree, runs new hazard shapes
// through the preprocessor before registering them, builds item
// surrogates on request, and exposes the two-phase detect/collect query
// plus snapshot/restore rollback.
package cde

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/config"
	"github.com/ChicagoDave/nestcde/pkg/diagnostics"
	"github.com/ChicagoDave/nestcde/pkg/geo"
	"github.com/ChicagoDave/nestcde/pkg/hazard"
	"github.com/ChicagoDave/nestcde/pkg/preprocess"
	"github.com/ChicagoDave/nestcde/pkg/quadtree"
	"github.com/ChicagoDave/nestcde/pkg/surrogate"
)

// Engine binds a hazard registry to one bin-sized quadtree, along with
// the preprocessing tunables every hazard passes through before it is
// registered and the surrogate-building tunables BuildSurrogate uses
// for item prototypes. Each engine carries its own session
// id purely for log correlation; nothing in the engine's behavior
// depends on it.
type Engine struct {
	id  uuid.UUID
	cfg config.Config
	eps collide.Epsilon

	registry *hazard.Registry
	log      []mutation
}

// New creates an engine whose quadtree spans bounds, with tolerances
// scaled to the bin's diagonal per spec §4.A.
func New(bounds geo.Rect, cfg config.Config) *Engine {
	eps := collide.DefaultEpsilon(bounds.Diagonal())
	qcfg := quadtree.Config{CDThreshold: cfg.CDThreshold, MaxDepth: cfg.QuadtreeMaxDepth}
	return &Engine{
		id:       uuid.New(),
		cfg:      cfg,
		eps:      eps,
		registry: hazard.NewRegistry(bounds, qcfg, eps),
	}
}

// ID returns the engine's session identifier.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Epsilon returns the tolerance policy this engine's queries and
// preprocessing runs share.
func (e *Engine) Epsilon() collide.Epsilon {
	return e.eps
}

// RegisterHazard runs shape through the preprocessor and registers the
// result, active by default. Preprocessing findings are logged, not
// returned, matching the teacher's soft-diagnostic convention for
// conditions that don't abort the call (see internal/server's request
// logging).
func (e *Engine) RegisterHazard(shape geo.Shape, presence hazard.Presence, scope string) (hazard.HazardKey, error) {
	report := &diagnostics.Report{}
	processed, err := preprocess.Shape(shape, e.cfg, e.eps, report)
	if err != nil {
		return hazard.HazardKey{}, fmt.Errorf("cde: preprocessing hazard for scope %q: %w", scope, err)
	}
	e.logFindings(report)

	key, err := e.registry.Register(processed, presence, scope)
	if err != nil {
		return hazard.HazardKey{}, fmt.Errorf("cde: registering hazard for scope %q: %w", scope, err)
	}
	e.log = append(e.log, mutation{kind: kindRegister, key: key})
	return key, nil
}

// SetActive toggles a hazard's visibility to queries. A call that
// doesn't change the hazard's current state is idempotent and leaves
// no entry on the change log (spec property 4).
func (e *Engine) SetActive(key hazard.HazardKey, active bool) error {
	h, err := e.registry.Get(key)
	if err != nil {
		return fmt.Errorf("cde: set active %s: %w", key, err)
	}
	if h.Active == active {
		return nil
	}
	if err := e.registry.SetActive(key, active); err != nil {
		return fmt.Errorf("cde: set active %s: %w", key, err)
	}
	e.log = append(e.log, mutation{kind: kindToggle, key: key, prevActive: h.Active})
	return nil
}

// DeregisterHazard permanently removes a hazard. This is not undone by
// Restore; see snapshot.go.
func (e *Engine) DeregisterHazard(key hazard.HazardKey) error {
	if err := e.registry.Deregister(key); err != nil {
		return fmt.Errorf("cde: deregistering %s: %w", key, err)
	}
	e.log = append(e.log, mutation{kind: kindForget, key: key})
	return nil
}

// Hazard returns a copy of the registered hazard identified by key.
func (e *Engine) Hazard(key hazard.HazardKey) (hazard.Hazard, error) {
	h, err := e.registry.Get(key)
	if err != nil {
		return hazard.Hazard{}, fmt.Errorf("cde: %w", err)
	}
	return h, nil
}

// ActiveHazards returns every active hazard's key in registration order.
func (e *Engine) ActiveHazards() []hazard.HazardKey {
	return e.registry.IterActive()
}

// BuildSurrogate runs the surrogate builder over an item prototype
// shape, in the item's own local frame. The result should be reused
// across every trial placement of that item rather than rebuilt per
// query (spec §4.D: poles and piers are transformed lazily, not
// recomputed).
func (e *Engine) BuildSurrogate(protoShape geo.Shape) surrogate.Surrogate {
	report := &diagnostics.Report{}
	s := surrogate.Build(protoShape, e.cfg, e.eps, report)
	e.logFindings(report)
	return s
}

func (e *Engine) logFindings(report *diagnostics.Report) {
	if report == nil {
		return
	}
	for _, f := range report.Findings {
		log.Printf("cde[%s]: %s", e.id, f)
	}
}
