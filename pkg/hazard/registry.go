package hazard

import (
	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/diagnostics"
	"github.com/ChicagoDave/nestcde/pkg/geo"
	"github.com/ChicagoDave/nestcde/pkg/quadtree"
)

type slot struct {
	generation uint32
	occupied   bool
	hazard     Hazard
}

// Registry is a slot-mapped store of hazards with stable, generational
// keys. It co-owns hazards with the quadtree: the registry holds the
// authoritative record, the quadtree holds back-references by key only
// (Design Note 9). Invariant: a hazard is in the quadtree iff it is
// registered and active.
type Registry struct {
	slots    []slot
	freeList []uint32
	nextSeq  uint64
	order    []HazardKey // registration order of currently-registered keys

	tree *quadtree.Tree[HazardKey]
}

// NewRegistry creates an empty registry bound to a fresh quadtree
// spanning bounds.
func NewRegistry(bounds geo.Rect, cfg quadtree.Config, eps collide.Epsilon) *Registry {
	r := &Registry{}
	r.tree = quadtree.New[HazardKey](bounds, cfg, eps, r.lookup)
	return r
}

// Tree exposes the underlying quadtree for the CDE façade's queries.
func (r *Registry) Tree() *quadtree.Tree[HazardKey] {
	return r.tree
}

func (r *Registry) lookup(key HazardKey) (geo.Shape, quadtree.Presence, bool) {
	if int(key.Index) >= len(r.slots) {
		return geo.Shape{}, 0, false
	}
	s := r.slots[key.Index]
	if !s.occupied || s.generation != key.Generation {
		return geo.Shape{}, 0, false
	}
	return s.hazard.Shape, s.hazard.Presence, true
}

// Register inserts a new hazard, active by default, and returns its
// key. Invalid geometry is refused (spec §7: fatal at load, nothing is
// mutated).
func (r *Registry) Register(shape geo.Shape, presence Presence, scope string) (HazardKey, error) {
	if err := validateShape(shape); err != nil {
		return HazardKey{}, err
	}

	var idx uint32
	var gen uint32
	if n := len(r.freeList); n > 0 {
		idx = r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		gen = r.slots[idx].generation + 1
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
		gen = 1
	}

	key := HazardKey{Index: idx, Generation: gen}
	r.slots[idx] = slot{
		generation: gen,
		occupied:   true,
		hazard: Hazard{
			Key:      key,
			Shape:    shape,
			Presence: presence,
			Scope:    scope,
			Active:   true,
			seq:      r.nextSeq,
		},
	}
	r.nextSeq++
	r.order = append(r.order, key)
	r.tree.Insert(key, shape, presence)
	return key, nil
}

func (r *Registry) slotFor(key HazardKey) (*slot, error) {
	if int(key.Index) >= len(r.slots) {
		return nil, &diagnostics.StaleKeyError{Detail: key.String()}
	}
	s := &r.slots[key.Index]
	if !s.occupied || s.generation != key.Generation {
		return nil, &diagnostics.StaleKeyError{Detail: key.String()}
	}
	return s, nil
}

// Get returns a copy of the hazard identified by key.
func (r *Registry) Get(key HazardKey) (Hazard, error) {
	s, err := r.slotFor(key)
	if err != nil {
		return Hazard{}, err
	}
	return s.hazard, nil
}

// ScopeOf returns the scope tag of a registered hazard.
func (r *Registry) ScopeOf(key HazardKey) (string, bool) {
	s, err := r.slotFor(key)
	if err != nil {
		return "", false
	}
	return s.hazard.Scope, true
}

// SetActive toggles a hazard's visibility to queries without rebuilding
// the index. Setting the same state twice is a no-op (spec property 4:
// idempotent activation).
func (r *Registry) SetActive(key HazardKey, active bool) error {
	s, err := r.slotFor(key)
	if err != nil {
		return err
	}
	if s.hazard.Active == active {
		return nil
	}
	s.hazard.Active = active
	if active {
		r.tree.Insert(key, s.hazard.Shape, s.hazard.Presence)
	} else {
		r.tree.Remove(key)
	}
	return nil
}

// Deregister permanently removes a hazard from both the registry and
// the quadtree; its key becomes stale immediately.
func (r *Registry) Deregister(key HazardKey) error {
	s, err := r.slotFor(key)
	if err != nil {
		return err
	}
	if s.hazard.Active {
		r.tree.Remove(key)
	}
	s.occupied = false
	s.hazard = Hazard{}
	r.freeList = append(r.freeList, key.Index)

	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// IterActive returns every active hazard's key, in registration order.
func (r *Registry) IterActive() []HazardKey {
	out := make([]HazardKey, 0, len(r.order))
	for _, k := range r.order {
		s, err := r.slotFor(k)
		if err != nil {
			continue
		}
		if s.hazard.Active {
			out = append(out, k)
		}
	}
	return out
}

// SequenceOf returns the registration sequence number of a hazard, used
// by the CDE façade to render collect-mode results in a stable,
// registration-order-independent-of-traversal order (spec §8 S6).
func (r *Registry) SequenceOf(key HazardKey) (uint64, bool) {
	s, err := r.slotFor(key)
	if err != nil {
		return 0, false
	}
	return s.hazard.seq, true
}
