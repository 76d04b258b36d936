package quadtree

import (
	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

// ShapeLookup resolves a hazard key to the shape and presence it was
// last inserted with. The tree never stores shape data itself (Design
// Note 9: no ownership cycle between the registry and the tree); it
// calls back into the registry to turn a Partial tag's edge indices
// into real geo.Edge values at query time.
type ShapeLookup[K comparable] func(key K) (shape geo.Shape, presence Presence, ok bool)

// Tree is the region quadtree spatial index over a bin-sized rectangle.
type Tree[K comparable] struct {
	root   *node[K]
	cfg    Config
	eps    collide.Epsilon
	lookup ShapeLookup[K]
}

// New builds an empty tree rooted at bounds.
func New[K comparable](bounds geo.Rect, cfg Config, eps collide.Epsilon, lookup ShapeLookup[K]) *Tree[K] {
	return &Tree[K]{root: newNode[K](bounds, 0), cfg: cfg, eps: eps, lookup: lookup}
}

// Bounds returns the tree's root rectangle.
func (t *Tree[K]) Bounds() geo.Rect {
	return t.root.rect
}

// Insert distributes a hazard's boundary edges into the tree.
func (t *Tree[K]) Insert(key K, shape geo.Shape, presence Presence) {
	n := shape.EdgeCount()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	t.root.insert(key, shape, presence, all, t.cfg, t.eps)
}

// Remove drops every tag for key from the tree, via a full traversal
// (Design Note 9: no persistent reverse index is maintained).
func (t *Tree[K]) Remove(key K) {
	t.root.remove(key)
}

// Visitor is called once per colliding hazard key encountered during a
// query traversal. Returning true stops the traversal early (detect
// mode); returning false continues it (collect mode).
type Visitor[K comparable] func(key K) (stop bool)

// Include reports whether a hazard key should be considered at all;
// hazards excluded by a filter contribute neither edges nor Entire tags
// (spec §4.G: filtering applied at the node-visit level).
type Include[K comparable] func(key K) bool

func collidesByPresence(c collide.Containment, presence Presence) bool {
	switch presence {
	case Exclusion:
		return c == collide.Inside || c == collide.Boundary
	case Enclosure:
		return c == collide.Outside
	default:
		return false
	}
}

// VisitPoint descends to the leaf containing p, checking the Entire and
// Partial tags stored at every node along the root-to-leaf path (spec
// §4.E query_point: "using only the edges stored at the node and its
// ancestors").
func (t *Tree[K]) VisitPoint(p geo.Point, include Include[K], visit Visitor[K]) {
	t.root.visitPoint(p, include, visit, t.lookup, t.eps)
}

func (n *node[K]) visitPoint(p geo.Point, include Include[K], visit Visitor[K], lookup ShapeLookup[K], eps collide.Epsilon) bool {
	if !n.rect.ContainsPoint(p) {
		return false
	}
	for _, key := range n.order {
		if !include(key) {
			continue
		}
		tg := n.tags[key]
		if tg.kind == tagEntire {
			if visit(key) {
				return true
			}
			continue
		}
		shape, presence, ok := lookup(key)
		if !ok {
			continue
		}
		edges := make([]geo.Edge, len(tg.edgeIdx))
		for i, idx := range tg.edgeIdx {
			edges[i] = shape.EdgeAt(idx)
		}
		c := collide.PointInEdges(p, edges, eps)
		if collidesByPresence(c, presence) {
			if visit(key) {
				return true
			}
		}
	}
	if n.hasKids {
		for _, child := range n.children {
			if child.rect.ContainsPoint(p) {
				return child.visitPoint(p, include, visit, lookup, eps)
			}
		}
	}
	return false
}

// VisitDisk gathers candidates from every node whose rectangle overlaps
// the disk (circle×rect), testing each Partial hazard's stored edges
// via circle×edge (spec §4.E query_disk). When none of those edges
// reaches the disk, the disk's center is classified against the
// hazard's full shape, so a disk lying wholly inside an Exclusion
// hazard (or wholly outside an Enclosure) still collides.
func (t *Tree[K]) VisitDisk(c geo.Circle, include Include[K], visit Visitor[K]) {
	t.root.visitDisk(c, include, visit, t.lookup, t.eps)
}

func (n *node[K]) visitDisk(c geo.Circle, include Include[K], visit Visitor[K], lookup ShapeLookup[K], eps collide.Epsilon) bool {
	if !collide.CircleRect(c, n.rect) {
		return false
	}
	for _, key := range n.order {
		if !include(key) {
			continue
		}
		tg := n.tags[key]
		if tg.kind == tagEntire {
			if visit(key) {
				return true
			}
			continue
		}
		shape, presence, ok := lookup(key)
		if !ok {
			continue
		}
		hit := false
		for _, idx := range tg.edgeIdx {
			if collide.CircleEdge(c, shape.EdgeAt(idx)) {
				hit = true
				break
			}
		}
		if !hit {
			hit = collidesByPresence(collide.PointInShape(c.Center, shape, eps), presence)
		}
		if hit {
			if visit(key) {
				return true
			}
		}
	}
	if n.hasKids {
		for _, child := range n.children {
			if child.visitDisk(c, include, visit, lookup, eps) {
				return true
			}
		}
	}
	return false
}

// VisitEdge gathers candidates from nodes whose rectangle overlaps the
// edge's bounding box, testing Partial hazards via edge×edge and Entire
// hazards via endpoint containment (spec §4.E query_edge).
func (t *Tree[K]) VisitEdge(e geo.Edge, include Include[K], visit Visitor[K]) {
	t.root.visitEdge(e, include, visit, t.lookup, t.eps)
}

func (n *node[K]) visitEdge(e geo.Edge, include Include[K], visit Visitor[K], lookup ShapeLookup[K], eps collide.Epsilon) bool {
	if !e.BoundingBox().Intersects(n.rect) {
		return false
	}
	for _, key := range n.order {
		if !include(key) {
			continue
		}
		tg := n.tags[key]
		if tg.kind == tagEntire {
			if n.rect.ContainsPoint(e.A) || n.rect.ContainsPoint(e.B) {
				if visit(key) {
					return true
				}
			}
			continue
		}
		shape, _, ok := lookup(key)
		if !ok {
			continue
		}
		hit := false
		for _, idx := range tg.edgeIdx {
			if collide.EdgeEdge(e, shape.EdgeAt(idx), eps) {
				hit = true
				break
			}
		}
		if hit {
			if visit(key) {
				return true
			}
		}
	}
	if n.hasKids {
		for _, child := range n.children {
			if child.visitEdge(e, include, visit, lookup, eps) {
				return true
			}
		}
	}
	return false
}
