package quadtree

import (
	"github.com/ChicagoDave/nestcde/pkg/collide"
	"github.com/ChicagoDave/nestcde/pkg/geo"
)

type tagKind int

const (
	tagPartial tagKind = iota
	tagEntire
)

type tag struct {
	kind    tagKind
	edgeIdx []int // indices into the hazard's Shape.Edges(), insertion order
}

// node is one rectangle of the region quadtree. Children are always
// created in the fixed NW, NE, SW, SE order (geo.Rect.Quadrants), and a
// node's own tag ordering is insertion order, so that traversal
// (pkg/quadtree's query methods) is fully deterministic.
type node[K comparable] struct {
	rect     geo.Rect
	depth    int
	children [4]*node[K]
	hasKids  bool
	tags     map[K]*tag
	order    []K
}

func newNode[K comparable](rect geo.Rect, depth int) *node[K] {
	return &node[K]{rect: rect, depth: depth, tags: map[K]*tag{}}
}

func (n *node[K]) setEntire(key K) {
	if _, exists := n.tags[key]; !exists {
		n.order = append(n.order, key)
	}
	n.tags[key] = &tag{kind: tagEntire}
}

func (n *node[K]) mergePartial(key K, idx []int) {
	if existing, ok := n.tags[key]; ok && existing.kind == tagPartial {
		existing.edgeIdx = append(existing.edgeIdx, idx...)
		return
	}
	n.order = append(n.order, key)
	cp := make([]int, len(idx))
	copy(cp, idx)
	n.tags[key] = &tag{kind: tagPartial, edgeIdx: cp}
}

func (n *node[K]) totalPartialEdges() int {
	total := 0
	for _, tg := range n.tags {
		if tg.kind == tagPartial {
			total += len(tg.edgeIdx)
		}
	}
	return total
}

func (n *node[K]) needsSubdivide(newEdges int, cfg Config) bool {
	if n.depth >= cfg.MaxDepth {
		return false
	}
	return n.totalPartialEdges()+newEdges > cfg.CDThreshold
}

func (n *node[K]) subdivide() {
	quads := n.rect.Quadrants()
	for i := range n.children {
		n.children[i] = newNode[K](quads[i], n.depth+1)
	}
	n.hasKids = true
}

func (n *node[K]) remove(key K) {
	if _, ok := n.tags[key]; ok {
		delete(n.tags, key)
		for i, k := range n.order {
			if k == key {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
	if n.hasKids {
		for _, c := range n.children {
			c.remove(key)
		}
	}
}

// crossingEdges returns the subset of candidateIdx whose edge actually
// intersects n.rect.
func crossingEdges(shape geo.Shape, candidateIdx []int, rect geo.Rect) []int {
	out := make([]int, 0, len(candidateIdx))
	for _, idx := range candidateIdx {
		if collide.EdgeRect(shape.EdgeAt(idx), rect) {
			out = append(out, idx)
		}
	}
	return out
}

// regionSatisfies reports whether every point of rect counts as a
// collision for the given presence, given that no boundary edge of
// shape crosses rect (the caller guarantees this; otherwise the
// region's classification would not be uniform).
func regionSatisfies(rect geo.Rect, shape geo.Shape, presence Presence, eps collide.Epsilon) bool {
	c := collide.PointInShape(rect.Center(), shape, eps)
	switch presence {
	case Exclusion:
		return c == collide.Inside || c == collide.Boundary
	case Enclosure:
		return c == collide.Outside
	default:
		return false
	}
}

func fullyContainsEdge(rect geo.Rect, e geo.Edge) bool {
	return rect.ContainsPoint(e.A) && rect.ContainsPoint(e.B)
}

// insert distributes the hazard's candidateIdx edges into this subtree,
// per spec §4.E: edges go to the deepest node whose rectangle fully
// contains them; a node with no crossing edges for this hazard gets an
// Entire tag when its whole region satisfies the presence, otherwise
// nothing (None is never stored).
func (n *node[K]) insert(key K, shape geo.Shape, presence Presence, candidateIdx []int, cfg Config, eps collide.Epsilon) {
	crossing := crossingEdges(shape, candidateIdx, n.rect)
	if len(crossing) == 0 {
		if regionSatisfies(n.rect, shape, presence, eps) {
			n.setEntire(key)
		}
		return
	}

	if !n.hasKids && n.needsSubdivide(len(crossing), cfg) {
		n.subdivide()
	}
	if !n.hasKids {
		n.mergePartial(key, crossing)
		return
	}

	quads := n.rect.Quadrants()
	remain := make([]int, 0)
	touchedChild := [4]bool{}
	for _, idx := range crossing {
		e := shape.EdgeAt(idx)
		placed := false
		for qi, child := range n.children {
			if fullyContainsEdge(quads[qi], e) {
				child.insert(key, shape, presence, []int{idx}, cfg, eps)
				touchedChild[qi] = true
				placed = true
				break
			}
		}
		if !placed {
			remain = append(remain, idx)
		}
	}
	for qi, child := range n.children {
		if touchedChild[qi] {
			continue
		}
		if _, already := child.tags[key]; already {
			continue
		}
		if regionSatisfies(child.rect, shape, presence, eps) {
			child.setEntire(key)
		}
	}
	if len(remain) > 0 {
		n.mergePartial(key, remain)
	}
}
