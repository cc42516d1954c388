// Package kdtree implements the database layer's candidate-pruning
// structure (spec §4.7): a static 8-D KD-tree over curve signatures,
// queried with a nearness predicate that is a sound lower bound on the
// Fréchet distance, never a false negative.
package kdtree

import (
	"math"
	"sort"
)

// Signature is the 8-D KD-tree key for one curve:
// (front.X, front.Y, back.X, back.Y, MinX, MinY, MaxX, MaxY), matching
// curve.Curve.Signature().
type Signature [8]float64

// node is one recursively-built split node; id is the index into the
// Signature slice Build was called with.
type node struct {
	id          int
	sig         Signature
	dim         int
	left, right *node
}

// Tree is an immutable 8-D KD-tree, alternating the split dimension by
// depth mod 8. Safe for concurrent RangeSearch once built (spec §5
// "curves and the KD-tree are immutable after build").
type Tree struct {
	root *node
	n    int
}

// Build constructs a Tree over sigs in O(n log^2 n) time (median split
// via sort.Slice at each level, the same build-time/simplicity tradeoff
// used by this module's PST sibling). The returned Tree's ids are
// indices into sigs.
func Build(sigs []Signature) *Tree {
	idx := make([]int, len(sigs))
	for i := range idx {
		idx[i] = i
	}

	return &Tree{root: build(idx, sigs, 0), n: len(sigs)}
}

func build(idx []int, sigs []Signature, depth int) *node {
	if len(idx) == 0 {
		return nil
	}

	dim := depth % 8
	sort.Slice(idx, func(a, b int) bool {
		return sigs[idx[a]][dim] < sigs[idx[b]][dim]
	})

	mid := len(idx) / 2
	n := &node{id: idx[mid], sig: sigs[idx[mid]], dim: dim}
	n.left = build(idx[:mid], sigs, depth+1)
	n.right = build(idx[mid+1:], sigs, depth+1)

	return n
}

// Len reports how many signatures Build was given.
func (t *Tree) Len() int { return t.n }

// RangeSearch returns every id whose signature satisfies the nearness
// predicate against q at radius delta (spec §4.7): both endpoint pairs
// within delta (Euclidean) and every bounding-box coordinate within
// delta (Chebyshev). The predicate over-approximates d_F(P, Q) <= delta,
// so callers must still run the filter pipeline / full decider on the
// returned candidates.
func (t *Tree) RangeSearch(q Signature, delta float64) []int {
	var out []int

	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}

		if nearness(q, n.sig, delta) {
			out = append(out, n.id)
		}

		diff := q[n.dim] - n.sig[n.dim]
		if diff <= delta {
			walk(n.left)
		}
		if -diff <= delta {
			walk(n.right)
		}
	}
	walk(t.root)

	return out
}

// nearness implements spec §4.7's predicate directly against the 8
// signature components.
func nearness(q, s Signature, delta float64) bool {
	if math.Hypot(q[0]-s[0], q[1]-s[1]) > delta {
		return false
	}
	if math.Hypot(q[2]-s[2], q[3]-s[3]) > delta {
		return false
	}

	for i := 4; i < 8; i++ {
		if math.Abs(q[i]-s[i]) > delta {
			return false
		}
	}

	return true
}
