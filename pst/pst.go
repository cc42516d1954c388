package pst

import (
	"sort"

	"github.com/chaot4/frechet-distance/geom"
	"github.com/chaot4/frechet-distance/internal/debugflag"
)

// node is one slot of the array-embedded implicit binary tree. A node
// with valid==false has been deleted (or was never filled, for slots
// left over from the position-based indexing scheme).
type node[V any] struct {
	point  geom.Point
	value  V
	xSplit float64
	valid  bool
}

// Tree is a static priority search tree over 2-D points with attached
// values of type V. Build it once via New, then repeatedly call
// ReportAndDelete; once all inserted points have been deleted the tree
// answers every query with an empty result.
type Tree[V any] struct {
	nodes []node[V]
	// scratch buffers reused across ReportAndDelete calls to avoid
	// reallocating on every query (spec §5 memory policy).
	roots     []int
	searchBuf []int
	toDelete  []int
}

// entry is a point/value pair carrying its assigned final tree position
// during the build's position-assignment phase.
type entry[V any] struct {
	point  geom.Point
	value  V
	id     int
	xSplit float64
}

func left(id int) int  { return 2*id + 1 }
func right(id int) int { return 2*id + 2 }

// New builds a priority search tree over the given points/values in
// O(n log^2 n) time (the median split here uses sort.Slice rather than a
// linear-time selection, trading a log factor for a much simpler,
// unmistakably-correct implementation — acceptable since PST build runs
// once per decider invocation against a small evidence set).
func New[V any](points []geom.Point, values []V) *Tree[V] {
	if len(points) == 0 {
		return &Tree[V]{}
	}

	entries := make([]entry[V], len(points))
	for i := range points {
		entries[i] = entry[V]{point: points[i], value: values[i]}
	}

	type buildRange struct {
		id   int
		from int
		to   int // [from, to) within entries
	}

	maxID := 0
	stack := []buildRange{{id: 0, from: 0, to: len(entries)}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		span := entries[cur.from:cur.to]
		if cur.id > maxID {
			maxID = cur.id
		}

		if len(span) == 1 {
			span[0].id = cur.id
			continue
		}

		minIdx := 0
		for i := 1; i < len(span); i++ {
			if span[i].point.Y < span[minIdx].point.Y {
				minIdx = i
			}
		}
		span[0], span[minIdx] = span[minIdx], span[0]

		minEntry := &span[0]
		rest := span[1:]
		sort.Slice(rest, func(i, j int) bool { return rest[i].point.X < rest[j].point.X })

		medianIdx := len(rest) / 2
		minEntry.id = cur.id
		if medianIdx < len(rest) {
			minEntry.xSplit = rest[medianIdx].point.X
		}

		if medianIdx > 0 {
			stack = append(stack, buildRange{id: left(cur.id), from: cur.from + 1, to: cur.from + 1 + medianIdx})
		}
		if medianIdx < len(rest) {
			stack = append(stack, buildRange{id: right(cur.id), from: cur.from + 1 + medianIdx, to: cur.to})
		}
	}

	nodes := make([]node[V], maxID+1)
	for _, e := range entries {
		nodes[e.id] = node[V]{point: e.point, value: e.value, xSplit: e.xSplit, valid: true}
	}

	return &Tree[V]{nodes: nodes}
}

// toLowerRight reports whether p lies to the lower-right of (or exactly
// on the boundary of) corner: p.X >= corner.X and p.Y <= corner.Y.
func toLowerRight(p, corner geom.Point) bool {
	return p.X >= corner.X && p.Y <= corner.Y
}

// ReportAndDelete reports and removes every live point (x, y) with
// x >= corner.X and y <= corner.Y, appending their values to out.
func (t *Tree[V]) ReportAndDelete(corner geom.Point, out *[]V) {
	if len(t.nodes) == 0 {
		return
	}

	t.roots = t.roots[:0]
	t.searchBuf = t.searchBuf[:0]
	t.toDelete = t.toDelete[:0]

	current := 0
	for current < len(t.nodes) {
		n := &t.nodes[current]
		if !n.valid {
			break
		}
		if toLowerRight(n.point, corner) {
			*out = append(*out, n.value)
			t.toDelete = append(t.toDelete, current)
		}

		if corner.X > n.xSplit {
			current = right(current)
		} else {
			t.roots = append(t.roots, right(current))
			current = left(current)
		}
	}

	for _, root := range t.roots {
		t.searchBuf = append(t.searchBuf, root)
		for len(t.searchBuf) > 0 {
			id := t.searchBuf[len(t.searchBuf)-1]
			t.searchBuf = t.searchBuf[:len(t.searchBuf)-1]

			if id >= len(t.nodes) {
				continue
			}
			n := &t.nodes[id]
			if !n.valid {
				continue
			}
			if n.point.Y <= corner.Y {
				*out = append(*out, n.value)
				t.toDelete = append(t.toDelete, id)
				t.searchBuf = append(t.searchBuf, left(id), right(id))
			}
		}
	}

	t.deleteNodes()
}

// deleteNodes invalidates every node queued in toDelete, restoring the
// heap property at each by rotating a live child up into the vacated
// slot, recursively, until a leaf is reached.
func (t *Tree[V]) deleteNodes() {
	for len(t.toDelete) > 0 {
		id := t.toDelete[len(t.toDelete)-1]
		t.toDelete = t.toDelete[:len(t.toDelete)-1]

		t.nodes[id].valid = false

		for id != -1 {
			l, r := left(id), right(id)
			hasLeft := l < len(t.nodes) && t.nodes[l].valid
			hasRight := r < len(t.nodes) && t.nodes[r].valid

			switch {
			case !hasLeft && !hasRight:
				id = -1
			case hasLeft && hasRight:
				if t.nodes[l].point.Y < t.nodes[r].point.Y {
					t.rotate(id, l)
					id = l
				} else {
					t.rotate(id, r)
					id = r
				}
			case hasLeft:
				t.rotate(id, l)
				id = l
			default:
				t.rotate(id, r)
				id = r
			}
		}
	}
}

// rotate moves child's point/value up into parent's slot (keeping
// parent's own xSplit, which still correctly partitions its subtree),
// and marks child invalid.
func (t *Tree[V]) rotate(parent, child int) {
	debugflag.Assert(t.nodes[child].valid, "pst: rotate from an already-deleted child")

	t.nodes[parent].point = t.nodes[child].point
	t.nodes[parent].value = t.nodes[child].value
	t.nodes[parent].valid = true
	t.nodes[child].valid = false
}

// Len returns the number of still-live points in t.
func (t *Tree[V]) Len() int {
	n := 0
	for _, nd := range t.nodes {
		if nd.valid {
			n++
		}
	}

	return n
}
