package llrb

import "math"

type color bool

const (
	black color = false
	red   color = true
)

// sentinel is the arena slot terminating every leaf edge. It is black, has
// size 0, links to itself and is never written to.
const sentinel uint32 = 0

type node[K, V any] struct {
	key   K
	value V
	// parent is a back-reference; left and right own their subtrees.
	parent, left, right uint32
	// size is the number of real nodes in the subtree rooted here.
	size uint32
	// gen is bumped every time the slot is released.
	gen   uint32
	color color
}

// --- Arena -----------------------------------------------------------------

func (t *Tree[K, V]) initArena(capacity int) {
	t.nodes = make([]node[K, V], 1, capacity+1)
	t.free = nil
	t.root = sentinel
	t.count = 0
}

// alloc returns a fresh red leaf of size 1, re-using released slots first.
func (t *Tree[K, V]) alloc(key K, value V) uint32 {
	var n uint32
	if k := len(t.free); k > 0 {
		n = t.free[k-1]
		t.free = t.free[:k-1]
	} else {
		assert(len(t.nodes) < math.MaxUint32, "llrb: node arena exhausted")
		t.nodes = append(t.nodes, node[K, V]{})
		n = uint32(len(t.nodes) - 1)
	}
	gen := t.nodes[n].gen
	t.nodes[n] = node[K, V]{key: key, value: value, size: 1, gen: gen, color: red}
	return n
}

// release returns a slot to the free list. Indices still referring to it
// become stale.
func (t *Tree[K, V]) release(n uint32) {
	assert(n != sentinel, "llrb: sentinel cannot be released")
	gen := t.nodes[n].gen + 1
	t.nodes[n] = node[K, V]{gen: gen}
	t.free = append(t.free, n)
}

// --- Node accessors ----------------------------------------------------------

func (t *Tree[K, V]) isRed(n uint32) bool {
	return n != sentinel && t.nodes[n].color == red
}

func (t *Tree[K, V]) leftSize(n uint32) int {
	return int(t.nodes[t.nodes[n].left].size)
}

func (t *Tree[K, V]) setLeft(h, x uint32) {
	t.nodes[h].left = x
	if x != sentinel {
		t.nodes[x].parent = h
	}
}

func (t *Tree[K, V]) setRight(h, x uint32) {
	t.nodes[h].right = x
	if x != sentinel {
		t.nodes[x].parent = h
	}
}

func (t *Tree[K, V]) updateSize(h uint32) {
	l, r := t.nodes[h].left, t.nodes[h].right
	t.nodes[h].size = 1 + t.nodes[l].size + t.nodes[r].size
}

func (t *Tree[K, V]) minNode(n uint32) uint32 {
	for t.nodes[n].left != sentinel {
		n = t.nodes[n].left
	}
	return n
}

func (t *Tree[K, V]) maxNode(n uint32) uint32 {
	for t.nodes[n].right != sentinel {
		n = t.nodes[n].right
	}
	return n
}

// successor returns the in-order successor of n, or the sentinel.
func (t *Tree[K, V]) successor(n uint32) uint32 {
	if r := t.nodes[n].right; r != sentinel {
		return t.minNode(r)
	}
	p := t.nodes[n].parent
	for p != sentinel && n == t.nodes[p].right {
		n, p = p, t.nodes[p].parent
	}
	return p
}

// predecessor returns the in-order predecessor of n, or the sentinel.
func (t *Tree[K, V]) predecessor(n uint32) uint32 {
	if l := t.nodes[n].left; l != sentinel {
		return t.maxNode(l)
	}
	p := t.nodes[n].parent
	for p != sentinel && n == t.nodes[p].left {
		n, p = p, t.nodes[p].parent
	}
	return p
}

// --- Rotations and color flips ---------------------------------------------

// rotateLeft turns (h a (x b c)) into (x (h a b) c).
// x takes over h's color and parent, h turns red.
func (t *Tree[K, V]) rotateLeft(h uint32) uint32 {
	x := t.nodes[h].right
	assert(x != sentinel, "llrb: rotateLeft without right child")
	t.setRight(h, t.nodes[x].left)
	t.nodes[x].parent = t.nodes[h].parent
	t.setLeft(x, h)
	t.nodes[x].color = t.nodes[h].color
	t.nodes[h].color = red
	t.nodes[x].size = t.nodes[h].size
	t.updateSize(h)
	return x
}

// rotateRight turns (h (x a b) c) into (x a (h b c)).
// x takes over h's color and parent, h turns red.
func (t *Tree[K, V]) rotateRight(h uint32) uint32 {
	x := t.nodes[h].left
	assert(x != sentinel, "llrb: rotateRight without left child")
	t.setLeft(h, t.nodes[x].right)
	t.nodes[x].parent = t.nodes[h].parent
	t.setRight(x, h)
	t.nodes[x].color = t.nodes[h].color
	t.nodes[h].color = red
	t.nodes[x].size = t.nodes[h].size
	t.updateSize(h)
	return x
}

// flipColors inverts the colors of h and its children, splitting or merging
// a temporary 4-node.
func (t *Tree[K, V]) flipColors(h uint32) {
	for _, n := range [3]uint32{h, t.nodes[h].left, t.nodes[h].right} {
		if n != sentinel {
			t.nodes[n].color = !t.nodes[n].color
		}
	}
}
