package llrb

// Index is a position in the in-order sequence of a tree. The zero Index is
// not attached to any tree and is not valid.
//
// An index refers to a node, not to a key. Removing a key whose node has two
// children moves the in-order successor's key and payload into that node and
// releases the successor's node instead. Indices to a released node are
// stale, and using a stale index panics with ErrStaleIndex. Indices to the
// receiving node stay valid but observe the successor's key.
type Index[K, V any] struct {
	tree *Tree[K, V]
	node uint32
	gen  uint32
}

func (t *Tree[K, V]) index(n uint32) Index[K, V] {
	return Index[K, V]{tree: t, node: n, gen: t.nodes[n].gen}
}

// Start returns an index to the smallest key, or End if the tree is empty.
func (t *Tree[K, V]) Start() Index[K, V] {
	t.awake()
	if t.root == sentinel {
		return t.End()
	}
	return t.index(t.minNode(t.root))
}

// End returns the index one past the largest key.
func (t *Tree[K, V]) End() Index[K, V] {
	return Index[K, V]{tree: t, node: sentinel}
}

// IsValid reports whether the index may be dereferenced or moved.
func (at Index[K, V]) IsValid() bool {
	if at.tree == nil || at.tree.hib != nil {
		return false
	}
	if at.node == sentinel {
		return true
	}
	return int(at.node) < len(at.tree.nodes) && at.tree.nodes[at.node].gen == at.gen &&
		at.tree.nodes[at.node].size > 0
}

// IsEnd reports whether the index is the end index of its tree.
func (at Index[K, V]) IsEnd() bool {
	return at.node == sentinel
}

// Equal reports whether two indices refer to the same position of the same
// tree.
func (at Index[K, V]) Equal(other Index[K, V]) bool {
	return at.tree == other.tree && at.node == other.node
}

// Key returns the key at the index. Panics for the end index.
func (at Index[K, V]) Key() K {
	at.mustBeElement(at.tree, "Key")
	return at.tree.nodes[at.node].key
}

// Value returns the payload at the index. Panics for the end index.
func (at Index[K, V]) Value() V {
	at.mustBeElement(at.tree, "Value")
	return at.tree.nodes[at.node].value
}

// Entry returns key and payload at the index. Panics for the end index.
func (at Index[K, V]) Entry() (K, V) {
	at.mustBeElement(at.tree, "Entry")
	n := &at.tree.nodes[at.node]
	return n.key, n.value
}

// SetValue overwrites the payload at the index. The key and the shape of the
// tree are not touched.
func (at Index[K, V]) SetValue(value V) {
	at.mustBeElement(at.tree, "SetValue")
	at.tree.nodes[at.node].value = value
}

// Next returns the index of the in-order successor. Calling Next on the end
// index panics.
func (at Index[K, V]) Next() Index[K, V] {
	at.mustBeElement(at.tree, "Next")
	return at.tree.index(at.tree.successor(at.node))
}

// Prev returns the index of the in-order predecessor. The predecessor of the
// end index is the largest key. Calling Prev on the start index panics.
func (at Index[K, V]) Prev() Index[K, V] {
	at.mustBeValid("Prev")
	t := at.tree
	var p uint32
	if at.node == sentinel {
		if t.root != sentinel {
			p = t.maxNode(t.root)
		}
	} else {
		p = t.predecessor(at.node)
	}
	if p == sentinel {
		violation(ErrIndexOutOfBounds, "Prev called on start index")
	}
	return t.index(p)
}

// Position returns the rank of the key at the index, or Len() for the end
// index.
func (at Index[K, V]) Position() int {
	at.mustBeValid("Position")
	return at.tree.position(at.node)
}

// Less reports whether at comes before other in the in-order sequence. Both
// indices have to belong to the same tree.
//
// Less does not compare keys. It walks forward from both indices in turn
// until one walk meets the start of the other, which takes time proportional
// to the distance between the two.
func (at Index[K, V]) Less(other Index[K, V]) bool {
	at.mustBeValid("Less")
	other.mustBeValid("Less")
	if at.tree != other.tree {
		violation(ErrForeignIndex, "cannot compare indices of different trees")
	}
	switch {
	case at.node == other.node:
		return false
	case at.node == sentinel:
		return false
	case other.node == sentinel:
		return true
	}
	t := at.tree
	a, b := at.node, other.node
	for {
		if a = t.successor(a); a == other.node {
			return true
		} else if a == sentinel {
			return false
		}
		if b = t.successor(b); b == at.node {
			return false
		} else if b == sentinel {
			return true
		}
	}
}

func (at Index[K, V]) mustBeValid(op string) {
	if at.tree == nil {
		violation(ErrStaleIndex, "%s on detached index", op)
	}
	at.tree.awake()
	if !at.IsValid() {
		violation(ErrStaleIndex, "%s on index to removed node %d", op, at.node)
	}
}

func (at Index[K, V]) mustBeElement(t *Tree[K, V], op string) {
	at.mustBeValid(op)
	if at.tree != t {
		violation(ErrForeignIndex, "%s with index of another tree", op)
	}
	if at.node == sentinel {
		violation(ErrIndexOutOfBounds, "%s on end index", op)
	}
}
