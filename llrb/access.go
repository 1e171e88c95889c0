package llrb

// Select returns the key at position pos, i.e. the key with exactly pos
// smaller keys in the tree.
//
// pos must be in [0, Len()); otherwise Select panics with ErrIndexOutOfBounds.
func (t *Tree[K, V]) Select(pos int) K {
	t.checkPosition(pos, "Select")
	return t.nodes[t.selectNode(pos)].key
}

// At returns the entry at position pos. The precondition is the same as for
// Select.
func (t *Tree[K, V]) At(pos int) (K, V) {
	t.checkPosition(pos, "At")
	n := t.selectNode(pos)
	return t.nodes[n].key, t.nodes[n].value
}

// IndexAt returns an index to the entry at position pos. pos == Len() yields
// the end index, other positions outside [0, Len()) panic.
func (t *Tree[K, V]) IndexAt(pos int) Index[K, V] {
	if t != nil && pos == t.count {
		t.awake()
		return t.End()
	}
	t.checkPosition(pos, "IndexAt")
	return t.index(t.selectNode(pos))
}

// Rank returns the number of keys strictly less than key. key does not need
// to be present in the tree.
func (t *Tree[K, V]) Rank(key K) (int, error) {
	if t == nil {
		return 0, nil
	}
	t.awake()
	rank, _, err := t.locate(key)
	return rank, err
}

// selectNode descends by left subtree sizes. pos has to be valid.
func (t *Tree[K, V]) selectNode(pos int) uint32 {
	h := t.root
	for h != sentinel {
		ls := t.leftSize(h)
		switch {
		case pos < ls:
			h = t.nodes[h].left
		case pos > ls:
			pos -= ls + 1
			h = t.nodes[h].right
		default:
			return h
		}
	}
	violation(ErrCorrupted, "select ran off the tree, subtree sizes are inconsistent")
	return sentinel
}

// position is the rank of node n, computed by walking up to the root.
func (t *Tree[K, V]) position(n uint32) int {
	if n == sentinel {
		return t.count
	}
	pos := t.leftSize(n)
	for p := t.nodes[n].parent; p != sentinel; n, p = p, t.nodes[p].parent {
		if t.nodes[p].right == n {
			pos += t.leftSize(p) + 1
		}
	}
	return pos
}
