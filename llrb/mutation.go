package llrb

// Mutations descend by rank, not by key. The rank of the target is determined
// by locate beforehand, so the comparator is never called while the tree is
// being restructured.

type insertion[K, V any] struct {
	key        K
	value      V
	exists     bool // an equivalent key is stored at the target rank
	replaceKey bool
	at         uint32 // node holding the key after insertion
}

type removal[K, V any] struct {
	key   K
	value V
}

// insertAt inserts into the subtree rooted at h, which hangs below parent.
// rank is the target position relative to the subtree.
func (t *Tree[K, V]) insertAt(parent, h uint32, rank int, ins *insertion[K, V]) uint32 {
	if h == sentinel {
		n := t.alloc(ins.key, ins.value)
		t.nodes[n].parent = parent
		ins.at = n
		return n
	}
	ls := t.leftSize(h)
	switch {
	case ins.exists && rank == ls:
		t.nodes[h].value = ins.value
		if ins.replaceKey {
			t.nodes[h].key = ins.key
		}
		ins.at = h
	case rank <= ls:
		t.setLeft(h, t.insertAt(h, t.nodes[h].left, rank, ins))
	default:
		t.setRight(h, t.insertAt(h, t.nodes[h].right, rank-ls-1, ins))
	}
	return t.fixUp(h)
}

// fixUp restores the left-leaning shape on the way up from an insertion.
func (t *Tree[K, V]) fixUp(h uint32) uint32 {
	if t.isRed(t.nodes[h].right) && !t.isRed(t.nodes[h].left) {
		h = t.rotateLeft(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[t.nodes[h].left].left) {
		h = t.rotateRight(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[h].right) {
		t.flipColors(h)
	}
	t.updateSize(h)
	return h
}

// removeAt removes the node at position rank of the subtree rooted at h and
// returns the new subtree root. Neither h nor h.left may be a 2-node on entry.
func (t *Tree[K, V]) removeAt(h uint32, rank int, out *removal[K, V]) uint32 {
	if rank < t.leftSize(h) {
		if l := t.nodes[h].left; !t.isRed(l) && !t.isRed(t.nodes[l].left) {
			h = t.moveRedLeft(h)
		}
		t.setLeft(h, t.removeAt(t.nodes[h].left, rank, out))
		return t.balance(h)
	}
	if t.isRed(t.nodes[h].left) {
		h = t.rotateRight(h)
	}
	ls := t.leftSize(h)
	if rank == ls && t.nodes[h].right == sentinel {
		assert(t.nodes[h].left == sentinel, "llrb: removal target has dangling left subtree")
		out.key, out.value = t.nodes[h].key, t.nodes[h].value
		t.release(h)
		return sentinel
	}
	if r := t.nodes[h].right; !t.isRed(r) && !t.isRed(t.nodes[r].left) {
		h = t.moveRedRight(h)
		ls = t.leftSize(h)
	}
	if rank == ls {
		out.key, out.value = t.nodes[h].key, t.nodes[h].value
		m := t.minNode(t.nodes[h].right)
		t.nodes[h].key, t.nodes[h].value = t.nodes[m].key, t.nodes[m].value
		t.setRight(h, t.deleteMin(t.nodes[h].right))
	} else {
		t.setRight(h, t.removeAt(t.nodes[h].right, rank-ls-1, out))
	}
	return t.balance(h)
}

func (t *Tree[K, V]) deleteMin(h uint32) uint32 {
	if t.nodes[h].left == sentinel {
		t.release(h)
		return sentinel
	}
	if l := t.nodes[h].left; !t.isRed(l) && !t.isRed(t.nodes[l].left) {
		h = t.moveRedLeft(h)
	}
	t.setLeft(h, t.deleteMin(t.nodes[h].left))
	return t.balance(h)
}

func (t *Tree[K, V]) balance(h uint32) uint32 {
	if t.isRed(t.nodes[h].right) {
		h = t.rotateLeft(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[t.nodes[h].left].left) {
		h = t.rotateRight(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[h].right) {
		t.flipColors(h)
	}
	t.updateSize(h)
	return h
}

// moveRedLeft makes h.left or one of its children red, assuming h is red and
// both h.left and h.left.left are black.
func (t *Tree[K, V]) moveRedLeft(h uint32) uint32 {
	t.flipColors(h)
	if r := t.nodes[h].right; t.isRed(t.nodes[r].left) {
		t.setRight(h, t.rotateRight(r))
		h = t.rotateLeft(h)
		t.flipColors(h)
	}
	return h
}

// moveRedRight makes h.right or one of its children red, assuming h is red and
// both h.right and h.right.left are black.
func (t *Tree[K, V]) moveRedRight(h uint32) uint32 {
	t.flipColors(h)
	if t.isRed(t.nodes[t.nodes[h].left].left) {
		h = t.rotateRight(h)
		t.flipColors(h)
	}
	return h
}
