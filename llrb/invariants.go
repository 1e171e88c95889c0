package llrb

import "fmt"

// Check validates the structural invariants of the tree:
// symmetric key order, left-leaning red links without two reds in a row,
// uniform black height, subtree sizes, parent links, rank/select duality
// and the bookkeeping of the node arena.
//
// Check is O(n log n) and meant to be used in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.hib != nil {
		return fmt.Errorf("%w: cannot check hibernated tree", ErrHibernated)
	}
	if err := t.checkSentinel(); err != nil {
		return t.corrupted(err)
	}
	if t.root != sentinel {
		if t.nodes[t.root].color != black {
			return t.corrupted(fmt.Errorf("%w: root is red", ErrCorrupted))
		}
		if t.nodes[t.root].parent != sentinel {
			return t.corrupted(fmt.Errorf("%w: root has parent %d", ErrCorrupted, t.nodes[t.root].parent))
		}
	}
	if _, err := t.checkNode(t.root); err != nil {
		return t.corrupted(err)
	}
	if t.count != int(t.nodes[t.root].size) {
		return t.corrupted(fmt.Errorf("%w: count %d != root size %d", ErrCorrupted, t.count, t.nodes[t.root].size))
	}
	if t.count+len(t.free)+1 != len(t.nodes) {
		return t.corrupted(fmt.Errorf("%w: arena of %d slots holds %d nodes and %d free slots",
			ErrCorrupted, len(t.nodes), t.count, len(t.free)))
	}
	if err := t.checkOrder(); err != nil {
		return t.corrupted(err)
	}
	return t.corrupted(t.checkRanks())
}

func (t *Tree[K, V]) corrupted(err error) error {
	if err != nil {
		tracer().Errorf("llrb: tree check failed: %v", err)
	}
	return err
}

func (t *Tree[K, V]) checkSentinel() error {
	if len(t.nodes) == 0 {
		return fmt.Errorf("%w: arena without sentinel", ErrCorrupted)
	}
	s := t.nodes[sentinel]
	if s.color != black || s.size != 0 || s.left != sentinel || s.right != sentinel || s.parent != sentinel {
		return fmt.Errorf("%w: sentinel has been written to", ErrCorrupted)
	}
	return nil
}

// checkNode checks the subtree rooted at h and returns its black height.
func (t *Tree[K, V]) checkNode(h uint32) (blackHeight int, err error) {
	if h == sentinel {
		return 0, nil
	}
	if int(h) >= len(t.nodes) {
		return 0, fmt.Errorf("%w: link to slot %d outside arena", ErrCorrupted, h)
	}
	n := t.nodes[h]
	if t.isRed(n.right) {
		return 0, fmt.Errorf("%w: node %d has red right link", ErrCorrupted, h)
	}
	if n.color == red && t.isRed(n.left) {
		return 0, fmt.Errorf("%w: node %d has two red links in a row", ErrCorrupted, h)
	}
	for _, c := range [2]uint32{n.left, n.right} {
		if c != sentinel && t.nodes[c].parent != h {
			return 0, fmt.Errorf("%w: child %d of node %d has parent %d", ErrCorrupted, c, h, t.nodes[c].parent)
		}
	}
	lh, err := t.checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: node %d has black heights %d and %d", ErrCorrupted, h, lh, rh)
	}
	if n.size != 1+t.nodes[n.left].size+t.nodes[n.right].size {
		return 0, fmt.Errorf("%w: node %d has wrong size %d", ErrCorrupted, h, n.size)
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}

// checkOrder requires keys to be strictly ascending in order.
func (t *Tree[K, V]) checkOrder() error {
	if t.root == sentinel {
		return nil
	}
	prev := t.minNode(t.root)
	for n := t.successor(prev); n != sentinel; prev, n = n, t.successor(n) {
		c, err := t.Compare(t.nodes[prev].key, t.nodes[n].key)
		if err != nil {
			return err
		}
		if c >= 0 {
			return fmt.Errorf("%w: keys of nodes %d and %d are out of order", ErrCorrupted, prev, n)
		}
	}
	return nil
}

func (t *Tree[K, V]) checkRanks() error {
	for i := 0; i < t.count; i++ {
		n := t.selectNode(i)
		if p := t.position(n); p != i {
			return fmt.Errorf("%w: node %d selected for position %d is at position %d", ErrCorrupted, n, i, p)
		}
		r, _, err := t.locate(t.nodes[n].key)
		if err != nil {
			return err
		}
		if r != i {
			return fmt.Errorf("%w: key at position %d has rank %d", ErrCorrupted, i, r)
		}
	}
	return nil
}
