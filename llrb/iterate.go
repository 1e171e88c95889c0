package llrb

import "iter"

// First returns the entry with the smallest key. ok is false for an empty
// tree.
func (t *Tree[K, V]) First() (key K, value V, ok bool) {
	if t == nil {
		return key, value, false
	}
	t.awake()
	if t.root == sentinel {
		return key, value, false
	}
	n := t.minNode(t.root)
	return t.nodes[n].key, t.nodes[n].value, true
}

// Last returns the entry with the largest key. ok is false for an empty tree.
func (t *Tree[K, V]) Last() (key K, value V, ok bool) {
	if t == nil {
		return key, value, false
	}
	t.awake()
	if t.root == sentinel {
		return key, value, false
	}
	n := t.maxNode(t.root)
	return t.nodes[n].key, t.nodes[n].value, true
}

// ForEach walks the entries in ascending key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || t.root == sentinel || fn == nil {
		return
	}
	t.awake()
	t.forEachNode(t.root, fn)
}

func (t *Tree[K, V]) forEachNode(h uint32, fn func(key K, value V) bool) bool {
	if h == sentinel {
		return true
	}
	if !t.forEachNode(t.nodes[h].left, fn) {
		return false
	}
	if !fn(t.nodes[h].key, t.nodes[h].value) {
		return false
	}
	return t.forEachNode(t.nodes[h].right, fn)
}

// All returns an iterator over the entries in ascending key order.
// The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ForEach(yield)
	}
}

// Backward returns an iterator over the entries in descending key order,
// stepping from predecessor to predecessor.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil || t.root == sentinel {
			return
		}
		t.awake()
		for n := t.maxNode(t.root); n != sentinel; n = t.predecessor(n) {
			if !yield(t.nodes[n].key, t.nodes[n].value) {
				return
			}
		}
	}
}

// Range returns an iterator over the half-open index range [from, to).
// from has to be before or equal to to; an empty range yields nothing.
func (t *Tree[K, V]) Range(from, to Index[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		from.mustBeValid("Range")
		to.mustBeValid("Range")
		if from.tree != t || to.tree != t {
			violation(ErrForeignIndex, "Range with index of another tree")
		}
		for n := from.node; n != to.node; n = t.successor(n) {
			if n == sentinel {
				violation(ErrIndexOutOfBounds, "Range start is behind range end")
			}
			if !yield(t.nodes[n].key, t.nodes[n].value) {
				return
			}
		}
	}
}
