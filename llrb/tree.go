package llrb

import (
	"fmt"
)

// Tree is an order-statistics left-leaning red-black tree.
//
// K is the key type, ordered by the comparator of the tree configuration.
// V is the payload type; sets use struct{}.
//
// Positions are 0-based ranks in ascending key order.
//
//	Operation          |  Complexity
//	-------------------+------------
//	Insert / Remove    |  O(log n)
//	Find / Rank        |  O(log n)
//	Select / At        |  O(log n)
//	Index Next / Prev  |  O(1) amortized
//	Iterate            |  O(n)
//	Check              |  O(n log n)
type Tree[K, V any] struct {
	cfg   Config[K]
	nodes []node[K, V] // arena, nodes[0] is the sentinel
	free  []uint32     // released arena slots
	root  uint32
	count int
	hib   *hibernation[K, V] // non-nil while hibernated
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K, V]{cfg: cfg}
	t.initArena(cfg.Capacity)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Clone returns a deep copy of the tree. Indices of t are not valid for the
// clone.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	t.awake()
	c := &Tree[K, V]{
		cfg:   t.cfg,
		nodes: make([]node[K, V], len(t.nodes), cap(t.nodes)),
		free:  make([]uint32, len(t.free)),
		root:  t.root,
		count: t.count,
	}
	copy(c.nodes, t.nodes)
	copy(c.free, t.free)
	return c
}

// Compare compares two keys with the comparator of the tree.
// Comparator errors are wrapped as ErrCompare.
func (t *Tree[K, V]) Compare(a, b K) (int, error) {
	c, err := t.cfg.Compare(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCompare, err)
	}
	return c, nil
}

// locate searches for key without modifying the tree. It returns the number
// of keys less than key and the node holding key, or the sentinel if key is
// absent. Every comparison an insertion or removal needs happens here.
func (t *Tree[K, V]) locate(key K) (rank int, n uint32, err error) {
	h := t.root
	for h != sentinel {
		c, err := t.Compare(key, t.nodes[h].key)
		if err != nil {
			return 0, sentinel, err
		}
		switch {
		case c < 0:
			h = t.nodes[h].left
		case c > 0:
			rank += t.leftSize(h) + 1
			h = t.nodes[h].right
		default:
			return rank + t.leftSize(h), h, nil
		}
	}
	return rank, sentinel, nil
}

// Contains reports whether key is in the tree.
func (t *Tree[K, V]) Contains(key K) (bool, error) {
	if t == nil {
		return false, nil
	}
	t.awake()
	_, n, err := t.locate(key)
	return n != sentinel, err
}

// Get returns the payload stored for key.
func (t *Tree[K, V]) Get(key K) (value V, found bool, err error) {
	if t == nil {
		return value, false, nil
	}
	t.awake()
	_, n, err := t.locate(key)
	if err != nil || n == sentinel {
		return value, false, err
	}
	return t.nodes[n].value, true, nil
}

// Find returns an index to key. If key is absent, the end index is returned
// together with found=false.
func (t *Tree[K, V]) Find(key K) (at Index[K, V], found bool, err error) {
	if t == nil {
		return Index[K, V]{}, false, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	t.awake()
	_, n, err := t.locate(key)
	if err != nil {
		return t.End(), false, err
	}
	return t.index(n), n != sentinel, nil
}

// Insert inserts key with payload value. If an equivalent key is already
// present, its payload is overwritten, the stored key is kept and inserted is
// false. The returned index refers to the node holding key.
//
// If the comparator fails, the tree is left unchanged and the error is
// returned, wrapped as ErrCompare.
func (t *Tree[K, V]) Insert(key K, value V) (inserted bool, at Index[K, V], err error) {
	return t.insert(key, value, false)
}

// Update works like Insert, but additionally replaces a stored equivalent key
// with key.
func (t *Tree[K, V]) Update(key K, value V) (inserted bool, at Index[K, V], err error) {
	return t.insert(key, value, true)
}

func (t *Tree[K, V]) insert(key K, value V, replaceKey bool) (bool, Index[K, V], error) {
	if t == nil {
		return false, Index[K, V]{}, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	t.awake()
	rank, n, err := t.locate(key)
	if err != nil {
		tracer().Debugf("llrb: insert aborted before mutation: %v", err)
		return false, t.End(), err
	}
	ins := insertion[K, V]{
		key:        key,
		value:      value,
		exists:     n != sentinel,
		replaceKey: replaceKey,
	}
	t.root = t.insertAt(sentinel, t.root, rank, &ins)
	t.nodes[t.root].color = black
	t.nodes[t.root].parent = sentinel
	t.count = int(t.nodes[t.root].size)
	return !ins.exists, t.index(ins.at), nil
}

// Remove deletes key from the tree and returns the stored key and payload.
// Removing an absent key is not an error; it returns found=false and leaves
// the tree untouched.
//
// Removal may move the key and payload of the successor of the removed key
// into the node of the removed key. Indices to that node stay valid but
// refer to the successor's key afterwards. Indices to the removed node
// become stale.
func (t *Tree[K, V]) Remove(key K) (k K, v V, found bool, err error) {
	if t == nil {
		return k, v, false, nil
	}
	t.awake()
	rank, n, err := t.locate(key)
	if err != nil {
		tracer().Debugf("llrb: remove aborted before mutation: %v", err)
		return k, v, false, err
	}
	if n == sentinel {
		return k, v, false, nil
	}
	k, v = t.removeRank(rank)
	return k, v, true, nil
}

// RemoveAt deletes the key at position pos and returns it with its payload.
// pos must be in [0, Len()); otherwise RemoveAt panics.
func (t *Tree[K, V]) RemoveAt(pos int) (K, V) {
	t.checkPosition(pos, "RemoveAt")
	return t.removeRank(pos)
}

// RemoveIndex deletes the key an index refers to. The index must not be the
// end index and must not be stale.
func (t *Tree[K, V]) RemoveIndex(at Index[K, V]) (K, V) {
	at.mustBeElement(t, "RemoveIndex")
	return t.removeRank(t.position(at.node))
}

func (t *Tree[K, V]) removeRank(rank int) (K, V) {
	var out removal[K, V]
	if !t.isRed(t.nodes[t.root].left) && !t.isRed(t.nodes[t.root].right) {
		t.nodes[t.root].color = red
	}
	t.root = t.removeAt(t.root, rank, &out)
	if t.root != sentinel {
		t.nodes[t.root].color = black
		t.nodes[t.root].parent = sentinel
	}
	t.count = int(t.nodes[t.root].size)
	return out.key, out.value
}

// RemoveAll deletes every key. All indices except the end index become stale.
func (t *Tree[K, V]) RemoveAll() {
	if t == nil {
		return
	}
	t.awake()
	t.free = t.free[:0]
	for n := len(t.nodes) - 1; n > 0; n-- {
		t.nodes[n] = node[K, V]{gen: t.nodes[n].gen + 1}
		t.free = append(t.free, uint32(n))
	}
	t.root = sentinel
	t.count = 0
}

// awake panics if the tree is hibernated.
func (t *Tree[K, V]) awake() {
	if t.hib != nil {
		violation(ErrHibernated, "boot the tree before using it")
	}
}

func (t *Tree[K, V]) checkPosition(pos int, op string) {
	if t == nil {
		violation(ErrIndexOutOfBounds, "%s(%d) on nil tree", op, pos)
	}
	t.awake()
	if pos < 0 || pos >= t.count {
		violation(ErrIndexOutOfBounds, "%s(%d) with %d keys", op, pos, t.count)
	}
}
