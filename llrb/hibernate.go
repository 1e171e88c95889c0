package llrb

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Structural columns of the arena, de-interleaved for better compression.
const (
	colParent = iota
	colLeft
	colRight
	colSize
	colGen
	colColor
	colFree
	columnCount
)

// hibernation holds the packed link structure of an idle tree. Keys and
// payloads are opaque to the tree and stay resident.
type hibernation[K, V any] struct {
	slots   int
	freeLen int
	columns [columnCount][]byte
	keys    []K
	values  []V
}

// IsHibernated reports whether the tree has to be booted before use.
func (t *Tree[K, V]) IsHibernated() bool {
	return t != nil && t.hib != nil
}

// Hibernate compresses the link structure of the tree. A hibernated tree
// keeps its length, but any other operation panics with ErrHibernated until
// Boot is called.
//
// Trees with fewer arena slots than Config.HibernationThreshold are left
// awake.
func (t *Tree[K, V]) Hibernate() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.hib != nil {
		return fmt.Errorf("%w: tree is already hibernated", ErrHibernated)
	}
	if len(t.nodes) < t.cfg.HibernationThreshold {
		tracer().Debugf("llrb: %d slots below hibernation threshold %d", len(t.nodes), t.cfg.HibernationThreshold)
		return nil
	}
	hib := &hibernation[K, V]{
		slots:   len(t.nodes),
		freeLen: len(t.free),
		keys:    make([]K, len(t.nodes)),
		values:  make([]V, len(t.nodes)),
	}
	var columns [columnCount][]uint32
	for c := range colFree {
		columns[c] = make([]uint32, len(t.nodes))
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		hib.keys[i], hib.values[i] = n.key, n.value
		columns[colParent][i] = n.parent
		columns[colLeft][i] = n.left
		columns[colRight][i] = n.right
		columns[colSize][i] = n.size
		columns[colGen][i] = n.gen
		if n.color == red {
			columns[colColor][i] = 1
		}
	}
	columns[colFree] = t.free
	var g errgroup.Group
	for c := range columns {
		g.Go(func() error {
			packed, err := packColumn(columns[c])
			hib.columns[c] = packed
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	tracer().Debugf("llrb: hibernating tree with %d slots", hib.slots)
	t.hib = hib
	t.nodes, t.free = nil, nil
	return nil
}

// Boot restores a hibernated tree. Booting an awake tree does nothing.
// If the packed structure cannot be restored, the tree stays hibernated and
// an error wrapping ErrCorrupted is returned.
func (t *Tree[K, V]) Boot() error {
	if t == nil || t.hib == nil {
		return nil
	}
	hib := t.hib
	var columns [columnCount][]uint32
	var g errgroup.Group
	for c := range columns {
		n := hib.slots
		if c == colFree {
			n = hib.freeLen
		}
		g.Go(func() error {
			column, err := unpackColumn(hib.columns[c], n)
			columns[c] = column
			return err
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("llrb: boot failed: %v", err)
		return err
	}
	nodes := make([]node[K, V], hib.slots, max(hib.slots, t.cfg.Capacity+1))
	for i := range nodes {
		nodes[i] = node[K, V]{
			key:    hib.keys[i],
			value:  hib.values[i],
			parent: columns[colParent][i],
			left:   columns[colLeft][i],
			right:  columns[colRight][i],
			size:   columns[colSize][i],
			gen:    columns[colGen][i],
			color:  columns[colColor][i] != 0,
		}
	}
	t.nodes, t.free = nodes, columns[colFree]
	t.hib = nil
	tracer().Debugf("llrb: booted tree with %d slots", hib.slots)
	return nil
}
