package ordered

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordered/llrb"
	"github.com/npillmayer/ordered/order"
)

// Entry is a key/value pair of a map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map from keys of type K to values of type V.
//
// The zero value is an empty map which orders its keys with order.Dynamic.
type Map[K, V any] struct {
	tree *llrb.Tree[K, V]
}

// NewMap creates an empty map ordered by the natural order of K.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	m, err := NewMapFunc[K, V](order.Natural[K]())
	if err != nil {
		panic(err) // natural order always yields a valid configuration
	}
	return m
}

// NewMapFunc creates an empty map ordered by compare.
func NewMapFunc[K, V any](compare order.Comparator[K]) (*Map[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparator is nil", ErrIllegalArguments)
	}
	tree, err := llrb.New[K, V](llrb.Config[K]{Compare: compare})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// MapOf creates a map from entries, ordered by the natural order of K.
// Later entries overwrite earlier entries with the same key.
func MapOf[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, e := range entries {
		m.tree.Insert(e.Key, e.Value)
	}
	return m
}

func (m *Map[K, V]) engine() *llrb.Tree[K, V] {
	if m.tree == nil {
		tree, err := llrb.New[K, V](llrb.Config[K]{Compare: order.Dynamic[K]()})
		if err != nil {
			panic(err)
		}
		m.tree = tree
	}
	return m.tree
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Insert stores value for key. If key is already present, its value is
// replaced and inserted is false.
func (m *Map[K, V]) Insert(key K, value V) (inserted bool, err error) {
	inserted, _, err = m.engine().Insert(key, value)
	return inserted, err
}

// Set stores value for key, replacing a previous value.
func (m *Map[K, V]) Set(key K, value V) error {
	_, _, err := m.engine().Insert(key, value)
	return err
}

// Lookup returns the value stored for key.
func (m *Map[K, V]) Lookup(key K) (value V, found bool, err error) {
	return m.engine().Get(key)
}

// Get returns the value stored for key. Keys which cannot be compared are
// reported as absent; use Lookup to tell them apart.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, found, err := m.engine().Get(key)
	if err != nil {
		tracer().Debugf("ordered: Get: %v", err)
	}
	return v, found
}

// Contains reports whether key is present. Keys which cannot be compared are
// reported as absent.
func (m *Map[K, V]) Contains(key K) bool {
	found, err := m.engine().Contains(key)
	if err != nil {
		tracer().Debugf("ordered: Contains: %v", err)
	}
	return found
}

// Remove deletes key and returns its value. Removing an absent key is not an
// error.
func (m *Map[K, V]) Remove(key K) (value V, found bool, err error) {
	_, value, found, err = m.engine().Remove(key)
	return value, found, err
}

// RemoveAll deletes every entry.
func (m *Map[K, V]) RemoveAll() {
	m.engine().RemoveAll()
}

// Rank returns the number of keys less than key.
func (m *Map[K, V]) Rank(key K) (int, error) {
	return m.engine().Rank(key)
}

// Select returns the key at position pos. pos must be in [0, Len()).
func (m *Map[K, V]) Select(pos int) K {
	return m.engine().Select(pos)
}

// At returns the entry at position pos. pos must be in [0, Len()).
func (m *Map[K, V]) At(pos int) (K, V) {
	return m.engine().At(pos)
}

// First returns the entry with the smallest key.
func (m *Map[K, V]) First() (K, V, bool) {
	return m.engine().First()
}

// Last returns the entry with the largest key.
func (m *Map[K, V]) Last() (K, V, bool) {
	return m.engine().Last()
}

// All iterates over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.engine().All()
}

// Backward iterates over the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.engine().Backward()
}

// Keys iterates over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates over the values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Start returns an index to the smallest key.
func (m *Map[K, V]) Start() llrb.Index[K, V] {
	return m.engine().Start()
}

// End returns the index past the largest key.
func (m *Map[K, V]) End() llrb.Index[K, V] {
	return m.engine().End()
}

// Find returns an index to key, or End if key is absent.
func (m *Map[K, V]) Find(key K) (llrb.Index[K, V], bool, error) {
	return m.engine().Find(key)
}

// Range iterates over the entries in the half-open index range [from, to).
func (m *Map[K, V]) Range(from, to llrb.Index[K, V]) iter.Seq2[K, V] {
	return m.engine().Range(from, to)
}

// InsertAll inserts the entries of seq in sequence. It stops at the first
// comparator failure.
func (m *Map[K, V]) InsertAll(seq iter.Seq2[K, V]) error {
	t := m.engine()
	n := 0
	for k, v := range seq {
		if _, _, err := t.Insert(k, v); err != nil {
			return err
		}
		n++
	}
	tracer().Debugf("ordered: bulk insert of %d entries", n)
	return nil
}

// InsertEntries inserts entries in sequence. It stops at the first
// comparator failure.
func (m *Map[K, V]) InsertEntries(entries []Entry[K, V]) error {
	return m.InsertAll(func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	})
}

// Entries returns the entries in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// Clone returns a copy of the map. Values are copied shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.engine().Clone()}
}

// Equal reports whether m and other hold the same number of entries and
// their entries pair up in ascending order, with keys equivalent under the
// comparator of m and values equal under eq.
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(a, b V) bool) (bool, error) {
	if m.Len() != other.Len() {
		return false, nil
	}
	if m.Len() == 0 {
		return true, nil
	}
	t := m.engine()
	a, b := t.Start(), other.engine().Start()
	for ; !a.IsEnd(); a, b = a.Next(), b.Next() {
		ka, va := a.Entry()
		kb, vb := b.Entry()
		c, err := t.Compare(ka, kb)
		if err != nil {
			return false, err
		}
		if c != 0 || !eq(va, vb) {
			return false, nil
		}
	}
	return true, nil
}

// EqualMaps compares two maps with comparable values.
func EqualMaps[K any, V comparable](a, b *Map[K, V]) (bool, error) {
	return a.Equal(b, func(x, y V) bool { return x == y })
}

// Check validates the internal tree structure.
func (m *Map[K, V]) Check() error {
	return m.engine().Check()
}

// Hibernate compresses the internal structure of an idle map. The map has to
// be booted before it is used again.
func (m *Map[K, V]) Hibernate() error {
	return m.engine().Hibernate()
}

// Boot wakes a hibernated map.
func (m *Map[K, V]) Boot() error {
	return m.engine().Boot()
}

// String formats the map like fmt formats a Go map, with keys in ascending
// order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	sep := ""
	for k, v := range m.All() {
		fmt.Fprintf(&b, "%s%v:%v", sep, k, v)
		sep = " "
	}
	b.WriteString("]")
	return b.String()
}
