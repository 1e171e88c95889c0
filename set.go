package ordered

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordered/llrb"
	"github.com/npillmayer/ordered/order"
)

// Set is an ordered set of keys of type K.
//
// The zero value is an empty set which orders its keys with order.Dynamic.
type Set[K any] struct {
	tree *llrb.Tree[K, struct{}]
}

// NewSet creates a set of elems, ordered by the natural order of K.
func NewSet[K cmp.Ordered](elems ...K) *Set[K] {
	s, err := NewSetFunc(order.Natural[K](), elems...)
	if err != nil {
		panic(err) // natural order never fails
	}
	return s
}

// NewSetFunc creates a set of elems, ordered by compare.
func NewSetFunc[K any](compare order.Comparator[K], elems ...K) (*Set[K], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparator is nil", ErrIllegalArguments)
	}
	tree, err := llrb.New[K, struct{}](llrb.Config[K]{Compare: compare, Capacity: len(elems)})
	if err != nil {
		return nil, err
	}
	s := &Set[K]{tree: tree}
	for _, e := range elems {
		if _, _, err := tree.Insert(e, struct{}{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Set[K]) engine() *llrb.Tree[K, struct{}] {
	if s.tree == nil {
		tree, err := llrb.New[K, struct{}](llrb.Config[K]{Compare: order.Dynamic[K]()})
		if err != nil {
			panic(err)
		}
		s.tree = tree
	}
	return s.tree
}

// empty creates an empty set with the comparator of s.
func (s *Set[K]) empty() *Set[K] {
	tree, err := llrb.New[K, struct{}](llrb.Config[K]{Compare: s.engine().Config().Compare})
	if err != nil {
		panic(err)
	}
	return &Set[K]{tree: tree}
}

// Len returns the number of elements.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[K]) IsEmpty() bool {
	return s.Len() == 0
}

// Insert adds key to the set. If an equivalent element is present, the set is
// unchanged and inserted is false.
func (s *Set[K]) Insert(key K) (inserted bool, err error) {
	inserted, _, err = s.engine().Insert(key, struct{}{})
	return inserted, err
}

// Update adds key to the set, replacing an equivalent element. The replaced
// element is returned.
func (s *Set[K]) Update(key K) (old K, replaced bool, err error) {
	t := s.engine()
	at, found, err := t.Find(key)
	if err != nil {
		return old, false, err
	}
	if found {
		old = at.Key()
	}
	_, _, err = t.Update(key, struct{}{})
	return old, found, err
}

// Remove deletes the element equivalent to key and returns it.
func (s *Set[K]) Remove(key K) (K, bool, error) {
	k, _, found, err := s.engine().Remove(key)
	return k, found, err
}

// RemoveAll deletes every element.
func (s *Set[K]) RemoveAll() {
	s.engine().RemoveAll()
}

// Contains reports whether key is an element. Keys which cannot be compared
// are reported as absent.
func (s *Set[K]) Contains(key K) bool {
	found, err := s.engine().Contains(key)
	if err != nil {
		tracer().Debugf("ordered: Contains: %v", err)
	}
	return found
}

// Rank returns the number of elements less than key.
func (s *Set[K]) Rank(key K) (int, error) {
	return s.engine().Rank(key)
}

// Select returns the element at position pos. pos must be in [0, Len()).
func (s *Set[K]) Select(pos int) K {
	return s.engine().Select(pos)
}

// First returns the smallest element.
func (s *Set[K]) First() (K, bool) {
	k, _, ok := s.engine().First()
	return k, ok
}

// Last returns the largest element.
func (s *Set[K]) Last() (K, bool) {
	k, _, ok := s.engine().Last()
	return k, ok
}

// All iterates over the elements in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return keysOf(s.engine().All())
}

// Backward iterates over the elements in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return keysOf(s.engine().Backward())
}

// Start returns an index to the smallest element.
func (s *Set[K]) Start() llrb.Index[K, struct{}] {
	return s.engine().Start()
}

// End returns the index past the largest element.
func (s *Set[K]) End() llrb.Index[K, struct{}] {
	return s.engine().End()
}

// Find returns an index to the element equivalent to key, or End.
func (s *Set[K]) Find(key K) (llrb.Index[K, struct{}], bool, error) {
	return s.engine().Find(key)
}

// Range iterates over the elements in the half-open index range [from, to).
func (s *Set[K]) Range(from, to llrb.Index[K, struct{}]) iter.Seq[K] {
	return keysOf(s.engine().Range(from, to))
}

// InsertAll inserts the elements of seq in sequence. It stops at the first
// comparator failure.
func (s *Set[K]) InsertAll(seq iter.Seq[K]) error {
	t := s.engine()
	for k := range seq {
		if _, _, err := t.Insert(k, struct{}{}); err != nil {
			return err
		}
	}
	return nil
}

// Elements returns the elements in ascending order.
func (s *Set[K]) Elements() []K {
	elems := make([]K, 0, s.Len())
	for k := range s.All() {
		elems = append(elems, k)
	}
	return elems
}

// Clone returns a copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.engine().Clone()}
}

// Equal reports whether s and other hold the same number of elements and
// their elements pair up in ascending order under the comparator of s.
func (s *Set[K]) Equal(other *Set[K]) (bool, error) {
	if s.Len() != other.Len() {
		return false, nil
	}
	if s.Len() == 0 {
		return true, nil
	}
	t := s.engine()
	a, b := t.Start(), other.engine().Start()
	for ; !a.IsEnd(); a, b = a.Next(), b.Next() {
		c, err := t.Compare(a.Key(), b.Key())
		if err != nil || c != 0 {
			return false, err
		}
	}
	return true, nil
}

// Check validates the internal tree structure.
func (s *Set[K]) Check() error {
	return s.engine().Check()
}

// Hibernate compresses the internal structure of an idle set. The set has to
// be booted before it is used again.
func (s *Set[K]) Hibernate() error {
	return s.engine().Hibernate()
}

// Boot wakes a hibernated set.
func (s *Set[K]) Boot() error {
	return s.engine().Boot()
}

// String formats the set as a bracketed list in ascending order.
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteString("[")
	sep := ""
	for k := range s.All() {
		fmt.Fprintf(&b, "%s%v", sep, k)
		sep = " "
	}
	b.WriteString("]")
	return b.String()
}

func keysOf[K any](seq iter.Seq2[K, struct{}]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}
