package llrb

import (
	"slices"
	"testing"

	"github.com/npillmayer/ordered/order"
)

func filledTree(t *testing.T, keys []int) *Tree[int, string] {
	t.Helper()
	tree := newIntTree(t)
	for _, k := range keys {
		if _, _, err := tree.Insert(k, ""); err != nil {
			t.Fatalf("insert %d: %v", k, err)
		}
	}
	return tree
}

func TestIndexWalkForwardAndBackward(t *testing.T) {
	tree := filledTree(t, shuffled)
	var forward, backward []int
	for at := tree.Start(); !at.IsEnd(); at = at.Next() {
		forward = append(forward, at.Key())
	}
	at := tree.End()
	for !at.Equal(tree.Start()) {
		at = at.Prev()
		backward = append(backward, at.Key())
	}
	slices.Reverse(backward)
	if !slices.Equal(forward, backward) || len(forward) != 100 {
		t.Fatalf("forward and backward walks differ")
	}
	var viaIterator []int
	for k := range tree.Backward() {
		viaIterator = append(viaIterator, k)
	}
	slices.Reverse(viaIterator)
	if !slices.Equal(forward, viaIterator) {
		t.Fatalf("Backward does not mirror All")
	}
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.End().Next() })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.Start().Prev() })
}

func TestIndexLessAndPosition(t *testing.T) {
	tree := filledTree(t, shuffled)
	for i := 0; i <= tree.Len(); i++ {
		a := tree.IndexAt(i)
		if a.Position() != i {
			t.Fatalf("IndexAt(%d).Position() = %d", i, a.Position())
		}
		for _, j := range []int{0, i / 2, i, i + 1, 57, tree.Len()} {
			if j > tree.Len() {
				continue
			}
			b := tree.IndexAt(j)
			if a.Less(b) != (i < j) {
				t.Fatalf("IndexAt(%d).Less(IndexAt(%d)) = %v", i, j, a.Less(b))
			}
		}
	}
	other := filledTree(t, shuffled[:3])
	expectPanic(t, ErrForeignIndex, func() { tree.Start().Less(other.Start()) })
}

func TestIndexFindAndSetValue(t *testing.T) {
	tree := filledTree(t, shuffled)
	at, found, err := tree.Find(42)
	if err != nil || !found || at.Key() != 42 {
		t.Fatalf("Find(42) = %v, %v", found, err)
	}
	at.SetValue("answer")
	if v, _, _ := tree.Get(42); v != "answer" {
		t.Fatalf("SetValue did not store payload, got %q", v)
	}
	at, found, _ = tree.Find(1000)
	if found || !at.IsEnd() {
		t.Fatalf("Find of absent key must return end index")
	}
}

func TestIndexStaleAfterRemoval(t *testing.T) {
	tree := filledTree(t, shuffled)
	last := tree.IndexAt(tree.Len() - 1)
	tree.Remove(99)
	if last.IsValid() {
		t.Fatalf("index to removed maximum is still valid")
	}
	expectPanic(t, ErrStaleIndex, func() { last.Next() })
	expectPanic(t, ErrStaleIndex, func() { tree.RemoveIndex(last) })

	// an index to a node with two children may observe its successor's key
	root := tree.index(tree.root)
	k := root.Key()
	tree.Remove(k)
	if root.IsValid() && root.Key() != k+1 {
		t.Fatalf("index to removed key %d observes %d, expected its successor", k, root.Key())
	}
	mustCheck(t, tree)
}

func TestRemoveIndex(t *testing.T) {
	tree := filledTree(t, shuffled)
	at, _, _ := tree.Find(30)
	if k, _ := tree.RemoveIndex(at); k != 30 {
		t.Fatalf("RemoveIndex removed %d", k)
	}
	if ok, _ := tree.Contains(30); ok {
		t.Fatalf("30 still in tree")
	}
	mustCheck(t, tree)
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.RemoveIndex(tree.End()) })
}

func TestRange(t *testing.T) {
	tree := filledTree(t, shuffled)
	var got []int
	for k := range tree.Range(tree.IndexAt(10), tree.IndexAt(15)) {
		got = append(got, k)
	}
	if !slices.Equal(got, []int{10, 11, 12, 13, 14}) {
		t.Fatalf("Range yields %v", got)
	}
	got = got[:0]
	for k := range tree.Range(tree.IndexAt(97), tree.End()) {
		got = append(got, k)
	}
	if !slices.Equal(got, []int{97, 98, 99}) {
		t.Fatalf("Range to end yields %v", got)
	}
	expectPanic(t, ErrIndexOutOfBounds, func() {
		for range tree.Range(tree.IndexAt(20), tree.IndexAt(10)) {
		}
	})
}

func TestForEachStopsEarly(t *testing.T) {
	tree := filledTree(t, shuffled)
	n := 0
	tree.ForEach(func(k int, _ string) bool {
		n++
		return k < 9
	})
	if n != 10 {
		t.Fatalf("expected ForEach to stop after 10 entries, visited %d", n)
	}
}

func TestReverseOrder(t *testing.T) {
	tree, err := New[int, string](Config[int]{Compare: order.Reverse(order.Natural[int]())})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range shuffled[:10] {
		tree.Insert(k, "")
	}
	keys := collectKeys(tree)
	if !slices.IsSortedFunc(keys, func(a, b int) int { return b - a }) {
		t.Fatalf("keys not in descending order: %v", keys)
	}
	mustCheck(t, tree)
}
