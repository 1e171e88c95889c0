package llrb

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/ordered/order"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// shuffled holds 0…99 in random order.
var shuffled = []int{27, 12, 13, 15, 85, 47, 98, 51, 54, 91, 87, 25, 39, 58, 6, 21, 48,
	96, 80, 49, 78, 84, 8, 67, 74, 22, 53, 38, 14, 86, 35, 61, 46, 40, 60, 50, 89, 42,
	30, 16, 71, 65, 77, 95, 73, 2, 33, 70, 34, 97, 20, 63, 88, 64, 10, 26, 66, 0, 94,
	41, 24, 37, 75, 7, 9, 92, 72, 62, 28, 69, 43, 19, 56, 52, 45, 93, 1, 32, 18, 17,
	55, 59, 29, 36, 90, 23, 76, 99, 31, 57, 79, 82, 11, 3, 5, 83, 44, 81, 4, 68}

func newIntTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree, err := New[int, string](Config[int]{Compare: order.Natural[int]()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func mustCheck(t *testing.T, tree interface{ Check() error }) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree check failed: %v", err)
	}
}

func collectKeys[K, V any](tree *Tree[K, V]) []K {
	var keys []K
	for k := range tree.All() {
		keys = append(keys, k)
	}
	return keys
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, r)
		}
	}()
	fn()
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New[int, string](Config[int]{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing comparator, got %v", err)
	}
	_, err := New[int, string](Config[int]{
		Compare:              order.Natural[int](),
		HibernationThreshold: -1,
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative threshold, got %v", err)
	}
}

func TestNewNormalizesCapacity(t *testing.T) {
	tree, err := New[int, string](Config[int]{Compare: order.Natural[int](), Capacity: -5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Config().Capacity != 0 {
		t.Fatalf("expected capacity to be clamped to 0, got %d", tree.Config().Capacity)
	}
}

func TestCheckEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	mustCheck(t, tree)
	if tree.Len() != 0 || !tree.IsEmpty() {
		t.Fatalf("unexpected empty tree state len=%d", tree.Len())
	}
	if _, _, ok := tree.First(); ok {
		t.Fatalf("empty tree must not have a first entry")
	}
	if !tree.Start().Equal(tree.End()) {
		t.Fatalf("start of empty tree must be end")
	}
}

func TestShuffledInsertAndRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	tree := newIntTree(t)
	for _, k := range shuffled {
		inserted, at, err := tree.Insert(k, "")
		if err != nil || !inserted {
			t.Fatalf("insert %d: inserted=%v err=%v", k, inserted, err)
		}
		if at.Key() != k {
			t.Fatalf("insert %d returned index to %d", k, at.Key())
		}
	}
	mustCheck(t, tree)
	if tree.Len() != 100 {
		t.Fatalf("expected 100 keys, got %d", tree.Len())
	}
	keys := collectKeys(tree)
	for i, k := range keys {
		if k != i {
			t.Fatalf("iteration yields %d at position %d", k, i)
		}
	}
	removals := slices.Clone(shuffled)
	slices.Reverse(removals)
	removals[0], removals[50] = removals[50], removals[0]
	for i, k := range removals {
		rk, _, found, err := tree.Remove(k)
		if err != nil || !found || rk != k {
			t.Fatalf("remove %d: got %d found=%v err=%v", k, rk, found, err)
		}
		for j, other := range removals {
			ok, _ := tree.Contains(other)
			if ok != (j > i) {
				t.Fatalf("after removing %d: Contains(%d)=%v", k, other, ok)
			}
		}
		mustCheck(t, tree)
	}
	if tree.Len() != 0 {
		t.Fatalf("expected empty tree, got %d keys", tree.Len())
	}
	if _, _, ok := tree.First(); ok {
		t.Fatalf("empty tree has a first entry")
	}
	if _, _, ok := tree.Last(); ok {
		t.Fatalf("empty tree has a last entry")
	}
}

func TestInsertExistingOverwritesPayload(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range shuffled[:20] {
		tree.Insert(k, "old")
	}
	n := tree.Len()
	inserted, at, err := tree.Insert(shuffled[7], "new")
	if err != nil || inserted {
		t.Fatalf("re-insert: inserted=%v err=%v", inserted, err)
	}
	if tree.Len() != n {
		t.Fatalf("re-insert changed length from %d to %d", n, tree.Len())
	}
	if at.Value() != "new" {
		t.Fatalf("expected payload to be overwritten, got %q", at.Value())
	}
	if v, _, _ := tree.Get(shuffled[7]); v != "new" {
		t.Fatalf("Get returns %q", v)
	}
	mustCheck(t, tree)
}

func TestOverwriteKeepsShape(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range shuffled {
		tree.Insert(k, "old")
	}
	var before strings.Builder
	Tree2Dot(tree, &before)
	for _, k := range shuffled {
		if inserted, at, err := tree.Update(k, "new"); inserted || err != nil || at.Key() != k {
			t.Fatalf("Update(%d): inserted=%v err=%v", k, inserted, err)
		}
		mustCheck(t, tree)
	}
	var after strings.Builder
	Tree2Dot(tree, &after)
	if before.String() != after.String() {
		t.Fatalf("overwriting payloads changed the tree shape")
	}
	for _, v := range tree.All() {
		if v != "new" {
			t.Fatalf("payload not overwritten: %q", v)
		}
	}
}

func TestCaseInsensitiveKeys(t *testing.T) {
	tree, err := New[string, int](Config[string]{Compare: order.CaseInsensitive()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tree.Insert("ABC", 1)
	inserted, _, _ := tree.Insert("abc", 2)
	if inserted || tree.Len() != 1 {
		t.Fatalf("expected abc to overwrite ABC, len=%d", tree.Len())
	}
	k, v, _ := tree.First()
	if k != "ABC" || v != 2 {
		t.Fatalf("expected stored entry (ABC, 2), got (%s, %d)", k, v)
	}
	tree.Update("abc", 3)
	if k, v, _ = tree.First(); k != "abc" || v != 3 {
		t.Fatalf("expected Update to replace the key, got (%s, %d)", k, v)
	}
}

var errBoom = errors.New("boom")

func TestComparatorFailureLeavesTreeUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()

	failing := func(a, b int) (int, error) {
		if a == 13 || b == 13 {
			return 0, errBoom
		}
		return cmp.Compare(a, b), nil
	}
	tree, err := New[int, string](Config[int]{Compare: failing})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range shuffled {
		if k != 13 {
			tree.Insert(k, "x")
		}
	}
	before := collectKeys(tree)
	if _, _, err := tree.Insert(13, "x"); !errors.Is(err, ErrCompare) || !errors.Is(err, errBoom) {
		t.Fatalf("expected comparator error, got %v", err)
	}
	if _, _, _, err := tree.Remove(13); !errors.Is(err, ErrCompare) {
		t.Fatalf("expected comparator error on remove, got %v", err)
	}
	if _, err := tree.Rank(13); !errors.Is(err, ErrCompare) {
		t.Fatalf("expected comparator error on rank, got %v", err)
	}
	if !slices.Equal(before, collectKeys(tree)) || tree.Len() != 99 {
		t.Fatalf("failed comparator changed the tree")
	}
	mustCheck(t, tree)
}

func TestRemoveAbsentKey(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range shuffled[:30] {
		tree.Insert(k, "")
	}
	var dot strings.Builder
	Tree2Dot(tree, &dot)
	_, _, found, err := tree.Remove(1000)
	if found || err != nil {
		t.Fatalf("removing absent key: found=%v err=%v", found, err)
	}
	var after strings.Builder
	Tree2Dot(tree, &after)
	if dot.String() != after.String() {
		t.Fatalf("removing an absent key changed the tree structure")
	}
}

func TestSelectRankDuality(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range shuffled {
		tree.Insert(k*2, "")
	}
	for i := 0; i < tree.Len(); i++ {
		k := tree.Select(i)
		r, err := tree.Rank(k)
		if err != nil || r != i {
			t.Fatalf("Rank(Select(%d)) = %d, %v", i, r, err)
		}
		if ak, _ := tree.At(i); ak != k {
			t.Fatalf("At(%d) = %d, Select = %d", i, ak, k)
		}
	}
	if r, _ := tree.Rank(7); r != 4 {
		t.Fatalf("expected 4 keys less than absent key 7, got %d", r)
	}
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.Select(tree.Len()) })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.At(-1) })
}

func TestRemoveAt(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range shuffled {
		tree.Insert(k, "")
	}
	for tree.Len() > 0 {
		pos := tree.Len() / 3
		want := tree.Select(pos)
		if k, _ := tree.RemoveAt(pos); k != want {
			t.Fatalf("RemoveAt(%d) removed %d, expected %d", pos, k, want)
		}
		mustCheck(t, tree)
	}
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.RemoveAt(0) })
}

func TestRemoveAllInvalidatesIndices(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range shuffled[:10] {
		tree.Insert(k, "")
	}
	at := tree.Start()
	tree.RemoveAll()
	mustCheck(t, tree)
	if at.IsValid() {
		t.Fatalf("index survived RemoveAll")
	}
	expectPanic(t, ErrStaleIndex, func() { at.Key() })
	tree.Insert(1, "one")
	if at.IsValid() {
		t.Fatalf("index became valid again after slot re-use")
	}
	mustCheck(t, tree)
}

func TestClone(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range shuffled {
		tree.Insert(k, "")
	}
	c := tree.Clone()
	c.Remove(50)
	if ok, _ := tree.Contains(50); !ok {
		t.Fatalf("removal from clone affected original")
	}
	mustCheck(t, tree)
	mustCheck(t, c)
}
