package llrb

import (
	"bytes"
	"strings"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ordered/order"
)

func TestPackColumnRoundTrip(t *testing.T) {
	t.Parallel()

	for _, column := range [][]uint32{
		nil,
		{7},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0xdeadbeef, 3, 0xcafe, 12, 99, 1 << 31},
	} {
		packed, err := packColumn(column)
		require.NoError(t, err)
		restored, err := unpackColumn(packed, len(column))
		require.NoError(t, err)
		tassert.Len(t, restored, len(column))
		for i := range column {
			tassert.Equal(t, column[i], restored[i])
		}
	}
}

func TestUnpackColumnRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := unpackColumn(nil, 3)
	require.ErrorIs(t, err, ErrCorrupted)
	_, err = unpackColumn([]byte{42, 1, 2}, 3)
	require.ErrorIs(t, err, ErrCorrupted)
	_, err = unpackColumn([]byte{packedRaw, 1, 2}, 3)
	require.ErrorIs(t, err, ErrCorrupted)
}

func TestHibernateBootRoundTrip(t *testing.T) {
	t.Parallel()

	tree, err := New[int, string](Config[int]{Compare: order.Natural[int]()})
	require.NoError(t, err)
	for _, k := range shuffled {
		tree.Insert(k, strings.Repeat("x", k%5))
	}
	for _, k := range shuffled[:20] {
		tree.Remove(k)
	}
	var before bytes.Buffer
	Tree2Dot(tree, &before)

	require.NoError(t, tree.Hibernate())
	tassert.True(t, tree.IsHibernated())
	tassert.Equal(t, 80, tree.Len())
	tassert.ErrorIs(t, tree.Hibernate(), ErrHibernated)
	tassert.ErrorIs(t, tree.Check(), ErrHibernated)
	tassert.PanicsWithError(t, "llrb: tree is hibernated: boot the tree before using it", func() {
		tree.Contains(5)
	})

	require.NoError(t, tree.Boot())
	tassert.False(t, tree.IsHibernated())
	require.NoError(t, tree.Check())
	var after bytes.Buffer
	Tree2Dot(tree, &after)
	tassert.Equal(t, before.String(), after.String())

	_, _, err = tree.Insert(1000, "new")
	require.NoError(t, err)
	require.NoError(t, tree.Check())
	require.NoError(t, tree.Boot())
}

func TestHibernationThreshold(t *testing.T) {
	t.Parallel()

	tree, err := New[int, string](Config[int]{
		Compare:              order.Natural[int](),
		HibernationThreshold: 1000,
	})
	require.NoError(t, err)
	for _, k := range shuffled {
		tree.Insert(k, "")
	}
	require.NoError(t, tree.Hibernate())
	tassert.False(t, tree.IsHibernated())
	require.NoError(t, tree.Check())
}

func TestIndexInvalidWhileHibernated(t *testing.T) {
	t.Parallel()

	tree, err := New[int, string](Config[int]{Compare: order.Natural[int]()})
	require.NoError(t, err)
	tree.Insert(1, "one")
	at := tree.Start()
	require.NoError(t, tree.Hibernate())
	tassert.False(t, at.IsValid())
	require.NoError(t, tree.Boot())
	tassert.True(t, at.IsValid())
	tassert.Equal(t, "one", at.Value())
}

func TestEmptyHibernatedTreeRejectsAccess(t *testing.T) {
	t.Parallel()

	tree, err := New[int, string](Config[int]{Compare: order.Natural[int]()})
	require.NoError(t, err)
	require.NoError(t, tree.Hibernate())
	require.True(t, tree.IsHibernated())
	tassert.Equal(t, 0, tree.Len())
	for name, access := range map[string]func(){
		"First":    func() { tree.First() },
		"Last":     func() { tree.Last() },
		"Contains": func() { tree.Contains(1) },
		"Start":    func() { tree.Start() },
	} {
		tassert.PanicsWithError(t, "llrb: tree is hibernated: boot the tree before using it", access, name)
	}
	require.NoError(t, tree.Boot())
	_, _, ok := tree.First()
	tassert.False(t, ok)
	require.NoError(t, tree.Check())
}
