package order

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

func mustCompare[K any](t *testing.T, c Comparator[K], a, b K) int {
	t.Helper()
	r, err := c(a, b)
	require.NoError(t, err)
	return sign(r)
}

func TestNaturalAndAdapters(t *testing.T) {
	t.Parallel()

	nat := Natural[int]()
	assert.Equal(t, -1, mustCompare(t, nat, 1, 2))
	assert.Equal(t, 0, mustCompare(t, nat, 2, 2))
	assert.Equal(t, 1, mustCompare(t, Reverse(nat), 1, 2))

	byLen := Func(func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, 0, mustCompare(t, byLen, "ab", "xy"))
	assert.Equal(t, -1, mustCompare(t, byLen, "a", "xy"))

	less := Less(func(a, b float64) bool { return a < b })
	assert.Equal(t, -1, mustCompare(t, less, 1.5, 2.5))
	assert.Equal(t, 1, mustCompare(t, less, 2.5, 1.5))
	assert.Equal(t, 0, mustCompare(t, less, 2.5, 2.5))

	assert.Nil(t, Func[int](nil))
	assert.Nil(t, Less[int](nil))
	assert.Nil(t, Reverse[int](nil))
}

func TestCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := CaseInsensitive()
	assert.Equal(t, 0, mustCompare(t, c, "ABC", "abc"))
	assert.Equal(t, -1, mustCompare(t, c, "apple", "Banana"))
}

func TestCollation(t *testing.T) {
	t.Parallel()

	words := []string{"birne", "Zitrone", "äpfel", "apfel"}
	c := Collation(language.German)
	slices.SortFunc(words, func(a, b string) int { return mustCompare(t, c, a, b) })
	assert.Equal(t, []string{"apfel", "äpfel", "birne", "Zitrone"}, words)

	ic := Collation(language.English, collate.IgnoreCase)
	assert.Equal(t, 0, mustCompare(t, ic, "Hello", "hello"))
}

type celsius float32

func TestDynamicNaturalOrders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, mustCompare(t, Dynamic[int](), 3, 4))
	assert.Equal(t, 1, mustCompare(t, Dynamic[string](), "b", "a"))
	assert.Equal(t, -1, mustCompare(t, Dynamic[[]byte](), []byte("a"), []byte("ab")))
	assert.Equal(t, -1, mustCompare(t, Dynamic[bool](), false, true))
	assert.Equal(t, 1, mustCompare(t, Dynamic[celsius](), 21.5, -4))
	assert.Equal(t, -1, mustCompare(t, Dynamic[uint8](), 1, 200))

	now := time.Now()
	assert.Equal(t, -1, mustCompare(t, Dynamic[time.Time](), now, now.Add(time.Second)))

	anyc := Dynamic[any]()
	assert.Equal(t, 0, mustCompare(t, anyc, any("x"), any("x")))
	assert.Equal(t, -1, mustCompare(t, anyc, any(int64(-1)), any(int64(1))))
}

func TestDynamicFailures(t *testing.T) {
	t.Parallel()

	anyc := Dynamic[any]()
	for _, pair := range [][2]any{
		{1, "one"},
		{int32(1), int64(1)},
		{nil, 1},
		{struct{}{}, struct{}{}},
		{[]int{1}, []int{1}},
	} {
		_, err := anyc(pair[0], pair[1])
		assert.ErrorIs(t, err, ErrNotOrdered, "comparing %v with %v", pair[0], pair[1])
	}
	type point struct{ x, y int }
	_, err := Dynamic[point]()(point{1, 2}, point{2, 1})
	require.ErrorIs(t, err, ErrNotOrdered)
	assert.True(t, strings.Contains(err.Error(), "point"))
}
