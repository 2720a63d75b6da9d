package counter

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/baralho/internal/apperrors"
	"github.com/palemoky/baralho/internal/testutil"
)

var word = []rune(testutil.Word)

func TestCounter_CountsWord(t *testing.T) {
	t.Parallel()

	c := New[rune]()
	IncludeAll(c, word...)

	for r, expected := range testutil.WordCounts {
		n, err := c.Count(r)
		require.NoError(t, err)
		assert.Equal(t, expected, n, "count of %q", r)
	}
	assert.Equal(t, len(testutil.WordCounts), c.Len())
	assert.Equal(t, []rune{'a', 'b', 'c', 'i', 'x'}, c.Keys(cmp.Compare[rune]))
}

func TestCounter_StrictMiss(t *testing.T) {
	t.Parallel()

	c := New[rune]()
	IncludeAll(c, word...)

	n, err := c.Count('z')
	assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)
	assert.Zero(t, n)
}

func TestTolerantCounter(t *testing.T) {
	t.Parallel()

	c := NewTolerant[rune]()

	n, err := c.Count('z')
	require.NoError(t, err, "an empty tolerant counter should not fail")
	assert.Zero(t, n)

	IncludeAll(c, word...)
	n, err = c.Count('a')
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = c.Count('z')
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 5, c.Len(), "querying should not record the key")
}

func TestTotalizingCounter(t *testing.T) {
	t.Parallel()

	c := NewTotalizing[rune]()
	assert.Zero(t, c.Total())

	IncludeAll(c, word...)

	assert.Equal(t, 7, c.Total())
	assert.Equal(t, 5, c.Len())

	n, err := c.Count('a')
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = c.Count('z')
	assert.ErrorIs(t, err, apperrors.ErrKeyNotFound, "totalizing keeps the strict query")
}

func TestTolerantTotalizingCounter(t *testing.T) {
	t.Parallel()

	c := NewTolerantTotalizing[rune]()
	IncludeAll(c, word...)

	assert.Equal(t, 7, c.Total())

	n, err := c.Count('z')
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = c.Count('a')
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, testutil.WordCounts, c.Snapshot())
}

func TestTotal_IndependentOfDistinctKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items string
		total int
		keys  int
	}{
		{"all equal", "aaaaaaa", 7, 1},
		{"all distinct", "abcdefg", 7, 7},
		{"word", testutil.Word, 7, 5},
		{"empty", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewTolerantTotalizing[rune]()
			for _, r := range tt.items {
				c.Include(r)
			}
			assert.Equal(t, tt.total, c.Total())
			assert.Equal(t, tt.keys, c.Len())
		})
	}
}

func TestCounters_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := New[rune](), New[rune]()
	IncludeAll(a, word...)
	IncludeAll(b, word...)

	assert.Equal(t, a.Snapshot(), b.Snapshot())

	b.Include('z')
	assert.NotEqual(t, a.Snapshot(), b.Snapshot(), "counters should not share storage")
}

func TestSnapshot_IsACopy(t *testing.T) {
	t.Parallel()

	c := New[string]()
	c.Include("x")

	snap := c.Snapshot()
	snap["x"] = 99

	n, err := c.Count("x")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant    Variant
		name       string
		tolerant   bool
		totalizing bool
	}{
		{Variant{}, "strict", false, false},
		{Variant{Tolerant: true}, "tolerant", true, false},
		{Variant{Totalizing: true}, "totalizing", false, true},
		{Variant{Tolerant: true, Totalizing: true}, "tolerant totalizing", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, tt.variant.String())

			c := NewVariant[rune](tt.variant)
			IncludeAll(c, word...)

			_, err := c.Count('z')
			if tt.tolerant {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)
			}

			tot, ok := c.(Totalizer)
			assert.Equal(t, tt.totalizing, ok)
			if ok {
				assert.Equal(t, 7, tot.Total())
			}
		})
	}
}
