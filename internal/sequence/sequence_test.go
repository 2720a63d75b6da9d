package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/baralho/internal/apperrors"
)

const sampleText = "Python: simples e correta"

func TestRange(t *testing.T) {
	t.Parallel()

	l := Range(10)

	assert.Equal(t, 10, l.Len())
	assert.Equal(t, []int{0, 1, 2}, l.Slice(0, 3))
	assert.Equal(t, []int{7, 8, 9}, l.Slice(-3, End))

	last, err := l.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, 9, last)

	third, err := l.Get(-3)
	require.NoError(t, err)
	assert.Equal(t, 7, third)

	assert.Equal(t, 0, Range(-4).Len())
}

func TestRunes(t *testing.T) {
	t.Parallel()

	s := Runes(sampleText)

	first, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 'P', first)

	last, err := s.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, 'a', last)

	assert.Equal(t, "Pyt", string(s.Slice(0, 3)))
	assert.Equal(t, "eta", string(s.Slice(-3, End)))
}

func TestList_NegativeIndexMatchesAbsolute(t *testing.T) {
	t.Parallel()

	s := Runes(sampleText)
	n := s.Len()

	for _, i := range []int{1, 3, n} {
		neg, err := s.Get(-i)
		require.NoError(t, err)
		abs, err := s.Get(n - i)
		require.NoError(t, err)
		assert.Equal(t, abs, neg, "Get(-%d) should equal Get(%d)", i, n-i)
	}
}

func TestList_Get_OutOfRange(t *testing.T) {
	t.Parallel()

	l := Of("a", "b", "c")

	_, err := l.Get(3)
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)

	_, err = l.Get(-4)
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
}

func TestList_Set(t *testing.T) {
	t.Parallel()

	l := Of(1, 2, 3)

	require.NoError(t, l.Set(-1, 30))
	got, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 30, got)
	assert.Equal(t, 3, l.Len(), "Set should not change the length")

	err = l.Set(3, 40)
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
	assert.Equal(t, []int{1, 2, 30}, l.Values())
}

func TestList_SliceIsACopy(t *testing.T) {
	t.Parallel()

	l := Of(1, 2, 3)
	head := l.Slice(0, 2)
	head[0] = 100

	first, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, first)
}

func TestOf_CopiesInput(t *testing.T) {
	t.Parallel()

	src := []string{"x", "y"}
	l := Of(src...)
	src[0] = "z"

	assert.Equal(t, []string{"x", "y"}, l.Values())
}

func TestList_ZeroValue(t *testing.T) {
	t.Parallel()

	var l List[int]

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Slice(0, End))
	_, err := l.Get(0)
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
}

func TestList_All(t *testing.T) {
	t.Parallel()

	var got []string
	for i, v := range Of("a", "b", "c").All() {
		got = append(got, string(rune('0'+i))+v)
	}
	assert.Equal(t, []string{"0a", "1b", "2c"}, got)

	count := 0
	for range Range(10).All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
