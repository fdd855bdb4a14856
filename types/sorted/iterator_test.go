package sorted

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		it := NewOrdered[int](Config{}).Iterator()
		require.False(t, it.HasNext())
		_, err := it.Next()
		require.ErrorIs(t, err, ErrIteratorExhausted)
	})

	t.Run("step iteration", func(t *testing.T) {
		l := New(NewOrderedPolicy[int](Config{NullPlacement: NullsLeading}), Some(3), nullInt, Some(1))
		it := l.Iterator()
		for _, want := range []Value[int]{nullInt, Some(1), Some(3)} {
			require.True(t, it.HasNext())
			v, err := it.Next()
			require.NoError(t, err)
			require.Equal(t, want, v)
		}
		require.False(t, it.HasNext())
		_, err := it.Next()
		require.ErrorIs(t, err, ErrIteratorExhausted)
		// Still exhausted on repeated calls
		_, err = it.Next()
		require.ErrorIs(t, err, ErrIteratorExhausted)
	})

	t.Run("restart", func(t *testing.T) {
		l := NewOrdered[string](Config{}, testStrings...)
		for i := 0; i < 2; i++ {
			result := []string{}
			for it := l.Iterator(); it.HasNext(); {
				v, err := it.Next()
				require.NoError(t, err)
				result = append(result, v.MustGet())
			}
			require.Equal(t, testStringsSorted, result)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		l := New(NewOrderedPolicy[int](Config{Reversed: true}), testIntsWithNulls...)
		copied := New(NewOrderedPolicy[int](Config{Reversed: true}))
		require.True(t, copied.AddAll(l.ToSlice()...))
		require.True(t, copied.Equal(l))
		require.Equal(t, l.Hash(), copied.Hash())
	})
}

func TestForEach(t *testing.T) {
	l := NewOrdered[int](Config{}, testInts...)

	all := []int{}
	l.ForEach(func(v Value[int]) bool {
		all = append(all, v.MustGet())
		return true
	})
	require.Equal(t, []int{4, 11, 17, 25, 100, 150}, all)

	prefix := []int{}
	l.ForEach(func(v Value[int]) bool {
		prefix = append(prefix, v.MustGet())
		return len(prefix) < 2
	})
	require.Equal(t, []int{4, 11}, prefix)
}
