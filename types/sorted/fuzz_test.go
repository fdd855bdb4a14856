package sorted

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzAdd(f *testing.F) {
	f.Add([]byte{}, false, false)
	f.Add([]byte{100, 0, 4, 25}, false, true)
	f.Add([]byte{100, 4, 25, 17, 150, 11}, true, false)

	// Zero byte stands for null
	f.Fuzz(func(t *testing.T, data []byte, reversed, leading bool) {
		config := Config{Reversed: reversed}
		if leading {
			config.NullPlacement = NullsLeading
		}

		l := New(NewOrderedPolicy[byte](config))
		present := []byte{}
		nulls := 0
		for _, b := range data {
			if b == 0 {
				l.AddNull()
				nulls++
				continue
			}
			l.Add(b)
			present = append(present, b)
		}

		sort.Slice(present, func(i, j int) bool {
			if reversed {
				return present[i] > present[j]
			}
			return present[i] < present[j]
		})
		want := Values(present...)
		for i := 0; i < nulls; i++ {
			if leading {
				want = append([]Value[byte]{Null[byte]()}, want...)
			} else {
				want = append(want, Null[byte]())
			}
		}

		require.Equal(t, len(data), l.Len())
		require.Equal(t, want, l.ToSlice())

		// Removing everything back in input order leaves the list empty and sorted on the way
		for _, b := range data {
			v := Some(b)
			if b == 0 {
				v = Null[byte]()
			}
			_, ok := l.Remove(v)
			require.True(t, ok)
			requireSorted(t, l)
		}
		require.True(t, l.IsEmpty())
	})
}
