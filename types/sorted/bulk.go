package sorted

import (
	"github.com/tidwall/hashmap"
)

// AddAll inserts every value one by one keeping the list sorted.
// It returns false when there is nothing to add.
func (l *List[T]) AddAll(values ...Value[T]) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		l.AddValue(v)
	}
	return true
}

// AddList inserts copies of all values of the other list keeping list l sorted.
// The other list may use a different policy. It returns false when there is nothing to add.
func (l *List[T]) AddList(other *List[T]) bool {
	if other == nil || other.IsEmpty() {
		return false
	}
	if other == l {
		return l.AddAll(other.ToSlice()...)
	}
	for c := other.chain.Cursor(); c.HasNext(); c.Advance() {
		l.AddValue(c.PeekValue())
	}
	return true
}

// RemoveAll removes every value equal to any of given values and returns amount of removed values.
func (l *List[T]) RemoveAll(values ...Value[T]) int {
	if len(values) == 0 || l.IsEmpty() {
		return 0
	}
	index := newValueIndex(l.policy, values)
	return l.removeIf(func(v Value[T]) bool {
		return index.contains(v)
	})
}

// RetainAll removes every value not equal to any of given values and returns amount of removed values.
func (l *List[T]) RetainAll(values ...Value[T]) int {
	index := newValueIndex(l.policy, values)
	return l.removeIf(func(v Value[T]) bool {
		return !index.contains(v)
	})
}

func (l *List[T]) removeIf(match func(v Value[T]) bool) int {
	removed, position := 0, 0
	for c := l.chain.Cursor(); c.HasNext(); {
		v := c.PeekValue()
		// Cursor already points past h so unlinking h is safe
		h := c.Advance()
		if match(v) {
			l.unlink(h, position)
			removed++
		} else {
			position++
		}
	}
	return removed
}

// valueIndex is a hash set of values keyed by policy hash.
// Values in a bucket are told apart by policy equality.
type valueIndex[T any] struct {
	policy  Policy[T]
	buckets *hashmap.Map[uint64, []Value[T]]
}

func newValueIndex[T any](policy Policy[T], values []Value[T]) valueIndex[T] {
	index := valueIndex[T]{
		policy:  policy,
		buckets: hashmap.New[uint64, []Value[T]](len(values)),
	}
	for _, v := range values {
		h := policy.Hash(v)
		bucket, _ := index.buckets.Get(h)
		index.buckets.Set(h, append(bucket, v))
	}
	return index
}

func (x valueIndex[T]) contains(v Value[T]) bool {
	bucket, _ := x.buckets.Get(x.policy.Hash(v))
	for _, candidate := range bucket {
		if x.policy.Equal(v, candidate) {
			return true
		}
	}
	return false
}
