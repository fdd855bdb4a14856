package sorted

import (
	"github.com/cryptonstudio/crypton-sorted-list/types/list"
)

// Characteristic is a set of properties declared by a Spliterator.
type Characteristic uint8

const (
	// CharacteristicOrdered means values are encountered in a defined order.
	CharacteristicOrdered Characteristic = 1 << iota
	// CharacteristicSized means EstimateSize is exact before traversal or splitting.
	CharacteristicSized
	// CharacteristicSubsized means spliterators produced by TrySplit are sized as well.
	CharacteristicSubsized
	// CharacteristicSorted means values are encountered in the order of Comparator.
	CharacteristicSorted
)

// Has reports whether all given flags are set.
func (c Characteristic) Has(flags Characteristic) bool {
	return c&flags == flags
}

// Spliterator is a traversal which can be divided into independent parts
// for parallel consumption.
type Spliterator[T any] interface {
	// TryAdvance calls f for the next value and returns true, or returns false when exhausted.
	TryAdvance(f func(v Value[T])) bool
	// ForEachRemaining calls f for every remaining value.
	ForEachRemaining(f func(v Value[T]))
	// TrySplit moves a prefix of remaining values into a new spliterator,
	// or returns nil when the traversal can not be split.
	TrySplit() Spliterator[T]
	// EstimateSize returns amount of remaining values.
	EstimateSize() int
	// Characteristics returns properties of the traversal.
	Characteristics() Characteristic
	// Comparator returns the order values are sorted by.
	Comparator() func(a, b Value[T]) int
}

var (
	_ Spliterator[int] = &listSpliterator[int]{}
	_ Spliterator[int] = &Batch[int]{}
)

// listSpliterator traverses live list nodes.
// Size and position are bound lazily at first use, so values added
// after Spliterator() call and before traversal are visible.
type listSpliterator[T any] struct {
	list   *List[T]
	cursor list.Cursor[Value[T]]
	est    int // -1 until bound
	batch  int
}

// Spliterator creates splittable traversal over list values.
// Structural modification of the list during traversal is not supported.
func (l *List[T]) Spliterator() Spliterator[T] {
	return &listSpliterator[T]{
		list:  l,
		est:   -1,
		batch: l.policy.config.batchSize(),
	}
}

func (s *listSpliterator[T]) bind() {
	if s.est < 0 {
		s.est = s.list.chain.Len()
		s.cursor = s.list.chain.Cursor()
	}
}

func (s *listSpliterator[T]) TryAdvance(f func(v Value[T])) bool {
	s.bind()
	if !s.cursor.HasNext() {
		return false
	}
	v := s.cursor.PeekValue()
	s.cursor.Advance()
	s.est--
	f(v)
	return true
}

func (s *listSpliterator[T]) ForEachRemaining(f func(v Value[T])) {
	for s.TryAdvance(f) {
	}
}

func (s *listSpliterator[T]) TrySplit() Spliterator[T] {
	s.bind()
	if s.est <= 1 || !s.cursor.HasNext() {
		return nil
	}
	n := min(s.batch, s.est)
	values := make([]Value[T], 0, n)
	for len(values) < n && s.cursor.HasNext() {
		values = append(values, s.cursor.PeekValue())
		s.cursor.Advance()
	}
	s.est -= len(values)
	return &Batch[T]{
		values:  values,
		compare: s.list.policy.Compare,
	}
}

func (s *listSpliterator[T]) EstimateSize() int {
	s.bind()
	return s.est
}

func (s *listSpliterator[T]) Characteristics() Characteristic {
	return CharacteristicOrdered | CharacteristicSized | CharacteristicSubsized | CharacteristicSorted
}

func (s *listSpliterator[T]) Comparator() func(a, b Value[T]) int {
	return s.list.policy.Compare
}

// Batch is a spliterator over values copied out of the list.
// It owns its values and may be consumed concurrently with other batches.
type Batch[T any] struct {
	values  []Value[T]
	index   int
	compare func(a, b Value[T]) int
}

func (b *Batch[T]) TryAdvance(f func(v Value[T])) bool {
	if b.index >= len(b.values) {
		return false
	}
	v := b.values[b.index]
	b.index++
	f(v)
	return true
}

func (b *Batch[T]) ForEachRemaining(f func(v Value[T])) {
	for ; b.index < len(b.values); b.index++ {
		f(b.values[b.index])
	}
}

// TrySplit moves the first half of remaining values into a new batch.
func (b *Batch[T]) TrySplit() Spliterator[T] {
	remaining := len(b.values) - b.index
	if remaining < 2 {
		return nil
	}
	mid := b.index + remaining/2
	prefix := &Batch[T]{
		values:  b.values[b.index:mid:mid],
		compare: b.compare,
	}
	b.index = mid
	return prefix
}

func (b *Batch[T]) EstimateSize() int {
	return len(b.values) - b.index
}

func (b *Batch[T]) Characteristics() Characteristic {
	return CharacteristicOrdered | CharacteristicSized | CharacteristicSubsized | CharacteristicSorted
}

func (b *Batch[T]) Comparator() func(a, b Value[T]) int {
	return b.compare
}
