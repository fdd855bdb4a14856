package sorted

import (
	"github.com/cryptonstudio/crypton-sorted-list/types/list"
)

// Iterator walks list values from the first to the last one.
// Iterator is not valid after the list is structurally modified.
type Iterator[T any] struct {
	cursor list.Cursor[Value[T]]
}

// Iterator creates iterator positioned before the first value of the list.
// Each call returns an independent iterator starting from the beginning.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{cursor: l.chain.Cursor()}
}

// HasNext reports whether Next will return a value.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor.HasNext()
}

// Next returns the next value or ErrIteratorExhausted when there are no more values.
func (it *Iterator[T]) Next() (Value[T], error) {
	if !it.cursor.HasNext() {
		return Value[T]{}, ErrIteratorExhausted
	}
	v := it.cursor.PeekValue()
	it.cursor.Advance()
	return v, nil
}

// ForEach calls f for every value in list order until f returns false.
func (l *List[T]) ForEach(f func(v Value[T]) bool) {
	for c := l.chain.Cursor(); c.HasNext(); c.Advance() {
		if !f(c.PeekValue()) {
			return
		}
	}
}
