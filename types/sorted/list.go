package sorted

import (
	"fmt"

	"gopkg.in/typ.v4"

	"github.com/cryptonstudio/crypton-sorted-list/types/list"
)

// List is a doubly linked list which keeps its values sorted under a fixed Policy.
//
// Null values are accepted and kept in a contiguous run at the end chosen by the policy.
// Among equal values a newly added one is placed before the existing ones.
// The zero value is an empty list which accepts null values and a single present value;
// ordering present values requires a policy, so lists are created with New, NewOrdered
// or NewFromList. Ordering without a policy panics with ErrPolicyMissing.
// NOTE: The list is not safe for concurrent use.
type List[T any] struct {
	chain   list.List[Value[T]]
	policy  Policy[T]
	handler Handler[T]
}

// New creates new List instance ordered by given policy and seeded with given values.
func New[T any](policy Policy[T], seed ...Value[T]) *List[T] {
	l := &List[T]{
		chain:  *list.NewReserved[Value[T]](max(policy.config.reserved(), len(seed))),
		policy: policy,
	}
	l.AddAll(seed...)
	return l
}

// NewOrdered creates new List instance for any ordered type (ints, uints, floats, strings)
// seeded with given present values.
func NewOrdered[T typ.Ordered](config Config, seed ...T) *List[T] {
	return New(NewOrderedPolicy[T](config), Values(seed...)...)
}

// NewFromList creates new List instance ordered by given policy and seeded with copies
// of all values of the source list.
func NewFromList[T any](policy Policy[T], source *List[T]) *List[T] {
	l := New(policy)
	l.AddList(source)
	return l
}

// Clone returns a copy of list l sharing no nodes with it.
func (l *List[T]) Clone() *List[T] {
	return NewFromList(l.policy, l)
}

// SetHandler sets handler notified about list changes. Nil disables notifications.
func (l *List[T]) SetHandler(handler Handler[T]) {
	l.handler = handler
}

// Policy returns ordering policy of the list.
func (l *List[T]) Policy() Policy[T] {
	return l.policy
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.chain.Len()
}

// IsEmpty reports whether the list has no values.
func (l *List[T]) IsEmpty() bool {
	return l.chain.Len() == 0
}

////////////////////////////////////////////////////////////////
// Adding
////////////////////////////////////////////////////////////////

// Add inserts present value v keeping the list sorted. It always returns true.
func (l *List[T]) Add(v T) bool {
	return l.AddValue(Some(v))
}

// AddNull inserts null value at the end chosen by null placement. It always returns true.
func (l *List[T]) AddNull() bool {
	return l.AddValue(Null[T]())
}

// AddValue inserts v keeping the list sorted. It always returns true.
func (l *List[T]) AddValue(v Value[T]) bool {
	index := l.insert(v)
	if l.handler != nil {
		l.handler.OnAdd(index, v)
	}
	return true
}

// insert links new node with value v into its sorted position and returns the position.
func (l *List[T]) insert(v Value[T]) int {
	size := l.chain.Len()
	switch {
	case !v.ok:
		if l.policy.config.NullPlacement == NullsLeading {
			l.chain.PushFront(v)
			return 0
		}
		l.chain.PushBack(v)
		return size
	case size == 0:
		l.chain.PushBack(v)
		return 0
	case l.policy.Compare(v, l.chain.Value(l.chain.Front())) <= 0:
		l.chain.PushFront(v)
		return 0
	case l.policy.Compare(v, l.chain.Value(l.chain.Back())) > 0:
		l.chain.PushBack(v)
		return size
	}
	// Tail is greater or equal so the search always stops at some node
	mark, index := l.searchNotLess(v)
	l.chain.InsertBefore(v, mark)
	return index
}

// searchNotLess returns the first node with value greater or equal to v and its position.
func (l *List[T]) searchNotLess(v Value[T]) (list.Handle, int) {
	c := l.chain.Cursor()
	for c.HasNext() {
		if l.policy.Compare(v, c.PeekValue()) <= 0 {
			return c.Peek(), c.Index()
		}
		c.Advance()
	}
	return list.NilHandle, c.Index()
}

// searchEqual returns the first node with value equal to v and its position,
// or NilHandle and -1 when there is no such node.
func (l *List[T]) searchEqual(v Value[T]) (list.Handle, int) {
	c := l.chain.Cursor()
	for c.HasNext() {
		if l.policy.Equal(v, c.PeekValue()) {
			return c.Peek(), c.Index()
		}
		c.Advance()
	}
	return list.NilHandle, -1
}

////////////////////////////////////////////////////////////////
// Access
////////////////////////////////////////////////////////////////

// Get returns value at given position.
func (l *List[T]) Get(index int) (Value[T], error) {
	if err := l.checkIndex(index); err != nil {
		return Value[T]{}, err
	}
	return l.chain.Value(l.chain.At(index)), nil
}

// IndexOf returns position of the first value equal to v or -1.
func (l *List[T]) IndexOf(v Value[T]) int {
	_, index := l.searchEqual(v)
	return index
}

// Contains reports whether the list has a value equal to v.
func (l *List[T]) Contains(v Value[T]) bool {
	h, _ := l.searchEqual(v)
	return h != list.NilHandle
}

// ToSlice returns all values in list order.
func (l *List[T]) ToSlice() []Value[T] {
	result := make([]Value[T], 0, l.chain.Len())
	for c := l.chain.Cursor(); c.HasNext(); c.Advance() {
		result = append(result, c.PeekValue())
	}
	return result
}

// Values returns all present values in list order, null values are skipped.
func (l *List[T]) Values() []T {
	result := make([]T, 0, l.chain.Len())
	for c := l.chain.Cursor(); c.HasNext(); c.Advance() {
		if v, ok := c.PeekValue().Get(); ok {
			result = append(result, v)
		}
	}
	return result
}

////////////////////////////////////////////////////////////////
// Removing
////////////////////////////////////////////////////////////////

// RemoveAt removes value at given position and returns it.
func (l *List[T]) RemoveAt(index int) (Value[T], error) {
	if err := l.checkIndex(index); err != nil {
		return Value[T]{}, err
	}
	return l.unlink(l.chain.At(index), index), nil
}

// Remove removes the first value equal to v and returns it with true.
// When there is no such value the list is not modified and false is returned.
func (l *List[T]) Remove(v Value[T]) (Value[T], bool) {
	h, index := l.searchEqual(v)
	if h == list.NilHandle {
		return Value[T]{}, false
	}
	return l.unlink(h, index), true
}

// Clear removes all values from the list.
func (l *List[T]) Clear() {
	count := l.chain.Len()
	if count == 0 {
		return
	}
	l.chain.Clean()
	if l.handler != nil {
		l.handler.OnClear(count)
	}
}

func (l *List[T]) unlink(h list.Handle, index int) Value[T] {
	v, err := l.chain.Remove(h)
	if err != nil {
		// Handles are always taken from the chain itself
		panic(err)
	}
	if l.handler != nil {
		l.handler.OnRemove(index, v)
	}
	return v
}

func (l *List[T]) checkIndex(index int) error {
	if size := l.chain.Len(); index < 0 || index >= size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
	}
	return nil
}
