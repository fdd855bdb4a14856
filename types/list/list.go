package list

// Handle is an opaque reference to a node of a List.
// A handle is valid only for the list which returned it and only until its node is removed,
// after that the handle may be recycled for another node.
type Handle int32

// NilHandle refers to no node.
const NilHandle Handle = 0

type node[V any] struct {
	value V
	prev  Handle
	next  Handle
	live  bool
}

// List represents a doubly linked list.
//
// Nodes are kept in an arena owned by the list and addressed by handles instead of pointers,
// so a node is never shared between lists and a stale handle is detected on access.
// The zero value is an empty list ready to use.
type List[V any] struct {
	nodes []node[V] // arena, node with handle h is stored at nodes[h-1]
	free  []Handle  // handles of removed nodes available for reuse
	head  Handle
	tail  Handle
	len   int // current list length
}

// New creates new List instance.
func New[V any]() *List[V] {
	return NewReserved[V](0)
}

// NewReserved creates new List instance.
// Reserved list preallocates arena for given amount of nodes.
func NewReserved[V any](capacity int) *List[V] {
	l := new(List[V])
	if capacity > 0 {
		l.nodes = make([]node[V], 0, capacity)
	}
	return l
}

// Len returns the number of elements of list l.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first node of list l or NilHandle if the list is empty.
func (l *List[V]) Front() Handle {
	return l.head
}

// Back returns the last node of list l or NilHandle if the list is empty.
func (l *List[V]) Back() Handle {
	return l.tail
}

// Next returns the node following h or NilHandle.
func (l *List[V]) Next(h Handle) Handle {
	return l.node(h).next
}

// Prev returns the node preceding h or NilHandle.
func (l *List[V]) Prev(h Handle) Handle {
	return l.node(h).prev
}

// Value returns the value stored in node h.
func (l *List[V]) Value(h Handle) V {
	return l.node(h).value
}

// Live reports whether h refers to a node currently linked into list l.
func (l *List[V]) Live(h Handle) bool {
	return h > NilHandle && int(h) <= len(l.nodes) && l.nodes[h-1].live
}

// PushFront inserts a new node with value v at the front of list l and returns its handle.
func (l *List[V]) PushFront(v V) Handle {
	return l.link(v, NilHandle, l.head)
}

// PushBack inserts a new node with value v at the back of list l and returns its handle.
func (l *List[V]) PushBack(v V) Handle {
	return l.link(v, l.tail, NilHandle)
}

// InsertBefore inserts a new node with value v immediately before mark and returns its handle.
// The mark must be a live node of l.
func (l *List[V]) InsertBefore(v V, mark Handle) Handle {
	return l.link(v, l.node(mark).prev, mark)
}

// InsertAfter inserts a new node with value v immediately after mark and returns its handle.
// The mark must be a live node of l.
func (l *List[V]) InsertAfter(v V, mark Handle) Handle {
	return l.link(v, mark, l.node(mark).next)
}

// At returns the node at given position or NilHandle if index is out of range.
// The walk starts from the nearer end of the list.
func (l *List[V]) At(index int) Handle {
	if index < 0 || index >= l.len {
		return NilHandle
	}
	if index <= l.len/2 {
		h := l.head
		for i := 0; i < index; i++ {
			h = l.nodes[h-1].next
		}
		return h
	}
	h := l.tail
	for i := l.len - 1; i > index; i-- {
		h = l.nodes[h-1].prev
	}
	return h
}

// Remove unlinks node h from l and returns its value.
func (l *List[V]) Remove(h Handle) (v V, err error) {
	if h == NilHandle {
		err = ErrorListHandleIsNil
		return
	}
	if !l.Live(h) {
		err = ErrorListHandleNotLive
		return
	}
	v = l.unlink(h)
	return
}

// Clean cleans list l by removing all existing nodes.
func (l *List[V]) Clean() {
	for h := l.head; h != NilHandle; {
		next := l.nodes[h-1].next
		// Sever links and drop the value so nothing stays reachable through the arena
		l.nodes[h-1] = node[V]{}
		h = next
	}
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.head, l.tail = NilHandle, NilHandle
	l.len = 0
}

// node is the checked access to the arena.
func (l *List[V]) node(h Handle) *node[V] {
	if !l.Live(h) {
		panic(ErrorListHandleNotLive)
	}
	return &l.nodes[h-1]
}

// link creates a node with value v between prev and next, increments l.len and returns its handle.
func (l *List[V]) link(v V, prev, next Handle) Handle {
	h := l.alloc(v)
	n := &l.nodes[h-1]
	n.prev, n.next = prev, next
	if prev != NilHandle {
		l.nodes[prev-1].next = h
	} else {
		l.head = h
	}
	if next != NilHandle {
		l.nodes[next-1].prev = h
	} else {
		l.tail = h
	}
	l.len++
	return h
}

// unlink removes node h from the chain, decrements l.len and releases the node.
func (l *List[V]) unlink(h Handle) V {
	n := &l.nodes[h-1]
	prev, next, v := n.prev, n.next, n.value
	if prev != NilHandle {
		l.nodes[prev-1].next = next
	} else {
		l.head = next
	}
	if next != NilHandle {
		l.nodes[next-1].prev = prev
	} else {
		l.tail = prev
	}
	l.len--
	l.release(h)
	return v
}

func (l *List[V]) alloc(v V) Handle {
	if c := len(l.free); c > 0 {
		h := l.free[c-1]
		l.free = l.free[:c-1]
		l.nodes[h-1] = node[V]{value: v, live: true}
		return h
	}
	l.nodes = append(l.nodes, node[V]{value: v, live: true})
	return Handle(len(l.nodes))
}

func (l *List[V]) release(h Handle) {
	// Clean up removed node to avoid memory leaks
	l.nodes[h-1] = node[V]{}
	l.free = append(l.free, h)
}
