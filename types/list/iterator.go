package list

// Cursor walks list nodes from the front to the back.
// It is shared by value iteration and by search routines which need node handles.
// Structural changes of the list while a cursor is in use are not supported.
type Cursor[V any] struct {
	list  *List[V]
	next  Handle
	index int
}

// Cursor creates cursor positioned before the first node of list l.
func (l *List[V]) Cursor() Cursor[V] {
	return Cursor[V]{
		list: l,
		next: l.head,
	}
}

// HasNext reports whether Advance will return a node.
func (c *Cursor[V]) HasNext() bool {
	return c.next != NilHandle
}

// Peek returns the node which will be returned by the next Advance call, or NilHandle.
func (c *Cursor[V]) Peek() Handle {
	return c.next
}

// PeekValue returns the value of the node returned by Peek.
// It panics when the cursor is exhausted.
func (c *Cursor[V]) PeekValue() V {
	return c.list.node(c.next).value
}

// Index returns position of the node returned by Peek.
func (c *Cursor[V]) Index() int {
	return c.index
}

// Advance moves the cursor one node forward and returns the node it passed,
// or NilHandle when the cursor is exhausted.
func (c *Cursor[V]) Advance() Handle {
	h := c.next
	if h == NilHandle {
		return NilHandle
	}
	c.next = c.list.node(h).next
	c.index++
	return h
}
