package linkedlist

// Iterator is a cursor over a List. It stays well defined across its own
// Remove calls, but any other modification of the list invalidates it.
type Iterator[T any] struct {
	list *List[T]
	node int
}

// Iterator returns a cursor at the head, or an invalid one if the list is empty.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		list: l,
		node: l.head,
	}
}

// IteratorAtTail returns a cursor at the tail, or an invalid one if the list
// is empty.
func (l *List[T]) IteratorAtTail() *Iterator[T] {
	return &Iterator[T]{
		list: l,
		node: l.tail,
	}
}

func (iter *Iterator[T]) IsValid() bool {
	return iter.node != none
}

// Next moves to the successor and reports whether the cursor is still valid.
func (iter *Iterator[T]) Next() bool {
	iter.mustBeValid()
	iter.node = iter.list.nodes[iter.node].next
	return iter.node != none
}

// Prev moves to the predecessor and reports whether the cursor is still valid.
func (iter *Iterator[T]) Prev() bool {
	iter.mustBeValid()
	iter.node = iter.list.nodes[iter.node].prev
	return iter.node != none
}

func (iter *Iterator[T]) Get() T {
	iter.mustBeValid()
	return iter.list.nodes[iter.node].payload
}

// Rewind moves the cursor back to the head.
func (iter *Iterator[T]) Rewind() {
	iter.node = iter.list.head
}

// Remove drops the current node, releases its payload and moves the cursor.
// Removing the head leaves the cursor on the new head, removing the tail
// leaves it on the new tail, and removing an interior node leaves it on the
// former successor. Returns false once the list is empty.
func (iter *Iterator[T]) Remove(release ReleaseFunc[T]) bool {
	iter.mustBeValid()

	var payload T
	l := iter.list
	n := l.nodes[iter.node]

	switch {
	case n.prev == none:
		payload, _ = l.Pop()
		iter.node = l.head

	case n.next == none:
		payload, _ = l.Slice()
		iter.node = l.tail

	default:
		payload = l.unlink(iter.node)
		iter.node = n.next
	}

	if release != nil {
		release(payload)
	}

	return l.length != 0
}

func (iter *Iterator[T]) mustBeValid() {
	if iter.node == none {
		panic(ErrInvalidIterator)
	}
}
