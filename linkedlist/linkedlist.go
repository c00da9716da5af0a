// Package linkedlist is a doubly linked list whose nodes live in a per-list
// arena and link to each other by slot index.
//
// A List is not safe for concurrent use, and at most one Iterator may be
// modifying it at a time.
package linkedlist

import "iter"

const none = -1

// ReleaseFunc is called with a payload when it leaves the list for good. A nil
// ReleaseFunc is a no-op.
type ReleaseFunc[T any] func(payload T)

// CompareFunc returns a negative number when a sorts before b, zero when they
// are equal and a positive number otherwise.
type CompareFunc[T any] func(a, b T) int

type node[T any] struct {
	payload T
	prev    int
	next    int
}

type List[T any] struct {
	nodes  []node[T]
	free   []int
	head   int
	tail   int
	length int
}

func New[T any]() *List[T] {
	return &List[T]{
		head: none,
		tail: none,
	}
}

func (l *List[T]) Len() int {
	return l.length
}

// Free releases every payload from head to tail and empties the list.
func (l *List[T]) Free(release ReleaseFunc[T]) {
	for idx := l.head; idx != none; idx = l.nodes[idx].next {
		if release != nil {
			release(l.nodes[idx].payload)
		}
	}

	l.reset()
}

// Push inserts payload before the current head.
func (l *List[T]) Push(payload T) {
	idx := l.alloc(payload)

	if l.length == 0 {
		l.head, l.tail = idx, idx
	} else {
		l.nodes[idx].next = l.head
		l.nodes[l.head].prev = idx
		l.head = idx
	}

	l.length++
}

// Pop removes the head and hands its payload to the caller.
func (l *List[T]) Pop() (payload T, ok bool) {
	if l.length == 0 {
		return
	}

	idx := l.head
	payload, ok = l.nodes[idx].payload, true

	if l.length == 1 {
		l.head, l.tail = none, none
	} else {
		l.head = l.nodes[idx].next
		l.nodes[l.head].prev = none
	}

	l.release(idx)
	return
}

// Append inserts payload after the current tail.
func (l *List[T]) Append(payload T) {
	idx := l.alloc(payload)

	if l.length == 0 {
		l.head, l.tail = idx, idx
	} else {
		l.nodes[idx].prev = l.tail
		l.nodes[l.tail].next = idx
		l.tail = idx
	}

	l.length++
}

// Slice removes the tail and hands its payload to the caller.
func (l *List[T]) Slice() (payload T, ok bool) {
	if l.length == 0 {
		return
	}

	idx := l.tail
	payload, ok = l.nodes[idx].payload, true

	if l.length == 1 {
		l.head, l.tail = none, none
	} else {
		l.tail = l.nodes[idx].prev
		l.nodes[l.tail].next = none
	}

	l.release(idx)
	return
}

func (l *List[T]) Front() (payload T, ok bool) {
	if l.head == none {
		return
	}

	return l.nodes[l.head].payload, true
}

func (l *List[T]) Back() (payload T, ok bool) {
	if l.tail == none {
		return
	}

	return l.nodes[l.tail].payload, true
}

// Values yields every payload from head to tail. The list must not be
// modified while ranging.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := l.head; idx != none; idx = l.nodes[idx].next {
			if !yield(l.nodes[idx].payload) {
				return
			}
		}
	}
}

// Sort bubble sorts the list in place. Payloads move between nodes; the nodes
// themselves stay where they are, so an iterator keeps its position.
func (l *List[T]) Sort(ascending bool, cmp CompareFunc[T]) {
	if l.length < 2 {
		return
	}

	for swapped := true; swapped; {
		swapped = false

		for idx := l.head; l.nodes[idx].next != none; idx = l.nodes[idx].next {
			a, b := &l.nodes[idx], &l.nodes[l.nodes[idx].next]
			res := cmp(a.payload, b.payload)

			if !ascending {
				res = -res
			}

			if res > 0 {
				a.payload, b.payload = b.payload, a.payload
				swapped = true
			}
		}
	}
}

// unlink splices out an interior node.
func (l *List[T]) unlink(idx int) (payload T) {
	n := &l.nodes[idx]
	payload = n.payload
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	l.release(idx)
	return
}

func (l *List[T]) alloc(payload T) (idx int) {
	if last := len(l.free) - 1; last >= 0 {
		idx = l.free[last]
		l.free = l.free[:last]
		l.nodes[idx] = node[T]{payload: payload, prev: none, next: none}
		return
	}

	idx = len(l.nodes)
	l.nodes = append(l.nodes, node[T]{payload: payload, prev: none, next: none})
	return
}

func (l *List[T]) release(idx int) {
	l.length--

	if l.length == 0 {
		l.reset()
		return
	}

	l.nodes[idx] = node[T]{prev: none, next: none}
	l.free = append(l.free, idx)
}

func (l *List[T]) reset() {
	clear(l.nodes)
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.head, l.tail = none, none
	l.length = 0
}
