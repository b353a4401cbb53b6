package list

import (
	"errors"
	"iter"
	"reflect"
)

// Errors:
//   - ErrNilList   — nil *List receiver on a mutating or indexed operation.
//   - ErrEmptyList — removal or reversal requested on an empty list.
//   - ErrOutOfRange — index outside the operation's valid bounds.
var (
	// ErrNilList indicates a nil *List receiver was used.
	ErrNilList = errors.New("list: nil receiver")

	// ErrEmptyList indicates the list has no elements to operate on.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrOutOfRange indicates an index outside valid bounds
	// (Get/Set/Remove require index < Len; Insert allows index == Len).
	ErrOutOfRange = errors.New("list: index out of range")
)

// node is one owned link in the chain.
type node[T any] struct {
	prev, next *node[T]
	val        T
}

// List is a doubly linked sequence of T.
//
// Invariants: head == nil ⟺ tail == nil ⟺ Len() == 0; for every node n,
// n.prev.next == n and n.next.prev == n whenever those neighbors exist;
// Len() equals the number of nodes reachable head→tail.
type List[T any] struct {
	head, tail *node[T]
	size       int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements. A nil list reads as empty.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Append splices a new node after the tail.
//
// Complexity: O(1)
func (l *List[T]) Append(x T) error {
	if l == nil {
		return ErrNilList
	}
	n := &node[T]{prev: l.tail, val: x}
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n
	if l.head == nil {
		l.head = n
	}
	l.size++

	return nil
}

// Prepend splices a new node before the head.
//
// Complexity: O(1)
func (l *List[T]) Prepend(x T) error {
	if l == nil {
		return ErrNilList
	}
	n := &node[T]{next: l.head, val: x}
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++

	return nil
}

// Pop removes and returns the tail element.
// Returns ErrEmptyList when there is nothing to remove.
//
// Complexity: O(1)
func (l *List[T]) Pop() (T, error) {
	var zero T
	if l == nil {
		return zero, ErrNilList
	}
	if l.tail == nil {
		return zero, ErrEmptyList
	}
	last := l.tail
	l.tail = last.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.size--

	return last.val, nil
}

// Shift removes and returns the head element.
// Returns ErrEmptyList when there is nothing to remove.
//
// Complexity: O(1)
func (l *List[T]) Shift() (T, error) {
	var zero T
	if l == nil {
		return zero, ErrNilList
	}
	if l.head == nil {
		return zero, ErrEmptyList
	}
	first := l.head
	l.head = first.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.size--

	return first.val, nil
}

// Insert places x at index. Index 0 and index Len() are O(1) fast paths
// (prepend and append); interior indices walk from the head and splice a
// new node immediately before the node currently at that position.
//
// Complexity: O(1) at the ends, O(n) otherwise.
func (l *List[T]) Insert(index int, x T) error {
	if l == nil {
		return ErrNilList
	}
	if index < 0 || index > l.size {
		return ErrOutOfRange
	}
	switch index {
	case 0:
		return l.Prepend(x)
	case l.size:
		return l.Append(x)
	}

	curr := l.nodeAt(index)
	n := &node[T]{prev: curr.prev, next: curr, val: x}
	curr.prev.next = n
	curr.prev = n
	l.size++

	return nil
}

// Remove splices out and returns the element at index, fixing head/tail
// when an endpoint is removed. Requires index < Len().
//
// Complexity: O(n)
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if l == nil {
		return zero, ErrNilList
	}
	if index < 0 || index >= l.size {
		return zero, ErrOutOfRange
	}

	n := l.nodeAt(index)
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--

	return n.val, nil
}

// Reverse swaps prev and next on every node in one traversal and swaps the
// list's head and tail. Reversing an empty list reports ErrEmptyList; the
// no-op case is deliberately distinguishable from success.
//
// Complexity: O(n)
func (l *List[T]) Reverse() error {
	if l == nil {
		return ErrNilList
	}
	if l.head == nil {
		return ErrEmptyList
	}
	for n := l.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	l.head, l.tail = l.tail, l.head

	return nil
}

// Contains reports whether any element compares equal to x under
// reflect.DeepEqual.
//
// Complexity: O(n)
func (l *List[T]) Contains(x T) bool {
	return l.ContainsFunc(func(v T) bool { return reflect.DeepEqual(v, x) })
}

// ContainsFunc reports whether any element satisfies match, walking
// head→tail.
func (l *List[T]) ContainsFunc(match func(T) bool) bool {
	if l == nil || match == nil {
		return false
	}
	for n := l.head; n != nil; n = n.next {
		if match(n.val) {
			return true
		}
	}

	return false
}

// Get returns the element at index. Requires index < Len().
//
// Complexity: O(n)
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if l == nil {
		return zero, ErrNilList
	}
	if index < 0 || index >= l.size {
		return zero, ErrOutOfRange
	}

	return l.nodeAt(index).val, nil
}

// Set overwrites the element at index. Requires index < Len().
//
// Complexity: O(n)
func (l *List[T]) Set(index int, x T) error {
	if l == nil {
		return ErrNilList
	}
	if index < 0 || index >= l.size {
		return ErrOutOfRange
	}
	l.nodeAt(index).val = x

	return nil
}

// All iterates index/value pairs walking head→tail.
// The sequence is restartable and performs no mutation.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.val) {
				return
			}
			i++
		}
	}
}

// Backward iterates index/value pairs walking tail→head; indices count
// down from Len()-1.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		i := l.size - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.val) {
				return
			}
			i--
		}
	}
}

// nodeAt walks from the head for index steps.
// Callers must have range-checked index already.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}

	return n
}
