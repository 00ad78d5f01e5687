// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package list implements List, a generic doubly linked list addressed by
// position.
package list

import (
	"iter"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/redact"
)

const name = "list"

// node is an element of a List. The forward link is the one that keeps the
// chain alive; prev is a back-reference used only for traversal.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// List is a doubly linked list of T.
//
// Pushing and popping at either end is O(1). Positional operations (At,
// Insert, Erase) walk from whichever end is closer to the position, so they
// visit at most Len()/2 nodes.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Empty returns true if the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack inserts value at the back of the list.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes the first element.
func (l *List[T]) PopFront() error {
	if l.size == 0 {
		return container.NewEmptyError(name)
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.next = nil
	l.size--
	return nil
}

// PopBack removes the last element.
func (l *List[T]) PopBack() error {
	if l.size == 0 {
		return container.NewEmptyError(name)
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	n.prev = nil
	l.size--
	return nil
}

// Front returns the first element.
func (l *List[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, container.NewEmptyError(name)
	}
	return l.head.value, nil
}

// Back returns the last element.
func (l *List[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, container.NewEmptyError(name)
	}
	return l.tail.value, nil
}

// nodeAt returns the node at position index, which must lie in [0, Len()).
// The walk starts from the head for the first half of the list and from the
// tail for the second half.
func (l *List[T]) nodeAt(index int) *node[T] {
	if index <= l.size>>1 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// At returns the element at position index, which must lie in [0, Len()).
func (l *List[T]) At(index int) (T, error) {
	if err := container.CheckIndex(name, index, 0, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(index).value, nil
}

// Insert inserts value at position index, which must lie in [0, Len()]. The
// element previously at index, if any, follows the new one.
func (l *List[T]) Insert(index int, value T) error {
	if err := container.CheckIndex(name, index, 0, l.size+1); err != nil {
		return err
	}
	switch index {
	case 0:
		l.PushFront(value)
	case l.size:
		l.PushBack(value)
	default:
		cur := l.nodeAt(index)
		n := &node[T]{value: value, prev: cur.prev, next: cur}
		cur.prev.next = n
		cur.prev = n
		l.size++
	}
	return nil
}

// Erase removes the element at position index, which must lie in
// [0, Len()).
func (l *List[T]) Erase(index int) error {
	if err := container.CheckIndex(name, index, 0, l.size); err != nil {
		return err
	}
	switch index {
	case 0:
		return l.PopFront()
	case l.size - 1:
		return l.PopBack()
	}
	cur := l.nodeAt(index)
	cur.prev.next = cur.next
	cur.next.prev = cur.prev
	cur.prev, cur.next = nil, nil
	l.size--
	return nil
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.head, l.tail = nil, nil
	l.size = 0
}

// Values returns an iterator over the elements from front to back. Each call
// starts from the current head.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from back to front. Each
// call starts from the current tail.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements from front to back.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

// String implements fmt.Stringer.
func (l *List[T]) String() string {
	return redact.StringWithoutMarkers(l)
}

// SafeFormat implements redact.SafeFormatter.
func (l *List[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	container.FormatValues(w, l.Values())
}
