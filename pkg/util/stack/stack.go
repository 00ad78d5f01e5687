// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package stack implements a generic LIFO stack.
package stack

import (
	"iter"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/redact"
	"golang.org/x/exp/slices"
)

const name = "stack"

// Stack is a LIFO stack of T backed by a slice whose last element is the
// top. The zero value is an empty stack ready to use. A Stack is not safe for
// concurrent use.
type Stack[T any] struct {
	items []T
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Empty returns true if the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes the top element.
func (s *Stack[T]) Pop() error {
	if len(s.items) == 0 {
		return container.NewEmptyError(name)
	}
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, container.NewEmptyError(name)
	}
	return s.items[len(s.items)-1], nil
}

// Clear removes all elements, keeping the allocated storage.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Values returns an iterator over the elements from top to bottom, the
// order in which they would be popped.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements from bottom to top.
func (s *Stack[T]) ToSlice() []T {
	if s.items == nil {
		return []T{}
	}
	return slices.Clone(s.items)
}

// String implements fmt.Stringer.
func (s *Stack[T]) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter. Elements are printed from top
// to bottom.
func (s *Stack[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	container.FormatValues(w, s.Values())
}
