// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package queue implements a generic FIFO queue.
package queue

import (
	"iter"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/ring"
	"github.com/cockroachdb/redact"
)

const name = "queue"

// Queue is a FIFO queue of T backed by a ring buffer. Push and Pop are O(1)
// amortized: popping advances the front of the ring and never shifts the
// remaining elements.
//
// The zero value is an empty queue ready to use. A Queue is not safe for
// concurrent use.
type Queue[T any] struct {
	buf             ring.Buffer[T]
	initialCapacity int
}

// Option configures a Queue created by NewQueue.
type Option[T any] func(q *Queue[T])

// WithInitialCapacity preallocates room for n elements.
func WithInitialCapacity[T any](n int) Option[T] {
	return func(q *Queue[T]) {
		q.initialCapacity = n
	}
}

// NewQueue returns an empty Queue configured with the given options.
func NewQueue[T any](opts ...Option[T]) (*Queue[T], error) {
	q := &Queue[T]{}
	for _, opt := range opts {
		opt(q)
	}
	if q.initialCapacity < 0 {
		return nil, container.NewInvalidArgumentf(
			"queue: initial capacity %d must be non-negative", q.initialCapacity)
	}
	q.buf.Reserve(q.initialCapacity)
	return q, nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.buf.Len()
}

// Empty returns true if the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.buf.Len() == 0
}

// Push appends value at the back of the queue.
func (q *Queue[T]) Push(value T) {
	q.buf.AddLast(value)
}

// Pop removes the element at the front of the queue.
func (q *Queue[T]) Pop() error {
	if q.Empty() {
		return container.NewEmptyError(name)
	}
	q.buf.RemoveFirst()
	return nil
}

// Front returns the element at the front of the queue, the next one to be
// popped.
func (q *Queue[T]) Front() (T, error) {
	if q.Empty() {
		var zero T
		return zero, container.NewEmptyError(name)
	}
	return q.buf.GetFirst(), nil
}

// Back returns the most recently pushed element.
func (q *Queue[T]) Back() (T, error) {
	if q.Empty() {
		var zero T
		return zero, container.NewEmptyError(name)
	}
	return q.buf.GetLast(), nil
}

// Clear removes all elements. The allocated capacity is retained.
func (q *Queue[T]) Clear() {
	q.buf.Reset()
}

// Swap exchanges the contents of q and other.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.buf, other.buf = other.buf, q.buf
}

// Values returns an iterator over the elements from front to back.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.buf.Len(); i++ {
			if !yield(q.buf.Get(i)) {
				return
			}
		}
	}
}

// String implements fmt.Stringer.
func (q *Queue[T]) String() string {
	return redact.StringWithoutMarkers(q)
}

// SafeFormat implements redact.SafeFormatter.
func (q *Queue[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	container.FormatValues(w, q.Values())
}
