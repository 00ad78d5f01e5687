// Copyright 2018 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ring

import "github.com/cockroachdb/errors"

// Buffer is a deque maintained over a ring buffer.
//
// Note: it is backed by a slice (unlike container/ring which is backed by a
// linked list). The zero value is an empty buffer ready to use.
//
// Misuse, such as removing from an empty buffer or addressing a position
// outside [0, Len()), panics. Callers are expected to check Len first.
type Buffer[T any] struct {
	buffer []T
	head   int // the index of the front of the buffer
	len    int // the number of elements in the buffer
}

// Len returns the number of elements in the Buffer.
func (r *Buffer[T]) Len() int {
	return r.len
}

// Cap returns the capacity of the Buffer.
func (r *Buffer[T]) Cap() int {
	return len(r.buffer)
}

// index maps a position relative to the front onto an index of r.buffer.
func (r *Buffer[T]) index(pos int) int {
	return (r.head + pos) % len(r.buffer)
}

// Get returns an element at position pos in the Buffer (zero-based).
func (r *Buffer[T]) Get(pos int) T {
	if pos < 0 || pos >= r.len {
		panic(errors.AssertionFailedf("ring: position %d out of bounds [0,%d)", pos, r.len))
	}
	return r.buffer[r.index(pos)]
}

// GetFirst returns the element at the front of the Buffer.
func (r *Buffer[T]) GetFirst() T {
	if r.len == 0 {
		panic(errors.AssertionFailedf("ring: getting first from empty buffer"))
	}
	return r.buffer[r.head]
}

// GetLast returns the element at the back of the Buffer.
func (r *Buffer[T]) GetLast() T {
	if r.len == 0 {
		panic(errors.AssertionFailedf("ring: getting last from empty buffer"))
	}
	return r.buffer[r.index(r.len-1)]
}

// grow reallocates the buffer with capacity n, moving the elements so that
// the front is at index 0.
func (r *Buffer[T]) grow(n int) {
	newBuffer := make([]T, n)
	if r.len > 0 {
		if end := r.head + r.len; end <= len(r.buffer) {
			copy(newBuffer, r.buffer[r.head:end])
		} else {
			k := copy(newBuffer, r.buffer[r.head:])
			copy(newBuffer[k:], r.buffer[:end-len(r.buffer)])
		}
	}
	r.head = 0
	r.buffer = newBuffer
}

func (r *Buffer[T]) maybeGrow() {
	if r.len != len(r.buffer) {
		return
	}
	n := 2 * len(r.buffer)
	if n == 0 {
		n = 1
	}
	r.grow(n)
}

// AddFirst adds element to the front of the Buffer and doubles its
// underlying slice if necessary.
func (r *Buffer[T]) AddFirst(element T) {
	r.maybeGrow()
	r.head = (len(r.buffer) + r.head - 1) % len(r.buffer)
	r.buffer[r.head] = element
	r.len++
}

// AddLast adds element to the end of the Buffer and doubles its underlying
// slice if necessary.
func (r *Buffer[T]) AddLast(element T) {
	r.maybeGrow()
	r.buffer[r.index(r.len)] = element
	r.len++
}

// RemoveFirst removes a single element from the front of the Buffer. The
// vacated slot is zeroed so that it retains no references.
func (r *Buffer[T]) RemoveFirst() {
	if r.len == 0 {
		panic(errors.AssertionFailedf("ring: removing first from empty buffer"))
	}
	var zero T
	r.buffer[r.head] = zero
	r.head = r.index(1)
	r.len--
}

// RemoveLast removes a single element from the end of the Buffer. The
// vacated slot is zeroed so that it retains no references.
func (r *Buffer[T]) RemoveLast() {
	if r.len == 0 {
		panic(errors.AssertionFailedf("ring: removing last from empty buffer"))
	}
	var zero T
	r.buffer[r.index(r.len-1)] = zero
	r.len--
}

// Reserve reserves the provided number of elements in the Buffer. It is an
// error to reserve a size less than the Buffer's current length.
func (r *Buffer[T]) Reserve(n int) {
	if n < r.len {
		panic(errors.AssertionFailedf("ring: reserving %d elements with length %d", n, r.len))
	} else if n > len(r.buffer) {
		r.grow(n)
	}
}

// Reset makes Buffer treat its underlying memory as if it were empty,
// releasing the references it holds. The capacity is retained.
func (r *Buffer[T]) Reset() {
	clear(r.buffer)
	r.head = 0
	r.len = 0
}
