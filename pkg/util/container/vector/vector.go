// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package vector implements Vector, a growable array with explicit capacity
// management.
package vector

import (
	"iter"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

const name = "vector"

// slot is a single storage cell of a Vector. A slot that is not occupied has
// been allocated but never written, or its value has since been removed; its
// val is always the zero T so that it retains no references.
type slot[T any] struct {
	val      T
	occupied bool
}

// Vector is a contiguous, growable sequence of T.
//
// Appending at the back is amortized O(1): when the storage is full it is
// reallocated with twice the capacity (at least 1). Insertion and removal at
// an arbitrary position shift the tail of the vector and cost O(Len()-index).
// Capacity only decreases through an explicit call to ShrinkToFit.
//
// The zero value is an empty vector with no capacity, ready to use. A Vector
// is not safe for concurrent use.
type Vector[T any] struct {
	// data holds Cap() slots. Slots [0, size) are occupied, slots
	// [size, len(data)) are vacant.
	data []slot[T]
	size int
}

// New returns an empty Vector with the given initial capacity.
func New[T any](initialCapacity int) (*Vector[T], error) {
	if initialCapacity < 0 {
		return nil, container.NewInvalidArgumentf(
			"vector: initial capacity %d must be non-negative", initialCapacity)
	}
	return &Vector[T]{data: make([]slot[T], initialCapacity)}, nil
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty returns true if the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at position index, which must lie in [0, Len()).
func (v *Vector[T]) At(index int) (T, error) {
	if err := container.CheckIndex(name, index, 0, v.size); err != nil {
		var zero T
		return zero, err
	}
	s := v.data[index]
	if !s.occupied {
		var zero T
		return zero, errors.AssertionFailedf("vector: slot %d is vacant with length %d", index, v.size)
	}
	return s.val, nil
}

// Get returns the value stored in slot index without validating index
// against Len(). Any allocated slot in [0, Cap()) may be addressed; reading a
// slot that holds no value returns an error marked with
// container.ErrUninitializedSlot. Addressing a slot that was never allocated
// is an assertion failure, the caller being responsible for index validity.
func (v *Vector[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(v.data) {
		return zero, errors.AssertionFailedf(
			"vector: no storage slot at index %d with capacity %d", index, len(v.data))
	}
	s := v.data[index]
	if !s.occupied {
		return zero, container.NewUninitializedError(name, index)
	}
	return s.val, nil
}

// Set overwrites the element at position index, which must lie in
// [0, Len()).
func (v *Vector[T]) Set(index int, value T) error {
	if err := container.CheckIndex(name, index, 0, v.size); err != nil {
		return err
	}
	v.data[index] = slot[T]{val: value, occupied: true}
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, container.NewEmptyError(name)
	}
	return v.At(0)
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, container.NewEmptyError(name)
	}
	return v.At(v.size - 1)
}

// Reserve ensures the vector has room for at least n elements. It is a no-op
// if n <= Cap(); otherwise the storage is reallocated to exactly n slots. The
// elements and Len() are unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return container.NewInvalidArgumentf("vector: reserve size %d must be non-negative", n)
	}
	v.reserve(n)
	return nil
}

func (v *Vector[T]) reserve(n int) {
	if n <= len(v.data) {
		return
	}
	data := make([]slot[T], n)
	copy(data, v.data[:v.size])
	v.data = data
}

// maybeGrow doubles the capacity (at least 1) if the vector is full.
func (v *Vector[T]) maybeGrow() {
	if v.size < len(v.data) {
		return
	}
	n := 2 * len(v.data)
	if n == 0 {
		n = 1
	}
	v.reserve(n)
}

// ShrinkToFit reallocates the storage so that Cap() == Len().
func (v *Vector[T]) ShrinkToFit() {
	if len(v.data) == v.size {
		return
	}
	data := make([]slot[T], v.size)
	copy(data, v.data[:v.size])
	v.data = data
}

// PushBack appends value to the vector, growing the storage if necessary.
func (v *Vector[T]) PushBack(value T) {
	v.maybeGrow()
	v.data[v.size] = slot[T]{val: value, occupied: true}
	v.size++
}

// PopBack removes the last element. The capacity is unchanged.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return container.NewEmptyError(name)
	}
	v.size--
	v.data[v.size] = slot[T]{}
	return nil
}

// Insert inserts value at position index, shifting the elements at and after
// index one position to the right. index must lie in [0, Len()]; inserting
// at Len() is equivalent to PushBack.
func (v *Vector[T]) Insert(index int, value T) error {
	// The index is validated before growing so that a failed insert leaves
	// the vector untouched.
	if err := container.CheckIndex(name, index, 0, v.size+1); err != nil {
		return err
	}
	v.maybeGrow()
	// copy handles the overlapping ranges as if moving the highest index
	// first.
	copy(v.data[index+1:v.size+1], v.data[index:v.size])
	v.data[index] = slot[T]{val: value, occupied: true}
	v.size++
	return nil
}

// Erase removes the element at position index, shifting the elements after
// it one position to the left. index must lie in [0, Len()).
func (v *Vector[T]) Erase(index int) error {
	if err := container.CheckIndex(name, index, 0, v.size); err != nil {
		return err
	}
	copy(v.data[index:v.size-1], v.data[index+1:v.size])
	v.size--
	v.data[v.size] = slot[T]{}
	return nil
}

// Clear removes all elements. The capacity is unchanged.
func (v *Vector[T]) Clear() {
	clear(v.data[:v.size])
	v.size = 0
}

// Resize changes the length of the vector to n. When growing, the new
// positions [Len(), n) are all assigned fill; for pointer, slice or map
// types this means every new position aliases the same value. When
// shrinking, the elements at [n, Len()) are removed. The capacity only
// changes if n exceeds it, in which case it becomes exactly n.
func (v *Vector[T]) Resize(n int, fill T) error {
	if n < 0 {
		return container.NewInvalidArgumentf("vector: new size %d must be non-negative", n)
	}
	switch {
	case n > v.size:
		v.reserve(n)
		for i := v.size; i < n; i++ {
			v.data[i] = slot[T]{val: fill, occupied: true}
		}
		v.size = n
	case n < v.size:
		clear(v.data[n:v.size])
		v.size = n
	}
	return nil
}

// Values returns an iterator over the elements of the vector, from front to
// back.
//
// The iterator does not operate on a snapshot: the length is re-read at every
// step, so elements appended while iterating are produced once the cursor
// reaches them. The effect of Insert, Erase or a shrinking Resize during
// iteration is undefined. Use ToSlice to iterate over an isolated copy.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i].val) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements of the vector. Later mutations of
// the vector do not affect the returned slice.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.size)
	for i := range out {
		out[i] = v.data[i].val
	}
	return out
}

// Begin returns the position of the first element, always 0.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element, Len().
func (v *Vector[T]) End() int {
	return v.size
}

// String implements fmt.Stringer.
func (v *Vector[T]) String() string {
	return redact.StringWithoutMarkers(v)
}

// SafeFormat implements redact.SafeFormatter.
func (v *Vector[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	container.FormatValues(w, v.Values())
}
