// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package container holds the error taxonomy shared by the generic
// containers under pkg/util (vector, list, queue, stack).
//
// Every error returned by a container is marked with exactly one of the
// reference errors below, so callers can classify failures with errors.Is
// regardless of the message:
//
//	if _, err := v.At(i); errors.Is(err, container.ErrIndexOutOfRange) {
//		...
//	}
//
// Invariant violations that should be unreachable in a correct container are
// reported as assertion failures (errors.IsAssertionFailure) instead.
package container

import "github.com/cockroachdb/errors"

// ErrEmptyContainer is a reference error matching failures of operations
// that need at least one element (front, back, pop, top) on an empty
// container.
var ErrEmptyContainer = errors.New("container is empty")

// ErrIndexOutOfRange is a reference error matching failures caused by an
// index outside the valid range of the requested operation.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrUninitializedSlot is a reference error matching reads of an allocated
// storage slot that does not hold a value.
var ErrUninitializedSlot = errors.New("uninitialized slot")

// ErrInvalidArgument is a reference error matching failures caused by an
// argument violating a precondition, such as a negative capacity.
var ErrInvalidArgument = errors.New("invalid argument")

// NewEmptyError returns an error marked with ErrEmptyContainer.
func NewEmptyError(name string) error {
	return errors.Mark(errors.Newf("%s is empty", errors.Safe(name)), ErrEmptyContainer)
}

// NewIndexError returns an error marked with ErrIndexOutOfRange. The valid
// range is the half-open interval [lo, hi).
func NewIndexError(name string, index, lo, hi int) error {
	return errors.Mark(
		errors.Newf("%s: index %d out of range [%d,%d)", errors.Safe(name), index, lo, hi),
		ErrIndexOutOfRange)
}

// NewUninitializedError returns an error marked with ErrUninitializedSlot.
func NewUninitializedError(name string, index int) error {
	return errors.Mark(
		errors.Newf("%s: uninitialized element at index %d", errors.Safe(name), index),
		ErrUninitializedSlot)
}

// NewInvalidArgumentf returns an error marked with ErrInvalidArgument.
func NewInvalidArgumentf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrInvalidArgument)
}

// CheckIndex returns nil if lo <= index < hi, and an index error otherwise.
func CheckIndex(name string, index, lo, hi int) error {
	if index < lo || index >= hi {
		return NewIndexError(name, index, lo, hi)
	}
	return nil
}
