// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package container

import (
	"iter"

	"github.com/cockroachdb/redact"
)

// FormatValues prints the elements produced by seq as a bracketed,
// space-separated list. Element values are user data and are printed as
// unsafe (redactable) content.
func FormatValues[T any](w redact.SafePrinter, seq iter.Seq[T]) {
	w.SafeRune('[')
	first := true
	for v := range seq {
		if !first {
			w.SafeRune(' ')
		}
		first = false
		w.Print(v)
	}
	w.SafeRune(']')
}
