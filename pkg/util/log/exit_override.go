// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"os"
)

// SetExitFunc allows setting a function that will be called to exit
// the process when a Fatal message is generated.
//
// Call with a nil function to undo.
func SetExitFunc(f func(int)) {
	mainLog.mu.Lock()
	defer mainLog.mu.Unlock()
	mainLog.mu.exitOverride = f
}

// ResetExitFunc undoes any prior call to SetExitFunc.
func ResetExitFunc() {
	SetExitFunc(nil)
}

// Fatalf logs to the FATAL severity and exits the process with status 1,
// or calls the function installed with SetExitFunc instead.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	mainLog.output(ctx, FATAL, format, args)
	mainLog.exit(1)
}

func (l *loggerT) exit(code int) {
	l.mu.Lock()
	f := l.mu.exitOverride
	l.mu.Unlock()
	if f != nil {
		f(code)
		return
	}
	os.Exit(code)
}
