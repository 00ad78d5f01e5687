// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log implements a small context-aware logger for the command-line
// tools of this module.
//
// Every logging function takes a context.Context as its first argument; the
// logtags attached to the context (see logtags.AddTag) are rendered in front
// of the message:
//
//	ctx = logtags.AddTag(ctx, "line", 12)
//	log.Warningf(ctx, "operation failed: %v", err)
//	// W261018 09:41:07.123456 [line=12] operation failed: ...
//
// Messages are formatted with redact, so that arguments which are not known
// to be safe are enclosed in redaction markers when redactable logs are
// enabled (see SetRedactableLogs). The containers themselves never log.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Severity identifies the importance of a log entry.
type Severity int32

const (
	// INFO is used for informational and verbose entries.
	INFO Severity = iota + 1
	// WARNING is used for unexpected but recoverable conditions.
	WARNING
	// ERROR is used for failures.
	ERROR
	// FATAL is used for failures after which the process exits.
	FATAL
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	}
	return fmt.Sprintf("Severity(%d)", int32(s))
}

// letter is the single-character prefix of entries with this severity.
func (s Severity) letter() byte {
	switch s {
	case INFO:
		return 'I'
	case WARNING:
		return 'W'
	case ERROR:
		return 'E'
	case FATAL:
		return 'F'
	}
	return 'U'
}

type loggerT struct {
	verbosity  atomic.Int32
	redactable atomic.Bool

	mu struct {
		sync.Mutex
		w io.Writer
		// exitOverride, if set, is called instead of os.Exit by Fatalf.
		exitOverride func(int)
	}
}

var mainLog = func() *loggerT {
	l := &loggerT{}
	l.mu.w = os.Stderr
	return l
}()

// timeNow is overridden in tests.
var timeNow = time.Now

// SetOutput redirects all log entries to w and returns a function restoring
// the previous output.
func SetOutput(w io.Writer) (restore func()) {
	mainLog.mu.Lock()
	defer mainLog.mu.Unlock()
	prev := mainLog.mu.w
	mainLog.mu.w = w
	return func() {
		mainLog.mu.Lock()
		defer mainLog.mu.Unlock()
		mainLog.mu.w = prev
	}
}

// SetVerbosity sets the level up to which V returns true and returns a
// function restoring the previous level.
func SetVerbosity(level int32) (restore func()) {
	prev := mainLog.verbosity.Swap(level)
	return func() { mainLog.verbosity.Store(prev) }
}

// SetRedactableLogs controls whether redaction markers are kept in log
// entries, and returns a function restoring the previous setting.
func SetRedactableLogs(enabled bool) (restore func()) {
	prev := mainLog.redactable.Swap(enabled)
	return func() { mainLog.redactable.Store(prev) }
}

// V returns true if the configured verbosity is at least level.
func V(level int32) bool {
	return mainLog.verbosity.Load() >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	mainLog.output(ctx, INFO, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	mainLog.output(ctx, WARNING, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	mainLog.output(ctx, ERROR, format, args)
}

// VEventf logs to the INFO severity if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		mainLog.output(ctx, INFO, format, args)
	}
}

func (l *loggerT) output(ctx context.Context, sev Severity, format string, args []interface{}) {
	entry := makeEntry(ctx, sev, timeNow(), l.redactable.Load(), format, args)
	l.mu.Lock()
	defer l.mu.Unlock()
	// Errors writing log entries have nowhere to be reported.
	_, _ = io.WriteString(l.mu.w, entry)
}
