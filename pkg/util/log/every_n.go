// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"sync"
	"time"
)

// EveryN provides a way to rate limit spammy log messages. It tracks how
// recently a given log message has been emitted so that it can determine
// whether it's worth logging again.
type EveryN struct {
	n  time.Duration
	mu struct {
		sync.Mutex
		lastLogged time.Time
	}
}

// Every is a convenience constructor for an EveryN object that allows a log
// message every n duration. The first interval starts when Every is called.
func Every(n time.Duration) *EveryN {
	e := &EveryN{n: n}
	e.mu.lastLogged = timeNow()
	return e
}

// ShouldLog returns whether it's been more than N time since the last event.
func (e *EveryN) ShouldLog() bool {
	return e.shouldLog(timeNow())
}

func (e *EveryN) shouldLog(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if now.Sub(e.mu.lastLogged) < e.n {
		return false
	}
	e.mu.lastLogged = now
	return true
}
