// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package containerscript interprets a line-oriented command language over
// the generic containers, for use in datadriven tests and in the ctrscript
// tool.
//
// A Session holds one container of each kind, with string elements. A
// script line names the container kind followed by an operation and its
// arguments:
//
//	vector push-back a b c
//	vector insert 1 x
//	list backward
//	queue pop
//
// Errors returned by the containers are part of the output; they do not
// stop the session.
package containerscript

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/container/list"
	"github.com/cockroachdb/containers/pkg/util/container/vector"
	"github.com/cockroachdb/containers/pkg/util/queue"
	"github.com/cockroachdb/containers/pkg/util/stack"
	"github.com/cockroachdb/errors"
)

// Container kinds understood by a Session.
const (
	KindVector = "vector"
	KindList   = "list"
	KindQueue  = "queue"
	KindStack  = "stack"
)

// Session is the state of a script: one container of each kind.
type Session struct {
	initialCapacity int

	vector *vector.Vector[string]
	list   *list.List[string]
	queue  *queue.Queue[string]
	stack  *stack.Stack[string]
}

// Option configures a Session.
type Option func(s *Session)

// WithInitialCapacity sets the capacity the vector and the queue are created
// with when the script does not specify one.
func WithInitialCapacity(n int) Option {
	return func(s *Session) {
		s.initialCapacity = n
	}
}

// NewSession returns a Session with empty containers.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.initialCapacity < 0 {
		return nil, container.NewInvalidArgumentf(
			"initial capacity %d must be non-negative", s.initialCapacity)
	}
	var err error
	if s.vector, err = vector.New[string](s.initialCapacity); err != nil {
		return nil, err
	}
	if s.queue, err = queue.NewQueue(queue.WithInitialCapacity[string](s.initialCapacity)); err != nil {
		return nil, err
	}
	s.list = list.New[string]()
	s.stack = &stack.Stack[string]{}
	return s, nil
}

// Render formats the result of Exec or ExecLine for display.
func Render(out string, err error) string {
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}

// ExecLine runs a single line of the form "<kind> <op> [args...]".
func (s *Session) ExecLine(line string) (string, error) {
	kind, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	return s.Exec(kind, rest)
}

// Exec runs a single operation line "<op> [args...]" against the container
// of the given kind, and returns its output.
func (s *Session) Exec(kind, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", container.NewInvalidArgumentf("%s: missing operation", kind)
	}
	cmd := command{kind: kind, op: fields[0], args: fields[1:]}
	switch kind {
	case KindVector:
		return s.execVector(cmd)
	case KindList:
		return s.execList(cmd)
	case KindQueue:
		return s.execQueue(cmd)
	case KindStack:
		return s.execStack(cmd)
	default:
		return "", container.NewInvalidArgumentf("unknown container kind %q", kind)
	}
}

// command is a parsed operation line.
type command struct {
	kind string
	op   string
	args []string
}

func (c command) unknown(ops map[string]struct{}) error {
	known := make([]string, 0, len(ops))
	for op := range ops {
		known = append(known, op)
	}
	sort.Strings(known)
	return errors.WithHintf(
		container.NewInvalidArgumentf("%s: unknown operation %q", c.kind, c.op),
		"supported operations: %s", strings.Join(known, ", "))
}

// expect checks the number of arguments, which must lie in [lo, hi].
func (c command) expect(lo, hi int) error {
	if n := len(c.args); n < lo || n > hi {
		if lo == hi {
			return container.NewInvalidArgumentf("%s %s: expected %d argument(s), got %d", c.kind, c.op, lo, n)
		}
		return container.NewInvalidArgumentf("%s %s: expected %d to %d arguments, got %d", c.kind, c.op, lo, hi, n)
	}
	return nil
}

// atLeastOne checks that the command has at least one argument.
func (c command) atLeastOne() error {
	if len(c.args) == 0 {
		return container.NewInvalidArgumentf("%s %s: expected at least one argument", c.kind, c.op)
	}
	return nil
}

// intArg parses the i-th argument as an integer.
func (c command) intArg(i int) (int, error) {
	n, err := strconv.Atoi(c.args[i])
	if err != nil {
		return 0, container.NewInvalidArgumentf("%s %s: invalid integer %q", c.kind, c.op, c.args[i])
	}
	return n, nil
}

// optionalIntArg parses the first argument if present, and returns def
// otherwise.
func (c command) optionalIntArg(def int) (int, error) {
	if err := c.expect(0, 1); err != nil {
		return 0, err
	}
	if len(c.args) == 0 {
		return def, nil
	}
	return c.intArg(0)
}

func opSet(ops ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		m[op] = struct{}{}
	}
	return m
}
