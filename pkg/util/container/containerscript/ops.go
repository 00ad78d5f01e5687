// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package containerscript

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/container/list"
	"github.com/cockroachdb/containers/pkg/util/container/vector"
	"github.com/cockroachdb/containers/pkg/util/queue"
	"github.com/cockroachdb/containers/pkg/util/stack"
	"github.com/cockroachdb/redact"
)

var (
	vectorOps = opSet("new", "push-back", "pop-back", "insert", "erase", "at", "get", "set",
		"front", "back", "reserve", "shrink", "resize", "clear", "len", "cap", "empty", "values", "bounds")
	listOps = opSet("new", "push-front", "push-back", "pop-front", "pop-back", "insert", "erase",
		"at", "front", "back", "clear", "len", "empty", "values", "backward")
	queueOps = opSet("new", "push", "pop", "front", "back", "clear", "len", "empty", "values")
	stackOps = opSet("new", "push", "pop", "top", "clear", "len", "empty", "values")
)

// mutated returns the rendered state if err is nil.
func mutated(err error, state func() string) (string, error) {
	if err != nil {
		return "", err
	}
	return state(), nil
}

// checkNoArgs is shared by the operations that take no argument.
func checkNoArgs(c command) error {
	return c.expect(0, 0)
}

// query runs out for an operation that takes no argument and returns its
// result.
func query(c command, out func() string) (string, error) {
	if err := checkNoArgs(c); err != nil {
		return "", err
	}
	return out(), nil
}

// seqFormatter prints a sequence the way the containers print themselves.
type seqFormatter iter.Seq[string]

// SafeFormat implements redact.SafeFormatter.
func (f seqFormatter) SafeFormat(w redact.SafePrinter, _ rune) {
	container.FormatValues(w, iter.Seq[string](f))
}

func (s *Session) execVector(c command) (string, error) {
	state := func() string {
		return fmt.Sprintf("%s len=%d cap=%d", s.vector, s.vector.Len(), s.vector.Cap())
	}
	v := s.vector
	switch c.op {
	case "new":
		n, err := c.optionalIntArg(s.initialCapacity)
		if err != nil {
			return "", err
		}
		nv, err := vector.New[string](n)
		if err != nil {
			return "", err
		}
		s.vector = nv
		return state(), nil
	case "push-back":
		if err := c.atLeastOne(); err != nil {
			return "", err
		}
		for _, a := range c.args {
			v.PushBack(a)
		}
		return state(), nil
	case "pop-back":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return mutated(v.PopBack(), state)
	case "insert", "set":
		if err := c.expect(2, 2); err != nil {
			return "", err
		}
		i, err := c.intArg(0)
		if err != nil {
			return "", err
		}
		if c.op == "insert" {
			return mutated(v.Insert(i, c.args[1]), state)
		}
		return mutated(v.Set(i, c.args[1]), state)
	case "erase":
		if err := c.expect(1, 1); err != nil {
			return "", err
		}
		i, err := c.intArg(0)
		if err != nil {
			return "", err
		}
		return mutated(v.Erase(i), state)
	case "at", "get":
		if err := c.expect(1, 1); err != nil {
			return "", err
		}
		i, err := c.intArg(0)
		if err != nil {
			return "", err
		}
		if c.op == "at" {
			return v.At(i)
		}
		return v.Get(i)
	case "front":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return v.Front()
	case "back":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return v.Back()
	case "reserve":
		if err := c.expect(1, 1); err != nil {
			return "", err
		}
		n, err := c.intArg(0)
		if err != nil {
			return "", err
		}
		return mutated(v.Reserve(n), state)
	case "shrink":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		v.ShrinkToFit()
		return state(), nil
	case "resize":
		if err := c.expect(2, 2); err != nil {
			return "", err
		}
		n, err := c.intArg(0)
		if err != nil {
			return "", err
		}
		return mutated(v.Resize(n, c.args[1]), state)
	case "clear":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		v.Clear()
		return state(), nil
	case "len":
		return query(c, func() string { return strconv.Itoa(v.Len()) })
	case "cap":
		return query(c, func() string { return strconv.Itoa(v.Cap()) })
	case "empty":
		return query(c, func() string { return strconv.FormatBool(v.Empty()) })
	case "values":
		return query(c, func() string { return v.String() })
	case "bounds":
		return query(c, func() string { return fmt.Sprintf("begin=%d end=%d", v.Begin(), v.End()) })
	default:
		return "", c.unknown(vectorOps)
	}
}

func (s *Session) execList(c command) (string, error) {
	state := func() string {
		return fmt.Sprintf("%s len=%d", s.list, s.list.Len())
	}
	l := s.list
	switch c.op {
	case "new":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		s.list = list.New[string]()
		return state(), nil
	case "push-front", "push-back":
		if err := c.atLeastOne(); err != nil {
			return "", err
		}
		for _, a := range c.args {
			if c.op == "push-front" {
				l.PushFront(a)
			} else {
				l.PushBack(a)
			}
		}
		return state(), nil
	case "pop-front":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return mutated(l.PopFront(), state)
	case "pop-back":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return mutated(l.PopBack(), state)
	case "insert":
		if err := c.expect(2, 2); err != nil {
			return "", err
		}
		i, err := c.intArg(0)
		if err != nil {
			return "", err
		}
		return mutated(l.Insert(i, c.args[1]), state)
	case "erase":
		if err := c.expect(1, 1); err != nil {
			return "", err
		}
		i, err := c.intArg(0)
		if err != nil {
			return "", err
		}
		return mutated(l.Erase(i), state)
	case "at":
		if err := c.expect(1, 1); err != nil {
			return "", err
		}
		i, err := c.intArg(0)
		if err != nil {
			return "", err
		}
		return l.At(i)
	case "front":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return l.Front()
	case "back":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return l.Back()
	case "clear":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		l.Clear()
		return state(), nil
	case "len":
		return query(c, func() string { return strconv.Itoa(l.Len()) })
	case "empty":
		return query(c, func() string { return strconv.FormatBool(l.Empty()) })
	case "values":
		return query(c, func() string { return l.String() })
	case "backward":
		return query(c, func() string { return redact.StringWithoutMarkers(seqFormatter(l.Backward())) })
	default:
		return "", c.unknown(listOps)
	}
}

func (s *Session) execQueue(c command) (string, error) {
	state := func() string {
		return fmt.Sprintf("%s len=%d", s.queue, s.queue.Len())
	}
	q := s.queue
	switch c.op {
	case "new":
		n, err := c.optionalIntArg(s.initialCapacity)
		if err != nil {
			return "", err
		}
		nq, err := queue.NewQueue(queue.WithInitialCapacity[string](n))
		if err != nil {
			return "", err
		}
		s.queue = nq
		return state(), nil
	case "push":
		if err := c.atLeastOne(); err != nil {
			return "", err
		}
		for _, a := range c.args {
			q.Push(a)
		}
		return state(), nil
	case "pop":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return mutated(q.Pop(), state)
	case "front":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return q.Front()
	case "back":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return q.Back()
	case "clear":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		q.Clear()
		return state(), nil
	case "len":
		return query(c, func() string { return strconv.Itoa(q.Len()) })
	case "empty":
		return query(c, func() string { return strconv.FormatBool(q.Empty()) })
	case "values":
		return query(c, func() string { return q.String() })
	default:
		return "", c.unknown(queueOps)
	}
}

func (s *Session) execStack(c command) (string, error) {
	state := func() string {
		return fmt.Sprintf("%s len=%d", s.stack, s.stack.Len())
	}
	st := s.stack
	switch c.op {
	case "new":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		s.stack = &stack.Stack[string]{}
		return state(), nil
	case "push":
		if err := c.atLeastOne(); err != nil {
			return "", err
		}
		for _, a := range c.args {
			st.Push(a)
		}
		return state(), nil
	case "pop":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return mutated(st.Pop(), state)
	case "top":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		return st.Top()
	case "clear":
		if err := checkNoArgs(c); err != nil {
			return "", err
		}
		st.Clear()
		return state(), nil
	case "len":
		return query(c, func() string { return strconv.Itoa(st.Len()) })
	case "empty":
		return query(c, func() string { return strconv.FormatBool(st.Empty()) })
	case "values":
		return query(c, func() string { return st.String() })
	default:
		return "", c.unknown(stackOps)
	}
}
