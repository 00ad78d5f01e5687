// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package stack

import (
	"testing"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/randutil"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestStackLIFO(t *testing.T) {
	var s Stack[string]
	require.True(t, s.Empty())
	for _, x := range []string{"a", "b", "c"} {
		s.Push(x)
	}
	require.Equal(t, 3, s.Len())
	require.Equal(t, "[c b a]", s.String())
	require.Equal(t, []string{"a", "b", "c"}, s.ToSlice())

	var popped []string
	for !s.Empty() {
		top, err := s.Top()
		require.NoError(t, err)
		popped = append(popped, top)
		require.NoError(t, s.Pop())
	}
	require.Equal(t, []string{"c", "b", "a"}, popped)
}

func TestStackEmpty(t *testing.T) {
	var s Stack[int]
	_, err := s.Top()
	require.True(t, errors.Is(err, container.ErrEmptyContainer))
	require.EqualError(t, err, "stack is empty")
	require.True(t, errors.Is(s.Pop(), container.ErrEmptyContainer))
	require.Equal(t, 0, s.Len())
	require.Equal(t, []int{}, s.ToSlice())
}

func TestStackClear(t *testing.T) {
	var s Stack[*int]
	x := 1
	for i := 0; i < 4; i++ {
		s.Push(&x)
	}
	backing := s.items[:cap(s.items)]
	s.Clear()
	require.True(t, s.Empty())
	for _, p := range backing {
		require.Nil(t, p)
	}
	s.Push(&x)
	require.Equal(t, 1, s.Len())
}

func TestStackPopReleasesReference(t *testing.T) {
	var s Stack[*int]
	x, y := 1, 2
	s.Push(&x)
	s.Push(&y)
	require.NoError(t, s.Pop())
	require.Nil(t, s.items[:2][1])
	top, err := s.Top()
	require.NoError(t, err)
	require.Same(t, &x, top)
}

func TestStackRandomOps(t *testing.T) {
	rng, _ := randutil.NewTestRand()
	var s Stack[int]
	var ref []int
	for i := 0; i < 1000; i++ {
		switch rng.Intn(5) {
		case 0, 1, 2:
			s.Push(i)
			ref = append(ref, i)
		case 3:
			err := s.Pop()
			if len(ref) == 0 {
				require.True(t, errors.Is(err, container.ErrEmptyContainer))
				continue
			}
			require.NoError(t, err)
			ref = ref[:len(ref)-1]
		case 4:
			top, err := s.Top()
			if len(ref) == 0 {
				require.Error(t, err)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, ref[len(ref)-1], top)
		}
		require.Equal(t, len(ref), s.Len())
	}
	if len(ref) == 0 {
		ref = []int{}
	}
	require.Equal(t, ref, s.ToSlice())
}
