// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package list

import (
	"testing"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/randutil"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// checkInvariants verifies the links of every node and that the size
// matches the number of reachable nodes in both directions.
func checkInvariants[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.size == 0 {
		require.Nil(t, l.head)
		require.Nil(t, l.tail)
		return
	}
	require.Nil(t, l.head.prev)
	require.Nil(t, l.tail.next)
	count := 0
	for n := l.head; n != nil; n = n.next {
		if n.next != nil {
			require.Same(t, n, n.next.prev)
		} else {
			require.Same(t, l.tail, n)
		}
		count++
	}
	require.Equal(t, l.size, count)
}

func backward[T any](l *List[T]) []T {
	var out []T
	for v := range l.Backward() {
		out = append(out, v)
	}
	return out
}

func TestListBasic(t *testing.T) {
	l := New[int]()
	require.True(t, l.Empty())
	require.Equal(t, 0, l.Len())

	l.PushFront(1)
	l.PushFront(2)
	require.Equal(t, 2, l.Len())
	front, err := l.Front()
	require.NoError(t, err)
	require.Equal(t, 2, front)
	back, err := l.Back()
	require.NoError(t, err)
	require.Equal(t, 1, back)
	checkInvariants(t, l)

	l.Clear()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	require.NoError(t, l.PopFront())
	require.Equal(t, []int{2, 3}, l.ToSlice())
	require.NoError(t, l.PopBack())
	require.Equal(t, []int{2}, l.ToSlice())
	checkInvariants(t, l)

	require.NoError(t, l.PopBack())
	require.True(t, l.Empty())
	checkInvariants(t, l)
}

func TestListMixedEnds(t *testing.T) {
	var l List[int]
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	l.PushFront(0)
	require.Equal(t, []int{0, 1, 2, 3}, l.ToSlice())

	require.NoError(t, l.PopFront())
	require.NoError(t, l.PopBack())
	require.Equal(t, []int{1, 2}, l.ToSlice())
	require.Equal(t, []int{2, 1}, backward(&l))
	checkInvariants(t, &l)
}

func TestListInsertErase(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		var l List[int]
		l.PushBack(1)
		l.PushBack(3)
		l.PushBack(5)
		require.NoError(t, l.Insert(1, 2))
		require.NoError(t, l.Insert(3, 4))
		require.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())
		checkInvariants(t, &l)
	})

	t.Run("insert-ends", func(t *testing.T) {
		var l List[int]
		l.PushBack(3)
		require.NoError(t, l.Insert(0, 1))
		require.NoError(t, l.Insert(1, 2))
		require.NoError(t, l.Insert(3, 4))
		require.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
		checkInvariants(t, &l)
	})

	t.Run("erase", func(t *testing.T) {
		var l List[int]
		for i := 1; i <= 5; i++ {
			l.PushBack(i)
		}
		require.NoError(t, l.Erase(2))
		require.Equal(t, []int{1, 2, 4, 5}, l.ToSlice())
		require.NoError(t, l.Erase(0))
		require.Equal(t, []int{2, 4, 5}, l.ToSlice())
		require.NoError(t, l.Erase(2))
		require.Equal(t, []int{2, 4}, l.ToSlice())
		checkInvariants(t, &l)
	})

	t.Run("round-trip", func(t *testing.T) {
		var l List[int]
		l.PushBack(1)
		l.PushBack(2)
		l.PushBack(3)
		require.NoError(t, l.Insert(1, 99))
		require.Equal(t, []int{1, 99, 2, 3}, l.ToSlice())
		require.NoError(t, l.Erase(1))
		require.Equal(t, []int{1, 2, 3}, l.ToSlice())
		require.Equal(t, []int{3, 2, 1}, backward(&l))
		checkInvariants(t, &l)
	})
}

func TestListAt(t *testing.T) {
	var l List[int]
	const n = 9
	for i := 0; i < n; i++ {
		l.PushBack(i * 10)
	}
	// Covers both traversal directions.
	for i := 0; i < n; i++ {
		v, err := l.At(i)
		require.NoError(t, err)
		require.Equal(t, i*10, v)
	}
}

func TestListIteration(t *testing.T) {
	var l List[int]
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}
	var forward []int
	for v := range l.Values() {
		forward = append(forward, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, forward)
	require.Equal(t, []int{4, 3, 2, 1, 0}, backward(&l))

	// Each call restarts from the current ends.
	l.PushFront(-1)
	require.Equal(t, []int{-1, 0, 1, 2, 3, 4}, l.ToSlice())
	require.Equal(t, []int{4, 3, 2, 1, 0, -1}, backward(&l))

	var firstTwo []int
	for v := range l.Backward() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	require.Equal(t, []int{4, 3}, firstTwo)
}

func TestListClear(t *testing.T) {
	var l List[int]
	for i := 0; i < 3; i++ {
		l.PushBack(i)
	}
	nodes := []*node[int]{l.head, l.head.next, l.tail}
	l.Clear()
	require.True(t, l.Empty())
	checkInvariants(t, &l)
	for _, n := range nodes {
		require.Nil(t, n.next)
		require.Nil(t, n.prev)
	}
	l.PushBack(7)
	require.Equal(t, []int{7}, l.ToSlice())
}

func TestListErrors(t *testing.T) {
	var l List[int]

	for _, fn := range []func() error{
		l.PopFront,
		l.PopBack,
		func() error { _, err := l.Front(); return err },
		func() error { _, err := l.Back(); return err },
	} {
		err := fn()
		require.True(t, errors.Is(err, container.ErrEmptyContainer), "%v", err)
		require.EqualError(t, err, "list is empty")
		require.Equal(t, 0, l.Len())
		checkInvariants(t, &l)
	}

	err := l.Insert(1, 0)
	require.True(t, errors.Is(err, container.ErrIndexOutOfRange))
	require.EqualError(t, err, "list: index 1 out of range [0,1)")
	require.True(t, errors.Is(l.Insert(-1, 0), container.ErrIndexOutOfRange))
	require.True(t, errors.Is(l.Erase(0), container.ErrIndexOutOfRange))

	l.PushBack(1)
	_, err = l.At(1)
	require.True(t, errors.Is(err, container.ErrIndexOutOfRange))
	_, err = l.At(-1)
	require.True(t, errors.Is(err, container.ErrIndexOutOfRange))
	require.True(t, errors.Is(l.Erase(1), container.ErrIndexOutOfRange))
	require.Equal(t, []int{1}, l.ToSlice())
}

func TestListFormat(t *testing.T) {
	var l List[string]
	l.PushBack("x")
	l.PushBack("y")
	require.Equal(t, "[x y]", l.String())
}

// TestListRandomOps applies random operations to a List and to a plain
// slice and checks that both traversal directions agree with the slice.
func TestListRandomOps(t *testing.T) {
	rng, _ := randutil.NewTestRand()

	var l List[int]
	var ref []int
	for i := 0; i < 1000; i++ {
		switch rng.Intn(6) {
		case 0:
			x := rng.Intn(1000)
			l.PushFront(x)
			ref = slices.Insert(ref, 0, x)
		case 1:
			x := rng.Intn(1000)
			l.PushBack(x)
			ref = append(ref, x)
		case 2:
			if len(ref) > 0 {
				require.NoError(t, l.PopFront())
				ref = ref[1:]
			}
		case 3:
			if len(ref) > 0 {
				require.NoError(t, l.PopBack())
				ref = ref[:len(ref)-1]
			}
		case 4:
			x := rng.Intn(1000)
			idx := rng.Intn(len(ref) + 1)
			require.NoError(t, l.Insert(idx, x))
			ref = slices.Insert(ref, idx, x)
		case 5:
			if len(ref) > 0 {
				idx := rng.Intn(len(ref))
				v, err := l.At(idx)
				require.NoError(t, err)
				require.Equal(t, ref[idx], v)
				require.NoError(t, l.Erase(idx))
				ref = slices.Delete(ref, idx, idx+1)
			}
		}
		require.Equal(t, len(ref), l.Len())
	}
	checkInvariants(t, &l)
	if diff := cmp.Diff(ref, l.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("list diverged from reference (-want +got):\n%s", diff)
	}
	reversed := slices.Clone(ref)
	reverse(reversed)
	if diff := cmp.Diff(reversed, backward(&l), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("backward traversal diverged (-want +got):\n%s", diff)
	}
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func TestListProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("backward is the reverse of forward", prop.ForAll(
		func(xs []int, fronts []bool) bool {
			var l List[int]
			for i, x := range xs {
				if i < len(fronts) && fronts[i] {
					l.PushFront(x)
				} else {
					l.PushBack(x)
				}
			}
			fwd := l.ToSlice()
			bwd := backward(&l)
			if len(fwd) != l.Len() || len(bwd) != l.Len() {
				return false
			}
			reverse(bwd)
			return slices.Equal(fwd, bwd)
		},
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
