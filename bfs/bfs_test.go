package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivercross/bfs"
)

// adjacency turns a static successor table into an Expander.
func adjacency(m map[int][]int) bfs.Expander[int] {
	return func(n int) []int { return m[n] }
}

// TestSearch_Errors verifies that a nil expander is rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := bfs.Search(0, 1, nil); !errors.Is(err, bfs.ErrNilExpander) {
		t.Errorf("nil expander: want ErrNilExpander, got %v", err)
	}
	if _, err := bfs.Walk(0, nil); !errors.Is(err, bfs.ErrNilExpander) {
		t.Errorf("Walk nil expander: want ErrNilExpander, got %v", err)
	}
}

// TestSearch_StartIsGoal covers the trivial one-state path.
func TestSearch_StartIsGoal(t *testing.T) {
	expanded := false
	res, err := bfs.Search(7, 7, func(int) []int { expanded = true; return nil })
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []int{7}, res.Path)
	require.Equal(t, 0, res.Moves())
	require.Zero(t, res.Expanded)
	require.False(t, expanded, "expander must not run when start is the goal")
}

// TestSearch_ShortestPath picks the shorter of two competing routes and
// returns it goal-first.
func TestSearch_ShortestPath(t *testing.T) {
	// Route1: 0–1–2–3–9 (4 hops), Route2: 0–4–5–9 (3 hops)
	g := adjacency(map[int][]int{
		0: {1, 4},
		1: {2},
		2: {3},
		3: {9},
		4: {5},
		5: {9},
	})
	res, err := bfs.Search(0, 9, g)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []int{9, 5, 4, 0}, res.Path)
	require.Equal(t, []int{0, 4, 5, 9}, res.Forward())
	require.Equal(t, 3, res.Moves())
}

// TestSearch_Exhaustion reports an unreachable goal as a result, not an error.
func TestSearch_Exhaustion(t *testing.T) {
	g := adjacency(map[int][]int{
		0: {1, 2},
		1: {0, 3},
		2: {3},
	})
	res, err := bfs.Search(0, 42, g)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Empty(t, res.Path)
	require.Empty(t, res.Forward())
	require.Equal(t, -1, res.Moves())
	// whole component {0,1,2,3} drained before giving up
	require.Equal(t, 4, res.Expanded)
	require.Equal(t, 3, res.Discovered)
}

// TestSearch_GoalTestOnDiscovery stops as soon as the goal is generated,
// without expanding the rest of the frontier.
func TestSearch_GoalTestOnDiscovery(t *testing.T) {
	g := adjacency(map[int][]int{
		0: {1, 2},
		1: {3},
		2: {4},
	})
	var dequeued []int
	res, err := bfs.Search(0, 3, g, bfs.WithOnDequeue(func(n, _ int) { dequeued = append(dequeued, n) }))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []int{0, 1}, dequeued)
	require.Equal(t, 2, res.Expanded)
	require.Equal(t, 3, res.Discovered)
}

// TestSearch_FirstDiscoveryWins ensures a state reached by two parents keeps
// the first one and is enqueued only once.
func TestSearch_FirstDiscoveryWins(t *testing.T) {
	g := adjacency(map[int][]int{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {4},
	})
	enqueued := map[int]int{}
	res, err := bfs.Search(0, 4, g, bfs.WithOnEnqueue(func(n, _ int) { enqueued[n]++ }))
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 1, 0}, res.Path)
	for n, count := range enqueued {
		if count != 1 {
			t.Errorf("state %d enqueued %d times; want 1", n, count)
		}
	}
}

// TestSearch_SelfLoopAndDuplicates ensures loops and repeated successors do
// not enqueue twice.
func TestSearch_SelfLoopAndDuplicates(t *testing.T) {
	g := adjacency(map[int][]int{
		0: {0, 1, 1},
		1: {1, 0, 2},
	})
	var enq []int
	res, err := bfs.Search(0, 2, g, bfs.WithOnEnqueue(func(n, _ int) { enq = append(enq, n) }))
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, res.Path)
	if want := []int{0, 1}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueued = %v; want %v", enq, want)
	}
}

// TestSearch_Determinism runs the same search repeatedly.
func TestSearch_Determinism(t *testing.T) {
	expand := func(n int) []int {
		var out []int
		for _, next := range []int{n + 1, n * 2} {
			if next <= 20 {
				out = append(out, next)
			}
		}
		return out
	}
	first, err := bfs.Search(1, 10, expand)
	require.NoError(t, err)
	require.Equal(t, []int{10, 5, 4, 2, 1}, first.Path)
	require.Equal(t, 6, first.Expanded)
	require.Equal(t, 9, first.Discovered)

	for i := 0; i < 10; i++ {
		again, err := bfs.Search(1, 10, expand)
		require.NoError(t, err)
		require.Equal(t, first, again, "run %d", i)
	}
}

// TestSearch_Filter shows how filtering prunes certain transitions.
func TestSearch_Filter(t *testing.T) {
	g := adjacency(map[int][]int{
		0: {1, 2},
		1: {3},
		2: {3},
	})
	res, err := bfs.Search(0, 3, g,
		bfs.WithFilter(func(curr, next int) bool { return !(curr == 1 && next == 3) }),
	)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 0}, res.Path)

	// pruning every way in makes the goal unreachable
	res, err = bfs.Search(0, 3, g, bfs.WithFilter(func(_, next int) bool { return next != 3 }))
	require.NoError(t, err)
	require.False(t, res.Found)
}

// TestSearch_Hooks asserts that hooks fire in the expected sequence and count.
func TestSearch_Hooks(t *testing.T) {
	g := adjacency(map[int][]int{0: {1}, 1: {2}})

	var enq, deq, vis []string
	makeEntry := func(prefix string, n, d int) string {
		return prefix + ":" + strconv.Itoa(n) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.Search(
		0, 2, g,
		bfs.WithOnEnqueue(func(n, d int) { enq = append(enq, makeEntry("e", n, d)) }),
		bfs.WithOnDequeue(func(n, d int) { deq = append(deq, makeEntry("d", n, d)) }),
		bfs.WithOnVisit(func(n, d int) error { vis = append(vis, makeEntry("v", n, d)); return nil }),
	)
	require.NoError(t, err)

	// the goal is discovered, never enqueued or visited
	if want := []string{"e:0@0", "e:1@1"}; !reflect.DeepEqual(enq, want) {
		t.Errorf("OnEnqueue = %v; want %v", enq, want)
	}
	if want := []string{"d:0@0", "d:1@1"}; !reflect.DeepEqual(deq, want) {
		t.Errorf("OnDequeue = %v; want %v", deq, want)
	}
	if want := []string{"v:0@0", "v:1@1"}; !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit = %v; want %v", vis, want)
	}
}

// TestSearch_OnVisitAbort propagates a hook error wrapped with the state.
func TestSearch_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop here")
	g := adjacency(map[int][]int{0: {1}, 1: {2}, 2: {3}})
	_, err := bfs.Search(0, 3, g, bfs.WithOnVisit(func(n, _ int) error {
		if n == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	if !strings.Contains(err.Error(), "at 1") {
		t.Errorf("error %q does not name the state", err)
	}
}

// TestSearch_Cancellation verifies that a cancelled context halts the search
// even on an infinite graph.
func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	infinite := func(n int) []int { return []int{n + 1} }
	if _, err := bfs.Search(0, -1, infinite, bfs.WithContext[int](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
	if _, err := bfs.Walk(0, infinite, bfs.WithContext[int](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Walk cancellation: want context.Canceled, got %v", err)
	}
}

// TestSearch_CancelMidway cancels from inside a hook after a few expansions.
func TestSearch_CancelMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	infinite := func(n int) []int { return []int{n + 1} }
	_, err := bfs.Search(0, -1, infinite,
		bfs.WithContext[int](ctx),
		bfs.WithOnVisit(func(n, _ int) error {
			if n == 5 {
				cancel()
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
}

// TestSearch_StructStates uses a struct key, the way puzzle states do.
func TestSearch_StructStates(t *testing.T) {
	type cell struct{ x, y int }
	expand := func(c cell) []cell {
		var out []cell
		for _, d := range []cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
			n := cell{c.x + d.x, c.y + d.y}
			if n.x >= 0 && n.y >= 0 && n.x < 3 && n.y < 3 {
				out = append(out, n)
			}
		}
		return out
	}
	res, err := bfs.Search(cell{0, 0}, cell{2, 2}, expand)
	require.NoError(t, err)
	require.Equal(t, 4, res.Moves())
	require.Equal(t, []cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, res.Forward())
}

// TestWalk_OrderAndDepth checks layering of the full traversal.
func TestWalk_OrderAndDepth(t *testing.T) {
	expand := func(n int) []int {
		var out []int
		for _, next := range []int{n + 1, n * 2} {
			if next <= 8 {
				out = append(out, next)
			}
		}
		return out
	}
	res, err := bfs.Walk(1, expand)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 6, 5, 8, 7}, res.Order)
	wantDepth := map[int]int{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 8: 3, 7: 4}
	require.Equal(t, wantDepth, res.Depth)
	if _, ok := res.Parent[1]; ok {
		t.Errorf("start must have no parent")
	}
	require.Equal(t, 6, res.Parent[7])
}

// TestWalk_PathTo covers both trivial (start→start) and unreachable targets.
func TestWalk_PathTo(t *testing.T) {
	g := adjacency(map[int][]int{0: {1}, 1: {2}})
	res, err := bfs.Walk(0, g)
	require.NoError(t, err)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)

	path, err = res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)

	_, err = res.PathTo(99)
	require.ErrorIs(t, err, bfs.ErrUnreachable)
}

// TestSearch_ConcurrentSafety ensures concurrent searches do not share state.
func TestSearch_ConcurrentSafety(t *testing.T) {
	g := adjacency(map[int][]int{0: {1, 2}, 1: {3}, 2: {3}})
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := bfs.Search(0, 3, g)
			if err == nil && !reflect.DeepEqual(res.Path, []int{3, 1, 0}) {
				err = fmt.Errorf("path = %v", res.Path)
			}
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
