// Package bfs provides tunable options, error definitions and result types
// for breadth-first search over an implicit graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilExpander is returned when no successor function is supplied.
	ErrNilExpander = errors.New("bfs: expander is nil")

	// ErrUnreachable is returned by PathTo for a state the walk never reached.
	ErrUnreachable = errors.New("bfs: state not reached")
)

// Expander lists the states reachable from s by exactly one transition.
// The order of the returned slice fixes the order in which successors are
// discovered, and therefore which shortest path Search reports.
type Expander[S comparable] func(s S) []S

// Option configures BFS behavior via functional arguments.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize BFS execution.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state joins the frontier.
	// Receives the state and its depth from the start.
	OnEnqueue func(s S, depth int)

	// OnDequeue is called immediately before a state is expanded.
	OnDequeue func(s S, depth int)

	// OnVisit is called when expanding a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// Filter can skip transitions by returning false.
	// Called for each successor curr→next before the duplicate check.
	Filter func(curr, next S) bool
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no filtering (all transitions allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:       context.Background(),
		OnEnqueue: func(S, int) {},
		OnDequeue: func(S, int) {},
		OnVisit:   func(S, int) error { return nil },
		Filter:    func(_, _ S) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
// The state type cannot be inferred from ctx, so callers instantiate it:
//
//	bfs.WithContext[State](ctx)
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilter skips transitions when fn returns false.
func WithFilter[S comparable](fn func(curr, next S) bool) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a goal-directed Search:
//   - Found: whether the goal was reached.
//   - Path: states from the goal back to the start (empty when not found).
//   - Expanded: number of states dequeued and expanded.
//   - Discovered: number of states given a parent link.
type Result[S comparable] struct {
	Found      bool
	Path       []S
	Expanded   int
	Discovered int
}

// Forward returns the path in start → goal order.
// The receiver's Path is left untouched.
func (r *Result[S]) Forward() []S {
	fwd := slices.Clone(r.Path)
	slices.Reverse(fwd)
	return fwd
}

// Moves reports the number of transitions on the path, or -1 if the goal
// was not reached.
func (r *Result[S]) Moves() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// WalkResult holds the outcome of a full BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in transitions) from the start.
//   - Parent: map from state to its predecessor in the BFS tree.
type WalkResult[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// PathTo reconstructs the path from the start state to dest.
// Returns an error wrapping ErrUnreachable if dest was not reached.
func (r *WalkResult[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	slices.Reverse(path)

	return path, nil
}
