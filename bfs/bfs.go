// Package bfs provides breadth-first search over an implicit graph,
// returning shortest paths, depth layering, and parent links.
//
// Search stops at the first discovery of the goal; Walk exhausts the
// reachable component. Both accept the same hooks and filter.
package bfs

import (
	"context"
	"fmt"
)

// searcher encapsulates mutable state of one goal-directed search.
type searcher[S comparable] struct {
	expand   Expander[S]
	goal     S
	opts     Options[S]
	ctx      context.Context
	frontier *frontier[S]
	explored map[S]struct{}
	parent   map[S]S
}

// Search runs breadth-first search from start until goal is discovered or
// the reachable space is exhausted, applying any number of functional Options.
//
// The returned Result has Found == false and a nil error when the frontier
// empties without reaching goal. Errors are reserved for ErrNilExpander,
// context cancellation, and user-supplied OnVisit errors.
func Search[S comparable](start, goal S, expand Expander[S], opts ...Option[S]) (*Result[S], error) {
	if expand == nil {
		return nil, ErrNilExpander
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	// Start is already the goal: one-state path, nothing to explore.
	if start == goal {
		return &Result[S]{Found: true, Path: []S{start}}, nil
	}

	s := &searcher[S]{
		expand:   expand,
		goal:     goal,
		opts:     o,
		ctx:      o.Ctx,
		frontier: newFrontier[S](16),
		explored: make(map[S]struct{}),
		parent:   make(map[S]S),
	}
	s.enqueue(start, 0)

	return s.loop()
}

// enqueue appends st to the frontier and fires OnEnqueue.
func (s *searcher[S]) enqueue(st S, depth int) {
	s.opts.OnEnqueue(st, depth)
	s.frontier.push(st, depth)
}

// loop expands the frontier head until the goal is discovered, the frontier
// empties, or the context is cancelled.
func (s *searcher[S]) loop() (*Result[S], error) {
	for !s.frontier.empty() {
		// cancellation check (once per loop)
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		default:
		}

		item := s.frontier.pop()
		s.opts.OnDequeue(item.state, item.depth)
		s.explored[item.state] = struct{}{}
		if err := s.opts.OnVisit(item.state, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
		}

		for _, next := range s.expand(item.state) {
			// cancellation check inside successor iteration
			select {
			case <-s.ctx.Done():
				return nil, s.ctx.Err()
			default:
			}

			if !s.opts.Filter(item.state, next) {
				continue
			}
			if _, seen := s.explored[next]; seen || s.frontier.contains(next) {
				continue
			}

			// next is undiscovered, so this is its only parent write
			s.parent[next] = item.state
			if next == s.goal {
				return s.found(next), nil
			}
			s.enqueue(next, item.depth+1)
		}
	}

	return &Result[S]{
		Found:      false,
		Expanded:   len(s.explored),
		Discovered: len(s.parent),
	}, nil
}

// found walks parent links from goal back to the start state.
func (s *searcher[S]) found(goal S) *Result[S] {
	path := []S{goal}
	for cur := goal; ; {
		prev, ok := s.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}

	return &Result[S]{
		Found:      true,
		Path:       path,
		Expanded:   len(s.explored),
		Discovered: len(s.parent),
	}
}
