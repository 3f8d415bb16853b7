package bfs

import (
	"context"
	"fmt"
)

// walker encapsulates mutable state of a full traversal.
type walker[S comparable] struct {
	expand  Expander[S]
	opts    Options[S]
	ctx     context.Context
	queue   *frontier[S]
	visited map[S]bool
	res     *WalkResult[S]
}

// Walk traverses every state reachable from start in breadth-first order.
// Returns ErrNilExpander for a nil expander, ctx.Err() on cancellation,
// or any user-supplied hook error.
func Walk[S comparable](start S, expand Expander[S], opts ...Option[S]) (*WalkResult[S], error) {
	if expand == nil {
		return nil, ErrNilExpander
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[S]{
		expand:  expand,
		opts:    o,
		ctx:     o.Ctx,
		queue:   newFrontier[S](16),
		visited: make(map[S]bool),
		res: &WalkResult[S]{
			Order:  []S{},
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks st visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[S]) enqueue(st S, d int, parent *S) {
	w.visited[st] = true
	w.res.Depth[st] = d
	if parent != nil {
		w.res.Parent[st] = *parent
	}
	w.opts.OnEnqueue(st, d)
	w.queue.push(st, d)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for !w.queue.empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue.pop()
		w.opts.OnDequeue(item.state, item.depth)
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	return nil
}

// enqueueSuccessors expands item, applies filtering, and enqueues each
// unseen successor.
func (w *walker[S]) enqueueSuccessors(item queueItem[S]) error {
	for _, next := range w.expand(item.state) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.Filter(item.state, next) {
			continue
		}
		if !w.visited[next] {
			parent := item.state
			w.enqueue(next, item.depth+1, &parent)
		}
	}
	return nil
}
