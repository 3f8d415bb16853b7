// Package bfs provides breadth-first search over an implicitly defined graph:
// the caller supplies a start state and an Expander that lists the successors
// of any state, and the package does the rest.
//
// What
//
//   - Search finds a shortest path (fewest transitions) from a start state to
//     a goal state, or reports that the goal is unreachable.
//   - Walk traverses the whole reachable component and returns the visit
//     order, the depth of every state and its BFS-tree parent.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state joins the frontier)
//   - OnDequeue (immediately before expansion)
//   - OnVisit   (when expanding; may abort with an error)
//   - Allows pruning of individual transitions via WithFilter.
//
// Why
//
//   - Puzzles, planners and reachability checks rarely have an explicit
//     adjacency structure; their graph exists only as a successor function.
//   - States are any comparable Go type, so a small struct is used directly
//     as the key of the explored set and the parent map.
//
// Search semantics
//
//	The goal test happens when a state is first discovered, not when it is
//	dequeued. A successor is discovered only if it is in neither the explored
//	set nor the frontier; its parent is recorded once and never overwritten.
//	When the frontier empties without reaching the goal the result has
//	Found == false and a nil error: exhaustion is an answer, not a failure.
//
//	All bookkeeping (frontier, frontier membership set, explored set, parent
//	map) is local to one call. Result keeps only the outcome, the path and
//	two counters.
//
// Determinism
//
//	The frontier is FIFO and successors are processed in the order the
//	Expander returns them, so a deterministic Expander yields the same path
//	on every run, even when several shortest paths exist.
//
// Complexity (V = reachable states, E = transitions among them)
//
//   - Time:   O(V + E)   (each state expanded at most once)
//   - Memory: O(V)       (frontier, membership set, explored set, parent map)
//
// Usage
//
//	res, err := bfs.Search(start, goal, expand)
//	if err != nil {
//	    // ErrNilExpander, context errors, or a wrapped OnVisit error
//	}
//	if res.Found {
//	    fmt.Println(res.Forward()) // start → goal
//	}
//
//	// With functional options:
//	res, err := bfs.Search(
//	    start, goal, expand,
//	    bfs.WithContext(ctx),
//	    bfs.WithFilter(func(curr, next State) bool { return next != forbidden }),
//	    bfs.WithOnEnqueue(func(s State, depth int) { /* ... */ }),
//	    bfs.WithOnDequeue(func(s State, depth int) { /* ... */ }),
//	    bfs.WithOnVisit(func(s State, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrNilExpander  if expand is nil.
//   - ErrUnreachable  from WalkResult.PathTo for a state never reached.
//   - ctx.Err()       when the context is cancelled mid-search.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
