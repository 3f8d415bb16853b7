package river

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/rivercross/bfs"
)

// Move is one crossing along a solution.
type Move struct {
	From, To State
	Load     Load
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s→%s %s", m.Load, m.From.Boat, m.To.Boat, m.To)
}

// Solution is the outcome of Solve.
type Solution struct {
	// Found is false when every reachable state was explored without
	// reaching the goal, which proves the instance unsolvable.
	Found bool

	// Path runs goal → start; empty when Found is false.
	Path []State

	// Expanded counts states dequeued and expanded.
	Expanded int

	// Discovered counts states given a parent link.
	Discovered int

	puzzle *Puzzle
}

// Forward returns the path in start → goal order.
func (s *Solution) Forward() []State {
	fwd := slices.Clone(s.Path)
	slices.Reverse(fwd)
	return fwd
}

// Crossings is the number of boat trips, or -1 without a solution.
func (s *Solution) Crossings() int {
	if !s.Found {
		return -1
	}
	return len(s.Path) - 1
}

// Moves describes each crossing in start → goal order. It panics if Path
// was edited into something that is not a chain of legal crossings.
func (s *Solution) Moves() []Move {
	fwd := s.Forward()
	if len(fwd) < 2 {
		return nil
	}
	moves := make([]Move, 0, len(fwd)-1)
	for i := 1; i < len(fwd); i++ {
		l, ok := s.puzzle.MoveBetween(fwd[i-1], fwd[i])
		if !ok {
			panic(fmt.Sprintf("river: no crossing from %v to %v", fwd[i-1], fwd[i]))
		}
		moves = append(moves, Move{From: fwd[i-1], To: fwd[i], Load: l})
	}
	return moves
}

// SolveOption configures Solve.
type SolveOption func(*solveOptions)

type solveOptions struct {
	logger *log.Logger
}

// WithLogger traces the search on l: one debug line per expansion and an
// info summary at the end.
func WithLogger(l *log.Logger) SolveOption {
	return func(o *solveOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Solve searches p from Start to Goal breadth-first. The error is non-nil
// only when ctx is cancelled.
func Solve(ctx context.Context, p *Puzzle, opts ...SolveOption) (*Solution, error) {
	var o solveOptions
	for _, opt := range opts {
		opt(&o)
	}

	searchOpts := []bfs.Option[State]{bfs.WithContext[State](ctx)}
	if o.logger != nil {
		searchOpts = append(searchOpts, bfs.WithOnDequeue(func(s State, depth int) {
			o.logger.Debug("expand", "state", s, "depth", depth)
		}))
	}

	res, err := bfs.Search(p.Start(), p.Goal(), p.Expand, searchOpts...)
	if err != nil {
		return nil, fmt.Errorf("river: solve %s: %w", p.cfg, err)
	}

	sol := &Solution{
		Found:      res.Found,
		Path:       res.Path,
		Expanded:   res.Expanded,
		Discovered: res.Discovered,
		puzzle:     p,
	}
	if o.logger != nil {
		o.logger.Info("search finished",
			"puzzle", p.cfg,
			"found", sol.Found,
			"crossings", sol.Crossings(),
			"expanded", sol.Expanded,
			"discovered", sol.Discovered,
		)
	}
	return sol, nil
}

// SolveClassic solves the 3/3/2 instance.
func SolveClassic(ctx context.Context, opts ...SolveOption) (*Solution, error) {
	return Solve(ctx, Classic(), opts...)
}
