package river

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rivercross/bfs"
)

// Transition is one legal crossing between reachable states.
type Transition struct {
	From, To State
	Load     Load
}

// StateSpace is the component of the state graph reachable from Start.
type StateSpace struct {
	// States in breadth-first visit order; States[0] is Start.
	States []State

	// Depth is the fewest crossings needed to reach each state.
	Depth map[State]int

	// Transitions lists every legal crossing out of every reachable state,
	// grouped by source in visit order and by load order within a source.
	Transitions []Transition
}

// Contains reports whether s is reachable.
func (sp *StateSpace) Contains(s State) bool {
	_, ok := sp.Depth[s]
	return ok
}

// MaxDepth is the depth of the farthest reachable state.
func (sp *StateSpace) MaxDepth() int {
	deepest := 0
	for _, d := range sp.Depth {
		deepest = max(deepest, d)
	}
	return deepest
}

// Space enumerates every state reachable from p.Start.
func Space(ctx context.Context, p *Puzzle) (*StateSpace, error) {
	var transitions []Transition
	res, err := bfs.Walk(p.Start(), p.Expand,
		bfs.WithContext[State](ctx),
		bfs.WithOnVisit(func(s State, _ int) error {
			for _, l := range p.loads {
				if n := cross(s, l); p.Legal(n) {
					transitions = append(transitions, Transition{From: s, To: n, Load: l})
				}
			}
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("river: state space %s: %w", p.cfg, err)
	}

	return &StateSpace{
		States:      res.Order,
		Depth:       res.Depth,
		Transitions: transitions,
	}, nil
}
