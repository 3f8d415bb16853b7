// Package rivercross solves the missionaries-and-cannibals river-crossing
// puzzle by breadth-first search over its implicit state graph.
//
// What is in here?
//
//   - bfs: generic breadth-first Search (goal-directed, shortest path)
//     and Walk (full traversal) over any comparable state type
//   - river: puzzle states, boat loads, legality rules, Solve and Space
//   - render: DOT and SVG drawings of the reachable state space
//   - cmd/rivercross: the command-line front end
//
// Quick ASCII picture of the classic instance:
//
//	start bank  ~~~~~~~~ river ~~~~~~~~  far bank
//	M M M                                  ·
//	C C C   [boat]                         ·
//
// Three missionaries and three cannibals must cross in a two-seat boat;
// cannibals may never outnumber missionaries on a bank where missionaries
// stand. The shortest solution takes 11 crossings:
//
//	sol, _ := river.SolveClassic(ctx)
//	fmt.Println(sol.Crossings()) // 11
//
//	go install github.com/katalvlaran/rivercross/cmd/rivercross@latest
package rivercross
