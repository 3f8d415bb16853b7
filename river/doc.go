// Package river models the missionaries-and-cannibals river-crossing puzzle
// and solves it with breadth-first search.
//
// A State is the triple (m, c, b): missionaries on the start bank, cannibals
// on the start bank, and the bank holding the boat. The boat carries between
// one and BoatCapacity people; a crossing is legal when, on both banks,
// missionaries are either absent or not outnumbered by cannibals.
//
//	start bank        river        far bank
//	  M M M  C C C   [boat]   ·
//
// The classic instance (three of each, a two-seat boat) starts at (3,3,1)
// and ends at (0,0,0); its shortest solution has 11 crossings.
//
// Expansion order
//
//	Puzzle.Expand tries loads in a fixed order. For a two-seat boat that is:
//	1 missionary, 2 missionaries, 1 cannibal, 2 cannibals, 1 of each.
//	Larger boats extend the list with missionaries-only loads, then
//	cannibals-only loads, then mixed loads by ascending size (more
//	missionaries first). The order fixes which shortest path Solve reports.
//
// Usage
//
//	sol, err := river.SolveClassic(ctx)
//	if err != nil { /* cancellation only */ }
//	if !sol.Found { /* provably no solution */ }
//	for _, mv := range sol.Moves() {
//	    fmt.Println(mv)
//	}
//
// Errors
//
//   - ErrInvalidConfig for negative counts or a boat that seats nobody.
//   - Context errors from a cancelled Solve or Space.
//
// Exhaustion (no solution) is reported through Solution.Found, never as an
// error.
package river
