package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/river"
)

func (c *CLI) solveCommand() *cobra.Command {
	var (
		flags   puzzleFlags
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the shortest crossing",
		Long: `Search the puzzle breadth-first and print the shortest sequence of crossings.
An unsolvable instance is reported as such; that is not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.puzzle(cmd)
			if err != nil {
				return err
			}
			start := time.Now()
			sol, err := river.Solve(cmd.Context(), p, river.WithLogger(c.Logger))
			if err != nil {
				return err
			}
			c.Logger.Debug("solve done", "elapsed", time.Since(start).Round(time.Microsecond))
			printSolution(cmd, p, sol, reverse)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&reverse, "reverse", false, "list states from goal back to start")
	return cmd
}

func printSolution(cmd *cobra.Command, p *river.Puzzle, sol *river.Solution, reverse bool) {
	w := cmd.OutOrStdout()
	if !sol.Found {
		printWarning(w, "No solution for %s: all %s reachable states explored",
			p.Config(), StyleNumber.Render(fmt.Sprint(sol.Expanded)))
		return
	}

	printSuccess(w, "Solved %s in %s crossings (%s states expanded)",
		p.Config(), StyleNumber.Render(fmt.Sprint(sol.Crossings())), StyleNumber.Render(fmt.Sprint(sol.Expanded)))

	if reverse {
		fmt.Fprintln(w, StyleTitle.Render("Path (goal → start)"))
		for i, s := range sol.Path {
			fmt.Fprintf(w, "%s %s\n", StyleDim.Render(fmt.Sprintf("%3d.", i)), s)
		}
		return
	}

	fmt.Fprintln(w, StyleTitle.Render("Crossings"))
	fmt.Fprintf(w, "%s %s\n", StyleDim.Render("  0."), p.Start())
	for i, mv := range sol.Moves() {
		fmt.Fprintf(w, "%s %s\n", StyleDim.Render(fmt.Sprintf("%3d.", i+1)), mv)
	}
}
