package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/render"
	"github.com/katalvlaran/rivercross/river"
)

// Output formats for the space command.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

func (c *CLI) spaceCommand() *cobra.Command {
	var (
		flags  puzzleFlags
		format string
		output string
		opts   render.Options
	)

	cmd := &cobra.Command{
		Use:   "space",
		Short: "Draw the reachable state space",
		Long: `Enumerate every state reachable from the start and emit the graph of legal
crossings, one rank per BFS depth, with the shortest solution highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != FormatDOT && format != FormatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatDOT, FormatSVG)
			}
			p, err := flags.puzzle(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			space, err := river.Space(ctx, p)
			if err != nil {
				return err
			}
			sol, err := river.Solve(ctx, p, river.WithLogger(c.Logger))
			if err != nil {
				return err
			}
			c.Logger.Info("state space", "states", len(space.States), "crossings", len(space.Transitions), "depth", space.MaxDepth())

			data := []byte(render.ToDOT(space, sol, opts))
			if format == FormatSVG {
				if data, err = render.RenderSVG(ctx, string(data)); err != nil {
					return err
				}
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.OutOrStdout(), "Wrote %s", output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", FormatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.Depths, "depths", false, "show BFS depth in node labels")
	cmd.Flags().BoolVar(&opts.LoadLabels, "loads", false, "label edges with the boat load")
	return cmd
}
