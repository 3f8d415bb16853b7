// Package cli implements the rivercross command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - solve: print the shortest crossing for a puzzle instance
//   - space: emit the reachable state space as DOT or SVG
//
// Every command accepts --config (TOML file), the instance flags
// --missionaries/-m, --cannibals/-c and --boat/-k, and --verbose/-v for
// debug logging of the search.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/internal/buildinfo"
	"github.com/katalvlaran/rivercross/internal/config"
	"github.com/katalvlaran/rivercross/river"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "rivercross",
		Short:        "rivercross solves the missionaries and cannibals puzzle",
		Long:         `rivercross finds the shortest sequence of boat crossings that gets every missionary and cannibal across the river without anyone being outnumbered, or proves that none exists.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.spaceCommand())

	return root
}

// puzzleFlags are the instance flags shared by every command.
type puzzleFlags struct {
	configPath   string
	missionaries int
	cannibals    int
	boat         int
}

func (f *puzzleFlags) register(cmd *cobra.Command) {
	def := river.DefaultConfig()
	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML file with missionaries, cannibals and boat_capacity")
	cmd.Flags().IntVarP(&f.missionaries, "missionaries", "m", def.Missionaries, "missionaries on the start bank")
	cmd.Flags().IntVarP(&f.cannibals, "cannibals", "c", def.Cannibals, "cannibals on the start bank")
	cmd.Flags().IntVarP(&f.boat, "boat", "k", def.BoatCapacity, "boat capacity")
}

// puzzle resolves defaults, file and environment, then applies explicitly
// set flags on top.
func (f *puzzleFlags) puzzle(cmd *cobra.Command) (*river.Puzzle, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("missionaries") {
		cfg.Missionaries = f.missionaries
	}
	if cmd.Flags().Changed("cannibals") {
		cfg.Cannibals = f.cannibals
	}
	if cmd.Flags().Changed("boat") {
		cfg.BoatCapacity = f.boat
	}
	return river.New(cfg)
}
