package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	path      bool
	tile      int
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "pathfind [file]",
		Short:         "Find the lowest risk path through a grid of digits",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.tile < 1 {
				return fmt.Errorf("tile must be at least 1, got %d", opts.tile)
			}
			logger := newLogger(opts.logLevel, opts.logFormat, cmd.ErrOrStderr())

			var (
				input []byte
				err   error
			)
			if len(args) == 1 {
				input, err = os.ReadFile(args[0])
			} else {
				input, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			start := time.Now()
			m, err := parseRiskMap(input, opts.tile)
			if err != nil {
				return fmt.Errorf("parse input: %w", err)
			}
			logger.Debug("parsed grid",
				"width", m.grid.Width,
				"height", m.grid.Height(),
				"tile", opts.tile,
				"elapsed", time.Since(start))

			start = time.Now()
			result, ok := m.lowestRisk(opts.path)
			if !ok {
				return fmt.Errorf("no path to %s", m.goal())
			}
			logger.Debug("search finished", "elapsed", time.Since(start))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.TotalCost)
			for _, step := range result.Path {
				fmt.Fprintf(out, "%s %d\n", step.Node, step.Cost)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.path, "path", false, "print every step of the path with its cumulative risk")
	cmd.Flags().IntVar(&opts.tile, "tile", 1, "repeat the grid this many times in both directions")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
