package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/reach"
	"github.com/katalvlaran/hillclimb/render"
	"github.com/katalvlaran/hillclimb/search"
	"github.com/katalvlaran/hillclimb/terrain"
)

func (a *app) climbOptions(cmd *cobra.Command) []climb.Option {
	return []climb.Option{
		climb.WithLogger(loggerFromContext(cmd.Context())),
		climb.WithStrategy(a.cfg.SearchStrategy()),
	}
}

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Print the start-to-goal climb and the best trail from the lowest cells",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			sw := startStopwatch(loggerFromContext(cmd.Context()))
			rep, err := climb.Solve(cmd.Context(), grid, a.climbOptions(cmd)...)
			if err != nil {
				return err
			}
			sw.lap("Solved grid", "rows", grid.Rows(), "cols", grid.Cols())

			out := cmd.OutOrStdout()
			printAnswer(out, "start to goal", rep.Forward, a.cfg.Render.Color)
			printAnswer(out, "best trail", rep.ReverseMinimum, a.cfg.Render.Color)
			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path [grid-file]",
		Short: "Print the fewest steps from S to E",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			ans, err := climb.Forward(grid, a.climbOptions(cmd)...)
			if err != nil {
				return err
			}
			printAnswer(cmd.OutOrStdout(), "start to goal", ans, a.cfg.Render.Color)
			return nil
		},
	}
}

func newTrailCmd(a *app) *cobra.Command {
	var elevation int
	cmd := &cobra.Command{
		Use:   "trail [grid-file]",
		Short: "Print the fewest steps to E from any cell of a given elevation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := a.cfg.TrailElevation
			if cmd.Flags().Changed("elevation") {
				level = elevation
			}
			if level < terrain.MinElevation || level > terrain.MaxElevation {
				return fmt.Errorf("%w: elevation %d outside %d..%d",
					ErrConfig, level, terrain.MinElevation, terrain.MaxElevation)
			}
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			ans, err := climb.NearestFrom(grid, level, a.climbOptions(cmd)...)
			if err != nil {
				return err
			}
			printAnswer(cmd.OutOrStdout(), fmt.Sprintf("best trail from %q", rune('a'+level)), ans, a.cfg.Render.Color)
			return nil
		},
	}
	cmd.Flags().IntVarP(&elevation, "elevation", "e", 0, "trail start elevation (0 = 'a' .. 25 = 'z')")
	return cmd
}

func newDOTCmd(a *app) *cobra.Command {
	var (
		inverse bool
		svgPath string
	)
	cmd := &cobra.Command{
		Use:   "dot [grid-file]",
		Short: "Write the reachability graph as Graphviz DOT (or SVG with --svg)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			g := reach.Build(grid)
			if inverse {
				g = g.Invert()
			}
			dot := render.ToDOT(grid, g, render.DOTOptions{Inverse: inverse})
			if svgPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			svg, err := render.RenderSVG(cmd.Context(), dot)
			if err != nil {
				return err
			}
			if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
				return fmt.Errorf("write svg: %w", err)
			}
			loggerFromContext(cmd.Context()).Info("Wrote SVG", "path", svgPath, "nodes", g.Len(), "edges", g.EdgeCount())
			return nil
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "emit the inverted graph")
	cmd.Flags().StringVar(&svgPath, "svg", "", "render to this SVG file instead of printing DOT")
	return cmd
}

func newHeatmapCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "heatmap [grid-file]",
		Short: "Print the grid shaded by distance from S (or to E with --from goal)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd, args)
			if err != nil {
				return err
			}
			var (
				g      *reach.Graph
				source terrain.Coord
				ok     bool
			)
			switch from {
			case "start":
				g = reach.Build(grid)
				if source, ok = grid.Start(); !ok {
					return climb.ErrNoStart
				}
			case "goal":
				g = reach.Build(grid).Invert()
				if source, ok = grid.Goal(); !ok {
					return climb.ErrNoGoal
				}
			default:
				return fmt.Errorf("%w: --from must be \"start\" or \"goal\", got %q", ErrConfig, from)
			}

			dist, err := search.All(g, source,
				search.WithContext(cmd.Context()),
				search.WithStrategy(a.cfg.SearchStrategy()))
			if err != nil {
				return err
			}
			out := render.Heatmap(grid, dist, render.HeatmapOptions{Color: a.cfg.Render.Color})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "start", `search origin: "start" or "goal"`)
	return cmd
}
