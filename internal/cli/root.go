package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/terrain"
)

const appName = "hillclimb"

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the build information shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	verbose    bool
	strategy   string
	noColor    bool

	cfg Config
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns the hillclimb root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Shortest climbs across a height map",
		Long:          `hillclimb reads a grid of 'a'..'z' elevations with an S(tart) and E(nd) marker and finds the fewest steps between them, climbing at most one level per step.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&a.strategy, "strategy", "", `search frontier: "heap" or "queue"`)
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newPathCmd(a))
	root.AddCommand(newTrailCmd(a))
	root.AddCommand(newDOTCmd(a))
	root.AddCommand(newHeatmapCmd(a))

	return root
}

// setup loads configuration, applies flag overrides, and attaches the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		loaded, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if a.strategy != "" {
		cfg.Strategy = a.strategy
	}
	if a.noColor {
		cfg.Render.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level := charmlog.InfoLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	logger.Debug("configuration", "strategy", cfg.Strategy, "trail_elevation", cfg.TrailElevation, "color", cfg.Render.Color)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}

// readGrid parses the grid named by args[0], or stdin when args is empty or "-".
func readGrid(cmd *cobra.Command, args []string) (*terrain.Grid, error) {
	logger := loggerFromContext(cmd.Context())

	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open grid: %w", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}

	grid, err := terrain.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("read grid", "source", name, "rows", grid.Rows(), "cols", grid.Cols())

	return grid, nil
}
