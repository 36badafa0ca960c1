// Package cli implements the hillclimb command-line interface.
//
// The command tree is built with cobra. Every command reads one terrain grid
// from a file argument or stdin and prints its answer to stdout; diagnostics go
// to stderr through a charmbracelet/log logger carried in the command context.
//
// # Commands
//
//   - solve:   both answers (start to goal, best trail from the lowest cells)
//   - path:    start to goal only
//   - trail:   nearest cell of a chosen elevation to the goal
//   - dot:     the reachability graph as Graphviz DOT or SVG
//   - heatmap: the grid tinted by distance
//
// # Configuration
//
// An optional TOML file (--config) supplies defaults; flags override it.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// stopwatch times one command. Its lap entries are debug-level, so they
// only show up under --verbose next to the search statistics that climb logs.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, start: time.Now()}
}

// lap logs msg with the time since the stopwatch started as a structured
// "elapsed" field, e.g. `Solved grid rows=41 cols=161 elapsed=12ms`.
func (s *stopwatch) lap(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Debug(msg, keyvals...)
}

// loggerKey is the context key under which setup stores the per-invocation
// logger, so readGrid and the subcommands log at the level chosen by
// --verbose or the config file.
type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger stored by setup. Commands built
// outside NewRootCmd (tests driving a subcommand directly) fall back to
// log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
