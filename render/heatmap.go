package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hillclimb/search"
	"github.com/katalvlaran/hillclimb/terrain"
)

// ramp runs from near (green) to far (red) in the 256-colour palette.
var ramp = []lipgloss.Color{"46", "82", "118", "154", "190", "226", "220", "214", "208", "202", "196"}

var (
	styleUnreached = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleMarker    = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// HeatmapOptions configures Heatmap.
type HeatmapOptions struct {
	// Color tints reached cells by distance. Without it, unreached cells are
	// printed as '.' and reached cells keep their letter.
	Color bool
}

// Heatmap renders grid with every cell shaded by its entry in dist.
// Cells absent from dist are unreached.
func Heatmap(grid *terrain.Grid, dist search.Distances, opts HeatmapOptions) string {
	longest := 0
	for _, d := range dist {
		if d > longest {
			longest = d
		}
	}

	var b strings.Builder
	for r := 0; r < grid.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < grid.Cols(); c++ {
			at := terrain.Coord{Row: r, Col: c}
			b.WriteString(shade(grid.At(at), dist, at, longest, opts))
		}
	}

	return b.String()
}

func shade(cell terrain.Cell, dist search.Distances, at terrain.Coord, longest int, opts HeatmapOptions) string {
	letter := string(cell.Rune())
	d, reached := dist[at]
	if !opts.Color {
		if !reached {
			return "."
		}
		return letter
	}
	if !reached {
		return styleUnreached.Render(letter)
	}
	style := lipgloss.NewStyle().Foreground(ramp[bucket(d, longest)])
	if cell.Role != terrain.Ordinary {
		style = style.Inherit(styleMarker)
	}
	return style.Render(letter)
}

// bucket maps d in [0, longest] onto an index of ramp.
func bucket(d, longest int) int {
	if longest == 0 {
		return 0
	}
	return d * (len(ramp) - 1) / longest
}
