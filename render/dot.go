package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/hillclimb/reach"
	"github.com/katalvlaran/hillclimb/terrain"
)

// DOTOptions configures ToDOT.
type DOTOptions struct {
	// Name is the digraph name; "G" when empty.
	Name string
	// Inverse marks the graph as inverted in its label.
	Inverse bool
}

// ToDOT converts g to Graphviz DOT. Nodes are pinned to their grid position
// and labelled with the cell letter; Start and Goal are highlighted.
// Output is deterministic (row-major nodes, sorted edges).
func ToDOT(grid *terrain.Grid, g *reach.Graph, opts DOTOptions) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}
	label := "reachability"
	if opts.Inverse {
		label = "inverse reachability"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	fmt.Fprintf(&buf, "  label=%q;\n", label)
	buf.WriteString("  node [shape=square, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	for _, c := range g.Nodes() {
		cell := grid.At(c)
		attrs := fmt.Sprintf("label=%q, pos=\"%d,%d!\"", string(cell.Rune()), c.Col, -c.Row)
		switch cell.Role {
		case terrain.Start:
			attrs += ", fillcolor=palegreen"
		case terrain.Goal:
			attrs += ", fillcolor=gold"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", c.String(), attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From.String(), e.To.String())
	}
	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG lays out a DOT graph with the neato engine (honouring the pinned
// positions written by ToDOT) and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	gv.SetLayout(graphviz.NEATO)
	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: svg: %w", err)
	}

	return buf.Bytes(), nil
}
