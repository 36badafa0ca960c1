// Package render turns reachability graphs and distance maps into
// something a person can look at.
//
//   - ToDOT writes a reach.Graph as a Graphviz digraph; RenderSVG lays it out
//     in-process with github.com/goccy/go-graphviz.
//   - Heatmap prints the terrain with each cell tinted by its search distance,
//     styled with github.com/charmbracelet/lipgloss.
package render
