// Package render draws a GridGraph as text for terminals, one glyph per
// cell, coloured by node state with lipgloss.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/raj457036/Path-Finding-Visualizer/gridgraph"
	"github.com/raj457036/Path-Finding-Visualizer/scheduler"
)

var glyphs = map[gridgraph.NodeState]string{
	gridgraph.Wall:      "#",
	gridgraph.Clear:     ".",
	gridgraph.Start:     "S",
	gridgraph.End:       "E",
	gridgraph.Traversed: "o",
	gridgraph.Path:      "*",
	gridgraph.Error:     "x",
}

var colors = map[gridgraph.NodeState]lipgloss.Color{
	gridgraph.Wall:      lipgloss.Color("240"),
	gridgraph.Clear:     lipgloss.Color("252"),
	gridgraph.Start:     lipgloss.Color("42"),
	gridgraph.End:       lipgloss.Color("196"),
	gridgraph.Traversed: lipgloss.Color("39"),
	gridgraph.Path:      lipgloss.Color("226"),
	gridgraph.Error:     lipgloss.Color("201"),
}

// legendOrder is the display order of Legend.
var legendOrder = []gridgraph.NodeState{
	gridgraph.Start, gridgraph.End, gridgraph.Wall, gridgraph.Clear,
	gridgraph.Traversed, gridgraph.Path, gridgraph.Error,
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables colour; only glyphs are emitted.
func WithPlain() Option {
	return func(r *Renderer) { r.plain = true }
}

// WithRenderer routes styles through a specific lipgloss renderer, e.g. one
// bound to a non-stdout writer.
func WithRenderer(lr *lipgloss.Renderer) Option {
	return func(r *Renderer) {
		if lr != nil {
			r.lr = lr
		}
	}
}

// Renderer turns grid state into a multi-line string.
type Renderer struct {
	plain  bool
	lr     *lipgloss.Renderer
	styles map[gridgraph.NodeState]lipgloss.Style
}

// New builds a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{lr: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(r)
	}
	r.styles = make(map[gridgraph.NodeState]lipgloss.Style, len(colors))
	for st, col := range colors {
		s := r.lr.NewStyle().Foreground(col)
		if st == gridgraph.Path || st == gridgraph.Start || st == gridgraph.End {
			s = s.Bold(true)
		}
		r.styles[st] = s
	}
	return r
}

func (r *Renderer) cell(st gridgraph.NodeState) string {
	g, ok := glyphs[st]
	if !ok {
		g = "?"
	}
	if r.plain {
		return g
	}
	return r.styles[st].Render(g)
}

// Render draws gg row by row. Rows are separated by '\n' with no trailing
// newline.
func (r *Renderer) Render(gg *gridgraph.GridGraph) string {
	rows, cols := gg.Size()
	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < cols; j++ {
			b.WriteString(r.cell(gg.MustNode(i, j).State))
		}
	}
	return b.String()
}

// Legend lists every glyph with its state name.
func (r *Renderer) Legend() string {
	parts := make([]string, 0, len(legendOrder))
	for _, st := range legendOrder {
		parts = append(parts, r.cell(st)+" "+st.String())
	}
	return strings.Join(parts, "  ")
}

// Summary is a one-line status for the run driven by s.
func Summary(s *scheduler.Scheduler) string {
	alg := s.Algorithm()
	status := "no path"
	switch {
	case alg.Err() != nil:
		status = "error: " + alg.Err().Error()
	case s.Phase() == scheduler.Stopped:
		status = "stopped"
	case alg.Found():
		status = fmt.Sprintf("path length %d", len(alg.Path()))
	case !alg.Finished():
		status = s.Phase().String()
	}
	return fmt.Sprintf("%s: %s, visited %d, elapsed %s",
		alg.Name(), status, alg.Visited(), alg.Elapsed())
}
