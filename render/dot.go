// Package render draws a puzzle's reachable state space as a Graphviz graph,
// one rank per BFS depth, with the solution path highlighted.
package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/rivercross/river"
)

// Options configures DOT output.
type Options struct {
	// Depths appends the BFS depth to each node label.
	Depths bool

	// LoadLabels labels every edge with the boat load that crosses it.
	LoadLabels bool
}

// pair is an unordered state pair; each crossing appears once even though
// the state space lists it in both directions.
type pair struct{ a, b river.State }

func key(x, y river.State) pair {
	if x.String() > y.String() {
		x, y = y, x
	}
	return pair{x, y}
}

// ToDOT converts a state space to an undirected DOT graph. When sol is
// non-nil and found, its crossings are drawn bold and red and its end points
// are double outlined.
func ToDOT(space *river.StateSpace, sol *river.Solution, opts Options) string {
	onPath := map[pair]bool{}
	ends := map[river.State]bool{}
	if sol != nil && sol.Found {
		for i := 1; i < len(sol.Path); i++ {
			onPath[key(sol.Path[i-1], sol.Path[i])] = true
		}
		ends[sol.Path[0]] = true
		ends[sol.Path[len(sol.Path)-1]] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, s := range space.States {
		label := s.String()
		if opts.Depths {
			label += fmt.Sprintf("\nd=%d", space.Depth[s])
		}
		attrs := fmt.Sprintf("label=%q", label)
		if ends[s] {
			attrs += ", peripheries=2"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", s.String(), attrs)
	}

	buf.WriteString("\n")
	for _, rank := range ranks(space) {
		buf.WriteString("  { rank=same;")
		for _, s := range rank {
			fmt.Fprintf(&buf, " %q;", s.String())
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("\n")
	drawn := map[pair]bool{}
	for _, tr := range space.Transitions {
		k := key(tr.From, tr.To)
		if drawn[k] {
			continue
		}
		drawn[k] = true

		var attrs []string
		if opts.LoadLabels {
			attrs = append(attrs, fmt.Sprintf("label=%q", tr.Load.String()))
		}
		if onPath[k] {
			attrs = append(attrs, "color=red", "penwidth=2.5")
		}
		fmt.Fprintf(&buf, "  %q -- %q", tr.From.String(), tr.To.String())
		if len(attrs) > 0 {
			fmt.Fprintf(&buf, " [%s]", strings.Join(attrs, ", "))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ranks groups states by depth, keeping visit order inside a depth.
func ranks(space *river.StateSpace) [][]river.State {
	byDepth := map[int][]river.State{}
	for _, s := range space.States {
		d := space.Depth[s]
		byDepth[d] = append(byDepth[d], s)
	}
	out := make([][]river.State, 0, len(byDepth))
	for _, d := range slices.Sorted(maps.Keys(byDepth)) {
		out = append(out, byDepth[d])
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
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

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
