package chart

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/showviz/pkg/column"
)

type decisionInput struct {
	x, y column.Kind
	n    int
}

type decisionNode struct {
	id    string
	label string
	test  func(decisionInput) bool
	yes   string
	no    string
}

const leafUndefined = "undefined"

// decisionTree mirrors Select. Leaf ids are chart kind names.
var decisionTree = []decisionNode{
	{id: "x_numeric", label: "x numeric?", test: func(in decisionInput) bool { return in.x == column.KindNumeric }, yes: "y_numeric", no: "x_text"},
	{id: "y_numeric", label: "y numeric?", test: func(in decisionInput) bool { return in.y == column.KindNumeric }, yes: "count", no: "y_text_box"},
	{id: "count", label: fmt.Sprintf("n <= %d?", ScatterLimit), test: func(in decisionInput) bool { return in.n <= ScatterLimit }, yes: Scatter.String(), no: HeatMap.String()},
	{id: "y_text_box", label: "y text?", test: func(in decisionInput) bool { return in.y == column.KindText }, yes: BoxAndWhisker.String(), no: leafUndefined},
	{id: "x_text", label: "x text?", test: func(in decisionInput) bool { return in.x == column.KindText }, yes: "y_text_cat", no: leafUndefined},
	{id: "y_text_cat", label: "y text?", test: func(in decisionInput) bool { return in.y == column.KindText }, yes: CategoricalHeatMap.String(), no: leafUndefined},
}

var decisionLeaves = []string{
	Scatter.String(), HeatMap.String(), BoxAndWhisker.String(), CategoricalHeatMap.String(), leafUndefined,
}

// decisionPath walks the tree and returns the visited edges as "from->to".
func decisionPath(in decisionInput) (edges map[string]bool, leaf string) {
	nodes := make(map[string]decisionNode, len(decisionTree))
	for _, n := range decisionTree {
		nodes[n.id] = n
	}

	edges = make(map[string]bool)
	cur := decisionTree[0].id
	for {
		n, ok := nodes[cur]
		if !ok {
			return edges, cur
		}
		next := n.no
		if n.test(in) {
			next = n.yes
		}
		edges[n.id+"->"+next] = true
		cur = next
	}
}

// DecisionDOT renders the auto-selection rules as a Graphviz DOT digraph,
// highlighting the path taken for the given kinds and count.
func DecisionDOT(x, y column.Kind, n int) string {
	edges, leaf := decisionPath(decisionInput{x: x, y: y, n: n})

	var buf bytes.Buffer
	buf.WriteString("digraph selection {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=14];\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("x=%s y=%s n=%d", x, y, n))
	buf.WriteString("\n")

	for _, node := range decisionTree {
		fmt.Fprintf(&buf, "  %q [shape=diamond, label=%q%s];\n", node.id, node.label, highlight(edgesTouch(edges, node.id)))
	}
	for _, l := range decisionLeaves {
		fmt.Fprintf(&buf, "  %q [shape=box, style=\"rounded,filled\", fillcolor=%s];\n", l, leafFill(l, leaf))
	}

	buf.WriteString("\n")
	for _, node := range decisionTree {
		for _, e := range []struct{ to, label string }{{node.yes, "yes"}, {node.no, "no"}} {
			key := node.id + "->" + e.to
			attrs := fmt.Sprintf("label=%q", e.label)
			if edges[key] {
				attrs += ", color=\"#1f9e89\", penwidth=2.5"
			}
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", node.id, e.to, attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgesTouch(edges map[string]bool, id string) bool {
	for _, node := range decisionTree {
		if node.id != id {
			continue
		}
		return edges[id+"->"+node.yes] || edges[id+"->"+node.no]
	}
	return false
}

func highlight(on bool) string {
	if on {
		return ", color=\"#1f9e89\", penwidth=2"
	}
	return ""
}

func leafFill(l, chosen string) string {
	switch {
	case l == chosen && l == leafUndefined:
		return "\"#f4a6a6\""
	case l == chosen:
		return "\"#a6e3d0\""
	default:
		return "white"
	}
}

// RenderDecisionSVG renders a DOT graph produced by DecisionDOT to SVG.
func RenderDecisionSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
