// Package viz renders a computation graph in Graphviz DOT.
//
// Each node becomes a record labelled "label | data 0.0000 | grad 0.0000".
// Every non-leaf node gets a small companion node carrying its operator
// tag; operand edges point at that companion, which points at the result.
package viz

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// nodeKey and opKey identify graph nodes by Value ID; dot assigns its own
// identifiers in the output.
func nodeKey(v *autodiff.Value) string {
	return fmt.Sprintf("v%d", v.ID())
}

func opKey(v *autodiff.Value) string {
	return fmt.Sprintf("v%d_op", v.ID())
}

// NodeLabel formats the record label of v.
func NodeLabel(v *autodiff.Value) string {
	return fmt.Sprintf("%s | data %.4f | grad %.4f", v.Label(), v.Data(), v.Grad())
}

// Render builds a left-to-right DOT graph of everything reachable from root.
func Render(root *autodiff.Value) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	nodes, edges := autodiff.Walk(root)
	for _, n := range nodes {
		record := g.Node(nodeKey(n)).Label(NodeLabel(n)).Attr("shape", "record")
		if n.IsLeaf() {
			continue
		}
		op := g.Node(opKey(n)).Label(n.Op().String())
		g.Edge(op, record)
	}

	for _, e := range edges {
		g.Edge(g.Node(nodeKey(e.From)), g.Node(opKey(e.To)))
	}
	return g
}

// WriteDOT writes the DOT source for root's graph to w.
func WriteDOT(w io.Writer, root *autodiff.Value) error {
	if _, err := io.WriteString(w, Render(root).String()); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}
