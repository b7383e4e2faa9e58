package nodelink

import (
	"bytes"
	"fmt"
	"io"

	"github.com/matzehuels/conllview/pkg/depgraph"
	"github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/render"
)

const (
	graphName  = "deptree"
	graphAttrs = `graph [charset="UTF-8"];`
	nodeAttrs  = `node [shape=plaintext, height=0, width=0, fontsize=12, fontname="Helvetica"];`
	edgeAttrs  = `edge [color="#4b0082", fontsize="8", fontname="Courier New"];`

	// MarkedColor is the font color of highlighted nodes.
	MarkedColor = "#c21d1d"
)

// WriteDOT writes g to w as a Graphviz digraph.
//
// Nodes are emitted in token order as n<offset>, edges in creation order.
// Node texts and labels are escaped with [render.Escape]. The output is fully
// determined by the graph, so equal graphs produce byte-identical DOT.
// WriteDOT fails with FORMAT_WRITE_FAILURE only when w fails.
func WriteDOT(w io.Writer, g *depgraph.Graph) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", graphName)
	buf.WriteString(graphAttrs + "\n")
	buf.WriteString(nodeAttrs + "\n")
	buf.WriteString(edgeAttrs + "\n")

	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		fmt.Fprintf(&buf, "n%d[%s];\n", id, fmtNodeAttrs(n))
	}

	for _, id := range g.Edges() {
		e, _ := g.Edge(id)
		fmt.Fprintf(&buf, "n%d -> n%d[label=\"%s\"];\n", e.Source, e.Target, render.Escape(e.Label))
	}

	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeFormatWrite, err, "write DOT")
	}
	return nil
}

// ToDOT returns the DOT serialization of g.
func ToDOT(g *depgraph.Graph) string {
	var buf bytes.Buffer
	_ = WriteDOT(&buf, g)
	return buf.String()
}

func fmtNodeAttrs(n depgraph.Node) string {
	attrs := fmt.Sprintf("label=\"%s\"", render.Escape(n.Text))
	if n.Marked {
		attrs += fmt.Sprintf(", fontcolor=\"%s\", style=bold", MarkedColor)
	}
	return attrs
}
