// Package tikz serializes dependency graphs as tikz-dependency LaTeX
// fragments.
//
// The output is meant to be pasted into a document that loads the
// tikz-dependency package:
//
//	\begin{dependency}
//	\begin{deptext}[column sep=.5cm]
//	Cats & chase & mice \\
//	\end{deptext}
//	\depedge{2}{1}{nsubj}
//	\depedge{2}{3}{dobj}
//	\end{dependency}
//
// Node texts and labels pass through [render.Escape] only; LaTeX special
// characters are not escaped.
//
// [render.Escape]: github.com/matzehuels/conllview/pkg/render.Escape
package tikz

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/conllview/pkg/depgraph"
	"github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/render"
)

const (
	preamble  = "\\begin{dependency}\n\\begin{deptext}[column sep=.5cm]\n"
	postamble = "\\end{dependency}\n"

	columnSep = " & "
)

// Write writes g to w as a dependency environment. Node columns follow token
// order and edges follow creation order, with 1-based column indices.
// Marked nodes are underlined. Write fails with FORMAT_WRITE_FAILURE only
// when w fails.
func Write(w io.Writer, g *depgraph.Graph) error {
	var buf bytes.Buffer
	buf.WriteString(preamble)

	forms := make([]string, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		form := render.Escape(g.Text(id))
		if g.Marked(id) {
			form = `\underline{` + form + `}`
		}
		forms = append(forms, form)
	}
	buf.WriteString(strings.Join(forms, columnSep))
	buf.WriteString(" \\\\\n")
	buf.WriteString("\\end{deptext}\n")

	for _, id := range g.Edges() {
		e, _ := g.Edge(id)
		fmt.Fprintf(&buf, "\\depedge{%d}{%d}{%s}\n", e.Source+1, e.Target+1, render.Escape(e.Label))
	}

	buf.WriteString(postamble)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeFormatWrite, err, "write TikZ")
	}
	return nil
}

// ToTikZ returns the TikZ serialization of g.
func ToTikZ(g *depgraph.Graph) string {
	var buf bytes.Buffer
	_ = Write(&buf, g)
	return buf.String()
}
