// Package nodelink serializes dependency graphs as Graphviz DOT and renders
// them to SVG.
//
// # DOT Format
//
// [WriteDOT] emits a fixed preamble followed by one statement per node and
// per edge:
//
//	digraph deptree {
//	graph [charset="UTF-8"];
//	node [shape=plaintext, height=0, width=0, fontsize=12, fontname="Helvetica"];
//	edge [color="#4b0082", fontsize="8", fontname="Courier New"];
//	n0[label="Cats"];
//	n1[label="chase"];
//	n2[label="mice"];
//	n1 -> n0[label="nsubj"];
//	n1 -> n2[label="dobj"];
//	}
//
// Marked nodes additionally carry fontcolor and style=bold.
//
// # Rendering
//
// A [Renderer] turns DOT into SVG. [ExecRenderer] spawns the dot binary and
// talks to it over stdin/stdout; [GraphvizRenderer] runs Graphviz in-process
// via [github.com/goccy/go-graphviz]. [CachedRenderer] puts a
// [cache.Cache] in front of either:
//
//	r, err := nodelink.NewRenderer("exec", "")
//	r = nodelink.NewCachedRenderer(r, fileCache, nodelink.DefaultCacheTTL)
//	svg, err := r.RenderSVG(nodelink.ToDOT(g))
//
// PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [cache.Cache]: github.com/matzehuels/conllview/pkg/cache.Cache
package nodelink
