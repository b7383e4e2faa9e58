// Package pkg provides the core libraries for conllview treebank visualization.
//
// # Overview
//
// conllview turns the sentences of a CoNLL-X treebank into dependency graphs
// and shows them as node-link diagrams. The pkg directory is organized into
// three main areas:
//
//  1. Domain logic: [conll] reads sentences, [depgraph] builds graphs,
//     [treebank] holds them behind a stateful cursor
//  2. Output: [render/nodelink] (DOT and SVG), [render/tikz] (LaTeX) and [io]
//     (files per sentence)
//  3. Infrastructure: [cache], [config], [errors], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	CoNLL-X text
//	     ↓
//	[conll] package (read sentences)
//	     ↓
//	[depgraph] package (build one graph per sentence and layer)
//	     ↓
//	[treebank] package (load into the cursor, notify subscribers)
//	     ↓
//	DOT/TikZ/SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Load a treebank and export the first sentence:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/conllview/pkg/depgraph"
//	    "github.com/matzehuels/conllview/pkg/io"
//	    "github.com/matzehuels/conllview/pkg/treebank"
//	)
//
//	f, _ := os.Open("corpus.conll")
//	m := treebank.NewModel()
//	loader := treebank.NewLoader(treebank.Options{Layer: depgraph.LayerSurface})
//	stats, _ := loader.Load(context.Background(), f, m)
//
//	exp := &io.Exporter{Dir: "out"}
//	path, _ := exp.SaveCurrent(m, io.FormatDOT) // out/s1.dot
//
// Render SVG through Graphviz:
//
//	r, _ := nodelink.NewRenderer(nodelink.RendererExec, "dot")
//	svg, _ := r.RenderSVG(nodelink.ToDOT(g))
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/depgraph/... # Specific package
//	go test -run Example       # Examples only
//
// Tests that need the dot or rsvg-convert binaries skip when they are absent.
//
// [conll]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/conll
// [depgraph]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/depgraph
// [treebank]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/treebank
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/render/nodelink
// [render/tikz]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/render/tikz
// [io]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/conllview/pkg/observability
package pkg
