// Package render holds the pieces shared by the dependency graph formatters.
//
// # Escaping
//
// [Escape] is the single escaping rule used by every textual format: a double
// quote becomes \" and nothing else changes. Both the DOT formatter in
// [nodelink] and the TikZ formatter in [tikz] pass forms and relation labels
// through it.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := renderer.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/conllview/pkg/render/nodelink
// [tikz]: github.com/matzehuels/conllview/pkg/render/tikz
package render
