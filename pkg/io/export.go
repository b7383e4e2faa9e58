package io

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/conllview/pkg/depgraph"
	"github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/render/nodelink"
	"github.com/matzehuels/conllview/pkg/render/tikz"
	"github.com/matzehuels/conllview/pkg/treebank"
)

// Format constants for export files. Each is also the file extension.
const (
	FormatDOT  = "dot"
	FormatTikZ = "tikz"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultPNGScale is the resolution multiplier for PNG export.
const DefaultPNGScale = 2.0

// Formats lists the supported export formats.
var Formats = []string{FormatDOT, FormatTikZ, FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// ValidFormats is the set of supported export formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatTikZ: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// NeedsRenderer reports whether format requires a DOT→SVG renderer.
func NeedsRenderer(format string) bool {
	return format == FormatSVG || format == FormatPNG || format == FormatPDF
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every format in the list.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Filename returns the export file name for the sentence at zero-based idx,
// e.g. Filename(0, "dot") is "s1.dot".
func Filename(idx int, format string) string {
	return fmt.Sprintf("s%d.%s", idx+1, format)
}

// Exporter writes graphs into a directory.
type Exporter struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string

	// Renderer produces SVG for the svg, png and pdf formats.
	Renderer nodelink.Renderer

	// Scale is the PNG resolution multiplier. Zero uses DefaultPNGScale.
	Scale float64
}

// Encode serializes g in format.
func (e *Exporter) Encode(g *depgraph.Graph, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatDOT:
		if err := nodelink.WriteDOT(&buf, g); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTikZ:
		if err := tikz.Write(&buf, g); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		if err := WriteJSON(g, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFormatWrite, err, "write JSON")
		}
		return buf.Bytes(), nil
	}

	if e.Renderer == nil {
		return nil, errors.New(errors.ErrCodeInvalidRenderer, "%s export needs a renderer", format)
	}
	dot := nodelink.ToDOT(g)
	switch format {
	case FormatPNG:
		scale := e.Scale
		if scale == 0 {
			scale = DefaultPNGScale
		}
		return nodelink.RenderPNG(e.Renderer, dot, scale)
	case FormatPDF:
		return nodelink.RenderPDF(e.Renderer, dot)
	}
	return e.Renderer.RenderSVG(dot)
}

// Save writes the graph at zero-based idx in format and returns the path.
func (e *Exporter) Save(g *depgraph.Graph, idx int, format string) (string, error) {
	data, err := e.Encode(g, format)
	if err != nil {
		return "", err
	}

	if e.Dir != "" {
		if err := os.MkdirAll(e.Dir, 0755); err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", e.Dir)
		}
	}
	path := filepath.Join(e.Dir, Filename(idx, format))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeExportWrite, err, "write %s", path)
	}
	return path, nil
}

// SaveCurrent saves the graph selected in m.
func (e *Exporter) SaveCurrent(m *treebank.Model, format string) (string, error) {
	state := m.State()
	if state.Graph == nil {
		return "", errors.New(errors.ErrCodeNoGraphSelected, "no graph selected")
	}
	return e.Save(state.Graph, state.Idx, format)
}
