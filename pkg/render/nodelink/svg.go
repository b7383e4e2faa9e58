package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/observability"
	"github.com/matzehuels/conllview/pkg/render"
)

// Renderer names accepted by [NewRenderer].
const (
	RendererExec     = "exec"
	RendererGraphviz = "graphviz"
)

// DefaultDotCommand is the Graphviz binary used by [ExecRenderer].
const DefaultDotCommand = "dot"

// Renderer turns DOT source into SVG. A call is a single synchronous
// request/response: no retries, no timeout, no partial result.
type Renderer interface {
	RenderSVG(dot string) ([]byte, error)
}

// Renderers lists the names accepted by [NewRenderer].
func Renderers() []string {
	return []string{RendererExec, RendererGraphviz}
}

// NewRenderer returns the renderer called name. dotCommand is only used by
// the exec renderer; empty means [DefaultDotCommand].
func NewRenderer(name, dotCommand string) (Renderer, error) {
	switch strings.ToLower(name) {
	case RendererExec, "":
		return NewExecRenderer(dotCommand), nil
	case RendererGraphviz:
		return GraphvizRenderer{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidRenderer,
		"unknown renderer %q (want %s)", name, strings.Join(Renderers(), " or "))
}

// ExecRenderer pipes DOT through an external Graphviz process.
type ExecRenderer struct {
	Command string   // binary name or path
	Args    []string // arguments, "-Tsvg" by default
}

// NewExecRenderer returns a renderer that runs "command -Tsvg".
func NewExecRenderer(command string) *ExecRenderer {
	if command == "" {
		command = DefaultDotCommand
	}
	return &ExecRenderer{Command: command, Args: []string{"-Tsvg"}}
}

// CacheKey identifies the command line, so output of different binaries or
// flags is cached apart.
func (r *ExecRenderer) CacheKey() string {
	return strings.Join(append([]string{RendererExec, r.Command}, r.Args...), " ")
}

// RenderSVG writes dot to the process's stdin, closes it, and reads SVG from
// stdout until end of stream. Failing to start the process is
// RENDERER_SPAWN_FAILURE; a failing pipe or exit status is RENDERER_IO_FAILURE.
func (r *ExecRenderer) RenderSVG(dot string) (svg []byte, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(RendererExec)
	defer func() {
		observability.Render().OnRenderComplete(RendererExec, len(svg), time.Since(start), err)
	}()

	cmd := exec.Command(r.Command, r.Args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererSpawn, err, "open stdin of %s", r.Command)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererSpawn, err, "open stdout of %s", r.Command)
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererSpawn, err, "start %s", r.Command)
	}

	writeErr := make(chan error, 1)
	go func() {
		_, err := io.WriteString(stdin, dot)
		if cerr := stdin.Close(); err == nil {
			err = cerr
		}
		writeErr <- err
	}()

	out, readErr := io.ReadAll(stdout)
	werr := <-writeErr
	waitErr := cmd.Wait()

	switch {
	case werr != nil:
		return nil, errors.Wrap(errors.ErrCodeRendererIO, werr, "write DOT to %s", r.Command)
	case readErr != nil:
		return nil, errors.Wrap(errors.ErrCodeRendererIO, readErr, "read SVG from %s", r.Command)
	case waitErr != nil:
		return nil, errors.Wrap(errors.ErrCodeRendererIO, waitErr, "%s: %s", r.Command, strings.TrimSpace(stderr.String()))
	}
	return normalizeViewBox(out), nil
}

// GraphvizRenderer renders DOT in-process with the WebAssembly build of
// Graphviz. It needs no external binary.
type GraphvizRenderer struct{}

// CacheKey returns [RendererGraphviz].
func (GraphvizRenderer) CacheKey() string { return RendererGraphviz }

// RenderSVG renders dot to SVG.
func (GraphvizRenderer) RenderSVG(dot string) (svg []byte, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(RendererGraphviz)
	defer func() {
		observability.Render().OnRenderComplete(RendererGraphviz, len(svg), time.Since(start), err)
	}()

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererSpawn, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererIO, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererIO, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element to a pixel-sized viewBox at the
// origin so the SVG scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders dot with r and converts the SVG to PDF.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(r Renderer, dot string) ([]byte, error) {
	svg, err := r.RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders dot with r and converts the SVG to PNG at the given scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(r Renderer, dot string, scale float64) ([]byte, error) {
	svg, err := r.RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
