package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/io"
	"github.com/matzehuels/conllview/pkg/treebank"
)

// exportFlags holds the export command's own options.
type exportFlags struct {
	commonFlags
	sentence int
	formats  string
	scale    float64
}

// exportCommand creates the export command for one-shot graph export.
func (c *CLI) exportCommand() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export one sentence graph to files",
		Long: `Export writes the dependency graph of one sentence as s<n>.<format> into the
output directory, where n is the 1-based sentence index.

Formats: dot, tikz, svg, png, pdf, json. SVG, PNG and PDF need the
configured renderer; PNG and PDF also need rsvg-convert.`,
		Example: `  conllview export corpus.conll
  conllview export -n 3 -f dot,svg -o out/ corpus.conll
  cat corpus.conll | conllview export -f tikz`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, argPath(args), &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&flags.sentence, "sentence", "n", 1, "1-based index of the sentence to export")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", io.FormatDOT, "comma-separated output formats: "+strings.Join(io.Formats, ", "))
	flags.registerOutputDir(cmd)
	cmd.Flags().Float64Var(&flags.scale, "scale", io.DefaultPNGScale, "PNG resolution multiplier")
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(io.Formats...))

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, path string, flags *exportFlags) error {
	ctx := cmd.Context()

	formats := parseFormats(flags.formats)
	if len(formats) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	if err := io.ValidateFormats(formats); err != nil {
		return err
	}

	cfg, err := c.loadConfig(cmd, &flags.commonFlags)
	if err != nil {
		return err
	}

	m, _, err := c.loadTreebank(ctx, cfg, path)
	if err != nil {
		return err
	}
	if m.Len() == 0 {
		return errors.New(errors.ErrCodeNoGraphSelected, "no sentences loaded")
	}
	if !m.Select(flags.sentence - 1) {
		return errors.New(errors.ErrCodeInvalidInput,
			"sentence %d out of range (treebank has %d)", flags.sentence, m.Len())
	}

	exp := &io.Exporter{Dir: cfg.OutputDir, Scale: flags.scale}
	if needsRenderer(formats) {
		r, rc, err := newRenderer(cfg)
		if err != nil {
			return err
		}
		defer rc.Close()
		exp.Renderer = r
	}

	var paths []string
	for _, format := range formats {
		p, err := c.saveWithSpinner(cmd, exp, format, m)
		if err != nil {
			return err
		}
		paths = append(paths, p)
	}

	printSuccess("Exported sentence %d", m.Idx()+1)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// saveWithSpinner saves the selected graph, showing a spinner for formats
// that go through the renderer.
func (c *CLI) saveWithSpinner(cmd *cobra.Command, exp *io.Exporter, format string, m *treebank.Model) (string, error) {
	if !io.NeedsRenderer(format) {
		return exp.SaveCurrent(m, format)
	}

	spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering %s...", strings.ToUpper(format)))
	spinner.Start()
	p, err := exp.SaveCurrent(m, format)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("%s export failed", strings.ToUpper(format)))
		return "", err
	}
	spinner.Stop()
	return p, nil
}

// parseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func parseFormats(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

func needsRenderer(formats []string) bool {
	for _, f := range formats {
		if io.NeedsRenderer(f) {
			return true
		}
	}
	return false
}
