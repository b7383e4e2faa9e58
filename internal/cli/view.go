package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/conllview/pkg/io"
	"github.com/matzehuels/conllview/pkg/treebank"
)

// viewFlags holds the view command's own options.
type viewFlags struct {
	commonFlags
	logFile string
}

// viewCommand creates the interactive viewer command.
func (c *CLI) viewCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a treebank interactively",
		Long: `View opens a terminal viewer on a CoNLL-X treebank. Sentences appear as they
are read, so large files can be browsed while loading.

Keys:
  n / →   next sentence        d   save DOT (s<n>.dot)
  p / ←   previous sentence    t   save TikZ (s<n>.tikz)
  g       first sentence       s   render and save SVG (s<n>.svg)
  q       quit

Logs are written to --log-file, or discarded, so they do not disturb the
display.`,
		Example: `  conllview view corpus.conll
  conllview view --layer projective --log-file view.log corpus.conll
  zcat corpus.conll.gz | conllview view`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd, argPath(args), &flags)
		},
	}

	flags.register(cmd)
	flags.registerOutputDir(cmd)
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "append logs to this file")

	return cmd
}

func (c *CLI) runView(cmd *cobra.Command, path string, flags *viewFlags) error {
	cfg, err := c.loadConfig(cmd, &flags.commonFlags)
	if err != nil {
		return err
	}

	r, name, err := openInput(path)
	if err != nil {
		return err
	}
	defer r.Close()

	renderer, rc, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	defer rc.Close()

	restore, err := redirectLogs(c.Logger, flags.logFile, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	loader := newLoader(cfg, c.Logger)
	messages := make(chan treebank.Message, 64)
	streamed := make(chan error, 1)
	go func() {
		streamed <- loader.Stream(ctx, r, messages)
	}()

	exp := &io.Exporter{Dir: cfg.OutputDir, Renderer: renderer}
	v := newViewer(name, treebank.NewModel(), loader, exp, messages, streamed, cancel)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if name == stdinName {
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(v, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	restore()

	c.Logger.Info("viewer closed", "run", loader.RunID()[:8], "loaded", v.stats.Loaded, "skipped", len(v.stats.Skipped))
	if v.fatal != nil && !errors.Is(v.fatal, context.Canceled) {
		return v.fatal
	}
	return nil
}
