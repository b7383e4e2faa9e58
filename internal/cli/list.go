package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/conllview/pkg/config"
	"github.com/matzehuels/conllview/pkg/depgraph"
	"github.com/matzehuels/conllview/pkg/treebank"
)

// listTextWidth truncates the sentence column.
const listTextWidth = 60

// listCommand creates the list command for printing a sentence table.
func (c *CLI) listCommand() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "List the sentences of a treebank",
		Long: `List prints one row per loadable sentence: its 1-based index, token count,
root count and text. Marked tokens are highlighted. Reads stdin when no file
is given.`,
		Example: `  conllview list corpus.conll
  conllview list --layer projective corpus.conll`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			m, _, err := c.loadTreebank(cmd.Context(), cfg, argPath(args))
			if err != nil {
				return err
			}
			if m.Len() == 0 {
				printWarning("No sentences loaded")
				return nil
			}
			fmt.Fprintln(stdout, sentenceTable(m).Render())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// loadTreebank reads the treebank at path into a fresh model.
func (c *CLI) loadTreebank(ctx context.Context, cfg config.Config, path string) (*treebank.Model, treebank.LoadStats, error) {
	logger := loggerFromContext(ctx)
	r, name, err := openInput(path)
	if err != nil {
		return nil, treebank.LoadStats{}, err
	}
	defer r.Close()

	prog := newProgress(logger)
	m := treebank.NewModel()
	stats, err := newLoader(cfg, logger).Load(ctx, r, m)
	if err != nil {
		return nil, stats, err
	}
	prog.done(fmt.Sprintf("Loaded %d sentences from %s", stats.Loaded, name))
	if n := len(stats.Skipped); n > 0 {
		printWarning("Skipped %d malformed sentence(s)", n)
	}
	return m, stats, nil
}

// sentenceTable renders one row per graph in m.
func sentenceTable(m *treebank.Model) *table.Table {
	rows := make([][]string, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		g, _ := m.At(i)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(g.NodeCount()),
			strconv.Itoa(len(g.Roots())),
			truncate(sentenceText(g, StyleMarked), listTextWidth),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Tokens", "Roots", "Text").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleNumber
			}
			return lipgloss.NewStyle()
		})
}

// sentenceText joins the forms of g, rendering marked nodes with marked.
func sentenceText(g *depgraph.Graph, marked lipgloss.Style) string {
	parts := make([]string, 0, g.NodeCount())
	for _, id := range g.Nodes() {
		form := g.Form(id)
		if g.Marked(id) {
			form = marked.Render(form)
		}
		parts = append(parts, form)
	}
	return strings.Join(parts, " ")
}

// truncate shortens s to width cells, ending in an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width-1).Render(s) + "…"
}

func argPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
