package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/conllview/pkg/depgraph"
	"github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/io"
	"github.com/matzehuels/conllview/pkg/treebank"
)

var viewerHelpStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// Messages
// =============================================================================

// loadMsg carries one loader message into the update loop. A closed stream
// arrives with done set and the producer's error, if any.
type loadMsg struct {
	msg  treebank.Message
	done bool
	err  error
}

// exportMsg reports a finished export.
type exportMsg struct {
	format string
	path   string
	err    error
}

// =============================================================================
// Viewer - Interactive treebank browser
// =============================================================================

// viewer is the bubbletea model of the view command. It mirrors the cursor
// state it receives from treebank callbacks and never reads the model while
// rendering.
type viewer struct {
	name     string
	model    *treebank.Model
	loader   *treebank.Loader
	exporter *io.Exporter

	messages <-chan treebank.Message
	streamed <-chan error
	cancel   context.CancelFunc
	stats    treebank.LoadStats

	// Mirrored cursor state.
	idx    int
	length int
	graph  *depgraph.Graph

	loading   bool
	rendering bool
	status    string
	statusErr bool
	fatal     error

	height int
}

// newViewer wires a viewer to m. Messages arrive on messages until it is
// closed, after which the producer's result is read from streamed.
func newViewer(name string, m *treebank.Model, l *treebank.Loader, exp *io.Exporter,
	messages <-chan treebank.Message, streamed <-chan error, cancel context.CancelFunc) *viewer {
	v := &viewer{
		name:     name,
		model:    m,
		loader:   l,
		exporter: exp,
		messages: messages,
		streamed: streamed,
		cancel:   cancel,
		stats:    treebank.LoadStats{RunID: l.RunID()},
		loading:  true,
		height:   24,
	}
	m.Connect(treebank.EventAny, v.mirror)
	return v
}

// mirror copies a cursor snapshot. It runs inside the model's lock and must
// not call back into the model.
func (v *viewer) mirror(s treebank.State) {
	v.idx = s.Idx
	v.length = s.Len
	v.graph = s.Graph
}

func (v *viewer) Init() tea.Cmd {
	return v.waitForMessage()
}

// waitForMessage receives the next loader message off the update loop.
func (v *viewer) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-v.messages
		if !ok {
			return loadMsg{done: true, err: <-v.streamed}
		}
		return loadMsg{msg: msg}
	}
}

func (v *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	case tea.WindowSizeMsg:
		v.height = msg.Height
	case loadMsg:
		return v, v.handleLoad(msg)
	case exportMsg:
		v.rendering = false
		v.reportExport(msg)
	}
	return v, nil
}

func (v *viewer) handleLoad(msg loadMsg) tea.Cmd {
	if msg.done {
		v.loading = false
		if msg.err != nil && v.fatal == nil {
			v.fatal = msg.err
			v.setError(msg.err)
		}
		return nil
	}
	if err := v.loader.Accept(v.model, msg.msg, &v.stats); err != nil {
		v.loading = false
		v.fatal = err
		v.setError(err)
		v.cancel()
		return nil
	}
	return v.waitForMessage()
}

func (v *viewer) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c", "esc":
		v.cancel()
		return tea.Quit
	case "n", "right", "l":
		v.model.Next()
	case "p", "left", "h":
		v.model.Previous()
	case "g", "home":
		v.model.First()
	case "d":
		v.reportExport(v.save(io.FormatDOT))
	case "t":
		v.reportExport(v.save(io.FormatTikZ))
	case "s":
		if v.rendering {
			return nil
		}
		if v.graph == nil {
			v.setError(errors.New(errors.ErrCodeNoGraphSelected, "no graph selected"))
			return nil
		}
		v.rendering = true
		v.status, v.statusErr = "rendering SVG...", false
		g, idx := v.graph, v.idx
		return func() tea.Msg {
			p, err := v.exporter.Save(g, idx, io.FormatSVG)
			return exportMsg{format: io.FormatSVG, path: p, err: err}
		}
	}
	return nil
}

// save exports the mirrored selection synchronously.
func (v *viewer) save(format string) exportMsg {
	if v.graph == nil {
		return exportMsg{format: format, err: errors.New(errors.ErrCodeNoGraphSelected, "no graph selected")}
	}
	p, err := v.exporter.Save(v.graph, v.idx, format)
	return exportMsg{format: format, path: p, err: err}
}

func (v *viewer) reportExport(msg exportMsg) {
	if msg.err != nil {
		v.setError(msg.err)
		return
	}
	v.status, v.statusErr = fmt.Sprintf("%s %s written", iconSuccess, msg.path), false
}

func (v *viewer) setError(err error) {
	v.status, v.statusErr = iconError+" "+errors.UserMessage(err), true
}

// =============================================================================
// Rendering
// =============================================================================

func (v *viewer) View() string {
	var b strings.Builder

	b.WriteString(v.header())
	b.WriteString("\n\n")

	if v.graph == nil {
		if v.loading {
			b.WriteString(StyleDim.Render("Loading..."))
		} else {
			b.WriteString(StyleWarning.Render("No sentences loaded"))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(sentenceText(v.graph, StyleMarked))
		b.WriteString("\n\n")
		b.WriteString(v.arcTable().Render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusLine())
	b.WriteString("\n")
	b.WriteString(viewerHelpStyle.Render("n next  p previous  g first  d dot  t tikz  s svg  q quit"))
	return b.String()
}

func (v *viewer) header() string {
	pos := fmt.Sprintf("%d of %d", v.position(), v.length)
	h := StyleTitle.Render(appName) + StyleDim.Render(" · "+v.name) + "  " + StyleNumber.Render(pos)
	if v.graph != nil {
		h += StyleDim.Render("  " + v.graph.Layer().String())
	}
	if v.loading {
		h += StyleDim.Render("  loading")
	}
	return h
}

// position is the 1-based selected index, or 0 when nothing is selected.
func (v *viewer) position() int {
	if v.graph == nil {
		return 0
	}
	return v.idx + 1
}

func (v *viewer) statusLine() string {
	parts := []string{}
	if v.status != "" {
		switch {
		case v.statusErr:
			parts = append(parts, StyleError.Render(v.status))
		case v.rendering:
			parts = append(parts, StyleDim.Render(v.status))
		default:
			parts = append(parts, StyleSuccess.Render(v.status))
		}
	}
	if n := len(v.stats.Skipped); n > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d skipped", n)))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

// arcTable lists every node with its head and relation, clipped to the
// terminal height.
func (v *viewer) arcTable() *table.Table {
	g := v.graph
	limit := v.height - 10
	if limit < 3 {
		limit = 3
	}

	rows := [][]string{}
	for _, id := range g.Nodes() {
		if len(rows) == limit {
			rows = append(rows, []string{"…", "", "", ""})
			break
		}
		var head, rel string
		if e, ok := g.Head(id); ok {
			head = fmt.Sprintf("%d %s", int(e.Source)+1, g.Text(e.Source))
			rel = e.Label
		} else {
			n, _ := g.Node(id)
			_, rel = g.Layer().Select(n.Token)
			head = "root"
		}
		text := g.Text(id)
		if g.Marked(id) {
			text = StyleMarked.Render(text)
		}
		rows = append(rows, []string{strconv.Itoa(int(id) + 1), text, head, rel})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", labelHeader(g.Label()), "Head", "Relation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			switch col {
			case 0:
				return StyleNumber
			case 3:
				return StyleHighlight
			}
			return lipgloss.NewStyle()
		})
}

// labelHeader names the node text column after the label in use.
func labelHeader(l depgraph.Label) string {
	switch l {
	case depgraph.LabelLemma:
		return "Lemma"
	case depgraph.LabelCPOS:
		return "CPOS"
	case depgraph.LabelPOS:
		return "POS"
	}
	return "Form"
}
