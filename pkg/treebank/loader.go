package treebank

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/conllview/pkg/conll"
	"github.com/matzehuels/conllview/pkg/depgraph"
	"github.com/matzehuels/conllview/pkg/errors"
	"github.com/matzehuels/conllview/pkg/observability"
)

// streamBuffer is the capacity of the channel between producer and consumer.
const streamBuffer = 64

// Options configures a [Loader].
type Options struct {
	// Layer selects the annotation layer edges are built from.
	Layer depgraph.Layer

	// Label selects the token column used as node text.
	Label depgraph.Label

	// MarkFeature is the token feature that marks a node. Empty uses
	// [depgraph.DefaultMarkFeature].
	MarkFeature string

	// Validate rejects graphs whose heads form a cycle.
	Validate bool

	// AbortOnError stops loading at the first sentence that fails to parse
	// or build. By default such sentences are skipped.
	AbortOnError bool

	// Logger receives per-sentence diagnostics. Nil discards them.
	Logger *log.Logger
}

// Message carries one sentence from the producer to the consumer.
// Exactly one of Graph and Err is set.
type Message struct {
	Index int // zero-based position of the sentence in the input
	Graph *depgraph.Graph
	Err   error
}

// Skipped records a sentence that did not make it into the model.
type Skipped struct {
	Index int
	Err   error
}

// LoadStats summarizes a load.
type LoadStats struct {
	RunID    string
	Loaded   int
	Skipped  []Skipped
	Duration time.Duration
}

// Loader reads CoNLL-X input into a [Model].
type Loader struct {
	opts   Options
	runID  string
	logger *log.Logger
}

// NewLoader returns a loader with the given options.
func NewLoader(opts Options) *Loader {
	runID := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		opts:   opts,
		runID:  runID,
		logger: logger.With("run", runID[:8]),
	}
}

// RunID returns the identifier attached to this loader's logs and stats.
func (l *Loader) RunID() string { return l.runID }

// Stream reads sentences from r, builds their graphs and sends one message
// per sentence on out, in input order. Malformed and unbuildable sentences
// are sent as error messages. Stream closes out when it returns and only
// fails on read errors or cancellation.
func (l *Loader) Stream(ctx context.Context, r io.Reader, out chan<- Message) error {
	defer close(out)

	reader := conll.NewReader(r)
	for idx := 0; ; idx++ {
		sent, err := reader.Read()
		if err == io.EOF {
			return nil
		}

		var msg Message
		switch {
		case err == nil:
			msg = l.build(idx, sent)
		case errors.IsConstruction(err):
			msg = Message{Index: idx, Err: err}
		default:
			return fmt.Errorf("read treebank: %w", err)
		}

		select {
		case out <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Loader) build(idx int, sent conll.Sentence) Message {
	opts := []depgraph.Option{depgraph.WithLabel(l.opts.Label)}
	if l.opts.MarkFeature != "" {
		opts = append(opts, depgraph.WithMarkFeature(l.opts.MarkFeature))
	}

	g, err := depgraph.Build(sent, l.opts.Layer, opts...)
	if err == nil && l.opts.Validate {
		err = g.Validate()
	}
	if err != nil {
		return Message{Index: idx, Err: err}
	}
	return Message{Index: idx, Graph: g}
}

// Accept applies one message to m. Graphs are pushed; errors are recorded in
// stats and returned only when the loader aborts on errors.
func (l *Loader) Accept(m *Model, msg Message, stats *LoadStats) error {
	if msg.Err != nil {
		stats.Skipped = append(stats.Skipped, Skipped{Index: msg.Index, Err: msg.Err})
		observability.Load().OnSentenceSkipped(msg.Index, msg.Err)
		l.logger.Warn("skipped sentence", "sentence", msg.Index+1, "error", errors.UserMessage(msg.Err))
		if l.opts.AbortOnError {
			return fmt.Errorf("sentence %d: %w", msg.Index+1, msg.Err)
		}
		return nil
	}

	m.Push(msg.Graph)
	stats.Loaded++
	observability.Load().OnSentenceLoaded(msg.Index, msg.Graph.NodeCount())
	l.logger.Debug("loaded sentence", "sentence", msg.Index+1, "tokens", msg.Graph.NodeCount())
	return nil
}

// Apply drains in and applies every message to m until the channel closes.
func (l *Loader) Apply(ctx context.Context, m *Model, in <-chan Message) (LoadStats, error) {
	stats := LoadStats{RunID: l.runID}
	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case msg, ok := <-in:
			if !ok {
				return stats, nil
			}
			if err := l.Accept(m, msg, &stats); err != nil {
				return stats, err
			}
		}
	}
}

// Load streams r into m and waits for both sides to finish.
func (l *Loader) Load(ctx context.Context, r io.Reader, m *Model) (LoadStats, error) {
	start := time.Now()
	ch := make(chan Message, streamBuffer)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.Stream(ctx, r, ch)
	})

	var stats LoadStats
	g.Go(func() error {
		var err error
		stats, err = l.Apply(ctx, m, ch)
		return err
	})

	err := g.Wait()
	stats.Duration = time.Since(start)
	observability.Load().OnLoadComplete(stats.Loaded, len(stats.Skipped), stats.Duration, err)

	if err != nil {
		l.logger.Error("load failed", "loaded", stats.Loaded, "error", err)
		return stats, err
	}
	l.logger.Info("loaded treebank",
		"sentences", stats.Loaded,
		"skipped", len(stats.Skipped),
		"duration", stats.Duration)
	return stats, nil
}
