package depgraph

import (
	"github.com/matzehuels/conllview/pkg/conll"
	"github.com/matzehuels/conllview/pkg/errors"
)

// DefaultMarkFeature is the token feature that marks a node.
const DefaultMarkFeature = "highlight"

type buildOptions struct {
	markFeature string
	label       Label
}

// Option configures [Build].
type Option func(*buildOptions)

// WithMarkFeature sets the feature name that marks a node. An empty name
// disables marking.
func WithMarkFeature(name string) Option {
	return func(o *buildOptions) { o.markFeature = name }
}

// WithLabel sets the token column used as node text. The default is
// [LabelForm].
func WithLabel(l Label) Option {
	return func(o *buildOptions) { o.label = l }
}

// Build constructs the dependency graph of sent on the given layer.
//
// Every token becomes a node at its offset. A token whose head is 0 is a
// root; every other token receives exactly one edge from its governor,
// labelled with its relation. Build fails with MISSING_HEAD when a token has
// no head on the layer, MISSING_RELATION when a non-root token has no
// relation, and INVALID_HEAD when the head points outside the sentence.
func Build(sent conll.Sentence, layer Layer, opts ...Option) (*Graph, error) {
	o := buildOptions{markFeature: DefaultMarkFeature}
	for _, opt := range opts {
		opt(&o)
	}

	g := newGraph(len(sent), layer, o.label)
	for i, tok := range sent {
		g.nodes = append(g.nodes, Node{
			Token:  tok,
			Offset: i,
			Marked: o.markFeature != "" && tok.Features.Has(o.markFeature),
			Text:   o.label.Select(tok),
		})
	}

	for i, tok := range sent {
		head, rel := layer.Select(tok)
		if !head.Valid {
			return nil, errors.New(errors.ErrCodeMissingHead,
				"token %d (%q) has no %s head", i+1, tok.Form, layer)
		}
		if head.Index == 0 {
			continue
		}
		if rel == "" {
			return nil, errors.New(errors.ErrCodeMissingRelation,
				"token %d (%q) has no %s relation", i+1, tok.Form, layer)
		}
		if head.Index < 0 || head.Index > len(sent) {
			return nil, errors.New(errors.ErrCodeInvalidHead,
				"token %d (%q) has head %d outside sentence length %d", i+1, tok.Form, head.Index, len(sent))
		}
		g.addEdge(NodeID(head.Index-1), NodeID(i), rel)
	}

	return g, nil
}
