// Package depgraph builds dependency graphs from annotated sentences.
//
// # Overview
//
// A [Graph] holds one [Node] per token of a sentence and one [Edge] per
// governor/dependent pair. Nodes and edges live in flat slices and are
// addressed by integer handles ([NodeID], [EdgeID]); the handle of a node is
// the zero-based offset of its token.
//
// # Layers
//
// CoNLL-X carries two annotation layers. [LayerSurface] reads HEAD/DEPREL,
// [LayerProjective] reads PHEAD/PDEPREL:
//
//	g, err := depgraph.Build(sent, depgraph.LayerSurface)
//	if errors.Is(err, errors.ErrCodeMissingHead) {
//	    // the sentence lacks a head on this layer
//	}
//
// # Invariants
//
// A graph built by [Build] satisfies:
//
//   - NodeCount equals the token count, in token order
//   - every node has at most one incoming edge
//   - a node has no incoming edge iff its head is 0
//   - EdgeCount equals the number of non-root tokens
//
// Acyclicity is not checked during construction. Call [Graph.Validate] to
// reject annotations whose heads form a cycle.
//
// # Marking
//
// Tokens carrying the feature named by [DefaultMarkFeature] (or the name
// given with [WithMarkFeature]) produce marked nodes. Marking only changes
// how formatters style a node.
//
// # Node text
//
// Each node carries the display text formatters print, taken from the token
// column chosen with [WithLabel]: the form by default, or the lemma, coarse
// or fine part of speech. An empty column reads "_".
package depgraph
