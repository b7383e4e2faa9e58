package treebank

import "github.com/matzehuels/conllview/pkg/depgraph"

// Store is an ordered, append-only collection of graphs.
// It is not safe for concurrent use; [Model] guards its store.
type Store struct {
	graphs []*depgraph.Graph
}

// Push appends g.
func (s *Store) Push(g *depgraph.Graph) {
	s.graphs = append(s.graphs, g)
}

// Len returns the number of graphs.
func (s *Store) Len() int { return len(s.graphs) }

// Get returns the graph at idx.
func (s *Store) Get(idx int) (*depgraph.Graph, bool) {
	if idx < 0 || idx >= len(s.graphs) {
		return nil, false
	}
	return s.graphs[idx], true
}
