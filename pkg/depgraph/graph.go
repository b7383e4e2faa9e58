package depgraph

import "github.com/matzehuels/conllview/pkg/conll"

// NodeID addresses a node within its graph. It equals the token offset.
type NodeID int

// EdgeID addresses an edge within its graph, in creation order.
type EdgeID int

// Node wraps one token of the sentence.
type Node struct {
	Token  conll.Token
	Offset int    // zero-based position in the sentence
	Marked bool   // highlighted by the annotation
	Text   string // display text, the token column chosen by the graph's Label
}

// Form returns the surface form of the node's token.
func (n Node) Form() string { return n.Token.Form }

// Edge points from the governor (Source) to the dependent (Target).
type Edge struct {
	Source NodeID
	Target NodeID
	Label  string
}

// Graph is an immutable dependency graph for a single sentence.
// It is safe for concurrent reads.
type Graph struct {
	layer    Layer
	label    Label
	nodes    []Node
	edges    []Edge
	incoming []EdgeID   // node -> incoming edge, or -1
	outgoing [][]EdgeID // node -> outgoing edges in creation order
}

func newGraph(n int, layer Layer, label Label) *Graph {
	g := &Graph{
		layer:    layer,
		label:    label,
		nodes:    make([]Node, 0, n),
		incoming: make([]EdgeID, n),
		outgoing: make([][]EdgeID, n),
	}
	for i := range g.incoming {
		g.incoming[i] = -1
	}
	return g
}

func (g *Graph) addEdge(src, dst NodeID, label string) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{Source: src, Target: dst, Label: label})
	g.incoming[dst] = id
	g.outgoing[src] = append(g.outgoing[src], id)
	return id
}

// Layer returns the annotation layer the graph was built from.
func (g *Graph) Layer() Layer { return g.layer }

// Label returns the token column used for node text.
func (g *Graph) Label() Label { return g.label }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns the node handles in token order.
func (g *Graph) Nodes() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i := range ids {
		ids[i] = NodeID(i)
	}
	return ids
}

// Edges returns the edge handles in creation order.
func (g *Graph) Edges() []EdgeID {
	ids := make([]EdgeID, len(g.edges))
	for i := range ids {
		ids[i] = EdgeID(i)
	}
	return ids
}

// Node returns the node for id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return Node{}, false
	}
	return g.nodes[id], true
}

// Edge returns the edge for id.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[id], true
}

// Form returns the surface form of node id, or "" if id is out of range.
func (g *Graph) Form(id NodeID) string {
	n, _ := g.Node(id)
	return n.Token.Form
}

// Text returns the display text of node id, or "" if id is out of range.
func (g *Graph) Text(id NodeID) string {
	n, _ := g.Node(id)
	return n.Text
}

// Marked reports whether node id is highlighted.
func (g *Graph) Marked(id NodeID) bool {
	n, _ := g.Node(id)
	return n.Marked
}

// Head returns the incoming edge of node id. ok is false for roots.
func (g *Graph) Head(id NodeID) (e Edge, ok bool) {
	if id < 0 || int(id) >= len(g.incoming) || g.incoming[id] < 0 {
		return Edge{}, false
	}
	return g.edges[g.incoming[id]], true
}

// Dependents returns the targets of the outgoing edges of id in creation order.
func (g *Graph) Dependents(id NodeID) []NodeID {
	if id < 0 || int(id) >= len(g.outgoing) {
		return nil
	}
	deps := make([]NodeID, len(g.outgoing[id]))
	for i, eid := range g.outgoing[id] {
		deps[i] = g.edges[eid].Target
	}
	return deps
}

// Roots returns the nodes without an incoming edge.
func (g *Graph) Roots() []NodeID {
	var roots []NodeID
	for i, e := range g.incoming {
		if e < 0 {
			roots = append(roots, NodeID(i))
		}
	}
	return roots
}

// Forms returns the surface forms in token order.
func (g *Graph) Forms() []string {
	forms := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		forms[i] = n.Token.Form
	}
	return forms
}
