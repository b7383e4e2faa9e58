package depgraph

import "github.com/matzehuels/conllview/pkg/errors"

// Validate reports GRAPH_HAS_CYCLE when the heads of the graph form a cycle.
// A nil graph is valid.
func (g *Graph) Validate() error {
	if g == nil {
		return nil
	}

	const (
		white = iota
		gray
		black
	)

	color := make([]int, len(g.nodes))
	var cycle NodeID = -1

	var dfs func(n NodeID) bool
	dfs = func(n NodeID) bool {
		color[n] = gray
		for _, child := range g.Dependents(n) {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				cycle = child
				return true
			}
		}
		color[n] = black
		return false
	}

	for _, r := range g.Roots() {
		if color[r] == white && dfs(r) {
			break
		}
	}
	if cycle < 0 {
		for i := range g.nodes {
			if color[i] == white && dfs(NodeID(i)) {
				break
			}
		}
	}

	if cycle >= 0 {
		return errors.New(errors.ErrCodeGraphHasCycle,
			"heads form a cycle through token %d (%q)", cycle+1, g.Form(cycle))
	}
	return nil
}
