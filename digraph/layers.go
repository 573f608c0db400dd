package digraph

import "sort"

// ToLayers produces a BFS layering of the graph: layer 0 is the unconstrained
// node set, and layer k+1 is the union of the outgoing neighbors of every
// node in layer k. Layering stops once a computed layer is empty. This is a
// breadth-first decomposition, not a Kahn-style topological levelization —
// a node reachable from the unconstrained set by paths of different lengths
// appears once per distinct path length, so it can occur in several layers
// (the last of them being its longest-path depth); that is intentional and
// matches the reference implementation.
func (g *Graph) ToLayers() [][]NodeID {
	result := make([][]NodeID, 0)

	prev := make(map[NodeID]struct{})
	for _, n := range g.UnconstrainedNodes() {
		prev[n] = struct{}{}
	}
	result = append(result, sortedKeys(prev))

	for {
		next := make(map[NodeID]struct{})
		for n := range prev {
			for _, out := range g.OutgoingNeighbors(n) {
				next[out] = struct{}{}
			}
		}
		if len(next) == 0 {
			break
		}
		result = append(result, sortedKeys(next))
		prev = next
	}

	return result
}

func sortedKeys(m map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
