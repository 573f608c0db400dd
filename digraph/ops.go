package digraph

import "sort"

// OutgoingNeighbors returns the sorted set of nodes reachable from id by one
// directed edge. Returns an empty slice, never nil, when id has no outgoing
// edges.
func (g *Graph) OutgoingNeighbors(id NodeID) []NodeID {
	bucket, ok := g.edges[id]
	if !ok {
		return []NodeID{}
	}
	out := make([]NodeID, 0, len(bucket))
	for n := range bucket {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// IncomingNeighbors returns the sorted set of nodes with a directed edge
// into id.
func (g *Graph) IncomingNeighbors(id NodeID) []NodeID {
	out := make([]NodeID, 0)
	for from, tos := range g.edges {
		if _, ok := tos[id]; ok {
			out = append(out, from)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// UnconstrainedNodes returns every node with no incoming edge, sorted
// ascending. These are the nodes a progression or AO* expansion may act on
// next.
func (g *Graph) UnconstrainedNodes() []NodeID {
	hasIncoming := make(map[NodeID]struct{})
	for _, tos := range g.edges {
		for to := range tos {
			hasIncoming[to] = struct{}{}
		}
	}
	out := make([]NodeID, 0, len(g.nodes))
	for n := range g.nodes {
		if _, blocked := hasIncoming[n]; !blocked {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// LeafNodes returns every node with no outgoing edge, sorted ascending.
func (g *Graph) LeafNodes() []NodeID {
	out := make([]NodeID, 0, len(g.nodes))
	for n := range g.nodes {
		if bucket, ok := g.edges[n]; !ok || len(bucket) == 0 {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// RemoveNode returns a new Graph with id and every edge incident to it
// removed. If id is not a member of the graph, the returned Graph is
// equivalent to the receiver.
func (g *Graph) RemoveNode(id NodeID) *Graph {
	if !g.HasNode(id) {
		return g.clone()
	}
	nodes := make([]NodeID, 0, len(g.nodes)-1)
	for n := range g.nodes {
		if n != id {
			nodes = append(nodes, n)
		}
	}
	orderings := make([][2]NodeID, 0)
	for from, tos := range g.edges {
		if from == id {
			continue
		}
		for to := range tos {
			if to == id {
				continue
			}
			orderings = append(orderings, [2]NodeID{from, to})
		}
	}

	return New(nodes, orderings)
}

// AddNode returns a new Graph with id inserted and wired to the given
// incoming and outgoing neighbor sets. Returns ErrNodeExists if id already
// belongs to the graph.
func (g *Graph) AddNode(id NodeID, incoming, outgoing []NodeID) (*Graph, error) {
	if g.HasNode(id) {
		return nil, ErrNodeExists
	}
	nodes := append(g.Nodes(), id)
	orderings := g.Edges()
	for _, from := range incoming {
		orderings = append(orderings, [2]NodeID{from, id})
	}
	for _, to := range outgoing {
		orderings = append(orderings, [2]NodeID{id, to})
	}

	return New(nodes, orderings), nil
}

// Splice grafts sub into the receiver, identifying sub's unconstrained
// entries with predecessors and sub's leaf (terminal) nodes with successors.
// It panics if the receiver and sub do not have disjoint node-id sets — a
// programming-contract violation, per the original koala-planner
// `add_subgraph`, which panics for the same reason.
func (g *Graph) Splice(sub *Graph, predecessors, successors []NodeID) *Graph {
	for n := range sub.nodes {
		if g.HasNode(n) {
			panic("digraph: Splice requires disjoint node-id sets")
		}
	}

	nodes := append(g.Nodes(), sub.Nodes()...)
	orderings := g.Edges()
	orderings = append(orderings, sub.Edges()...)

	entries := sub.UnconstrainedNodes()
	for _, pred := range predecessors {
		for _, entry := range entries {
			orderings = append(orderings, [2]NodeID{pred, entry})
		}
	}

	terminals := sub.LeafNodes()
	for _, terminal := range terminals {
		for _, succ := range successors {
			orderings = append(orderings, [2]NodeID{terminal, succ})
		}
	}

	return New(nodes, orderings)
}

// Remap returns a new Graph with every node id present in substitution
// replaced by its mapped value. Ids absent from substitution are kept as-is.
// substitution need not cover every node (a "partial substitution").
func (g *Graph) Remap(substitution map[NodeID]NodeID) *Graph {
	remap := func(id NodeID) NodeID {
		if to, ok := substitution[id]; ok {
			return to
		}
		return id
	}
	nodes := make([]NodeID, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, remap(n))
	}
	orderings := make([][2]NodeID, 0)
	for from, tos := range g.edges {
		for to := range tos {
			orderings = append(orderings, [2]NodeID{remap(from), remap(to)})
		}
	}

	return New(nodes, orderings)
}

func (g *Graph) clone() *Graph {
	return New(g.Nodes(), g.Edges())
}
