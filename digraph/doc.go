// Package digraph implements the directed graph primitive the planner builds
// everything else on: an ordered set of integer node ids plus an adjacency
// map, with layer decomposition, leaf/unconstrained queries, and subgraph
// splicing.
//
// Graph values are immutable: every mutating operation (AddNode, RemoveNode,
// Splice, Remap) returns a new Graph rather than editing the receiver in
// place. This mirrors the way task networks are produced fresh by every
// decomposition in package htn, which builds every ordering graph with it.
package digraph
