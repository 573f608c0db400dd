// Package htn implements the task network: a labeled DAG of task instances
// layered on top of package digraph, plus the decomposition and
// action-application primitives that produce new networks, and the
// isomorphism test the search space (package search) uses to canonicalize
// search nodes.
package htn
