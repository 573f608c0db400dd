// Package relax compiles an HTN planning problem into a delete-free
// classical planning problem, supplying the inputs the heuristic kernels in
// package heuristics need. It is the "relaxation compiler" of spec §4.3: for
// every primitive outcome it introduces one delete-free classical action,
// and for every compound-task method it introduces one classical action
// gated on its terminal subtasks' has-done facts.
package relax
