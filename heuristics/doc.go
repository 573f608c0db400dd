// Package heuristics computes delete-relaxation heuristics (h_max, which is
// admissible, and h_add, h_ff, which are not) over the classical domain
// compiled by package relax,
// and wraps them into the task-network-level heuristic function A* and AO*
// consume (spec §4.3, §4.8–§4.11).
//
// spec.md explicitly carves out the concrete h_max/h_add/h_ff formulas as an
// "external collaborator" — the interface the relaxation produces is
// specified, the formula is not. This package supplies the standard
// textbook delete-relaxation fixpoints for all three, since the search
// engines need a concrete heuristic to run at all; see DESIGN.md.
package heuristics
