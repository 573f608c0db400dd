// Package search implements the three engines spec.md calls "the hard
// core": progression A* over (task network, state) pairs with
// isomorphism-bucketed canonicalization, de-ordering of a weak
// linearization into a partially ordered network, and AO* strong-policy
// search over that de-ordered network.
package search
