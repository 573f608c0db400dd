package heuristics

import (
	"math"

	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/relax"
)

// Kernel computes a heuristic estimate over the classical
// (delete-free) domain cd: the cost of reaching every fact in goal from
// state. A zero-argument Action precondition is trivially satisfied.
type Kernel func(cd *relax.ClassicalDomain, state, goal domain.FactSet) float64

// HZero is the uninformative constant-zero heuristic: it never guides the
// search but is always admissible. It is the fixed-search default per spec
// §6, matching original_source's "fixed method" search running plain
// uniform-cost A* unless a heuristic flag is given.
func HZero(cd *relax.ClassicalDomain, state, goal domain.FactSet) float64 {
	return 0
}

// factCosts runs the standard delete-relaxation fixpoint: cost(f) = 0 for
// f in state, else the minimum over actions a achieving f of
// combine(a's precondition costs) + 1, iterated to a fixpoint. combine is
// math.Max for h_max-style propagation and summation for h_add-style
// propagation; both converge on a finite or infinite cost per fact because
// costs only decrease monotonically across iterations.
func factCosts(cd *relax.ClassicalDomain, state domain.FactSet, combine func(a, b float64) float64) map[domain.FactID]float64 {
	costs := make(map[domain.FactID]float64)
	for f := range state {
		costs[f] = 0
	}

	changed := true
	for changed {
		changed = false
		for _, action := range cd.Actions {
			preCost := 0.0
			reachable := true
			first := true
			for f := range action.Pre {
				c, ok := costs[f]
				if !ok {
					reachable = false
					break
				}
				if first {
					preCost = c
					first = false
				} else {
					preCost = combine(preCost, c)
				}
			}
			if !reachable {
				continue
			}

			actionCost := preCost + 1
			for f := range action.Add {
				if existing, ok := costs[f]; !ok || actionCost < existing {
					costs[f] = actionCost
					changed = true
				}
			}
		}
	}

	return costs
}

// HMax is the max-propagation delete-relaxation heuristic: the cost of a
// fact set is the maximum cost of any single member, assuming costs can be
// shared for free across conjunctive preconditions. Admissible.
func HMax(cd *relax.ClassicalDomain, state, goal domain.FactSet) float64 {
	costs := factCosts(cd, state, math.Max)
	var max float64
	for f := range goal {
		c, ok := costs[f]
		if !ok {
			return math.Inf(1)
		}
		if c > max {
			max = c
		}
	}

	return max
}

// HAdd is the additive delete-relaxation heuristic: the cost of a fact set
// is the sum of its members' individual costs, ignoring any cost sharing
// across shared subgoals. Not admissible but a strong informant in
// practice; this is the flexible-search default per spec §6.
func HAdd(cd *relax.ClassicalDomain, state, goal domain.FactSet) float64 {
	costs := factCosts(cd, state, func(a, b float64) float64 { return a + b })
	var total float64
	for f := range goal {
		c, ok := costs[f]
		if !ok {
			return math.Inf(1)
		}
		total += c
	}

	return total
}

// HFF extracts a relaxed plan by back-chaining from goal through the
// cheapest-achieving action per fact (costs computed h_add-style), and
// returns the count of distinct actions the extraction selects. Admissible
// in practice though not provably so; standard FF heuristic.
func HFF(cd *relax.ClassicalDomain, state, goal domain.FactSet) float64 {
	costs := factCosts(cd, state, func(a, b float64) float64 { return a + b })
	achiever := make(map[domain.FactID]int)
	achieverCost := make(map[domain.FactID]float64)
	for i, action := range cd.Actions {
		actionCost := 0.0
		reachable := true
		for f := range action.Pre {
			c, ok := costs[f]
			if !ok {
				reachable = false
				break
			}
			actionCost += c
		}
		if !reachable {
			continue
		}
		actionCost++
		for f := range action.Add {
			if best, ok := achieverCost[f]; !ok || actionCost < best {
				achiever[f] = i
				achieverCost[f] = actionCost
			}
		}
	}

	plan := make(map[int]struct{})
	var extract func(f domain.FactID, seen map[domain.FactID]bool)
	extract = func(f domain.FactID, seen map[domain.FactID]bool) {
		if seen[f] {
			return
		}
		seen[f] = true
		if _, ok := state[f]; ok {
			return
		}
		idx, ok := achiever[f]
		if !ok {
			return
		}
		if _, done := plan[idx]; done {
			return
		}
		plan[idx] = struct{}{}
		for pre := range cd.Actions[idx].Pre {
			extract(pre, seen)
		}
	}

	seen := make(map[domain.FactID]bool)
	for f := range goal {
		extract(f, seen)
	}

	return float64(len(plan))
}
