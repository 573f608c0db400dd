package heuristics

import (
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
	"github.com/arbortask/fondhtn/relax"
)

// Fn is the task-network-level heuristic A* and AO* call at every node:
// given the current network and state, estimate the cost remaining.
type Fn func(tn *htn.HTN, state domain.FactSet) float64

// Wrap builds a network-level Fn from a classical Kernel and a compiled
// RelaxedComposition. It mirrors original_source/.../heuristic_factory.rs's
// create_function_with_heuristic: map the network's task-name multiset
// through the bijection to relaxed has-done facts, run the kernel to get
// the classical estimate, then add the correction term Σ(count_i − 1) for
// task names that occur more than once (spec §4.3 calls this out
// explicitly: the relaxation collapses multiplicity, so repeated
// occurrences of the same task name must be paid for separately).
func Wrap(composition *relax.RelaxedComposition, kernel Kernel) Fn {
	return func(tn *htn.HTN, state domain.FactSet) float64 {
		occurrences := tn.CountTasksWithFrequency()

		taskIDs := make([]domain.FactID, 0, len(occurrences))
		var correction float64
		for name, count := range occurrences {
			id, ok := composition.HasDoneFact(name)
			if !ok {
				continue
			}
			taskIDs = append(taskIDs, id)
			correction += float64(count - 1)
		}

		goal := composition.RelaxedGoal(taskIDs)
		relaxedState := composition.RelaxedState(taskIDs, state)

		return kernel(composition.Domain, relaxedState, goal) + correction
	}
}
