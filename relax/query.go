package relax

import "github.com/arbortask/fondhtn/domain"

// RelaxedState returns the relaxed encoding of state for a node whose
// network still mentions the task-names resolved (by the caller, through
// Bijection) to hasDoneIDs. The real-fact part of state already carries
// everything the classical domain's preconditions read; no has-done fact
// is owned by a node before its task actually fires, so the encoding is
// state unchanged (spec §4.3's compute_relaxed_state).
func (r *RelaxedComposition) RelaxedState(hasDoneIDs []domain.FactID, state domain.FactSet) domain.FactSet {
	_ = hasDoneIDs
	return state
}

// RelaxedGoal returns the relaxed goal for a node: "every task named in the
// network's current task-name multiset must end up done" (spec §4.3's
// compute_goal_state). hasDoneIDs is the task-name multiset already mapped
// through Bijection.
func (r *RelaxedComposition) RelaxedGoal(hasDoneIDs []domain.FactID) domain.FactSet {
	return domain.NewFactSet(hasDoneIDs...)
}

// HasDoneFact returns the synthetic has-done fact id for a task name.
func (r *RelaxedComposition) HasDoneFact(name domain.TaskNameID) (domain.FactID, bool) {
	id, ok := r.hasDone[name]
	return id, ok
}
