package relax

import "github.com/arbortask/fondhtn/domain"

// ClassicalActionID identifies one action in the compiled delete-free
// domain. Unlike the source HTN's primitive actions, a classical action has
// no delete effects: it is the "all-outcomes" determinization of one
// primitive outcome, or the "collapse" of one compound-task method.
type ClassicalActionID = uint32

// ClassicalAction is a delete-free action: a precondition set and an
// add-effect set, both expressed over the relaxed fact space (the original
// FactIDs plus one synthetic has-done fact per task-name).
type ClassicalAction struct {
	Name string
	Pre  domain.FactSet
	Add  domain.FactSet
}

// ClassicalDomain is the compiled delete-free planning domain: an ordered
// list of classical actions, indexed by ClassicalActionID.
type ClassicalDomain struct {
	Actions []ClassicalAction
}

// IsApplicable reports whether the action's preconditions hold in state.
func (a ClassicalAction) IsApplicable(state domain.FactSet) bool {
	return a.Pre.IsSubsetOf(state)
}
