package search

import (
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
)

// CollapseForAOStar wraps a de-ordered network as the sole subtask of a
// freshly minted compound task, seeding AO* with a single-task network to
// expand (spec §4.2's collapse-tn, invoked by the strong-policy goal-check
// wrapper of spec §4.11).
func CollapseForAOStar(deordered *htn.HTN) (*htn.HTN, domain.TaskNameID) {
	return htn.Collapse(deordered)
}
