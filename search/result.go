package search

import "github.com/arbortask/fondhtn/domain"

// ResultKind tags an A* run's outcome (spec §4.7's tagged Strong | Linear |
// NoSolution result).
type ResultKind int

const (
	NoSolution ResultKind = iota
	Linear
	Strong
)

// WeakLinearizationStep is one (state, task-network) pair on the
// root-to-leaf path of a successful weak linearization, plus the task that
// was progressed to reach it.
type WeakLinearizationStep struct {
	Node          *Node
	ViaTaskName   domain.TaskNameID
	ViaMethodName string
	ViaIsMethod   bool
}

// Result is the tagged union an A* goal-check (and A* itself) returns.
type Result struct {
	Kind           ResultKind
	Linearization  []WeakLinearizationStep
	Policy         *Policy
}
