package domain

// TaskNameID identifies a primitive action or compound task within a
// Domain's catalog. Distinct from htn task-ids, which identify instances of
// a task inside one task network.
type TaskNameID = uint32

// Task is the sealed union of the two kinds of catalog entry: a Primitive
// action or a Compound task. Only *PrimitiveAction and *CompoundTask
// implement it.
type Task interface {
	TaskName() string
	isTask()
}

// Outcome is one non-deterministic effect of a primitive action: a set of
// facts to add and a set of facts to delete.
type Outcome struct {
	Add FactSet
	Del FactSet
}

// PrimitiveAction is (name, preconditions, ordered outcomes). At least one
// outcome must exist; the empty-effect action has exactly one outcome with
// empty Add and Del sets.
type PrimitiveAction struct {
	Name          string
	Preconditions FactSet
	Outcomes      []Outcome
}

func (p *PrimitiveAction) TaskName() string { return p.Name }
func (*PrimitiveAction) isTask()            {}

// IsApplicable reports whether p's preconditions are satisfied by state,
// i.e. Preconditions ⊆ state.
func (p *PrimitiveAction) IsApplicable(state FactSet) bool {
	return p.Preconditions.IsSubsetOf(state)
}

// Transition returns one successor state per outcome, in outcome order:
// (state \ outcome.Del) ∪ outcome.Add.
func (p *PrimitiveAction) Transition(state FactSet) []FactSet {
	out := make([]FactSet, len(p.Outcomes))
	for i, o := range p.Outcomes {
		out[i] = state.Minus(o.Del).Union(o.Add)
	}

	return out
}

// Method is (name, ordered subtask task-name references, intra-method
// ordering pairs given as indices into Subtasks). Duplicate task names
// within Subtasks are expected to yield distinct task instances; that
// de-duplication happens at decomposition time in package htn, not here.
type Method struct {
	Name      string
	Subtasks  []TaskNameID
	Orderings [][2]int
}

// CompoundTask is (name, ordered list of methods).
type CompoundTask struct {
	Name    string
	Methods []Method
}

func (c *CompoundTask) TaskName() string { return c.Name }
func (*CompoundTask) isTask()            {}
