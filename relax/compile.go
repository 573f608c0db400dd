package relax

import (
	"fmt"
	"sort"

	"github.com/arbortask/fondhtn/domain"
)

// Bijection maps a task-name id to the synthetic has-done fact id that
// represents "this task has been fully carried out" in the relaxed
// encoding. Heuristic kernels (package heuristics) use it to translate a
// task network's task-name multiset into relaxed-goal fact ids (spec §4.3).
type Bijection map[domain.TaskNameID]domain.FactID

// RelaxedComposition is the compiled delete-free domain plus enough state to
// answer the two queries A* and AO* need per node: the relaxed encoding of
// the current state, and the relaxed goal implied by the current task
// network.
type RelaxedComposition struct {
	Domain  *ClassicalDomain
	hasDone map[domain.TaskNameID]domain.FactID
}

// Compile builds a RelaxedComposition for dom. factCount is the size of the
// real (non-synthetic) fact table; synthetic has-done facts are minted
// starting at that id so they never collide with real facts.
//
// For every primitive action's outcome, one classical action is introduced
// using the primitive's preconditions and that outcome's add-effects, plus
// the primitive's own has-done fact (so compound methods gated on it can
// fire in the relaxation). For every compound-task method, one classical
// action is introduced whose precondition is the has-done facts of the
// method's terminal subtasks (those with no outgoing intra-method ordering)
// and whose add-effect is the compound's own has-done fact.
func Compile(dom *domain.Domain, factCount domain.FactID) (*RelaxedComposition, Bijection) {
	names := dom.TaskNames()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	hasDone := make(map[domain.TaskNameID]domain.FactID, len(names))
	next := factCount
	for _, name := range names {
		hasDone[name] = next
		next++
	}

	actions := make([]ClassicalAction, 0)
	for _, name := range names {
		switch task := dom.MustTask(name).(type) {
		case *domain.PrimitiveAction:
			actions = append(actions, primitiveClassicalActions(task, hasDone[name])...)
		case *domain.CompoundTask:
			actions = append(actions, compoundClassicalActions(task, hasDone[name], hasDone)...)
		}
	}

	composition := &RelaxedComposition{
		Domain:  &ClassicalDomain{Actions: actions},
		hasDone: hasDone,
	}

	bijection := make(Bijection, len(hasDone))
	for k, v := range hasDone {
		bijection[k] = v
	}

	return composition, bijection
}

func primitiveClassicalActions(p *domain.PrimitiveAction, selfDone domain.FactID) []ClassicalAction {
	out := make([]ClassicalAction, len(p.Outcomes))
	for i, outcome := range p.Outcomes {
		out[i] = ClassicalAction{
			Name: fmt.Sprintf("%s#%d", p.Name, i),
			Pre:  p.Preconditions,
			Add:  outcome.Add.Union(domain.NewFactSet(selfDone)),
		}
	}

	return out
}

func compoundClassicalActions(c *domain.CompoundTask, selfDone domain.FactID, hasDone map[domain.TaskNameID]domain.FactID) []ClassicalAction {
	out := make([]ClassicalAction, len(c.Methods))
	for i, m := range c.Methods {
		hasOutgoing := make(map[int]bool, len(m.Orderings))
		for _, pair := range m.Orderings {
			hasOutgoing[pair[0]] = true
		}
		pre := domain.NewFactSet()
		for idx, subtaskName := range m.Subtasks {
			if !hasOutgoing[idx] {
				pre = pre.Union(domain.NewFactSet(hasDone[subtaskName]))
			}
		}
		out[i] = ClassicalAction{
			Name: fmt.Sprintf("%s/%s", c.Name, m.Name),
			Pre:  pre,
			Add:  domain.NewFactSet(selfDone),
		}
	}

	return out
}
