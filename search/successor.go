package search

import (
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
)

// GenerateSuccessors implements the systematic progression rule of spec
// §4.4: if the network has an unconstrained compound task, only the
// minimum-id one is expanded, one successor per method; otherwise every
// unconstrained applicable primitive is expanded, one successor per
// outcome. Primitives whose preconditions are unsatisfied are silently
// skipped, not dead-ended — a node genuinely has no successors only when
// no primitive is applicable at all.
func GenerateSuccessors(node *Node) []RawSuccessor {
	unconstrained := node.TN.UnconstrainedTasks()
	compounds, primitives := node.TN.SeparateTasks(unconstrained)

	if len(compounds) > 0 {
		return expandCompound(node, compounds[0])
	}

	return expandPrimitives(node, primitives)
}

func expandCompound(node *Node, id htn.TaskID) []RawSuccessor {
	name := node.TN.GetTaskName(id)
	task := node.TN.GetTask(id).(*domain.CompoundTask)

	out := make([]RawSuccessor, 0, len(task.Methods))
	for _, method := range task.Methods {
		out = append(out, RawSuccessor{
			TN:         node.TN.Decompose(id, method),
			State:      node.State,
			TaskID:     id,
			TaskName:   name,
			MethodName: method.Name,
			IsMethod:   true,
		})
	}

	return out
}

func expandPrimitives(node *Node, ids []htn.TaskID) []RawSuccessor {
	var out []RawSuccessor
	for _, id := range ids {
		name := node.TN.GetTaskName(id)
		task := node.TN.GetTask(id).(*domain.PrimitiveAction)
		if !task.IsApplicable(node.State) {
			continue
		}
		for _, newState := range task.Transition(node.State) {
			out = append(out, RawSuccessor{
				TN:       node.TN.ApplyAction(id),
				State:    newState,
				TaskID:   id,
				TaskName: name,
			})
		}
	}

	return out
}
