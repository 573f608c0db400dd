package htn

import (
	"github.com/arbortask/fondhtn/digraph"
	"github.com/arbortask/fondhtn/domain"
)

// ApplyAction removes id (a primitive task instance) from the network's
// ordering graph, returning the resulting HTN. The caller is responsible for
// applying the chosen outcome to the planning state independently — HTN
// values carry no state of their own (spec §4.4).
func (t *HTN) ApplyAction(id TaskID) *HTN {
	graph := t.graph.RemoveNode(id)
	mapping := make(map[TaskID]domain.TaskNameID, len(t.mapping))
	for k, v := range t.mapping {
		if k != id {
			mapping[k] = v
		}
	}

	return &HTN{graph: graph, domain: t.domain, mapping: mapping}
}

// Decompose replaces the compound task instance id with the subgraph formed
// by method's subtasks and intra-method orderings. Fresh task-ids are minted
// for each subtask position (duplicate task names in method.Subtasks yield
// distinct instances); the removed task's incoming edges become incoming
// edges of every unconstrained method-subtask, and its outgoing edges become
// outgoing edges of every terminal method-subtask.
func (t *HTN) Decompose(id TaskID, method domain.Method) *HTN {
	start := t.nextFreeID()
	newIDs := make([]TaskID, len(method.Subtasks))
	for i := range method.Subtasks {
		newIDs[i] = start + TaskID(i)
	}

	subMapping := make(map[TaskID]domain.TaskNameID, len(newIDs))
	for i, name := range method.Subtasks {
		subMapping[newIDs[i]] = name
	}

	subOrderings := make([][2]TaskID, 0, len(method.Orderings))
	for _, pair := range method.Orderings {
		subOrderings = append(subOrderings, [2]TaskID{newIDs[pair[0]], newIDs[pair[1]]})
	}

	predecessors := t.graph.IncomingNeighbors(id)
	successors := t.graph.OutgoingNeighbors(id)

	remaining := t.graph.RemoveNode(id)
	subgraph := digraph.New(newIDs, subOrderings)
	spliced := remaining.Splice(subgraph, predecessors, successors)

	mapping := make(map[TaskID]domain.TaskNameID, len(t.mapping)+len(subMapping))
	for k, v := range t.mapping {
		if k != id {
			mapping[k] = v
		}
	}
	for k, v := range subMapping {
		mapping[k] = v
	}

	return &HTN{graph: spliced, domain: t.domain, mapping: mapping}
}
