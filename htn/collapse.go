package htn

import (
	"fmt"

	"github.com/arbortask/fondhtn/domain"
)

// Collapse wraps tn's entire current network as the sole subtask of a
// freshly minted compound task with exactly one method — that method's
// subtask list and orderings are tn's own tasks and orderings, referenced by
// task-name. The returned HTN has a single task instance (the wrapper) and
// references a new Domain that extends tn's domain with the wrapper entry;
// decomposing that single task with its one method reconstructs a network
// isomorphic to tn. This seeds the AO* subsystem with the de-ordered network
// from the strong-policy goal check (spec §4.2, §4.11).
func Collapse(tn *HTN) (*HTN, domain.TaskNameID) {
	ids := tn.TaskIDSet()

	index := make(map[TaskID]int, len(ids))
	names := make([]domain.TaskNameID, len(ids))
	for i, id := range ids {
		index[id] = i
		names[i] = tn.mapping[id]
	}

	orderings := make([][2]int, 0)
	for _, e := range tn.Edges() {
		orderings = append(orderings, [2]int{index[e[0]], index[e[1]]})
	}

	method := domain.Method{
		Name:      "collapse",
		Subtasks:  names,
		Orderings: orderings,
	}

	topName := freshTaskName(tn.domain)
	entries := make(map[domain.TaskNameID]domain.Task, len(tn.domain.TaskNames())+1)
	for _, name := range tn.domain.TaskNames() {
		entries[name] = tn.domain.MustTask(name)
	}
	entries[topName] = &domain.CompoundTask{
		Name:    fmt.Sprintf("collapsed-%d", topName),
		Methods: []domain.Method{method},
	}
	wrapperDomain := domain.New(entries)

	const rootID TaskID = 0
	collapsed := New(
		[]TaskID{rootID},
		nil,
		wrapperDomain,
		map[TaskID]domain.TaskNameID{rootID: topName},
	)

	return collapsed, topName
}

func freshTaskName(dom *domain.Domain) domain.TaskNameID {
	var max domain.TaskNameID
	found := false
	for _, name := range dom.TaskNames() {
		if !found || name > max {
			max = name
			found = true
		}
	}
	if !found {
		return 0
	}

	return max + 1
}
