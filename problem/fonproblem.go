package problem

import (
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
)

// FactTable is the immutable name<->id table built at load time (spec §3's
// "Fact... immutable names in a table").
type FactTable struct {
	names []string
	ids   map[string]domain.FactID
}

// ID returns the fact id for name, or false if unknown.
func (t *FactTable) ID(name string) (domain.FactID, bool) {
	id, ok := t.ids[name]

	return id, ok
}

// Name returns the fact name for id.
func (t *FactTable) Name(id domain.FactID) string {
	return t.names[id]
}

// Count returns the number of real facts in the table.
func (t *FactTable) Count() domain.FactID {
	return domain.FactID(len(t.names))
}

// FONDProblem is a fully-resolved planning problem: the shared domain, the
// fact table, the initial state, and the initial task network (spec §3,
// §6's "Problem description").
type FONDProblem struct {
	Facts       *FactTable
	TaskNames   *TaskNameTable
	Domain      *domain.Domain
	InitState   domain.FactSet
	InitialTask *htn.HTN
}

// TaskNameTable is the name<->id table for task-name ids, assigned in load
// order: every primitive first, then every compound, matching the order
// each appears in the problem file (spec §6 says only that "ids are
// assigned in load order"; this package picks primitives-then-compounds as
// the concrete order — see DESIGN.md).
type TaskNameTable struct {
	names []string
	ids   map[string]domain.TaskNameID
}

// ID returns the task-name id for name, or false if unknown.
func (t *TaskNameTable) ID(name string) (domain.TaskNameID, bool) {
	id, ok := t.ids[name]

	return id, ok
}

// Name returns the task name for id.
func (t *TaskNameTable) Name(id domain.TaskNameID) string {
	return t.names[id]
}
