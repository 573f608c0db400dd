package htn

import (
	"github.com/arbortask/fondhtn/digraph"
	"github.com/arbortask/fondhtn/domain"
)

// TaskID identifies a task instance within one HTN. Ids are locally unique
// within a single HTN value, minted fresh on every decomposition, and are
// not meaningful across different HTN instances (spec §3).
type TaskID = digraph.NodeID

// HTN is a labeled DAG of task instances: an ordering graph over task-ids,
// a task-name mapping, and a reference to the shared, read-only Domain
// catalog that gives every task-name its meaning. HTN values are immutable;
// every operation that would change the network returns a new HTN.
type HTN struct {
	graph   *digraph.Graph
	domain  *domain.Domain
	mapping map[TaskID]domain.TaskNameID
}

// New builds an HTN from an explicit task-id set, intra-network orderings,
// the shared domain, and a task-id → task-name mapping. mapping must be
// defined for every id in taskIDs; that invariant is the caller's
// responsibility (package problem and this package's own operations
// maintain it).
func New(taskIDs []TaskID, orderings [][2]TaskID, dom *domain.Domain, mapping map[TaskID]domain.TaskNameID) *HTN {
	return &HTN{
		graph:   digraph.New(taskIDs, orderings),
		domain:  dom,
		mapping: mapping,
	}
}

// Domain returns the shared domain catalog this network's tasks reference.
func (t *HTN) Domain() *domain.Domain { return t.domain }

// IsEmpty reports whether the network has no remaining tasks.
func (t *HTN) IsEmpty() bool { return t.graph.CountNodes() == 0 }

// TaskIDSet returns every task-id currently in the network, sorted.
func (t *HTN) TaskIDSet() []TaskID { return t.graph.Nodes() }

// UnconstrainedTasks returns the task-ids with no incoming ordering edge,
// sorted ascending.
func (t *HTN) UnconstrainedTasks() []TaskID { return t.graph.UnconstrainedNodes() }

// GetTaskName returns the task-name id that id is an instance of.
func (t *HTN) GetTaskName(id TaskID) domain.TaskNameID { return t.mapping[id] }

// GetTask returns the catalog entry (Primitive or Compound) that id is an
// instance of.
func (t *HTN) GetTask(id TaskID) domain.Task { return t.domain.MustTask(t.mapping[id]) }

// Mappings returns a copy of the task-id → task-name mapping.
func (t *HTN) Mappings() map[TaskID]domain.TaskNameID {
	out := make(map[TaskID]domain.TaskNameID, len(t.mapping))
	for k, v := range t.mapping {
		out[k] = v
	}

	return out
}

// OutgoingOf returns the sorted outgoing ordering neighbors of id.
func (t *HTN) OutgoingOf(id TaskID) []TaskID { return t.graph.OutgoingNeighbors(id) }

// IncomingOf returns the sorted incoming ordering neighbors of id.
func (t *HTN) IncomingOf(id TaskID) []TaskID { return t.graph.IncomingNeighbors(id) }

// Edges returns every ordering edge currently in the network.
func (t *HTN) Edges() [][2]TaskID { return t.graph.Edges() }

// SeparateTasks partitions ids into (compounds, primitives), preserving
// their relative order in ids.
func (t *HTN) SeparateTasks(ids []TaskID) (compounds, primitives []TaskID) {
	for _, id := range ids {
		if t.domain.IsCompound(t.mapping[id]) {
			compounds = append(compounds, id)
		} else {
			primitives = append(primitives, id)
		}
	}

	return compounds, primitives
}

// CountTasksWithFrequency returns the multiset of task-name ids currently in
// the network, keyed by task-name with their occurrence count.
func (t *HTN) CountTasksWithFrequency() map[domain.TaskNameID]int {
	out := make(map[domain.TaskNameID]int)
	for _, name := range t.mapping {
		out[name]++
	}

	return out
}

// nextFreeID returns the next task-id a decomposition may mint: one past the
// current maximum task-id, or 0 if the network is empty.
func (t *HTN) nextFreeID() TaskID {
	ids := t.graph.Nodes()
	if len(ids) == 0 {
		return 0
	}

	return ids[len(ids)-1] + 1
}
