package search

import (
	"github.com/arbortask/fondhtn/digraph"
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
)

// taggedEntry is one entry (unconstrained) subtask recorded for a compound
// task at the moment its decomposition is processed during the upward
// walk: either an already-resolved primitive's new id, or a still-unresolved
// compound's old id, to be expanded recursively by resolveEntries (spec
// §4.9; mirrors original_source/.../goal_checks.rs's TaggedTask/
// compound_mapping/rec_hlpr, completing the primitive-progression branch
// that source left as a stub).
type taggedEntry struct {
	isPrimitive bool
	primitiveID htn.TaskID // new id, valid when isPrimitive
	compoundOld htn.TaskID // old id, valid when !isPrimitive
}

// Deorder reconstructs a partially ordered HTN from leaf's root-to-leaf
// progression path: task-name labels match the primitive actions executed
// along the path, and orderings are exactly those implied by the methods
// traversed — never more. The walk proceeds leaf-to-root: every compound
// decomposition is guaranteed to have been fully resolved (so its entry
// subtasks are already known) by the time an earlier ancestor step needs to
// reference it, because a task can only be progressed after the step that
// introduced it (spec §4.9).
func Deorder(leaf *Node) *htn.HTN {
	dom := leaf.TN.Domain()

	newIDs := make([]htn.TaskID, 0)
	taskName := make(map[htn.TaskID]domain.TaskNameID)
	var orderings [][2]htn.TaskID

	equivalentIDs := make(map[htn.TaskID]htn.TaskID) // old id (within its own network) -> new id
	compoundMapping := make(map[htn.TaskID][]taggedEntry)

	var nextNewID htn.TaskID

	for child := leaf; child.Parent != nil; child = child.Parent {
		parent := child.Parent

		if !child.ViaIsMethod {
			newID := nextNewID
			nextNewID++
			newIDs = append(newIDs, newID)
			taskName[newID] = child.ViaTaskName
			equivalentIDs[child.ViaTaskID] = newID

			for _, succ := range parent.TN.OutgoingOf(child.ViaTaskID) {
				if parent.TN.Domain().IsCompound(parent.TN.GetTaskName(succ)) {
					resolveEntries(&orderings, compoundMapping, succ, newID)
				} else if resolvedSucc, ok := equivalentIDs[succ]; ok {
					orderings = append(orderings, [2]htn.TaskID{newID, resolvedSucc})
				}
			}

			continue
		}

		// Method applied: record the newly introduced subtasks' entry set.
		method := findMethod(dom, parent.TN.GetTaskName(child.ViaTaskID), child.ViaMethodName)
		introduced := sortedDiff(child.TN.TaskIDSet(), parent.TN.TaskIDSet())
		entryIndices := entryIndicesOf(method)

		entries := make([]taggedEntry, 0, len(entryIndices))
		for _, idx := range entryIndices {
			if idx >= len(introduced) {
				continue
			}
			subtaskOldID := introduced[idx]
			if child.TN.Domain().IsCompound(child.TN.GetTaskName(subtaskOldID)) {
				entries = append(entries, taggedEntry{isPrimitive: false, compoundOld: subtaskOldID})
			} else if newID, ok := equivalentIDs[subtaskOldID]; ok {
				entries = append(entries, taggedEntry{isPrimitive: true, primitiveID: newID})
			}
		}
		compoundMapping[child.ViaTaskID] = entries
	}

	return htn.New(newIDs, orderings, dom, taskName)
}

// resolveEntries appends orderings (predecessor, p) for every primitive p
// reachable through compoundTask's recorded entry set, recursing into
// nested compound entries (mirrors rec_hlpr).
func resolveEntries(orderings *[][2]htn.TaskID, mapping map[htn.TaskID][]taggedEntry, compoundTask, predecessor htn.TaskID) {
	for _, entry := range mapping[compoundTask] {
		if entry.isPrimitive {
			*orderings = append(*orderings, [2]htn.TaskID{predecessor, entry.primitiveID})
		} else {
			resolveEntries(orderings, mapping, entry.compoundOld, predecessor)
		}
	}
}

// entryIndicesOf returns the subtask indices of m with no incoming
// intra-method ordering (the method's entry points).
func entryIndicesOf(m domain.Method) []int {
	hasIncoming := make(map[int]bool, len(m.Orderings))
	for _, pair := range m.Orderings {
		hasIncoming[pair[1]] = true
	}
	out := make([]int, 0, len(m.Subtasks))
	for idx := range m.Subtasks {
		if !hasIncoming[idx] {
			out = append(out, idx)
		}
	}

	return out
}

func findMethod(dom *domain.Domain, name domain.TaskNameID, methodName string) domain.Method {
	compound := dom.MustTask(name).(*domain.CompoundTask)
	for _, m := range compound.Methods {
		if m.Name == methodName {
			return m
		}
	}

	return compound.Methods[0]
}

// sortedDiff returns child's elements not in parent, in child's order. Both
// come from digraph.Graph.Nodes, which sorts ascending, so the result is
// ascending too. Since
// htn.Decompose mints its fresh ids as one contiguous ascending block in
// subtask-index order, the result is already in method.Subtasks order.
func sortedDiff(child, parent []digraph.NodeID) []digraph.NodeID {
	parentSet := make(map[digraph.NodeID]struct{}, len(parent))
	for _, id := range parent {
		parentSet[id] = struct{}{}
	}
	out := make([]digraph.NodeID, 0)
	for _, id := range child {
		if _, ok := parentSet[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}
