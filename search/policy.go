package search

import "github.com/arbortask/fondhtn/domain"

// PolicyEntry is one OR-node action commitment in a strong policy: in the
// network/state fingerprinted by the entry's canonical AO* node id, take
// the named action (or method decomposition), at the given depth from the
// policy root.
type PolicyEntry struct {
	NodeID   NodeID
	Label    string
	IsMethod bool
	TaskName domain.TaskNameID
	Depth    int
}

// Policy is the strong policy spec §3 describes: the set of entries
// reachable by following the policy from the root under every outcome
// resolution.
type Policy struct {
	Entries map[NodeID]PolicyEntry
}

// ExtractPolicy walks marked edges from a solved root, emitting one entry
// per OR-node action commitment (spec §4.10's policy-extraction step). AND
// nodes are not policy entries themselves — every one of their outcome
// children is followed, since a strong policy must cover every
// non-deterministic resolution.
func ExtractPolicy(root *AONode) *Policy {
	policy := &Policy{Entries: make(map[NodeID]PolicyEntry)}
	visited := make(map[NodeID]bool)
	extractFrom(root, 0, policy, visited)

	return policy
}

func extractFrom(node *AONode, depth int, policy *Policy, visited map[NodeID]bool) {
	if node.Status != AOSolved || visited[node.ID] {
		return
	}
	visited[node.ID] = true

	switch node.Kind {
	case OrNode:
		if node.MarkedSuccessor < 0 || node.MarkedSuccessor >= len(node.Successors) {
			return
		}
		chosen := node.Successors[node.MarkedSuccessor]
		taskName := chosen.Next.ActionTaskName
		if chosen.IsMethod {
			compounds, _ := node.TN.SeparateTasks(node.TN.UnconstrainedTasks())
			taskName = node.TN.GetTaskName(compounds[0])
		}
		policy.Entries[node.ID] = PolicyEntry{
			NodeID:   node.ID,
			Label:    chosen.Label,
			IsMethod: chosen.IsMethod,
			TaskName: taskName,
			Depth:    depth,
		}
		extractFrom(chosen.Next, depth+1, policy, visited)
	case AndNode:
		for _, edge := range node.Successors {
			extractFrom(edge.Next, depth+1, policy, visited)
		}
	}
}
