package search

import (
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
)

// RunAOStar runs the AND/OR best-first search of spec §4.10 to
// termination: root solved (strong policy exists) or root failed (no
// solution). initialTN is expected to be the single-task collapsed network
// CollapseForAOStar produces, with initialState the state at the point the
// de-ordered network was captured.
func RunAOStar(space *Space, initialTN *htn.HTN, initialState domain.FactSet, stats *Stats) (*Policy, bool) {
	ao := newAOSpace(space)
	root := ao.mint(initialTN, initialState, OrNode)
	root.Value = space.Heuristic(initialTN, initialState)
	stats.Total++

	for {
		switch root.Status {
		case AOSolved:
			return ExtractPolicy(root), true
		case AOFailed:
			return nil, false
		}

		path := markedPath(root)
		leaf := path[len(path)-1]
		if leaf.Status != AONew {
			// No expandable tip reachable; root is neither solved nor
			// failed yet but every marked path bottoms out in a resolved
			// node — a contract inconsistency guarded against here rather
			// than looping forever.
			return nil, false
		}

		for _, n := range path {
			n.OnStack = true
		}
		expandAONode(ao, space, leaf, stats)
		for _, n := range path {
			n.OnStack = false
		}

		revise(leaf)
	}
}

// markedPath returns root, then the chain of marked successors down to the
// first node that is AONew (unexpanded) or terminal.
func markedPath(root *AONode) []*AONode {
	path := []*AONode{root}
	node := root
	for node.Status == AOOnGoing {
		next := markedChild(node)
		if next == nil {
			break
		}
		path = append(path, next)
		node = next
	}

	return path
}

// markedChild returns the node to descend into next: an OR node's marked
// successor, or an AND node's first not-yet-resolved child (AND nodes must
// eventually expand every child, so expansion order among them is
// arbitrary but deterministic).
func markedChild(node *AONode) *AONode {
	if node.Kind == OrNode {
		if node.MarkedSuccessor < 0 || node.MarkedSuccessor >= len(node.Successors) {
			return nil
		}

		return node.Successors[node.MarkedSuccessor].Next
	}

	for _, edge := range node.Successors {
		if edge.Next.Status != AOSolved && edge.Next.Status != AOFailed {
			return edge.Next
		}
	}

	return nil
}

// expandAONode generates leaf's children and gives each an initial
// heuristic value, per spec §4.10's expand step.
func expandAONode(ao *aoSpace, space *Space, leaf *AONode, stats *Stats) {
	if leaf.Kind == AndNode {
		expandAndNode(ao, space, leaf, stats)

		return
	}

	if leaf.TN.IsEmpty() {
		leaf.Status = AOSolved
		leaf.Value = 0
		leaf.MarkedSuccessor = -1

		return
	}

	unconstrained := leaf.TN.UnconstrainedTasks()
	compounds, primitives := leaf.TN.SeparateTasks(unconstrained)

	if len(compounds) > 0 {
		expandCompoundChoice(ao, space, leaf, compounds[0], stats)

		return
	}

	expandActionChoices(ao, space, leaf, primitives, stats)
}

func expandCompoundChoice(ao *aoSpace, space *Space, leaf *AONode, id htn.TaskID, stats *Stats) {
	task := leaf.TN.GetTask(id).(*domain.CompoundTask)
	leaf.Successors = make([]AOEdge, 0, len(task.Methods))
	for _, method := range task.Methods {
		childTN := leaf.TN.Decompose(id, method)
		child := ao.findOrMint(childTN, leaf.State, OrNode)
		if child.Status == AONew {
			child.Value = space.Heuristic(childTN, leaf.State)
			stats.Total++
		}
		if !contains(child.Parents, leaf) {
			child.Parents = append(child.Parents, leaf)
		}
		leaf.Successors = append(leaf.Successors, AOEdge{Label: method.Name, IsMethod: true, Next: child})
	}

	if len(leaf.Successors) == 0 {
		leaf.Status = AOFailed
	} else {
		leaf.Status = AOOnGoing
	}
}

func expandActionChoices(ao *aoSpace, space *Space, leaf *AONode, ids []htn.TaskID, stats *Stats) {
	leaf.Successors = make([]AOEdge, 0, len(ids))
	for _, id := range ids {
		task := leaf.TN.GetTask(id).(*domain.PrimitiveAction)
		if !task.IsApplicable(leaf.State) {
			continue
		}

		andTN := leaf.TN.ApplyAction(id)
		and := ao.mint(andTN, leaf.State, AndNode)
		and.ActionTaskID = id
		and.ActionTaskName = leaf.TN.GetTaskName(id)
		and.Parents = append(and.Parents, leaf)
		stats.Total++

		leaf.Successors = append(leaf.Successors, AOEdge{Label: task.Name, IsMethod: false, Next: and})
	}

	if len(leaf.Successors) == 0 {
		leaf.Status = AOFailed
	} else {
		leaf.Status = AOOnGoing
	}
}

// expandAndNode generates one OR child per outcome of the action and's
// ActionTaskID committed to, in the state leaf.TN was reached with.
func expandAndNode(ao *aoSpace, space *Space, and *AONode, stats *Stats) {
	task := and.Parents[0].TN.GetTask(and.ActionTaskID).(*domain.PrimitiveAction)

	and.Successors = make([]AOEdge, 0, len(task.Outcomes))
	for _, outcome := range task.Outcomes {
		newState := and.State.Minus(outcome.Del).Union(outcome.Add)
		child := ao.findOrMint(and.TN, newState, OrNode)
		if child.Status == AONew {
			child.Value = space.Heuristic(and.TN, newState)
			stats.Total++
		}
		if !contains(child.Parents, and) {
			child.Parents = append(child.Parents, and)
		}
		and.Successors = append(and.Successors, AOEdge{Next: child})
	}

	if len(and.Successors) == 0 {
		and.Status = AOFailed
	} else {
		and.Status = AOOnGoing
	}
}

func contains(nodes []*AONode, n *AONode) bool {
	for _, x := range nodes {
		if x == n {
			return true
		}
	}

	return false
}

// revise propagates value and solved/failed status from a just-expanded
// node upward through its parents, re-selecting each OR ancestor's marked
// successor. A bounded worklist (each node revised at most once per call)
// prevents the back-edges cycle-guarding allows from looping forever
// (spec §4.10, §9).
func revise(start *AONode) {
	visited := make(map[*AONode]bool)
	queue := []*AONode{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node] {
			continue
		}
		visited[node] = true

		reviseOne(node)

		for _, p := range node.Parents {
			queue = append(queue, p)
		}
	}
}

func reviseOne(node *AONode) {
	if len(node.Successors) == 0 {
		return
	}

	switch node.Kind {
	case AndNode:
		reviseAnd(node)
	case OrNode:
		reviseOr(node)
	}
}

func reviseAnd(node *AONode) {
	allSolved := true
	anyFailed := false
	var maxValue float64
	for _, edge := range node.Successors {
		if edge.Next.Status == AOFailed {
			anyFailed = true
		}
		if edge.Next.Status != AOSolved {
			allSolved = false
		}
		if edge.Next.Value > maxValue {
			maxValue = edge.Next.Value
		}
	}

	node.Value = maxValue
	switch {
	case allSolved:
		node.Status = AOSolved
	case anyFailed:
		node.Status = AOFailed
	default:
		node.Status = AOOnGoing
	}
}

func reviseOr(node *AONode) {
	best := -1
	bestCost := 0.0
	anySolved := false
	allFailed := true
	for i, edge := range node.Successors {
		if edge.Next.Status == AOFailed {
			continue
		}
		allFailed = false

		cost := edge.Next.Value
		if !edge.IsMethod {
			cost++
		}
		if best == -1 || cost < bestCost {
			best = i
			bestCost = cost
		}
		if edge.Next.Status == AOSolved {
			anySolved = true
		}
	}

	switch {
	case anySolved:
		node.Status = AOSolved
		for i, edge := range node.Successors {
			if edge.Next.Status == AOSolved {
				best = i
				bestCost = edge.Next.Value
				if !edge.IsMethod {
					bestCost++
				}
				break
			}
		}
	case allFailed:
		node.Status = AOFailed
	default:
		node.Status = AOOnGoing
	}

	// best stays -1 (and MarkedSuccessor unset) only when every successor is
	// AOFailed; a failed node is never descended into by markedChild, so an
	// unset marked successor there is harmless.
	node.MarkedSuccessor = best
	node.Value = bestCost
}
