package search

// WeakLD is the Weak-LD goal check of spec §4.8: succeeds iff the leaf
// network is empty, returning the weak linearization built by walking
// parent pointers from leaf to root.
func WeakLD(space *Space, node *Node, stats *Stats) Result {
	node.GoalTested = true
	if !node.TN.IsEmpty() {
		return Result{Kind: NoSolution}
	}

	return Result{Kind: Linear, Linearization: walkLinearization(node)}
}

func walkLinearization(leaf *Node) []WeakLinearizationStep {
	var reversed []WeakLinearizationStep
	for n := leaf; n != nil; n = n.Parent {
		reversed = append(reversed, WeakLinearizationStep{
			Node:          n,
			ViaTaskName:   n.ViaTaskName,
			ViaMethodName: n.ViaMethodName,
			ViaIsMethod:   n.ViaIsMethod,
		})
	}

	out := make([]WeakLinearizationStep, len(reversed))
	for i, step := range reversed {
		out[len(reversed)-1-i] = step
	}

	return out
}

// StrongOD is the Strong-OD goal check of spec §4.8: succeeds iff the leaf
// network is empty and the de-ordered network yields a strong policy under
// AO*. Re-closures of an already goal-tested node are skipped so the (often
// expensive) AO* subroutine is not re-run for an isomorphic re-closure
// (spec §4.7's "important semantics" note).
func StrongOD(space *Space, node *Node, stats *Stats) Result {
	if node.GoalTested {
		return Result{Kind: NoSolution}
	}
	node.GoalTested = true

	if !node.TN.IsEmpty() {
		return Result{Kind: NoSolution}
	}

	deordered := Deorder(node)
	collapsed, _ := CollapseForAOStar(deordered)

	aoStats := NewStats()
	policy, solved := RunAOStar(space, collapsed, node.State, aoStats)
	stats.AddCustom("ao_star_nodes", aoStats.Total)
	stats.AddCustom("ao_star_explored", aoStats.Explored)

	if !solved {
		return Result{Kind: NoSolution}
	}

	return Result{Kind: Strong, Policy: policy}
}
