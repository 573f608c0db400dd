package search

import "time"

// EdgeWeight is a zero-ary function returning a positive progression-step
// cost. The supported configuration is a constant 1.0 per step (spec
// §4.7).
type EdgeWeight func() float64

// UnitEdgeWeight is the constant-1.0 edge weight spec §4.7 names as the
// supported configuration.
func UnitEdgeWeight() float64 { return 1.0 }

// GoalCheck is the pluggable callback A* invokes on every node it pops,
// including closed nodes reached again with a better g (spec §4.7,
// §4.11). It returns NoSolution to keep searching.
type GoalCheck func(space *Space, node *Node, stats *Stats) Result

// RunAStar runs the A* loop of spec §4.7 to termination: either a non-
// NoSolution goal-check result, or an exhausted open list. Timeout is the
// budget used to compute the IPC decay score; zero disables it (score 0).
func RunAStar(space *Space, goalCheck GoalCheck, edgeWeight EdgeWeight, timeout time.Duration) (Result, *Stats) {
	stats := NewStats()
	stats.StartClock()

	openQ := NewPriorityQueue()
	root := space.Root()
	root.Status = StatusOpen
	openQ.Insert(root)

	for !openQ.IsEmpty() {
		parent := openQ.PopMin()
		parent.Status = StatusClosed
		space.MarkExplored()

		result := goalCheck(space, parent, stats)
		if result.Kind != NoSolution {
			stats.StopClock()
			stats.Explored = space.Explored()
			stats.Total = space.Total()
			stats.IPCScore = IPCDecayScore(stats.Duration, timeout)

			return result, stats
		}

		successors := GenerateSuccessors(parent)
		edges := space.InstallSuccessors(parent, successors)

		for _, edge := range edges {
			child := edge.Next
			if child.Status == StatusOpen {
				openQ.Remove(child)
			}

			newG := parent.G + edgeWeight()
			switch {
			case child.Status == StatusNew:
				child.Parent = parent
				child.ViaTaskID = edge.TaskID
				child.ViaTaskName = edge.TaskName
				child.ViaMethodName = edge.MethodName
				child.ViaIsMethod = edge.IsMethod
				child.G = newG
				child.H = space.Heuristic(child.TN, child.State)
				child.Status = StatusOpen
			case child.Status == StatusOpen && newG < child.G:
				child.Parent = parent
				child.ViaTaskID = edge.TaskID
				child.ViaTaskName = edge.TaskName
				child.ViaMethodName = edge.MethodName
				child.ViaIsMethod = edge.IsMethod
				child.G = newG
				child.H = space.Heuristic(child.TN, child.State)
			case child.Status == StatusClosed && newG < child.G:
				child.Parent = parent
				child.ViaTaskID = edge.TaskID
				child.ViaTaskName = edge.TaskName
				child.ViaMethodName = edge.MethodName
				child.ViaIsMethod = edge.IsMethod
				child.G = newG
				child.H = space.Heuristic(child.TN, child.State)
				child.Status = StatusOpen
				space.MarkReopened()
			}

			if child.Status == StatusOpen {
				openQ.Insert(child)
			}
		}
	}

	stats.StopClock()
	stats.Explored = space.Explored()
	stats.Total = space.Total()
	stats.IPCScore = IPCDecayScore(stats.Duration, timeout)

	return Result{Kind: NoSolution}, stats
}
