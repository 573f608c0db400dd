package search

import (
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
)

// NodeID is the stable integer identity the search space mints for every
// canonical node it owns (spec §3's "Search node" unique-id).
type NodeID uint64

// Status is a node's place in the A* lifecycle.
type Status int

const (
	StatusNew Status = iota
	StatusOpen
	StatusClosed
)

// Edge records one progression step from a parent node to a canonical
// child: the task-id progressed in the parent's network, the task-name it
// resolved to, and — for compound progressions — the method chosen. A
// primitive-action edge carries an empty MethodName (spec §4.4, §4.7).
type Edge struct {
	TaskID     htn.TaskID
	TaskName   domain.TaskNameID
	MethodName string
	IsMethod   bool
	Next       *Node
}

// Node is one canonical (task network, state) pair owned by a Space. Search
// nodes are shared: multiple edges from different parents may target the
// same Node, and mutation (status, g, h, parent, progressions, goal-tested)
// is the Space's exclusive responsibility (spec §3, §5).
type Node struct {
	ID     NodeID
	TN     *htn.HTN
	State  domain.FactSet
	Status Status
	G, H   float64

	Parent        *Node
	ViaTaskID     htn.TaskID
	ViaTaskName   domain.TaskNameID
	ViaMethodName string
	ViaIsMethod   bool

	GoalTested bool

	Progressions []Edge
}

// F returns the node's current f = g + h value.
func (n *Node) F() float64 {
	return n.G + n.H
}
