package search

import (
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
)

// AOKind tags an AO* node as OR (a choice among method or action
// expansions) or AND (a bundle of non-deterministic outcomes that must all
// be solved), per spec §3, §4.10.
type AOKind int

const (
	OrNode AOKind = iota
	AndNode
)

// AOStatus is an AO* node's solved/failed lifecycle state.
type AOStatus int

const (
	AONew AOStatus = iota
	AOOnGoing
	AOSolved
	AOFailed
)

// AOEdge is one successor of an AO* node, labeled by the method or action
// name that produced it.
type AOEdge struct {
	Label    string
	IsMethod bool
	Next     *AONode
}

// AONode is one AND/OR search node: an OR node choosing among method
// decompositions and primitive-action commitments, or an AND node bundling
// one child per non-deterministic outcome of a chosen action.
type AONode struct {
	ID     NodeID
	Kind   AOKind
	TN     *htn.HTN
	State  domain.FactSet
	Status AOStatus
	Value  float64

	MarkedSuccessor int
	Successors      []AOEdge
	Parents         []*AONode

	OnStack bool

	// Set on AND nodes: the primitive task instance (and its task name) the
	// node bundles outcomes for. expandAndNode and policy extraction read it.
	ActionTaskName domain.TaskNameID
	ActionTaskID   htn.TaskID
}

type aoSpace struct {
	space   *Space
	buckets map[uint64][]*AONode
	nextID  NodeID
}

func newAOSpace(space *Space) *aoSpace {
	return &aoSpace{space: space, buckets: make(map[uint64][]*AONode)}
}

func (a *aoSpace) find(tn *htn.HTN, state domain.FactSet, kind AOKind) (*AONode, bool) {
	h := cheapHash(state, len(tn.TaskIDSet())) ^ uint64(kind)
	for _, candidate := range a.buckets[h] {
		if candidate.State.Equal(state) && htn.IsIsomorphic(candidate.TN, tn) {
			return candidate, true
		}
	}

	return nil, false
}

func (a *aoSpace) mint(tn *htn.HTN, state domain.FactSet, kind AOKind) *AONode {
	node := &AONode{
		ID:              a.nextID,
		Kind:            kind,
		TN:              tn,
		State:           state,
		Status:          AONew,
		MarkedSuccessor: -1,
	}
	a.nextID++
	h := cheapHash(state, len(tn.TaskIDSet())) ^ uint64(kind)
	a.buckets[h] = append(a.buckets[h], node)

	return node
}

// findOrMint canonicalizes (tn, state, kind): an existing onStack node
// (one on the currently active marked path) is never linked to directly —
// spec §4.10's cycle guard treats such a back-edge as failed instead, so a
// fresh isolated failed placeholder is returned. Otherwise an existing
// canonical node is reused, or a fresh one minted.
func (a *aoSpace) findOrMint(tn *htn.HTN, state domain.FactSet, kind AOKind) *AONode {
	if existing, ok := a.find(tn, state, kind); ok {
		if existing.OnStack {
			placeholder := &AONode{ID: a.nextID, Kind: kind, TN: tn, State: state, Status: AOFailed, MarkedSuccessor: -1}
			a.nextID++

			return placeholder
		}

		return existing
	}

	return a.mint(tn, state, kind)
}
