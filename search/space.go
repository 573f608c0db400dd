package search

import (
	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/heuristics"
	"github.com/arbortask/fondhtn/htn"
	"github.com/arbortask/fondhtn/relax"
)

// taskCountMixConstant folds a task count into the cheap isomorphism hash.
// Any odd multiplicative constant with good bit dispersion works; this is
// Knuth's 2^64 golden-ratio constant, a common multiplicative-hash choice
// (not a spec requirement — the hash is deliberately weak and collisions
// are resolved by full isomorphism, per spec §4.5, §9).
const taskCountMixConstant uint64 = 0x9E3779B97F4A7C15

// Space owns every canonical search Node for one planner run: it
// canonicalizes progression successors via a cheap hash bucketed by full
// isomorphism comparison, mints stable NodeIDs, and holds the compiled
// relaxation + wrapped heuristic every node's H is computed from (spec
// §4.5).
type Space struct {
	Domain       *domain.Domain
	Composition  *relax.RelaxedComposition
	Bijection    relax.Bijection
	FactCount    domain.FactID
	Heuristic    heuristics.Fn
	buckets      map[uint64][]*Node
	nextID       NodeID
	explored     int
	total        int
	rootNode     *Node
}

// NewSpace builds a Space and its single root canonical node for
// (initialTN, initialState). factCount is the size of the real fact table,
// used to offset the relaxation's synthetic has-done facts so they never
// collide with real ones (package relax).
func NewSpace(initialTN *htn.HTN, initialState domain.FactSet, factCount domain.FactID, kernel heuristics.Kernel) *Space {
	dom := initialTN.Domain()
	composition, bijection := relax.Compile(dom, factCount)
	fn := heuristics.Wrap(composition, kernel)

	space := &Space{
		Domain:      dom,
		Composition: composition,
		Bijection:   bijection,
		FactCount:   factCount,
		Heuristic:   fn,
		buckets:     make(map[uint64][]*Node),
	}

	root := space.mint(initialTN, initialState)
	root.G = 0
	root.H = fn(initialTN, initialState)
	space.rootNode = root

	return space
}

// Root returns the run's initial canonical node.
func (s *Space) Root() *Node { return s.rootNode }

// Explored returns the count of nodes currently closed (spec §4.7's
// explored_nodes counter, which decrements on a beneficial reopening).
func (s *Space) Explored() int { return s.explored }

// Total returns the count of distinct canonical nodes minted so far.
func (s *Space) Total() int { return s.total }

// MarkExplored increments the explored-node counter; MarkReopened
// decrements it. The A* engine calls these at the points spec §4.7's
// pseudocode marks "explored_nodes += 1" / "explored_nodes -= 1".
func (s *Space) MarkExplored() { s.explored++ }
func (s *Space) MarkReopened() { s.explored-- }

func cheapHash(state domain.FactSet, taskCount int) uint64 {
	return state.Sum() ^ (uint64(taskCount) * taskCountMixConstant)
}

// FindIsomorphic returns the canonical node equal to (tn, state), if one
// has already been minted.
func (s *Space) FindIsomorphic(tn *htn.HTN, state domain.FactSet) (*Node, bool) {
	h := cheapHash(state, len(tn.TaskIDSet()))
	for _, candidate := range s.buckets[h] {
		if candidate.State.Equal(state) && htn.IsIsomorphic(candidate.TN, tn) {
			return candidate, true
		}
	}

	return nil, false
}

func (s *Space) mint(tn *htn.HTN, state domain.FactSet) *Node {
	h := cheapHash(state, len(tn.TaskIDSet()))
	node := &Node{
		ID:     s.nextID,
		TN:     tn,
		State:  state,
		Status: StatusNew,
	}
	s.nextID++
	s.total++
	s.buckets[h] = append(s.buckets[h], node)

	return node
}

// RawSuccessor is one successor produced by the progression rule (package
// search's successor.go), not yet canonicalized.
type RawSuccessor struct {
	TN         *htn.HTN
	State      domain.FactSet
	TaskID     htn.TaskID
	TaskName   domain.TaskNameID
	MethodName string
	IsMethod   bool
}

// InstallSuccessors canonicalizes every raw successor of parent, appending
// one Edge per successor to parent.Progressions. A successor matching an
// existing canonical node is folded into it; otherwise a fresh node is
// minted with status new (spec §4.5).
func (s *Space) InstallSuccessors(parent *Node, raws []RawSuccessor) []Edge {
	edges := make([]Edge, 0, len(raws))
	for _, raw := range raws {
		child, ok := s.FindIsomorphic(raw.TN, raw.State)
		if !ok {
			child = s.mint(raw.TN, raw.State)
		}
		edge := Edge{
			TaskID:     raw.TaskID,
			TaskName:   raw.TaskName,
			MethodName: raw.MethodName,
			IsMethod:   raw.IsMethod,
			Next:       child,
		}
		parent.Progressions = append(parent.Progressions, edge)
		edges = append(edges, edge)
	}

	return edges
}
