package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/heuristics"
	"github.com/arbortask/fondhtn/htn"
	"github.com/arbortask/fondhtn/search"
)

// S4 scenario: a strong policy must branch on which of a's two outcomes
// occurred, committing to b when f1 holds and to c when f2 holds instead.
const (
	s4FactF1 domain.FactID = iota
	s4FactF2
)

const (
	s4PrimA domain.TaskNameID = iota
	s4PrimB
	s4PrimC
	s4CompInit
	s4CompT
)

func buildS4Domain() *domain.Domain {
	entries := map[domain.TaskNameID]domain.Task{
		s4PrimA: &domain.PrimitiveAction{
			Name:          "a",
			Preconditions: domain.NewFactSet(),
			Outcomes: []domain.Outcome{
				{Add: domain.NewFactSet(s4FactF1), Del: domain.NewFactSet()},
				{Add: domain.NewFactSet(s4FactF2), Del: domain.NewFactSet()},
			},
		},
		s4PrimB: &domain.PrimitiveAction{
			Name:          "b",
			Preconditions: domain.NewFactSet(s4FactF1),
			Outcomes:      []domain.Outcome{{Add: domain.NewFactSet(s4FactF2), Del: domain.NewFactSet()}},
		},
		s4PrimC: &domain.PrimitiveAction{
			Name:          "c",
			Preconditions: domain.NewFactSet(s4FactF2),
			Outcomes:      []domain.Outcome{{Add: domain.NewFactSet(s4FactF1), Del: domain.NewFactSet()}},
		},
		s4CompT: &domain.CompoundTask{
			Name: "t",
			Methods: []domain.Method{
				{Name: "mt", Subtasks: []domain.TaskNameID{s4PrimB, s4PrimC}},
			},
		},
		s4CompInit: &domain.CompoundTask{
			Name: "init",
			Methods: []domain.Method{
				{Name: "minit", Subtasks: []domain.TaskNameID{s4PrimA, s4CompT}, Orderings: [][2]int{{0, 1}}},
			},
		},
	}

	return domain.New(entries)
}

func TestAOStarStrongPolicyBranchesOnOutcomeS4(t *testing.T) {
	dom := buildS4Domain()
	initTN := htn.New([]htn.TaskID{0}, nil, dom, map[htn.TaskID]domain.TaskNameID{0: s4CompInit})

	space := search.NewSpace(initTN, domain.NewFactSet(), 2, heuristics.HAdd)
	stats := search.NewStats()

	policy, solved := search.RunAOStar(space, initTN, domain.NewFactSet(), stats)
	require.True(t, solved, "a strong policy exists: a then whichever of b/c applies")
	require.NotNil(t, policy)
	require.NotEmpty(t, policy.Entries)

	labels := make(map[string]bool, len(policy.Entries))
	for _, entry := range policy.Entries {
		labels[entry.Label] = true
	}
	assert.True(t, labels["b"], "policy must commit to b on the outcome that establishes f1")
	assert.True(t, labels["c"], "policy must commit to c on the outcome that establishes f2")
}

// S5 scenario: a strong policy exists only by taking the non-cyclic branch
// of a recursive compound, terminating a self-referential decomposition
// rather than looping forever. This reproduces the maintainer's minimal
// repro for the reviseOr fix: a method that decomposes straight back into
// the same task/state must never be preferred over a genuinely expandable
// sibling.
const (
	s5PrimNoop domain.TaskNameID = iota
	s5CompInit
	s5CompT
)

func buildS5Domain() *domain.Domain {
	entries := map[domain.TaskNameID]domain.Task{
		s5PrimNoop: &domain.PrimitiveAction{
			Name:          "noop",
			Preconditions: domain.NewFactSet(),
			Outcomes:      []domain.Outcome{{Add: domain.NewFactSet(), Del: domain.NewFactSet()}},
		},
		s5CompT: &domain.CompoundTask{
			Name: "t",
			Methods: []domain.Method{
				{Name: "m_cyc", Subtasks: []domain.TaskNameID{s5CompT}},
				{Name: "m_ok", Subtasks: []domain.TaskNameID{s5PrimNoop}},
			},
		},
		s5CompInit: &domain.CompoundTask{
			Name: "init",
			Methods: []domain.Method{
				{Name: "minit", Subtasks: []domain.TaskNameID{s5CompT}},
			},
		},
	}

	return domain.New(entries)
}

func TestAOStarTerminatesOnCyclicRecursionS5(t *testing.T) {
	dom := buildS5Domain()
	initTN := htn.New([]htn.TaskID{0}, nil, dom, map[htn.TaskID]domain.TaskNameID{0: s5CompInit})

	space := search.NewSpace(initTN, domain.NewFactSet(), 0, heuristics.HAdd)
	stats := search.NewStats()

	policy, solved := search.RunAOStar(space, initTN, domain.NewFactSet(), stats)
	require.True(t, solved, "init->t->m_ok->noop is a strong policy; the self-recursive m_cyc branch must not mask it")
	require.NotNil(t, policy)

	sawTerminatingChoice := false
	for _, entry := range policy.Entries {
		if entry.Label == "m_ok" {
			sawTerminatingChoice = true
		}
		assert.NotEqual(t, "m_cyc", entry.Label, "policy must never commit to the self-recursive method")
	}
	assert.True(t, sawTerminatingChoice, "policy must commit to m_ok to terminate the recursion")
}
