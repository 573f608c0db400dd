package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/heuristics"
	"github.com/arbortask/fondhtn/htn"
	"github.com/arbortask/fondhtn/search"
)

const (
	primA domain.TaskNameID = iota
	primB
	primE
	primX
	compInit
	compC
	compD
)

func noopAction(name string) *domain.PrimitiveAction {
	return &domain.PrimitiveAction{
		Name:          name,
		Preconditions: domain.NewFactSet(),
		Outcomes:      []domain.Outcome{{Add: domain.NewFactSet(), Del: domain.NewFactSet()}},
	}
}

// buildS1Domain reproduces spec scenario S1.
func buildS1Domain() *domain.Domain {
	entries := map[domain.TaskNameID]domain.Task{
		primA: noopAction("prim_a"),
		primB: noopAction("prim_b"),
		primE: noopAction("prim_e"),
		primX: noopAction("prim_x"),
		compD: &domain.CompoundTask{
			Name: "comp_d",
			Methods: []domain.Method{
				{Name: "m_d", Subtasks: []domain.TaskNameID{primE}},
			},
		},
		compC: &domain.CompoundTask{
			Name: "comp_c",
			Methods: []domain.Method{
				{Name: "m_c", Subtasks: []domain.TaskNameID{primB, compD}, Orderings: [][2]int{{0, 1}}},
			},
		},
		compInit: &domain.CompoundTask{
			Name: "comp_init",
			Methods: []domain.Method{
				{
					Name:      "m_init",
					Subtasks:  []domain.TaskNameID{primA, compC, primX},
					Orderings: [][2]int{{0, 1}, {1, 2}},
				},
			},
		},
	}

	return domain.New(entries)
}

func TestAStarWeakLinearizationS1(t *testing.T) {
	dom := buildS1Domain()
	initTN := htn.New([]htn.TaskID{0}, nil, dom, map[htn.TaskID]domain.TaskNameID{0: compInit})

	space := search.NewSpace(initTN, domain.NewFactSet(), 0, heuristics.HAdd)
	result, stats := search.RunAStar(space, search.WeakLD, search.UnitEdgeWeight, time.Second)

	require.Equal(t, search.Linear, result.Kind)
	require.NotEmpty(t, result.Linearization)

	var order []domain.TaskNameID
	for _, step := range result.Linearization {
		if step.ViaIsMethod {
			continue
		}
		if step.Node.Parent == nil {
			continue
		}
		order = append(order, step.ViaTaskName)
	}
	assert.Equal(t, []domain.TaskNameID{primA, primB, primE, primX}, order)
	assert.Greater(t, stats.Total, 0)
}
