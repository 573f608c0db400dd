package relax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/relax"
)

const (
	factOnTable domain.FactID = iota
	factHeld
	factCount
)

const (
	primPickup domain.TaskNameID = iota
	compGetBlock
)

func buildPickupDomain() *domain.Domain {
	entries := map[domain.TaskNameID]domain.Task{
		primPickup: &domain.PrimitiveAction{
			Name:          "pickup",
			Preconditions: domain.NewFactSet(factOnTable),
			Outcomes: []domain.Outcome{
				{Add: domain.NewFactSet(factHeld), Del: domain.NewFactSet(factOnTable)},
			},
		},
		compGetBlock: &domain.CompoundTask{
			Name: "get-block",
			Methods: []domain.Method{
				{Name: "m-pickup", Subtasks: []domain.TaskNameID{primPickup}},
			},
		},
	}

	return domain.New(entries)
}

func TestCompilePrimitiveAddsHasDone(t *testing.T) {
	dom := buildPickupDomain()
	composition, bijection := relax.Compile(dom, factCount)

	pickupDone, ok := bijection[primPickup]
	require.True(t, ok)
	assert.GreaterOrEqual(t, pickupDone, factCount)

	var pickupAction *relax.ClassicalAction
	for i := range composition.Domain.Actions {
		if composition.Domain.Actions[i].Name == "pickup#0" {
			pickupAction = &composition.Domain.Actions[i]
		}
	}
	require.NotNil(t, pickupAction)
	assert.True(t, pickupAction.Pre.Equal(domain.NewFactSet(factOnTable)))
	assert.True(t, pickupAction.Add.Contains(factHeld))
	assert.True(t, pickupAction.Add.Contains(pickupDone))
}

func TestCompileCompoundGatesOnTerminalSubtasks(t *testing.T) {
	dom := buildPickupDomain()
	composition, bijection := relax.Compile(dom, factCount)

	pickupDone := bijection[primPickup]
	getBlockDone := bijection[compGetBlock]

	var methodAction *relax.ClassicalAction
	for i := range composition.Domain.Actions {
		if composition.Domain.Actions[i].Name == "get-block/m-pickup" {
			methodAction = &composition.Domain.Actions[i]
		}
	}
	require.NotNil(t, methodAction)
	assert.True(t, methodAction.Pre.Equal(domain.NewFactSet(pickupDone)))
	assert.True(t, methodAction.Add.Equal(domain.NewFactSet(getBlockDone)))
}

func TestRelaxedGoalIsHasDoneMultiset(t *testing.T) {
	dom := buildPickupDomain()
	composition, bijection := relax.Compile(dom, factCount)

	taskIDs := []domain.FactID{bijection[primPickup], bijection[compGetBlock]}
	goal := composition.RelaxedGoal(taskIDs)

	assert.True(t, goal.Contains(bijection[primPickup]))
	assert.True(t, goal.Contains(bijection[compGetBlock]))
	assert.Len(t, goal, 2)
}

func TestRelaxedStateLeavesRealFactsUnchanged(t *testing.T) {
	dom := buildPickupDomain()
	composition, _ := relax.Compile(dom, factCount)

	state := domain.NewFactSet(factOnTable)
	relaxed := composition.RelaxedState(nil, state)
	assert.True(t, relaxed.Equal(state))
}
