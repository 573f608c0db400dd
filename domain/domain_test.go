package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortask/fondhtn/domain"
)

func TestPrimitiveActionApplicableAndTransition(t *testing.T) {
	a := &domain.PrimitiveAction{
		Name:          "a",
		Preconditions: domain.NewFactSet(1),
		Outcomes: []domain.Outcome{
			{Add: domain.NewFactSet(2), Del: domain.NewFactSet()},
			{Add: domain.NewFactSet(), Del: domain.NewFactSet(1)},
		},
	}

	state := domain.NewFactSet(1)
	assert.True(t, a.IsApplicable(state))

	outcomes := a.Transition(state)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Contains(1))
	assert.True(t, outcomes[0].Contains(2))
	assert.False(t, outcomes[1].Contains(1))
}

func TestPrimitiveActionNotApplicable(t *testing.T) {
	a := &domain.PrimitiveAction{
		Name:          "a",
		Preconditions: domain.NewFactSet(1, 2),
		Outcomes:      []domain.Outcome{{Add: domain.NewFactSet(), Del: domain.NewFactSet()}},
	}
	assert.False(t, a.IsApplicable(domain.NewFactSet(1)))
}

func TestDomainLookup(t *testing.T) {
	a := &domain.PrimitiveAction{Name: "a", Outcomes: []domain.Outcome{{}}}
	c := &domain.CompoundTask{Name: "c", Methods: []domain.Method{{Name: "m", Subtasks: []domain.TaskNameID{0}}}}
	d := domain.New(map[domain.TaskNameID]domain.Task{0: a, 1: c})

	assert.True(t, d.IsPrimitive(0))
	assert.True(t, d.IsCompound(1))
	assert.Panics(t, func() { d.MustTask(99) })
}

func TestFactSetOps(t *testing.T) {
	s1 := domain.NewFactSet(1, 2, 3)
	s2 := domain.NewFactSet(2, 3, 4)
	assert.Equal(t, domain.NewFactSet(1, 2, 3, 4), s1.Union(s2))
	assert.Equal(t, domain.NewFactSet(1), s1.Minus(s2))
	assert.True(t, domain.NewFactSet(2, 3).IsSubsetOf(s1))
	assert.False(t, s1.Equal(s2))
}
