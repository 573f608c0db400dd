package heuristics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/heuristics"
	"github.com/arbortask/fondhtn/relax"
)

const (
	factA domain.FactID = iota
	factB
	factC
)

// chain: factA -> factB -> factC, each step costing 1.
func buildChainDomain() *relax.ClassicalDomain {
	return &relax.ClassicalDomain{
		Actions: []relax.ClassicalAction{
			{Name: "a-to-b", Pre: domain.NewFactSet(factA), Add: domain.NewFactSet(factB)},
			{Name: "b-to-c", Pre: domain.NewFactSet(factB), Add: domain.NewFactSet(factC)},
		},
	}
}

func TestHMaxChain(t *testing.T) {
	cd := buildChainDomain()
	state := domain.NewFactSet(factA)
	goal := domain.NewFactSet(factC)
	assert.Equal(t, 2.0, heuristics.HMax(cd, state, goal))
}

func TestHAddSumsIndependentGoals(t *testing.T) {
	cd := buildChainDomain()
	state := domain.NewFactSet(factA)
	goal := domain.NewFactSet(factB, factC)
	assert.Equal(t, 3.0, heuristics.HAdd(cd, state, goal))
}

func TestHeuristicUnreachableGoalIsInfinite(t *testing.T) {
	cd := buildChainDomain()
	state := domain.NewFactSet(factB)
	goal := domain.NewFactSet(factA)
	assert.True(t, math.IsInf(heuristics.HMax(cd, state, goal), 1))
	assert.True(t, math.IsInf(heuristics.HAdd(cd, state, goal), 1))
}

func TestHFFCountsDistinctPlanActions(t *testing.T) {
	cd := buildChainDomain()
	state := domain.NewFactSet(factA)
	goal := domain.NewFactSet(factC)
	assert.Equal(t, 2.0, heuristics.HFF(cd, state, goal))
}
