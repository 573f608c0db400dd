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

// S3 scenario names, reproduced verbatim from spec scenario S3.
const (
	s3PrimA domain.TaskNameID = iota
	s3PrimB
	s3PrimC
	s3PrimB2 // "second B", reusing B's display name on a distinct catalog entry
	s3PrimA3
	s3PrimA5
	s3PrimA6
	s3CompInit
	s3CompC2
	s3CompC4
)

// noopAction is defined in astar_test.go and reused here.

func buildS3Domain() *domain.Domain {
	entries := map[domain.TaskNameID]domain.Task{
		s3PrimA:  noopAction("A"),
		s3PrimB:  noopAction("B"),
		s3PrimC:  noopAction("C"),
		s3PrimB2: noopAction("B"),
		s3PrimA3: noopAction("A3"),
		s3PrimA5: noopAction("A5"),
		s3PrimA6: noopAction("A6"),
		s3CompC4: &domain.CompoundTask{
			Name: "C4",
			Methods: []domain.Method{
				{Name: "m2", Subtasks: []domain.TaskNameID{s3PrimA6}},
			},
		},
		s3CompC2: &domain.CompoundTask{
			Name: "C2",
			Methods: []domain.Method{
				{
					Name:      "m1",
					Subtasks:  []domain.TaskNameID{s3PrimA3, s3CompC4, s3PrimA5},
					Orderings: [][2]int{{0, 1}, {1, 2}},
				},
			},
		},
		s3CompInit: &domain.CompoundTask{
			Name: "init",
			Methods: []domain.Method{
				{Name: "minit", Subtasks: []domain.TaskNameID{s3PrimA, s3CompC2}, Orderings: [][2]int{{0, 1}}},
			},
		},
	}

	return domain.New(entries)
}

func TestDeorderReconstructsMinimalPartialOrderS3(t *testing.T) {
	dom := buildS3Domain()
	initTN := htn.New([]htn.TaskID{0}, nil, dom, map[htn.TaskID]domain.TaskNameID{0: s3CompInit})

	space := search.NewSpace(initTN, domain.NewFactSet(), 0, heuristics.HAdd)
	result, _ := search.RunAStar(space, search.WeakLD, search.UnitEdgeWeight, time.Second)
	require.Equal(t, search.Linear, result.Kind)
	require.NotEmpty(t, result.Linearization)

	leaf := result.Linearization[len(result.Linearization)-1].Node
	require.True(t, leaf.TN.IsEmpty())

	deordered := search.Deorder(leaf)

	nameByID := deordered.Mappings()
	idByName := make(map[domain.TaskNameID]htn.TaskID, len(nameByID))
	for id, name := range nameByID {
		idByName[name] = id
	}
	require.Len(t, idByName, 4)
	for _, name := range []domain.TaskNameID{s3PrimA, s3PrimA3, s3PrimA5, s3PrimA6} {
		_, ok := idByName[name]
		assert.True(t, ok, "expected task name %d in de-ordered network", name)
	}

	wantEdges := [][2]domain.TaskNameID{
		{s3PrimA, s3PrimA3},
		{s3PrimA3, s3PrimA6},
		{s3PrimA6, s3PrimA5},
	}
	gotEdges := deordered.Edges()
	require.Len(t, gotEdges, len(wantEdges))
	for _, want := range wantEdges {
		found := false
		for _, edge := range gotEdges {
			if nameByID[edge[0]] == want[0] && nameByID[edge[1]] == want[1] {
				found = true

				break
			}
		}
		assert.True(t, found, "expected ordering %d<%d", want[0], want[1])
	}
}
