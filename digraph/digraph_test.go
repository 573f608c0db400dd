package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortask/fondhtn/digraph"
)

func sampleGraph() *digraph.Graph {
	return digraph.New(
		[]digraph.NodeID{1, 2, 3, 4},
		[][2]digraph.NodeID{{1, 3}, {2, 3}, {3, 4}},
	)
}

func TestNewAndNeighbors(t *testing.T) {
	g := sampleGraph()
	assert.Equal(t, 4, g.CountNodes())
	assert.Contains(t, g.OutgoingNeighbors(1), digraph.NodeID(3))
	assert.Contains(t, g.OutgoingNeighbors(2), digraph.NodeID(3))
	assert.Contains(t, g.OutgoingNeighbors(3), digraph.NodeID(4))
}

func TestUnconstrainedNodes(t *testing.T) {
	g := sampleGraph()
	assert.Equal(t, []digraph.NodeID{1, 2}, g.UnconstrainedNodes())
}

func TestIncomingEdges(t *testing.T) {
	g := sampleGraph()
	assert.Equal(t, []digraph.NodeID{1, 2}, g.IncomingNeighbors(3))
}

func TestRemoveNode(t *testing.T) {
	g := sampleGraph()
	g2 := g.RemoveNode(3)
	assert.Equal(t, 3, g2.CountNodes())
	assert.Equal(t, []digraph.NodeID{1, 2, 4}, g2.UnconstrainedNodes())
	for _, e := range g2.Edges() {
		assert.NotEqual(t, digraph.NodeID(3), e[0])
		assert.NotEqual(t, digraph.NodeID(3), e[1])
	}
}

func TestRemoveNodeMissingIsNoop(t *testing.T) {
	g := sampleGraph()
	g2 := g.RemoveNode(99)
	assert.Equal(t, g.CountNodes(), g2.CountNodes())
}

func TestSplice(t *testing.T) {
	g := digraph.New([]digraph.NodeID{1, 2, 4}, nil)
	sub := digraph.New(
		[]digraph.NodeID{5, 6, 7, 8, 9},
		[][2]digraph.NodeID{{5, 6}, {6, 7}, {6, 8}, {7, 9}, {8, 9}},
	)

	result := g.Splice(sub, []digraph.NodeID{1, 2}, []digraph.NodeID{4})

	assert.ElementsMatch(t, []digraph.NodeID{5}, result.OutgoingNeighbors(1))
	assert.ElementsMatch(t, []digraph.NodeID{5}, result.OutgoingNeighbors(2))
	assert.ElementsMatch(t, []digraph.NodeID{4}, result.OutgoingNeighbors(9))
	assert.ElementsMatch(t, []digraph.NodeID{6}, result.OutgoingNeighbors(5))
	assert.ElementsMatch(t, []digraph.NodeID{7, 8}, result.OutgoingNeighbors(6))
}

func TestSplicePanicsOnCollision(t *testing.T) {
	g := digraph.New([]digraph.NodeID{1, 2}, nil)
	sub := digraph.New([]digraph.NodeID{2, 3}, nil)
	assert.Panics(t, func() {
		g.Splice(sub, nil, nil)
	})
}

func TestToLayers(t *testing.T) {
	g := sampleGraph()
	layers := g.ToLayers()
	require.Len(t, layers, 3)
	assert.Equal(t, []digraph.NodeID{1, 2}, layers[0])
	assert.Equal(t, []digraph.NodeID{3}, layers[1])
	assert.Equal(t, []digraph.NodeID{4}, layers[2])
}

func TestLeafNodes(t *testing.T) {
	g := digraph.New(
		[]digraph.NodeID{1, 2, 3, 4, 5},
		[][2]digraph.NodeID{{1, 3}, {2, 3}, {3, 4}, {3, 5}},
	)
	assert.ElementsMatch(t, []digraph.NodeID{4, 5}, g.LeafNodes())

	g2 := g.RemoveNode(5)
	g2 = g2.RemoveNode(4)
	assert.Equal(t, []digraph.NodeID{3}, g2.LeafNodes())
}

func TestAddNode(t *testing.T) {
	g := digraph.New(
		[]digraph.NodeID{1, 2, 3, 4, 5},
		[][2]digraph.NodeID{{1, 3}, {2, 3}, {3, 4}, {3, 5}},
	)
	result, err := g.AddNode(6, []digraph.NodeID{5, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, result.CountNodes())
	assert.ElementsMatch(t, []digraph.NodeID{5, 4}, result.IncomingNeighbors(6))
}

func TestAddNodeCollision(t *testing.T) {
	g := sampleGraph()
	_, err := g.AddNode(1, nil, nil)
	assert.ErrorIs(t, err, digraph.ErrNodeExists)
}
