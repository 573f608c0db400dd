package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbortask/fondhtn/search"
)

func nodeWithF(f float64) *search.Node {
	return &search.Node{G: f}
}

// TestPriorityQueueS6 reproduces spec scenario S6: insert nodes with
// f-values 3.0, 1.0, 2.0; remove the 2.0 node; pop_min returns 1.0, then
// 3.0, then nil.
func TestPriorityQueueS6(t *testing.T) {
	q := search.NewPriorityQueue()
	n3 := nodeWithF(3.0)
	n1 := nodeWithF(1.0)
	n2 := nodeWithF(2.0)

	q.Insert(n3)
	q.Insert(n1)
	q.Insert(n2)
	q.Remove(n2)

	first := q.PopMin()
	require.NotNil(t, first)
	assert.Equal(t, 1.0, first.F())

	second := q.PopMin()
	require.NotNil(t, second)
	assert.Equal(t, 3.0, second.F())

	assert.Nil(t, q.PopMin())
}

func TestPriorityQueueLIFOTieBreak(t *testing.T) {
	q := search.NewPriorityQueue()
	first := nodeWithF(1.0)
	second := nodeWithF(1.0)
	q.Insert(first)
	q.Insert(second)

	assert.Same(t, second, q.PopMin())
	assert.Same(t, first, q.PopMin())
}
