package search

import (
	"math"
	"sort"
)

// PriorityQueue is an ordered multimap keyed by f-value with insert,
// remove-by-identity, and pop-min. Ties within a bucket break LIFO — the
// most recently inserted node in a bucket is popped first (spec §4.6).
// Buckets are evicted eagerly on emptying so pop_min never has to skip a
// stale key; a NaN f-value is a contract violation and Insert panics on it.
type PriorityQueue struct {
	buckets map[float64][]*Node
	keys    []float64 // kept sorted ascending; exactly one key per non-empty bucket
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{buckets: make(map[float64][]*Node)}
}

// Insert adds node under its current F() value.
func (q *PriorityQueue) Insert(node *Node) {
	f := node.F()
	if math.IsNaN(f) {
		panic("search: NaN f-value inserted into priority queue")
	}
	if _, ok := q.buckets[f]; !ok {
		q.insertKey(f)
	}
	q.buckets[f] = append(q.buckets[f], node)
}

func (q *PriorityQueue) insertKey(f float64) {
	i := sort.SearchFloat64s(q.keys, f)
	q.keys = append(q.keys, 0)
	copy(q.keys[i+1:], q.keys[i:])
	q.keys[i] = f
}

// Remove deletes node (by identity) from whatever bucket it currently
// occupies, evicting the bucket if it becomes empty. It is a no-op if node
// is not present.
func (q *PriorityQueue) Remove(node *Node) {
	f := node.F()
	bucket, ok := q.buckets[f]
	if !ok {
		return
	}
	for i, n := range bucket {
		if n == node {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(q.buckets, f)
		q.removeKey(f)
		return
	}
	q.buckets[f] = bucket
}

func (q *PriorityQueue) removeKey(f float64) {
	i := sort.SearchFloat64s(q.keys, f)
	if i < len(q.keys) && q.keys[i] == f {
		q.keys = append(q.keys[:i], q.keys[i+1:]...)
	}
}

// PopMin removes and returns the node with the smallest f-value, breaking
// ties LIFO within that bucket. Returns nil if the queue is empty.
func (q *PriorityQueue) PopMin() *Node {
	if len(q.keys) == 0 {
		return nil
	}
	f := q.keys[0]
	bucket := q.buckets[f]
	last := len(bucket) - 1
	node := bucket[last]
	bucket = bucket[:last]
	if len(bucket) == 0 {
		delete(q.buckets, f)
		q.keys = q.keys[1:]
	} else {
		q.buckets[f] = bucket
	}

	return node
}

// IsEmpty reports whether the queue holds no nodes.
func (q *PriorityQueue) IsEmpty() bool {
	return len(q.keys) == 0
}
