package htn

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arbortask/fondhtn/domain"
)

// IsIsomorphic reports whether there is a bijection between a's and b's
// task-id sets that preserves task-name labels and orderings. The
// implementation refines an initial coloring (by task-name, then by the
// multiset of neighbor/predecessor colors, iterated to a fixed point) to
// prune the search, then verifies a full bijection by constrained
// backtracking. Any correct equivalence relation is acceptable per spec
// §4.2; the refinement is purely a performance aid.
func IsIsomorphic(a, b *HTN) bool {
	idsA := a.TaskIDSet()
	idsB := b.TaskIDSet()
	if len(idsA) != len(idsB) {
		return false
	}
	if !sameMultiset(a.CountTasksWithFrequency(), b.CountTasksWithFrequency()) {
		return false
	}

	colorsA := refineColors(a)
	colorsB := refineColors(b)

	// Group b's ids by (color, task-name) signature for candidate lookup.
	candidatesOf := make(map[string][]TaskID)
	for _, id := range idsB {
		sig := colorSignature(colorsB[id], b.mapping[id])
		candidatesOf[sig] = append(candidatesOf[sig], id)
	}

	used := make(map[TaskID]bool, len(idsB))
	assignment := make(map[TaskID]TaskID, len(idsA))

	var backtrack func(i int) bool
	backtrack = func(i int) bool {
		if i == len(idsA) {
			return true
		}
		id := idsA[i]
		sig := colorSignature(colorsA[id], a.mapping[id])
		for _, cand := range candidatesOf[sig] {
			if used[cand] {
				continue
			}
			if !consistent(a, b, assignment, id, cand) {
				continue
			}
			assignment[id] = cand
			used[cand] = true
			if backtrack(i + 1) {
				return true
			}
			delete(assignment, id)
			used[cand] = false
		}

		return false
	}

	return backtrack(0)
}

// consistent checks that mapping id -> cand does not contradict any edge
// already fixed by assignment.
func consistent(a, b *HTN, assignment map[TaskID]TaskID, id, cand TaskID) bool {
	for _, out := range a.graph.OutgoingNeighbors(id) {
		if mapped, ok := assignment[out]; ok {
			if !containsID(b.graph.OutgoingNeighbors(cand), mapped) {
				return false
			}
		}
	}
	for _, in := range a.graph.IncomingNeighbors(id) {
		if mapped, ok := assignment[in]; ok {
			if !containsID(b.graph.IncomingNeighbors(cand), mapped) {
				return false
			}
		}
	}
	// Also verify already-assigned a-nodes whose edges point at id are
	// consistent with edges pointing at cand in b, from the other direction.
	for aID, bID := range assignment {
		if containsID(a.graph.OutgoingNeighbors(aID), id) != containsID(b.graph.OutgoingNeighbors(bID), cand) {
			return false
		}
		if containsID(a.graph.IncomingNeighbors(aID), id) != containsID(b.graph.IncomingNeighbors(bID), cand) {
			return false
		}
	}

	return true
}

func containsID(ids []TaskID, target TaskID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}

	return false
}

func sameMultiset(a, b map[domain.TaskNameID]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}

	return true
}

// refineColors computes a stable coloring of t's task-ids via iterative
// refinement: a node's color starts as its task-name and is repeatedly
// refined by the sorted multiset of its neighbors' and predecessors' colors,
// until the partition stops changing (bounded by the number of nodes).
func refineColors(t *HTN) map[TaskID]string {
	ids := t.TaskIDSet()
	color := make(map[TaskID]string, len(ids))
	for _, id := range ids {
		color[id] = sprintUint(t.mapping[id])
	}

	countClasses := func(c map[TaskID]string) int {
		seen := make(map[string]struct{}, len(c))
		for _, s := range c {
			seen[s] = struct{}{}
		}
		return len(seen)
	}

	for iter := 0; iter < len(ids)+1; iter++ {
		next := make(map[TaskID]string, len(ids))
		for _, id := range ids {
			next[id] = refinedSignature(t, color, id)
		}
		// Every refined color embeds the previous one, so refinement only
		// splits classes: an unchanged class count is an unchanged partition.
		stable := countClasses(next) == countClasses(color)
		color = next
		if stable {
			break
		}
	}

	return color
}

func refinedSignature(t *HTN, color map[TaskID]string, id TaskID) string {
	out := t.graph.OutgoingNeighbors(id)
	in := t.graph.IncomingNeighbors(id)
	outColors := make([]string, len(out))
	for i, n := range out {
		outColors[i] = color[n]
	}
	inColors := make([]string, len(in))
	for i, n := range in {
		inColors[i] = color[n]
	}
	sort.Strings(outColors)
	sort.Strings(inColors)

	return color[id] + "|" + strings.Join(outColors, ",") + "|" + strings.Join(inColors, ",")
}

func colorSignature(color string, name domain.TaskNameID) string {
	return color + "#" + sprintUint(name)
}

func sprintUint(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
