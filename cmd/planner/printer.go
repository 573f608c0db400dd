package main

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/arbortask/fondhtn/problem"
	"github.com/arbortask/fondhtn/search"
)

func printStats(logger *zap.SugaredLogger, stats *search.Stats) {
	logger.Infow("search finished",
		"explored_nodes", stats.Explored,
		"total_nodes", stats.Total,
		"duration", stats.Duration,
		"ipc_score", stats.IPCScore,
	)

	if len(stats.Custom) == 0 {
		return
	}

	names := make([]string, 0, len(stats.Custom))
	for name := range stats.Custom {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		logger.Infow("custom counter", "name", name, "value", stats.Custom[name])
	}
}

func printPolicy(logger *zap.SugaredLogger, prob *problem.FONDProblem, policy *search.Policy) {
	if policy == nil || len(policy.Entries) == 0 {
		logger.Info("strong policy: empty (initial task already satisfied)")

		return
	}

	entries := make([]search.PolicyEntry, 0, len(policy.Entries))
	for _, e := range policy.Entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Depth != entries[j].Depth {
			return entries[i].Depth < entries[j].Depth
		}

		return entries[i].NodeID < entries[j].NodeID
	})

	var b strings.Builder
	b.WriteString("strong policy:\n")
	for _, e := range entries {
		kind := "action"
		if e.IsMethod {
			kind = "method"
		}
		fmt.Fprintf(&b, "  [depth %d] node %d: %s %q on task %q\n",
			e.Depth, e.NodeID, kind, e.Label, prob.TaskNames.Name(e.TaskName))
	}

	logger.Info(strings.TrimRight(b.String(), "\n"))
}

// printSearchTree prints the full A* search-space tree rooted at space's
// root node when the total node count stays under
// smallSearchSpaceThreshold, per spec §6.
func printSearchTree(logger *zap.SugaredLogger, space *search.Space) {
	if space.Total() > smallSearchSpaceThreshold {
		logger.Infow("search-space tree omitted: too large", "total_nodes", space.Total())

		return
	}

	var b strings.Builder
	b.WriteString("search-space tree:\n")
	visited := make(map[search.NodeID]bool)
	writeTree(&b, space.Root(), 0, visited)

	logger.Info(strings.TrimRight(b.String(), "\n"))
}

func writeTree(b *strings.Builder, node *search.Node, depth int, visited map[search.NodeID]bool) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%snode %d (g=%.1f h=%.1f f=%.1f)\n", indent, node.ID, node.G, node.H, node.F())

	if visited[node.ID] {
		return
	}
	visited[node.ID] = true

	for _, edge := range node.Progressions {
		writeTree(b, edge.Next, depth+1, visited)
	}
}
