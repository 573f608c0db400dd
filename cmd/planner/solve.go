package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/arbortask/fondhtn/heuristics"
	"github.com/arbortask/fondhtn/problem"
	"github.com/arbortask/fondhtn/search"
)

type solverVariant int

const (
	variantFlexible solverVariant = iota
	variantFixed
)

type heuristicChoice int

const (
	heuristicDefault heuristicChoice = iota
	heuristicAdd
	heuristicMax
	heuristicFF
)

// searchTimeout bounds only the IPC-style decay score (spec §5: "timeouts
// are not a first-class feature"); it never interrupts a running search.
const searchTimeout = 60 * time.Second

// smallSearchSpaceThreshold is the node-count cutoff under which the CLI
// prints the full search-space tree, per spec §6's "for small search spaces,
// the search-space tree".
const smallSearchSpaceThreshold = 200

func kernelFor(variant solverVariant, choice heuristicChoice) heuristics.Kernel {
	switch choice {
	case heuristicAdd:
		return heuristics.HAdd
	case heuristicMax:
		return heuristics.HMax
	case heuristicFF:
		return heuristics.HFF
	case heuristicDefault:
		if variant == variantFixed {
			return heuristics.HZero
		}

		return heuristics.HAdd
	default:
		return heuristics.HZero
	}
}

func run(logger *zap.SugaredLogger, path string, variant solverVariant, choice heuristicChoice) error {
	prob, err := problem.Load(path)
	if err != nil {
		return err
	}

	kernel := kernelFor(variant, choice)
	space := search.NewSpace(prob.InitialTask, prob.InitState, prob.Facts.Count(), kernel)

	switch variant {
	case variantFixed:
		return runFixed(logger, prob, space)
	default:
		return runFlexible(logger, prob, space)
	}
}

func runFixed(logger *zap.SugaredLogger, prob *problem.FONDProblem, space *search.Space) error {
	result, stats := search.RunAStar(space, search.StrongOD, search.UnitEdgeWeight, searchTimeout)
	printStats(logger, stats)

	if result.Kind != search.Strong {
		logger.Info("no solution")

		return nil
	}

	printPolicy(logger, prob, result.Policy)
	printSearchTree(logger, space)

	return nil
}

func runFlexible(logger *zap.SugaredLogger, prob *problem.FONDProblem, space *search.Space) error {
	stats := search.NewStats()
	stats.StartClock()
	policy, solved := search.RunAOStar(space, prob.InitialTask, prob.InitState, stats)
	stats.StopClock()
	stats.Explored = space.Explored()
	stats.Total = space.Total()
	stats.IPCScore = search.IPCDecayScore(stats.Duration, searchTimeout)
	printStats(logger, stats)

	if !solved {
		logger.Info("no solution")

		return nil
	}

	printPolicy(logger, prob, policy)

	return nil
}
