package search

import (
	"math"
	"time"
)

// Stats accumulates the counters spec §4.7 and §6 require: explored/total
// node counts, wall-clock duration, the derived IPC-style decay score, and
// custom named counters (e.g. AO* subroutine node counts rolled up by the
// strong-policy goal-check wrapper, spec §4.11).
type Stats struct {
	Explored int
	Total    int
	Start    time.Time
	Duration time.Duration
	IPCScore float64
	Custom   map[string]int
}

// NewStats returns empty stats; the clock does not run until StartClock.
func NewStats() *Stats {
	return &Stats{Custom: make(map[string]int)}
}

// StartClock marks the beginning of a timed run.
func (s *Stats) StartClock() { s.Start = time.Now() }

// StopClock records elapsed wall-clock duration.
func (s *Stats) StopClock() { s.Duration = time.Since(s.Start) }

// AddCustom increments a named counter (e.g. "ao_star_nodes").
func (s *Stats) AddCustom(name string, n int) { s.Custom[name] += n }

// IPCDecayScore computes the International-Planning-Competition-style
// normalized logarithmic decay score for a run that took elapsed against a
// budget of timeout: 0 if the run exceeded timeout, otherwise
// 1 - log10(1 + 9*elapsed/timeout), clamped to [0, 1]. Grounded on spec
// §9's glossary entry for IPC score and original_source/planner/src/main.rs's
// scoring convention.
func IPCDecayScore(elapsed, timeout time.Duration) float64 {
	if timeout <= 0 || elapsed >= timeout {
		return 0
	}
	ratio := elapsed.Seconds() / timeout.Seconds()
	score := 1 - math.Log10(1+9*ratio)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}

	return score
}
