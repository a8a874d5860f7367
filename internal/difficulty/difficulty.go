// Package difficulty estimates how hard a puzzle is to solve by running the
// exact-cover solver across several isomorphic shuffles of the same board
// and aggregating the forward/backtrack search-effort counters.
//
// Grounded on original_source/native/sudoku_native.c's estimate_difficulty:
// same base-seed-plus-stride scheme (stride 12345, flagged in spec.md
// section 9 as an arbitrary but harmless constant) and the same
// min/max/avg aggregation over valid samples only.
package difficulty

import (
	"github.com/latinforge/xcover/internal/cover"
	"github.com/latinforge/xcover/internal/isomorph"
	"github.com/latinforge/xcover/internal/rng"
	"github.com/latinforge/xcover/internal/solver"
)

// seedStride is the gap between successive isomorph seeds. Any value
// roughly coprime with 2^32 works; spec.md section 9 explicitly leaves this
// unconstrained.
const seedStride = 12345

// Stats aggregates the solver's difficulty counters across samples.
type Stats struct {
	MinForward, MaxForward, AvgForward       int
	MinBacktrack, MaxBacktrack, AvgBacktrack int
	Samples                                  int
}

// Estimate runs samples isomorphic shuffles of board through the solver,
// seeded from baseSeed, and reports aggregate search-effort stats. It
// returns ok=false if any sample is INVALID or MULTIPLE, since that means
// the puzzle itself is ill-formed rather than merely hard.
func Estimate(g *cover.Graph, board []byte, samples int, baseSeed uint32) (Stats, bool) {
	var (
		totalForward, totalBacktrack int
		minForward, maxForward       = -1, 0
		minBacktrack, maxBacktrack   = -1, 0
		valid                        int
	)

	for i := 0; i < samples; i++ {
		seed := baseSeed + uint32(i)*seedStride
		shuffled := isomorph.Apply(board, g.Box, rng.New(seed))

		res := solver.Solve(g, shuffled)
		if res.Status != solver.Complete {
			return Stats{}, false
		}

		totalForward += res.ForwardCount
		totalBacktrack += res.BacktrackCount
		if minForward < 0 || res.ForwardCount < minForward {
			minForward = res.ForwardCount
		}
		if res.ForwardCount > maxForward {
			maxForward = res.ForwardCount
		}
		if minBacktrack < 0 || res.BacktrackCount < minBacktrack {
			minBacktrack = res.BacktrackCount
		}
		if res.BacktrackCount > maxBacktrack {
			maxBacktrack = res.BacktrackCount
		}
		valid++
	}

	if valid == 0 {
		return Stats{}, false
	}

	return Stats{
		MinForward:   minForward,
		MaxForward:   maxForward,
		AvgForward:   totalForward / valid,
		MinBacktrack: minBacktrack,
		MaxBacktrack: maxBacktrack,
		AvgBacktrack: totalBacktrack / valid,
		Samples:      valid,
	}, true
}
