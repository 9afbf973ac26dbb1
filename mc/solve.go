package mc

import (
	"math"
	"time"

	"github.com/mlindqvist/voxelmatch/blockset"
	"github.com/mlindqvist/voxelmatch/gridbox"
)

// Result is Solve's output: the best labeling found for both objects, its
// score, and the total iteration count across every restart (spec.md §6's
// solver-output contract; the dense-relabeling/serialization step that
// turns this into the final K + ids text format is an external CLI's job).
type Result struct {
	G1, G2   []uint16
	Score    float64
	RunCount uint64
}

// Solve runs opts.MCRun restarts (fewer if budget expires first) against a
// pair of silhouettes, returning the best Result seen across all of them.
//
// Complexity: O(MCRun) calls to Run, each O(D^3) to build/reset its
// GridBoxes plus its own iteration cost.
func Solve(front1, right1, front2, right2 gridbox.Silhouette, opts Options) (Result, error) {
	g1, err := gridbox.NewGridBox(front1, right1)
	if err != nil {
		return Result{}, err
	}
	g2, err := gridbox.NewGridBox(front2, right2)
	if err != nil {
		return Result{}, err
	}
	hole1 := g1.MakeHole()
	hole2 := g2.MakeHole()

	budget := NewSolveBudget(opts.TimeLimit, opts.clock())
	baseRNG := rngFromSeed(opts.Seed)

	best := Result{Score: math.Inf(1)}
	var runCount uint64

	for i := uint64(0); i < opts.MCRun; i++ {
		if budget.Expired() {
			break
		}

		restartsLeft := opts.MCRun - i
		subLimit := budget.Remaining() / time.Duration(restartsLeft)
		subBudget := NewSolveBudget(subLimit, opts.clock())

		bs := blockset.New()
		rng := deriveRNG(baseRNG, i)

		rr := Run(rng, g1, g2, hole1, hole2, bs, opts, subBudget)
		runCount += rr.Iterations

		if rr.BestScore < best.Score {
			best = Result{G1: rr.BestG1, G2: rr.BestG2, Score: rr.BestScore}
		}

		g1.Reset(hole1)
		g2.Reset(hole2)
	}

	best.RunCount = runCount

	return best, nil
}
