package mc

import (
	"math"
	"math/rand"

	"github.com/mlindqvist/voxelmatch/blockset"
	"github.com/mlindqvist/voxelmatch/fill"
	"github.com/mlindqvist/voxelmatch/gridbox"
)

// clockCheckInterval is how often Run samples the wall clock, amortizing
// the syscall over many cheap iterations (spec.md §4.7 step 1).
const clockCheckInterval = 256

// RunResult is one Run call's outcome: the best score seen and the grid
// labels at the point it was achieved, plus the total iteration count.
type RunResult struct {
	BestScore      float64
	BestG1, BestG2 []uint16
	Iterations     uint64
}

// Run performs one hill-climbing attempt against g1/g2 and bs (all three
// mutated in place) until budget expires, returning the best state seen.
// g1, g2, bs start from whatever state the caller left them in (Solve
// always starts from a freshly Reset, empty BlockSet).
//
// Complexity: O(iterations x average fill-pass cost).
func Run(
	rng *rand.Rand,
	g1, g2 *gridbox.GridBox,
	hole1, hole2 *gridbox.Hole,
	bs *blockset.BlockSet,
	opts Options,
	budget *SolveBudget,
) RunResult {
	currentScore := math.Inf(1)
	best := RunResult{BestScore: math.Inf(1)}
	needErase := false

	var iter uint64
	for {
		iter++
		if iter%clockCheckInterval == 0 && budget.Expired() {
			break
		}

		if needErase {
			structuralErase(g1, g2, bs, opts.EraseSmallThreshold)
		}

		snap1 := g1.Snapshot()
		snap2 := g2.Snapshot()
		bsSnap := bs.Clone()

		if len(bs.Shared) > 0 && rng.Float64() < opts.EraseSharedP {
			idx := rng.Intn(len(bs.Shared))
			blk := bs.RemoveSharedAt(idx)
			for _, p := range blk.Voxels1 {
				g1.Remove(p)
			}
			for _, p := range blk.Voxels2 {
				g2.Remove(p)
			}
		}

		// delta already includes the shared blocks FillAll adds, so the
		// shared-only base is read before the fill.
		baseScore := bs.SharedOnlyScore()
		cutOff := currentScore - baseScore
		delta, ok := fill.FillAll(rng, g1, g2, hole1, hole2, bs, cutOff)
		newScore := baseScore + delta

		if ok && newScore < currentScore {
			currentScore = newScore
			if newScore < best.BestScore {
				best = RunResult{
					BestScore: newScore,
					BestG1:    g1.Labels(),
					BestG2:    g2.Labels(),
				}
			}
			needErase = true
		} else {
			g1.Restore(snap1)
			g2.Restore(snap2)
			*bs = *bsSnap
			needErase = false
		}
	}

	best.Iterations = iter

	return best
}

// structuralErase removes every half-block voxel (half blocks are rebuilt
// from scratch every accepted iteration) and then repeatedly removes
// shared blocks at or below smallTh, per spec.md §4.7 step 2.
func structuralErase(g1, g2 *gridbox.GridBox, bs *blockset.BlockSet, smallTh int) {
	for _, h := range bs.Half1 {
		for _, p := range h.Voxels {
			g1.Remove(p)
		}
	}
	for _, h := range bs.Half2 {
		for _, p := range h.Voxels {
			g2.Remove(p)
		}
	}
	bs.ClearHalf()

	for {
		idx := -1
		for i, s := range bs.Shared {
			if len(s.Voxels1) <= smallTh {
				idx = i

				break
			}
		}
		if idx < 0 {
			break
		}
		blk := bs.RemoveSharedAt(idx)
		for _, p := range blk.Voxels1 {
			g1.Remove(p)
		}
		for _, p := range blk.Voxels2 {
			g2.Remove(p)
		}
	}
}
