package fill

import (
	"math/rand"

	"github.com/mlindqvist/voxelmatch/blockset"
	"github.com/mlindqvist/voxelmatch/geom"
	"github.com/mlindqvist/voxelmatch/gridbox"
	"github.com/mlindqvist/voxelmatch/grower"
)

// FillAll repeatedly classifies both objects' remaining empty voxels and
// places a block until both are satisfied (ok=true, delta is the total
// score added) or the running score would meet or exceed cutOff, in which
// case it returns immediately with ok=false and the caller must discard the
// whole attempt (spec.md §4.6's pruning rule).
//
// Complexity: O(blocks placed x legal cells), since both objects are
// reclassified via MakeYetPoints before every block, plus O(1) per voxel
// placed.
func FillAll(
	rng *rand.Rand,
	g1, g2 *gridbox.GridBox,
	hole1, hole2 *gridbox.Hole,
	bs *blockset.BlockSet,
	cutOff float64,
) (delta float64, ok bool) {
	for {
		yet1 := g1.MakeYetPoints(hole1)
		yet2 := g2.MakeYetPoints(hole2)
		if yet1.Satisfied() && yet2.Satisfied() {
			return delta, true
		}

		p1, ok1 := yet1.Choose(rng)
		p2, ok2 := yet2.Choose(rng)

		switch {
		case ok1 && ok2:
			id := bs.ReserveSharedID()
			v1, v2, _ := grower.GrowSharedBlock(rng, g1, g2, id, p1, p2)
			delta += 1.0 / float64(len(v1))
			if delta >= cutOff {
				return delta, false
			}
			bs.AddSharedWithID(id, v1, v2)

		case ok1:
			id := bs.ReserveHalfID()
			voxels := floodHalf(g1, p1, id, cutOff-delta)
			delta += blockset.HalfCost(len(voxels))
			if delta >= cutOff {
				return delta, false
			}
			bs.AddHalf1WithID(id, voxels)

		case ok2:
			id := bs.ReserveHalfID()
			voxels := floodHalf(g2, p2, id, cutOff-delta)
			delta += blockset.HalfCost(len(voxels))
			if delta >= cutOff {
				return delta, false
			}
			bs.AddHalf2WithID(id, voxels)

		default:
			// The classifier reports unsatisfied but neither side offers a
			// candidate: unfillable from here, per spec.md §4.6.
			return delta, false
		}
	}
}

// floodHalf places id at start and then DFS-floods through empty,
// 6-connected neighbors within g, via an explicit stack (the teacher's
// non-recursive traversal idiom). It stops once every reachable legal
// voxel is saturated, or once the block's running HalfCost would meet or
// exceed cap — the early-abort optimization from spec.md §4.6.
//
// Complexity: O(size of the flooded region).
func floodHalf(g *gridbox.GridBox, start geom.Point, id uint16, cap float64) []geom.Point {
	g.Put(start, id)
	voxels := []geom.Point{start}
	stack := []geom.Point{start}

	for len(stack) > 0 {
		if blockset.HalfCost(len(voxels)) >= cap {
			break
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, dir := range geom.AllDirections {
			n, ok := g.Dims.Next(cur, dir)
			if !ok || g.Label(n) != 0 {
				continue
			}
			g.Put(n, id)
			voxels = append(voxels, n)
			stack = append(stack, n)
			if blockset.HalfCost(len(voxels)) >= cap {
				break
			}
		}
	}

	return voxels
}
