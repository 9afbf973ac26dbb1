package grower

import (
	"math/rand"

	"github.com/mlindqvist/voxelmatch/axismap"
	"github.com/mlindqvist/voxelmatch/geom"
	"github.com/mlindqvist/voxelmatch/gridbox"
)

// shuffledDirections returns a Fisher-Yates-shuffled copy of
// geom.AllDirections. Generalized from the teacher's
// tsp.shuffleIntsInPlace, specialized to the fixed 6-element direction
// alphabet instead of an arbitrary []int.
//
// Complexity: O(1) (6 elements).
func shuffledDirections(rng *rand.Rand) [geom.NumDirections]geom.Direction {
	out := geom.AllDirections
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// containsDir reports whether d appears in candidates.
func containsDir(candidates []geom.Direction, d geom.Direction) bool {
	for _, c := range candidates {
		if c == d {
			return true
		}
	}

	return false
}

// findDir2 searches pi2, in order, for the first direction that is both a
// candidate (consistent with the axis map so far) and leads to an in-bounds,
// empty voxel from q2. Factored out of GrowSharedBlock so that its own
// break only ends this search, leaving the caller's dir1 loop free to
// continue to the next direction.
func findDir2(g2 *gridbox.GridBox, q2 geom.Point, pi2 [geom.NumDirections]geom.Direction, candidates []geom.Direction) (geom.Point, geom.Direction, bool) {
	for _, d2 := range pi2 {
		if !containsDir(candidates, d2) {
			continue
		}
		cand, ok := g2.Dims.Next(q2, d2)
		if !ok || g2.Label(cand) != 0 {
			continue
		}

		return cand, d2, true
	}

	return geom.Point{}, 0, false
}

// pairStep is one pending paired-growth frontier voxel.
type pairStep struct {
	q1, q2 geom.Point
}

// GrowSharedBlock grows a congruent, 6-connected region pair from seed
// voxels p1 (in g1) and p2 (in g2), placing blockID into both grids as it
// goes. It returns the two voxel lists, in matching order, and the AxisMap
// the walk settled on (axismap.Empty if the region never grew past the
// seed pair, axismap.OnePair or axismap.Complete otherwise).
//
// Callers must ensure p1 and p2 are currently empty and legal in their
// respective grids; this is not re-validated here since fill_all always
// draws p1/p2 from a classifier's YetYet, Yet or Can bucket, all of which
// exclude occupied and Forbidden cells.
//
// Complexity: O(size of the grown region).
func GrowSharedBlock(
	rng *rand.Rand,
	g1, g2 *gridbox.GridBox,
	blockID uint16,
	p1, p2 geom.Point,
) (voxels1, voxels2 []geom.Point, am axismap.AxisMap) {
	pi1 := shuffledDirections(rng)
	pi2 := shuffledDirections(rng)

	am = axismap.New()
	g1.Put(p1, blockID)
	g2.Put(p2, blockID)
	voxels1 = append(voxels1, p1)
	voxels2 = append(voxels2, p2)

	stack := []pairStep{{q1: p1, q2: p2}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, dir1 := range pi1 {
			r1, ok := g1.Dims.Next(cur.q1, dir1)
			if !ok || g1.Label(r1) != 0 {
				continue
			}

			candidates := am.MapAxis(dir1)

			r2, dir2, found := findDir2(g2, cur.q2, pi2, candidates)
			if !found {
				continue
			}

			g1.Put(r1, blockID)
			g2.Put(r2, blockID)
			voxels1 = append(voxels1, r1)
			voxels2 = append(voxels2, r2)
			am = am.Fix(dir1, dir2)
			stack = append(stack, pairStep{q1: r1, q2: r2})
		}
	}

	return voxels1, voxels2, am
}
