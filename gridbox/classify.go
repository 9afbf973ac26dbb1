package gridbox

import (
	"math/rand"

	"github.com/mlindqvist/voxelmatch/geom"
)

// YetPoints is the tri-partition of a GridBox's currently-empty legal
// voxels, in descending order of urgency: YetYet (neither silhouette cell
// covered yet), Yet (exactly one covered), Can (both already covered —
// this voxel is optional). See MakeYetPoints for the short-circuit rule
// that keeps the lower-priority buckets empty once a higher one is not.
type YetPoints struct {
	YetYet []geom.Point
	Yet    []geom.Point
	Can    []geom.Point
}

// MakeYetPoints walks hole.Points and classifies every currently-empty
// voxel. Yet is only appended to while YetYet is still empty; Can is only
// appended to while both YetYet and Yet are still empty. This is a
// short-circuit, not a filter: once a higher-priority bucket has an entry,
// later candidates of a lower priority are skipped rather than allocated
// and discarded.
//
// Complexity: O(len(hole.Points)).
func (gb *GridBox) MakeYetPoints(hole *Hole) YetPoints {
	var yp YetPoints
	for _, p := range hole.Points {
		if gb.grid[gb.Dims.VolumeIndex(p)] != 0 {
			continue
		}
		frontZero := gb.front[gb.Dims.FrontIndex(p)] == 0
		rightZero := gb.right[gb.Dims.RightIndex(p)] == 0

		switch {
		case frontZero && rightZero:
			yp.YetYet = append(yp.YetYet, p)
		case frontZero != rightZero:
			if len(yp.YetYet) == 0 {
				yp.Yet = append(yp.Yet, p)
			}
		default:
			if len(yp.YetYet) == 0 && len(yp.Yet) == 0 {
				yp.Can = append(yp.Can, p)
			}
		}
	}

	return yp
}

// Satisfied reports whether both silhouettes are fully covered: no voxel
// remains that still needs placing.
func (yp YetPoints) Satisfied() bool {
	return len(yp.YetYet) == 0 && len(yp.Yet) == 0
}

// Choose picks uniformly at random from the highest non-empty priority
// bucket, returning false if every bucket is empty.
func (yp YetPoints) Choose(rng *rand.Rand) (geom.Point, bool) {
	switch {
	case len(yp.YetYet) > 0:
		return yp.YetYet[rng.Intn(len(yp.YetYet))], true
	case len(yp.Yet) > 0:
		return yp.Yet[rng.Intn(len(yp.Yet))], true
	case len(yp.Can) > 0:
		return yp.Can[rng.Intn(len(yp.Can))], true
	default:
		return geom.Point{}, false
	}
}
