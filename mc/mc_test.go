package mc_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mlindqvist/voxelmatch/blockset"
	"github.com/mlindqvist/voxelmatch/geom"
	"github.com/mlindqvist/voxelmatch/gridbox"
	"github.com/mlindqvist/voxelmatch/mc"
	"github.com/stretchr/testify/require"
)

func onesSilhouette(d int) gridbox.Silhouette {
	s := make(gridbox.Silhouette, d)
	for i := range s {
		s[i] = make([]bool, d)
		for j := range s[i] {
			s[i][j] = true
		}
	}

	return s
}

// oneShotClock returns start on its first call and a time far past any
// reasonable deadline afterward, so a SolveBudget built from it expires at
// the very next check. Used to bound Run's loop to a single
// clockCheckInterval worth of iterations deterministically, per spec.md
// §8's "deterministic by step count" testing mode.
func oneShotClock() mc.Clock {
	start := time.Unix(0, 0)
	calls := 0

	return func() time.Time {
		calls++
		if calls > 1 {
			return start.Add(time.Hour)
		}

		return start
	}
}

// TestRun_StopsAtBudgetExpiry checks that Run terminates (rather than
// looping forever) once its budget is exhausted, and that it improved on
// the +Inf starting score for an easily fillable cube.
func TestRun_StopsAtBudgetExpiry(t *testing.T) {
	d := 4
	g1, err := gridbox.NewGridBox(onesSilhouette(d), onesSilhouette(d))
	require.NoError(t, err)
	g2, err := gridbox.NewGridBox(onesSilhouette(d), onesSilhouette(d))
	require.NoError(t, err)
	hole1 := g1.MakeHole()
	hole2 := g2.MakeHole()
	bs := blockset.New()

	opts := mc.DefaultOptions()
	budget := mc.NewSolveBudget(time.Second, oneShotClock())

	result := mc.Run(rand.New(rand.NewSource(5)), g1, g2, hole1, hole2, bs, opts, budget)

	require.Greater(t, result.Iterations, uint64(0))
	require.Less(t, result.BestScore, 1e18, "a run on a fully fillable pair of cubes must find some finite score")
	require.NotNil(t, result.BestG1)
	require.NotNil(t, result.BestG2)
}

// TestSolve_ReturnsImprovingResult checks that Solve, given a small real
// time budget, returns a finite score and consistent label arrays for a
// small fillable instance.
func TestSolve_ReturnsImprovingResult(t *testing.T) {
	d := 4
	front1 := onesSilhouette(d)
	right1 := onesSilhouette(d)
	front2 := onesSilhouette(d)
	right2 := onesSilhouette(d)

	opts := mc.DefaultOptions()
	opts.MCRun = 2
	opts.TimeLimit = 30 * time.Millisecond
	opts.Seed = 123

	result, err := mc.Solve(front1, right1, front2, right2, opts)
	require.NoError(t, err)
	require.Len(t, result.G1, d*d*d)
	require.Len(t, result.G2, d*d*d)
	require.Less(t, result.Score, 1e18)
}

// TestSolve_InvalidSilhouetteReturnsError checks that Solve surfaces
// gridbox's shape-validation errors rather than panicking.
func TestSolve_InvalidSilhouetteReturnsError(t *testing.T) {
	opts := mc.DefaultOptions()
	opts.MCRun = 1
	opts.TimeLimit = time.Millisecond

	_, err := mc.Solve(gridbox.Silhouette{}, onesSilhouette(2), onesSilhouette(2), onesSilhouette(2), opts)
	require.ErrorIs(t, err, gridbox.ErrEmptySilhouette)
}

// pillarSilhouette returns a d x d silhouette pair whose only legal column
// is x=0 (front) / y=0 (right), so the legal region of a GridBox built from
// it is a single 1x1xd pillar.
func pillarSilhouette(d int) (front, right gridbox.Silhouette) {
	front = make(gridbox.Silhouette, d)
	right = make(gridbox.Silhouette, d)
	for i := 0; i < d; i++ {
		front[i] = make([]bool, d)
		right[i] = make([]bool, d)
	}
	for z := 0; z < d; z++ {
		front[0][z] = true
		right[0][z] = true
	}

	return front, right
}

// countPlaced counts the labels in a flat label array that are neither
// empty (0) nor gridbox.Forbidden.
func countPlaced(labels []uint16) int {
	n := 0
	for _, l := range labels {
		if l != 0 && l != gridbox.Forbidden {
			n++
		}
	}

	return n
}

// TestSolve_D1DegenerateSingleSharedBlock covers spec.md §8's degenerate
// 1x1x1 scenario: both objects have exactly one legal voxel, so the only
// reachable fill is a single shared block of size 1, giving an exact score
// of 1.0 regardless of rng seed.
func TestSolve_D1DegenerateSingleSharedBlock(t *testing.T) {
	s := onesSilhouette(1)

	opts := mc.DefaultOptions()
	opts.MCRun = 1
	opts.TimeLimit = 20 * time.Millisecond
	opts.Seed = 9

	result, err := mc.Solve(s, s, s, s, opts)
	require.NoError(t, err)
	require.Len(t, result.G1, 1)
	require.Len(t, result.G2, 1)
	require.NotEqual(t, uint16(0), result.G1[0])
	require.Equal(t, result.G1[0], result.G2[0], "the lone voxel in each object must share one block id")
	require.Equal(t, 1.0, result.Score)
}

// TestSolve_D2PillarCongruentSharedBlock covers spec.md §8's D=2 scenario
// for two objects whose only legal cells form a congruent 1x1x2 pillar:
// the whole object is grown as a single shared block of size 2, for an
// exact score of 0.5 regardless of rng seed (both pillar voxels are always
// reachable from either end, so no branch of the search can do better or
// worse).
func TestSolve_D2PillarCongruentSharedBlock(t *testing.T) {
	front, right := pillarSilhouette(2)

	opts := mc.DefaultOptions()
	opts.MCRun = 1
	opts.TimeLimit = 20 * time.Millisecond
	opts.Seed = 17

	result, err := mc.Solve(front, right, front, right, opts)
	require.NoError(t, err)
	require.Equal(t, 0.5, result.Score)
	require.Equal(t, 2, countPlaced(result.G1))
	require.Equal(t, 2, countPlaced(result.G2))

	var id1 uint16
	for _, l := range result.G1 {
		if l != 0 && l != gridbox.Forbidden {
			id1 = l

			break
		}
	}
	for _, l := range result.G1 {
		if l != 0 && l != gridbox.Forbidden {
			require.Equal(t, id1, l, "the pillar must be a single block, not two separate ones")
		}
	}
	for _, l := range result.G2 {
		if l != 0 && l != gridbox.Forbidden {
			require.Equal(t, id1, l, "the shared block must use the same id in both objects")
		}
	}
}

// TestSolve_D2IncompatibleSizesPartitions covers spec.md §8's D=2
// incompatible-sizes scenario: object 1 is a connected 3-voxel L shape,
// object 2 a single voxel. Since fill.FillAll always attempts a shared
// block first when both sides still have unfilled legal cells, and object
// 2 only ever offers one voxel to share, at most one of object 1's three
// voxels can end up in a shared block — the other two can never all fit in
// that one shared block, so the result necessarily partitions into at
// least two blocks.
func TestSolve_D2IncompatibleSizesPartitions(t *testing.T) {
	d := 2
	front1 := make(gridbox.Silhouette, d)
	right1 := make(gridbox.Silhouette, d)
	for i := 0; i < d; i++ {
		front1[i] = make([]bool, d)
		right1[i] = make([]bool, d)
	}
	front1[0][0], front1[1][0], front1[1][1] = true, true, true
	right1[0][0], right1[0][1] = true, true

	// Object 2 has a single legal voxel, embedded in the same D=2 cube size
	// as object 1 (every other cell forbidden).
	f2 := make(gridbox.Silhouette, d)
	r2 := make(gridbox.Silhouette, d)
	for i := 0; i < d; i++ {
		f2[i] = make([]bool, d)
		r2[i] = make([]bool, d)
	}
	f2[0][0] = true
	r2[0][0] = true

	opts := mc.DefaultOptions()
	opts.MCRun = 1
	opts.TimeLimit = 20 * time.Millisecond
	opts.Seed = 31

	result, err := mc.Solve(front1, right1, f2, r2, opts)
	require.NoError(t, err)
	require.Equal(t, 3, countPlaced(result.G1))
	require.Equal(t, 1, countPlaced(result.G2))
	require.Greater(t, result.Score, 0.0)

	ids := make(map[uint16]bool)
	for _, l := range result.G1 {
		if l != 0 && l != gridbox.Forbidden {
			ids[l] = true
		}
	}
	for _, l := range result.G2 {
		if l != 0 && l != gridbox.Forbidden {
			ids[l] = true
		}
	}
	require.GreaterOrEqual(t, len(ids), 2, "a 3-voxel and a 1-voxel object cannot be covered by a single block")
}

// countingClock returns a Clock driven purely by call count rather than
// wall time, so two independent Solve calls fed fresh instances of it see
// identical deadlines regardless of real elapsed time (spec.md §8's
// "deterministic by step count" testing mode).
func countingClock(ticks int) mc.Clock {
	n := 0

	return func() time.Time {
		n++
		if n > ticks {
			return time.Unix(int64(ticks), 0).Add(time.Hour)
		}

		return time.Unix(int64(n), 0)
	}
}

// TestSolve_FixedSeedReproducibility covers spec.md §8 scenario 4: given
// identical options (including a fixed seed and a step-counted, not
// wall-clock, budget), two independent Solve calls over the same inputs
// must produce bit-identical results.
func TestSolve_FixedSeedReproducibility(t *testing.T) {
	d := 3
	front1, right1 := onesSilhouette(d), onesSilhouette(d)
	front2, right2 := onesSilhouette(d), onesSilhouette(d)

	newOpts := func() mc.Options {
		opts := mc.DefaultOptions()
		opts.MCRun = 3
		opts.Seed = 2024
		opts.TimeLimit = 5000 * time.Second
		opts.Clock = countingClock(5000)

		return opts
	}

	r1, err := mc.Solve(front1, right1, front2, right2, newOpts())
	require.NoError(t, err)
	r2, err := mc.Solve(front1, right1, front2, right2, newOpts())
	require.NoError(t, err)

	require.Equal(t, r1, r2)
}

// TestRun_RejectedIterationRollsBackBitIdentically covers spec.md §8
// scenario 5 / Testable Property 6: it replays the exact snapshot/mutate/
// restore sequence mc.Run performs around a speculative iteration, and
// checks that a rollback leaves the grids and block set bit-identical to
// the pre-iteration snapshot. This is the property whose absence let the
// grower dir1-loop bug ship undetected.
func TestRun_RejectedIterationRollsBackBitIdentically(t *testing.T) {
	d := 4
	g1, err := gridbox.NewGridBox(onesSilhouette(d), onesSilhouette(d))
	require.NoError(t, err)
	g2, err := gridbox.NewGridBox(onesSilhouette(d), onesSilhouette(d))
	require.NoError(t, err)
	bs := blockset.New()

	// Simulate the state a partially-filled run might be in before a
	// speculative iteration begins.
	g1.Put(geom.Point{X: 0, Y: 0, Z: 0}, 1)
	g2.Put(geom.Point{X: 0, Y: 0, Z: 0}, 1)
	bs.AddSharedWithID(1, []geom.Point{{X: 0, Y: 0, Z: 0}}, []geom.Point{{X: 0, Y: 0, Z: 0}})
	g1.Put(geom.Point{X: 1, Y: 1, Z: 1}, 10000)
	bs.AddHalf1WithID(10000, []geom.Point{{X: 1, Y: 1, Z: 1}})

	labelsBefore1 := g1.Labels()
	labelsBefore2 := g2.Labels()
	scoreBefore := bs.Score()
	sharedBefore := len(bs.Shared)
	half1Before := len(bs.Half1)

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	bsSnap := bs.Clone()

	// Mutate exactly as a rejected speculative iteration would: place more
	// blocks, then discover the result is not an improvement.
	g1.Put(geom.Point{X: 2, Y: 2, Z: 2}, 10001)
	bs.AddHalf1WithID(10001, []geom.Point{{X: 2, Y: 2, Z: 2}})
	g2.Put(geom.Point{X: 3, Y: 3, Z: 3}, 10002)
	bs.AddHalf2WithID(10002, []geom.Point{{X: 3, Y: 3, Z: 3}})

	g1.Restore(snap1)
	g2.Restore(snap2)
	*bs = *bsSnap

	require.Equal(t, labelsBefore1, g1.Labels())
	require.Equal(t, labelsBefore2, g2.Labels())
	require.Equal(t, scoreBefore, bs.Score())
	require.Len(t, bs.Shared, sharedBefore)
	require.Len(t, bs.Half1, half1Before)
}
