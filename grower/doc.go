// Package grower implements shared-block growth: starting from a seed voxel
// pair in each object, it grows two congruent, 6-connected regions in
// lock-step, discovering the rotation that relates them as it goes.
//
// What:
//
//   - GrowSharedBlock drives a stack-based paired walk, shuffling each
//     object's direction order independently (grounded on the teacher's
//     tsp.shuffleIntsInPlace Fisher-Yates idiom) so that which neighbor is
//     tried first is unbiased.
//   - axismap.AxisMap narrows as pairs are accepted, so later steps search
//     only directions consistent with pairs fixed so far.
//
// Why:
//
//   - Growing both sides together, rather than growing one region and
//     searching for a congruent placement of it in the other, keeps the
//     search local and amortizes rotation discovery over the whole walk:
//     by the time AxisMap reaches axismap.Complete, every subsequent step
//     is a single deterministic lookup instead of a search.
//
// Complexity: O(target block size) per call, since each accepted voxel pair
// does O(1) amortized work (direction shuffle aside, which is O(1) since the
// alphabet has exactly 6 elements).
package grower
