// Package axismap implements the incremental bijection between the six
// directions of object 1 and the six directions of object 2 that a shared
// block's paired growth maintains as it grows (see package grower).
//
// What:
//
//   - AxisMap is a partial bijection π: {0..5} -> {0..5} constrained so that
//     opposite directions always map to opposite directions: π(d^1) = π(d)^1.
//   - It moves through three states as pairs are fixed: Empty (nothing
//     known), OnePair (one axis constrained, the other two free), Complete
//     (one of the 24 proper rotations of the cube).
//   - Complete maps can be materialized as a 3x3 signed rotation matrix
//     (gonum.org/v1/gonum/spatial/r3) for the congruence check spec.md's
//     Testable Property 2 requires: rotating object 1's voxel offsets by the
//     completed map must reproduce object 2's voxel offsets exactly.
//
// Why:
//
//   - grower.GrowSharedBlock grows two polycubes in lock-step; AxisMap is
//     the bookkeeping that keeps the correspondence between the two
//     growing regions a valid rotation at every step, not just at the end.
//
// Representation:
//
//   - Internally a rotation is a signed permutation of the three coordinate
//     axes (sigma) plus a sign per axis (signs), with the determinant-+1
//     constraint enforced the moment the second pair is fixed. This is the
//     "3x3 signed integer matrix" representation spec.md's Design Notes
//     recommend as a compiler-friendly alternative to an embedded 24-case
//     lookup table.
//
// Complexity: Fix and MapAxis are both O(1); Rotation is O(1) (9 element
// writes).
package axismap
