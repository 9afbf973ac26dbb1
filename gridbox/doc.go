// Package gridbox holds the per-object solver state: the 3D label grid and
// the two silhouette-coverage counters, plus the precomputed legal-cell
// list (Hole) and the runtime urgency classifier that both fill and the
// outer search loop drive.
//
// What:
//
//   - GridBox wraps a D^3 []uint16 label grid (0 = empty-and-legal, the
//     sentinel Forbidden = projection would violate an off silhouette
//     cell, anything else = the block id occupying that voxel) and two
//     D^2 coverage counters (front, right), one per silhouette.
//   - Hole precomputes the list of legal voxels once, after construction,
//     plus the distinct counter indices a Reset needs to touch.
//   - MakeYetPoints partitions the currently-empty legal voxels into three
//     priority buckets (yet_yet / yet / can) so fill and the grower can
//     pick a voxel that still needs covering before touching an optional
//     one.
//
// Why:
//
//   - Separating "legal" (Hole, fixed at construction) from "currently
//     empty" (recomputed every classifier call) lets Reset be O(legal
//     cells) instead of O(D^3), and lets the classifier short-circuit
//     without allocating the lower-priority buckets once a higher one is
//     non-empty.
//
// Complexity:
//
//   - NewGridBox: O(D^3) (allocation, forbidden-cell marking).
//   - MakeHole: O(D^3).
//   - Reset: O(|Hole.Points| + |Hole.frontIdx| + |Hole.rightIdx|).
//   - MakeYetPoints: O(|Hole.Points|).
//   - ConnectedComponents: O(D^3) (stack-based walk over geom.AllDirections,
//     generalized from gridgraph.GridGraph.ConnectedComponents' 2D
//     4/8-connectivity walk to 3D 6-connectivity).
//
// Errors:
//
//   - ErrEmptySilhouette: a silhouette has zero rows or zero columns.
//   - ErrNonSquareSilhouette: a silhouette's rows are not all the same
//     length, or that length does not match the row count.
//   - ErrDimensionMismatch: front and right silhouettes disagree on D.
package gridbox
