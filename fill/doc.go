// Package fill implements the greedy per-iteration fill pass: repeatedly
// classify both objects' remaining empty voxels and place a block, either a
// shared pair (delegating to grower) or a single-side region (a local
// flood), until both are satisfied or the accumulated score meets or
// exceeds a caller-supplied cut-off.
//
// What:
//
//   - FillAll drives the classify-then-place loop, choosing between shared
//     growth and single-side flood based on which object(s) still have
//     uncovered columns.
//   - floodHalf performs the single-side placement: an explicit-stack DFS
//     over empty 6-neighbors within one object, saturating or stopping
//     early once its running cost reaches its own local cap.
//
// Why:
//
//   - Both traversal shapes use an explicit stack rather than recursion,
//     following the teacher's non-recursive BFS/DFS style in gridgraph and
//     core (no risk of stack-depth blowup on a D^3 region, and it matches
//     the idiom grower already uses).
//
// Complexity: O(blocks placed x legal cells) for the classifier walks (both
// objects are reclassified before every block, each walk O(|Hole.Points|)),
// plus O(1) per voxel placed.
package fill
