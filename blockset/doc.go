// Package blockset catalogues the blocks placed in a solution: shared
// pairs (one block per object, congruent under rotation) and single-side
// "half" blocks, along with the incrementally maintained shared-only score.
//
// What:
//
//   - SharedBlock pairs a block id with its voxel list in each object.
//   - HalfBlock is a single-side block (present in only one object).
//   - BlockSet.sharedIDStock reuses freed shared ids LIFO so the set of
//     active shared ids stays dense in {1, 2, ...}, mirroring the free-list
//     pattern the teacher uses for id reuse in its builder package.
//   - Half ids are assigned from a separate, ever-increasing counter
//     starting at 10000 (spec.md §3): half blocks are ephemeral and rebuilt
//     every fill pass, so they never need to be freed individually —
//     ClearHalf resets the counter along with the slices.
//
// Why:
//
//   - Keeping shared-only score as a running total (rather than recomputed
//     by summing every call) keeps mc.Run's per-iteration cut-off check
//     O(1), which matters since it is evaluated every accepted/rejected
//     iteration.
//
// Complexity: every method here is O(1) amortized except RemoveSharedAt
// (O(len(Shared)-idx) for the slice removal), Clone (O(total placed
// voxels), used once per mc.Run iteration for rollback) and Score
// (O(number of half blocks), since half contributions are not cached).
package blockset
