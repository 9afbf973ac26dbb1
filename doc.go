// Package voxelmatch grows two silhouette-constrained 3D voxel objects out
// of congruent shared blocks plus leftover single-side blocks, trading off
// block count against shared-block reuse.
//
// What:
//
//	geom/     — voxel addressing: directions, points, the D-cube index math
//	axismap/  — the partial-rotation bijection a shared block's growth settles into
//	gridbox/  — per-object label grid, silhouette coverage counters, the urgency classifier
//	blockset/ — the placed-block catalogue and its incremental score
//	grower/   — paired congruent-region growth (GrowSharedBlock)
//	fill/     — the greedy per-iteration fill pass (FillAll)
//	mc/       — the hill-climbing outer search and restart driver (Run, Solve)
//
// Quick shape: given two D×D×D silhouette pairs, mc.Solve repeatedly grows
// and discards shared/half blocks, keeping the best-scoring covering of
// both objects found within its time budget.
//
// This package is documentation-only; solving happens through mc.Solve.
package voxelmatch
