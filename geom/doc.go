// Package geom defines the voxel coordinate system shared by every other
// package in this module: the integer lattice point, the six signed axis
// directions, and the three row-major index formulas used by the volume
// grid and its two silhouette-coverage counters.
//
// There is no third-party dependency here: addressing a voxel and stepping
// along an axis is plain integer arithmetic, and nothing in the retrieved
// example packages models a 3D lattice with this forbidden/legal-cell
// convention closely enough to reuse directly.
package geom
