package axismap

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mlindqvist/voxelmatch/geom"
)

// State enumerates the three stages of a growing AxisMap.
type State int

const (
	// Empty: no direction pair has been fixed yet; any of the 24 rotations
	// remains possible.
	Empty State = iota
	// OnePair: one axis is constrained by a fixed pair; the other two axes
	// and the rotation about the fixed axis remain free.
	OnePair
	// Complete: all three axes are determined; the map is exactly one of
	// the 24 proper rotations of the cube.
	Complete
)

// unknownAxis is the sentinel stored in sigma/signs for an axis that has
// not yet been constrained.
const unknownAxis = -1

// AxisMap is a partial bijection over geom.Direction, built incrementally
// by Fix and queried by MapAxis. The zero value is not valid; use New.
//
// Rotations are represented as a signed permutation of the three coordinate
// axes: sigma[axis] is the target axis index (0=x,1=y,2=z) that axis maps
// to, and signs[axis] is +1 or -1 depending on whether the mapped basis
// vector keeps or flips its sign. Unfixed axes hold unknownAxis / 0.
type AxisMap struct {
	state     State
	fixedAxis int // meaningful once state != Empty: axis index of the first fixed pair
	sigma     [3]int
	signs     [3]int
}

// New returns an Empty AxisMap, the starting point for a shared block's
// paired growth.
func New() AxisMap {
	return AxisMap{
		state:     Empty,
		fixedAxis: unknownAxis,
		sigma:     [3]int{unknownAxis, unknownAxis, unknownAxis},
		signs:     [3]int{0, 0, 0},
	}
}

// State reports the current stage of the map.
func (am AxisMap) State() State {
	return am.state
}

// axisOf returns the coordinate axis (0=x,1=y,2=z) a direction lies on.
func axisOf(d geom.Direction) int {
	return int(d) / 2
}

// signOf returns +1 for a positive direction (even code) and -1 for a
// negative direction (odd code).
func signOf(d geom.Direction) int {
	if d%2 == 0 {
		return 1
	}

	return -1
}

// dirFromAxisSign reconstructs the Direction for a given axis and sign.
func dirFromAxisSign(axis, sign int) geom.Direction {
	base := axis * 2
	if sign > 0 {
		return geom.Direction(base)
	}

	return geom.Direction(base + 1)
}

// otherAxis returns the single axis in {0,1,2} that is neither a nor b.
// Callers must ensure a != b.
func otherAxis(a, b int) int {
	for k := 0; k < 3; k++ {
		if k != a && k != b {
			return k
		}
	}
	panic("axismap: otherAxis called with a == b")
}

// permSign3 returns the sign (+1 even, -1 odd) of the permutation described
// by p, a length-3 array of distinct values from {0,1,2}.
func permSign3(p [3]int) int {
	a := p
	swaps := 0
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(a)-1-i; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				swaps++
			}
		}
	}
	if swaps%2 == 0 {
		return 1
	}

	return -1
}

// Fix records that direction d1 (in object 1's frame) corresponds to
// direction d2 (in object 2's frame), and returns the resulting AxisMap.
// If the receiver is already Complete, it is returned unchanged. An
// inconsistent pair on an already-fixed axis is a programmer error (the
// grower never produces one, since it only ever fixes pairs drawn from
// MapAxis) and panics rather than silently corrupting the map.
//
// Complexity: O(1).
func (am AxisMap) Fix(d1, d2 geom.Direction) AxisMap {
	if am.state == Complete {
		return am
	}

	i := axisOf(d1)
	j := axisOf(d2)
	s := signOf(d1) * signOf(d2)

	switch am.state {
	case Empty:
		ns := New()
		ns.state = OnePair
		ns.fixedAxis = i
		ns.sigma[i] = j
		ns.signs[i] = s

		return ns

	case OnePair:
		if i == am.fixedAxis {
			if am.sigma[i] != j || am.signs[i] != s {
				panic("axismap: Fix called with a pair inconsistent with the fixed axis")
			}

			return am
		}

		ns := am
		ns.sigma[i] = j
		ns.signs[i] = s

		m := otherAxis(am.fixedAxis, i)
		fixedTarget := am.sigma[am.fixedAxis]
		if j == fixedTarget {
			panic("axismap: Fix mapped two distinct source axes to the same target axis")
		}
		n := otherAxis(fixedTarget, j)
		ns.sigma[m] = n

		parity := permSign3(ns.sigma)
		ns.signs[m] = parity * am.signs[am.fixedAxis] * ns.signs[i]
		ns.state = Complete

		return ns
	}

	return am
}

// MapAxis returns the directions still consistent with d1 under the
// current state: all six when Empty, the single determined image when d1
// lies on the fixed axis (OnePair) or when the map is Complete, or the
// four directions on the two still-free target axes otherwise.
//
// Complexity: O(1).
func (am AxisMap) MapAxis(d1 geom.Direction) []geom.Direction {
	i := axisOf(d1)

	switch am.state {
	case Empty:
		out := make([]geom.Direction, geom.NumDirections)
		copy(out, geom.AllDirections[:])

		return out

	case OnePair:
		if i == am.fixedAxis {
			return []geom.Direction{dirFromAxisSign(am.sigma[i], signOf(d1)*am.signs[i])}
		}

		fixedTarget := am.sigma[am.fixedAxis]
		out := make([]geom.Direction, 0, 4)
		for axis := 0; axis < 3; axis++ {
			if axis == fixedTarget {
				continue
			}
			out = append(out, dirFromAxisSign(axis, 1), dirFromAxisSign(axis, -1))
		}

		return out

	default: // Complete
		return []geom.Direction{dirFromAxisSign(am.sigma[i], signOf(d1)*am.signs[i])}
	}
}

// Rotation materializes a Complete AxisMap as a 3x3 signed rotation matrix:
// column axis holds signs[axis] at row sigma[axis] and zero elsewhere, so
// that Rotation().MulVec(v) carries a unit vector along axis to its image
// under the map. It panics if the map is not yet Complete — callers must
// check State() first. Only tests call it; the matrix is never built on the
// per-iteration hot path.
//
// Complexity: O(1).
func (am AxisMap) Rotation() *r3.Mat {
	if am.state != Complete {
		panic("axismap: Rotation called on a non-complete AxisMap")
	}

	m := r3.NewMat(nil)
	for axis := 0; axis < 3; axis++ {
		row := am.sigma[axis]
		m.Set(row, axis, float64(am.signs[axis]))
	}

	return m
}
