package gridbox

import (
	"github.com/mlindqvist/voxelmatch/geom"
)

// GridBox is one object's solver state: a D^3 label grid plus the two
// silhouette-coverage counters that the grid's labels must keep in sync
// with (see package doc for the invariant).
type GridBox struct {
	Dims  geom.Dims
	grid  []uint16 // flat D^3, indexed via Dims.VolumeIndex
	front []int    // flat D^2, indexed via Dims.FrontIndex
	right []int    // flat D^2, indexed via Dims.RightIndex
}

// NewGridBox allocates a GridBox from a pair of D x D silhouettes. Cells
// whose projection would violate either silhouette are marked Forbidden,
// and the counter of every off silhouette cell starts at offCount. All
// other cells start empty (label 0), and on-cell counters start at 0.
//
// Complexity: O(D^3) time and memory.
func NewGridBox(front, right Silhouette) (*GridBox, error) {
	df, err := front.validate()
	if err != nil {
		return nil, err
	}
	dr, err := right.validate()
	if err != nil {
		return nil, err
	}
	if df != dr {
		return nil, ErrDimensionMismatch
	}
	d := df
	dims := geom.Dims{D: d}

	gb := &GridBox{
		Dims:  dims,
		grid:  make([]uint16, dims.Volume()),
		front: make([]int, dims.Area()),
		right: make([]int, dims.Area()),
	}

	for x := 0; x < d; x++ {
		for z := 0; z < d; z++ {
			fi := x*d + z
			if front[x][z] {
				gb.front[fi] = 0
			} else {
				gb.front[fi] = offCount
			}
		}
	}
	for y := 0; y < d; y++ {
		for z := 0; z < d; z++ {
			ri := z*d + y
			if right[y][z] {
				gb.right[ri] = 0
			} else {
				gb.right[ri] = offCount
			}
		}
	}

	for x := 0; x < d; x++ {
		for y := 0; y < d; y++ {
			for z := 0; z < d; z++ {
				p := geom.Point{X: x, Y: y, Z: z}
				if !front[x][z] || !right[y][z] {
					gb.grid[dims.VolumeIndex(p)] = Forbidden
				}
			}
		}
	}

	return gb, nil
}

// Label returns the current label at p: 0 (empty), Forbidden, or a block id.
//
// Complexity: O(1).
func (gb *GridBox) Label(p geom.Point) uint16 {
	return gb.grid[gb.Dims.VolumeIndex(p)]
}

// FrontCount returns the current coverage counter for p's front column.
//
// Complexity: O(1).
func (gb *GridBox) FrontCount(p geom.Point) int {
	return gb.front[gb.Dims.FrontIndex(p)]
}

// RightCount returns the current coverage counter for p's right column.
//
// Complexity: O(1).
func (gb *GridBox) RightCount(p geom.Point) int {
	return gb.right[gb.Dims.RightIndex(p)]
}

// Put places block id at the empty, legal voxel p, incrementing both
// coverage counters. Calling Put on an occupied or forbidden cell is a
// programmer error (spec.md §7) and panics rather than corrupting state.
//
// Complexity: O(1).
func (gb *GridBox) Put(p geom.Point, id uint16) {
	vi := gb.Dims.VolumeIndex(p)
	if gb.grid[vi] != 0 {
		panic("gridbox: Put called on an occupied or forbidden cell")
	}
	gb.grid[vi] = id
	gb.front[gb.Dims.FrontIndex(p)]++
	gb.right[gb.Dims.RightIndex(p)]++
}

// Remove clears the block at voxel p, decrementing both coverage counters.
// Calling Remove on an empty or forbidden cell, or when a counter is
// already at or below zero, is a programmer error and panics.
//
// Complexity: O(1).
func (gb *GridBox) Remove(p geom.Point) {
	vi := gb.Dims.VolumeIndex(p)
	id := gb.grid[vi]
	if id == 0 || id == Forbidden {
		panic("gridbox: Remove called on an empty or forbidden cell")
	}
	fi := gb.Dims.FrontIndex(p)
	ri := gb.Dims.RightIndex(p)
	if gb.front[fi] <= 0 || gb.right[ri] <= 0 {
		panic("gridbox: Remove called with a non-positive coverage counter")
	}
	gb.grid[vi] = 0
	gb.front[fi]--
	gb.right[ri]--
}
