package gridbox

import "github.com/mlindqvist/voxelmatch/geom"

// Hole is the one-shot precomputed set of legal (non-forbidden) voxels for
// a GridBox, plus the distinct counter indices that touch those voxels.
// Reset uses it to restore the empty state in time proportional to the
// number of legal cells rather than D^3.
type Hole struct {
	// Points lists every legal voxel, in construction (x,y,z) order.
	Points []geom.Point

	frontIdx []int // distinct "on" front-column indices
	rightIdx []int // distinct "on" right-column indices
}

// MakeHole walks the grid once and records every legal voxel and the
// distinct counter indices a Reset will need to zero. It must be called
// once, right after construction, before any Put.
//
// Complexity: O(D^3) time, O(legal cells) memory.
func (gb *GridBox) MakeHole() *Hole {
	d := gb.Dims.D
	h := &Hole{}

	for x := 0; x < d; x++ {
		for z := 0; z < d; z++ {
			if gb.front[x*d+z] != offCount {
				h.frontIdx = append(h.frontIdx, x*d+z)
			}
		}
	}
	for z := 0; z < d; z++ {
		for y := 0; y < d; y++ {
			if gb.right[z*d+y] != offCount {
				h.rightIdx = append(h.rightIdx, z*d+y)
			}
		}
	}

	for x := 0; x < d; x++ {
		for y := 0; y < d; y++ {
			for z := 0; z < d; z++ {
				p := geom.Point{X: x, Y: y, Z: z}
				if gb.grid[gb.Dims.VolumeIndex(p)] != Forbidden {
					h.Points = append(h.Points, p)
				}
			}
		}
	}

	return h
}

// Reset zeros the grid and both counters at the positions hole indexes,
// restoring the GridBox to its just-constructed state.
//
// Complexity: O(len(hole.Points) + len(hole.frontIdx) + len(hole.rightIdx)).
func (gb *GridBox) Reset(hole *Hole) {
	for _, p := range hole.Points {
		gb.grid[gb.Dims.VolumeIndex(p)] = 0
	}
	for _, fi := range hole.frontIdx {
		gb.front[fi] = 0
	}
	for _, ri := range hole.rightIdx {
		gb.right[ri] = 0
	}
}
