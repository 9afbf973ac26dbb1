package gridbox

// Snapshot is a point-in-time copy of a GridBox's mutable state: the label
// grid and both coverage counters. mc.Run takes one before each speculative
// iteration so a rejected change can be rolled back bit-exactly, per
// spec.md §4.7's "snapshot is a full clone" note.
type Snapshot struct {
	grid  []uint16
	front []int
	right []int
}

// Snapshot copies gb's current state.
//
// Complexity: O(D^3).
func (gb *GridBox) Snapshot() *Snapshot {
	return &Snapshot{
		grid:  append([]uint16(nil), gb.grid...),
		front: append([]int(nil), gb.front...),
		right: append([]int(nil), gb.right...),
	}
}

// Restore overwrites gb's state with a previously taken Snapshot. s must
// have been produced by this GridBox (dimensions are not re-validated,
// since only mc.Run calls this and it always snapshots and restores the
// same box).
//
// Complexity: O(D^3).
func (gb *GridBox) Restore(s *Snapshot) {
	copy(gb.grid, s.grid)
	copy(gb.front, s.front)
	copy(gb.right, s.right)
}

// Labels returns a copy of the flat D^3 label array, in the row-major
// (x*D+y)*D+z order VolumeIndex uses. This is the output shape spec.md §6
// names for the solver's g1/g2 result fields.
//
// Complexity: O(D^3).
func (gb *GridBox) Labels() []uint16 {
	return append([]uint16(nil), gb.grid...)
}
