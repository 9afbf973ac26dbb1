package gridbox

// Silhouette is a D x D boolean image: Silhouette[i][j] is true for an "on"
// cell (a voxel must project onto it) and false for "off" (no voxel may).
// For the front silhouette i is x and j is z; for the right silhouette i is
// y and j is z — the transpose from the raw row-major input matrices is the
// external parser's job (spec.md §6/§9), not this package's.
type Silhouette [][]bool

// validate checks that s is non-empty and square, returning its side D.
func (s Silhouette) validate() (int, error) {
	if len(s) == 0 || len(s[0]) == 0 {
		return 0, ErrEmptySilhouette
	}
	d := len(s)
	for _, row := range s {
		if len(row) != d {
			return 0, ErrNonSquareSilhouette
		}
	}

	return d, nil
}

// Forbidden is the grid-label sentinel marking a voxel whose projection
// would hit an off silhouette cell. It must lie outside the range of real
// block ids; this module reserves the maximum representable uint16, per
// spec.md §9's "Forbidden vs. empty" design note.
const Forbidden uint16 = 1<<16 - 1

// offCount is the coverage-counter sentinel for a column that is entirely
// off in its silhouette. It is negative so it can never equal a real,
// non-negative coverage count.
const offCount = -1
