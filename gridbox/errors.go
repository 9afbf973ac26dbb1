package gridbox

import "errors"

// Sentinel errors for gridbox construction. These are boundary validation
// errors (the external silhouette parser's output shape), not the invariant
// violations of spec.md §7 — Put/Remove panic instead,
// since those indicate a bug in the caller rather than bad external input.
var (
	// ErrEmptySilhouette indicates a silhouette has no rows or no columns.
	ErrEmptySilhouette = errors.New("gridbox: silhouette must have at least one row and one column")
	// ErrNonSquareSilhouette indicates a silhouette is not D x D.
	ErrNonSquareSilhouette = errors.New("gridbox: silhouette must be square (D rows of D columns)")
	// ErrDimensionMismatch indicates the front and right silhouettes disagree on D.
	ErrDimensionMismatch = errors.New("gridbox: front and right silhouettes have different D")
)
