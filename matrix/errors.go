package matrix

import "errors"

// Sentinel errors for the matrix package. Algorithms MUST return these
// via errors.Is (wrapped with context where useful); panics are reserved
// for programmer errors in unexported helpers.
var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes for
	// Mul, ScaleRows, MulVec or ops.SolveSPD.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a decomposition or solve encounters a
	// zero (or non-positive, for Cholesky) pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates a nil Matrix argument or receiver.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
