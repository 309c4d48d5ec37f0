package ops

import (
	"fmt"

	"github.com/katalvlaran/affinetrack/matrix"
)

// Inverse returns the inverse of the square matrix m via LU decomposition
// and forward/backward substitution against each basis column. It is a
// general-purpose utility: the IC driver (track.Tracker.Track) does not
// call it and always solves the normal equations with SolveSPD.
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m matrix.Matrix) (*matrix.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", rows, cols, matrix.ErrNonSquare)
	}

	L, U, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	inv, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	y := make([]float64, rows)
	x := make([]float64, rows)

	for col := 0; col < cols; col++ {
		// Forward substitution: L·y = e_col
		for i := 0; i < rows; i++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += L.AtFast(i, k) * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}

		// Backward substitution: U·x = y
		for i := rows - 1; i >= 0; i-- {
			var sum float64
			for k := i + 1; k < cols; k++ {
				sum += U.AtFast(i, k) * x[k]
			}
			pivot := U.AtFast(i, i)
			if pivot == 0 {
				return nil, fmt.Errorf("Inverse: zero pivot at %d: %w", i, matrix.ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}

		for i := 0; i < rows; i++ {
			inv.SetFast(i, col, x[i])
		}
	}

	return inv, nil
}
