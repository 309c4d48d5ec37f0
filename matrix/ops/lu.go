// Package ops provides advanced matrix operations for the affinetrack
// matrix package: LU and Cholesky decompositions, explicit inversion, and
// the normal-equations solver used by the IC iteration driver.
package ops

import (
	"fmt"

	"github.com/katalvlaran/affinetrack/matrix"
)

// LU performs Doolittle LU decomposition on a square matrix m, returning L
// (unit lower triangular) and U (upper triangular) such that m = L·U.
// No pivoting is performed; callers with ill-conditioned input should
// prefer Cholesky (symmetric positive definite) or expect ErrSingular.
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func LU(m matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, nil, fmt.Errorf("LU: non-square %dx%d: %w", rows, cols, matrix.ErrNonSquare)
	}
	n := rows

	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	for i := 0; i < n; i++ {
		L.SetFast(i, i, 1)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += L.AtFast(i, k) * U.AtFast(k, j)
			}
			aVal, _ := m.At(i, j)
			U.SetFast(i, j, aVal-sum)
		}
		for j := i + 1; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += L.AtFast(j, k) * U.AtFast(k, i)
			}
			aVal, _ := m.At(j, i)
			uDiag := U.AtFast(i, i)
			if uDiag == 0 {
				return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, matrix.ErrSingular)
			}
			L.SetFast(j, i, (aVal-sum)/uDiag)
		}
	}

	return L, U, nil
}
