package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/affinetrack/matrix"
)

// pivotEps is the minimum acceptable diagonal value during Cholesky
// factorization. A Gauss-Newton Hessian built from a near-flat template
// patch produces diagonal entries that are merely small, not exactly
// zero, so an exact == 0 test (as used by LU's no-pivoting path) would
// miss it; this policy is a strict fail-fast stance sized for
// floating-point Hessians rather than structural matrices.
const pivotEps = 1e-12

// Cholesky computes the lower-triangular factor L such that m = L·Lᵀ for
// a symmetric positive (semi-)definite m. It returns matrix.ErrSingular,
// wrapped with the offending pivot index, the moment a diagonal entry
// drops at or below pivotEps — the caller (track.Tracker.Track) is expected to
// treat that as a rare condition to report, not a panic.
//
// Only the lower triangle of m is read; m need not be explicitly
// symmetrized by the caller as long as it was assembled as Jᵀ·D·J for a
// real J and non-negative diagonal D, which is symmetric by construction.
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Cholesky(m matrix.Matrix) (*matrix.Dense, error) {
	n := m.Rows()
	if m.Cols() != n {
		return nil, fmt.Errorf("Cholesky: non-square %dx%d: %w", n, m.Cols(), matrix.ErrNonSquare)
	}

	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Cholesky: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var sum float64
			for k := 0; k < j; k++ {
				sum += L.AtFast(i, k) * L.AtFast(j, k)
			}
			aij, _ := m.At(i, j)
			if i == j {
				diag := aij - sum
				if diag <= pivotEps {
					return nil, fmt.Errorf("Cholesky: non-positive pivot at %d: %w", i, matrix.ErrSingular)
				}
				L.SetFast(i, i, math.Sqrt(diag))
				continue
			}
			L.SetFast(i, j, (aij-sum)/L.AtFast(j, j))
		}
	}

	return L, nil
}

// SolveSPD solves H·x = b for a symmetric positive (semi-)definite H via
// Cholesky factorization and forward/backward substitution. This is the
// normal-equations solver used by the IC iteration driver: H = Jᵀ·D·J,
// b = Jᵀ·D·e, x = Δp.
func SolveSPD(h matrix.Matrix, b []float64) ([]float64, error) {
	n := h.Rows()
	if len(b) != n {
		return nil, fmt.Errorf("SolveSPD: %d rhs entries for %dx%d system: %w", len(b), n, h.Cols(), matrix.ErrDimensionMismatch)
	}

	L, err := Cholesky(h)
	if err != nil {
		return nil, fmt.Errorf("SolveSPD: %w", err)
	}

	// Forward substitution: L·y = b
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= L.AtFast(i, k) * y[k]
		}
		y[i] = sum / L.AtFast(i, i)
	}

	// Backward substitution: Lᵀ·x = y
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= L.AtFast(k, i) * x[k]
		}
		x[i] = sum / L.AtFast(i, i)
	}

	return x, nil
}
