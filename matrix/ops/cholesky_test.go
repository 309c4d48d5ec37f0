package ops_test

import (
	"testing"

	"github.com/katalvlaran/affinetrack/matrix"
	"github.com/katalvlaran/affinetrack/matrix/ops"
	"github.com/stretchr/testify/require"
)

func spd3(t *testing.T) *matrix.Dense {
	t.Helper()
	// Symmetric positive definite: A = L·Lᵀ with L = [[2,0,0],[6,1,0],[-8,5,3]].
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	vals := [][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}}
	for i, row := range vals {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func TestCholeskyReconstructsOriginal(t *testing.T) {
	m := spd3(t)
	L, err := ops.Cholesky(m)
	require.NoError(t, err)

	LT, err := matrix.Transpose(L)
	require.NoError(t, err)
	prod, err := matrix.Mul(L, LT)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := m.At(i, j)
			got, _ := prod.At(i, j)
			require.InDelta(t, want, got, 1e-9)
		}
	}
}

func TestCholeskyRejectsNonPositiveDiagonal(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	// All-zero Hessian: flat template patch, every steepest-descent row is 0.
	_, err = ops.Cholesky(m)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveSPDMatchesKnownSolution(t *testing.T) {
	m := spd3(t)
	x := []float64{1, 2, 3}
	b, err := matrix.MulVec(m, x)
	require.NoError(t, err)

	got, err := ops.SolveSPD(m, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, x, got, 1e-7)
}

func TestSolveSPDDimensionMismatch(t *testing.T) {
	m := spd3(t)
	_, err := ops.SolveSPD(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
