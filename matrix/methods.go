package matrix

import "fmt"

// Transpose returns a new Dense holding the transpose of m.
// Complexity: O(r*c) time and memory.
func Transpose(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Transpose: %w", err)
			}
			_ = out.Set(j, i, v)
		}
	}

	return out, nil
}

// Mul returns a*b as a new Dense. a.Cols() must equal b.Rows().
// Complexity: O(a.Rows * a.Cols * b.Cols).
func Mul(a, b Matrix) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("Mul: %dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	out, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	for i := 0; i < a.Rows(); i++ {
		for k := 0; k < a.Cols(); k++ {
			av, _ := a.At(i, k)
			if av == 0 {
				continue // skip zero contributions; common for sparse D
			}
			for j := 0; j < b.Cols(); j++ {
				bv, _ := b.At(k, j)
				cur, _ := out.At(i, j)
				_ = out.Set(i, j, cur+av*bv)
			}
		}
	}

	return out, nil
}

// ScaleRows returns a copy of m with row i multiplied by weights[i]. Used
// to form D·J for a diagonal weight matrix D without materializing D.
func ScaleRows(m Matrix, weights []float64) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(weights) != m.Rows() {
		return nil, fmt.Errorf("ScaleRows: %d weights for %d rows: %w", len(weights), m.Rows(), ErrDimensionMismatch)
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, fmt.Errorf("ScaleRows: %w", err)
	}
	for i := 0; i < m.Rows(); i++ {
		w := weights[i]
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(i, j, v*w)
		}
	}

	return out, nil
}

// MulVec returns m*v as a new slice. m.Cols() must equal len(v).
func MulVec(m Matrix, v []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Cols() != len(v) {
		return nil, fmt.Errorf("MulVec: %dx%d * %d: %w", m.Rows(), m.Cols(), len(v), ErrDimensionMismatch)
	}
	out := make([]float64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		var sum float64
		for j := 0; j < m.Cols(); j++ {
			mv, _ := m.At(i, j)
			sum += mv * v[j]
		}
		out[i] = sum
	}

	return out, nil
}
