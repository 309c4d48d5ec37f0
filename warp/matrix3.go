package warp

// Matrix3 is a 3x3 real matrix whose last row is conventionally
// [0, 0, 1], representing an affine warp in homogeneous coordinates:
//
//	[[1+p1,  p3,   p5],
//	 [ p2,  1+p4,  p6],
//	 [  0,    0,   1 ]]
type Matrix3 [3][3]float64

// Identity returns the identity warp (p = 0).
func Identity() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// FromParams builds the incremental warp M(Δp) from the six affine
// parameters, in the column order fixed by the Jacobian layout:
// dp = (p1, p2, p3, p4, p5, p6).
func FromParams(dp [6]float64) Matrix3 {
	return Matrix3{
		{1 + dp[0], dp[2], dp[4]},
		{dp[1], 1 + dp[3], dp[5]},
		{0, 0, 1},
	}
}

// Mul returns a*b.
func (a Matrix3) Mul(b Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Apply maps the homogeneous point (x, y, 1) through m and returns the
// Cartesian result (m's last row is assumed [0, 0, 1]).
func (m Matrix3) Apply(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2],
		m[1][0]*x + m[1][1]*y + m[1][2]
}

// Inverse returns m's inverse via the cofactor expansion of the full 3x3
// matrix. ErrSingularWarp is returned when the determinant is within
// singularEps of zero.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	if det > -singularEps && det < singularEps {
		return Matrix3{}, ErrSingularWarp
	}
	invDet := 1.0 / det

	var out Matrix3
	out[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	out[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	out[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	out[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	out[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	out[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	out[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	out[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	out[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet

	return out, nil
}

// singularEps bounds how close to zero a warp's determinant may be
// before Inverse reports ErrSingularWarp.
const singularEps = 1e-12
