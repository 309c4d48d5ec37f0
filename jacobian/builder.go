package jacobian

import (
	"fmt"

	"github.com/katalvlaran/affinetrack/matrix"
	"github.com/katalvlaran/affinetrack/raster"
	"github.com/katalvlaran/affinetrack/warp"
)

// Matrix wraps an N×6 matrix.Dense together with its cached transpose, so
// the IC iteration driver (track.Tracker.Track) never recomputes Jᵀ within the
// inner loop.
type Matrix struct {
	j  *matrix.Dense
	jt *matrix.Dense
}

// N returns the number of observation rows (nx * ny of the sample grid).
func (m *Matrix) N() int { return m.j.Rows() }

// J returns the underlying N×6 Dense matrix.
func (m *Matrix) J() *matrix.Dense { return m.j }

// JT returns the cached 6×N transpose.
func (m *Matrix) JT() *matrix.Dense { return m.jt }

// Build computes the gradient images of template via raster.Sobel and
// assembles J as follows: for each sample point (x, y) of bbox's grid,
// row k is [gx*x, gy*x, gx*y, gy*y, gx, gy], with gx, gy sampled from
// the template's gradients. This column order matches the parameter
// layout p = (p1..p6) used by warp.FromParams.
func Build(template *raster.Image, bbox warp.BBox) (*Matrix, error) {
	if template.Empty() {
		return nil, raster.ErrEmptyImage
	}
	if err := bbox.Valid(); err != nil {
		return nil, err
	}

	gx, gy, err := raster.Sobel(template)
	if err != nil {
		return nil, fmt.Errorf("jacobian.Build: %w", err)
	}

	nx, ny, dx, dy := bbox.Grid()
	n := nx * ny
	j, err := matrix.NewDense(n, 6)
	if err != nil {
		return nil, fmt.Errorf("jacobian.Build: %w", err)
	}

	k := 0
	for i := 0; i < ny; i++ {
		y := bbox.Y0 + float64(i)*dy
		for col := 0; col < nx; col++ {
			x := bbox.X0 + float64(col)*dx

			gxv, err := raster.Sample(gx, x, y)
			if err != nil {
				return nil, fmt.Errorf("jacobian.Build: %w", err)
			}
			gyv, err := raster.Sample(gy, x, y)
			if err != nil {
				return nil, fmt.Errorf("jacobian.Build: %w", err)
			}

			j.SetFast(k, 0, gxv*x)
			j.SetFast(k, 1, gyv*x)
			j.SetFast(k, 2, gxv*y)
			j.SetFast(k, 3, gyv*y)
			j.SetFast(k, 4, gxv)
			j.SetFast(k, 5, gyv)
			k++
		}
	}

	jt, err := matrix.Transpose(j)
	if err != nil {
		return nil, fmt.Errorf("jacobian.Build: %w", err)
	}

	return &Matrix{j: j, jt: jt}, nil
}
