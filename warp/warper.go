package warp

import (
	"fmt"

	"github.com/katalvlaran/affinetrack/raster"
)

// Warp produces a new image of the same shape as img whose pixel at
// (x, y) equals raster.Sample(img, m⁻¹·[x, y, 1]ᵀ): m is interpreted as
// mapping source coordinates to output coordinates, and the inverse
// mapping is evaluated at each destination grid point with bilinear
// interpolation and the reflected border policy of raster.Sample.
func Warp(img *raster.Image, m Matrix3) (*raster.Image, error) {
	if img.Empty() {
		return nil, raster.ErrEmptyImage
	}

	inv, err := m.Inverse()
	if err != nil {
		return nil, fmt.Errorf("Warp: %w", err)
	}

	rows, cols := img.Rows(), img.Cols()
	out, err := raster.NewImage(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Warp: %w", err)
	}

	for row := 0; row < rows; row++ {
		y := float64(row)
		for col := 0; col < cols; col++ {
			x := float64(col)
			sx, sy := inv.Apply(x, y)
			v, err := raster.Sample(img, sx, sy)
			if err != nil {
				return nil, fmt.Errorf("Warp: %w", err)
			}
			out.SetFast(row, col, v)
		}
	}

	return out, nil
}
