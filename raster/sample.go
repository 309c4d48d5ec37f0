package raster

import "math"

// Sample returns the bilinearly-interpolated intensity of img at the
// real-valued coordinate (x, y): x is the column axis, y is the row axis.
//
// Let i = floor(x), j = floor(y), dx = x-i, dy = y-j. The four pixels at
// (i,j), (i+1,j), (i,j+1), (i+1,j+1) are combined with weights
// (1-dx)(1-dy), dx(1-dy), (1-dx)dy, dx*dy respectively. Coordinates
// falling outside img are folded back in by reflectIndex (symmetric
// reflection without edge repetition) rather than clamped.
func Sample(img *Image, x, y float64) (float64, error) {
	if img.Empty() {
		return 0, ErrEmptyImage
	}

	fi := math.Floor(x)
	fj := math.Floor(y)
	i := int(fi)
	j := int(fj)
	dx := x - fi
	dy := y - fj
	dx1 := 1 - dx
	dy1 := 1 - dy

	cols, rows := img.cols, img.rows
	i0 := reflectIndex(i, cols)
	i1 := reflectIndex(i+1, cols)
	j0 := reflectIndex(j, rows)
	j1 := reflectIndex(j+1, rows)

	v00 := img.AtFast(j0, i0)
	v10 := img.AtFast(j0, i1)
	v01 := img.AtFast(j1, i0)
	v11 := img.AtFast(j1, i1)

	return dx1*dy1*v00 + dx*dy1*v10 + dx1*dy*v01 + dx*dy*v11, nil
}
