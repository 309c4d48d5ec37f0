package raster

// sobelX and sobelY are the standard 3x3 Sobel kernels, indexed
// [row-offset+1][col-offset+1] for offsets in {-1, 0, 1}.
var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// Sobel computes the horizontal and vertical gradients of img using the
// 3x3 Sobel operator, with symmetric border reflection (see reflectIndex)
// supplying the out-of-range taps at the image edges. Gx and Gy have the
// same shape as img.
func Sobel(img *Image) (gx, gy *Image, err error) {
	if img.Empty() {
		return nil, nil, ErrEmptyImage
	}

	gx, err = NewImage(img.rows, img.cols)
	if err != nil {
		return nil, nil, err
	}
	gy, err = NewImage(img.rows, img.cols)
	if err != nil {
		return nil, nil, err
	}

	for row := 0; row < img.rows; row++ {
		for col := 0; col < img.cols; col++ {
			var sx, sy float64
			for dr := -1; dr <= 1; dr++ {
				r := reflectIndex(row+dr, img.rows)
				for dc := -1; dc <= 1; dc++ {
					c := reflectIndex(col+dc, img.cols)
					v := img.AtFast(r, c)
					sx += sobelX[dr+1][dc+1] * v
					sy += sobelY[dr+1][dc+1] * v
				}
			}
			gx.SetFast(row, col, sx)
			gy.SetFast(row, col, sy)
		}
	}

	return gx, gy, nil
}
