package warp

import "math"

// BBox is an axis-aligned rectangle (x0, y0, x1, y1) = (left, top, right,
// bottom) in image pixel coordinates, with x0 < x1 and y0 < y1. It is the
// tracker's persistent state between calls to Track.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// Width returns x1 - x0.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns y1 - y0.
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// Valid reports ErrBadBBox if b has non-finite coordinates, is inverted
// or degenerate, or its width/height do not exceed 2 pixels (the minimum
// needed for the sample grid to produce at least a 2x2 grid).
func (b BBox) Valid() error {
	coords := [4]float64{b.X0, b.Y0, b.X1, b.Y1}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrBadBBox
		}
	}
	if b.X1 <= b.X0 || b.Y1 <= b.Y0 {
		return ErrBadBBox
	}
	if b.Width() <= 2 || b.Height() <= 2 {
		return ErrBadBBox
	}

	return nil
}

// Grid derives the sample-grid parameters: integer counts nx = floor(W),
// ny = floor(H), and inclusive steps dx = W/(nx-1), dy = H/(ny-1) that
// span both edges of b. Callers must have already validated b via Valid;
// Grid does not re-validate.
func (b BBox) Grid() (nx, ny int, dx, dy float64) {
	nx = int(math.Floor(b.Width()))
	ny = int(math.Floor(b.Height()))
	dx = b.Width() / float64(nx-1)
	dy = b.Height() / float64(ny-1)

	return nx, ny, dx, dy
}

// corners returns the BBox's two defining corners as homogeneous column
// vectors: [[x0, x1], [y0, y1], [1, 1]], for use by PropagateBBox.
func (b BBox) corners() [3][2]float64 {
	return [3][2]float64{
		{b.X0, b.X1},
		{b.Y0, b.Y1},
		{1, 1},
	}
}

// PropagateBBox maps b's two corners through warp m and returns the new
// axis-aligned BBox (new[0][0], new[1][0], new[0][1], new[1][1]) in
// (x0', y0', x1', y1') order.
func PropagateBBox(b BBox, m Matrix3) BBox {
	c := b.corners()
	var out [3][2]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 2; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[row][k] * c[k][col]
			}
			out[row][col] = sum
		}
	}

	return BBox{X0: out[0][0], Y0: out[1][0], X1: out[0][1], Y1: out[1][1]}
}
