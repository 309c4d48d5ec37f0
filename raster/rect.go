package raster

import "fmt"

// Rect extracts an ny×nx floating-point patch from img whose (i, j) entry
// is Sample(img, x0+j*dx, y0+i*dy). It has no side effects on img and
// always allocates a fresh Image. nx and ny must be positive; callers
// (warp.BBox.Grid) are responsible for deriving them from a bounding box.
func Rect(img *Image, x0, y0, dx, dy float64, nx, ny int) (*Image, error) {
	if img.Empty() {
		return nil, ErrEmptyImage
	}
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("Rect: grid %dx%d: %w", ny, nx, ErrInvalidDimensions)
	}

	out, err := NewImage(ny, nx)
	if err != nil {
		return nil, fmt.Errorf("Rect: %w", err)
	}

	for i := 0; i < ny; i++ {
		y := y0 + float64(i)*dy
		for j := 0; j < nx; j++ {
			x := x0 + float64(j)*dx
			v, err := Sample(img, x, y)
			if err != nil {
				return nil, fmt.Errorf("Rect: %w", err)
			}
			out.SetFast(i, j, v)
		}
	}

	return out, nil
}
