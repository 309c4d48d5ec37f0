package raster

import "fmt"

// Image is a single-channel 2-D array of floating-point intensities,
// addressable as I[row, col]. Rows correspond to y, columns to x.
// Storage is a flat row-major slice, matching matrix.Dense's layout.
type Image struct {
	rows, cols int
	data       []float64
}

// NewImage allocates a rows×cols Image initialized to zero.
func NewImage(rows, cols int) (*Image, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Image{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows (the image height).
func (img *Image) Rows() int {
	if img == nil {
		return 0
	}

	return img.rows
}

// Cols returns the number of columns (the image width).
func (img *Image) Cols() int {
	if img == nil {
		return 0
	}

	return img.cols
}

// Empty reports whether img is nil or has no pixels.
func (img *Image) Empty() bool {
	return img == nil || img.rows == 0 || img.cols == 0
}

// indexOf computes the flat offset for (row, col), bounds-checked.
func (img *Image) indexOf(row, col int) (int, error) {
	if row < 0 || row >= img.rows || col < 0 || col >= img.cols {
		return 0, fmt.Errorf("Image.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*img.cols + col, nil
}

// At retrieves the intensity at (row, col).
func (img *Image) At(row, col int) (float64, error) {
	if img.Empty() {
		return 0, ErrEmptyImage
	}
	idx, err := img.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return img.data[idx], nil
}

// Set assigns intensity v at (row, col).
func (img *Image) Set(row, col int, v float64) error {
	if img.Empty() {
		return ErrEmptyImage
	}
	idx, err := img.indexOf(row, col)
	if err != nil {
		return err
	}
	img.data[idx] = v

	return nil
}

// AtFast reads (row, col) without bounds checking; used by inner loops
// (sampler, gradient, warper) that have already established the shape
// invariant via reflectIndex or an explicit grid derivation.
func (img *Image) AtFast(row, col int) float64 {
	return img.data[row*img.cols+col]
}

// SetFast writes (row, col) without bounds checking. See AtFast.
func (img *Image) SetFast(row, col int, v float64) {
	img.data[row*img.cols+col] = v
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	if img == nil {
		return nil
	}
	cp := make([]float64, len(img.data))
	copy(cp, img.data)

	return &Image{rows: img.rows, cols: img.cols, data: cp}
}

// reflectIndex folds an out-of-range index back into [0, n) by symmetric
// reflection about the last interior pixel, without repeating the edge
// sample: the sequence for n=3 reads …, 2, 1, 0, 1, 2, …. n must be > 0.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}

	return i
}
