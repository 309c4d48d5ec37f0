package warp

import "errors"

// ErrBadBBox indicates a bounding box with non-finite coordinates, an
// inverted or degenerate extent (x1 <= x0 or y1 <= y0), or a width/height
// not exceeding 2 pixels (the sample grid would collapse).
var ErrBadBBox = errors.New("warp: invalid bounding box")

// ErrSingularWarp indicates a warp matrix could not be inverted: its
// determinant is within singularEps of zero. Matrix3.Inverse returns it,
// and so do Warp and Track, which invert matrices internally.
var ErrSingularWarp = errors.New("warp: matrix is not invertible")
