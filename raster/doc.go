// Package raster provides single-channel floating-point image storage and
// the sub-pixel primitives the affine tracker is built from: bilinear
// sampling with reflected borders, rectangle extraction over a sub-pixel
// grid, and a Sobel-like gradient producer.
//
// Image is deliberately independent of image.Image: the tracker's inner
// loop samples the same buffer hundreds of times per call to Track, and a
// flat []float64 row-major layout (mirrored from matrix.Dense) keeps that
// hot path allocation-free and cache-friendly. Conversion from the
// standard library's image types is confined to convert.go, the single
// place frame decoding crosses into the tracker's own image type.
package raster
