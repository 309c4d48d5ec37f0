package raster

import "errors"

// Sentinel errors for the raster package. Preconditions are reported via
// errors.Is-checkable values, never silent undefined behavior.
var (
	// ErrEmptyImage indicates a required image is missing or zero-sized.
	ErrEmptyImage = errors.New("raster: image is empty")

	// ErrChannelMismatch indicates a supplied image is not single-channel
	// and the caller did not request lossy conversion.
	ErrChannelMismatch = errors.New("raster: image is not single-channel")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("raster: index out of range")

	// ErrInvalidDimensions indicates a requested image shape is invalid.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")
)
