package raster_test

import (
	"testing"

	"github.com/katalvlaran/affinetrack/raster"
	"github.com/stretchr/testify/require"
)

func TestNewImageInvalidDimensions(t *testing.T) {
	_, err := raster.NewImage(0, 5)
	require.ErrorIs(t, err, raster.ErrInvalidDimensions)
}

func TestAtSetOutOfRange(t *testing.T) {
	img, err := raster.NewImage(2, 2)
	require.NoError(t, err)

	_, err = img.At(-1, 0)
	require.ErrorIs(t, err, raster.ErrOutOfRange)

	err = img.Set(2, 0, 1)
	require.ErrorIs(t, err, raster.ErrOutOfRange)
}

func TestEmptyImageOperations(t *testing.T) {
	var img *raster.Image
	_, err := img.At(0, 0)
	require.ErrorIs(t, err, raster.ErrEmptyImage)

	_, _, err = raster.Sobel(img)
	require.ErrorIs(t, err, raster.ErrEmptyImage)

	_, err = raster.Sample(img, 0, 0)
	require.ErrorIs(t, err, raster.ErrEmptyImage)
}

func TestCloneIsIndependent(t *testing.T) {
	img, err := raster.NewImage(2, 2)
	require.NoError(t, err)
	require.NoError(t, img.Set(0, 0, 5))

	cl := img.Clone()
	require.NoError(t, img.Set(0, 0, 9))

	v, _ := cl.At(0, 0)
	require.Equal(t, 5.0, v)
}
