package raster_test

import (
	"testing"

	"github.com/katalvlaran/affinetrack/raster"
	"github.com/stretchr/testify/require"
)

func TestRectShapeAndValues(t *testing.T) {
	img := testImage(t)

	patch, err := raster.Rect(img, 1, 1, 1, 1, 3, 3)
	require.NoError(t, err)
	require.Equal(t, 3, patch.Rows())
	require.Equal(t, 3, patch.Cols())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := img.At(1+i, 1+j)
			got, _ := patch.At(i, j)
			require.InDelta(t, want, got, 1e-12)
		}
	}
}

func TestRectInvalidGrid(t *testing.T) {
	img := testImage(t)
	_, err := raster.Rect(img, 0, 0, 1, 1, 0, 3)
	require.ErrorIs(t, err, raster.ErrInvalidDimensions)
}
