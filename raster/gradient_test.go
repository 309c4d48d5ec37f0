package raster_test

import (
	"testing"

	"github.com/katalvlaran/affinetrack/raster"
	"github.com/stretchr/testify/require"
)

func TestSobelFlatImageIsZero(t *testing.T) {
	img, err := raster.NewImage(5, 5)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			require.NoError(t, img.Set(r, c, 42))
		}
	}

	gx, gy, err := raster.Sobel(img)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			vx, _ := gx.At(r, c)
			vy, _ := gy.At(r, c)
			require.InDelta(t, 0, vx, 1e-9)
			require.InDelta(t, 0, vy, 1e-9)
		}
	}
}

func TestSobelHorizontalRamp(t *testing.T) {
	img, err := raster.NewImage(5, 5)
	require.NoError(t, err)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			require.NoError(t, img.Set(r, c, float64(c)))
		}
	}

	gx, _, err := raster.Sobel(img)
	require.NoError(t, err)
	v, _ := gx.At(2, 2)
	require.InDelta(t, 8.0, v, 1e-9) // Sobel-X row weights (1+2+1) times the per-row difference 2 on a unit ramp
}
