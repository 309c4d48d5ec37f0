package warp_test

import (
	"testing"

	"github.com/katalvlaran/affinetrack/raster"
	"github.com/katalvlaran/affinetrack/warp"
	"github.com/stretchr/testify/require"
)

func rampImage(t *testing.T) *raster.Image {
	t.Helper()
	img, err := raster.NewImage(10, 10)
	require.NoError(t, err)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			require.NoError(t, img.Set(r, c, float64(c+2*r)))
		}
	}

	return img
}

func TestWarpIdentityIsNoOp(t *testing.T) {
	img := rampImage(t)
	out, err := warp.Warp(img, warp.Identity())
	require.NoError(t, err)

	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			want, _ := img.At(r, c)
			got, _ := out.At(r, c)
			require.InDelta(t, want, got, 1e-9)
		}
	}
}

func TestWarpTranslation(t *testing.T) {
	img := rampImage(t)
	m := warp.Identity()
	m[0][2] = 1 // shift content right by one column

	out, err := warp.Warp(img, m)
	require.NoError(t, err)

	// out(x,y) = img(sample at m^-1 * (x,y)); a +1 x-shift in the forward
	// map means out[row][col] == img(col-1, row) for interior columns.
	want, _ := img.At(5, 3)
	got, _ := out.At(5, 4)
	require.InDelta(t, want, got, 1e-9)
}

func TestWarpEmptyImage(t *testing.T) {
	_, err := warp.Warp(nil, warp.Identity())
	require.ErrorIs(t, err, raster.ErrEmptyImage)
}
