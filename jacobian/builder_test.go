package jacobian_test

import (
	"testing"

	"github.com/katalvlaran/affinetrack/jacobian"
	"github.com/katalvlaran/affinetrack/raster"
	"github.com/katalvlaran/affinetrack/warp"
	"github.com/stretchr/testify/require"
)

func rampTemplate(t *testing.T) *raster.Image {
	t.Helper()
	img, err := raster.NewImage(100, 100)
	require.NoError(t, err)
	for r := 0; r < 100; r++ {
		for c := 0; c < 100; c++ {
			require.NoError(t, img.Set(r, c, float64(int(c+2*r)%17)))
		}
	}

	return img
}

// P5: J is N x 6 with N = nx * ny from the BBox at call entry.
func TestBuildShape(t *testing.T) {
	img := rampTemplate(t)
	bbox := warp.BBox{X0: 20, Y0: 20, X1: 80, Y1: 80}

	j, err := jacobian.Build(img, bbox)
	require.NoError(t, err)

	nx, ny, _, _ := bbox.Grid()
	require.Equal(t, nx*ny, j.N())
	require.Equal(t, nx*ny, j.J().Rows())
	require.Equal(t, 6, j.J().Cols())
	require.Equal(t, 6, j.JT().Rows())
	require.Equal(t, nx*ny, j.JT().Cols())
}

func TestBuildRejectsBadBBox(t *testing.T) {
	img := rampTemplate(t)
	_, err := jacobian.Build(img, warp.BBox{X0: 10, Y0: 10, X1: 11, Y1: 20})
	require.ErrorIs(t, err, warp.ErrBadBBox)
}

func TestBuildRejectsEmptyImage(t *testing.T) {
	_, err := jacobian.Build(nil, warp.BBox{X0: 0, Y0: 0, X1: 10, Y1: 10})
	require.ErrorIs(t, err, raster.ErrEmptyImage)
}
