package warp_test

import (
	"testing"

	"github.com/katalvlaran/affinetrack/warp"
	"github.com/stretchr/testify/require"
)

func TestFromParamsIdentityAtZero(t *testing.T) {
	m := warp.FromParams([6]float64{})
	require.Equal(t, warp.Identity(), m)
}

func TestMatrix3MulIdentity(t *testing.T) {
	m := warp.FromParams([6]float64{0.1, 0.2, 0.3, 0.4, 5, -2})
	out := m.Mul(warp.Identity())
	require.Equal(t, m, out)
}

func TestMatrix3InverseRoundTrip(t *testing.T) {
	m := warp.FromParams([6]float64{0.1, -0.05, 0.02, 0.08, 3, -4})
	inv, err := m.Inverse()
	require.NoError(t, err)

	prod := m.Mul(inv)
	id := warp.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, id[i][j], prod[i][j], 1e-9)
		}
	}
}

func TestMatrix3InverseSingular(t *testing.T) {
	var m warp.Matrix3 // all zero: singular
	_, err := m.Inverse()
	require.ErrorIs(t, err, warp.ErrSingularWarp)
}

func TestMatrix3Apply(t *testing.T) {
	m := warp.Identity()
	m[0][2] = 10
	m[1][2] = -5
	x, y := m.Apply(1, 2)
	require.InDelta(t, 11, x, 1e-12)
	require.InDelta(t, -3, y, 1e-12)
}
