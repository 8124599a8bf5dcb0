package kdtree_test

import (
	"testing"

	"github.com/hupe1980/photonkd/internal/kdtree"
	"github.com/hupe1980/photonkd/testutil"
	"github.com/stretchr/testify/assert"
)

func TestChooseAxis(t *testing.T) {
	tests := []struct {
		name   string
		points []kdtree.Point
		want   kdtree.Axis
	}{
		{
			name:   "spread on x",
			points: []kdtree.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}},
			want:   kdtree.AxisX,
		},
		{
			name:   "spread on y",
			points: []kdtree.Point{{X: 1, Y: -5}, {X: 1.5, Y: 5}, {X: 1, Y: 0}},
			want:   kdtree.AxisY,
		},
		{
			name:   "spread on z",
			points: []kdtree.Point{{Z: 10}, {Z: -10}, {X: 0.1}},
			want:   kdtree.AxisZ,
		},
		{
			name:   "single point",
			points: []kdtree.Point{{X: 3, Y: 4, Z: 5}},
			want:   kdtree.AxisX,
		},
		{
			name:   "all equal prefers x",
			points: []kdtree.Point{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}},
			want:   kdtree.AxisX,
		},
		{
			name:   "y and z tie prefers y",
			points: []kdtree.Point{{Y: 1, Z: 1}, {Y: -1, Z: -1}},
			want:   kdtree.AxisY,
		},
		{
			name:   "ties within tolerance",
			points: []kdtree.Point{{X: 1, Z: 1 + 1e-12}, {X: -1, Z: -1 - 1e-12}},
			want:   kdtree.AxisX,
		},
		{
			name: "empty",
			want: kdtree.AxisX,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kdtree.ChooseAxis(tt.points))
		})
	}
}

func TestChooseAxis_Gaussian(t *testing.T) {
	rng := testutil.NewRNG(7)

	assert.Equal(t, kdtree.AxisX, kdtree.ChooseAxis(rng.GaussianPoints(500, 10, 1, 1)))
	assert.Equal(t, kdtree.AxisY, kdtree.ChooseAxis(rng.GaussianPoints(500, 1, 10, 1)))
	assert.Equal(t, kdtree.AxisZ, kdtree.ChooseAxis(rng.GaussianPoints(500, 1, 1, 10)))
}

func TestPointEqual(t *testing.T) {
	p := kdtree.Point{X: 1, Y: 2, Z: 3, Phi: 0.5}

	assert.True(t, p.Equal(kdtree.Point{X: 1 + 5e-9, Y: 2, Z: 3 - 5e-9}))
	assert.True(t, p.Equal(kdtree.Point{X: 1, Y: 2, Z: 3, Phi: 2, Theta: 1}), "angles are not part of identity")
	assert.False(t, p.Equal(kdtree.Point{X: 1, Y: 2 + 2e-8, Z: 3}))
}

func TestSplitPolicyIndex(t *testing.T) {
	assert.Equal(t, 2, kdtree.SplitLegacy.Index(kdtree.AxisX, 5))
	assert.Equal(t, 3, kdtree.SplitLegacy.Index(kdtree.AxisY, 5))
	assert.Equal(t, 3, kdtree.SplitLegacy.Index(kdtree.AxisZ, 5))
	assert.Equal(t, 2, kdtree.SplitLegacy.Index(kdtree.AxisY, 4))
	assert.Equal(t, 0, kdtree.SplitLegacy.Index(kdtree.AxisY, 1), "clamped to the last index")
	assert.Equal(t, 2, kdtree.SplitLowerMedian.Index(kdtree.AxisY, 5))
	assert.Equal(t, 2, kdtree.SplitLowerMedian.Index(kdtree.AxisZ, 5))
}
