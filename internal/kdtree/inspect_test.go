package kdtree_test

import (
	"testing"

	"github.com/hupe1980/photonkd/internal/kdtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	root, err := kdtree.Build([]kdtree.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}, kdtree.DefaultConfig())
	require.NoError(t, err)
	root, _, err = kdtree.Delete(kdtree.Point{X: 0}, root, kdtree.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, kdtree.Stats{Nodes: 4, Live: 3, Tombstones: 1, Depth: 3}, kdtree.Measure(root))
	assert.Equal(t, kdtree.Stats{}, kdtree.Measure(nil))
}

func TestValidate_DetectsViolations(t *testing.T) {
	cfg := kdtree.DefaultConfig()

	t.Run("divider", func(t *testing.T) {
		n := &kdtree.Node{Position: kdtree.Point{X: 1}, Divider: 2, Size: 1, Exists: true}
		assert.ErrorIs(t, kdtree.Validate(n, cfg), kdtree.ErrInvariant)
	})

	t.Run("routing", func(t *testing.T) {
		n := &kdtree.Node{
			Position: kdtree.Point{X: 1}, Divider: 1, Size: 2, Exists: true,
			Left: &kdtree.Node{Position: kdtree.Point{X: 3}, Divider: 3, Size: 1, Exists: true},
		}
		assert.ErrorIs(t, kdtree.Validate(n, cfg), kdtree.ErrInvariant)
	})

	t.Run("size", func(t *testing.T) {
		n := &kdtree.Node{
			Position: kdtree.Point{X: 1}, Divider: 1, Size: 1, Exists: true,
			Right: &kdtree.Node{Position: kdtree.Point{X: 3}, Divider: 3, Size: 1, Exists: true},
		}
		assert.ErrorIs(t, kdtree.Validate(n, cfg), kdtree.ErrInvariant)

		legacy := cfg
		legacy.Accounting = kdtree.AccountingLegacy
		assert.NoError(t, kdtree.Validate(n, legacy))
	})

	t.Run("delete count", func(t *testing.T) {
		n := &kdtree.Node{Position: kdtree.Point{X: 1}, Divider: 1, Size: 1}
		assert.ErrorIs(t, kdtree.Validate(n, cfg), kdtree.ErrInvariant)
	})
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, kdtree.DefaultConfig().Validate())

	for _, alpha := range []float64{0, 1, -0.5, 2} {
		cfg := kdtree.DefaultConfig()
		cfg.Alpha = alpha
		assert.ErrorIs(t, cfg.Validate(), kdtree.ErrInvalidArgument, "alpha %g", alpha)
	}

	cfg := kdtree.DefaultConfig()
	cfg.ParallelThreshold = -1
	assert.ErrorIs(t, cfg.Validate(), kdtree.ErrInvalidArgument)

	cfg = kdtree.DefaultConfig()
	cfg.Split = kdtree.SplitPolicy(9)
	assert.ErrorIs(t, cfg.Validate(), kdtree.ErrInvalidArgument)
}
