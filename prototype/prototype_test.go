package prototype

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		cluster  Cluster
		expected []float64
	}{
		{"Single", Cluster{{1, 2}}, []float64{1, 2}},
		{"Pair", Cluster{{0, 0}, {0, 1}}, []float64{0, 0.5}},
		{"Three", Cluster{{0, 0}, {0, 1}, {10, 0}}, []float64{10.0 / 3, 1.0 / 3}},
		{"Negative", Cluster{{-1, 4, 2}, {1, -4, 4}}, []float64{0, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.cluster)
			require.NoError(t, err)
			require.Len(t, got, len(tt.expected))
			for d := range tt.expected {
				assert.InDelta(t, tt.expected[d], got[d], 1e-12)
			}
		})
	}
}

func TestMean_DoesNotMutateMembers(t *testing.T) {
	first := []float64{1, 1}
	cluster := Cluster{first, {3, 3}}

	_, err := Mean(cluster)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, first)
}

func TestMean_Errors(t *testing.T) {
	_, err := Mean(nil)
	assert.ErrorIs(t, err, ErrEmptyCluster)

	_, err = Mean(Cluster{{1, 2}, {1}})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 1, dm.Actual)
}

func TestStrategy(t *testing.T) {
	t.Run("ZeroValueIsCenter", func(t *testing.T) {
		var s Strategy
		assert.Equal(t, NameCenter, s.String())
		fn, err := s.Resolve()
		require.NoError(t, err)
		p, err := fn(Cluster{{2}, {4}})
		require.NoError(t, err)
		assert.Equal(t, []float64{3}, p)
	})

	t.Run("Aliases", func(t *testing.T) {
		for _, name := range []string{"center", "Centroid", "mean"} {
			_, err := Named(name).Resolve()
			assert.NoError(t, err, name)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Named("medoid").Resolve()
		var us *ErrUnknownStrategy
		require.ErrorAs(t, err, &us)
		assert.Equal(t, "medoid", us.Name)
	})

	t.Run("Custom", func(t *testing.T) {
		first := Custom(func(c Cluster) ([]float64, error) {
			return c[0], nil
		})
		assert.True(t, first.IsCustom())
		assert.False(t, Center.IsCustom())

		fn, err := first.Resolve()
		require.NoError(t, err)
		p, err := fn(Cluster{{7, 7}, {1, 1}})
		require.NoError(t, err)
		assert.Equal(t, []float64{7, 7}, p)
	})
}

func TestAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Ordered", func(t *testing.T) {
		clusters := []Cluster{
			{{0, 0}, {2, 2}},
			{{10, 10}},
		}
		protos, err := All(ctx, clusters, Mean)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{1, 1}, {10, 10}}, protos)
	})

	t.Run("EmptyClusterGuardsCustom", func(t *testing.T) {
		called := false
		fn := func(c Cluster) ([]float64, error) {
			called = true
			return []float64{0}, nil
		}
		_, err := All(ctx, []Cluster{{}}, fn)
		assert.ErrorIs(t, err, ErrEmptyCluster)
		assert.False(t, called)
	})

	t.Run("PropagatesStrategyError", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := All(ctx, []Cluster{{{1}}}, func(Cluster) ([]float64, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := All(cctx, []Cluster{{{1}}}, Mean)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
