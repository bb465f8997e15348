package heightstat_test

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/bst/internal/bst"
	"github.com/vancomm/bst/internal/heightstat"
)

func TestMain(m *testing.M) {
	heightstat.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestBuild(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tree := heightstat.Build(100, r)

	assert.Equal(t, 100, tree.Size())
	assert.NoError(t, tree.Check())
	for k := range tree.All() {
		assert.Less(t, k, 200)
	}
}

func TestChurn(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tree := heightstat.Build(50, r)

	heightstat.Churn(tree, 200, 50, r)

	assert.NoError(t, tree.Check())
	// at most 200 inserts on top of the initial 50
	assert.LessOrEqual(t, tree.Size(), 250)
}

func TestAverageLeafDepth(t *testing.T) {
	tree := bst.New[int, int]()
	assert.Equal(t, 0.0, heightstat.AverageLeafDepth(tree))

	tree.Put(5, 0)
	assert.Equal(t, 0.0, heightstat.AverageLeafDepth(tree))

	// 5 -> {3 -> {1}, 8} : leaves 1 (depth 2) and 8 (depth 1)
	for _, k := range []int{3, 8, 1} {
		tree.Put(k, 0)
	}
	assert.Equal(t, 1.5, heightstat.AverageLeafDepth(tree))

	sorted := bst.New[int, int]()
	for k := range 20 {
		sorted.Put(k, 0)
	}
	assert.Equal(t, 19.0, heightstat.AverageLeafDepth(sorted))
}

func TestRun(t *testing.T) {
	sweep := heightstat.Sweep{
		From: 100, To: 500, Step: 100, Ops: 100, Workers: 2, Seed: 7, Verify: true,
	}

	measures, err := heightstat.Run(context.Background(), sweep)
	require.NoError(t, err)
	require.Len(t, measures, 5)

	for i, m := range measures {
		assert.Equal(t, 100*(i+1), m.N)
		assert.InDelta(t, math.Sqrt(float64(m.N)), m.Sqrt, 1e-9)
		assert.InDelta(t, math.Log2(float64(m.N)), m.Lg, 1e-9)
		// a random tree is far from degenerate and at least as tall as a
		// perfectly balanced one
		assert.GreaterOrEqual(t, m.Max, math.Floor(m.Lg))
		assert.Less(t, m.Max, float64(m.N)/2)
		assert.Greater(t, m.Average, 0.0)
		assert.Less(t, m.Average, m.Max)
	}

	again, err := heightstat.Run(context.Background(), sweep)
	require.NoError(t, err)
	assert.Equal(t, measures, again)
}

func TestRunInvalid(t *testing.T) {
	_, err := heightstat.Run(context.Background(), heightstat.Sweep{From: 10, To: 5, Step: 1})
	assert.Error(t, err)

	_, err = heightstat.Run(context.Background(), heightstat.Sweep{From: 10, To: 20, Step: 0})
	assert.Error(t, err)
}

func TestMeasureN(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	m, err := heightstat.MeasureN(context.Background(), 64, 20, r, true)
	require.NoError(t, err)
	assert.Equal(t, 64, m.N)
	assert.Equal(t, 6.0, m.Lg)
	assert.Equal(t, 8.0, m.Sqrt)
	assert.GreaterOrEqual(t, m.Max, 6.0)

	for _, n := range []int{0, -1} {
		_, err = heightstat.MeasureN(context.Background(), n, 20, r, false)
		assert.Error(t, err)
	}
}

func TestMeasureNCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := heightstat.MeasureN(ctx, 64, 20, rand.New(rand.NewPCG(1, 2)), false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChurnEmptyRange(t *testing.T) {
	tree := bst.New[int, int]()

	assert.NotPanics(t, func() {
		heightstat.Churn(tree, 10, 0, rand.New(rand.NewPCG(1, 2)))
	})
	assert.Equal(t, 0, tree.Size())
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := heightstat.Run(ctx, heightstat.Sweep{From: 100, To: 1000, Step: 100, Ops: 10})
	assert.ErrorIs(t, err, context.Canceled)
}
