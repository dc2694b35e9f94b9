// SPDX-License-Identifier: MIT

package optimize_test

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/optimize"
)

// bowl is (x0−1)² + 2(x1+½)², minimum 0 at (1, −½).
var bowl = optimize.ObjectiveFunc(func(x []float64) (float64, error) {
	return (x[0]-1)*(x[0]-1) + 2*(x[1]+0.5)*(x[1]+0.5), nil
})

// analyticBowl exposes the exact gradient of bowl and counts calls.
type analyticBowl struct{ gradCalls int }

func (b *analyticBowl) Evaluate(x []float64) (float64, error) { return bowl(x) }

func (b *analyticBowl) Gradient(x []float64) ([]float64, error) {
	b.gradCalls++
	return []float64{2 * (x[0] - 1), 4 * (x[1] + 0.5)}, nil
}

func opts(method optimize.Method, sense optimize.Sense) optimize.Options {
	o := optimize.DefaultOptions()
	o.Method = method
	o.Sense = sense
	o.LearningRate = 0.1
	o.MaxIterations = 2000
	o.Tolerance = 1e-14

	return o
}

func TestRun_MinimizeBothMethods(t *testing.T) {
	for _, m := range []optimize.Method{optimize.MethodGradient, optimize.MethodDerivativeFree} {
		t.Run(m.String(), func(t *testing.T) {
			res, err := optimize.Run(context.Background(), bowl, []float64{-2, 3}, opts(m, optimize.Minimize))
			require.NoError(t, err)
			assert.Equal(t, optimize.StatusConverged, res.Status)
			assert.NoError(t, res.Status.Err())
			assert.InDelta(t, 1, res.X[0], 1e-4)
			assert.InDelta(t, -0.5, res.X[1], 1e-4)
			assert.InDelta(t, 0, res.F, 1e-8)
			assert.Greater(t, res.Evaluations, res.Iterations)
		})
	}
}

func TestRun_Maximize(t *testing.T) {
	hill := optimize.ObjectiveFunc(func(x []float64) (float64, error) {
		return 3 - (x[0]-2)*(x[0]-2), nil
	})
	for _, m := range []optimize.Method{optimize.MethodGradient, optimize.MethodDerivativeFree} {
		res, err := optimize.Run(context.Background(), hill, []float64{0}, opts(m, optimize.Maximize))
		require.NoError(t, err)
		assert.Equal(t, optimize.StatusConverged, res.Status, m.String())
		assert.InDelta(t, 2, res.X[0], 1e-4, m.String())
		assert.InDelta(t, 3, res.F, 1e-8, m.String())
	}
}

func TestRun_UsesAnalyticGradient(t *testing.T) {
	obj := &analyticBowl{}
	res, err := optimize.Run(context.Background(), obj, []float64{0, 0}, opts(optimize.MethodGradient, optimize.Minimize))
	require.NoError(t, err)
	assert.Equal(t, res.Iterations, obj.gradCalls)
	// One evaluation per step plus the start point; no finite-difference probes.
	assert.Equal(t, res.Iterations+1, res.Evaluations)
}

func TestRun_NotConvergedReturnsBestPoint(t *testing.T) {
	o := opts(optimize.MethodGradient, optimize.Minimize)
	o.MaxIterations = 3
	res, err := optimize.Run(context.Background(), bowl, []float64{-2, 3}, o)
	require.NoError(t, err)
	assert.Equal(t, optimize.StatusNotConverged, res.Status)
	assert.Equal(t, 3, res.Iterations)
	require.ErrorIs(t, res.Status.Err(), optimize.ErrNotConverged)
	require.ErrorIs(t, res.Status.Err(), ising.ErrNotConverged)

	start, _ := bowl([]float64{-2, 3})
	assert.Less(t, res.F, start)

	o.Method = optimize.MethodDerivativeFree
	res, err = optimize.Run(context.Background(), bowl, []float64{-2, 3}, o)
	require.NoError(t, err)
	assert.Equal(t, optimize.StatusNotConverged, res.Status)
	assert.LessOrEqual(t, res.F, start)
}

func TestRun_Errors(t *testing.T) {
	nanObj := optimize.ObjectiveFunc(func(x []float64) (float64, error) { return math.NaN(), nil })
	boom := errors.New("boom")
	failing := optimize.ObjectiveFunc(func(x []float64) (float64, error) { return 0, boom })
	o := optimize.DefaultOptions()

	_, err := optimize.Run(context.Background(), nanObj, []float64{0}, o)
	require.ErrorIs(t, err, optimize.ErrNumericalInstability)

	_, err = optimize.Run(context.Background(), failing, []float64{0}, o)
	require.ErrorIs(t, err, boom)

	_, err = optimize.Run(context.Background(), bowl, nil, o)
	require.ErrorIs(t, err, optimize.ErrInvalidArgument)

	_, err = optimize.Run(context.Background(), bowl, []float64{math.Inf(1), 0}, o)
	require.ErrorIs(t, err, optimize.ErrInvalidArgument)

	_, err = optimize.Run(context.Background(), nil, []float64{0}, o)
	require.ErrorIs(t, err, optimize.ErrInvalidArgument)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = optimize.Run(ctx, bowl, []float64{0, 0}, o)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, optimize.DefaultOptions().Validate())

	tests := []struct {
		name   string
		mutate func(o *optimize.Options)
	}{
		{"learning rate", func(o *optimize.Options) { o.LearningRate = 0 }},
		{"iterations", func(o *optimize.Options) { o.MaxIterations = 0 }},
		{"tolerance", func(o *optimize.Options) { o.Tolerance = -1 }},
		{"method", func(o *optimize.Options) { o.Method = optimize.Method(7) }},
		{"sense", func(o *optimize.Options) { o.Sense = optimize.Sense(7) }},
		{"simplex", func(o *optimize.Options) { o.SimplexStep = math.Inf(1) }},
		{"fd step", func(o *optimize.Options) { o.FiniteDiffStep = math.NaN() }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := optimize.DefaultOptions()
			tc.mutate(&o)
			require.ErrorIs(t, o.Validate(), optimize.ErrInvalidArgument)
		})
	}
}

func TestParse(t *testing.T) {
	m, err := optimize.ParseMethod("Nelder-Mead")
	require.NoError(t, err)
	assert.Equal(t, optimize.MethodDerivativeFree, m)
	m, err = optimize.ParseMethod("gradient")
	require.NoError(t, err)
	assert.Equal(t, optimize.MethodGradient, m)
	_, err = optimize.ParseMethod("bfgs")
	require.ErrorIs(t, err, optimize.ErrInvalidArgument)

	s, err := optimize.ParseSense("MAX")
	require.NoError(t, err)
	assert.Equal(t, optimize.Maximize, s)
	_, err = optimize.ParseSense("sideways")
	require.ErrorIs(t, err, optimize.ErrInvalidArgument)

	assert.Equal(t, "derivative_free", optimize.MethodDerivativeFree.String())
	assert.Equal(t, "minimize", optimize.Minimize.String())
	assert.Equal(t, "not_converged", optimize.StatusNotConverged.String())
}

func TestCentralDifference(t *testing.T) {
	f := func(x []float64) (float64, error) { return x[0]*x[0]*x[0] + 2*x[1], nil }
	x := []float64{1.5, -1}
	g, err := optimize.CentralDifference(x, 1e-5, f)
	require.NoError(t, err)
	assert.InDelta(t, 3*1.5*1.5, g[0], 1e-6)
	assert.InDelta(t, 2, g[1], 1e-6)
	assert.Equal(t, []float64{1.5, -1}, x)
}

func TestMultiStart_PicksGlobalMinimum(t *testing.T) {
	// Double well tilted so that x ≈ −1 is the global minimum.
	var calls atomic.Int64
	well := optimize.ObjectiveFunc(func(x []float64) (float64, error) {
		calls.Add(1)
		return (x[0]*x[0]-1)*(x[0]*x[0]-1) + 0.3*x[0], nil
	})
	o := opts(optimize.MethodDerivativeFree, optimize.Minimize)
	starts := [][]float64{{2}, {1.2}, {-2}, {0.8}}

	mr, err := optimize.MultiStart(context.Background(), well, starts, o, 3)
	require.NoError(t, err)
	require.Len(t, mr.Runs, len(starts))
	assert.Equal(t, 2, mr.BestIndex)
	assert.Less(t, mr.Best.X[0], 0.0)
	for _, r := range mr.Runs {
		assert.GreaterOrEqual(t, r.F, mr.Best.F)
	}

	var total int
	for _, r := range mr.Runs {
		total += r.Evaluations
	}
	assert.Equal(t, int64(total), calls.Load())
}

func TestMultiStart_TiesGoToLowestIndex(t *testing.T) {
	flat := optimize.ObjectiveFunc(func(x []float64) (float64, error) { return 0, nil })
	mr, err := optimize.MultiStart(context.Background(), flat, [][]float64{{3}, {2}, {1}}, optimize.DefaultOptions(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, mr.BestIndex)
	assert.Equal(t, []float64{3}, mr.Best.X)
}

func TestMultiStart_Errors(t *testing.T) {
	_, err := optimize.MultiStart(context.Background(), bowl, nil, optimize.DefaultOptions(), 1)
	require.ErrorIs(t, err, optimize.ErrInvalidArgument)

	bad := optimize.DefaultOptions()
	bad.MaxIterations = 0
	_, err = optimize.MultiStart(context.Background(), bowl, [][]float64{{0, 0}}, bad, 1)
	require.ErrorIs(t, err, optimize.ErrInvalidArgument)

	_, err = optimize.MultiStart(context.Background(), bowl, [][]float64{{0, 0}, {}}, optimize.DefaultOptions(), 0)
	require.ErrorIs(t, err, optimize.ErrInvalidArgument)
}
