// SPDX-License-Identifier: MIT

package schedule_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/schedule"
)

func TestBuild_ClosedForm(t *testing.T) {
	for _, tc := range []struct {
		p   int
		tau float64
	}{{1, 1}, {2, 0.7}, {3, 1.5}, {10, 4.2}} {
		s, err := schedule.Build(tc.p, tc.tau)
		require.NoError(t, err)
		require.Equal(t, tc.p, s.P())
		assert.Equal(t, tc.tau, s.Tau())

		gamma, beta := s.Gamma(), s.Beta()
		fp := float64(tc.p)
		for k := 1; k <= tc.p; k++ {
			assert.InDelta(t, tc.tau*(float64(k)-0.5)/fp, gamma[k-1], 1e-15, "gamma k=%d", k)
			if k < tc.p {
				assert.InDelta(t, tc.tau*(1-float64(k)/fp), beta[k-1], 1e-15, "beta k=%d", k)
			}
		}
		// The boundary override must hold exactly.
		assert.Equal(t, tc.tau/(4*fp), beta[tc.p-1])
	}
}

func TestBuild_Invalid(t *testing.T) {
	for _, tc := range []struct {
		p   int
		tau float64
	}{{0, 1}, {-3, 1}, {2, 0}, {2, -1}, {2, math.NaN()}, {2, math.Inf(1)}} {
		_, err := schedule.Build(tc.p, tc.tau)
		require.ErrorIs(t, err, schedule.ErrInvalidArgument, "p=%d tau=%g", tc.p, tc.tau)
		require.ErrorIs(t, err, ising.ErrInvalidArgument)
	}
}

func TestNew(t *testing.T) {
	s, err := schedule.New([]float64{0.1, 0.2}, []float64{0.3, 0.4}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, s.Params())
	assert.Equal(t, 0.5, s.Tau())

	for _, tau := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err = schedule.New([]float64{0.1}, []float64{0.3}, tau)
		require.ErrorIs(t, err, schedule.ErrInvalidArgument, "tau=%g", tau)
	}

	_, err = schedule.New([]float64{0.1}, []float64{0.3, 0.4}, 1)
	require.ErrorIs(t, err, schedule.ErrDimensionMismatch)
	_, err = schedule.New(nil, nil, 1)
	require.ErrorIs(t, err, schedule.ErrInvalidArgument)
	_, err = schedule.New([]float64{math.NaN()}, []float64{0}, 1)
	require.ErrorIs(t, err, schedule.ErrInvalidArgument)
}

func TestSchedule_AccessorsCopy(t *testing.T) {
	gamma := []float64{1, 2}
	s, err := schedule.New(gamma, []float64{3, 4}, 1)
	require.NoError(t, err)
	gamma[0] = 9
	g := s.Gamma()
	g[1] = 9
	b := s.Beta()
	b[0] = 9
	assert.Equal(t, []float64{1, 2}, s.Gamma())
	assert.Equal(t, []float64{3, 4}, s.Beta())
}
