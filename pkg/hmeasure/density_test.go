package hmeasure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Partial moments of Beta(2,2), u(c) = 6c(1-c), from zero to x.
func beta22CostMoment(x float64) float64       { return 2*math.Pow(x, 3) - 1.5*math.Pow(x, 4) }
func beta22ComplementMoment(x float64) float64 { return 3*x*x - 4*math.Pow(x, 3) + 1.5*math.Pow(x, 4) }

func TestCostRatioDensity_Moments(t *testing.T) {
	closed, err := NewCostRatioDensity(DefaultBetaParams())
	require.NoError(t, err)
	numeric, err := newQuadratureDensity(DefaultBetaParams(), 8)
	require.NoError(t, err)

	intervals := [][2]float64{{0, 1}, {0, 0.5}, {0.3, 0.7}, {0.625, 1}, {0.1, 0.11}}
	for _, d := range []*CostRatioDensity{closed, numeric} {
		for _, iv := range intervals {
			lo, hi := iv[0], iv[1]
			assert.InDelta(t, beta22CostMoment(hi)-beta22CostMoment(lo), d.CostMoment(lo, hi), 1e-12,
				"cost moment on [%v,%v] nodes=%d", lo, hi, d.nodes)
			assert.InDelta(t, beta22ComplementMoment(hi)-beta22ComplementMoment(lo), d.ComplementMoment(lo, hi), 1e-12,
				"complement moment on [%v,%v] nodes=%d", lo, hi, d.nodes)
		}
	}
}

func TestCostRatioDensity_EmptyInterval(t *testing.T) {
	d, err := NewCostRatioDensity(DefaultBetaParams())
	require.NoError(t, err)

	assert.Zero(t, d.CostMoment(0.5, 0.5))
	assert.Zero(t, d.ComplementMoment(0.7, 0.3))
}

func TestCostRatioDensity_QuadratureAgreesWithClosedForm(t *testing.T) {
	for _, params := range []BetaParams{{1, 1}, {0.5, 0.5}, {3, 7}, {10, 2}} {
		closed, err := NewCostRatioDensity(params)
		require.NoError(t, err)
		numeric, err := newQuadratureDensity(params, 64)
		require.NoError(t, err)

		// Intervals stay clear of the endpoint singularities of a<1 or b<1.
		const tol = 1e-9
		for _, iv := range [][2]float64{{0.2, 0.4}, {0.5, 0.9}} {
			assert.InDelta(t, closed.CostMoment(iv[0], iv[1]), numeric.CostMoment(iv[0], iv[1]), tol, "params %+v", params)
			assert.InDelta(t, closed.ComplementMoment(iv[0], iv[1]), numeric.ComplementMoment(iv[0], iv[1]), tol, "params %+v", params)
		}
		assert.InDelta(t, 1, closed.CostMoment(0, 1)+closed.ComplementMoment(0, 1), 1e-12, "params %+v", params)
	}
}

func TestCostRatioDensity_PDFAndCDF(t *testing.T) {
	d, err := NewCostRatioDensity(DefaultBetaParams())
	require.NoError(t, err)

	assert.InDelta(t, 1.5, d.PDF(0.5), 1e-12)
	assert.Zero(t, d.PDF(-0.1))
	assert.Zero(t, d.PDF(1.1))
	assert.InDelta(t, 0.5, d.CDF(0.5), 1e-12)
	assert.Equal(t, DefaultBetaParams(), d.Params())
}

func TestCostRatioDensity_ReferenceLoss(t *testing.T) {
	d, err := NewCostRatioDensity(DefaultBetaParams())
	require.NoError(t, err)

	l, err := d.referenceLoss(Priors{Class0: 0.5, Class1: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.15625, l, 1e-12)
}

func TestNewCostRatioDensity_InvalidParameters(t *testing.T) {
	for _, params := range []BetaParams{
		{0, 2},
		{2, 0},
		{-1, 2},
		{math.NaN(), 2},
		{2, math.Inf(1)},
	} {
		_, err := NewCostRatioDensity(params)
		assert.ErrorIs(t, err, ErrInvalidParameters, "params %+v", params)
	}
}
