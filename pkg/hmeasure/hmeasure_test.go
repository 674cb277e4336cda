package hmeasure

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

var (
	canonicalClass0 = []float64{0.0, 0.01, 0.02, 0.03, 0.2, 0.6, 0.66, 0.7}
	canonicalClass1 = []float64{0.3, 0.35, 0.36, 0.42, 0.5, 0.8, 0.82, 0.99}

	unequalClass0 = []float64{0.1, 0.2, 0.35, 0.4, 0.6}
	unequalClass1 = []float64{0.3, 0.45, 0.5, 0.7, 0.8, 0.9}
)

// randomScores draws n0 and n1 uniform scores, shifting class 1 up by shift.
func randomScores(rng *rand.Rand, n0, n1 int, shift float64) BinaryClassScores {
	s := BinaryClassScores{Class0: make([]float64, n0), Class1: make([]float64, n1)}
	for i := range s.Class0 {
		s.Class0[i] = rng.Float64()
	}
	for i := range s.Class1 {
		s.Class1[i] = rng.Float64() + shift
	}
	return s
}

func TestCompute_KnownValues(t *testing.T) {
	tests := []struct {
		name   string
		class0 []float64
		class1 []float64
		alpha  float64
		beta   float64
		opts   []Option
		want   float64
	}{
		{"canonical beta(2,2)", canonicalClass0, canonicalClass1, 2, 2, nil, 275.0 / 512},
		{"canonical beta(1,1)", canonicalClass0, canonicalClass1, 1, 1, nil, 0.53125},
		{"unequal sizes beta(2,2)", unequalClass0, unequalClass1, 2, 2, nil, 31873.0 / 61155},
		{"unequal sizes beta(1,1)", unequalClass0, unequalClass1, 1, 1, nil, 0.5111111111111111},
		{
			name:   "unequal sizes with fixed priors",
			class0: unequalClass0, class1: unequalClass1,
			alpha: 2, beta: 2,
			opts: []Option{WithPriors(0.5, 0.5)},
			want: 826657.0 / 1572160,
		},
		{
			name:   "canonical with quadrature",
			class0: canonicalClass0, class1: canonicalClass1,
			alpha: 2, beta: 2,
			opts: []Option{WithQuadrature(16)},
			want: 275.0 / 512,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.class0, tt.class1, tt.alpha, tt.beta, tt.opts...)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, res.H, 1e-9)
		})
	}
}

func TestCompute_ResultContents(t *testing.T) {
	res, err := Compute(unequalClass0, unequalClass1, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, Priors{Class0: 5.0 / 11, Class1: 6.0 / 11}, res.Priors)
	assert.Equal(t, DefaultBetaParams(), res.Density)
	assert.InDelta(t, 0.8333333333333334, res.AUC, 1e-12)
	assert.InDelta(t, 1-res.Loss/res.ReferenceLoss, res.H, 1e-15)
	assert.Equal(t, unequalClass0, res.Class0)
	assert.Equal(t, unequalClass1, res.Class1)

	want := Curve{{0, 0}, {0, 0.5}, {0.2, 5.0 / 6}, {0.6, 1}, {1, 1}}
	require.Len(t, res.ConvexHull, len(want))
	for i, p := range want {
		assert.InDelta(t, p.FPR, res.ConvexHull[i].FPR, 1e-12, "hull point %d", i)
		assert.InDelta(t, p.TPR, res.ConvexHull[i].TPR, 1e-12, "hull point %d", i)
	}
}

func TestCompute_ResultIsIndependentOfInput(t *testing.T) {
	class0 := slices.Clone(canonicalClass0)
	class1 := slices.Clone(canonicalClass1)
	res, err := Compute(class0, class1, 2, 2)
	require.NoError(t, err)

	class0[0] = 42
	class1[0] = -42
	assert.Equal(t, canonicalClass0, res.Class0)
	assert.Equal(t, canonicalClass1, res.Class1)
}

func TestCompute_IdenticalScores(t *testing.T) {
	res, err := Compute([]float64{0.5, 0.5, 0.5}, []float64{0.5, 0.5}, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.H, 1e-12)
	assert.InDelta(t, 0.5, res.AUC, 1e-12)
}

func TestCompute_PerfectSeparation(t *testing.T) {
	res, err := Compute([]float64{0.1, 0.2, 0.3}, []float64{0.7, 0.8}, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1, res.H, 1e-12)
	assert.InDelta(t, 1, res.AUC, 1e-12)
}

func TestCompute_SymmetricUnderClassSwap(t *testing.T) {
	negate := func(xs []float64) []float64 {
		out := slices.Clone(xs)
		floats.Scale(-1, out)
		return out
	}

	for _, scores := range []BinaryClassScores{
		{Class0: canonicalClass0, Class1: canonicalClass1},
		{Class0: unequalClass0, Class1: unequalClass1},
	} {
		res, err := Compute(scores.Class0, scores.Class1, 2, 2)
		require.NoError(t, err)
		swapped, err := Compute(negate(scores.Class1), negate(scores.Class0), 2, 2)
		require.NoError(t, err)
		assert.InDelta(t, res.H, swapped.H, 1e-12)
	}
}

func TestCompute_RangeOnRandomData(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	e, err := New(BetaParams{Alpha: 1.5, Beta: 3})
	require.NoError(t, err)

	for trial := range 100 {
		scores := randomScores(rng, 1+rng.IntN(200), 1+rng.IntN(200), rng.Float64()-0.5)
		res, err := e.Compute(scores)
		require.NoError(t, err, "trial %d", trial)
		assert.GreaterOrEqual(t, res.H, -1e-12, "trial %d", trial)
		assert.LessOrEqual(t, res.H, 1+1e-12, "trial %d", trial)
		assert.GreaterOrEqual(t, res.AUC, 0.0, "trial %d", trial)
		assert.LessOrEqual(t, res.AUC, 1.0, "trial %d", trial)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	scores := randomScores(rng, 500, 400, 0.2)
	e, err := New(DefaultBetaParams())
	require.NoError(t, err)

	first, err := e.Compute(scores)
	require.NoError(t, err)
	for range 5 {
		again, err := e.Compute(scores)
		require.NoError(t, err)
		assert.Equal(t, first.H, again.H)
		assert.True(t, floats.Same(first.ROC.FPR(), again.ROC.FPR()))
		assert.True(t, floats.Same(first.ConvexHull.TPR(), again.ConvexHull.TPR()))
	}
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name   string
		class0 []float64
		class1 []float64
		alpha  float64
		beta   float64
		opts   []Option
		want   error
	}{
		{"empty class0", nil, []float64{1}, 2, 2, nil, ErrInvalidInput},
		{"empty class1", []float64{1}, nil, 2, 2, nil, ErrInvalidInput},
		{"zero alpha", []float64{1}, []float64{2}, 0, 2, nil, ErrInvalidParameters},
		{"negative beta", []float64{1}, []float64{2}, 2, -1, nil, ErrInvalidParameters},
		{"priors out of range", []float64{1}, []float64{2}, 2, 2, []Option{WithPriors(1, 0)}, ErrInvalidPriors},
		{"priors not summing to one", []float64{1}, []float64{2}, 2, 2, []Option{WithPriors(0.3, 0.3)}, ErrInvalidPriors},
		{"density with no mass off c=1", canonicalClass0, canonicalClass1, 1e200, 1, nil, ErrDegenerateDensity},
		{"density overflowing to NaN", canonicalClass0, canonicalClass1, 1e300, 1e300, nil, ErrDegenerateDensity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.class0, tt.class1, tt.alpha, tt.beta, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, res)
		})
	}
}

func TestEvaluator_LogsComputation(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	e, err := New(DefaultBetaParams(), WithLogger(logger))
	require.NoError(t, err)
	_, err = e.Compute(BinaryClassScores{Class0: canonicalClass0, Class1: canonicalClass1})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"message":"computed H-measure"`)
	assert.Contains(t, buf.String(), `"hull_points":4`)
}

func TestEvaluator_SilentWithoutLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	t.Cleanup(func() { log.Logger = previous })

	_, err := Compute(canonicalClass0, canonicalClass1, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func BenchmarkCompute(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 6))
	scores := randomScores(rng, 5000, 5000, 0.3)
	e, err := New(DefaultBetaParams())
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		if _, err := e.Compute(scores); err != nil {
			b.Fatal(err)
		}
	}
}
