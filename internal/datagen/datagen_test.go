package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tensorplex-labs/hmeasure/pkg/hmeasure"
)

func TestGenerate(t *testing.T) {
	p := DefaultParams()
	scores, err := Generate(p, 42)
	require.NoError(t, err)

	require.Len(t, scores.Class0, p.Class0Size)
	require.Len(t, scores.Class1, p.Class1Size)
	for _, x := range append(scores.Class0, scores.Class1...) {
		assert.True(t, x >= 0 && x <= 1, "score %v outside [0,1]", x)
	}

	// Beta(2,6) has mean 0.25 and Beta(6,2) mean 0.75.
	assert.InDelta(t, 0.25, stat.Mean(scores.Class0, nil), 0.02)
	assert.InDelta(t, 0.75, stat.Mean(scores.Class1, nil), 0.02)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(DefaultParams(), 7)
	require.NoError(t, err)
	b, err := Generate(DefaultParams(), 7)
	require.NoError(t, err)
	c, err := Generate(DefaultParams(), 8)
	require.NoError(t, err)

	assert.True(t, floats.Same(a.Class0, b.Class0))
	assert.True(t, floats.Same(a.Class1, b.Class1))
	assert.False(t, floats.Same(a.Class0, c.Class0))
}

func TestGenerate_SeparableScoresGiveHighH(t *testing.T) {
	scores, err := Generate(DefaultParams(), 1)
	require.NoError(t, err)

	res, err := hmeasure.Compute(scores.Class0, scores.Class1, 2, 2)
	require.NoError(t, err)
	assert.Greater(t, res.H, 0.5)
	assert.Greater(t, res.AUC, 0.9)
}

func TestGenerate_InvalidParams(t *testing.T) {
	p := DefaultParams()
	p.Class1Size = 0
	_, err := Generate(p, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	p = DefaultParams()
	p.Class0.Alpha = -1
	_, err = Generate(p, 1)
	assert.ErrorIs(t, err, hmeasure.ErrInvalidParameters)
}
